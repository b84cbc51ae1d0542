// Package main provides the ledger CLI that replays a transaction stream and
// prints the final account snapshot.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/go-petr/pet-ledger/internal/csvdelivery"
	"github.com/go-petr/pet-ledger/internal/ledgerservice"
	"github.com/go-petr/pet-ledger/pkg/configpkg"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <transactions.csv>\n", os.Args[0])
		os.Exit(2)
	}

	config, err := configpkg.Load(".")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := createLogger(config, os.Stderr)

	if err := run(os.Args[1], os.Stdout, logger); err != nil {
		logger.Fatal().Err(err).Msg("cannot process transactions")
	}
}

func run(path string, out io.Writer, logger zerolog.Logger) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	ctx := logger.WithContext(context.Background())
	processor := csvdelivery.NewProcessor(ledgerservice.New())

	if err := processor.Process(ctx, in); err != nil {
		return err
	}

	return processor.WriteSnapshot(out)
}

// createLogger writes one line per rejected transaction to out in the form
// "warn - <message>", keeping standard output free for the snapshot.
func createLogger(config configpkg.Config, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		level = zerolog.WarnLevel
	}

	output := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    true,
		PartsOrder: []string{zerolog.LevelFieldName, zerolog.MessageFieldName},
		FormatLevel: func(i interface{}) string {
			return fmt.Sprintf("%s -", i)
		},
	}

	logger := zerolog.New(output).Level(level)

	if config.Environement == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}).
			Level(zerolog.TraceLevel).
			With().
			Timestamp().
			Caller().
			Logger()
	}

	return logger
}
