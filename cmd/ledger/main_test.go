package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-ledger/pkg/configpkg"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "transactions.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestRun(t *testing.T) {
	input := "type, client, tx, amount\n" +
		"deposit, 1, 1, 1.0\n" +
		"deposit, 2, 2, 2.0\n" +
		"deposit, 1, 3, 2.0\n" +
		"withdrawal, 1, 4, 1.5\n" +
		"withdrawal, 2, 5, 3.0\n"

	var out, logs bytes.Buffer
	logger := zerolog.New(&logs)

	require.NoError(t, run(writeInput(t, input), &out, logger))

	want := "client,available,held,total,locked\n" +
		"1,1.5,0.0,1.5,false\n" +
		"2,2.0,0.0,2.0,false\n"

	require.Equal(t, want, out.String())
	require.Contains(t, logs.String(), "insufficient funds")
}

func TestRunDisputeLifecycle(t *testing.T) {
	input := "type,client,tx,amount\n" +
		"deposit,1,1,5.0\n" +
		"dispute,1,1,\n" +
		"chargeback,1,1,\n" +
		"deposit,1,2,1.0\n"

	var out, logs bytes.Buffer
	logger := zerolog.New(&logs)

	require.NoError(t, run(writeInput(t, input), &out, logger))

	want := "client,available,held,total,locked\n" +
		"1,0.0,0.0,0.0,true\n"

	require.Equal(t, want, out.String())
	require.Contains(t, logs.String(), "account locked")
}

func TestCreateLoggerWarningLineFormat(t *testing.T) {
	var logs bytes.Buffer
	logger := createLogger(configpkg.Config{Environement: "production", LogLevel: "warn"}, &logs)

	logger.Warn().Msg("insufficient funds: withdrawal of 5 for client 1")

	require.Equal(t, "warn - insufficient funds: withdrawal of 5 for client 1\n", logs.String())
}

func TestCreateLoggerSuppressesBelowConfiguredLevel(t *testing.T) {
	var logs bytes.Buffer
	logger := createLogger(configpkg.Config{Environement: "production", LogLevel: "warn"}, &logs)

	logger.Debug().Msg("account created")
	logger.Info().Msg("stream consumed")

	require.Empty(t, logs.String())
}

func TestRunMissingInputFile(t *testing.T) {
	var out bytes.Buffer

	err := run(filepath.Join(t.TempDir(), "nope.csv"), &out, zerolog.Nop())

	require.Error(t, err)
	require.Empty(t, out.String())
}

func TestRunUndecodableRecordIsFatal(t *testing.T) {
	input := "deposit,1,1,1.0\ntransfer,1,2,1.0\n"

	var out bytes.Buffer

	err := run(writeInput(t, input), &out, zerolog.Nop())

	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown transaction type")
	require.Empty(t, out.String())
}
