// Package csvdelivery manages the CSV delivery layer of the ledger.
package csvdelivery

import (
	"context"
	"errors"
	"io"

	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/internal/domain"
)

// Ledger provides the service layer interface needed by the CSV delivery layer.
//
//go:generate mockgen -source processor.go -destination processor_mock.go -package csvdelivery
type Ledger interface {
	Apply(ctx context.Context, tx domain.Transaction) error
	Snapshot() []domain.Account
}

// Processor drives a transaction stream through the ledger.
type Processor struct {
	ledger Ledger
}

// NewProcessor returns a processor backed by the given ledger.
func NewProcessor(ledger Ledger) Processor {
	return Processor{ledger: ledger}
}

// Process consumes the whole input stream, applying each transaction in
// order. A rejected transaction is logged as a warning and the stream
// continues; a record that cannot be decoded stops the run.
func (p Processor) Process(ctx context.Context, in io.Reader) error {
	l := zerolog.Ctx(ctx)
	r := NewReader(in)

	for {
		tx, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return err
		}

		if err := p.ledger.Apply(ctx, tx); err != nil {
			l.Warn().Msg(err.Error())
		}
	}
}

// WriteSnapshot emits the ledger's final state to out.
func (p Processor) WriteSnapshot(out io.Writer) error {
	return NewWriter(out).WriteSnapshot(p.ledger.Snapshot())
}
