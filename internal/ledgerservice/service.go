// Package ledgerservice manages business logic layer of the ledger.
package ledgerservice

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/internal/accountservice"
	"github.com/go-petr/pet-ledger/internal/domain"
)

// Service owns the client to account mapping and routes every transaction to
// the account of its client.
type Service struct {
	accounts map[domain.ClientID]*accountservice.Account
}

// New returns a ledger service with no accounts.
func New() *Service {
	return &Service{
		accounts: make(map[domain.ClientID]*accountservice.Account),
	}
}

// Apply routes tx to the account of its client, creating the account with
// zero balances on first reference. The account is kept even when this very
// first transaction fails.
func (s *Service) Apply(ctx context.Context, tx domain.Transaction) error {
	l := zerolog.Ctx(ctx)

	account, ok := s.accounts[tx.ClientID()]
	if !ok {
		account = accountservice.New(tx.ClientID())
		s.accounts[tx.ClientID()] = account

		l.Debug().Uint16("client", uint16(tx.ClientID())).Msg("account created")
	}

	return account.Apply(tx)
}

// Snapshot returns the state of every account ever referenced, in no
// particular order.
func (s *Service) Snapshot() []domain.Account {
	snapshots := make([]domain.Account, 0, len(s.accounts))

	for _, account := range s.accounts {
		snapshots = append(snapshots, account.Snapshot())
	}

	return snapshots
}
