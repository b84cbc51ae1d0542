// Package accountservice manages business logic layer of accounts.
package accountservice

import (
	"fmt"

	"github.com/go-petr/pet-ledger/internal/domain"
)

// Account holds one client's balances and the history of its deposits and
// withdrawals. It is the sole authority over the balances: every mutation
// goes through Apply, which keeps total equal to available plus held.
type Account struct {
	id        domain.ClientID
	available domain.Amount
	held      domain.Amount
	total     domain.Amount
	locked    bool
	history   map[domain.TransactionID]*domain.DisputableTransaction
}

// New returns an unlocked account with zero balances.
func New(id domain.ClientID) *Account {
	return &Account{
		id:      id,
		history: make(map[domain.TransactionID]*domain.DisputableTransaction),
	}
}

// ID returns the owning client id.
func (a *Account) ID() domain.ClientID {
	return a.id
}

// Snapshot returns the externally visible account state.
func (a *Account) Snapshot() domain.Account {
	return domain.Account{
		ID:        a.id,
		Available: a.available,
		Held:      a.held,
		Total:     a.total,
		Locked:    a.locked,
	}
}

// Apply runs a single transaction against the account. The caller must have
// routed tx to the account matching its client id; that is not re-checked
// here. On failure the account is left untouched.
func (a *Account) Apply(tx domain.Transaction) error {
	if a.locked {
		return domain.ErrAccountLocked
	}

	switch tx := tx.(type) {
	case domain.Deposit:
		return a.deposit(tx)
	case domain.Withdrawal:
		return a.withdraw(tx)
	case domain.Dispute:
		return a.dispute(tx.Tx)
	case domain.Resolve:
		return a.resolve(tx.Tx)
	case domain.Chargeback:
		return a.chargeback(tx.Tx)
	default:
		return fmt.Errorf("unsupported transaction type %T", tx)
	}
}

func (a *Account) deposit(tx domain.Deposit) error {
	if _, ok := a.history[tx.Tx]; ok {
		return fmt.Errorf("%w: tx %d", domain.ErrTransactionExists, tx.Tx)
	}

	a.available += tx.Amount
	a.total += tx.Amount
	a.history[tx.Tx] = &domain.DisputableTransaction{Transaction: tx}

	return nil
}

func (a *Account) withdraw(tx domain.Withdrawal) error {
	if _, ok := a.history[tx.Tx]; ok {
		return fmt.Errorf("%w: tx %d", domain.ErrTransactionExists, tx.Tx)
	}

	if a.available < tx.Amount {
		return fmt.Errorf("%w: withdrawal of %v for client %d", domain.ErrInsufficientFunds, tx.Amount, tx.Client)
	}

	a.available -= tx.Amount
	a.total -= tx.Amount
	a.history[tx.Tx] = &domain.DisputableTransaction{Transaction: tx}

	return nil
}

func (a *Account) dispute(id domain.TransactionID) error {
	d, err := a.lookup(id)
	if err != nil {
		return err
	}

	if d.Disputed {
		return fmt.Errorf("%w: tx %d", domain.ErrAlreadyDisputed, id)
	}

	switch stored := d.Transaction.(type) {
	case domain.Deposit:
		// The deposited funds may have been withdrawn since.
		if a.available < stored.Amount {
			return fmt.Errorf("%w: dispute of tx %d", domain.ErrInsufficientFunds, id)
		}

		a.available -= stored.Amount
		a.held += stored.Amount
	case domain.Withdrawal:
		// Reinstate the withdrawn funds as held pending investigation;
		// the client gets no spendable access to them.
		a.total += stored.Amount
		a.held += stored.Amount
	}

	d.Disputed = true

	return nil
}

func (a *Account) resolve(id domain.TransactionID) error {
	d, err := a.lookup(id)
	if err != nil {
		return err
	}

	if !d.Disputed {
		return fmt.Errorf("%w: tx %d", domain.ErrNotDisputed, id)
	}

	switch stored := d.Transaction.(type) {
	case domain.Deposit:
		a.available += stored.Amount
		a.held -= stored.Amount
	case domain.Withdrawal:
		a.total -= stored.Amount
		a.held -= stored.Amount
	}

	d.Disputed = false

	return nil
}

func (a *Account) chargeback(id domain.TransactionID) error {
	d, err := a.lookup(id)
	if err != nil {
		return err
	}

	if !d.Disputed {
		return fmt.Errorf("%w: tx %d", domain.ErrNotDisputed, id)
	}

	switch stored := d.Transaction.(type) {
	case domain.Deposit:
		a.total -= stored.Amount
		a.held -= stored.Amount
	case domain.Withdrawal:
		// The original withdrawal already reduced total once; reversing it
		// for real returns the funds to available and leaves total alone.
		a.available += stored.Amount
		a.held -= stored.Amount
	}

	a.locked = true

	return nil
}

func (a *Account) lookup(id domain.TransactionID) (*domain.DisputableTransaction, error) {
	d, ok := a.history[id]
	if !ok {
		return nil, fmt.Errorf("%w: tx %d", domain.ErrTransactionNotFound, id)
	}

	return d, nil
}
