// Package domain provides defenitions of all entities.
package domain

import "errors"

var (
	// ErrAccountLocked indicates that the account was locked by a chargeback.
	ErrAccountLocked = errors.New("account locked")
	// ErrInsufficientFunds indicates that the available balance cannot cover the amount.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrTransactionExists indicates a duplicate transaction id.
	ErrTransactionExists = errors.New("transaction already exists")
	// ErrTransactionNotFound indicates that the referenced transaction is not in the account history.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrAlreadyDisputed indicates that the referenced transaction is already under dispute.
	ErrAlreadyDisputed = errors.New("transaction already disputed")
	// ErrNotDisputed indicates that the referenced transaction is not under dispute.
	ErrNotDisputed = errors.New("transaction not disputed")
)

// ClientID identifies one account within the ledger.
type ClientID uint16

// TransactionID identifies a transaction. Ids are unique across the whole
// input stream, not per client.
type TransactionID uint32

// Amount holds a monetary quantity. Live values are not required to be
// 4-decimal-clean; normalization happens at the boundaries (see pkg/moneypkg).
type Amount float64

// Transaction is a single instruction from the input stream. The set of
// implementations is closed: Deposit, Withdrawal, Dispute, Resolve and
// Chargeback.
type Transaction interface {
	// ClientID returns the account the transaction is addressed to.
	ClientID() ClientID

	transaction()
}

// Deposit credits an account.
type Deposit struct {
	Client ClientID
	Tx     TransactionID
	Amount Amount
}

// Withdrawal debits an account.
type Withdrawal struct {
	Client ClientID
	Tx     TransactionID
	Amount Amount
}

// Dispute claims that a stored deposit or withdrawal should be provisionally
// reverted pending investigation.
type Dispute struct {
	Client ClientID
	Tx     TransactionID
}

// Resolve cancels an open dispute.
type Resolve struct {
	Client ClientID
	Tx     TransactionID
}

// Chargeback finally reverses a disputed transaction and locks the account.
type Chargeback struct {
	Client ClientID
	Tx     TransactionID
}

// ClientID implements Transaction.
func (t Deposit) ClientID() ClientID { return t.Client }

// ClientID implements Transaction.
func (t Withdrawal) ClientID() ClientID { return t.Client }

// ClientID implements Transaction.
func (t Dispute) ClientID() ClientID { return t.Client }

// ClientID implements Transaction.
func (t Resolve) ClientID() ClientID { return t.Client }

// ClientID implements Transaction.
func (t Chargeback) ClientID() ClientID { return t.Client }

func (Deposit) transaction()    {}
func (Withdrawal) transaction() {}
func (Dispute) transaction()    {}
func (Resolve) transaction()    {}
func (Chargeback) transaction() {}

// DisputableTransaction wraps a stored deposit or withdrawal together with
// its dispute flag. Only deposits and withdrawals are ever stored; the
// dispute family references them by transaction id.
type DisputableTransaction struct {
	Transaction Transaction
	Disputed    bool
}
