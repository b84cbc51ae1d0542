package domain

// Account is the externally visible state of one client's ledger.
// Total equals Available plus Held after every successful transaction.
type Account struct {
	ID        ClientID
	Available Amount
	Held      Amount
	Total     Amount
	Locked    bool
}
