package csvdelivery

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/moneypkg"
)

// Transaction type tags accepted on the wire, matched case-insensitively.
const (
	tagDeposit    = "deposit"
	tagWithdrawal = "withdrawal"
	tagDispute    = "dispute"
	tagResolve    = "resolve"
	tagChargeback = "chargeback"
)

// record is the flat wire representation of a transaction. The dispute family
// carries no meaningful amount; an empty or placeholder field is tolerated.
type record struct {
	Type   string `validate:"required"`
	Client string `validate:"required"`
	Tx     string `validate:"required"`
	Amount string
}

// Reader decodes transactions from CSV input with columns type, client, tx,
// amount. Fields may carry surrounding whitespace; a leading header row is
// skipped.
type Reader struct {
	csv       *csv.Reader
	validate  *validator.Validate
	pastFirst bool
}

// NewReader returns a reader decoding transactions from r.
func NewReader(r io.Reader) *Reader {
	c := csv.NewReader(r)
	c.TrimLeadingSpace = true
	c.FieldsPerRecord = -1

	return &Reader{
		csv:      c,
		validate: validator.New(),
	}
}

// Read returns the next transaction in the stream. It returns io.EOF once the
// input is exhausted; any other error means the input contract itself is
// broken and the whole run must stop.
func (r *Reader) Read() (domain.Transaction, error) {
	fields, err := r.csv.Read()
	if err != nil {
		return nil, err
	}

	if !r.pastFirst {
		r.pastFirst = true

		if isHeader(fields) {
			return r.Read()
		}
	}

	return r.decode(fields)
}

func isHeader(fields []string) bool {
	return len(fields) > 0 && strings.EqualFold(strings.TrimSpace(fields[0]), "type")
}

func (r *Reader) decode(fields []string) (domain.Transaction, error) {
	if len(fields) > 4 {
		return nil, fmt.Errorf("too many fields in record %v", fields)
	}

	var rec record

	for i, dst := range []*string{&rec.Type, &rec.Client, &rec.Tx, &rec.Amount} {
		if i < len(fields) {
			*dst = strings.TrimSpace(fields[i])
		}
	}

	if err := r.validate.Struct(rec); err != nil {
		return nil, fmt.Errorf("incomplete record %v: %w", fields, err)
	}

	client, err := strconv.ParseUint(rec.Client, 10, 16)
	if err != nil {
		return nil, fmt.Errorf("invalid client id %q: %w", rec.Client, err)
	}

	tx, err := strconv.ParseUint(rec.Tx, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid transaction id %q: %w", rec.Tx, err)
	}

	c := domain.ClientID(client)
	id := domain.TransactionID(tx)
	tag := strings.ToLower(rec.Type)

	switch tag {
	case tagDeposit, tagWithdrawal:
		if rec.Amount == "" {
			return nil, fmt.Errorf("missing amount for %s tx %d", tag, id)
		}

		amount, err := moneypkg.Parse(rec.Amount)
		if err != nil {
			return nil, fmt.Errorf("invalid amount %q: %w", rec.Amount, err)
		}

		if tag == tagDeposit {
			return domain.Deposit{Client: c, Tx: id, Amount: domain.Amount(amount)}, nil
		}

		return domain.Withdrawal{Client: c, Tx: id, Amount: domain.Amount(amount)}, nil
	case tagDispute, tagResolve, tagChargeback:
		// The amount is not meaningful here and its value is discarded, but
		// a non-numeric field still breaks the record contract.
		if rec.Amount != "" {
			if _, err := moneypkg.Parse(rec.Amount); err != nil {
				return nil, fmt.Errorf("invalid amount %q: %w", rec.Amount, err)
			}
		}

		switch tag {
		case tagDispute:
			return domain.Dispute{Client: c, Tx: id}, nil
		case tagResolve:
			return domain.Resolve{Client: c, Tx: id}, nil
		default:
			return domain.Chargeback{Client: c, Tx: id}, nil
		}
	default:
		return nil, fmt.Errorf("unknown transaction type %q", rec.Type)
	}
}
