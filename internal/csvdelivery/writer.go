package csvdelivery

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/moneypkg"
)

// Writer emits the final account snapshot as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter returns a writer emitting to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteSnapshot writes one record per account sorted by client id, with
// amounts rendered to four decimal places.
func (w *Writer) WriteSnapshot(accounts []domain.Account) error {
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })

	if err := w.csv.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return err
	}

	for _, a := range accounts {
		rec := []string{
			strconv.FormatUint(uint64(a.ID), 10),
			moneypkg.Format(float64(a.Available)),
			moneypkg.Format(float64(a.Held)),
			moneypkg.Format(float64(a.Total)),
			strconv.FormatBool(a.Locked),
		}

		if err := w.csv.Write(rec); err != nil {
			return err
		}
	}

	w.csv.Flush()

	return w.csv.Error()
}
