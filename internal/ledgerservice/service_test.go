package ledgerservice

import (
	"context"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-ledger/internal/domain"
)

func sortedSnapshot(s *Service) []domain.Account {
	got := s.Snapshot()
	sort.Slice(got, func(i, j int) bool { return got[i].ID < got[j].ID })

	return got
}

func TestApplyRoutesByClient(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.NoError(t, s.Apply(ctx, domain.Deposit{Client: 1, Tx: 1, Amount: 1}))
	require.NoError(t, s.Apply(ctx, domain.Deposit{Client: 2, Tx: 2, Amount: 2}))
	require.NoError(t, s.Apply(ctx, domain.Deposit{Client: 1, Tx: 3, Amount: 2}))
	require.NoError(t, s.Apply(ctx, domain.Withdrawal{Client: 1, Tx: 4, Amount: 1.5}))

	want := []domain.Account{
		{ID: 1, Available: 1.5, Total: 1.5},
		{ID: 2, Available: 2, Total: 2},
	}

	if diff := cmp.Diff(want, sortedSnapshot(s)); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestAccountSurvivesFailingFirstTransaction(t *testing.T) {
	ctx := context.Background()
	s := New()

	err := s.Apply(ctx, domain.Withdrawal{Client: 7, Tx: 1, Amount: 3})
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)

	want := []domain.Account{{ID: 7}}

	if diff := cmp.Diff(want, s.Snapshot()); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyPropagatesAccountErrors(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.NoError(t, s.Apply(ctx, domain.Deposit{Client: 1, Tx: 1, Amount: 5}))

	err := s.Apply(ctx, domain.Dispute{Client: 1, Tx: 99})
	require.ErrorIs(t, err, domain.ErrTransactionNotFound)
}

func TestSnapshotOfEmptyLedger(t *testing.T) {
	require.Empty(t, New().Snapshot())
}
