// Package helpers seeds rows for integration tests.
package helpers

import (
	"context"
	"testing"

	"github.com/go-vera/ledgerbook/internal/domain"
	"github.com/go-vera/ledgerbook/internal/journalrepo"
	"github.com/go-vera/ledgerbook/internal/ledgerrepo"
	"github.com/go-vera/ledgerbook/internal/transactionrepo"
	"github.com/go-vera/ledgerbook/pkg/currencypkg"
	"github.com/go-vera/ledgerbook/pkg/dbpkg"
	"github.com/go-vera/ledgerbook/pkg/moneypkg"
	"github.com/go-vera/ledgerbook/pkg/randompkg"
)

// SeedLedger creates a ledger of the given type with a random name.
func SeedLedger(t *testing.T, db dbpkg.SQLInterface, ledgerType domain.LedgerType) domain.Ledger {
	t.Helper()

	ledger, err := ledgerrepo.NewRepoPGS(db).Create(context.Background(), randompkg.String(10), ledgerType)
	if err != nil {
		t.Fatalf("seeding ledger failed: %v", err)
	}

	return ledger
}

// SeedJournal creates a USD journal for a random owner.
func SeedJournal(t *testing.T, db dbpkg.SQLInterface) domain.Journal {
	t.Helper()

	return SeedJournalWith(t, db, currencypkg.USD, nil)
}

// SeedJournalWith creates a journal for a random owner with the given currency
// and optional ledger.
func SeedJournalWith(t *testing.T, db dbpkg.SQLInterface, currency string, ledgerID *int32) domain.Journal {
	t.Helper()

	arg := domain.CreateJournalParams{
		Owner:    domain.EntityRef{Type: "user", ID: randompkg.Owner()},
		Currency: currency,
		LedgerID: ledgerID,
	}

	journal, err := journalrepo.NewRepoPGS(db).Create(context.Background(), arg)
	if err != nil {
		t.Fatalf("seeding journal failed: %v", err)
	}

	return journal
}

// SeedTransaction creates a journal transaction without touching the journal's
// balance cache.
func SeedTransaction(t *testing.T, db dbpkg.SQLInterface, journal domain.Journal, direction domain.Direction, minorUnits int64) domain.JournalTransaction {
	t.Helper()

	arg := domain.CreateTransactionParams{
		JournalID: journal.ID,
		Direction: direction,
		Amount:    moneypkg.New(minorUnits, journal.Currency),
		Memo:      randompkg.Memo(),
	}

	transaction, err := transactionrepo.NewTxRepoPGS(db).Create(context.Background(), arg)
	if err != nil {
		t.Fatalf("seeding transaction failed: %v", err)
	}

	return transaction
}

// SeedTransactions creates n debit transactions of 100 minor units each.
func SeedTransactions(t *testing.T, db dbpkg.SQLInterface, journal domain.Journal, n int) []domain.JournalTransaction {
	t.Helper()

	transactions := make([]domain.JournalTransaction, 0, n)

	for i := 0; i < n; i++ {
		transactions = append(transactions, SeedTransaction(t, db, journal, domain.DirectionDebit, 100))
	}

	return transactions
}
