//go:build integration

package ledgerrepo_test

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/go-vera/ledgerbook/internal/domain"
	"github.com/go-vera/ledgerbook/internal/integrationtest"
	"github.com/go-vera/ledgerbook/internal/integrationtest/helpers"
	"github.com/go-vera/ledgerbook/internal/ledgerrepo"
	"github.com/go-vera/ledgerbook/pkg/configpkg"
	"github.com/go-vera/ledgerbook/pkg/currencypkg"
	"github.com/go-vera/ledgerbook/pkg/randompkg"
)

var (
	dbDriver string
	dbSource string
)

func TestMain(m *testing.M) {
	config, err := configpkg.Load("../../configs")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	dbDriver = config.DBDriver
	dbSource = config.DBSource

	os.Exit(m.Run())
}

func TestCreate(t *testing.T) {
	testCases := []struct {
		name       string
		ledgerType domain.LedgerType
		wantErr    error
	}{
		{
			name:       "OK",
			ledgerType: domain.LedgerTypeAsset,
		},
		{
			name:       "ConstraintViolation:ledgers_type_check",
			ledgerType: domain.LedgerType("savings"),
			wantErr:    domain.ErrInvalidLedgerType,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tx := integrationtest.SetupTX(t, dbDriver, dbSource)
			ledgerRepo := ledgerrepo.NewRepoPGS(tx)
			name := randompkg.String(10)

			got, err := ledgerRepo.Create(context.Background(), name, tc.ledgerType)
			if err != nil {
				if err == tc.wantErr {
					return
				}
				t.Fatalf(`ledgerRepo.Create(context.Background(), %v, %v) returned error: %v`, name, tc.ledgerType, err)
			}

			if got.ID == 0 {
				t.Error("got.ID = 0, want non-zero")
			}

			if got.Name != name {
				t.Errorf("got.Name = %v, want %v", got.Name, name)
			}

			if got.Type != tc.ledgerType {
				t.Errorf("got.Type = %v, want %v", got.Type, tc.ledgerType)
			}
		})
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	tx := integrationtest.SetupTX(t, dbDriver, dbSource)
	ledgerRepo := ledgerrepo.NewRepoPGS(tx)

	want := helpers.SeedLedger(t, tx, domain.LedgerTypeIncome)

	got, err := ledgerRepo.Get(context.Background(), want.ID)
	if err != nil {
		t.Fatalf(`ledgerRepo.Get(context.Background(), %v) returned error: %v`, want.ID, err)
	}

	if got.ID != want.ID || got.Name != want.Name || got.Type != want.Type {
		t.Errorf("got = %+v, want %+v", got, want)
	}

	if _, err := ledgerRepo.Get(context.Background(), 0); err != domain.ErrLedgerNotFound {
		t.Errorf(`ledgerRepo.Get(context.Background(), 0) returned error %v, want %v`, err, domain.ErrLedgerNotFound)
	}
}

func TestBalanceComponents(t *testing.T) {
	t.Parallel()

	tx := integrationtest.SetupTX(t, dbDriver, dbSource)
	ledgerRepo := ledgerrepo.NewRepoPGS(tx)

	ledger := helpers.SeedLedger(t, tx, domain.LedgerTypeAsset)
	journalA := helpers.SeedJournalWith(t, tx, currencypkg.USD, &ledger.ID)
	journalB := helpers.SeedJournalWith(t, tx, currencypkg.USD, &ledger.ID)

	helpers.SeedTransaction(t, tx, journalA, domain.DirectionDebit, 10000)
	helpers.SeedTransaction(t, tx, journalB, domain.DirectionDebit, 5000)
	helpers.SeedTransaction(t, tx, journalB, domain.DirectionCredit, 6000)

	// Tombstoned transactions are excluded from the aggregate.
	deleted := helpers.SeedTransaction(t, tx, journalA, domain.DirectionDebit, 7000)
	if _, err := tx.Exec(`UPDATE journal_transactions SET deleted_at = now() WHERE id = $1`, deleted.ID); err != nil {
		t.Fatalf("tombstoning transaction failed: %v", err)
	}

	debit, credit, err := ledgerRepo.BalanceComponents(context.Background(), ledger.ID, currencypkg.USD)
	if err != nil {
		t.Fatalf(`ledgerRepo.BalanceComponents(context.Background(), %v, USD) returned error: %v`, ledger.ID, err)
	}

	if debit != 15000 {
		t.Errorf("debit = %v, want 15000", debit)
	}

	if credit != 6000 {
		t.Errorf("credit = %v, want 6000", credit)
	}

	// A ledger without transactions aggregates to zero.
	empty := helpers.SeedLedger(t, tx, domain.LedgerTypeExpense)

	debit, credit, err = ledgerRepo.BalanceComponents(context.Background(), empty.ID, currencypkg.USD)
	if err != nil {
		t.Fatalf(`ledgerRepo.BalanceComponents(context.Background(), %v, USD) returned error: %v`, empty.ID, err)
	}

	if debit != 0 || credit != 0 {
		t.Errorf("debit, credit = %v, %v, want 0, 0", debit, credit)
	}
}
