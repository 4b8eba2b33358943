// Package accountingrepo manages repository layer of transaction groups.
package accountingrepo

import (
	"context"
	"database/sql"
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/go-vera/ledgerbook/internal/domain"
	"github.com/go-vera/ledgerbook/internal/journalrepo"
	"github.com/go-vera/ledgerbook/internal/transactionrepo"
	"github.com/go-vera/ledgerbook/pkg/errorspkg"
	"github.com/go-vera/ledgerbook/pkg/moneypkg"
)

// RepoPGS facilitates transaction group repository layer logic.
type RepoPGS struct {
	conn *sql.DB
}

// NewRepoPGS returns transaction group RepoPGS.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{conn: db}
}

// CommitGroup persists every staged entry as a journal transaction tagged with
// the group id and recomputes the balance cache of every touched journal, all
// within one db transaction. Either all entries commit or none do.
//
// Journal rows are locked in ascending id order so concurrent groups touching
// the same journals cannot deadlock.
func (r *RepoPGS) CommitGroup(ctx context.Context, groupID uuid.UUID, entries []domain.GroupEntry) ([]domain.JournalTransaction, error) {
	l := zerolog.Ctx(ctx)

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			l.Error().Err(err).Send()
		}
	}()

	txRepo := transactionrepo.NewTxRepoPGS(tx)
	journalRepo := journalrepo.NewRepoPGS(tx)

	journalIDs := distinctJournalIDs(entries)

	for _, id := range journalIDs {
		journal, err := journalRepo.GetForUpdate(ctx, id)
		if err != nil {
			return nil, err
		}

		for _, e := range entries {
			if e.JournalID == id && e.Amount.Currency() != journal.Currency {
				return nil, moneypkg.ErrCurrencyMismatch
			}
		}
	}

	created := make([]domain.JournalTransaction, 0, len(entries))

	for _, e := range entries {
		group := groupID

		t, err := txRepo.Create(ctx, domain.CreateTransactionParams{
			JournalID:        e.JournalID,
			Direction:        e.Direction,
			Amount:           e.Amount,
			Memo:             e.Memo,
			Reference:        e.Reference,
			TransactionGroup: &group,
			PostDate:         e.PostDate,
		})
		if err != nil {
			return nil, err
		}

		created = append(created, t)
	}

	for _, id := range journalIDs {
		if _, err := journalRepo.RecomputeBalance(ctx, id); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return created, nil
}

// ListByGroup returns all transactions sharing the given group id.
func (r *RepoPGS) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]domain.JournalTransaction, error) {
	return transactionrepo.NewRepoPGS(r.conn).ListByGroup(ctx, groupID)
}

func distinctJournalIDs(entries []domain.GroupEntry) []int64 {
	seen := make(map[int64]bool, len(entries))
	ids := make([]int64, 0, len(entries))

	for _, e := range entries {
		if !seen[e.JournalID] {
			seen[e.JournalID] = true
			ids = append(ids, e.JournalID)
		}
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}
