// Package journalrepo manages repository layer of journals.
package journalrepo

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/go-vera/ledgerbook/internal/domain"
	"github.com/go-vera/ledgerbook/pkg/dbpkg"
	"github.com/go-vera/ledgerbook/pkg/errorspkg"
)

// RepoPGS facilitates journal repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns journal RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const createQuery = `
INSERT INTO
    journals (ledger_id, owner_type, owner_id, currency, balance)
VALUES
    ($1, $2, $3, $4, 0)
RETURNING id, ledger_id, owner_type, owner_id, currency, balance, created_at
`

// Create creates a journal with a zero balance cache and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateJournalParams) (domain.Journal, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, arg.LedgerID, arg.Owner.Type, arg.Owner.ID, arg.Currency)

	j, err := scanJournal(row)
	if err != nil {
		l.Error().Err(err).Msgf("Create(ctx, %+v)", arg)

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "journals_owner_type_owner_id_key":
				return j, domain.ErrJournalAlreadyExists
			case "journals_ledger_id_fkey":
				return j, domain.ErrLedgerNotFound
			}
		}

		return j, errorspkg.ErrInternal
	}

	return j, nil
}

const getQuery = `
SELECT
	id, ledger_id, owner_type, owner_id, currency, balance, created_at
FROM journals
WHERE id = $1
`

// Get returns the journal with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.Journal, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	j, err := scanJournal(row)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return j, domain.ErrJournalNotFound
		}

		return j, errorspkg.ErrInternal
	}

	return j, nil
}

const getByOwnerQuery = `
SELECT
	id, ledger_id, owner_type, owner_id, currency, balance, created_at
FROM journals
WHERE owner_type = $1 AND owner_id = $2
`

// GetByOwner returns the journal belonging to the given owner.
func (r *RepoPGS) GetByOwner(ctx context.Context, owner domain.EntityRef) (domain.Journal, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getByOwnerQuery, owner.Type, owner.ID)

	j, err := scanJournal(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return j, domain.ErrJournalNotFound
		}

		l.Error().Err(err).Send()

		return j, errorspkg.ErrInternal
	}

	return j, nil
}

const getForUpdateQuery = `
SELECT
	id, ledger_id, owner_type, owner_id, currency, balance, created_at
FROM journals
WHERE id = $1
FOR UPDATE
`

// GetForUpdate returns the journal with the given id and locks its row for
// the rest of the surrounding transaction. Posting and balance recomputation
// for one journal are serialized through this lock.
func (r *RepoPGS) GetForUpdate(ctx context.Context, id int64) (domain.Journal, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getForUpdateQuery, id)

	j, err := scanJournal(row)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return j, domain.ErrJournalNotFound
		}

		return j, errorspkg.ErrInternal
	}

	return j, nil
}

const recomputeBalanceQuery = `
UPDATE journals
SET balance = (
    SELECT COALESCE(SUM(t.credit), 0) - COALESCE(SUM(t.debit), 0)
    FROM journal_transactions AS t
    WHERE
        t.journal_id = journals.id
        AND t.currency = journals.currency
        AND t.deleted_at IS NULL
)
WHERE id = $1
RETURNING id, ledger_id, owner_type, owner_id, currency, balance, created_at
`

// RecomputeBalance rewrites the journal balance cache as the full credit minus
// debit aggregate over its non-deleted transactions and returns the journal.
// The aggregate is recomputed from scratch, so the operation is idempotent.
func (r *RepoPGS) RecomputeBalance(ctx context.Context, id int64) (domain.Journal, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, recomputeBalanceQuery, id)

	j, err := scanJournal(row)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return j, domain.ErrJournalNotFound
		}

		return j, errorspkg.ErrInternal
	}

	return j, nil
}

func scanJournal(row *sql.Row) (domain.Journal, error) {
	var (
		j        domain.Journal
		ledgerID sql.NullInt32
	)

	err := row.Scan(
		&j.ID,
		&ledgerID,
		&j.Owner.Type,
		&j.Owner.ID,
		&j.Currency,
		&j.Balance,
		&j.CreatedAt,
	)
	if err != nil {
		return j, err
	}

	if ledgerID.Valid {
		j.LedgerID = &ledgerID.Int32
	}

	return j, nil
}
