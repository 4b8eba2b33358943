// Package ledgerrepo manages repository layer of ledgers.
package ledgerrepo

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/go-vera/ledgerbook/internal/domain"
	"github.com/go-vera/ledgerbook/pkg/dbpkg"
	"github.com/go-vera/ledgerbook/pkg/errorspkg"
)

// RepoPGS facilitates ledger repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns ledger RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const createQuery = `
INSERT INTO
    ledgers (name, type)
VALUES
    ($1, $2)
RETURNING id, name, type, created_at
`

// Create creates the ledger and then returns it.
func (r *RepoPGS) Create(ctx context.Context, name string, ledgerType domain.LedgerType) (domain.Ledger, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, name, ledgerType)

	var lg domain.Ledger

	err := row.Scan(
		&lg.ID,
		&lg.Name,
		&lg.Type,
		&lg.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "ledgers_type_check" {
				return lg, domain.ErrInvalidLedgerType
			}
		}

		return lg, errorspkg.ErrInternal
	}

	return lg, nil
}

const getQuery = `
SELECT
	id, name, type, created_at
FROM ledgers
WHERE id = $1
`

// Get returns the ledger with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int32) (domain.Ledger, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	var lg domain.Ledger

	err := row.Scan(
		&lg.ID,
		&lg.Name,
		&lg.Type,
		&lg.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return lg, domain.ErrLedgerNotFound
		}

		return lg, errorspkg.ErrInternal
	}

	return lg, nil
}

const balanceComponentsQuery = `
SELECT
    COALESCE(SUM(t.debit), 0),
    COALESCE(SUM(t.credit), 0)
FROM journal_transactions AS t
JOIN journals AS j ON j.id = t.journal_id
WHERE
    j.ledger_id = $1
    AND t.currency = $2
    AND t.deleted_at IS NULL
`

// BalanceComponents returns the debit and credit totals in minor units over
// all non-deleted transactions of all journals in the ledger, restricted to
// the given currency. An empty transaction set yields two zeros.
func (r *RepoPGS) BalanceComponents(ctx context.Context, ledgerID int32, currency string) (debit, credit int64, err error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, balanceComponentsQuery, ledgerID, currency)

	if err := row.Scan(&debit, &credit); err != nil {
		l.Error().Err(err).Send()
		return 0, 0, errorspkg.ErrInternal
	}

	return debit, credit, nil
}
