// Package transactionrepo manages repository layer of journal transactions.
package transactionrepo

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/go-vera/ledgerbook/internal/domain"
	"github.com/go-vera/ledgerbook/internal/journalrepo"
	"github.com/go-vera/ledgerbook/pkg/dbpkg"
	"github.com/go-vera/ledgerbook/pkg/errorspkg"
	"github.com/go-vera/ledgerbook/pkg/moneypkg"
)

// RepoPGS facilitates journal transaction repository layer logic.
type RepoPGS struct {
	db   dbpkg.SQLInterface
	conn *sql.DB
}

// NewTxRepoPGS returns transaction RepoPGS scoped to an existing db transaction.
func NewTxRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

// NewRepoPGS returns transaction RepoPGS with a connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{
		db:   db,
		conn: db,
	}
}

const transactionColumns = `
	id, journal_id, debit, credit, currency, memo,
	reference_type, reference_id, transaction_group,
	post_date, created_at, deleted_at
`

const createQuery = `
INSERT INTO
    journal_transactions (id, journal_id, debit, credit, currency, memo,
                          reference_type, reference_id, transaction_group, post_date)
VALUES
    ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING` + transactionColumns

// Create creates the journal transaction and then returns it.
//
// The id is an ordered (time sortable) UUID generated here, not by the db.
// A zero post date defaults to now.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateTransactionParams) (domain.JournalTransaction, error) {
	l := zerolog.Ctx(ctx)

	var t domain.JournalTransaction

	id, err := uuid.NewV7()
	if err != nil {
		l.Error().Err(err).Send()
		return t, errorspkg.ErrInternal
	}

	var debit, credit sql.NullInt64

	switch arg.Direction {
	case domain.DirectionDebit:
		debit = sql.NullInt64{Int64: arg.Amount.Amount(), Valid: true}
	case domain.DirectionCredit:
		credit = sql.NullInt64{Int64: arg.Amount.Amount(), Valid: true}
	default:
		return t, domain.ErrInvalidDirection
	}

	postDate := arg.PostDate
	if postDate.IsZero() {
		postDate = time.Now()
	}

	var refType, refID sql.NullString
	if arg.Reference != nil {
		refType = sql.NullString{String: arg.Reference.Type, Valid: true}
		refID = sql.NullString{String: arg.Reference.ID, Valid: true}
	}

	var group uuid.NullUUID
	if arg.TransactionGroup != nil {
		group = uuid.NullUUID{UUID: *arg.TransactionGroup, Valid: true}
	}

	row := r.db.QueryRowContext(ctx, createQuery,
		id,
		arg.JournalID,
		debit,
		credit,
		arg.Amount.Currency(),
		newNullString(arg.Memo),
		refType,
		refID,
		group,
		postDate,
	)

	t, err = scanTransaction(row)
	if err != nil {
		l.Error().Err(err).Msgf("Create(ctx, %+v)", arg)

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "journal_transactions_journal_id_fkey":
				return t, domain.ErrJournalNotFound
			case "journal_transactions_debit_check",
				"journal_transactions_credit_check",
				"journal_transactions_debit_or_credit_check":
				return t, domain.ErrInvalidEntryValue
			}
		}

		return t, errorspkg.ErrInternal
	}

	return t, nil
}

const getQuery = `
SELECT` + transactionColumns + `
FROM journal_transactions
WHERE id = $1
`

// Get returns the journal transaction with the given id.
func (r *RepoPGS) Get(ctx context.Context, id uuid.UUID) (domain.JournalTransaction, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	t, err := scanTransaction(row)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return t, domain.ErrTransactionNotFound
		}

		return t, errorspkg.ErrInternal
	}

	return t, nil
}

const listByJournalQuery = `
SELECT` + transactionColumns + `
FROM journal_transactions
WHERE journal_id = $1
ORDER BY id
LIMIT $2 OFFSET $3
`

// ListByJournal returns the specified number of transactions for the given journal.
func (r *RepoPGS) ListByJournal(ctx context.Context, journalID int64, limit, offset int32) ([]domain.JournalTransaction, error) {
	return r.list(ctx, listByJournalQuery, journalID, limit, offset)
}

const listByGroupQuery = `
SELECT` + transactionColumns + `
FROM journal_transactions
WHERE transaction_group = $1
ORDER BY id
`

// ListByGroup returns all transactions sharing the given transaction group id.
func (r *RepoPGS) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]domain.JournalTransaction, error) {
	return r.list(ctx, listByGroupQuery, groupID)
}

func (r *RepoPGS) list(ctx context.Context, query string, args ...interface{}) ([]domain.JournalTransaction, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.JournalTransaction{}

	for rows.Next() {
		t, err := scanTransactionRows(rows)
		if err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, t)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const sumDebitQuery = `
SELECT COALESCE(SUM(debit), 0)
FROM journal_transactions
WHERE
    journal_id = $1
    AND currency = $2
    AND deleted_at IS NULL
    AND ($3::timestamptz IS NULL OR post_date <= $3)
`

// SumDebit returns the debit total in minor units over the journal's
// non-deleted transactions in the given currency. A non-nil asOf restricts
// the total to transactions posted at or before it.
func (r *RepoPGS) SumDebit(ctx context.Context, journalID int64, currency string, asOf *time.Time) (int64, error) {
	return r.sum(ctx, sumDebitQuery, journalID, currency, asOf)
}

const sumCreditQuery = `
SELECT COALESCE(SUM(credit), 0)
FROM journal_transactions
WHERE
    journal_id = $1
    AND currency = $2
    AND deleted_at IS NULL
    AND ($3::timestamptz IS NULL OR post_date <= $3)
`

// SumCredit returns the credit total in minor units over the journal's
// non-deleted transactions in the given currency, optionally up to asOf.
func (r *RepoPGS) SumCredit(ctx context.Context, journalID int64, currency string, asOf *time.Time) (int64, error) {
	return r.sum(ctx, sumCreditQuery, journalID, currency, asOf)
}

func (r *RepoPGS) sum(ctx context.Context, query string, journalID int64, currency string, asOf *time.Time) (int64, error) {
	l := zerolog.Ctx(ctx)

	var cutoff sql.NullTime
	if asOf != nil {
		cutoff = sql.NullTime{Time: *asOf, Valid: true}
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, query, journalID, currency, cutoff).Scan(&total); err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrInternal
	}

	return total, nil
}

// Post creates a journal transaction and recomputes the journal's balance
// cache within a single db transaction. The journal row is locked first, so
// concurrent posts against the same journal serialize instead of racing the
// read-aggregate-then-write-cache step.
func (r *RepoPGS) Post(ctx context.Context, arg domain.CreateTransactionParams) (domain.PostTxResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.PostTxResult

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			l.Error().Err(err).Send()
		}
	}()

	txRepo := NewTxRepoPGS(tx)
	journalRepo := journalrepo.NewRepoPGS(tx)

	journal, err := journalRepo.GetForUpdate(ctx, arg.JournalID)
	if err != nil {
		return result, err
	}

	if journal.Currency != arg.Amount.Currency() {
		return result, moneypkg.ErrCurrencyMismatch
	}

	result.Transaction, err = txRepo.Create(ctx, arg)
	if err != nil {
		return result, err
	}

	result.Journal, err = journalRepo.RecomputeBalance(ctx, arg.JournalID)
	if err != nil {
		return result, err
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	return result, nil
}

const softDeleteQuery = `
UPDATE journal_transactions
SET deleted_at = now()
WHERE id = $1 AND deleted_at IS NULL
RETURNING` + transactionColumns

// SoftDelete tombstones a journal transaction and recomputes the journal's
// balance cache within a single db transaction. The row is kept for audit
// history; an already deleted transaction yields ErrTransactionNotFound.
func (r *RepoPGS) SoftDelete(ctx context.Context, id uuid.UUID) (domain.PostTxResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.PostTxResult

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			l.Error().Err(err).Send()
		}
	}()

	txRepo := NewTxRepoPGS(tx)
	journalRepo := journalrepo.NewRepoPGS(tx)

	existing, err := txRepo.Get(ctx, id)
	if err != nil {
		return result, err
	}

	if _, err := journalRepo.GetForUpdate(ctx, existing.JournalID); err != nil {
		return result, err
	}

	row := tx.QueryRowContext(ctx, softDeleteQuery, id)

	result.Transaction, err = scanTransaction(row)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return result, domain.ErrTransactionNotFound
		}

		return result, errorspkg.ErrInternal
	}

	result.Journal, err = journalRepo.RecomputeBalance(ctx, existing.JournalID)
	if err != nil {
		return result, err
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	return result, nil
}

// Recompute rewrites the journal's balance cache from its transactions under
// the journal row lock and returns the refreshed journal.
func (r *RepoPGS) Recompute(ctx context.Context, journalID int64) (domain.Journal, error) {
	l := zerolog.Ctx(ctx)

	var journal domain.Journal

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return journal, errorspkg.ErrInternal
	}

	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			l.Error().Err(err).Send()
		}
	}()

	journalRepo := journalrepo.NewRepoPGS(tx)

	if _, err := journalRepo.GetForUpdate(ctx, journalID); err != nil {
		return journal, err
	}

	journal, err = journalRepo.RecomputeBalance(ctx, journalID)
	if err != nil {
		return journal, err
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return journal, errorspkg.ErrInternal
	}

	return journal, nil
}

type scannable interface {
	Scan(dest ...interface{}) error
}

func scanTransaction(row *sql.Row) (domain.JournalTransaction, error) {
	return scanTransactionRows(row)
}

func scanTransactionRows(row scannable) (domain.JournalTransaction, error) {
	var (
		t                domain.JournalTransaction
		debit, credit    sql.NullInt64
		memo             sql.NullString
		refType, refID   sql.NullString
		transactionGroup uuid.NullUUID
		deletedAt        sql.NullTime
	)

	err := row.Scan(
		&t.ID,
		&t.JournalID,
		&debit,
		&credit,
		&t.Currency,
		&memo,
		&refType,
		&refID,
		&transactionGroup,
		&t.PostDate,
		&t.CreatedAt,
		&deletedAt,
	)
	if err != nil {
		return t, err
	}

	if debit.Valid {
		t.Debit = &debit.Int64
	}

	if credit.Valid {
		t.Credit = &credit.Int64
	}

	if memo.Valid {
		t.Memo = memo.String
	}

	if refType.Valid {
		t.Reference = &domain.EntityRef{Type: refType.String, ID: refID.String}
	}

	if transactionGroup.Valid {
		t.TransactionGroup = &transactionGroup.UUID
	}

	if deletedAt.Valid {
		t.DeletedAt = &deletedAt.Time
	}

	return t, nil
}

func newNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}

	return sql.NullString{String: s, Valid: true}
}
