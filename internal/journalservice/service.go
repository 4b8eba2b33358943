// Package journalservice manages business logic layer of journals.
package journalservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/go-vera/ledgerbook/internal/domain"
	"github.com/go-vera/ledgerbook/pkg/configpkg"
	"github.com/go-vera/ledgerbook/pkg/moneypkg"
)

// Repo provides journal data access layer interface needed by journal service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package journalservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateJournalParams) (domain.Journal, error)
	Get(ctx context.Context, id int64) (domain.Journal, error)
	GetByOwner(ctx context.Context, owner domain.EntityRef) (domain.Journal, error)
}

// TransactionRepo provides transaction data access layer interface needed by
// journal service layer. Post, SoftDelete and Recompute run the write and the
// balance cache update as one atomic unit.
type TransactionRepo interface {
	Post(ctx context.Context, arg domain.CreateTransactionParams) (domain.PostTxResult, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (domain.PostTxResult, error)
	Recompute(ctx context.Context, journalID int64) (domain.Journal, error)
	SumDebit(ctx context.Context, journalID int64, currency string, asOf *time.Time) (int64, error)
	SumCredit(ctx context.Context, journalID int64, currency string, asOf *time.Time) (int64, error)
	ListByJournal(ctx context.Context, journalID int64, limit, offset int32) ([]domain.JournalTransaction, error)
}

// Service facilitates journal service layer logic.
type Service struct {
	repo         Repo
	transactions TransactionRepo
	config       configpkg.Config
}

// New returns journal service struct to manage journal bussines logic.
func New(jr Repo, tr TransactionRepo, config configpkg.Config) *Service {
	return &Service{
		repo:         jr,
		transactions: tr,
		config:       config,
	}
}

// Init creates the single journal for the given owner with a zero balance.
// An empty currency falls back to the configured default. A second call for
// the same owner fails with ErrJournalAlreadyExists.
func (s *Service) Init(ctx context.Context, owner domain.EntityRef, currency string, ledgerID *int32) (domain.Journal, error) {
	l := zerolog.Ctx(ctx)

	if currency == "" {
		currency = s.config.DefaultCurrency
	}

	_, err := s.repo.GetByOwner(ctx, owner)
	if err == nil {
		l.Info().Msgf("journal already exists for owner %s:%s", owner.Type, owner.ID)
		return domain.Journal{}, domain.ErrJournalAlreadyExists
	}

	if !errors.Is(err, domain.ErrJournalNotFound) {
		l.Error().Err(err).Send()
		return domain.Journal{}, err
	}

	return s.repo.Create(ctx, domain.CreateJournalParams{
		Owner:    owner,
		Currency: currency,
		LedgerID: ledgerID,
	})
}

// Get returns the journal with the given id.
func (s *Service) Get(ctx context.Context, id int64) (domain.Journal, error) {
	return s.repo.Get(ctx, id)
}

// PostParams holds the optional attributes of a posted transaction.
type PostParams struct {
	Memo             string
	Reference        *domain.EntityRef
	TransactionGroup *uuid.UUID
	PostDate         time.Time
}

// Debit posts a debit transaction against the journal.
func (s *Service) Debit(ctx context.Context, journalID int64, amount moneypkg.Money, arg PostParams) (domain.JournalTransaction, error) {
	return s.post(ctx, journalID, domain.DirectionDebit, amount, arg)
}

// Credit posts a credit transaction against the journal.
func (s *Service) Credit(ctx context.Context, journalID int64, amount moneypkg.Money, arg PostParams) (domain.JournalTransaction, error) {
	return s.post(ctx, journalID, domain.DirectionCredit, amount, arg)
}

// post is the single path creating journal transactions. The amount is
// normalized to its absolute value and must match the journal currency; the
// write and the balance recompute commit together.
func (s *Service) post(ctx context.Context, journalID int64, direction domain.Direction, amount moneypkg.Money, arg PostParams) (domain.JournalTransaction, error) {
	l := zerolog.Ctx(ctx)

	journal, err := s.repo.Get(ctx, journalID)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.JournalTransaction{}, err
	}

	if amount.Currency() != journal.Currency {
		l.Info().Msgf("amount currency %s does not match journal currency %s", amount.Currency(), journal.Currency)
		return domain.JournalTransaction{}, moneypkg.ErrCurrencyMismatch
	}

	amount = amount.Absolute()
	if amount.IsZero() {
		return domain.JournalTransaction{}, domain.ErrInvalidEntryValue
	}

	result, err := s.transactions.Post(ctx, domain.CreateTransactionParams{
		JournalID:        journalID,
		Direction:        direction,
		Amount:           amount,
		Memo:             arg.Memo,
		Reference:        arg.Reference,
		TransactionGroup: arg.TransactionGroup,
		PostDate:         arg.PostDate,
	})
	if err != nil {
		l.Error().Err(err).Send()
		return domain.JournalTransaction{}, err
	}

	return result.Transaction, nil
}

// RecomputeBalance re-aggregates the journal balance cache from its
// non-deleted transactions and returns the refreshed balance. Calling it
// twice in a row yields the same value.
func (s *Service) RecomputeBalance(ctx context.Context, journalID int64) (moneypkg.Money, error) {
	journal, err := s.transactions.Recompute(ctx, journalID)
	if err != nil {
		return moneypkg.Money{}, err
	}

	return journal.CachedBalance(), nil
}

// DebitBalanceOn returns the debit only balance of the journal up to the end
// of the given day.
func (s *Service) DebitBalanceOn(ctx context.Context, journalID int64, date time.Time) (moneypkg.Money, error) {
	journal, err := s.repo.Get(ctx, journalID)
	if err != nil {
		return moneypkg.Money{}, err
	}

	cutoff := endOfDay(date)

	total, err := s.transactions.SumDebit(ctx, journalID, journal.Currency, &cutoff)
	if err != nil {
		return moneypkg.Money{}, err
	}

	return moneypkg.New(total, journal.Currency), nil
}

// CreditBalanceOn returns the credit only balance of the journal up to the
// end of the given day.
func (s *Service) CreditBalanceOn(ctx context.Context, journalID int64, date time.Time) (moneypkg.Money, error) {
	journal, err := s.repo.Get(ctx, journalID)
	if err != nil {
		return moneypkg.Money{}, err
	}

	cutoff := endOfDay(date)

	total, err := s.transactions.SumCredit(ctx, journalID, journal.Currency, &cutoff)
	if err != nil {
		return moneypkg.Money{}, err
	}

	return moneypkg.New(total, journal.Currency), nil
}

// BalanceAsOf returns credit minus debit over the journal's non-deleted
// transactions posted at or before the end of the given day.
func (s *Service) BalanceAsOf(ctx context.Context, journalID int64, date time.Time) (moneypkg.Money, error) {
	cutoff := endOfDay(date)
	return s.balance(ctx, journalID, &cutoff)
}

// CurrentBalance returns the journal balance as of today, excluding
// future dated transactions.
func (s *Service) CurrentBalance(ctx context.Context, journalID int64) (moneypkg.Money, error) {
	return s.BalanceAsOf(ctx, journalID, time.Now())
}

// Balance returns the journal balance over all non-deleted transactions,
// including future dated ones.
func (s *Service) Balance(ctx context.Context, journalID int64) (moneypkg.Money, error) {
	return s.balance(ctx, journalID, nil)
}

func (s *Service) balance(ctx context.Context, journalID int64, asOf *time.Time) (moneypkg.Money, error) {
	l := zerolog.Ctx(ctx)

	journal, err := s.repo.Get(ctx, journalID)
	if err != nil {
		return moneypkg.Money{}, err
	}

	debit, err := s.transactions.SumDebit(ctx, journalID, journal.Currency, asOf)
	if err != nil {
		l.Error().Err(err).Send()
		return moneypkg.Money{}, err
	}

	credit, err := s.transactions.SumCredit(ctx, journalID, journal.Currency, asOf)
	if err != nil {
		l.Error().Err(err).Send()
		return moneypkg.Money{}, err
	}

	return moneypkg.New(credit-debit, journal.Currency), nil
}

// ListTransactions returns the specified number of transactions for the journal.
func (s *Service) ListTransactions(ctx context.Context, journalID int64, pageSize, pageID int32) ([]domain.JournalTransaction, error) {
	if _, err := s.repo.Get(ctx, journalID); err != nil {
		return nil, err
	}

	return s.transactions.ListByJournal(ctx, journalID, pageSize, (pageID-1)*pageSize)
}

// SoftDeleteTransaction tombstones the transaction and returns the journal's
// recomputed balance with the deleted entry excluded.
func (s *Service) SoftDeleteTransaction(ctx context.Context, id uuid.UUID) (moneypkg.Money, error) {
	result, err := s.transactions.SoftDelete(ctx, id)
	if err != nil {
		return moneypkg.Money{}, err
	}

	return result.Journal.CachedBalance(), nil
}

// endOfDay returns the last nanosecond of the given date's day.
func endOfDay(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), date.Location())
}
