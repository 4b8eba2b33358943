// Package accountingservice coordinates double-entry transaction groups.
//
// A TransactionGroup stages debits and credits across one or more journals
// and commits them atomically once they balance to zero. Groups move through
// Open -> Validated -> Committed, or end in Failed; terminal states are final
// and a new group must be created per commit attempt.
package accountingservice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/go-vera/ledgerbook/internal/domain"
	"github.com/go-vera/ledgerbook/pkg/moneypkg"
)

// Repo provides data access layer interface needed by accounting service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package accountingservice
type Repo interface {
	CommitGroup(ctx context.Context, groupID uuid.UUID, entries []domain.GroupEntry) ([]domain.JournalTransaction, error)
	ListByGroup(ctx context.Context, groupID uuid.UUID) ([]domain.JournalTransaction, error)
}

// Journals provides the journal lookups needed to stage entries by id.
type Journals interface {
	Get(ctx context.Context, id int64) (domain.Journal, error)
}

// Service facilitates accounting service layer logic.
type Service struct {
	repo     Repo
	journals Journals
}

// New returns accounting service struct to manage transaction groups.
func New(r Repo, journals Journals) *Service {
	return &Service{
		repo:     r,
		journals: journals,
	}
}

// State is the lifecycle state of a transaction group.
type State string

// Transaction group states. StateCommitted and StateFailed are terminal.
const (
	StateOpen      State = "open"
	StateValidated State = "validated"
	StateCommitted State = "committed"
	StateFailed    State = "failed"
)

// TransactionGroup assembles a balanced set of journal transactions and
// commits them atomically. It lives in memory only; nothing is persisted
// until Commit succeeds.
type TransactionGroup struct {
	repo    Repo
	state   State
	pending []domain.GroupEntry
}

// NewTransactionGroup returns an open transaction group.
func (s *Service) NewTransactionGroup() *TransactionGroup {
	return &TransactionGroup{
		repo:  s.repo,
		state: StateOpen,
	}
}

// State returns the group's lifecycle state.
func (g *TransactionGroup) State() State {
	return g.state
}

// Pending returns the staged entries.
func (g *TransactionGroup) Pending() []domain.GroupEntry {
	return g.pending
}

// AddTransaction stages a debit or credit of the journal. The amount must be
// strictly positive and denominated in the journal's currency. Nothing is
// persisted; validation failures leave no state behind.
func (g *TransactionGroup) AddTransaction(
	journal domain.Journal,
	direction domain.Direction,
	amount moneypkg.Money,
	memo string,
	reference *domain.EntityRef,
	postDate time.Time,
) error {
	if g.state != StateOpen {
		return domain.ErrGroupNotOpen
	}

	if !direction.IsValid() {
		return domain.ErrInvalidDirection
	}

	if !amount.IsPositive() {
		return domain.ErrInvalidEntryValue
	}

	if amount.Currency() != journal.Currency {
		return moneypkg.ErrCurrencyMismatch
	}

	g.pending = append(g.pending, domain.GroupEntry{
		JournalID: journal.ID,
		Direction: direction,
		Amount:    amount,
		Memo:      memo,
		Reference: reference,
		PostDate:  postDate,
	})

	return nil
}

// Commit validates that staged debits equal staged credits and persists every
// entry as a journal transaction sharing a freshly generated group id, all
// within one atomic store transaction. On success it returns the group id so
// callers can query all transactions sharing it.
//
// Validation failures persist nothing and end the group in StateFailed. A
// store failure after validation surfaces as ErrCommitFailed wrapping the
// cause; the store has already rolled every entry of the group back.
func (g *TransactionGroup) Commit(ctx context.Context) (uuid.UUID, error) {
	l := zerolog.Ctx(ctx)

	if g.state != StateOpen {
		return uuid.Nil, domain.ErrGroupNotOpen
	}

	if err := g.validate(); err != nil {
		g.state = StateFailed
		l.Info().Err(err).Send()

		return uuid.Nil, err
	}

	g.state = StateValidated

	groupID, err := uuid.NewV7()
	if err != nil {
		g.state = StateFailed
		l.Error().Err(err).Send()

		return uuid.Nil, fmt.Errorf("%w: %v", domain.ErrCommitFailed, err)
	}

	if _, err := g.repo.CommitGroup(ctx, groupID, g.pending); err != nil {
		g.state = StateFailed
		l.Error().Err(err).Send()

		return uuid.Nil, fmt.Errorf("%w: %v", domain.ErrCommitFailed, err)
	}

	g.state = StateCommitted

	return groupID, nil
}

// validate checks the balance invariant: staged debit and credit totals must
// be equal and every entry must share one currency. Mixed-currency groups are
// unsupported and rejected outright.
func (g *TransactionGroup) validate() error {
	var debits, credits int64

	for _, e := range g.pending {
		if e.Amount.Currency() != g.pending[0].Amount.Currency() {
			return moneypkg.ErrCurrencyMismatch
		}

		if e.Direction == domain.DirectionCredit {
			credits += e.Amount.Amount()
		} else {
			debits += e.Amount.Amount()
		}
	}

	if debits != credits {
		return fmt.Errorf("%w: debits == %d and credits == %d", domain.ErrDebitsCreditsMismatch, debits, credits)
	}

	return nil
}

// CommitEntries stages the given entries on a fresh group, resolving each
// journal by id, and commits it. It is a convenience wrapper used by the
// delivery layer.
func (s *Service) CommitEntries(ctx context.Context, entries []domain.GroupEntry) (uuid.UUID, error) {
	g := s.NewTransactionGroup()

	for _, e := range entries {
		journal, err := s.journals.Get(ctx, e.JournalID)
		if err != nil {
			return uuid.Nil, err
		}

		if err := g.AddTransaction(journal, e.Direction, e.Amount, e.Memo, e.Reference, e.PostDate); err != nil {
			return uuid.Nil, err
		}
	}

	return g.Commit(ctx)
}

// GroupTransactions returns all transactions sharing the given group id.
func (s *Service) GroupTransactions(ctx context.Context, groupID uuid.UUID) ([]domain.JournalTransaction, error) {
	return s.repo.ListByGroup(ctx, groupID)
}
