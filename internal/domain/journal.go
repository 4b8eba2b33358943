package domain

import (
	"errors"
	"time"

	"github.com/go-vera/ledgerbook/pkg/moneypkg"
)

var (
	// ErrJournalAlreadyExists indicates that the owner already has a journal.
	ErrJournalAlreadyExists = errors.New("journal already exists for this owner")
	// ErrJournalNotFound indicates that the journal is not found.
	ErrJournalNotFound = errors.New("journal not found")
)

// EntityRef identifies an external entity by an opaque (type, id) pair.
// The engine never dereferences it; resolution belongs to the caller.
type EntityRef struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// Journal is a single account instance belonging to one owner,
// denominated in one currency.
//
// Balance is a derived cache of the sum over the journal's non-deleted
// transactions; the authoritative value is always that sum.
type Journal struct {
	ID        int64     `json:"id"`
	LedgerID  *int32    `json:"ledger_id,omitempty"`
	Owner     EntityRef `json:"owner"`
	Currency  string    `json:"currency"`
	Balance   int64     `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
}

// CachedBalance returns the cached balance as money in the journal currency.
func (j Journal) CachedBalance() moneypkg.Money {
	return moneypkg.New(j.Balance, j.Currency)
}

// CreateJournalParams holds data needed for Journal creation.
type CreateJournalParams struct {
	Owner    EntityRef `json:"owner"`
	Currency string    `json:"currency"`
	LedgerID *int32    `json:"ledger_id,omitempty"`
}
