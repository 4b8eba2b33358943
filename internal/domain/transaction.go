package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/go-vera/ledgerbook/pkg/moneypkg"
)

var (
	// ErrTransactionNotFound indicates that the journal transaction is not found.
	ErrTransactionNotFound = errors.New("journal transaction not found")
	// ErrInvalidDirection indicates a direction other than debit or credit.
	ErrInvalidDirection = errors.New("direction must be debit or credit")
	// ErrInvalidEntryValue indicates a non-positive entry amount.
	ErrInvalidEntryValue = errors.New("entry amount must be positive")
)

// Direction tells whether an entry debits or credits a journal.
type Direction string

// Valid directions.
const (
	DirectionDebit  Direction = "debit"
	DirectionCredit Direction = "credit"
)

// IsValid returns true if the direction is debit or credit.
func (d Direction) IsValid() bool {
	return d == DirectionDebit || d == DirectionCredit
}

// JournalTransaction is one immutable debit or credit entry against a journal.
// Exactly one of Debit and Credit is set and its value is strictly positive.
// A soft deleted transaction keeps its row but is excluded from all balances.
type JournalTransaction struct {
	ID               uuid.UUID  `json:"id"`
	JournalID        int64      `json:"journal_id"`
	Debit            *int64     `json:"debit,omitempty"`
	Credit           *int64     `json:"credit,omitempty"`
	Currency         string     `json:"currency"`
	Memo             string     `json:"memo,omitempty"`
	Reference        *EntityRef `json:"reference,omitempty"`
	TransactionGroup *uuid.UUID `json:"transaction_group,omitempty"`
	PostDate         time.Time  `json:"post_date"`
	CreatedAt        time.Time  `json:"created_at"`
	DeletedAt        *time.Time `json:"deleted_at,omitempty"`
}

// Signed returns the transaction amount as credit minus debit in minor units.
func (t JournalTransaction) Signed() int64 {
	var amount int64

	if t.Credit != nil {
		amount += *t.Credit
	}

	if t.Debit != nil {
		amount -= *t.Debit
	}

	return amount
}

// CreateTransactionParams is the input data to post a journal transaction.
type CreateTransactionParams struct {
	JournalID        int64
	Direction        Direction
	Amount           moneypkg.Money
	Memo             string
	Reference        *EntityRef
	TransactionGroup *uuid.UUID
	PostDate         time.Time
}

// PostTxResult is the result of posting or soft deleting a journal transaction:
// the affected transaction plus the journal with its refreshed balance cache.
type PostTxResult struct {
	Transaction JournalTransaction `json:"transaction"`
	Journal     Journal            `json:"journal"`
}
