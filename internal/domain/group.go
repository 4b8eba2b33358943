package domain

import (
	"errors"
	"time"

	"github.com/go-vera/ledgerbook/pkg/moneypkg"
)

var (
	// ErrDebitsCreditsMismatch indicates that a transaction group does not balance.
	ErrDebitsCreditsMismatch = errors.New("debits and credits do not equal")
	// ErrCommitFailed indicates that the atomic group write failed after
	// validation passed. It wraps the underlying store error and implies that
	// all writes of the group have been rolled back.
	ErrCommitFailed = errors.New("transaction group could not be processed")
	// ErrGroupNotOpen indicates an operation on a committed or failed group.
	ErrGroupNotOpen = errors.New("transaction group is no longer open")
)

// GroupEntry is one staged debit or credit of a transaction group,
// not yet persisted.
type GroupEntry struct {
	JournalID int64          `json:"journal_id"`
	Direction Direction      `json:"direction"`
	Amount    moneypkg.Money `json:"-"`
	Memo      string         `json:"memo,omitempty"`
	Reference *EntityRef     `json:"reference,omitempty"`
	PostDate  time.Time      `json:"post_date,omitempty"`
}
