// Package domain provides defenitions of all entities.
package domain

import (
	"errors"
	"time"
)

var (
	// ErrLedgerNotFound indicates that the ledger is not found.
	ErrLedgerNotFound = errors.New("ledger not found")
	// ErrInvalidLedgerType indicates an unknown ledger account type.
	ErrInvalidLedgerType = errors.New("invalid ledger type")
)

// LedgerType is the general ledger account type of a ledger.
// It determines the normal balance sign and is fixed at creation.
type LedgerType string

// General ledger account types.
const (
	LedgerTypeAsset     LedgerType = "asset"
	LedgerTypeLiability LedgerType = "liability"
	LedgerTypeEquity    LedgerType = "equity"
	LedgerTypeIncome    LedgerType = "income"
	LedgerTypeExpense   LedgerType = "expense"
)

// IsValid returns true if the ledger type is one of the known account types.
func (t LedgerType) IsValid() bool {
	switch t {
	case LedgerTypeAsset, LedgerTypeLiability, LedgerTypeEquity, LedgerTypeIncome, LedgerTypeExpense:
		return true
	}

	return false
}

// IsDebitNormal returns true if accounts of this type increase with debits.
func (t LedgerType) IsDebitNormal() bool {
	return t == LedgerTypeAsset || t == LedgerTypeExpense
}

// Ledger is a chart-of-accounts bucket of one account type aggregating journals.
type Ledger struct {
	ID        int32      `json:"id"`
	Name      string     `json:"name"`
	Type      LedgerType `json:"type"`
	CreatedAt time.Time  `json:"created_at"`
}
