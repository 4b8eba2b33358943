// Package ledgerservice manages business logic layer of ledgers.
package ledgerservice

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/go-vera/ledgerbook/internal/domain"
	"github.com/go-vera/ledgerbook/pkg/moneypkg"
)

// Repo provides data access layer interface needed by ledger service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package ledgerservice
type Repo interface {
	Create(ctx context.Context, name string, ledgerType domain.LedgerType) (domain.Ledger, error)
	Get(ctx context.Context, id int32) (domain.Ledger, error)
	BalanceComponents(ctx context.Context, ledgerID int32, currency string) (debit, credit int64, err error)
}

// Service facilitates ledger service layer logic.
type Service struct {
	repo Repo
}

// New returns ledger service struct to manage ledger bussines logic.
func New(lr Repo) *Service {
	return &Service{repo: lr}
}

// Create creates a ledger of the given account type. The type is fixed for
// the lifetime of the ledger.
func (s *Service) Create(ctx context.Context, name string, ledgerType domain.LedgerType) (domain.Ledger, error) {
	l := zerolog.Ctx(ctx)

	if !ledgerType.IsValid() {
		l.Info().Msgf("invalid ledger type %q", ledgerType)
		return domain.Ledger{}, domain.ErrInvalidLedgerType
	}

	return s.repo.Create(ctx, name, ledgerType)
}

// Get returns the ledger with the given id.
func (s *Service) Get(ctx context.Context, id int32) (domain.Ledger, error) {
	return s.repo.Get(ctx, id)
}

// CurrentBalance aggregates all non-deleted transactions of the ledger's
// journals in the given currency and applies the normal balance convention:
// asset and expense ledgers carry debit minus credit, liability, equity and
// income ledgers carry credit minus debit. An empty transaction set yields
// a zero balance.
func (s *Service) CurrentBalance(ctx context.Context, id int32, currency string) (moneypkg.Money, error) {
	ledger, err := s.repo.Get(ctx, id)
	if err != nil {
		return moneypkg.Money{}, err
	}

	debit, credit, err := s.repo.BalanceComponents(ctx, id, currency)
	if err != nil {
		return moneypkg.Money{}, err
	}

	if ledger.Type.IsDebitNormal() {
		return moneypkg.New(debit-credit, currency), nil
	}

	return moneypkg.New(credit-debit, currency), nil
}
