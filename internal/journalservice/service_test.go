package journalservice

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/go-vera/ledgerbook/internal/domain"
	"github.com/go-vera/ledgerbook/pkg/configpkg"
	"github.com/go-vera/ledgerbook/pkg/currencypkg"
	"github.com/go-vera/ledgerbook/pkg/errorspkg"
	"github.com/go-vera/ledgerbook/pkg/moneypkg"
	"github.com/go-vera/ledgerbook/pkg/randompkg"
)

var testConfig = configpkg.Config{DefaultCurrency: currencypkg.USD}

func randomOwner() domain.EntityRef {
	return domain.EntityRef{Type: "user", ID: randompkg.Owner()}
}

func randomJournal(owner domain.EntityRef) domain.Journal {
	return domain.Journal{
		ID:        randompkg.Int64Between(1, 1000),
		Owner:     owner,
		Currency:  currencypkg.USD,
		CreatedAt: time.Now().Truncate(time.Second).UTC(),
	}
}

func TestInit(t *testing.T) {
	owner := randomOwner()
	journal := randomJournal(owner)

	testCases := []struct {
		name       string
		currency   string
		buildStubs func(repo *MockRepo)
		wantErr    error
	}{
		{
			name:     "OK",
			currency: currencypkg.USD,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().GetByOwner(gomock.Any(), gomock.Eq(owner)).Times(1).Return(domain.Journal{}, domain.ErrJournalNotFound)
				repo.EXPECT().
					Create(gomock.Any(), gomock.Eq(domain.CreateJournalParams{Owner: owner, Currency: currencypkg.USD})).
					Times(1).
					Return(journal, nil)
			},
		},
		{
			name:     "Empty currency falls back to default",
			currency: "",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().GetByOwner(gomock.Any(), gomock.Eq(owner)).Times(1).Return(domain.Journal{}, domain.ErrJournalNotFound)
				repo.EXPECT().
					Create(gomock.Any(), gomock.Eq(domain.CreateJournalParams{Owner: owner, Currency: currencypkg.USD})).
					Times(1).
					Return(journal, nil)
			},
		},
		{
			name:     "Journal already exists",
			currency: currencypkg.USD,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().GetByOwner(gomock.Any(), gomock.Eq(owner)).Times(1).Return(journal, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr: domain.ErrJournalAlreadyExists,
		},
		{
			name:     "Lookup error",
			currency: currencypkg.USD,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().GetByOwner(gomock.Any(), gomock.Eq(owner)).Times(1).Return(domain.Journal{}, errorspkg.ErrInternal)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr: errorspkg.ErrInternal,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			tc.buildStubs(repo)

			service := New(repo, NewMockTransactionRepo(ctrl), testConfig)

			got, err := service.Init(context.Background(), owner, tc.currency, nil)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, journal, got)
		})
	}
}

func TestDebitAndCredit(t *testing.T) {
	owner := randomOwner()
	journal := randomJournal(owner)

	testCases := []struct {
		name       string
		direction  domain.Direction
		amount     moneypkg.Money
		buildStubs func(repo *MockRepo, transactions *MockTransactionRepo)
		wantErr    error
	}{
		{
			name:      "OK debit",
			direction: domain.DirectionDebit,
			amount:    moneypkg.New(10099, currencypkg.USD),
			buildStubs: func(repo *MockRepo, transactions *MockTransactionRepo) {
				repo.EXPECT().Get(gomock.Any(), gomock.Eq(journal.ID)).Times(1).Return(journal, nil)
				transactions.EXPECT().
					Post(gomock.Any(), gomock.Eq(domain.CreateTransactionParams{
						JournalID: journal.ID,
						Direction: domain.DirectionDebit,
						Amount:    moneypkg.New(10099, currencypkg.USD),
					})).
					Times(1).
					Return(domain.PostTxResult{Journal: journal}, nil)
			},
		},
		{
			name:      "Negative amount is normalized to absolute",
			direction: domain.DirectionCredit,
			amount:    moneypkg.New(-10000, currencypkg.USD),
			buildStubs: func(repo *MockRepo, transactions *MockTransactionRepo) {
				repo.EXPECT().Get(gomock.Any(), gomock.Eq(journal.ID)).Times(1).Return(journal, nil)
				transactions.EXPECT().
					Post(gomock.Any(), gomock.Eq(domain.CreateTransactionParams{
						JournalID: journal.ID,
						Direction: domain.DirectionCredit,
						Amount:    moneypkg.New(10000, currencypkg.USD),
					})).
					Times(1).
					Return(domain.PostTxResult{Journal: journal}, nil)
			},
		},
		{
			name:      "Currency mismatch",
			direction: domain.DirectionDebit,
			amount:    moneypkg.New(10000, currencypkg.EUR),
			buildStubs: func(repo *MockRepo, transactions *MockTransactionRepo) {
				repo.EXPECT().Get(gomock.Any(), gomock.Eq(journal.ID)).Times(1).Return(journal, nil)
				transactions.EXPECT().Post(gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr: moneypkg.ErrCurrencyMismatch,
		},
		{
			name:      "Zero amount",
			direction: domain.DirectionCredit,
			amount:    moneypkg.Zero(currencypkg.USD),
			buildStubs: func(repo *MockRepo, transactions *MockTransactionRepo) {
				repo.EXPECT().Get(gomock.Any(), gomock.Eq(journal.ID)).Times(1).Return(journal, nil)
				transactions.EXPECT().Post(gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr: domain.ErrInvalidEntryValue,
		},
		{
			name:      "Journal not found",
			direction: domain.DirectionDebit,
			amount:    moneypkg.New(10000, currencypkg.USD),
			buildStubs: func(repo *MockRepo, transactions *MockTransactionRepo) {
				repo.EXPECT().Get(gomock.Any(), gomock.Eq(journal.ID)).Times(1).Return(domain.Journal{}, domain.ErrJournalNotFound)
				transactions.EXPECT().Post(gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr: domain.ErrJournalNotFound,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			transactions := NewMockTransactionRepo(ctrl)
			tc.buildStubs(repo, transactions)

			service := New(repo, transactions, testConfig)

			var err error
			if tc.direction == domain.DirectionDebit {
				_, err = service.Debit(context.Background(), journal.ID, tc.amount, PostParams{})
			} else {
				_, err = service.Credit(context.Background(), journal.ID, tc.amount, PostParams{})
			}

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestBalances(t *testing.T) {
	owner := randomOwner()
	journal := randomJournal(owner)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	transactions := NewMockTransactionRepo(ctrl)
	service := New(repo, transactions, testConfig)

	// Credit 100.00 then debit 100.99 leaves the journal 99 minor units short.
	repo.EXPECT().Get(gomock.Any(), gomock.Eq(journal.ID)).Times(1).Return(journal, nil)
	transactions.EXPECT().
		SumDebit(gomock.Any(), gomock.Eq(journal.ID), gomock.Eq(journal.Currency), gomock.Not(gomock.Nil())).
		Times(1).
		Return(int64(10099), nil)
	transactions.EXPECT().
		SumCredit(gomock.Any(), gomock.Eq(journal.ID), gomock.Eq(journal.Currency), gomock.Not(gomock.Nil())).
		Times(1).
		Return(int64(10000), nil)

	got, err := service.BalanceAsOf(context.Background(), journal.ID, time.Now())
	require.NoError(t, err)
	require.Equal(t, moneypkg.New(-99, currencypkg.USD), got)

	// Balance without a cutoff includes future dated transactions.
	repo.EXPECT().Get(gomock.Any(), gomock.Eq(journal.ID)).Times(1).Return(journal, nil)
	transactions.EXPECT().
		SumDebit(gomock.Any(), gomock.Eq(journal.ID), gomock.Eq(journal.Currency), gomock.Nil()).
		Times(1).
		Return(int64(10099), nil)
	transactions.EXPECT().
		SumCredit(gomock.Any(), gomock.Eq(journal.ID), gomock.Eq(journal.Currency), gomock.Nil()).
		Times(1).
		Return(int64(20000), nil)

	got, err = service.Balance(context.Background(), journal.ID)
	require.NoError(t, err)
	require.Equal(t, moneypkg.New(9901, currencypkg.USD), got)
}

func TestDebitAndCreditBalanceOn(t *testing.T) {
	owner := randomOwner()
	journal := randomJournal(owner)
	date := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	transactions := NewMockTransactionRepo(ctrl)
	service := New(repo, transactions, testConfig)

	repo.EXPECT().Get(gomock.Any(), gomock.Eq(journal.ID)).Times(2).Return(journal, nil)
	transactions.EXPECT().
		SumDebit(gomock.Any(), gomock.Eq(journal.ID), gomock.Eq(journal.Currency), gomock.Not(gomock.Nil())).
		Times(1).
		Return(int64(7500), nil)
	transactions.EXPECT().
		SumCredit(gomock.Any(), gomock.Eq(journal.ID), gomock.Eq(journal.Currency), gomock.Not(gomock.Nil())).
		Times(1).
		Return(int64(5000), nil)

	debit, err := service.DebitBalanceOn(context.Background(), journal.ID, date)
	require.NoError(t, err)
	require.Equal(t, moneypkg.New(7500, currencypkg.USD), debit)

	credit, err := service.CreditBalanceOn(context.Background(), journal.ID, date)
	require.NoError(t, err)
	require.Equal(t, moneypkg.New(5000, currencypkg.USD), credit)
}

func TestRecomputeBalance(t *testing.T) {
	owner := randomOwner()
	journal := randomJournal(owner)
	journal.Balance = 4200

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	transactions := NewMockTransactionRepo(ctrl)
	transactions.EXPECT().Recompute(gomock.Any(), gomock.Eq(journal.ID)).Times(2).Return(journal, nil)

	service := New(NewMockRepo(ctrl), transactions, testConfig)

	got, err := service.RecomputeBalance(context.Background(), journal.ID)
	require.NoError(t, err)
	require.Equal(t, moneypkg.New(4200, currencypkg.USD), got)

	// Recomputing an already correct cache changes nothing.
	again, err := service.RecomputeBalance(context.Background(), journal.ID)
	require.NoError(t, err)
	require.Equal(t, got, again)
}

func TestListTransactions(t *testing.T) {
	owner := randomOwner()
	journal := randomJournal(owner)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	transactions := NewMockTransactionRepo(ctrl)
	service := New(repo, transactions, testConfig)

	want := []domain.JournalTransaction{{JournalID: journal.ID}}

	repo.EXPECT().Get(gomock.Any(), gomock.Eq(journal.ID)).Times(1).Return(journal, nil)
	transactions.EXPECT().
		ListByJournal(gomock.Any(), gomock.Eq(journal.ID), gomock.Eq(int32(5)), gomock.Eq(int32(10))).
		Times(1).
		Return(want, nil)

	got, err := service.ListTransactions(context.Background(), journal.ID, 5, 3)
	require.NoError(t, err)
	require.Equal(t, want, got)

	repo.EXPECT().Get(gomock.Any(), gomock.Eq(journal.ID)).Times(1).Return(domain.Journal{}, domain.ErrJournalNotFound)

	_, err = service.ListTransactions(context.Background(), journal.ID, 5, 1)
	require.ErrorIs(t, err, domain.ErrJournalNotFound)
}

func TestSoftDeleteTransaction(t *testing.T) {
	owner := randomOwner()
	journal := randomJournal(owner)
	journal.Balance = 10000

	id, err := uuid.NewV7()
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	transactions := NewMockTransactionRepo(ctrl)
	transactions.EXPECT().
		SoftDelete(gomock.Any(), gomock.Eq(id)).
		Times(1).
		Return(domain.PostTxResult{Journal: journal}, nil)

	service := New(NewMockRepo(ctrl), transactions, testConfig)

	got, err := service.SoftDeleteTransaction(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, moneypkg.New(10000, currencypkg.USD), got)

	transactions.EXPECT().
		SoftDelete(gomock.Any(), gomock.Eq(id)).
		Times(1).
		Return(domain.PostTxResult{}, domain.ErrTransactionNotFound)

	_, err = service.SoftDeleteTransaction(context.Background(), id)
	require.ErrorIs(t, err, domain.ErrTransactionNotFound)
}
