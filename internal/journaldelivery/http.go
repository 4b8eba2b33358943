// Package journaldelivery manages delivery layer of journals.
package journaldelivery

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/go-vera/ledgerbook/internal/domain"
	"github.com/go-vera/ledgerbook/internal/journalservice"
	"github.com/go-vera/ledgerbook/pkg/currencypkg"
	"github.com/go-vera/ledgerbook/pkg/errorspkg"
	"github.com/go-vera/ledgerbook/pkg/moneypkg"
	"github.com/go-vera/ledgerbook/pkg/web"
)

// Service provides service layer interface needed by journal delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package journaldelivery
type Service interface {
	Init(ctx context.Context, owner domain.EntityRef, currency string, ledgerID *int32) (domain.Journal, error)
	Get(ctx context.Context, id int64) (domain.Journal, error)
	Debit(ctx context.Context, journalID int64, amount moneypkg.Money, arg journalservice.PostParams) (domain.JournalTransaction, error)
	Credit(ctx context.Context, journalID int64, amount moneypkg.Money, arg journalservice.PostParams) (domain.JournalTransaction, error)
	CurrentBalance(ctx context.Context, journalID int64) (moneypkg.Money, error)
	BalanceAsOf(ctx context.Context, journalID int64, date time.Time) (moneypkg.Money, error)
	Balance(ctx context.Context, journalID int64) (moneypkg.Money, error)
	ListTransactions(ctx context.Context, journalID int64, pageSize, pageID int32) ([]domain.JournalTransaction, error)
	SoftDeleteTransaction(ctx context.Context, id uuid.UUID) (moneypkg.Money, error)
}

// Handler facilitates journal delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns journal handler.
func NewHandler(js Service) Handler {
	return Handler{service: js}
}

type data struct {
	Journal domain.Journal `json:"journal"`
}

type response struct {
	Data data `json:"data,omitempty"`
}

type balance struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type balanceData struct {
	Balance balance `json:"balance"`
}

type balanceResponse struct {
	Data balanceData `json:"data,omitempty"`
}

func newBalanceResponse(m moneypkg.Money) balanceResponse {
	return balanceResponse{
		Data: balanceData{
			Balance: balance{Amount: m.Amount(), Currency: m.Currency()},
		},
	}
}

type createRequest struct {
	OwnerType string `json:"owner_type" binding:"required"`
	OwnerID   string `json:"owner_id" binding:"required"`
	Currency  string `json:"currency" binding:"omitempty,currency"`
	LedgerID  *int32 `json:"ledger_id" binding:"omitempty,min=1"`
}

// Create handles http request to initialize a journal for an owner.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindingError(err)})

		return
	}

	owner := domain.EntityRef{Type: req.OwnerType, ID: req.OwnerID}

	journal, err := h.service.Init(ctx, owner, req.Currency, req.LedgerID)
	if err != nil {
		switch err {
		case domain.ErrJournalAlreadyExists:
			gctx.JSON(http.StatusConflict, web.Error(err))
			return
		case domain.ErrLedgerNotFound:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{journal}})
}

type getRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// Get handles http request to get a journal.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req getRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindingError(err)})

		return
	}

	journal, err := h.service.Get(ctx, req.ID)
	if err != nil {
		if err == domain.ErrJournalNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{journal}})
}

type getBalanceRequest struct {
	AsOf  string `form:"as_of" binding:"omitempty,datetime=2006-01-02"`
	Total bool   `form:"total"`
}

// GetBalance handles http request to get a journal balance.
//
// Without parameters it returns the current balance (future dated
// transactions excluded); as_of=YYYY-MM-DD returns the balance at the end of
// that day; total=true includes future dated transactions.
func (h *Handler) GetBalance(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var uriReq getRequest
	if err := gctx.ShouldBindUri(&uriReq); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindingError(err)})

		return
	}

	var req getBalanceRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindingError(err)})

		return
	}

	var (
		m   moneypkg.Money
		err error
	)

	switch {
	case req.Total:
		m, err = h.service.Balance(ctx, uriReq.ID)
	case req.AsOf != "":
		var date time.Time

		date, err = time.Parse("2006-01-02", req.AsOf)
		if err != nil {
			gctx.JSON(http.StatusBadRequest, web.Response{Error: "AsOf is invalid"})
			return
		}

		m, err = h.service.BalanceAsOf(ctx, uriReq.ID, date)
	default:
		m, err = h.service.CurrentBalance(ctx, uriReq.ID)
	}

	if err != nil {
		if err == domain.ErrJournalNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, newBalanceResponse(m))
}

type postRequest struct {
	Direction string `json:"direction" binding:"required,oneof=debit credit"`
	Amount    string `json:"amount" binding:"required"`
	Memo      string `json:"memo"`
	PostDate  string `json:"post_date" binding:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

type transactionData struct {
	Transaction domain.JournalTransaction `json:"transaction"`
}

type transactionResponse struct {
	Data transactionData `json:"data,omitempty"`
}

// Post handles http request to debit or credit a journal directly.
func (h *Handler) Post(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var uriReq getRequest
	if err := gctx.ShouldBindUri(&uriReq); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindingError(err)})

		return
	}

	var req postRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindingError(err)})

		return
	}

	journal, err := h.service.Get(ctx, uriReq.ID)
	if err != nil {
		if err == domain.ErrJournalNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	amount, err := moneypkg.FromDecimalString(req.Amount, journal.Currency, currencypkg.Exponent(journal.Currency))
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: "Amount is invalid"})

		return
	}

	var arg journalservice.PostParams

	arg.Memo = req.Memo

	if req.PostDate != "" {
		arg.PostDate, _ = time.Parse(time.RFC3339, req.PostDate)
	}

	var transaction domain.JournalTransaction

	if req.Direction == string(domain.DirectionDebit) {
		transaction, err = h.service.Debit(ctx, uriReq.ID, amount, arg)
	} else {
		transaction, err = h.service.Credit(ctx, uriReq.ID, amount, arg)
	}

	if err != nil {
		switch err {
		case domain.ErrInvalidEntryValue, moneypkg.ErrCurrencyMismatch:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		case domain.ErrJournalNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, transactionResponse{Data: transactionData{transaction}})
}

type listRequest struct {
	PageID   int32 `form:"page_id" binding:"required,min=1"`
	PageSize int32 `form:"page_size" binding:"required,min=1,max=100"`
}

type transactionsData struct {
	Transactions []domain.JournalTransaction `json:"transactions"`
}

type transactionsResponse struct {
	Data transactionsData `json:"data,omitempty"`
}

// ListTransactions handles http request to list journal transactions.
func (h *Handler) ListTransactions(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var uriReq getRequest
	if err := gctx.ShouldBindUri(&uriReq); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindingError(err)})

		return
	}

	var req listRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindingError(err)})

		return
	}

	transactions, err := h.service.ListTransactions(ctx, uriReq.ID, req.PageSize, req.PageID)
	if err != nil {
		if err == domain.ErrJournalNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, transactionsResponse{Data: transactionsData{transactions}})
}

type deleteTransactionRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// DeleteTransaction handles http request to soft delete a journal transaction.
// The journal balance excluding the deleted entry is returned.
func (h *Handler) DeleteTransaction(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req deleteTransactionRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindingError(err)})

		return
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		gctx.JSON(http.StatusBadRequest, web.Response{Error: "ID is invalid"})
		return
	}

	m, err := h.service.SoftDeleteTransaction(ctx, id)
	if err != nil {
		if err == domain.ErrTransactionNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, newBalanceResponse(m))
}
