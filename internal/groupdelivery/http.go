// Package groupdelivery manages delivery layer of transaction groups.
package groupdelivery

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/go-vera/ledgerbook/internal/domain"
	"github.com/go-vera/ledgerbook/pkg/currencypkg"
	"github.com/go-vera/ledgerbook/pkg/errorspkg"
	"github.com/go-vera/ledgerbook/pkg/moneypkg"
	"github.com/go-vera/ledgerbook/pkg/web"
)

// Service provides service layer interface needed by transaction group delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package groupdelivery
type Service interface {
	CommitEntries(ctx context.Context, entries []domain.GroupEntry) (uuid.UUID, error)
	GroupTransactions(ctx context.Context, groupID uuid.UUID) ([]domain.JournalTransaction, error)
}

// Handler facilitates transaction group delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns transaction group handler.
func NewHandler(as Service) Handler {
	return Handler{service: as}
}

type entryRequest struct {
	JournalID int64             `json:"journal_id" binding:"required,min=1"`
	Direction string            `json:"direction" binding:"required,oneof=debit credit"`
	Amount    string            `json:"amount" binding:"required"`
	Currency  string            `json:"currency" binding:"required,currency"`
	Memo      string            `json:"memo"`
	Reference *domain.EntityRef `json:"reference"`
	PostDate  string            `json:"post_date" binding:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

type createRequest struct {
	Entries []entryRequest `json:"entries" binding:"required,min=2,dive"`
}

type createData struct {
	TransactionGroup uuid.UUID `json:"transaction_group"`
}

type createResponse struct {
	Data createData `json:"data,omitempty"`
}

// Create handles http request to commit a balanced transaction group.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindingError(err)})

		return
	}

	entries := make([]domain.GroupEntry, 0, len(req.Entries))

	for _, e := range req.Entries {
		amount, err := moneypkg.FromDecimalString(e.Amount, e.Currency, currencypkg.Exponent(e.Currency))
		if err != nil {
			l.Info().Err(err).Send()
			gctx.JSON(http.StatusBadRequest, web.Response{Error: "Amount is invalid"})

			return
		}

		var postDate time.Time
		if e.PostDate != "" {
			postDate, _ = time.Parse(time.RFC3339, e.PostDate)
		}

		entries = append(entries, domain.GroupEntry{
			JournalID: e.JournalID,
			Direction: domain.Direction(e.Direction),
			Amount:    amount,
			Memo:      e.Memo,
			Reference: e.Reference,
			PostDate:  postDate,
		})
	}

	groupID, err := h.service.CommitEntries(ctx, entries)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDebitsCreditsMismatch),
			errors.Is(err, domain.ErrInvalidDirection),
			errors.Is(err, domain.ErrInvalidEntryValue),
			errors.Is(err, moneypkg.ErrCurrencyMismatch):
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		case errors.Is(err, domain.ErrJournalNotFound):
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case errors.Is(err, domain.ErrCommitFailed):
			gctx.JSON(http.StatusInternalServerError, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, createResponse{Data: createData{TransactionGroup: groupID}})
}

type getRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

type transactionsData struct {
	Transactions []domain.JournalTransaction `json:"transactions"`
}

type transactionsResponse struct {
	Data transactionsData `json:"data,omitempty"`
}

// Get handles http request to list all transactions of a group.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req getRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindingError(err)})

		return
	}

	groupID, err := uuid.Parse(req.ID)
	if err != nil {
		gctx.JSON(http.StatusBadRequest, web.Response{Error: "ID is invalid"})
		return
	}

	transactions, err := h.service.GroupTransactions(ctx, groupID)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, transactionsResponse{Data: transactionsData{transactions}})
}
