// Package ledgerdelivery manages delivery layer of ledgers.
package ledgerdelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-vera/ledgerbook/internal/domain"
	"github.com/go-vera/ledgerbook/pkg/errorspkg"
	"github.com/go-vera/ledgerbook/pkg/moneypkg"
	"github.com/go-vera/ledgerbook/pkg/web"
)

// Service provides service layer interface needed by ledger delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package ledgerdelivery
type Service interface {
	Create(ctx context.Context, name string, ledgerType domain.LedgerType) (domain.Ledger, error)
	Get(ctx context.Context, id int32) (domain.Ledger, error)
	CurrentBalance(ctx context.Context, id int32, currency string) (moneypkg.Money, error)
}

// Handler facilitates ledger delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns ledger handler.
func NewHandler(ls Service) Handler {
	return Handler{service: ls}
}

type data struct {
	Ledger domain.Ledger `json:"ledger"`
}

type response struct {
	Data data `json:"data,omitempty"`
}

type createRequest struct {
	Name string `json:"name" binding:"required"`
	Type string `json:"type" binding:"required,oneof=asset liability equity income expense"`
}

// Create handles http request to create a ledger.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindingError(err)})

		return
	}

	ledger, err := h.service.Create(ctx, req.Name, domain.LedgerType(req.Type))
	if err != nil {
		if err == domain.ErrInvalidLedgerType {
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{ledger}})
}

type getRequest struct {
	ID int32 `uri:"id" binding:"required,min=1"`
}

// Get handles http request to get a ledger.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req getRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindingError(err)})

		return
	}

	ledger, err := h.service.Get(ctx, req.ID)
	if err != nil {
		if err == domain.ErrLedgerNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{ledger}})
}

type getBalanceRequest struct {
	Currency string `form:"currency" binding:"required,currency"`
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

// GetBalance handles http request to get a ledger balance for a currency.
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

	m, err := h.service.CurrentBalance(ctx, uriReq.ID, req.Currency)
	if err != nil {
		if err == domain.ErrLedgerNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, balanceResponse{
		Data: balanceData{Balance: balance{Amount: m.Amount(), Currency: m.Currency()}},
	})
}
