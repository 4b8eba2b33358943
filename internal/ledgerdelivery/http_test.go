package ledgerdelivery

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/go-vera/ledgerbook/internal/domain"
	"github.com/go-vera/ledgerbook/pkg/currencypkg"
	"github.com/go-vera/ledgerbook/pkg/errorspkg"
	"github.com/go-vera/ledgerbook/pkg/moneypkg"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("currency", currencypkg.ValidCurrency); err != nil {
			os.Exit(1)
		}
	}

	os.Exit(m.Run())
}

func TestCreateLedgerAPI(t *testing.T) {
	ledger := domain.Ledger{ID: 1, Name: "Cash", Type: domain.LedgerTypeAsset}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewMockService(ctrl)
	handler := NewHandler(service)

	server := gin.Default()
	url := "/ledgers"
	server.POST(url, handler.Create)

	testCases := []struct {
		name          string
		requestBody   gin.H
		buildStubs    func(service *MockService)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name: "InvalidType",
			requestBody: gin.H{
				"name": "Cash",
				"type": "savings",
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "MissingName",
			requestBody: gin.H{
				"type": "asset",
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "InternalError",
			requestBody: gin.H{
				"name": "Cash",
				"type": "asset",
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Eq("Cash"), gomock.Eq(domain.LedgerTypeAsset)).
					Times(1).
					Return(domain.Ledger{}, errorspkg.ErrInternal)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
		{
			name: "OK",
			requestBody: gin.H{
				"name": "Cash",
				"type": "asset",
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Eq("Cash"), gomock.Eq(domain.LedgerTypeAsset)).
					Times(1).
					Return(ledger, nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			tc.buildStubs(service)

			recorder := httptest.NewRecorder()

			body, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)

			req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
			require.NoError(t, err)

			server.ServeHTTP(recorder, req)
			tc.checkResponse(recorder)
		})
	}
}

func TestGetLedgerBalanceAPI(t *testing.T) {
	ledger := domain.Ledger{ID: 3, Name: "Accounts Receivable", Type: domain.LedgerTypeAsset}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewMockService(ctrl)
	handler := NewHandler(service)

	server := gin.Default()
	server.GET("/ledgers/:id/balance", handler.GetBalance)

	testCases := []struct {
		name          string
		url           string
		buildStubs    func(service *MockService)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name: "MissingCurrency",
			url:  fmt.Sprintf("/ledgers/%d/balance", ledger.ID),
			buildStubs: func(service *MockService) {
				service.EXPECT().CurrentBalance(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "NotFound",
			url:  fmt.Sprintf("/ledgers/%d/balance?currency=USD", ledger.ID),
			buildStubs: func(service *MockService) {
				service.EXPECT().
					CurrentBalance(gomock.Any(), gomock.Eq(ledger.ID), gomock.Eq(currencypkg.USD)).
					Times(1).
					Return(moneypkg.Money{}, domain.ErrLedgerNotFound)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
		{
			name: "OK",
			url:  fmt.Sprintf("/ledgers/%d/balance?currency=USD", ledger.ID),
			buildStubs: func(service *MockService) {
				service.EXPECT().
					CurrentBalance(gomock.Any(), gomock.Eq(ledger.ID), gomock.Eq(currencypkg.USD)).
					Times(1).
					Return(moneypkg.New(9000, currencypkg.USD), nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var got balanceResponse
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
				require.Equal(t, int64(9000), got.Data.Balance.Amount)
				require.Equal(t, currencypkg.USD, got.Data.Balance.Currency)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			tc.buildStubs(service)

			recorder := httptest.NewRecorder()

			req, err := http.NewRequest(http.MethodGet, tc.url, nil)
			require.NoError(t, err)

			server.ServeHTTP(recorder, req)
			tc.checkResponse(recorder)
		})
	}
}
