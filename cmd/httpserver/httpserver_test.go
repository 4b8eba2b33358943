//go:build integration

package httpserver_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/go-vera/ledgerbook/internal/integrationtest"
)

func do(t *testing.T, server http.Handler, method, url string, body gin.H) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader

	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)

	return recorder
}

func TestBookkeepingJourney(t *testing.T) {
	server := integrationtest.SetupServer(t)

	// Create an asset ledger.
	recorder := do(t, server, http.MethodPost, "/ledgers", gin.H{"name": "Cash", "type": "asset"})
	require.Equal(t, http.StatusOK, recorder.Code)

	var ledgerResp struct {
		Data struct {
			Ledger struct {
				ID int32 `json:"id"`
			} `json:"ledger"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &ledgerResp))
	require.NotZero(t, ledgerResp.Data.Ledger.ID)

	// Create two journals, the first attached to the ledger.
	createJournal := func(ownerID string, ledgerID interface{}) int64 {
		body := gin.H{"owner_type": "user", "owner_id": ownerID, "currency": "USD"}
		if ledgerID != nil {
			body["ledger_id"] = ledgerID
		}

		recorder := do(t, server, http.MethodPost, "/journals", body)
		require.Equal(t, http.StatusOK, recorder.Code)

		var resp struct {
			Data struct {
				Journal struct {
					ID int64 `json:"id"`
				} `json:"journal"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		require.NotZero(t, resp.Data.Journal.ID)

		return resp.Data.Journal.ID
	}

	journalA := createJournal("alice", ledgerResp.Data.Ledger.ID)
	journalB := createJournal("bob", nil)

	// A second journal for the same owner conflicts.
	recorder = do(t, server, http.MethodPost, "/journals", gin.H{"owner_type": "user", "owner_id": "alice", "currency": "USD"})
	require.Equal(t, http.StatusConflict, recorder.Code)

	getBalance := func(journalID int64) int64 {
		recorder := do(t, server, http.MethodGet, fmt.Sprintf("/journals/%d/balance", journalID), nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		var resp struct {
			Data struct {
				Balance struct {
					Amount   int64  `json:"amount"`
					Currency string `json:"currency"`
				} `json:"balance"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		require.Equal(t, "USD", resp.Data.Balance.Currency)

		return resp.Data.Balance.Amount
	}

	// Credit 100.00 then debit 100.99 directly against journal A.
	recorder = do(t, server, http.MethodPost, fmt.Sprintf("/journals/%d/transactions", journalA),
		gin.H{"direction": "credit", "amount": "100.00"})
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = do(t, server, http.MethodPost, fmt.Sprintf("/journals/%d/transactions", journalA),
		gin.H{"direction": "debit", "amount": "100.99"})
	require.Equal(t, http.StatusOK, recorder.Code)

	require.Equal(t, int64(-99), getBalance(journalA))

	// Commit a balanced group moving 50.00 from B to A.
	recorder = do(t, server, http.MethodPost, "/transaction-groups", gin.H{
		"entries": []gin.H{
			{"journal_id": journalA, "direction": "credit", "amount": "50.00", "currency": "USD"},
			{"journal_id": journalB, "direction": "debit", "amount": "50.00", "currency": "USD"},
		},
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var groupResp struct {
		Data struct {
			TransactionGroup string `json:"transaction_group"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &groupResp))
	require.NotEmpty(t, groupResp.Data.TransactionGroup)

	require.Equal(t, int64(4901), getBalance(journalA))
	require.Equal(t, int64(-5000), getBalance(journalB))

	// An unbalanced group commits nothing.
	recorder = do(t, server, http.MethodPost, "/transaction-groups", gin.H{
		"entries": []gin.H{
			{"journal_id": journalA, "direction": "credit", "amount": "99.01", "currency": "USD"},
			{"journal_id": journalB, "direction": "debit", "amount": "99.00", "currency": "USD"},
		},
	})
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	require.Equal(t, int64(4901), getBalance(journalA))

	// The committed group lists both of its transactions.
	recorder = do(t, server, http.MethodGet, "/transaction-groups/"+groupResp.Data.TransactionGroup, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var transactionsResp struct {
		Data struct {
			Transactions []struct {
				ID string `json:"id"`
			} `json:"transactions"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &transactionsResp))
	require.Len(t, transactionsResp.Data.Transactions, 2)

	// Soft delete the group's credit on journal A and watch the balance move.
	recorder = do(t, server, http.MethodDelete, "/transactions/"+transactionsResp.Data.Transactions[0].ID, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	// The ledger aggregates journal A with the asset sign convention.
	recorder = do(t, server, http.MethodGet, fmt.Sprintf("/ledgers/%d/balance?currency=USD", ledgerResp.Data.Ledger.ID), nil)
	require.Equal(t, http.StatusOK, recorder.Code)
}
