package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "paymo/internal/errors"
	"paymo/internal/models"
)

type mockTransferService struct {
	mock.Mock
}

func (m *mockTransferService) Transfer(ctx context.Context, payerID, payeeID uint, amount decimal.Decimal) (*models.Transfer, error) {
	args := m.Called(ctx, payerID, payeeID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transfer), args.Error(1)
}

type stubLedger struct {
	tr  *models.Transfer
	err error
}

func (s *stubLedger) FindByID(ctx context.Context, id uint) (*models.Transfer, error) {
	return s.tr, s.err
}

func (s *stubLedger) ListByAccount(ctx context.Context, accountID uint, limit, offset int) ([]models.Transfer, error) {
	return nil, nil
}

func newTransferApp(svc *mockTransferService, ledger *stubLedger) *fiber.App {
	app := fiber.New()
	h := NewTransferHandler(svc, ledger)
	app.Post("/api/transfer", h.Create)
	app.Get("/api/transfers/:id", h.Get)
	return app
}

func postTransfer(t *testing.T, app *fiber.App, body string) (*http.Response, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/transfer", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp, parsed
}

func TestTransferCreate_Success(t *testing.T) {
	svc := new(mockTransferService)
	svc.On("Transfer", mock.Anything, uint(1), uint(2), mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.NewFromInt(100))
	})).Return(&models.Transfer{
		ID:         9,
		ExternalID: "b7f6e1f2-8f1f-4c4c-9d3e-000000000000",
		PayerID:    1,
		PayeeID:    2,
		Amount:     decimal.NewFromInt(100),
		Status:     models.TransferStatusSuccess,
	}, nil)

	app := newTransferApp(svc, &stubLedger{})
	resp, parsed := postTransfer(t, app, `{"value":100,"payer":1,"payee":2}`)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	data := parsed["data"].(map[string]interface{})
	assert.Equal(t, "success", data["status"])
	assert.Equal(t, float64(1), data["payer_id"])
	assert.Equal(t, float64(2), data["payee_id"])
	svc.AssertExpectations(t)
}

func TestTransferCreate_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "business rule violation",
			err:        apperrors.ErrInsufficientFunds,
			wantStatus: http.StatusUnprocessableEntity,
			wantMsg:    "insufficient balance",
		},
		{
			name:       "authorization denied",
			err:        apperrors.ErrNotAuthorized,
			wantStatus: http.StatusUnprocessableEntity,
			wantMsg:    "transfer not authorized",
		},
		{
			name:       "account missing",
			err:        apperrors.ErrAccountNotFound,
			wantStatus: http.StatusNotFound,
			wantMsg:    "account not found",
		},
		{
			name:       "unexpected failure stays generic",
			err:        assert.AnError,
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "failed to process request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockTransferService)
			svc.On("Transfer", mock.Anything, uint(1), uint(2), mock.Anything).Return(nil, tt.err)

			app := newTransferApp(svc, &stubLedger{})
			resp, parsed := postTransfer(t, app, `{"value":50,"payer":1,"payee":2}`)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantMsg, parsed["message"])
		})
	}
}

func TestTransferCreate_RequestShape(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{name: "negative amount", body: `{"value":-5,"payer":1,"payee":2}`, wantStatus: http.StatusUnprocessableEntity},
		{name: "zero amount", body: `{"value":0,"payer":1,"payee":2}`, wantStatus: http.StatusUnprocessableEntity},
		{name: "missing payer", body: `{"value":10,"payee":2}`, wantStatus: http.StatusUnprocessableEntity},
		{name: "malformed body", body: `{not json`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockTransferService)
			app := newTransferApp(svc, &stubLedger{})

			resp, _ := postTransfer(t, app, tt.body)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			svc.AssertNotCalled(t, "Transfer")
		})
	}
}

func TestTransferGet(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		ledger := &stubLedger{tr: &models.Transfer{ID: 9, Status: models.TransferStatusSuccess}}
		app := newTransferApp(new(mockTransferService), ledger)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/transfers/9", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("not found", func(t *testing.T) {
		ledger := &stubLedger{err: apperrors.ErrTransferNotFound}
		app := newTransferApp(new(mockTransferService), ledger)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/transfers/9", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
