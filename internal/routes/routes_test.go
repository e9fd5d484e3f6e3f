package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kaha/internal/repositories"
	"kaha/internal/services/checkout"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	catalogPath := filepath.Join(t.TempDir(), "catalog.yaml")
	body := "currency: PHP\nproducts:\n  - id: 1\n    name: Milk\n    price: 50.00\n  - id: 2\n    name: Bread\n    price: 35.00\n"
	require.NoError(t, os.WriteFile(catalogPath, []byte(body), 0o644))

	catalog, err := checkout.LoadCatalog(catalogPath)
	require.NoError(t, err)

	app := fiber.New()
	SetupRoutes(app, repositories.NewStore(), catalog)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var req *http.Request
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)
	resp, body := doJSON(t, app, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}

func TestCardFlow(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/cards/", fiber.Map{
		"card_number":     "5412750123456789",
		"cvv":             "123",
		"expiry":          "09/27",
		"credit_limit":    1000,
		"savings_balance": 500,
		"password":        "2468",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	cardID, ok := body["id"].(string)
	require.True(t, ok)

	base := fmt.Sprintf("/api/cards/%s", cardID)

	// Pay 200 from credit
	resp, body = doJSON(t, app, http.MethodPost, base+"/pay", fiber.Map{
		"amount": 200, "account": "credit", "password": "2468",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 800.0, body["balance"])

	// Deposit 300 to credit: only the 200 of headroom applies
	resp, body = doJSON(t, app, http.MethodPost, base+"/deposits", fiber.Map{
		"amount": 300, "account": "credit", "password": "2468",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 200.0, body["applied"])

	// Draw again, then pay down from savings with a capped transfer
	resp, _ = doJSON(t, app, http.MethodPost, base+"/pay", fiber.Map{
		"amount": 150, "account": "credit", "password": "2468",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodPost, base+"/transfers", fiber.Map{
		"amount": 500, "password": "2468",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 150.0, body["applied"])
	assert.Equal(t, 1000.0, body["credit_balance"])

	// Details are masked
	resp, body = doJSON(t, app, http.MethodPost, base+"/details", fiber.Map{"password": "2468"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	details := body["card"].(map[string]any)
	assert.Equal(t, "**** **** **** 6789", details["card_number"])
	assert.Equal(t, 350.0, details["savings_balance"])

	// History shows the four successful mutations
	resp, body = doJSON(t, app, http.MethodPost, base+"/history", fiber.Map{"password": "2468"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["events"], 4)
}

func TestCardErrors(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/cards/", fiber.Map{
		"credit_limit": 100, "password": "2468",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	base := fmt.Sprintf("/api/cards/%s", body["id"].(string))

	tests := []struct {
		name       string
		path       string
		payload    fiber.Map
		wantStatus int
	}{
		{"wrong password", base + "/pay", fiber.Map{"amount": 10, "account": "credit", "password": "x"}, http.StatusUnauthorized},
		{"bad account type", base + "/pay", fiber.Map{"amount": 10, "account": "payroll", "password": "2468"}, http.StatusBadRequest},
		{"non-positive amount", base + "/deposits", fiber.Map{"amount": 0, "account": "credit", "password": "2468"}, http.StatusBadRequest},
		{"insufficient credit", base + "/pay", fiber.Map{"amount": 500, "account": "credit", "password": "2468"}, http.StatusPaymentRequired},
		{"insufficient savings", base + "/transfers", fiber.Map{"amount": 500, "password": "2468"}, http.StatusPaymentRequired},
		{"unknown card", "/api/cards/nope/pay", fiber.Map{"amount": 10, "account": "credit", "password": "2468"}, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := doJSON(t, app, http.MethodPost, tt.path, tt.payload)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestBankAndWalletFlow(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/accounts/", fiber.Map{
		"bank_name": "BDO", "account_name": "Maria", "account_number": "0012345",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	accountID := body["id"].(string)

	resp, body = doJSON(t, app, http.MethodPost, "/api/accounts/"+accountID+"/deposits", fiber.Map{"amount": 500})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 500.0, body["balance"])

	resp, _ = doJSON(t, app, http.MethodPost, "/api/accounts/"+accountID+"/withdrawals", fiber.Map{"amount": 600})
	assert.Equal(t, http.StatusPaymentRequired, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodPost, "/api/wallets/", fiber.Map{"owner": "Juan", "opening_balance": 5000})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	walletID := body["id"].(string)

	resp, body = doJSON(t, app, http.MethodPost, "/api/wallets/"+walletID+"/send", fiber.Map{"amount": 1200})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 3800.0, body["balance"])

	resp, body = doJSON(t, app, http.MethodGet, "/api/wallets/"+walletID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Juan", body["owner"])
}

func TestCashAndCheckoutFlow(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/orders", fiber.Map{
		"items": []fiber.Map{
			{"product_id": 1, "quantity": 2},
			{"product_id": 2, "quantity": 1},
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 135.0, body["total"])

	resp, body = doJSON(t, app, http.MethodPost, "/api/cash/", fiber.Map{
		"receipt_number": "R-1001", "amount_due": 135, "amount_received": 200,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	receipt := body["receipt"].(map[string]any)
	assert.Equal(t, 65.0, receipt["change"])

	resp, body = doJSON(t, app, http.MethodPut, "/api/cash/R-1001/received", fiber.Map{"amount": 135})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	receipt = body["receipt"].(map[string]any)
	assert.Equal(t, true, receipt["exact"])

	resp, _ = doJSON(t, app, http.MethodPost, "/api/cash/", fiber.Map{
		"amount_due": 135, "amount_received": 100,
	})
	assert.Equal(t, http.StatusPaymentRequired, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["products"], 2)
}
