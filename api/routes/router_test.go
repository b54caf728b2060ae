package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rechargehub/rechargehub-backend/internal/catalog"
	"github.com/rechargehub/rechargehub-backend/internal/ledger"
	"github.com/rechargehub/rechargehub-backend/internal/settlement"
	"github.com/rechargehub/rechargehub-backend/internal/validation"
	"github.com/rechargehub/rechargehub-backend/pkg/config"
	pkgerrors "github.com/rechargehub/rechargehub-backend/pkg/errors"
	"github.com/rechargehub/rechargehub-backend/pkg/logger"
	"github.com/rechargehub/rechargehub-backend/pkg/metrics"
	"github.com/rechargehub/rechargehub-backend/pkg/types"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{
		App:    config.AppConfig{Env: config.AppEnvDev, Port: "8080"},
		Ledger: config.LedgerConfig{RecentWindow: 10},
	}
	logg := logger.New(logger.Options{ServiceName: "rechargehub-test", Output: &bytes.Buffer{}})

	catalogService, err := catalog.NewService(catalog.ServiceParams{Dataset: catalog.DefaultDataset()})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	validator, err := validation.NewValidator(catalogService)
	if err != nil {
		t.Fatalf("validator: %v", err)
	}

	reg := prometheus.NewRegistry()
	settlementService, err := settlement.NewService(settlement.ServiceParams{
		Validator: validator,
		Ledger:    ledger.New(),
		Metrics:   metrics.NewSettlementMetrics(reg),
		Logger:    logg,
	})
	if err != nil {
		t.Fatalf("settlement: %v", err)
	}

	return NewRouter(cfg, logg, catalogService, settlementService, settlementService, reg)
}

func postJSON(t *testing.T, router http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func getJSON(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestRouterHealthLive(t *testing.T) {
	router := newTestRouter(t)
	resp := getJSON(t, router, "/health/live")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected body %s", resp.Body.String())
	}
}

func TestRouterPlanRechargeFlow(t *testing.T) {
	router := newTestRouter(t)

	resp := postJSON(t, router, "/api/v1/settlements",
		`{"service_type":"mobile","account_number":"9876543210","operator":"jio","plan_id":"jio_1","amount":999}`)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			TransactionID string `json:"transaction_id"`
			Message       string `json:"message"`
			Amount        string `json:"amount_display"`
			Details       struct {
				Operator string `json:"operator"`
				Plan     string `json:"plan"`
				Amount   int64  `json:"amount"`
				Status   string `json:"status"`
			} `json:"details"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !envelope.Success {
		t.Fatal("expected success envelope")
	}
	if !strings.HasPrefix(envelope.Data.TransactionID, "TXN") {
		t.Fatalf("unexpected transaction id %q", envelope.Data.TransactionID)
	}
	// Catalog price wins over the client-supplied amount for plan recharges.
	if envelope.Data.Details.Amount != 209 {
		t.Fatalf("expected catalog amount 209, got %d", envelope.Data.Details.Amount)
	}
	if envelope.Data.Amount != "209.00" {
		t.Fatalf("unexpected amount display %q", envelope.Data.Amount)
	}
	if envelope.Data.Details.Operator != "Jio" {
		t.Fatalf("unexpected operator %q", envelope.Data.Details.Operator)
	}
	if envelope.Data.Details.Status != "success" {
		t.Fatalf("unexpected status %q", envelope.Data.Details.Status)
	}

	recent := getJSON(t, router, "/api/v1/transactions/recent")
	if recent.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recent.Code)
	}
	var history struct {
		Data struct {
			Transactions []struct {
				ID string `json:"transaction_id"`
			} `json:"transactions"`
			Count int `json:"count"`
		} `json:"data"`
	}
	if err := json.NewDecoder(recent.Body).Decode(&history); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if history.Data.Count != 1 || history.Data.Transactions[0].ID != envelope.Data.TransactionID {
		t.Fatalf("ledger should hold the settled transaction, got %+v", history.Data)
	}
}

func TestRouterUtilityBillFlow(t *testing.T) {
	router := newTestRouter(t)

	resp := postJSON(t, router, "/api/v1/settlements",
		`{"service_type":"electricity","account_number":"CA0012345678","operator":"Tata Power","amount":1450}`)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), `"plan":"Bill Payment"`) {
		t.Fatalf("expected bill payment descriptor, body=%s", resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), `"amount_display":"1450.00"`) {
		t.Fatalf("expected client amount to be kept, body=%s", resp.Body.String())
	}
}

func TestRouterRejectionLeavesLedgerEmpty(t *testing.T) {
	router := newTestRouter(t)

	resp := postJSON(t, router, "/api/v1/settlements",
		`{"service_type":"mobile","account_number":"12345","operator":"jio","plan_id":"jio_1"}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", resp.Code, resp.Body.String())
	}

	var envelope types.ErrorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Error.Code != string(pkgerrors.CodeInvalidAccountFormat) {
		t.Fatalf("unexpected code %s", envelope.Error.Code)
	}

	recent := getJSON(t, router, "/api/v1/transactions/recent")
	if !strings.Contains(recent.Body.String(), `"count":0`) {
		t.Fatalf("rejection must not touch the ledger, body=%s", recent.Body.String())
	}
}

func TestRouterUnknownOperatorIs404(t *testing.T) {
	router := newTestRouter(t)

	resp := postJSON(t, router, "/api/v1/settlements",
		`{"service_type":"postpaid","account_number":"9876543210","operator":"Tata Power","amount":500}`)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), string(pkgerrors.CodeUnknownOperator)) {
		t.Fatalf("unexpected body %s", resp.Body.String())
	}
}

func TestRouterCatalogEndpoints(t *testing.T) {
	router := newTestRouter(t)

	if resp := getJSON(t, router, "/api/v1/catalog/services"); resp.Code != http.StatusOK {
		t.Fatalf("services: expected 200, got %d", resp.Code)
	}
	if resp := getJSON(t, router, "/api/v1/catalog/services/dth/operators"); resp.Code != http.StatusOK {
		t.Fatalf("operators: expected 200, got %d", resp.Code)
	}
	if resp := getJSON(t, router, "/api/v1/catalog/services/dth/operators/tata_play/plans"); resp.Code != http.StatusOK {
		t.Fatalf("plans: expected 200, got %d", resp.Code)
	}
	if resp := getJSON(t, router, "/api/v1/catalog/services/water/operators/delhi_jal/plans"); resp.Code != http.StatusNotFound {
		t.Fatalf("bill category plans: expected 404, got %d", resp.Code)
	}
}

func TestRouterMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	postJSON(t, router, "/api/v1/settlements",
		`{"service_type":"mobile","account_number":"9876543210","operator":"jio","plan_id":"jio_1"}`)

	resp := getJSON(t, router, "/metrics")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "settlement_accepted_total") {
		t.Fatalf("expected settlement metrics to be exposed, body=%s", resp.Body.String())
	}
}
