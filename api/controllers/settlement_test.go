package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	settlementsvc "github.com/rechargehub/rechargehub-backend/internal/settlement"
	pkgerrors "github.com/rechargehub/rechargehub-backend/pkg/errors"
	"github.com/rechargehub/rechargehub-backend/pkg/enums"
	"github.com/rechargehub/rechargehub-backend/pkg/models"
	"github.com/rechargehub/rechargehub-backend/pkg/types"
)

type stubSettlementService struct {
	lastInput settlementsvc.SettleInput
	txn       *models.Transaction
	err       error
}

func (s *stubSettlementService) Settle(_ context.Context, input settlementsvc.SettleInput) (*models.Transaction, error) {
	s.lastInput = input
	if s.err != nil {
		return nil, s.err
	}
	return s.txn, nil
}

func TestSettlementCreate(t *testing.T) {
	svc := &stubSettlementService{txn: &models.Transaction{
		ID:          "TXN20260901120000ABCD1234",
		ServiceType: enums.ServiceTypeMobile,
		Account:     "9876543210",
		Operator:    "Jio",
		Descriptor:  "1GB/day + Unlimited calls, 22 days",
		Amount:      209,
		Status:      enums.TransactionStatusSuccess,
	}}

	body := `{"service_type":"mobile","account_number":"9876543210","operator":"jio","plan_id":"jio_1"}`
	req := httptest.NewRequest(http.MethodPost, "/settlements", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	SettlementCreate(svc, nil)(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", resp.Code, resp.Body.String())
	}
	if svc.lastInput.PlanID != "jio_1" || svc.lastInput.Account != "9876543210" {
		t.Fatalf("input not forwarded: %+v", svc.lastInput)
	}

	var envelope struct {
		Success bool               `json:"success"`
		Data    settlementResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !envelope.Success {
		t.Fatal("expected success envelope")
	}
	if envelope.Data.TransactionID != "TXN20260901120000ABCD1234" {
		t.Fatalf("unexpected transaction id %q", envelope.Data.TransactionID)
	}
	if envelope.Data.Message != "Payment recorded successfully" {
		t.Fatalf("unexpected message %q", envelope.Data.Message)
	}
	if envelope.Data.Amount != "209.00" {
		t.Fatalf("expected two-decimal amount display, got %q", envelope.Data.Amount)
	}
	if envelope.Data.Details.Descriptor != "1GB/day + Unlimited calls, 22 days" {
		t.Fatalf("unexpected details %+v", envelope.Data.Details)
	}
}

func TestSettlementCreateRejection(t *testing.T) {
	svc := &stubSettlementService{
		err: pkgerrors.New(pkgerrors.CodeInvalidAccountFormat, "Invalid mobile number. Must be 10 digits starting with 6-9"),
	}

	body := `{"service_type":"mobile","account_number":"12345","operator":"jio","plan_id":"jio_1"}`
	req := httptest.NewRequest(http.MethodPost, "/settlements", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	SettlementCreate(svc, nil)(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}

	var envelope types.ErrorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Success {
		t.Fatal("expected success flag to be false")
	}
	if envelope.Error.Code != string(pkgerrors.CodeInvalidAccountFormat) {
		t.Fatalf("unexpected code %s", envelope.Error.Code)
	}
	if envelope.Error.Message != "Invalid mobile number. Must be 10 digits starting with 6-9" {
		t.Fatalf("unexpected message %q", envelope.Error.Message)
	}
}

func TestSettlementCreateMalformedBody(t *testing.T) {
	svc := &stubSettlementService{}
	req := httptest.NewRequest(http.MethodPost, "/settlements", strings.NewReader(`{"service_type":`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	SettlementCreate(svc, nil)(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed JSON, got %d", resp.Code)
	}
	if svc.lastInput != (settlementsvc.SettleInput{}) {
		t.Fatalf("service should not be reached on decode failure: %+v", svc.lastInput)
	}
}

func TestSettlementCreateMissingFieldsReachService(t *testing.T) {
	svc := &stubSettlementService{
		err: pkgerrors.New(pkgerrors.CodeUnknownServiceType, "Unknown service type: "),
	}

	req := httptest.NewRequest(http.MethodPost, "/settlements", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	SettlementCreate(svc, nil)(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected rule engine verdict, got %d", resp.Code)
	}
}

func TestSettlementCreateNilService(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/settlements", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	SettlementCreate(nil, nil)(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 when service missing, got %d", resp.Code)
	}
}
