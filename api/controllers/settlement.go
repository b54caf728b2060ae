package controllers

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/rechargehub/rechargehub-backend/api/responses"
	"github.com/rechargehub/rechargehub-backend/api/validators"
	settlementsvc "github.com/rechargehub/rechargehub-backend/internal/settlement"
	pkgerrors "github.com/rechargehub/rechargehub-backend/pkg/errors"
	"github.com/rechargehub/rechargehub-backend/pkg/logger"
	"github.com/rechargehub/rechargehub-backend/pkg/models"
)

// SettlementService describes the settlement operation used by the HTTP
// controllers.
type SettlementService interface {
	Settle(ctx context.Context, input settlementsvc.SettleInput) (*models.Transaction, error)
}

// Missing fields decode to zero values on purpose: the rule engine treats
// them as empty and rejects with a category-specific message.
type settlementRequest struct {
	ServiceType   string `json:"service_type"`
	AccountNumber string `json:"account_number"`
	Operator      string `json:"operator"`
	PlanID        string `json:"plan_id,omitempty"`
	Amount        int64  `json:"amount,omitempty"`
}

type settlementResponse struct {
	TransactionID string             `json:"transaction_id"`
	Message       string             `json:"message"`
	Amount        string             `json:"amount_display"`
	Details       models.Transaction `json:"details"`
}

func SettlementCreate(svc SettlementService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "settlement service unavailable"))
			return
		}

		var payload settlementRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		txn, err := svc.Settle(ctx, settlementsvc.SettleInput{
			ServiceType: payload.ServiceType,
			Account:     payload.AccountNumber,
			Operator:    payload.Operator,
			PlanID:      payload.PlanID,
			Amount:      payload.Amount,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, settlementResponse{
			TransactionID: txn.ID,
			Message:       "Payment recorded successfully",
			Amount:        decimal.NewFromInt(txn.Amount).StringFixed(2),
			Details:       *txn,
		})
	}
}
