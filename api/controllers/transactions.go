package controllers

import (
	"net/http"

	"github.com/rechargehub/rechargehub-backend/api/responses"
	pkgerrors "github.com/rechargehub/rechargehub-backend/pkg/errors"
	"github.com/rechargehub/rechargehub-backend/pkg/logger"
	"github.com/rechargehub/rechargehub-backend/pkg/models"
)

// TransactionHistoryService describes the ledger read used by the HTTP
// controllers.
type TransactionHistoryService interface {
	Recent(n int) []models.Transaction
}

type transactionListResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Count        int                  `json:"count"`
}

func TransactionList(svc TransactionHistoryService, window int, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "transaction service unavailable"))
			return
		}

		transactions := svc.Recent(window)
		if transactions == nil {
			transactions = []models.Transaction{}
		}
		responses.WriteSuccess(w, transactionListResponse{
			Transactions: transactions,
			Count:        len(transactions),
		})
	}
}
