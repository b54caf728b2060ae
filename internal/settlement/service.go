package settlement

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rechargehub/rechargehub-backend/internal/ledger"
	"github.com/rechargehub/rechargehub-backend/internal/validation"
	"github.com/rechargehub/rechargehub-backend/pkg/enums"
	pkgerrors "github.com/rechargehub/rechargehub-backend/pkg/errors"
	"github.com/rechargehub/rechargehub-backend/pkg/logger"
	"github.com/rechargehub/rechargehub-backend/pkg/metrics"
	"github.com/rechargehub/rechargehub-backend/pkg/models"
)

// ServiceParams groups dependencies for the settlement service.
type ServiceParams struct {
	Validator *validation.Validator
	Ledger    *ledger.Ledger
	Metrics   *metrics.SettlementMetrics
	Logger    *logger.Logger
}

// Service composes the validator and the ledger into one settlement cycle.
type Service struct {
	validator *validation.Validator
	ledger    *ledger.Ledger
	metrics   *metrics.SettlementMetrics
	logger    *logger.Logger
}

// SettleInput is the raw settlement request as received by the adapter.
type SettleInput struct {
	ServiceType string `json:"service_type"`
	Account     string `json:"account_number"`
	Operator    string `json:"operator"`
	PlanID      string `json:"plan_id"`
	Amount      int64  `json:"amount"`
}

// NewService builds a settlement service.
func NewService(params ServiceParams) (*Service, error) {
	if params.Validator == nil {
		return nil, errors.New("validator is required")
	}
	if params.Ledger == nil {
		return nil, errors.New("ledger is required")
	}
	return &Service{
		validator: params.Validator,
		ledger:    params.Ledger,
		metrics:   params.Metrics,
		logger:    params.Logger,
	}, nil
}

// Settle validates the request and, on acceptance, records a transaction.
// Rejections are returned unchanged and never touch the ledger.
func (s *Service) Settle(ctx context.Context, input SettleInput) (*models.Transaction, error) {
	start := time.Now()
	serviceTypeLabel := strings.TrimSpace(input.ServiceType)
	defer func() {
		s.metrics.ObserveDuration(serviceTypeLabel, time.Since(start))
	}()

	result, err := s.validator.Validate(validation.Request{
		ServiceType: input.ServiceType,
		Account:     input.Account,
		Operator:    input.Operator,
		PlanID:      input.PlanID,
		Amount:      input.Amount,
	})
	if err != nil {
		s.metrics.IncRejected(serviceTypeLabel, string(pkgerrors.As(err).Code()))
		if s.logger != nil {
			ctx = s.logger.WithServiceType(ctx, serviceTypeLabel)
			s.logger.Warn(ctx, "settlement.rejected: "+err.Error())
		}
		return nil, err
	}

	txn := models.Transaction{
		ID:          newTransactionID(),
		ServiceType: result.ServiceType,
		Account:     result.Account,
		Operator:    result.OperatorName,
		Descriptor:  result.Descriptor,
		Amount:      result.Amount,
		Status:      enums.TransactionStatusSuccess,
		CreatedAt:   time.Now().UTC(),
	}
	s.ledger.Append(txn)
	s.metrics.IncAccepted(string(result.ServiceType))

	if s.logger != nil {
		ctx = s.logger.WithServiceType(ctx, string(result.ServiceType))
		ctx = s.logger.WithTransactionID(ctx, txn.ID)
		s.logger.Info(ctx, "settlement.accepted")
	}
	return &txn, nil
}

// Recent returns the last n recorded transactions, oldest of the window
// first.
func (s *Service) Recent(n int) []models.Transaction {
	return s.ledger.Recent(n)
}
