package catalog

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/rechargehub/rechargehub-backend/pkg/enums"
	pkgerrors "github.com/rechargehub/rechargehub-backend/pkg/errors"
	"github.com/rechargehub/rechargehub-backend/pkg/models"
)

// ServiceParams groups dependencies for the catalog service.
type ServiceParams struct {
	Dataset models.Dataset
}

// Service is the read-only registry of service types, operators and plans.
// It is never mutated after construction and is safe for concurrent reads.
type Service struct {
	dataset models.Dataset
	index   map[enums.ServiceType]map[string]models.Operator
}

// NewService validates the dataset and builds the lookup index. Every
// dataset defect is reported, not just the first.
func NewService(params ServiceParams) (*Service, error) {
	if params.Dataset == nil {
		return nil, fmt.Errorf("dataset is required")
	}
	if err := validateDataset(params.Dataset); err != nil {
		return nil, fmt.Errorf("invalid catalog dataset: %w", err)
	}

	index := make(map[enums.ServiceType]map[string]models.Operator, len(params.Dataset))
	for serviceType, entry := range params.Dataset {
		byKey := make(map[string]models.Operator, len(entry.Operators))
		for _, op := range entry.Operators {
			byKey[op.Key] = op
		}
		index[serviceType] = byKey
	}

	return &Service{dataset: params.Dataset, index: index}, nil
}

// ListServiceTypes returns the display name of every catalogued service type.
func (s *Service) ListServiceTypes() map[enums.ServiceType]string {
	out := make(map[enums.ServiceType]string, len(s.dataset))
	for serviceType, entry := range s.dataset {
		out[serviceType] = entry.Name
	}
	return out
}

// ListOperators returns the operators of a service type in catalog order.
func (s *Service) ListOperators(serviceType enums.ServiceType) ([]models.Operator, error) {
	entry, ok := s.dataset[serviceType]
	if !ok {
		return nil, unknownServiceType(serviceType)
	}
	out := make([]models.Operator, len(entry.Operators))
	copy(out, entry.Operators)
	return out, nil
}

// Operator resolves one operator by its key. Key match is exact.
func (s *Service) Operator(serviceType enums.ServiceType, operatorKey string) (models.Operator, error) {
	byKey, ok := s.index[serviceType]
	if !ok {
		return models.Operator{}, unknownServiceType(serviceType)
	}
	op, ok := byKey[operatorKey]
	if !ok {
		return models.Operator{}, unknownOperator(serviceType, operatorKey)
	}
	return op, nil
}

// ListPlans returns the ordered plan list of an operator. Bill-payment
// categories have providers, not plans.
func (s *Service) ListPlans(serviceType enums.ServiceType, operatorKey string) ([]models.Plan, error) {
	if _, ok := s.dataset[serviceType]; !ok {
		return nil, unknownServiceType(serviceType)
	}
	if !serviceType.HasPlans() {
		return nil, pkgerrors.New(pkgerrors.CodeNotApplicable,
			fmt.Sprintf("%s does not offer plans", serviceType))
	}
	op, err := s.Operator(serviceType, operatorKey)
	if err != nil {
		return nil, err
	}
	out := make([]models.Plan, len(op.Plans))
	copy(out, op.Plans)
	return out, nil
}

// ResolvePlan returns the plan with the given id under the operator.
func (s *Service) ResolvePlan(serviceType enums.ServiceType, operatorKey, planID string) (models.Plan, error) {
	op, err := s.Operator(serviceType, operatorKey)
	if err != nil {
		return models.Plan{}, err
	}
	for _, plan := range op.Plans {
		if plan.ID == planID {
			return plan, nil
		}
	}
	return models.Plan{}, pkgerrors.New(pkgerrors.CodePlanNotFound,
		fmt.Sprintf("plan %q not found for operator %q", planID, operatorKey))
}

func unknownServiceType(serviceType enums.ServiceType) error {
	return pkgerrors.New(pkgerrors.CodeUnknownServiceType,
		fmt.Sprintf("unknown service type %q", serviceType))
}

func unknownOperator(serviceType enums.ServiceType, operatorKey string) error {
	return pkgerrors.New(pkgerrors.CodeUnknownOperator,
		fmt.Sprintf("unknown operator %q for %s", operatorKey, serviceType))
}

func validateDataset(dataset models.Dataset) error {
	var err error
	for serviceType, entry := range dataset {
		if !serviceType.IsValid() {
			err = multierr.Append(err, fmt.Errorf("unrecognized service type %q", serviceType))
			continue
		}
		if entry.Name == "" {
			err = multierr.Append(err, fmt.Errorf("%s: display name is empty", serviceType))
		}
		seenOps := map[string]bool{}
		for _, op := range entry.Operators {
			if op.Key == "" || op.Name == "" {
				err = multierr.Append(err, fmt.Errorf("%s: operator with empty key or name", serviceType))
				continue
			}
			if seenOps[op.Key] {
				err = multierr.Append(err, fmt.Errorf("%s: duplicate operator key %q", serviceType, op.Key))
			}
			seenOps[op.Key] = true
			if !serviceType.HasPlans() && len(op.Plans) > 0 {
				err = multierr.Append(err, fmt.Errorf("%s/%s: plans on a bill-payment category", serviceType, op.Key))
			}
			seenPlans := map[string]bool{}
			for _, plan := range op.Plans {
				if plan.ID == "" {
					err = multierr.Append(err, fmt.Errorf("%s/%s: plan with empty id", serviceType, op.Key))
					continue
				}
				if seenPlans[plan.ID] {
					err = multierr.Append(err, fmt.Errorf("%s/%s: duplicate plan id %q", serviceType, op.Key, plan.ID))
				}
				seenPlans[plan.ID] = true
				if plan.Amount <= 0 {
					err = multierr.Append(err, fmt.Errorf("%s/%s/%s: amount must be positive", serviceType, op.Key, plan.ID))
				}
			}
		}
	}
	return err
}
