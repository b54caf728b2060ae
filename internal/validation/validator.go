package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rechargehub/rechargehub-backend/internal/catalog"
	"github.com/rechargehub/rechargehub-backend/pkg/enums"
	pkgerrors "github.com/rechargehub/rechargehub-backend/pkg/errors"
	"github.com/rechargehub/rechargehub-backend/pkg/models"
)

var (
	mobileAccountPattern = regexp.MustCompile(`^[6-9][0-9]{9}$`)
	dthAccountPattern    = regexp.MustCompile(`^[0-9]{10,12}$`)
)

// Request is a raw settlement request before any rule has run.
type Request struct {
	ServiceType string
	Account     string
	Operator    string
	PlanID      string
	Amount      int64
}

// Result is the normalized settlement descriptor produced on acceptance.
// For plan-based categories Amount is the catalog plan amount, never the
// client-supplied one.
type Result struct {
	ServiceType  enums.ServiceType
	Account      string
	OperatorName string
	Descriptor   string
	Amount       int64
}

// Validator applies the per-category acceptance rules against the catalog.
type Validator struct {
	catalog *catalog.Service
}

// NewValidator wires a validator with the provided catalog.
func NewValidator(cat *catalog.Service) (*Validator, error) {
	if cat == nil {
		return nil, fmt.Errorf("catalog is required")
	}
	return &Validator{catalog: cat}, nil
}

// Validate trims the request and runs the category rules in order: service
// type, account format, operator/plan resolution, amount. The first failing
// check rejects the request.
func (v *Validator) Validate(req Request) (*Result, error) {
	req.ServiceType = strings.TrimSpace(req.ServiceType)
	req.Account = strings.TrimSpace(req.Account)
	req.Operator = strings.TrimSpace(req.Operator)
	req.PlanID = strings.TrimSpace(req.PlanID)

	serviceType, err := enums.ParseServiceType(req.ServiceType)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnknownServiceType,
			fmt.Sprintf("unknown service type %q", req.ServiceType))
	}

	switch serviceType {
	case enums.ServiceTypeMobile:
		return v.validatePlanBased(serviceType, req, mobileAccountPattern,
			"Invalid mobile number. Must be 10 digits starting with 6-9")
	case enums.ServiceTypeDTH:
		return v.validatePlanBased(serviceType, req, dthAccountPattern,
			"Invalid DTH subscriber ID. Must be 10 to 12 digits")
	case enums.ServiceTypeBroadband:
		if req.Account == "" {
			return nil, pkgerrors.New(pkgerrors.CodeInvalidAccountFormat, "Account ID is required")
		}
		return v.validatePlanBased(serviceType, req, nil, "")
	case enums.ServiceTypePostpaid:
		return v.validatePostpaid(serviceType, req)
	case enums.ServiceTypeElectricity, enums.ServiceTypeGas, enums.ServiceTypeWater, enums.ServiceTypeLandline:
		return v.validateUtility(serviceType, req)
	}
	return nil, pkgerrors.New(pkgerrors.CodeUnknownServiceType,
		fmt.Sprintf("unknown service type %q", req.ServiceType))
}

func (v *Validator) validatePlanBased(serviceType enums.ServiceType, req Request, accountPattern *regexp.Regexp, accountMessage string) (*Result, error) {
	if accountPattern != nil && !accountPattern.MatchString(req.Account) {
		return nil, pkgerrors.New(pkgerrors.CodeInvalidAccountFormat, accountMessage)
	}
	op, err := v.catalog.Operator(serviceType, req.Operator)
	if err != nil {
		return nil, err
	}
	plan, err := v.catalog.ResolvePlan(serviceType, req.Operator, req.PlanID)
	if err != nil {
		return nil, err
	}
	return &Result{
		ServiceType:  serviceType,
		Account:      req.Account,
		OperatorName: op.Name,
		Descriptor:   planDescriptor(serviceType, plan),
		Amount:       plan.Amount,
	}, nil
}

func (v *Validator) validatePostpaid(serviceType enums.ServiceType, req Request) (*Result, error) {
	if !mobileAccountPattern.MatchString(req.Account) {
		return nil, pkgerrors.New(pkgerrors.CodeInvalidAccountFormat,
			"Invalid mobile number. Must be 10 digits starting with 6-9")
	}
	op, err := v.catalog.Operator(serviceType, req.Operator)
	if err != nil {
		return nil, err
	}
	if req.Amount <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeInvalidAmount, "Amount must be greater than zero")
	}
	return &Result{
		ServiceType:  serviceType,
		Account:      req.Account,
		OperatorName: op.Name,
		Descriptor:   "Postpaid Bill Payment",
		Amount:       req.Amount,
	}, nil
}

// validateUtility accepts the operator as a free-text label; it is not
// checked against the provider list the catalog exposes for display.
func (v *Validator) validateUtility(serviceType enums.ServiceType, req Request) (*Result, error) {
	if req.Account == "" {
		return nil, pkgerrors.New(pkgerrors.CodeInvalidAccountFormat, "Consumer number is required")
	}
	if req.Amount <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeInvalidAmount, "Amount must be greater than zero")
	}
	return &Result{
		ServiceType:  serviceType,
		Account:      req.Account,
		OperatorName: req.Operator,
		Descriptor:   "Bill Payment",
		Amount:       req.Amount,
	}, nil
}

func planDescriptor(serviceType enums.ServiceType, plan models.Plan) string {
	switch serviceType {
	case enums.ServiceTypeMobile:
		return fmt.Sprintf("%s + %s calls, %s", plan.Data, plan.Calls, plan.Validity)
	case enums.ServiceTypeDTH:
		return fmt.Sprintf("%s (%d channels), %s", plan.Tier, plan.Channels, plan.Validity)
	case enums.ServiceTypeBroadband:
		return fmt.Sprintf("%s, %s data, %s", plan.Speed, plan.DataCap, plan.Validity)
	}
	return plan.ID
}
