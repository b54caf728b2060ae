package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/rechargehub/rechargehub-backend/api/responses"
	"github.com/rechargehub/rechargehub-backend/pkg/enums"
	pkgerrors "github.com/rechargehub/rechargehub-backend/pkg/errors"
	"github.com/rechargehub/rechargehub-backend/pkg/logger"
	"github.com/rechargehub/rechargehub-backend/pkg/models"
)

// CatalogService describes the catalog reads used by the HTTP controllers.
type CatalogService interface {
	ListServiceTypes() map[enums.ServiceType]string
	ListOperators(serviceType enums.ServiceType) ([]models.Operator, error)
	ListPlans(serviceType enums.ServiceType, operatorKey string) ([]models.Plan, error)
}

type serviceTypeListResponse struct {
	Services map[string]string `json:"services"`
}

type operatorResponse struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

type operatorListResponse struct {
	ServiceType string             `json:"service_type"`
	Operators   []operatorResponse `json:"operators"`
}

type planListResponse struct {
	ServiceType string        `json:"service_type"`
	Operator    string        `json:"operator"`
	Plans       []models.Plan `json:"plans"`
}

func ServiceTypeList(svc CatalogService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		services := map[string]string{}
		for serviceType, name := range svc.ListServiceTypes() {
			services[string(serviceType)] = name
		}
		responses.WriteSuccess(w, serviceTypeListResponse{Services: services})
	}
}

func OperatorList(svc CatalogService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		serviceType, err := parseServiceTypeParam(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		operators, err := svc.ListOperators(serviceType)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, operatorListResponse{
			ServiceType: string(serviceType),
			Operators:   operatorsToResponse(operators),
		})
	}
}

func PlanList(svc CatalogService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		serviceType, err := parseServiceTypeParam(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		operatorKey := strings.TrimSpace(chi.URLParam(r, "operatorKey"))
		plans, err := svc.ListPlans(serviceType, operatorKey)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, planListResponse{
			ServiceType: string(serviceType),
			Operator:    operatorKey,
			Plans:       plans,
		})
	}
}

func parseServiceTypeParam(r *http.Request) (enums.ServiceType, error) {
	raw := strings.TrimSpace(chi.URLParam(r, "serviceType"))
	serviceType, err := enums.ParseServiceType(raw)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeUnknownServiceType, err, fmt.Sprintf("unknown service type %q", raw))
	}
	return serviceType, nil
}

func operatorsToResponse(operators []models.Operator) []operatorResponse {
	result := make([]operatorResponse, 0, len(operators))
	for _, op := range operators {
		result = append(result, operatorResponse{Key: op.Key, Name: op.Name})
	}
	return result
}
