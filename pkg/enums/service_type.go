package enums

import "fmt"

// ServiceType is the top-level category of a billable service.
type ServiceType string

const (
	ServiceTypeMobile      ServiceType = "mobile"
	ServiceTypeDTH         ServiceType = "dth"
	ServiceTypeBroadband   ServiceType = "broadband"
	ServiceTypePostpaid    ServiceType = "postpaid"
	ServiceTypeElectricity ServiceType = "electricity"
	ServiceTypeGas         ServiceType = "gas"
	ServiceTypeWater       ServiceType = "water"
	ServiceTypeLandline    ServiceType = "landline"
)

var validServiceTypes = []ServiceType{
	ServiceTypeMobile,
	ServiceTypeDTH,
	ServiceTypeBroadband,
	ServiceTypePostpaid,
	ServiceTypeElectricity,
	ServiceTypeGas,
	ServiceTypeWater,
	ServiceTypeLandline,
}

// ServiceTypes returns every recognized service type in catalog order.
func ServiceTypes() []ServiceType {
	out := make([]ServiceType, len(validServiceTypes))
	copy(out, validServiceTypes)
	return out
}

// String implements fmt.Stringer.
func (s ServiceType) String() string {
	return string(s)
}

// IsValid reports whether the service type is recognized.
func (s ServiceType) IsValid() bool {
	for _, candidate := range validServiceTypes {
		if candidate == s {
			return true
		}
	}
	return false
}

// HasPlans reports whether the category carries a catalog plan list.
func (s ServiceType) HasPlans() bool {
	switch s {
	case ServiceTypeMobile, ServiceTypeDTH, ServiceTypeBroadband:
		return true
	}
	return false
}

// IsUtility reports whether the category is a free-text bill payment.
func (s ServiceType) IsUtility() bool {
	switch s {
	case ServiceTypeElectricity, ServiceTypeGas, ServiceTypeWater, ServiceTypeLandline:
		return true
	}
	return false
}

// ParseServiceType converts a raw string into a ServiceType.
func ParseServiceType(value string) (ServiceType, error) {
	for _, candidate := range validServiceTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid service type %q", value)
}
