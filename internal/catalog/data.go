package catalog

import (
	"github.com/rechargehub/rechargehub-backend/pkg/enums"
	"github.com/rechargehub/rechargehub-backend/pkg/models"
)

// DefaultDataset returns the built-in catalog. The returned value is built
// fresh on every call so callers cannot alias the running service's data.
func DefaultDataset() models.Dataset {
	return models.Dataset{
		enums.ServiceTypeMobile: {
			Name: "Mobile Recharge",
			Operators: []models.Operator{
				{
					Key:  "jio",
					Name: "Jio",
					Plans: []models.Plan{
						{ID: "jio_1", Amount: 209, Validity: "22 days", Data: "1GB/day", Calls: "Unlimited"},
						{ID: "jio_2", Amount: 299, Validity: "28 days", Data: "2GB/day", Calls: "Unlimited"},
						{ID: "jio_3", Amount: 666, Validity: "84 days", Data: "1.5GB/day", Calls: "Unlimited"},
						{ID: "jio_4", Amount: 2999, Validity: "365 days", Data: "2.5GB/day", Calls: "Unlimited"},
					},
				},
				{
					Key:  "airtel",
					Name: "Airtel",
					Plans: []models.Plan{
						{ID: "airtel_1", Amount: 199, Validity: "24 days", Data: "1GB/day", Calls: "Unlimited"},
						{ID: "airtel_2", Amount: 349, Validity: "28 days", Data: "2GB/day", Calls: "Unlimited"},
						{ID: "airtel_3", Amount: 839, Validity: "84 days", Data: "2GB/day", Calls: "Unlimited"},
					},
				},
				{
					Key:  "vi",
					Name: "Vi",
					Plans: []models.Plan{
						{ID: "vi_1", Amount: 249, Validity: "28 days", Data: "1.5GB/day", Calls: "Unlimited"},
						{ID: "vi_2", Amount: 479, Validity: "56 days", Data: "1.5GB/day", Calls: "Unlimited"},
						{ID: "vi_3", Amount: 719, Validity: "84 days", Data: "1.5GB/day", Calls: "Unlimited"},
					},
				},
				{
					Key:  "bsnl",
					Name: "BSNL",
					Plans: []models.Plan{
						{ID: "bsnl_1", Amount: 187, Validity: "28 days", Data: "2GB/day", Calls: "Unlimited"},
						{ID: "bsnl_2", Amount: 397, Validity: "150 days", Data: "2GB/day", Calls: "Unlimited"},
					},
				},
			},
		},
		enums.ServiceTypeDTH: {
			Name: "DTH Recharge",
			Operators: []models.Operator{
				{
					Key:  "tata_play",
					Name: "Tata Play",
					Plans: []models.Plan{
						{ID: "tata_1", Amount: 249, Validity: "30 days", Channels: 184, Tier: "Hindi Lite"},
						{ID: "tata_2", Amount: 399, Validity: "30 days", Channels: 241, Tier: "Hindi Premium HD"},
						{ID: "tata_3", Amount: 599, Validity: "30 days", Channels: 320, Tier: "Mega HD"},
					},
				},
				{
					Key:  "airtel_dth",
					Name: "Airtel Digital TV",
					Plans: []models.Plan{
						{ID: "adt_1", Amount: 289, Validity: "30 days", Channels: 199, Tier: "Value Sports"},
						{ID: "adt_2", Amount: 499, Validity: "30 days", Channels: 265, Tier: "Ultimate HD"},
					},
				},
				{
					Key:  "dish_tv",
					Name: "Dish TV",
					Plans: []models.Plan{
						{ID: "dish_1", Amount: 225, Validity: "30 days", Channels: 170, Tier: "Super Family"},
						{ID: "dish_2", Amount: 381, Validity: "30 days", Channels: 245, Tier: "All Sports HD"},
					},
				},
				{
					Key:  "d2h",
					Name: "d2h",
					Plans: []models.Plan{
						{ID: "d2h_1", Amount: 270, Validity: "30 days", Channels: 180, Tier: "Gold Combo"},
						{ID: "d2h_2", Amount: 440, Validity: "30 days", Channels: 260, Tier: "Platinum HD"},
					},
				},
			},
		},
		enums.ServiceTypeBroadband: {
			Name: "Broadband",
			Operators: []models.Operator{
				{
					Key:  "jiofiber",
					Name: "JioFiber",
					Plans: []models.Plan{
						{ID: "jf_1", Amount: 399, Validity: "30 days", Speed: "30 Mbps", DataCap: "Unlimited", Bundled: "OTT starter pack"},
						{ID: "jf_2", Amount: 699, Validity: "30 days", Speed: "100 Mbps", DataCap: "Unlimited", Bundled: "OTT starter pack"},
						{ID: "jf_3", Amount: 999, Validity: "30 days", Speed: "150 Mbps", DataCap: "Unlimited", Bundled: "Netflix + Prime"},
					},
				},
				{
					Key:  "airtel_xstream",
					Name: "Airtel Xstream Fiber",
					Plans: []models.Plan{
						{ID: "ax_1", Amount: 499, Validity: "30 days", Speed: "40 Mbps", DataCap: "Unlimited", Bundled: "Xstream app"},
						{ID: "ax_2", Amount: 799, Validity: "30 days", Speed: "100 Mbps", DataCap: "Unlimited", Bundled: "Xstream + Disney"},
					},
				},
				{
					Key:  "act",
					Name: "ACT Fibernet",
					Plans: []models.Plan{
						{ID: "act_1", Amount: 549, Validity: "30 days", Speed: "100 Mbps", DataCap: "1000GB", Bundled: "None"},
						{ID: "act_2", Amount: 749, Validity: "30 days", Speed: "200 Mbps", DataCap: "Unlimited", Bundled: "ACT Stream TV"},
					},
				},
				{
					Key:  "bsnl_fiber",
					Name: "BSNL Bharat Fibre",
					Plans: []models.Plan{
						{ID: "bf_1", Amount: 449, Validity: "30 days", Speed: "60 Mbps", DataCap: "3300GB", Bundled: "None"},
					},
				},
			},
		},
		enums.ServiceTypePostpaid: {
			Name: "Postpaid Bill",
			Operators: []models.Operator{
				{Key: "jio", Name: "Jio Postpaid"},
				{Key: "airtel", Name: "Airtel Postpaid"},
				{Key: "vi", Name: "Vi Postpaid"},
				{Key: "bsnl", Name: "BSNL Postpaid"},
			},
		},
		enums.ServiceTypeElectricity: {
			Name: "Electricity Bill",
			Operators: []models.Operator{
				{Key: "tata_power", Name: "Tata Power"},
				{Key: "adani", Name: "Adani Electricity"},
				{Key: "bescom", Name: "BESCOM"},
				{Key: "msedcl", Name: "MSEDCL"},
			},
		},
		enums.ServiceTypeGas: {
			Name: "Gas Bill",
			Operators: []models.Operator{
				{Key: "igl", Name: "Indraprastha Gas"},
				{Key: "mgl", Name: "Mahanagar Gas"},
				{Key: "adani_gas", Name: "Adani Total Gas"},
			},
		},
		enums.ServiceTypeWater: {
			Name: "Water Bill",
			Operators: []models.Operator{
				{Key: "delhi_jal", Name: "Delhi Jal Board"},
				{Key: "bwssb", Name: "BWSSB"},
				{Key: "mcgm", Name: "MCGM Water"},
			},
		},
		enums.ServiceTypeLandline: {
			Name: "Landline Bill",
			Operators: []models.Operator{
				{Key: "bsnl_landline", Name: "BSNL Landline"},
				{Key: "airtel_landline", Name: "Airtel Landline"},
				{Key: "jio_landline", Name: "Jio Landline"},
			},
		},
	}
}
