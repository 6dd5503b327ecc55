package store

import "catalog-service/internal/models"

// FallbackProducts returns a fresh copy of the built-in catalog.
// Keep in sync with migrations/00002_seed_products.sql.
func FallbackProducts() []models.Product {
	return []models.Product{
		{
			ID:          "aquatrans-3000",
			Name:        "AquaTrans 3000",
			Capacity:    3000,
			Price:       89000,
			Description: "Lekki beczkowóz do wody pitnej na podwoziu dostawczym. Sprawdza się przy obsłudze imprez i małych gmin.",
			Specs: models.ProductSpecs{
				Material: "Stal nierdzewna AISI 304",
				PumpType: "Pompa odśrodkowa 400 l/min",
				Chassis:  "Iveco Daily 70C",
				Weight:   3500,
			},
			Category: models.CategoryLight,
			Image:    "/images/tankers/aquatrans-3000.jpg",
			InStock:  true,
		},
		{
			ID:          "aquatrans-4000-compact",
			Name:        "AquaTrans 4000 Compact",
			Capacity:    4000,
			Price:       112000,
			Description: "Kompaktowa cysterna z krótkim rozstawem osi do pracy w ciasnej zabudowie miejskiej.",
			Specs: models.ProductSpecs{
				Material: "Stal nierdzewna AISI 304",
				PumpType: "Pompa odśrodkowa 500 l/min",
				Chassis:  "Iveco Daily 72C",
				Weight:   4200,
			},
			Category: models.CategoryLight,
			Image:    "/images/tankers/aquatrans-4000-compact.jpg",
			InStock:  false,
		},
		{
			ID:          "aquatrans-5000",
			Name:        "AquaTrans 5000",
			Capacity:    5000,
			Price:       145000,
			Description: "Uniwersalny beczkowóz dla wodociągów i służb komunalnych z atestem PZH.",
			Specs: models.ProductSpecs{
				Material: "Stal nierdzewna AISI 316",
				PumpType: "Pompa samozasysająca 600 l/min",
				Chassis:  "MAN TGL 8.190",
				Weight:   6800,
			},
			Category: models.CategoryMedium,
			Image:    "/images/tankers/aquatrans-5000.jpg",
			InStock:  true,
		},
		{
			ID:          "aquatrans-6500-pro",
			Name:        "AquaTrans 6500 Pro",
			Capacity:    6500,
			Price:       179000,
			Description: "Wersja Pro z dwukomorowym zbiornikiem i zwijadłem węża 30 m.",
			Specs: models.ProductSpecs{
				Material: "Stal nierdzewna AISI 316",
				PumpType: "Pompa samozasysająca 800 l/min",
				Chassis:  "MAN TGL 12.220",
				Weight:   7900,
			},
			Category: models.CategoryMedium,
			Image:    "/images/tankers/aquatrans-6500-pro.jpg",
			InStock:  true,
		},
		{
			ID:          "aquatrans-8000",
			Name:        "AquaTrans 8000",
			Capacity:    8000,
			Price:       215000,
			Description: "Ciężki beczkowóz do zaopatrzenia w wodę w sytuacjach awaryjnych.",
			Specs: models.ProductSpecs{
				Material: "Stal nierdzewna AISI 316L",
				PumpType: "Pompa wirowa 1000 l/min",
				Chassis:  "Volvo FL 16t",
				Weight:   9800,
			},
			Category: models.CategoryHeavy,
			Image:    "/images/tankers/aquatrans-8000.jpg",
			InStock:  true,
		},
		{
			ID:          "aquatrans-10000-max",
			Name:        "AquaTrans 10000 Max",
			Capacity:    10000,
			Price:       259000,
			Description: "Największy model w ofercie, do obsługi dużych inwestycji i akcji kryzysowych.",
			Specs: models.ProductSpecs{
				Material: "Stal nierdzewna AISI 316L",
				PumpType: "Pompa wirowa 1200 l/min",
				Chassis:  "Volvo FM 18t",
				Weight:   11500,
			},
			Category: models.CategoryHeavy,
			Image:    "/images/tankers/aquatrans-10000-max.jpg",
			InStock:  false,
		},
	}
}
