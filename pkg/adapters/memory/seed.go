package memory

import "github.com/fieldquote/fieldquote/pkg/domain"

// SeedTrades returns the built-in demo tradecraft documents: one electrical,
// one plumbing, one painting job.
func SeedTrades() []*domain.Tradecraft {
	return []*domain.Tradecraft{
		{
			JobType:  "panel_upgrade",
			Trade:    "electrical",
			Title:    "Panel upgrade",
			Keywords: []string{"panel upgrade", "panel", "breaker box", "electrical panel", "service upgrade"},
			Questions: []domain.ScopingQuestion{
				{ID: "amperage", Text: "What amperage is the new service?", Options: []string{"100 amp", "200 amp", "400 amp"}},
				{ID: "location", Text: "Where is the panel located?", Options: []string{"Garage", "Basement", "Outdoor"}},
				{ID: "permit", Text: "Will you be pulling the permit?", Options: []string{"Yes", "No"}},
			},
			Checklist: []domain.ChecklistItem{
				{Category: "Load centers", SearchTerms: []string{"load center", "breaker panel"}},
				{Category: "Breakers", SearchTerms: []string{"circuit breaker"}},
				{Category: "Wire and conduit", SearchTerms: []string{"copper wire", "conduit"}},
			},
		},
		{
			JobType:  "water_heater_replacement",
			Trade:    "plumbing",
			Title:    "Water heater replacement",
			Keywords: []string{"water heater", "hot water", "water heater replacement"},
			Questions: []domain.ScopingQuestion{
				{ID: "heater_type", Text: "Tank or tankless?", Options: []string{"Tank", "Tankless"}},
				{ID: "capacity", Text: "What capacity do you need?", Options: []string{"40 gallon", "50 gallon", "75 gallon"}},
			},
			Checklist: []domain.ChecklistItem{
				{Category: "Water heaters", SearchTerms: []string{"water heater"}},
				{Category: "Fittings and valves", SearchTerms: []string{"supply line", "shutoff valve"}},
			},
		},
		{
			JobType:  "interior_painting",
			Trade:    "painting",
			Title:    "Interior painting",
			Keywords: []string{"interior paint", "painting", "paint", "repaint"},
			Questions: []domain.ScopingQuestion{
				{ID: "rooms", Text: "How many rooms are we painting?", Options: []string{"1-2 rooms", "3-4 rooms", "Whole house"}},
				{ID: "ceilings", Text: "Are ceilings included?", Options: []string{"Yes", "No"}},
			},
			Checklist: []domain.ChecklistItem{
				{Category: "Paint", SearchTerms: []string{"interior paint", "primer"}},
				{Category: "Prep supplies", SearchTerms: []string{"painters tape", "drop cloth"}},
			},
		},
	}
}

// SeedProducts returns a small demo catalog matching the seed trades.
func SeedProducts() []domain.Product {
	return []domain.Product{
		{ID: "lc-200", Name: "200A Main Breaker Load Center", Category: "Load centers", UnitPrice: 289.00},
		{ID: "lc-100", Name: "100A Main Lug Load Center", Category: "Load centers", UnitPrice: 159.00},
		{ID: "brk-20", Name: "20A Single-Pole Circuit Breaker", Category: "Breakers", UnitPrice: 11.50},
		{ID: "brk-2p50", Name: "50A Double-Pole Circuit Breaker", Category: "Breakers", UnitPrice: 24.75},
		{ID: "wire-thhn", Name: "THHN Copper Wire 12 AWG 500ft", Category: "Wire and conduit", UnitPrice: 94.99},
		{ID: "emt-34", Name: "3/4 in EMT Conduit 10ft", Category: "Wire and conduit", UnitPrice: 8.25},
		{ID: "wh-50g", Name: "50 Gallon Gas Water Heater", Category: "Water heaters", UnitPrice: 649.00},
		{ID: "wh-tankless", Name: "Tankless Water Heater 199k BTU", Category: "Water heaters", UnitPrice: 1189.00},
		{ID: "sup-line", Name: "Braided Supply Line 24 in", Category: "Fittings and valves", UnitPrice: 12.49},
		{ID: "valve-34", Name: "3/4 in Ball Shutoff Valve", Category: "Fittings and valves", UnitPrice: 18.99},
		{ID: "paint-egg", Name: "Interior Eggshell Paint 1 gal", Category: "Paint", UnitPrice: 42.00},
		{ID: "primer-1g", Name: "Multi-Surface Primer 1 gal", Category: "Paint", UnitPrice: 26.50},
		{ID: "tape-blue", Name: "Painters Tape 1.88 in", Category: "Prep supplies", UnitPrice: 7.99},
		{ID: "drop-9x12", Name: "Canvas Drop Cloth 9x12", Category: "Prep supplies", UnitPrice: 21.99},
	}
}
