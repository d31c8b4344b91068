package engine

import (
	"math"

	"github.com/fieldquote/fieldquote/pkg/domain"
)

// Summary is the computed quote breakdown shown during review and attached
// to the final display payload.
type Summary struct {
	MaterialsSubtotal float64 `json:"materials_subtotal"`
	MarkupPercent     float64 `json:"markup_percent"`
	MarkupAmount      float64 `json:"markup_amount"`
	MaterialsTotal    float64 `json:"materials_total"`
	LaborHours        float64 `json:"labor_hours"`
	LaborRate         float64 `json:"labor_rate"`
	LaborTotal        float64 `json:"labor_total"`
	GrandTotal        float64 `json:"grand_total"`
}

// Totals computes the quote arithmetic. Markup applies to the materials
// subtotal only; labor is never marked up. That asymmetry is a deliberate
// business rule.
func Totals(c *domain.Context, s domain.Settings) Summary {
	var materials float64
	for _, item := range c.QuoteItems {
		materials += item.UnitPrice * item.Quantity
	}

	rate := c.LaborRate
	if rate <= 0 {
		rate = s.LaborRate()
	}

	sum := Summary{
		MaterialsSubtotal: roundCents(materials),
		MarkupPercent:     c.MarkupPercent,
		LaborHours:        c.LaborHours,
		LaborRate:         rate,
	}
	sum.MarkupAmount = roundCents(materials * c.MarkupPercent / 100)
	sum.MaterialsTotal = roundCents(materials + materials*c.MarkupPercent/100)
	sum.LaborTotal = roundCents(c.LaborHours * rate)
	sum.GrandTotal = roundCents(sum.MaterialsTotal + sum.LaborTotal)
	return sum
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
