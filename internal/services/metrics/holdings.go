// Package metrics computes derived values (totals, gains, goal progress)
// from holding, goal and fund records. Every function is pure and
// recomputes from its inputs on each call.
package metrics

import (
	"github.com/bobmcallan/investiq/internal/models"
)

// ratio returns num/den*100, or ok=false when den is zero.
func ratio(num, den float64) (float64, bool) {
	if den == 0 {
		return 0, false
	}
	return num / den * 100, true
}

// optional converts a (value, ok) pair into a JSON-friendly pointer.
func optional(v float64, ok bool) *float64 {
	if !ok {
		return nil
	}
	return &v
}

// HoldingValue is quantity × current price.
func HoldingValue(h models.Holding) float64 {
	return h.Quantity * h.CurrentPrice
}

// HoldingGain is quantity × (current price − unit cost).
func HoldingGain(h models.Holding) float64 {
	return h.Quantity * (h.CurrentPrice - h.UnitCost)
}

// AggregateValue sums the market value of all holdings.
func AggregateValue(holdings []models.Holding) float64 {
	var total float64
	for _, h := range holdings {
		total += HoldingValue(h)
	}
	return total
}

// AggregateGain sums the unrealised gain of all holdings.
func AggregateGain(holdings []models.Holding) float64 {
	var total float64
	for _, h := range holdings {
		total += HoldingGain(h)
	}
	return total
}

// GainPercent is gain / (value − gain) × 100, i.e. the gain against cost basis.
// ok is false when the cost basis is zero.
func GainPercent(holdings []models.Holding) (float64, bool) {
	value := AggregateValue(holdings)
	gain := AggregateGain(holdings)
	return ratio(gain, value-gain)
}

// HoldingMetrics derives per-row value, gain and gain% against unit cost.
func HoldingMetrics(h models.Holding) models.HoldingView {
	return models.HoldingView{
		Holding:     h,
		Value:       HoldingValue(h),
		Gain:        HoldingGain(h),
		GainPercent: optional(ratio(h.CurrentPrice-h.UnitCost, h.UnitCost)),
	}
}

// HoldingViews applies HoldingMetrics to each holding, preserving order.
func HoldingViews(holdings []models.Holding) []models.HoldingView {
	views := make([]models.HoldingView, 0, len(holdings))
	for _, h := range holdings {
		views = append(views, HoldingMetrics(h))
	}
	return views
}

// PortfolioSummary aggregates holdings into the portfolio summary cards.
func PortfolioSummary(holdings []models.Holding) models.PortfolioSummary {
	value := AggregateValue(holdings)
	gain := AggregateGain(holdings)
	return models.PortfolioSummary{
		TotalValue:    value,
		TotalGain:     gain,
		TotalCost:     value - gain,
		GainPercent:   optional(ratio(gain, value-gain)),
		HoldingsCount: len(holdings),
	}
}

// SeriesAverage is the mean of the series values; ok is false for an empty series.
func SeriesAverage(points []models.PricePoint) (float64, bool) {
	if len(points) == 0 {
		return 0, false
	}
	var sum float64
	for _, p := range points {
		sum += p.Value
	}
	return sum / float64(len(points)), true
}
