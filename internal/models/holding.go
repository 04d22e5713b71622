package models

// Holding is a position in a tradable instrument at a recorded cost basis.
type Holding struct {
	Symbol           string  `json:"symbol"`
	Name             string  `json:"name"`
	Quantity         float64 `json:"quantity"`
	UnitCost         float64 `json:"unit_cost"`
	CurrentPrice     float64 `json:"current_price"`
	DayChange        float64 `json:"day_change"`
	DayChangePercent float64 `json:"day_change_percent"`
	Category         string  `json:"category,omitempty"`
}

// HoldingView pairs a holding with its derived metrics.
// GainPercent is nil when the holding has no cost basis.
type HoldingView struct {
	Holding
	Value       float64  `json:"value"`
	Gain        float64  `json:"gain"`
	GainPercent *float64 `json:"gain_percent"`
}

// PortfolioSummary aggregates a list of holdings.
type PortfolioSummary struct {
	TotalValue    float64  `json:"total_value"`
	TotalGain     float64  `json:"total_gain"`
	TotalCost     float64  `json:"total_cost"`
	GainPercent   *float64 `json:"gain_percent"`
	HoldingsCount int      `json:"holdings_count"`
}
