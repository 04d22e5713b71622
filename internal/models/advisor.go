package models

import (
	"fmt"
	"strings"
)

// Duration is the investment horizon bucket used by the advisor.
type Duration string

// Duration buckets.
const (
	DurationShort Duration = "short" // 3-12 months
	DurationLong  Duration = "long"  // 1+ years
)

// ParseDuration validates a duration bucket.
func ParseDuration(s string) (Duration, error) {
	d := Duration(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", fmt.Errorf("unknown duration %q", s)
	}
	return d, nil
}

// Valid reports whether d is short or long.
func (d Duration) Valid() bool {
	return d == DurationShort || d == DurationLong
}

// Recommendation is one entry of an advisor recommendation set.
type Recommendation struct {
	Symbol            string    `json:"symbol"`
	Name              string    `json:"name"`
	Sector            string    `json:"sector"`
	CurrentPrice      float64   `json:"current_price"`
	AllocationPercent float64   `json:"allocation_percent"`
	ExpectedReturn    string    `json:"expected_return"`
	RiskLevel         RiskLevel `json:"risk_level"`
	Reason            string    `json:"reason"`
	RecommendedAmount float64   `json:"recommended_amount"`
}

// AdvisorState is the per-session advisor form and its result.
type AdvisorState struct {
	Amount          float64          `json:"amount"`
	Duration        Duration         `json:"duration"`
	Recommendations []Recommendation `json:"recommendations"`
	Visible         bool             `json:"visible"`
}
