// Package advisor maps an investment amount and horizon to a fixed
// allocation table and splits the amount across it.
package advisor

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/bobmcallan/investiq/internal/common"
	"github.com/bobmcallan/investiq/internal/models"
)

// ErrInvalidInput is returned when the amount is not positive or the duration is unknown.
var ErrInvalidInput = errors.New("advisor: amount must be positive and duration short or long")

var hundred = decimal.NewFromInt(100)

// Recommend builds the recommendation set for amount and duration.
// Each recommended amount is amount × allocation / 100, rounded to paise.
// Output follows the table order.
func Recommend(amount float64, duration models.Duration) ([]models.Recommendation, error) {
	if !(amount > 0) || math.IsInf(amount, 1) || !duration.Valid() {
		return nil, ErrInvalidInput
	}

	total := decimal.NewFromFloat(amount)
	table := tableFor(duration)
	out := make([]models.Recommendation, 0, len(table))
	for _, p := range table {
		share := total.Mul(decimal.NewFromInt(p.allocation)).Div(hundred).Round(2)
		out = append(out, models.Recommendation{
			Symbol:            p.symbol,
			Name:              p.name,
			Sector:            p.sector,
			CurrentPrice:      p.price,
			AllocationPercent: float64(p.allocation),
			ExpectedReturn:    p.expectedReturn,
			RiskLevel:         p.risk,
			Reason:            p.reason,
			RecommendedAmount: share.InexactFloat64(),
		})
	}
	return out, nil
}

// TotalAllocation sums the allocation percentages of a set.
func TotalAllocation(recs []models.Recommendation) float64 {
	sum := decimal.Zero
	for _, r := range recs {
		sum = sum.Add(decimal.NewFromFloat(r.AllocationPercent))
	}
	return sum.InexactFloat64()
}

// TotalAmount sums the recommended amounts of a set.
func TotalAmount(recs []models.Recommendation) float64 {
	sum := decimal.Zero
	for _, r := range recs {
		sum = sum.Add(decimal.NewFromFloat(r.RecommendedAmount))
	}
	return sum.InexactFloat64()
}

// Advisor holds one session's advisor form and its last result.
type Advisor struct {
	mu     sync.Mutex
	state  models.AdvisorState
	logger *common.Logger
}

// New creates an empty advisor.
func New(logger *common.Logger) *Advisor {
	return &Advisor{logger: logger}
}

// Recommend validates the input and stores the resulting set. Invalid input
// leaves the previous state untouched.
func (a *Advisor) Recommend(amount float64, duration string) (models.AdvisorState, error) {
	d, err := models.ParseDuration(duration)
	if err != nil {
		return a.State(), fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	recs, err := Recommend(amount, d)
	if err != nil {
		return a.State(), err
	}

	a.mu.Lock()
	a.state = models.AdvisorState{
		Amount:          amount,
		Duration:        d,
		Recommendations: recs,
		Visible:         true,
	}
	state := a.copyState()
	a.mu.Unlock()

	a.logger.Debug().
		Float64("amount", amount).
		Str("duration", string(d)).
		Int("picks", len(recs)).
		Msg("Advisor recommendations generated")
	return state, nil
}

// Reset clears amount, duration and the produced set.
func (a *Advisor) Reset() models.AdvisorState {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.state = models.AdvisorState{}
	return a.copyState()
}

// State returns a copy of the current advisor state.
func (a *Advisor) State() models.AdvisorState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.copyState()
}

func (a *Advisor) copyState() models.AdvisorState {
	s := a.state
	s.Recommendations = append([]models.Recommendation(nil), a.state.Recommendations...)
	if s.Recommendations == nil {
		s.Recommendations = []models.Recommendation{}
	}
	return s
}
