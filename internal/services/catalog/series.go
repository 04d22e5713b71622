package catalog

import (
	"hash/fnv"
	"math"
	"math/rand/v2"
	"time"

	"github.com/bobmcallan/investiq/internal/models"
)

// priceSeries generates a random-walk price history around the quote price.
// The walk is seeded from symbol and range, so repeated requests return the
// same values; only the labels move with now.
func priceSeries(quote models.StockQuote, r models.TimeRange, now time.Time) []models.PricePoint {
	n := r.Points()
	rng := rand.New(rand.NewPCG(seedFor(quote.Symbol, r)))

	floor := quote.Price * 0.88
	step := quote.Price * 0.03
	base := quote.Price

	points := make([]models.PricePoint, 0, n)
	for i := 0; i < n; i++ {
		base += (rng.Float64() - 0.5) * step
		price := math.Max(base, floor)
		open := math.Max(base+(rng.Float64()-0.5)*step*0.2, floor)

		// Wicks extend past the body so Low <= Open, Close <= High.
		high := math.Max(open, price) + rng.Float64()*step*0.3
		low := math.Max(math.Min(open, price)-rng.Float64()*step*0.3, floor)

		points = append(points, models.PricePoint{
			Label: seriesLabel(r, now, i, n),
			Value: round2(price),
			High:  round2(high),
			Low:   round2(low),
			Open:  round2(open),
			Close: round2(price),
		})
	}
	return points
}

func seedFor(symbol string, r models.TimeRange) (uint64, uint64) {
	h := fnv.New64a()
	h.Write([]byte(symbol))
	h.Write([]byte{0})
	h.Write([]byte(r))
	sum := h.Sum64()
	return sum, sum ^ 0x9e3779b97f4a7c15
}

// seriesLabel formats the x-axis label of point i out of n.
func seriesLabel(r models.TimeRange, now time.Time, i, n int) string {
	back := n - 1 - i
	switch r {
	case models.Range1D:
		t := time.Date(now.Year(), now.Month(), now.Day(), 9+i, 30, 0, 0, now.Location())
		return t.Format("03:04 PM")
	case models.Range5D, models.Range1M:
		return now.AddDate(0, 0, -back).Format("Jan 2")
	case models.Range6M:
		return now.AddDate(0, 0, -7*back).Format("Jan 2")
	case models.Range1Y:
		return now.AddDate(0, 0, -7*back).Format("Jan 06")
	case models.RangeMax:
		return now.AddDate(0, -back, 0).Format("Jan 06")
	}
	return now.AddDate(0, 0, -back).Format("Jan 2")
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
