package metrics

import "github.com/bobmcallan/investiq/internal/models"

// FundSummary totals mutual funds, projecting current value from the
// trailing 1Y return: invested × (1 + returns1Y/100).
func FundSummary(funds ...[]models.MutualFund) models.FundSummary {
	var s models.FundSummary
	for _, group := range funds {
		for _, f := range group {
			s.TotalInvested += f.Invested
			s.CurrentValue += f.Invested * (1 + f.Returns1Y/100)
			s.FundCount++
		}
	}
	s.TotalGain = s.CurrentValue - s.TotalInvested
	s.GainPercent = optional(ratio(s.TotalGain, s.TotalInvested))
	return s
}

// CryptoTotal values crypto holdings at current prices.
func CryptoTotal(assets []models.CryptoAsset) models.ListingTotal {
	var t models.ListingTotal
	for _, a := range assets {
		t.TotalValue += a.Holdings * a.Price
	}
	t.Count = len(assets)
	return t
}

// USStockTotal values US stock positions at current prices.
func USStockTotal(stocks []models.USStock) models.ListingTotal {
	var t models.ListingTotal
	for _, s := range stocks {
		t.TotalValue += s.Shares * s.Price
	}
	t.Count = len(stocks)
	return t
}

// ETFTotal values ETF positions at current prices.
func ETFTotal(etfs []models.ETF) models.ListingTotal {
	var t models.ListingTotal
	for _, e := range etfs {
		t.TotalValue += e.Units * e.Price
	}
	t.Count = len(etfs)
	return t
}

// TopGainer returns the index with the largest percentage change; ok is false
// for an empty list.
func TopGainer(indices []models.MarketIndex) (models.MarketIndex, bool) {
	if len(indices) == 0 {
		return models.MarketIndex{}, false
	}
	best := indices[0]
	for _, idx := range indices[1:] {
		if idx.ChangePercent > best.ChangePercent {
			best = idx
		}
	}
	return best, true
}
