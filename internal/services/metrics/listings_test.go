package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/investiq/internal/models"
)

func TestFundSummary_ProjectsOneYearReturn(t *testing.T) {
	equity := []models.MutualFund{{Invested: 50000, Returns1Y: 20}}
	debt := []models.MutualFund{{Invested: 100000, Returns1Y: 5}}

	s := FundSummary(equity, debt)
	assert.Equal(t, 2, s.FundCount)
	assert.InDelta(t, 150000.0, s.TotalInvested, 1e-9)
	assert.InDelta(t, 60000.0+105000.0, s.CurrentValue, 1e-9)
	assert.InDelta(t, 15000.0, s.TotalGain, 1e-9)
	require.NotNil(t, s.GainPercent)
	assert.InDelta(t, 10.0, *s.GainPercent, 1e-9)

	assert.Nil(t, FundSummary().GainPercent)
}

func TestListingTotals(t *testing.T) {
	c := CryptoTotal([]models.CryptoAsset{{Holdings: 0.5, Price: 100}, {Holdings: 2, Price: 10}})
	assert.InDelta(t, 70.0, c.TotalValue, 1e-9)
	assert.Equal(t, 2, c.Count)

	u := USStockTotal([]models.USStock{{Shares: 3, Price: 7}})
	assert.InDelta(t, 21.0, u.TotalValue, 1e-9)

	e := ETFTotal([]models.ETF{{Units: 10, Price: 2.5}, {Units: 4, Price: 1}})
	assert.InDelta(t, 29.0, e.TotalValue, 1e-9)
}

func TestTopGainer(t *testing.T) {
	_, ok := TopGainer(nil)
	assert.False(t, ok)

	top, ok := TopGainer([]models.MarketIndex{
		{Symbol: "A", ChangePercent: 0.5},
		{Symbol: "B", ChangePercent: 2.0},
		{Symbol: "C", ChangePercent: 1.1},
	})
	require.True(t, ok)
	assert.Equal(t, "B", top.Symbol)
}
