package models

import (
	"fmt"
	"strings"
)

// CryptoAsset is a row of the crypto listing. Holdings is in coin units.
type CryptoAsset struct {
	Symbol    string  `json:"symbol"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Change    float64 `json:"change"`
	MarketCap float64 `json:"market_cap"`
	Volume    float64 `json:"volume"`
	Holdings  float64 `json:"holdings"`
}

// USStock is a row of the US stocks listing, priced in INR.
type USStock struct {
	Symbol    string  `json:"symbol"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Change    float64 `json:"change"`
	MarketCap float64 `json:"market_cap"`
	Volume    float64 `json:"volume"`
	Shares    float64 `json:"shares"`
	Sector    string  `json:"sector"`
}

// ETF is a row of the ETF listing.
type ETF struct {
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Change       float64 `json:"change"`
	AUM          float64 `json:"aum"`
	Volume       float64 `json:"volume"`
	Units        float64 `json:"units"`
	Category     string  `json:"category"`
	ExpenseRatio float64 `json:"expense_ratio"`
}

// MarketIndex is a broad, sectoral or thematic index quote.
type MarketIndex struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Value         float64 `json:"value"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
	High          float64 `json:"high"`
	Low           float64 `json:"low"`
	Open          float64 `json:"open"`
	Sector        string  `json:"sector,omitempty"`
}

// MutualFund is a fund row; AUM is in crore.
type MutualFund struct {
	Symbol    string  `json:"symbol"`
	Name      string  `json:"name"`
	NAV       float64 `json:"nav"`
	Change    float64 `json:"change"`
	Returns1Y float64 `json:"returns_1y"`
	Returns3Y float64 `json:"returns_3y"`
	Returns5Y float64 `json:"returns_5y"`
	AUM       float64 `json:"aum"`
	Category  string  `json:"category"`
	Rating    int     `json:"rating"`
	Invested  float64 `json:"invested"`
}

// FundSummary aggregates mutual fund holdings using trailing 1Y returns.
type FundSummary struct {
	TotalInvested float64  `json:"total_invested"`
	CurrentValue  float64  `json:"current_value"`
	TotalGain     float64  `json:"total_gain"`
	GainPercent   *float64 `json:"gain_percent"`
	FundCount     int      `json:"fund_count"`
}

// ListingTotal is the position value of a listing page.
type ListingTotal struct {
	TotalValue float64 `json:"total_value"`
	Count      int     `json:"count"`
}

// PriceAlert fires when a symbol crosses a target price.
type PriceAlert struct {
	ID           int     `json:"id"`
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name"`
	Type         string  `json:"type"` // "above" or "below"
	TargetPrice  float64 `json:"target_price"`
	CurrentPrice float64 `json:"current_price"`
	Status       string  `json:"status"` // "active" or "triggered"
	CreatedAt    string  `json:"created_at"`
	TriggeredAt  string  `json:"triggered_at,omitempty"`
}

// NewsAlert is a market news notification.
type NewsAlert struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Timestamp   string `json:"timestamp"`
	Read        bool   `json:"read"`
}

// PerformanceAlert is a portfolio performance notification.
type PerformanceAlert struct {
	ID        int    `json:"id"`
	Type      string `json:"type"` // "gain", "warning" or "milestone"
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// NewsStory is a headline story on the news page.
type NewsStory struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	Source    string `json:"source"`
	Category  string `json:"category"`
	Timestamp string `json:"timestamp"`
	Image     string `json:"image,omitempty"`
}

// Headline is a short news item.
type Headline struct {
	Title     string `json:"title"`
	Source    string `json:"source,omitempty"`
	Region    string `json:"region,omitempty"`
	Impact    string `json:"impact,omitempty"`
	Timestamp string `json:"timestamp"`
}

// SectorNews groups headlines by sector.
type SectorNews struct {
	Sector string     `json:"sector"`
	News   []Headline `json:"news"`
}

// IPO is an upcoming, open or listed offering.
type IPO struct {
	Company     string `json:"company"`
	Size        string `json:"size"`
	Dates       string `json:"dates"`
	PriceRange  string `json:"price_range"`
	Status      string `json:"status"`
	ListingGain string `json:"listing_gain,omitempty"`
}

// WatchlistEntry is a row of the dashboard watchlist card.
type WatchlistEntry struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
}

// NewsItem is a row of the dashboard news feed card.
type NewsItem struct {
	Title  string `json:"title"`
	Source string `json:"source"`
	Time   string `json:"time"`
	URL    string `json:"url"`
}

// StockQuote is the fundamentals block of the stock details page.
type StockQuote struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
	MarketCap     string  `json:"market_cap"`
	PERatio       string  `json:"pe_ratio"`
	Dividend      string  `json:"dividend"`
	High52        string  `json:"high_52"`
	Low52         string  `json:"low_52"`
	Volume        string  `json:"volume"`
}

// PricePoint is one bar of a price series.
type PricePoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	High  float64 `json:"high"`
	Low   float64 `json:"low"`
	Open  float64 `json:"open"`
	Close float64 `json:"close"`
}

// TimeRange selects the span and resolution of a price series.
type TimeRange string

// Time ranges.
const (
	Range1D  TimeRange = "1D"
	Range5D  TimeRange = "5D"
	Range1M  TimeRange = "1M"
	Range6M  TimeRange = "6M"
	Range1Y  TimeRange = "1Y"
	RangeMax TimeRange = "Max"
)

var rangePoints = map[TimeRange]int{
	Range1D:  13,
	Range5D:  5,
	Range1M:  20,
	Range6M:  26,
	Range1Y:  52,
	RangeMax: 100,
}

// ParseTimeRange validates a range. An empty string selects 1M.
func ParseTimeRange(s string) (TimeRange, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Range1M, nil
	}
	for r := range rangePoints {
		if strings.EqualFold(string(r), s) {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown time range %q", s)
}

// Points returns the number of bars in a series for this range.
func (r TimeRange) Points() int {
	if n, ok := rangePoints[r]; ok {
		return n
	}
	return 20
}

// Trend classifies the direction of a price series.
type Trend string

// Trend values.
const (
	TrendBullish Trend = "bullish"
	TrendBearish Trend = "bearish"
	TrendNeutral Trend = "neutral"
)

// Technicals summarises indicators computed over a price series.
// Indicators that need more points than the series has are nil.
type Technicals struct {
	SMAShort    *float64 `json:"sma_short"`
	SMALong     *float64 `json:"sma_long"`
	ShortPeriod int      `json:"short_period"`
	LongPeriod  int      `json:"long_period"`
	EMA         *float64 `json:"ema"`
	RSI         *float64 `json:"rsi"`
	RSISignal   string   `json:"rsi_signal"` // overbought, oversold or neutral
	ATR         *float64 `json:"atr"`
	Support     float64  `json:"support"`
	Resistance  float64  `json:"resistance"`
	Crossover   string   `json:"crossover"` // golden_cross, death_cross or none
	Trend       Trend    `json:"trend"`
	PeriodHigh  float64  `json:"period_high"`
	PeriodLow   float64  `json:"period_low"`
}

// StockDetails is the payload of the stock details page.
type StockDetails struct {
	Quote      StockQuote   `json:"quote"`
	Range      TimeRange    `json:"range"`
	Series     []PricePoint `json:"series"`
	Average    *float64     `json:"average"`
	Technicals Technicals   `json:"technicals"`
}
