package catalog

import "github.com/bobmcallan/investiq/internal/models"

// SummaryCard is the dashboard portfolio card: latest value and its change
// against the previous point of the trend.
type SummaryCard struct {
	Value         float64   `json:"value"`
	Change        float64   `json:"change"`
	ChangePercent *float64  `json:"change_percent"`
	Trend         []float64 `json:"trend"`
	ValueDisplay  string    `json:"value_display"`
	ChangeDisplay string    `json:"change_display"`
}

// DashboardPage is the payload of the dashboard.
type DashboardPage struct {
	Greeting  string                  `json:"greeting"`
	Summary   SummaryCard             `json:"summary"`
	Watchlist []models.WatchlistEntry `json:"watchlist"`
	News      []models.NewsItem       `json:"news"`
}

// PortfolioPage is the payload of the portfolio page.
type PortfolioPage struct {
	InvestorName string                  `json:"investor_name"`
	Holdings     []models.HoldingView    `json:"holdings"`
	Summary      models.PortfolioSummary `json:"summary"`
	Display      map[string]string       `json:"display"`
}

// ListingPage is the payload of the crypto, US stock and ETF pages.
type ListingPage[T any] struct {
	Rows         []T                 `json:"rows"`
	Total        models.ListingTotal `json:"total"`
	TotalDisplay string              `json:"total_display"`
	TopGainer    string              `json:"top_gainer,omitempty"`
}

// IndicesPage is the payload of the sectoral indices page.
type IndicesPage struct {
	Broad          []models.MarketIndex `json:"broad"`
	Sectoral       []models.MarketIndex `json:"sectoral"`
	Thematic       []models.MarketIndex `json:"thematic"`
	TopSector      *models.MarketIndex  `json:"top_sector"`
	AdvancingCount int                  `json:"advancing_count"`
}

// FundsPage is the payload of the mutual funds page.
type FundsPage struct {
	Equity  []models.MutualFund `json:"equity"`
	Debt    []models.MutualFund `json:"debt"`
	Hybrid  []models.MutualFund `json:"hybrid"`
	Summary models.FundSummary  `json:"summary"`
	Display map[string]string   `json:"display"`
}

// AlertsPage is the payload of the alerts page.
type AlertsPage struct {
	Price          []models.PriceAlert       `json:"price"`
	News           []models.NewsAlert        `json:"news"`
	Performance    []models.PerformanceAlert `json:"performance"`
	ActiveCount    int                       `json:"active_count"`
	TriggeredCount int                       `json:"triggered_count"`
	UnreadCount    int                       `json:"unread_count"`
}

// NewsPage is the payload of the market news page.
type NewsPage struct {
	TopStories []models.NewsStory  `json:"top_stories"`
	SectorNews []models.SectorNews `json:"sector_news"`
	Global     []models.Headline   `json:"global"`
	IPOs       []models.IPO        `json:"ipos"`
}

// GoalsPage is the payload of the goals page.
type GoalsPage struct {
	Goals   []models.GoalView   `json:"goals"`
	Summary models.GoalsSummary `json:"summary"`
}

// ProfileStats is the mock account overview shown on the profile page.
type ProfileStats struct {
	TotalValue          float64 `json:"total_value"`
	TotalInvested       float64 `json:"total_invested"`
	TotalGain           float64 `json:"total_gain"`
	GainPercent         float64 `json:"gain_percent"`
	NumberOfHoldings    int     `json:"number_of_holdings"`
	TodaysChange        float64 `json:"todays_change"`
	TodaysChangePercent float64 `json:"todays_change_percent"`
}

// ProfilePage is the payload of the profile page.
type ProfilePage struct {
	Name     string       `json:"name"`
	Email    string       `json:"email"`
	Initials string       `json:"initials"`
	JoinDate string       `json:"join_date"`
	Theme    models.Theme `json:"theme"`
	Stats    ProfileStats `json:"stats"`
}

var profileStats = ProfileStats{
	TotalValue:          1245680.50,
	TotalInvested:       1050000.00,
	TotalGain:           195680.50,
	GainPercent:         18.64,
	NumberOfHoldings:    8,
	TodaysChange:        12450.30,
	TodaysChangePercent: 1.01,
}
