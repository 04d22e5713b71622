// Package catalog serves the page payloads: immutable mock datasets paired
// with the derived metrics each page displays.
package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bobmcallan/investiq/internal/common"
	"github.com/bobmcallan/investiq/internal/interfaces"
	"github.com/bobmcallan/investiq/internal/models"
	"github.com/bobmcallan/investiq/internal/services/metrics"
	"github.com/bobmcallan/investiq/internal/signals"
)

// Compile-time interface check
var _ interfaces.CatalogService = (*Service)(nil)

// Service implements CatalogService
type Service struct {
	logger   *common.Logger
	currency string
	now      func() time.Time
}

// NewService creates a new catalog service. Monetary displays are rendered
// in currency, INR when empty.
func NewService(logger *common.Logger, currency string) *Service {
	if currency == "" {
		currency = "INR"
	}
	return &Service{
		logger:   logger,
		currency: currency,
		now:      time.Now,
	}
}

// PagePayload returns the data for the page in snap.
func (s *Service) PagePayload(ctx context.Context, snap models.Snapshot) (any, error) {
	switch snap.Page {
	case models.PageLanding:
		return landingPage, nil
	case models.PageBeginnerGuide:
		return beginnerGuide, nil
	case models.PageLogin:
		return loginPage, nil
	case models.PageDashboard:
		return s.dashboard(snap.User), nil
	case models.PagePortfolio:
		return s.portfolio(snap.User), nil
	case models.PageStockDetails:
		return s.StockDetails(ctx, snap.SelectedSymbol, models.Range1M)
	case models.PageProfile:
		return s.profile(snap), nil
	case models.PageCrypto:
		return s.crypto(), nil
	case models.PageUSStocks:
		return s.usStocks(), nil
	case models.PageETFs:
		return s.etfs(), nil
	case models.PageSectoralIndices:
		return s.indices(), nil
	case models.PageMutualFunds:
		return s.funds(), nil
	case models.PageAlerts:
		return s.alerts(), nil
	case models.PageNews:
		return NewsPage{TopStories: topStories, SectorNews: sectorNews, Global: globalNews, IPOs: ipos}, nil
	case models.PageGoals:
		return s.goals(), nil
	}
	return nil, fmt.Errorf("no payload for page %q", snap.Page)
}

// StockDetails returns the quote and price series for symbol. Symbols
// without a quote show the AAPL quote under the requested symbol.
func (s *Service) StockDetails(ctx context.Context, symbol string, r models.TimeRange) (*models.StockDetails, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, fmt.Errorf("symbol is required")
	}
	if r == "" {
		r = models.Range1M
	}

	quote, ok := stockQuotes[symbol]
	if !ok {
		quote = stockQuotes[fallbackQuote]
		quote.Symbol = symbol
		s.logger.Debug().Str("symbol", symbol).Msg("No quote for symbol, using fallback")
	}

	series := priceSeries(quote, r, s.now())
	avg, ok := metrics.SeriesAverage(series)
	d := &models.StockDetails{
		Quote:      quote,
		Range:      r,
		Series:     series,
		Technicals: signals.Compute(series),
	}
	if ok {
		d.Average = &avg
	}
	return d, nil
}

// RenderPriceChart renders the price series for symbol as PNG.
func (s *Service) RenderPriceChart(ctx context.Context, symbol string, r models.TimeRange) ([]byte, error) {
	d, err := s.StockDetails(ctx, symbol, r)
	if err != nil {
		return nil, err
	}
	png, err := renderPriceChart(d, s.currency)
	if err != nil {
		return nil, fmt.Errorf("failed to render chart for %s: %w", symbol, err)
	}
	return png, nil
}

func (s *Service) dashboard(user models.User) DashboardPage {
	name := user.Name
	if name == "" {
		name = "Guest"
	}

	last := portfolioTrend[len(portfolioTrend)-1]
	prev := portfolioTrend[len(portfolioTrend)-2]
	card := SummaryCard{
		Value:         last,
		Change:        last - prev,
		Trend:         append([]float64(nil), portfolioTrend...),
		ValueDisplay:  common.FormatAmount(last, s.currency, 0),
		ChangeDisplay: common.FormatSignedAmount(last-prev, s.currency, 2),
	}
	if prev != 0 {
		pct := (last - prev) / prev * 100
		card.ChangePercent = &pct
	}

	return DashboardPage{
		Greeting:  name,
		Summary:   card,
		Watchlist: watchlist,
		News:      newsFeed,
	}
}

func (s *Service) portfolio(user models.User) PortfolioPage {
	name := user.Name
	if name == "" {
		name = "Investor"
	}
	summary := metrics.PortfolioSummary(portfolioHoldings)
	return PortfolioPage{
		InvestorName: name,
		Holdings:     metrics.HoldingViews(portfolioHoldings),
		Summary:      summary,
		Display: map[string]string{
			"total_value":  common.FormatAmount(summary.TotalValue, s.currency, 2),
			"total_gain":   common.FormatSignedAmount(summary.TotalGain, s.currency, 2),
			"total_return": signedPercent(summary.GainPercent),
		},
	}
}

func (s *Service) profile(snap models.Snapshot) ProfilePage {
	name := snap.User.Name
	if name == "" {
		name = "Guest User"
	}
	email := snap.User.Email
	if email == "" {
		email = "guest@example.com"
	}
	return ProfilePage{
		Name:     name,
		Email:    email,
		Initials: Initials(name),
		JoinDate: "January 2024",
		Theme:    snap.Theme,
		Stats:    profileStats,
	}
}

func (s *Service) crypto() ListingPage[models.CryptoAsset] {
	total := metrics.CryptoTotal(cryptoAssets)
	page := ListingPage[models.CryptoAsset]{
		Rows:         cryptoAssets,
		Total:        total,
		TotalDisplay: common.FormatAmount(total.TotalValue, s.currency, 2),
	}
	var best float64
	for i, a := range cryptoAssets {
		if i == 0 || a.Change > best {
			best = a.Change
			page.TopGainer = a.Symbol
		}
	}
	return page
}

func (s *Service) usStocks() ListingPage[models.USStock] {
	total := metrics.USStockTotal(usStocks)
	return ListingPage[models.USStock]{
		Rows:         usStocks,
		Total:        total,
		TotalDisplay: common.FormatAmount(total.TotalValue, s.currency, 2),
	}
}

func (s *Service) etfs() ListingPage[models.ETF] {
	total := metrics.ETFTotal(etfs)
	return ListingPage[models.ETF]{
		Rows:         etfs,
		Total:        total,
		TotalDisplay: common.FormatAmount(total.TotalValue, s.currency, 2),
	}
}

func (s *Service) indices() IndicesPage {
	page := IndicesPage{
		Broad:    broadIndices,
		Sectoral: sectoralIndices,
		Thematic: thematicIndices,
	}
	if top, ok := metrics.TopGainer(sectoralIndices); ok {
		page.TopSector = &top
	}
	for _, group := range [][]models.MarketIndex{broadIndices, sectoralIndices, thematicIndices} {
		for _, idx := range group {
			if idx.Change > 0 {
				page.AdvancingCount++
			}
		}
	}
	return page
}

func (s *Service) funds() FundsPage {
	summary := metrics.FundSummary(equityFunds, debtFunds, hybridFunds)
	return FundsPage{
		Equity:  equityFunds,
		Debt:    debtFunds,
		Hybrid:  hybridFunds,
		Summary: summary,
		Display: map[string]string{
			"total_invested": common.FormatAmount(summary.TotalInvested, s.currency, 2),
			"current_value":  common.FormatAmount(summary.CurrentValue, s.currency, 2),
			"total_gain":     common.FormatAmount(summary.TotalGain, s.currency, 2),
			"gain_percent":   signedPercent(summary.GainPercent),
		},
	}
}

func (s *Service) alerts() AlertsPage {
	page := AlertsPage{Price: priceAlerts, News: newsAlerts, Performance: performanceAlerts}
	for _, a := range priceAlerts {
		switch a.Status {
		case "active":
			page.ActiveCount++
		case "triggered":
			page.TriggeredCount++
		}
	}
	for _, n := range newsAlerts {
		if !n.Read {
			page.UnreadCount++
		}
	}
	return page
}

func (s *Service) goals() GoalsPage {
	return GoalsPage{
		Goals:   metrics.GoalViews(goals, s.now()),
		Summary: metrics.GoalsSummary(goals),
	}
}

// Initials returns the upper-cased first letter of each word in name.
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			b.WriteRune(r)
			break
		}
	}
	return strings.ToUpper(b.String())
}

func signedPercent(p *float64) string {
	if p == nil {
		return common.FormatOptionalPercent(nil, 2)
	}
	return common.FormatSignedPercent(*p)
}
