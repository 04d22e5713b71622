package advisor

import "github.com/bobmcallan/investiq/internal/models"

// pick is one row of a curated allocation table.
type pick struct {
	symbol         string
	name           string
	sector         string
	price          float64
	allocation     int64
	expectedReturn string
	risk           models.RiskLevel
	reason         string
}

// shortTerm favours liquid, high-momentum names for a 3-12 month horizon.
var shortTerm = []pick{
	{"NVDA", "NVIDIA Corp.", "Technology - Semiconductors", 875.20, 25, "15-25%", models.RiskHigh,
		"Strong AI momentum with high volatility, suitable for short-term gains"},
	{"TSLA", "Tesla Inc.", "Automotive - EV", 298.45, 20, "12-20%", models.RiskHigh,
		"High beta stock with strong price momentum and news-driven volatility"},
	{"RELIANCE", "Reliance Industries", "Conglomerate", 2845.60, 20, "8-15%", models.RiskMedium,
		"Diversified business model with upcoming expansion plans"},
	{"INFY", "Infosys Ltd.", "IT Services", 1856.30, 15, "10-18%", models.RiskMedium,
		"Strong quarterly results expected, good liquidity for short-term trading"},
	{"TCS", "Tata Consultancy Services", "IT Services", 4238.75, 20, "8-12%", models.RiskLow,
		"Stable performer with consistent earnings, lower risk anchor"},
}

// longTerm favours fundamentally strong companies for a 1+ year horizon.
var longTerm = []pick{
	{"AAPL", "Apple Inc.", "Technology - Consumer Electronics", 245.80, 20, "40-60%", models.RiskMedium,
		"Strong brand ecosystem, consistent innovation, and services growth"},
	{"MSFT", "Microsoft Corp.", "Technology - Software", 485.65, 20, "45-70%", models.RiskMedium,
		"Cloud computing leader with AI integration, strong fundamentals"},
	{"GOOGL", "Alphabet Inc.", "Technology - Internet", 178.90, 15, "35-55%", models.RiskMedium,
		"Dominant search engine with growing cloud and AI capabilities"},
	{"HDFCBANK", "HDFC Bank", "Banking & Finance", 1698.40, 15, "30-50%", models.RiskLow,
		"India's leading private bank with strong asset quality and growth"},
	{"RELIANCE", "Reliance Industries", "Conglomerate", 2845.60, 15, "35-60%", models.RiskLow,
		"Diversified conglomerate with energy, retail, and telecom verticals"},
	{"BHARTIARTL", "Bharti Airtel", "Telecom", 1645.25, 15, "40-65%", models.RiskMedium,
		"Market leader in telecom with 5G expansion and digital services"},
}

func tableFor(d models.Duration) []pick {
	if d == models.DurationShort {
		return shortTerm
	}
	return longTerm
}
