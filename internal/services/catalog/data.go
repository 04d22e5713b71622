package catalog

import (
	"fmt"

	"github.com/bobmcallan/investiq/internal/models"
)

// Mock datasets. Prices are in INR unless noted.

var portfolioHoldings = []models.Holding{
	{Symbol: "AAPL", Name: "Apple Inc.", Quantity: 150, UnitCost: 165.50, CurrentPrice: 245.80, DayChange: 3.45, DayChangePercent: 1.42},
	{Symbol: "MSFT", Name: "Microsoft Corp.", Quantity: 75, UnitCost: 340.20, CurrentPrice: 485.65, DayChange: 5.80, DayChangePercent: 1.21},
	{Symbol: "GOOGL", Name: "Alphabet Inc.", Quantity: 100, UnitCost: 138.75, CurrentPrice: 178.90, DayChange: 2.15, DayChangePercent: 1.22},
	{Symbol: "AMZN", Name: "Amazon.com Inc.", Quantity: 80, UnitCost: 142.60, CurrentPrice: 198.45, DayChange: 2.90, DayChangePercent: 1.48},
	{Symbol: "NVDA", Name: "NVIDIA Corp.", Quantity: 50, UnitCost: 485.30, CurrentPrice: 875.20, DayChange: 12.50, DayChangePercent: 1.45},
	{Symbol: "META", Name: "Meta Platforms Inc.", Quantity: 60, UnitCost: 325.80, CurrentPrice: 512.35, DayChange: 6.75, DayChangePercent: 1.33},
}

// portfolioTrend is the seven-day value history of the dashboard summary card.
var portfolioTrend = []float64{325000, 328500, 326800, 332400, 330200, 335600, 340890}

var watchlist = []models.WatchlistEntry{
	{Symbol: "AAPL", Name: "Apple Inc.", Price: 245.80, Change: 3.45, ChangePercent: 1.42},
	{Symbol: "GOOGL", Name: "Alphabet Inc.", Price: 178.90, Change: 2.15, ChangePercent: 1.22},
	{Symbol: "MSFT", Name: "Microsoft Corp.", Price: 485.65, Change: 5.80, ChangePercent: 1.21},
	{Symbol: "TSLA", Name: "Tesla Inc.", Price: 385.60, Change: 4.90, ChangePercent: 1.29},
	{Symbol: "AMZN", Name: "Amazon.com Inc.", Price: 198.45, Change: 2.90, ChangePercent: 1.48},
}

var newsFeed = []models.NewsItem{
	{Title: "Fed Signals Potential Rate Cuts in Q4 2025", Source: "Financial Times", Time: "2 hours ago", URL: "#"},
	{Title: "Tech Stocks Rally on Strong Earnings Reports", Source: "Bloomberg", Time: "4 hours ago", URL: "#"},
	{Title: "Oil Prices Surge Amid Supply Concerns", Source: "Reuters", Time: "5 hours ago", URL: "#"},
	{Title: "Tesla Announces New Manufacturing Facility", Source: "CNBC", Time: "6 hours ago", URL: "#"},
	{Title: "Global Markets React to Economic Data", Source: "Wall Street Journal", Time: "8 hours ago", URL: "#"},
}

// stockQuotes holds the detail page fundamentals; unknown symbols fall back to AAPL.
var stockQuotes = map[string]models.StockQuote{
	"AAPL": {Symbol: "AAPL", Name: "Apple Inc.", Price: 245.80, Change: 3.45, ChangePercent: 1.42,
		MarketCap: "3.85T", PERatio: "32.15", Dividend: "0.48%", High52: "258.90", Low52: "182.40", Volume: "58.7M"},
	"MSFT": {Symbol: "MSFT", Name: "Microsoft Corp.", Price: 485.65, Change: 5.80, ChangePercent: 1.21,
		MarketCap: "3.61T", PERatio: "37.85", Dividend: "0.75%", High52: "498.75", Low52: "365.20", Volume: "26.4M"},
	"GOOGL": {Symbol: "GOOGL", Name: "Alphabet Inc.", Price: 178.90, Change: 2.15, ChangePercent: 1.22,
		MarketCap: "2.23T", PERatio: "26.80", Dividend: "0.00%", High52: "189.45", Low52: "138.60", Volume: "31.2M"},
}

const fallbackQuote = "AAPL"

var cryptoAssets = []models.CryptoAsset{
	{Symbol: "BTC", Name: "Bitcoin", Price: 5845720.00, Change: 3.25, MarketCap: 11467300000000, Volume: 4856200000000, Holdings: 0.5},
	{Symbol: "ETH", Name: "Ethereum", Price: 278940.50, Change: 2.85, MarketCap: 3352800000000, Volume: 2345600000000, Holdings: 2.3},
	{Symbol: "BNB", Name: "Binance Coin", Price: 38950.75, Change: 1.95, MarketCap: 567840000000, Volume: 124560000000, Holdings: 5.0},
	{Symbol: "SOL", Name: "Solana", Price: 16785.30, Change: 4.67, MarketCap: 684520000000, Volume: 198450000000, Holdings: 10.5},
	{Symbol: "XRP", Name: "Ripple", Price: 63.85, Change: 2.48, MarketCap: 356790000000, Volume: 145670000000, Holdings: 1000},
	{Symbol: "ADA", Name: "Cardano", Price: 48.70, Change: 1.92, MarketCap: 167890000000, Volume: 68450000000, Holdings: 500},
}

var usStocks = []models.USStock{
	{Symbol: "AAPL", Name: "Apple Inc.", Price: 20893.00, Change: 1.42, MarketCap: 327225000000000, Volume: 4989950000000, Shares: 50, Sector: "Technology"},
	{Symbol: "MSFT", Name: "Microsoft Corp.", Price: 41280.25, Change: 1.21, MarketCap: 306885000000000, Volume: 2244000000000, Shares: 30, Sector: "Technology"},
	{Symbol: "GOOGL", Name: "Alphabet Inc.", Price: 15206.50, Change: 1.22, MarketCap: 189550000000000, Volume: 2652000000000, Shares: 40, Sector: "Technology"},
	{Symbol: "AMZN", Name: "Amazon.com Inc.", Price: 16868.25, Change: 1.48, MarketCap: 206890000000000, Volume: 4267250000000, Shares: 25, Sector: "Consumer"},
	{Symbol: "TSLA", Name: "Tesla Inc.", Price: 32776.00, Change: 1.29, MarketCap: 122570000000000, Volume: 5984000000000, Shares: 20, Sector: "Automotive"},
	{Symbol: "NVDA", Name: "NVIDIA Corp.", Price: 74392.00, Change: 1.45, MarketCap: 183010000000000, Volume: 5893250000000, Shares: 15, Sector: "Technology"},
}

var etfs = []models.ETF{
	{Symbol: "SPY", Name: "SPDR S&P 500 ETF", Price: 46895.50, Change: 1.15, AUM: 52467800000000, Volume: 10678450000000, Units: 100, Category: "Large Cap", ExpenseRatio: 0.09},
	{Symbol: "QQQ", Name: "Invesco QQQ Trust", Price: 44562.80, Change: 1.85, AUM: 26789300000000, Volume: 7234560000000, Units: 80, Category: "Technology", ExpenseRatio: 0.20},
	{Symbol: "VTI", Name: "Vanguard Total Stock Market", Price: 24678.90, Change: 0.92, AUM: 41567200000000, Volume: 5789120000000, Units: 150, Category: "Total Market", ExpenseRatio: 0.03},
	{Symbol: "IWM", Name: "iShares Russell 2000", Price: 21456.75, Change: 0.67, AUM: 8934500000000, Volume: 4234560000000, Units: 120, Category: "Small Cap", ExpenseRatio: 0.19},
	{Symbol: "EEM", Name: "iShares MSCI Emerging Markets", Price: 4234.90, Change: 1.78, AUM: 3123450000000, Volume: 2987340000000, Units: 200, Category: "Emerging Markets", ExpenseRatio: 0.68},
	{Symbol: "GLD", Name: "SPDR Gold Shares", Price: 19876.50, Change: 0.85, AUM: 6789450000000, Volume: 1567890000000, Units: 50, Category: "Commodities", ExpenseRatio: 0.40},
}

var broadIndices = []models.MarketIndex{
	{Symbol: "NIFTY50", Name: "Nifty 50", Value: 25678.90, Change: 187.45, ChangePercent: 0.73, High: 25789.60, Low: 25456.30, Open: 25567.80},
	{Symbol: "SENSEX", Name: "BSE Sensex", Value: 84567.35, Change: 356.80, ChangePercent: 0.42, High: 84789.50, Low: 84234.60, Open: 84456.70},
	{Symbol: "NIFTYNEXT50", Name: "Nifty Next 50", Value: 56789.45, Change: 298.75, ChangePercent: 0.53, High: 56923.80, Low: 56456.30, Open: 56678.90},
	{Symbol: "NIFTY100", Name: "Nifty 100", Value: 23456.80, Change: 134.90, ChangePercent: 0.58, High: 23567.40, Low: 23234.50, Open: 23389.60},
	{Symbol: "NIFTY500", Name: "Nifty 500", Value: 20789.60, Change: 98.70, ChangePercent: 0.48, High: 20856.30, Low: 20678.90, Open: 20734.50},
	{Symbol: "NIFTYMIDCAP", Name: "Nifty Midcap 100", Value: 50234.85, Change: 289.60, ChangePercent: 0.58, High: 50367.90, Low: 49934.50, Open: 50123.40},
}

var sectoralIndices = []models.MarketIndex{
	{Symbol: "BANKNIFTY", Name: "Bank Nifty", Value: 52890.75, Change: 412.35, ChangePercent: 0.79, High: 53123.60, Low: 52456.80, Open: 52678.90, Sector: "Banking"},
	{Symbol: "NIFTYIT", Name: "Nifty IT", Value: 38756.90, Change: 345.80, ChangePercent: 0.90, High: 38923.50, Low: 38456.70, Open: 38612.40, Sector: "Information Technology"},
	{Symbol: "NIFTYPHARMA", Name: "Nifty Pharma", Value: 20678.45, Change: 134.90, ChangePercent: 0.66, High: 20789.60, Low: 20456.30, Open: 20589.70, Sector: "Pharmaceuticals"},
	{Symbol: "NIFTYAUTO", Name: "Nifty Auto", Value: 19567.80, Change: 223.45, ChangePercent: 1.15, High: 19678.90, Low: 19345.60, Open: 19456.70, Sector: "Automobile"},
	{Symbol: "NIFTYFMCG", Name: "Nifty FMCG", Value: 58234.90, Change: 112.60, ChangePercent: 0.19, High: 58367.40, Low: 58034.50, Open: 58156.80, Sector: "FMCG"},
	{Symbol: "NIFTYMETAL", Name: "Nifty Metal", Value: 8456.75, Change: 67.90, ChangePercent: 0.81, High: 8534.60, Low: 8367.80, Open: 8423.50, Sector: "Metals"},
	{Symbol: "NIFTYREALTY", Name: "Nifty Realty", Value: 756.90, Change: 14.85, ChangePercent: 2.00, High: 763.40, Low: 745.60, Open: 748.90, Sector: "Real Estate"},
	{Symbol: "NIFTYENERGY", Name: "Nifty Energy", Value: 34567.80, Change: 198.45, ChangePercent: 0.58, High: 34689.50, Low: 34345.60, Open: 34456.70, Sector: "Energy"},
	{Symbol: "NIFTYPSU", Name: "Nifty PSU Bank", Value: 6567.85, Change: 104.90, ChangePercent: 1.62, High: 6623.40, Low: 6456.70, Open: 6512.80, Sector: "PSU Banking"},
	{Symbol: "NIFTYPVTBANK", Name: "Nifty Private Bank", Value: 27234.90, Change: 278.60, ChangePercent: 1.03, High: 27367.80, Low: 26923.40, Open: 27089.50, Sector: "Private Banking"},
	{Symbol: "NIFTYMEDIA", Name: "Nifty Media", Value: 1978.60, Change: 15.45, ChangePercent: 0.79, High: 1998.70, Low: 1956.80, Open: 1967.40, Sector: "Media & Entertainment"},
	{Symbol: "NIFTYHEALTHCARE", Name: "Nifty Healthcare", Value: 12789.45, Change: 89.70, ChangePercent: 0.71, High: 12867.80, Low: 12678.90, Open: 12734.50, Sector: "Healthcare"},
}

var thematicIndices = []models.MarketIndex{
	{Symbol: "NIFTYDIVIDEND", Name: "Nifty Dividend Opportunities 50", Value: 5345.90, Change: 40.75, ChangePercent: 0.77, High: 5378.60, Low: 5289.40, Open: 5312.80},
	{Symbol: "NIFTYINDIA", Name: "Nifty India Consumption", Value: 9234.80, Change: 67.50, ChangePercent: 0.74, High: 9289.40, Low: 9156.30, Open: 9189.70},
	{Symbol: "NIFTYINFRA", Name: "Nifty Infrastructure", Value: 7456.90, Change: 105.80, ChangePercent: 1.44, High: 7512.60, Low: 7367.80, Open: 7389.50},
	{Symbol: "NIFTYCOMMODITIES", Name: "Nifty Commodities", Value: 6567.80, Change: 52.90, ChangePercent: 0.81, High: 6623.40, Low: 6489.50, Open: 6534.70},
}

var equityFunds = []models.MutualFund{
	{Symbol: "AXIS-BLUECHIP", Name: "Axis Bluechip Fund", NAV: 58.90, Change: 0.95, Returns1Y: 21.34, Returns3Y: 18.90, Returns5Y: 16.85, AUM: 52340, Category: "Large Cap", Rating: 5, Invested: 50000},
	{Symbol: "ICICI-TECH", Name: "ICICI Prudential Technology Fund", NAV: 156.75, Change: 1.85, Returns1Y: 28.45, Returns3Y: 25.60, Returns5Y: 22.90, AUM: 14567, Category: "Sectoral", Rating: 4, Invested: 30000},
	{Symbol: "MIRAE-EMERGING", Name: "Mirae Asset Emerging Bluechip Fund", NAV: 98.45, Change: 1.12, Returns1Y: 19.85, Returns3Y: 21.45, Returns5Y: 19.80, AUM: 39870, Category: "Large & Mid Cap", Rating: 5, Invested: 40000},
	{Symbol: "PARAG-FLEXI", Name: "Parag Parikh Flexi Cap Fund", NAV: 72.60, Change: 1.38, Returns1Y: 23.70, Returns3Y: 22.45, Returns5Y: 20.90, AUM: 64230, Category: "Flexi Cap", Rating: 5, Invested: 60000},
}

var debtFunds = []models.MutualFund{
	{Symbol: "HDFC-LIQUID", Name: "HDFC Liquid Fund", NAV: 5123.45, Change: 0.03, Returns1Y: 6.85, Returns3Y: 6.50, Returns5Y: 6.20, AUM: 89450, Category: "Liquid", Rating: 4, Invested: 100000},
	{Symbol: "ICICI-GILTSEC", Name: "ICICI Prudential Gilt Fund", NAV: 75.90, Change: 0.08, Returns1Y: 7.95, Returns3Y: 7.20, Returns5Y: 6.90, AUM: 26780, Category: "Gilt", Rating: 4, Invested: 50000},
}

var hybridFunds = []models.MutualFund{
	{Symbol: "HDFC-BALANCED", Name: "HDFC Balanced Advantage Fund", NAV: 289.70, Change: 0.92, Returns1Y: 14.90, Returns3Y: 13.85, Returns5Y: 12.60, AUM: 76340, Category: "Balanced", Rating: 5, Invested: 70000},
	{Symbol: "ICICI-AGGRESSIVE", Name: "ICICI Prudential Equity & Debt Fund", NAV: 218.45, Change: 1.05, Returns1Y: 17.25, Returns3Y: 15.90, Returns5Y: 14.80, AUM: 52890, Category: "Aggressive Hybrid", Rating: 4, Invested: 50000},
}

var priceAlerts = []models.PriceAlert{
	{ID: 1, Symbol: "RELIANCE", Name: "Reliance Industries", Type: "above", TargetPrice: 2500, CurrentPrice: 2456.75, Status: "active", CreatedAt: "2025-01-10"},
	{ID: 2, Symbol: "TCS", Name: "Tata Consultancy Services", Type: "below", TargetPrice: 3500, CurrentPrice: 3678.90, Status: "active", CreatedAt: "2025-01-08"},
	{ID: 3, Symbol: "INFY", Name: "Infosys Ltd", Type: "above", TargetPrice: 1450, CurrentPrice: 1467.30, Status: "triggered", CreatedAt: "2025-01-05", TriggeredAt: "2025-01-12"},
}

var newsAlerts = []models.NewsAlert{
	{ID: 1, Title: "RBI announces new monetary policy", Description: "Reserve Bank of India maintains repo rate at 6.5%", Category: "Policy", Timestamp: "2 hours ago"},
	{ID: 2, Title: "Reliance Q3 results announced", Description: "Reliance Industries reports 12% YoY growth in net profit", Category: "Earnings", Timestamp: "5 hours ago"},
	{ID: 3, Title: "IT sector outlook positive", Description: "Analysts upgrade IT sector ratings based on strong demand", Category: "Market", Timestamp: "1 day ago", Read: true},
	{ID: 4, Title: "New IPO launch next week", Description: "ABC Technologies files for ₹2,000 Cr IPO", Category: "IPO", Timestamp: "2 days ago", Read: true},
}

var performanceAlerts = []models.PerformanceAlert{
	{ID: 1, Type: "gain", Message: "Your portfolio gained 2.5% today - Best performance this month!", Timestamp: "Today, 3:30 PM"},
	{ID: 2, Type: "warning", Message: "TCS has dropped 3% below your average purchase price", Timestamp: "Today, 11:15 AM"},
	{ID: 3, Type: "milestone", Message: "Congratulations! Your portfolio crossed ₹10 Lakh mark", Timestamp: "Yesterday, 2:45 PM"},
}

var topStories = []models.NewsStory{
	{ID: 1, Title: "Nifty 50 closes at all-time high, Sensex gains 500 points",
		Summary: "Indian benchmark indices reached new peaks driven by strong FII inflows and positive global cues. Banking and IT sectors led the rally.",
		Source:  "Economic Times", Category: "Market", Timestamp: "30 minutes ago"},
	{ID: 2, Title: "RBI maintains repo rate at 6.5%, signals vigilant stance",
		Summary: "The Monetary Policy Committee voted unanimously to keep the policy rate unchanged while focusing on inflation management.",
		Source:  "Mint", Category: "Policy", Timestamp: "2 hours ago"},
	{ID: 3, Title: "Reliance Q3 results beat estimates with 15% profit growth",
		Summary: "Reliance Industries reported strong quarterly earnings with revenue of ₹2.35 lakh crore, driven by retail and digital services.",
		Source:  "Business Standard", Category: "Earnings", Timestamp: "4 hours ago"},
}

var sectorNews = []models.SectorNews{
	{Sector: "Technology", News: []models.Headline{
		{Title: "IT companies see strong demand from BFSI sector", Source: "Bloomberg Quint", Timestamp: "1 hour ago"},
		{Title: "TCS announces ₹17,000 crore share buyback", Source: "Reuters", Timestamp: "3 hours ago"},
	}},
	{Sector: "Banking", News: []models.Headline{
		{Title: "HDFC Bank Q3 net profit rises 20% YoY to ₹16,372 crore", Source: "Moneycontrol", Timestamp: "2 hours ago"},
		{Title: "SBI reduces MCLR by 10 basis points across tenures", Source: "Financial Express", Timestamp: "5 hours ago"},
	}},
	{Sector: "Auto", News: []models.Headline{
		{Title: "Maruti Suzuki reports highest-ever monthly sales", Source: "Economic Times", Timestamp: "3 hours ago"},
		{Title: "Tata Motors EV sales surge 50% in Q3", Source: "Business Today", Timestamp: "6 hours ago"},
	}},
}

var globalNews = []models.Headline{
	{Title: "US Fed maintains interest rates, eyes inflation data", Region: "United States", Impact: "positive", Timestamp: "4 hours ago"},
	{Title: "European markets rally on strong manufacturing data", Region: "Europe", Impact: "positive", Timestamp: "6 hours ago"},
	{Title: "China's GDP growth exceeds expectations at 5.2%", Region: "China", Impact: "positive", Timestamp: "8 hours ago"},
	{Title: "Oil prices decline amid global supply concerns", Region: "Global", Impact: "negative", Timestamp: "5 hours ago"},
}

var ipos = []models.IPO{
	{Company: "Tech Solutions Ltd", Size: "₹1,200 Cr", Dates: "Jan 20 - Jan 24, 2025", PriceRange: "₹180 - ₹195", Status: "Upcoming"},
	{Company: "Green Energy Corp", Size: "₹850 Cr", Dates: "Jan 15 - Jan 19, 2025", PriceRange: "₹95 - ₹105", Status: "Open"},
	{Company: "Digital Payments Inc", Size: "₹2,500 Cr", Dates: "Jan 8 - Jan 12, 2025", PriceRange: "₹320 - ₹350", Status: "Listed", ListingGain: "+18%"},
}

var goals = []models.Goal{
	mustGoal(1, "Dream Home", "Property", "Medium", 10000000, 4567890, "Dec 2028", 50000),
	mustGoal(2, "Children's Education", "Education", "Low", 5000000, 2345678, "Jun 2030", 30000),
	mustGoal(3, "Retirement Fund", "Retirement", "Medium", 50000000, 8765432, "Dec 2045", 75000),
	mustGoal(4, "New Car", "Vehicle", "Low", 1500000, 876543, "Mar 2026", 25000),
	mustGoal(5, "World Tour", "Travel", "Medium", 2000000, 456789, "Dec 2027", 20000),
}

func mustGoal(id int, name, category, risk string, target, current float64, date string, monthly float64) models.Goal {
	g, err := models.NewGoal(id, name, category, risk, target, current, date, monthly)
	if err != nil {
		panic(fmt.Sprintf("catalog: invalid goal %q: %v", name, err))
	}
	return g
}
