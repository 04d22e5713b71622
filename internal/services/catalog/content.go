package catalog

// Section is a titled block of copy on a static page.
type Section struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Points      []string `json:"points,omitempty"`
}

// StaticPage is the payload of the public, copy-only pages.
type StaticPage struct {
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle"`
	Sections []Section `json:"sections"`
}

var landingPage = StaticPage{
	Title:    "Invest with Intelligence",
	Subtitle: "Your Portfolio, Perfected. Track, analyze, and grow your investments with AI-powered insights.",
	Sections: []Section{
		{Title: "Real-Time Dashboard", Description: "Track your portfolio performance with live updates and comprehensive market data visualization."},
		{Title: "In-Depth Stock Analysis", Description: "Access detailed stock information, historical charts, and key financial metrics at your fingertips."},
		{Title: "AI-Powered Insights", Description: "Get intelligent recommendations and answers to your investment questions from our AI assistant."},
		{Title: "Secure & Reliable", Description: "Your financial data is protected with enterprise-grade security and encrypted connections."},
	},
}

var beginnerGuide = StaticPage{
	Title:    "Beginner's Guide to Investing",
	Subtitle: "Everything you need to start your investment journey with confidence.",
	Sections: []Section{
		{Title: "Set Your Financial Goals", Description: "Define what you're investing for - retirement, a house, education, or wealth building. Having clear goals helps determine your investment strategy and time horizon."},
		{Title: "Start with an Emergency Fund", Description: "Before investing, save 3-6 months of expenses in an easily accessible account. This protects your investments from being liquidated during emergencies."},
		{Title: "Diversify Your Portfolio", Description: "Don't put all your eggs in one basket. Spread investments across different sectors, asset classes, and geographic regions to reduce risk."},
		{Title: "Think Long-Term", Description: "Successful investing is a marathon, not a sprint. Stay invested through market ups and downs, and avoid trying to time the market."},
		{Title: "Educate Yourself", Points: []string{
			"Learn about different investment types: stocks, bonds, ETFs, and mutual funds",
			"Understand basic financial metrics like P/E ratio, dividend yield, and market cap",
			"Follow reputable financial news sources and educational content",
			"Consider reading classic investing books like 'The Intelligent Investor'",
		}},
		{Title: "Risk Management", Points: []string{
			"Only invest money you can afford to lose",
			"Don't invest based on tips or trends without research",
			"Understand your risk tolerance and invest accordingly",
			"Review and rebalance your portfolio regularly",
		}},
		{Title: "Smart Investing Tips", Points: []string{
			"Start small and increase investments as you learn",
			"Consider dollar-cost averaging - invest fixed amounts regularly",
			"Minimize fees by choosing low-cost index funds or ETFs",
			"Take advantage of tax-advantaged accounts when possible",
			"Avoid emotional decisions - stick to your investment plan",
		}},
	},
}

var loginPage = StaticPage{
	Title:    "Welcome to InvestIQ",
	Subtitle: "Sign in to your account or create a new one.",
}
