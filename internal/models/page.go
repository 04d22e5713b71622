package models

import (
	"fmt"
	"strings"
)

// Page identifies one of the fixed views the navigation controller can display.
type Page string

// Page identifiers.
const (
	PageLanding         Page = "landing"
	PageBeginnerGuide   Page = "beginner-guide"
	PageLogin           Page = "login"
	PageDashboard       Page = "dashboard"
	PagePortfolio       Page = "portfolio"
	PageStockDetails    Page = "stock-details"
	PageProfile         Page = "profile"
	PageCrypto          Page = "crypto"
	PageUSStocks        Page = "us-stocks"
	PageETFs            Page = "etfs"
	PageSectoralIndices Page = "sectoral-indices"
	PageMutualFunds     Page = "mutual-funds"
	PageAlerts          Page = "alerts"
	PageNews            Page = "news"
	PageGoals           Page = "goals"
)

// AllPages lists every page identifier in declaration order.
var AllPages = []Page{
	PageLanding, PageBeginnerGuide, PageLogin, PageDashboard, PagePortfolio,
	PageStockDetails, PageProfile, PageCrypto, PageUSStocks, PageETFs,
	PageSectoralIndices, PageMutualFunds, PageAlerts, PageNews, PageGoals,
}

// ParsePage converts a raw identifier to a Page, rejecting anything outside the closed set.
func ParsePage(s string) (Page, error) {
	p := Page(strings.TrimSpace(s))
	if !p.Valid() {
		return "", fmt.Errorf("unknown page %q", s)
	}
	return p, nil
}

// Valid reports whether p is one of the known page identifiers.
func (p Page) Valid() bool {
	for _, known := range AllPages {
		if p == known {
			return true
		}
	}
	return false
}

// IsPublic reports whether the page belongs to the pre-login area.
// Public pages never render dark and are shown without the header or chat widget.
func (p Page) IsPublic() bool {
	switch p {
	case PageLanding, PageBeginnerGuide, PageLogin:
		return true
	}
	return false
}

func (p Page) String() string { return string(p) }
