// Package interfaces defines service contracts for InvestIQ
package interfaces

import (
	"context"
	"time"

	"github.com/bobmcallan/investiq/internal/models"
)

// CatalogService serves page payloads built from the mock datasets.
type CatalogService interface {
	// PagePayload returns the data a page renders for the given session view.
	PagePayload(ctx context.Context, snap models.Snapshot) (any, error)

	// StockDetails returns the quote and price series for a symbol.
	StockDetails(ctx context.Context, symbol string, r models.TimeRange) (*models.StockDetails, error)

	// RenderPriceChart renders the price series for a symbol as PNG.
	RenderPriceChart(ctx context.Context, symbol string, r models.TimeRange) ([]byte, error)
}

// SessionSweeper removes idle client sessions.
type SessionSweeper interface {
	// Sweep removes sessions idle for longer than maxIdle and returns how many were removed.
	Sweep(maxIdle time.Duration) int
}
