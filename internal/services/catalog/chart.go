package catalog

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/bobmcallan/investiq/internal/common"
	"github.com/bobmcallan/investiq/internal/models"
)

// renderPriceChart renders a PNG line chart of a stock's price series.
// Two series: Price (green solid) and Average (gray dashed).
// Returns raw PNG bytes.
func renderPriceChart(d *models.StockDetails, currency string) ([]byte, error) {
	points := d.Series
	if len(points) < 2 {
		return nil, fmt.Errorf("need at least 2 data points, got %d", len(points))
	}

	xValues := make([]float64, len(points))
	priceY := make([]float64, len(points))
	avgY := make([]float64, len(points))

	var avg float64
	if d.Average != nil {
		avg = *d.Average
	}
	for i, p := range points {
		xValues[i] = float64(i)
		priceY[i] = p.Value
		avgY[i] = avg
	}

	priceSeries := chart.ContinuousSeries{
		Name: d.Quote.Symbol,
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("29d39a"),
			StrokeWidth: 2.5,
		},
		XValues: xValues,
		YValues: priceY,
	}

	avgSeries := chart.ContinuousSeries{
		Name: "Average",
		Style: chart.Style{
			StrokeColor:     drawing.ColorFromHex("9ca3af"), // gray-400
			StrokeWidth:     1.5,
			StrokeDashArray: []float64{5.0, 3.0},
		},
		XValues: xValues,
		YValues: avgY,
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("%s (%s)", d.Quote.Name, d.Range),
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					i := int(f)
					if i >= 0 && i < len(points) && float64(i) == f {
						return points[i].Label
					}
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return common.FormatAmount(f, currency, 0)
				}
				return ""
			},
		},
		Series: []chart.Series{
			priceSeries,
			avgSeries,
		},
	}

	graph.Elements = []chart.Renderable{
		chart.LegendLeft(&graph),
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}
