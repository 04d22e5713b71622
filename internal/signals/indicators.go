// Package signals provides technical indicator calculations over price series.
// Series are in chronological order: the last point is the latest.
package signals

import (
	"math"
	"sort"

	"github.com/bobmcallan/investiq/internal/models"
)

// SMA calculates the simple moving average of the last period closes.
func SMA(series []models.PricePoint, period int) (float64, bool) {
	if period <= 0 || len(series) < period {
		return 0, false
	}

	sum := 0.0
	for _, p := range series[len(series)-period:] {
		sum += p.Close
	}
	return sum / float64(period), true
}

// EMA calculates the exponential moving average, seeded with the SMA of the
// first period closes and rolled forward over the rest of the series.
func EMA(series []models.PricePoint, period int) (float64, bool) {
	if period <= 0 || len(series) < period {
		return 0, false
	}

	ema, _ := SMA(series[:period], period)

	multiplier := 2.0 / float64(period+1)
	for _, p := range series[period:] {
		ema = (p.Close-ema)*multiplier + ema
	}
	return ema, true
}

// RSI calculates the Relative Strength Index over the last period changes.
func RSI(series []models.PricePoint, period int) (float64, bool) {
	if period <= 0 || len(series) < period+1 {
		return 0, false
	}

	var gains, losses float64
	tail := series[len(series)-period-1:]
	for i := 1; i < len(tail); i++ {
		change := tail[i].Close - tail[i-1].Close
		if change > 0 {
			gains += change
		} else {
			losses -= change
		}
	}

	if losses == 0 {
		if gains == 0 {
			return 50, true
		}
		return 100, true
	}

	rs := gains / losses
	return 100 - (100 / (1 + rs)), true
}

// ATR calculates the Average True Range over the last period points.
func ATR(series []models.PricePoint, period int) (float64, bool) {
	if period <= 0 || len(series) < period+1 {
		return 0, false
	}

	trSum := 0.0
	tail := series[len(series)-period-1:]
	for i := 1; i < len(tail); i++ {
		prevClose := tail[i-1].Close
		tr := math.Max(tail[i].High-tail[i].Low,
			math.Max(math.Abs(tail[i].High-prevClose), math.Abs(tail[i].Low-prevClose)))
		trSum += tr
	}
	return trSum / float64(period), true
}

// PeriodRange returns the highest high and lowest low in the series.
func PeriodRange(series []models.PricePoint) (high, low float64) {
	if len(series) == 0 {
		return 0, 0
	}
	high, low = series[0].High, series[0].Low
	for _, p := range series[1:] {
		high = math.Max(high, p.High)
		low = math.Min(low, p.Low)
	}
	return high, low
}

// SupportResistance returns the lower quartile of lows and the upper
// quartile of highs over the last lookback points.
func SupportResistance(series []models.PricePoint, lookback int) (support, resistance float64) {
	if lookback <= 0 || lookback > len(series) {
		lookback = len(series)
	}
	if lookback == 0 {
		return 0, 0
	}

	tail := series[len(series)-lookback:]
	highs := make([]float64, lookback)
	lows := make([]float64, lookback)
	for i, p := range tail {
		highs[i] = p.High
		lows[i] = p.Low
	}
	sort.Float64s(highs)
	sort.Float64s(lows)

	return lows[int(float64(lookback)*0.25)], highs[int(float64(lookback)*0.75)]
}

// Crossover detects a short/long SMA crossover at the latest point.
// Returns "golden_cross", "death_cross", or "none".
func Crossover(series []models.PricePoint, shortPeriod, longPeriod int) string {
	if len(series) < longPeriod+1 {
		return "none"
	}

	shortNow, _ := SMA(series, shortPeriod)
	longNow, _ := SMA(series, longPeriod)
	prev := series[:len(series)-1]
	shortPrev, _ := SMA(prev, shortPeriod)
	longPrev, _ := SMA(prev, longPeriod)

	if shortPrev <= longPrev && shortNow > longNow {
		return "golden_cross"
	}
	if shortPrev >= longPrev && shortNow < longNow {
		return "death_cross"
	}
	return "none"
}

// ClassifyRSI classifies an RSI value.
func ClassifyRSI(rsi float64) string {
	if rsi >= 70 {
		return "overbought"
	}
	if rsi <= 30 {
		return "oversold"
	}
	return "neutral"
}

// DetermineTrend is bullish when price and the short average both sit above
// the long average, bearish when both sit below.
func DetermineTrend(price, smaShort, smaLong float64) models.Trend {
	if price > smaLong && smaShort > smaLong {
		return models.TrendBullish
	}
	if price < smaLong && smaShort < smaLong {
		return models.TrendBearish
	}
	return models.TrendNeutral
}
