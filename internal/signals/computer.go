package signals

import "github.com/bobmcallan/investiq/internal/models"

// Indicator periods, in series points.
const (
	ShortPeriod = 5
	LongPeriod  = 20
	EMAPeriod   = 10
	RSIPeriod   = 14
	ATRPeriod   = 14
)

// Compute derives the technical summary shown under the price chart.
func Compute(series []models.PricePoint) models.Technicals {
	t := models.Technicals{
		ShortPeriod: ShortPeriod,
		LongPeriod:  LongPeriod,
		RSISignal:   "neutral",
		Crossover:   Crossover(series, ShortPeriod, LongPeriod),
		Trend:       models.TrendNeutral,
	}

	t.SMAShort = optional(SMA(series, ShortPeriod))
	t.SMALong = optional(SMA(series, LongPeriod))
	t.EMA = optional(EMA(series, EMAPeriod))
	t.ATR = optional(ATR(series, ATRPeriod))

	if rsi, ok := RSI(series, RSIPeriod); ok {
		t.RSI = &rsi
		t.RSISignal = ClassifyRSI(rsi)
	}

	t.Support, t.Resistance = SupportResistance(series, LongPeriod)
	t.PeriodHigh, t.PeriodLow = PeriodRange(series)

	if t.SMAShort != nil && t.SMALong != nil {
		t.Trend = DetermineTrend(series[len(series)-1].Close, *t.SMAShort, *t.SMALong)
	}
	return t
}

func optional(v float64, ok bool) *float64 {
	if !ok {
		return nil
	}
	return &v
}
