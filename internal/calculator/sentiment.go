package calculator

import (
	"math"
	"math/rand"

	"SiliconMeter/internal/model"
)

// Sentiment thresholds relative to the 7-day moving average.
const (
	sentimentWindow = 7
	panicThreshold  = 1.10 // price more than 10% above the average
	buyThreshold    = 0.95 // price more than 5% below the average
)

// Sentiment classifies the current price against the moving average of the
// most recent history samples. With no history the call is a hold.
func Sentiment(currentPrice float64, history model.History) model.Sentiment {
	if len(history) == 0 {
		return model.SentimentHold
	}
	recent := history
	if len(recent) > sentimentWindow {
		recent = recent[len(recent)-sentimentWindow:]
	}
	prices := make([]float64, len(recent))
	for i, pt := range recent {
		prices[i] = pt.Price
	}
	avg, err := CalculateSMA(prices, len(prices))
	if err != nil || avg == 0 {
		return model.SentimentHold
	}
	switch {
	case currentPrice > avg*panicThreshold:
		return model.SentimentPanic
	case currentPrice < avg*buyThreshold:
		return model.SentimentBuy
	default:
		return model.SentimentHold
	}
}

// Change24h returns the percent change from the previous price, rounded to
// two decimal places. A zero previous price yields zero rather than Inf.
func Change24h(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return round2((current - previous) / previous * 100)
}

// SimulatedPrice walks the last price by a random factor in [-5%, +10%],
// biased slightly upward. Demo mode only; real deployments poll the feed.
func SimulatedPrice(last float64, rng *rand.Rand) float64 {
	volatility := -0.05 + rng.Float64()*0.15
	return round2(last * (1 + volatility))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
