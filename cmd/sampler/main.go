// Command sampler is the provider-side updater: one pass over the data
// file, simulating a new daily price per product and refreshing sentiment,
// 24h change, and history. Run it from cron to keep a demo feed alive.
package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"SiliconMeter/internal/calculator"
	"SiliconMeter/internal/datafile"
	"SiliconMeter/internal/model"
)

const maxHistoryDays = 365

func main() {
	log.SetFlags(log.LstdFlags)

	dataPath := flag.String("data", "data.json", "path to the product data file")
	flag.Parse()

	log.Println("[INFO] sampler starting")

	db, err := datafile.Load(*dataPath)
	if err != nil {
		log.Fatalf("[FATAL] load data file: %v", err)
	}
	if len(db.Products) == 0 {
		log.Println("[WARN] data file has no products, nothing to sample")
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	today := time.Now().Format("2006-01-02")

	for i := range db.Products {
		p := &db.Products[i]

		lastPrice := 100.0
		if n := len(p.History); n > 0 {
			lastPrice = p.History[n-1].Price
		}
		price := calculator.SimulatedPrice(lastPrice, rng)

		p.Sentiment = calculator.Sentiment(price, p.History)
		p.CurrentPrice = price
		p.Change24h = calculator.Change24h(price, lastPrice)

		appendSample(p, today, price)

		log.Printf("[INFO] %s: price=%.2f change=%.2f%% sentiment=%s",
			p.Name, p.CurrentPrice, p.Change24h, p.Sentiment)
	}

	if err := datafile.Save(*dataPath, db); err != nil {
		log.Fatalf("[FATAL] save data file: %v", err)
	}
	log.Printf("[INFO] sampler done, %d products written to %s", len(db.Products), *dataPath)
}

// appendSample adds today's price to the history, updating in place when a
// sample for today already exists so reruns stay idempotent. History is
// capped at a year of samples.
func appendSample(p *model.Product, today string, price float64) {
	if n := len(p.History); n > 0 && p.History[n-1].Date == today {
		p.History[n-1].Price = price
		return
	}
	p.History = append(p.History, model.PricePoint{Date: today, Price: price})
	if len(p.History) > maxHistoryDays {
		p.History = p.History[len(p.History)-maxHistoryDays:]
	}
}
