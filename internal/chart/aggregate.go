package chart

import (
	"math"
	"sort"
	"time"

	"SiliconMeter/internal/model"
)

// bucket accumulates (sum, count) per series for one date.
type bucket struct {
	sum   [3]float64 // indexed by series: 0=DDR5 1=DDR4 2=HBM
	count [3]int
}

const (
	seriesDDR5 = iota
	seriesDDR4
	seriesHBM
)

// Aggregate converts a product list into an ordered list of chart points,
// one per distinct history date, carrying the mean price per series for
// that date. A series with no samples on a date yields no value, not zero.
//
// Points where neither the DDR5 nor the DDR4 series has a value are dropped,
// which also drops days carrying only HBM data. That exclusion mirrors the
// shipped dashboard and is pending a product decision; change it here if it
// is ever reversed.
//
// Input products are never mutated and the output is deterministic for a
// given input. Malformed history entries are skipped, not reported.
func Aggregate(products []model.Product) []model.ChartPoint {
	buckets := make(map[string]*bucket)

	for _, p := range products {
		tags := Classify(p)
		if tags.Empty() {
			continue
		}
		for _, sample := range p.History {
			if sample.Date == "" || sample.Price < 0 {
				continue
			}
			b := buckets[sample.Date]
			if b == nil {
				b = &bucket{}
				buckets[sample.Date] = b
			}
			if tags.DDR5 {
				b.sum[seriesDDR5] += sample.Price
				b.count[seriesDDR5]++
			}
			if tags.DDR4 {
				b.sum[seriesDDR4] += sample.Price
				b.count[seriesDDR4]++
			}
			if tags.HBM {
				b.sum[seriesHBM] += sample.Price
				b.count[seriesHBM]++
			}
		}
	}

	type dated struct {
		date  string
		point model.ChartPoint
	}
	points := make([]dated, 0, len(buckets))
	for date, b := range buckets {
		pt := model.ChartPoint{
			Date: truncateDate(date),
			DDR5: mean(b, seriesDDR5),
			DDR4: mean(b, seriesDDR4),
			HBM:  mean(b, seriesHBM),
		}
		// A point with no DRAM series carries nothing plottable.
		if pt.DDR5 == nil && pt.DDR4 == nil {
			continue
		}
		points = append(points, dated{date: date, point: pt})
	}

	sort.Slice(points, func(i, j int) bool {
		ti, tj := parseDate(points[i].date), parseDate(points[j].date)
		if ti.Equal(tj) {
			return points[i].date < points[j].date
		}
		return ti.Before(tj)
	})

	out := make([]model.ChartPoint, len(points))
	for i, d := range points {
		out[i] = d.point
	}
	return out
}

func mean(b *bucket, series int) *float64 {
	if b.count[series] == 0 {
		return nil
	}
	v := math.Round(b.sum[series]/float64(b.count[series])*100) / 100
	return &v
}

// truncateDate shortens a YYYY-MM-DD label to MM-DD for the axis.
func truncateDate(date string) string {
	if len(date) == 10 && date[4] == '-' {
		return date[5:]
	}
	return date
}

func parseDate(date string) time.Time {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}
	}
	return t
}
