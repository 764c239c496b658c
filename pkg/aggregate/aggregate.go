package aggregate

import (
	"fmt"
	"math"

	"intervista/pkg/enrich"
)

// Compute builds all summary tables from a non-empty record collection.
// The input is never mutated; the pipeline guarantees it is non-empty.
func Compute(records []*enrich.Record) *Tables {
	t := &Tables{Total: len(records)}

	t.StatusCounts = statusCounts(records)
	t.WeekSplit = weekSplit(records)
	t.DayOfWeek = dayHistogram(records)
	t.TimeSlots = slotHistogram(records)
	t.MonthlyTrend = monthlyTrend(records)
	t.Insights = insights(t)

	return t
}

func statusCounts(records []*enrich.Record) []Bucket {
	buckets := make([]Bucket, 0, len(enrich.StatusOrder))
	for _, status := range enrich.StatusOrder {
		buckets = append(buckets, collect(records, string(status), func(r *enrich.Record) bool {
			return r.Status == status
		}))
	}
	return buckets
}

func weekSplit(records []*enrich.Record) []Bucket {
	return []Bucket{
		collect(records, LabelWeekday, func(r *enrich.Record) bool { return !r.IsWeekend }),
		collect(records, LabelWeekend, func(r *enrich.Record) bool { return r.IsWeekend }),
	}
}

// dayHistogram always yields 7 buckets in Monday..Sunday order, zeros kept.
func dayHistogram(records []*enrich.Record) []Bucket {
	buckets := make([]Bucket, 0, len(weekdayOrder))
	for _, day := range weekdayOrder {
		buckets = append(buckets, collect(records, day, func(r *enrich.Record) bool {
			return r.DayOfWeek == day
		}))
	}
	return buckets
}

// slotHistogram always yields 4 buckets in slot order, zeros kept.
func slotHistogram(records []*enrich.Record) []Bucket {
	buckets := make([]Bucket, 0, len(enrich.SlotOrder))
	for _, slot := range enrich.SlotOrder {
		buckets = append(buckets, collect(records, string(slot), func(r *enrich.Record) bool {
			return r.TimeSlot == slot
		}))
	}
	return buckets
}

// monthlyTrend groups records by YYYY-MM key in the order each key first
// occurs in the record sequence. Insertion order is deliberate: it mirrors
// how the months appear in the source text, not the calendar.
func monthlyTrend(records []*enrich.Record) []Bucket {
	total := len(records)
	index := make(map[string]int)
	var buckets []Bucket

	for _, r := range records {
		key := r.MonthKey()
		i, seen := index[key]
		if !seen {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, Bucket{Label: key})
		}
		buckets[i].Count++
		buckets[i].Records = append(buckets[i].Records, r)
	}

	for i := range buckets {
		buckets[i].Percent = percentOf(buckets[i].Count, total)
	}

	return buckets
}

// insights derives summary facts from the already-computed tables.
func insights(t *Tables) []Insight {
	var facts []Insight

	completed := t.StatusCounts[0]
	facts = append(facts, Insight{
		Type:        InsightCompletionRate,
		Description: fmt.Sprintf("%.1f%% of interviews completed (%d of %d)", completed.Percent, completed.Count, t.Total),
		Value:       completed.Percent,
	})

	slot := maxBucket(t.TimeSlots)
	facts = append(facts, Insight{
		Type:        InsightPreferredSlot,
		Description: fmt.Sprintf("%s is the most preferred time slot (%d of %d)", slot.Label, slot.Count, t.Total),
		Value:       float64(slot.Count),
	})

	weekend := t.WeekSplit[1]
	facts = append(facts, Insight{
		Type:        InsightWeekendRate,
		Description: fmt.Sprintf("%.1f%% of interviews fall on weekends", weekend.Percent),
		Value:       weekend.Percent,
	})

	cancelled := t.StatusCounts[2]
	if cancelled.Count == 0 {
		facts = append(facts, Insight{
			Type:        InsightNoCancellations,
			Description: "No cancellations recorded",
		})
	} else {
		facts = append(facts, Insight{
			Type:        InsightCancellationRate,
			Description: fmt.Sprintf("%.1f%% of interviews were cancelled (%d of %d)", cancelled.Percent, cancelled.Count, t.Total),
			Value:       cancelled.Percent,
		})
	}

	day := maxBucket(t.DayOfWeek)
	facts = append(facts, Insight{
		Type:        InsightBusiestDay,
		Description: fmt.Sprintf("%s is the busiest day (%d interviews)", day.Label, day.Count),
		Value:       float64(day.Count),
	})

	if months := len(t.MonthlyTrend); months >= 2 {
		facts = append(facts, Insight{
			Type:        InsightActivitySpan,
			Description: fmt.Sprintf("Activity spans %d months", months),
			Value:       float64(months),
		})
	}

	return facts
}

// collect builds one bucket from the records matching pred.
func collect(records []*enrich.Record, label string, pred func(*enrich.Record) bool) Bucket {
	b := Bucket{Label: label}
	for _, r := range records {
		if pred(r) {
			b.Count++
			b.Records = append(b.Records, r)
		}
	}
	b.Percent = percentOf(b.Count, len(records))
	return b
}

// maxBucket returns the bucket with the highest count. Ties keep the
// earliest bucket, so the fixed category order is the tie-break order.
func maxBucket(buckets []Bucket) Bucket {
	best := buckets[0]
	for _, b := range buckets[1:] {
		if b.Count > best.Count {
			best = b
		}
	}
	return best
}

// percentOf returns count/total as a percentage rounded to one decimal.
func percentOf(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(count)/float64(total)*1000) / 10
}
