// Package aggregate computes summary tables over enriched interview records.
package aggregate

import (
	"intervista/pkg/enrich"
)

// Bucket is one row of a summary table: a label, its count, and the
// count as a percentage of the total (rounded to one decimal for display;
// counts stay exact).
type Bucket struct {
	// Label names the bucket (a status, weekday, slot, or YYYY-MM key).
	Label string `json:"label"`

	// Count is the number of records in the bucket.
	Count int `json:"count"`

	// Percent is Count over the record total, rounded to one decimal.
	Percent float64 `json:"percent"`

	// Records are the contributing records, kept for drill-down.
	// Excluded from JSON; consumers hold the full collection already.
	Records []*enrich.Record `json:"-"`
}

// Tables is the full set of aggregate summaries for one pipeline run.
// Recomputed fresh from the record collection on every run; read-only.
type Tables struct {
	// Total is the number of enriched records aggregated.
	Total int `json:"total"`

	// StatusCounts has one bucket per status, in completed/upcoming/
	// cancelled order.
	StatusCounts []Bucket `json:"status"`

	// WeekSplit has exactly two buckets, Weekday then Weekend.
	WeekSplit []Bucket `json:"week_split"`

	// DayOfWeek always has exactly 7 buckets in Monday..Sunday order,
	// zero-count buckets retained.
	DayOfWeek []Bucket `json:"by_day"`

	// TimeSlots always has exactly 4 buckets in Morning/Afternoon/
	// Evening/Night order, zero-count buckets retained.
	TimeSlots []Bucket `json:"by_slot"`

	// MonthlyTrend groups records by YYYY-MM key in first-appearance
	// order, not chronological order.
	MonthlyTrend []Bucket `json:"monthly_trend"`

	// Insights are derived facts over the whole collection.
	Insights []Insight `json:"insights"`
}

// InsightType categorizes derived facts.
type InsightType string

const (
	InsightCompletionRate   InsightType = "completion_rate"
	InsightPreferredSlot    InsightType = "preferred_slot"
	InsightWeekendRate      InsightType = "weekend_rate"
	InsightCancellationRate InsightType = "cancellation_rate"
	InsightNoCancellations  InsightType = "no_cancellations"
	InsightBusiestDay       InsightType = "busiest_day"
	InsightActivitySpan     InsightType = "activity_span"
)

// Insight is a single derived fact.
type Insight struct {
	// Type categorizes the fact.
	Type InsightType `json:"type"`

	// Description is a human-readable summary.
	Description string `json:"description"`

	// Value is the fact's numeric payload: a percentage for rates,
	// a count for preferred slot, busiest day, and activity span.
	Value float64 `json:"value"`
}

// WeekSplit bucket labels.
const (
	LabelWeekday = "Weekday"
	LabelWeekend = "Weekend"
)

// weekdayOrder is the fixed histogram and tie-break order for day buckets.
var weekdayOrder = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}
