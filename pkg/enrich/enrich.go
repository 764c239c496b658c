package enrich

import (
	"strconv"
	"strings"
	"time"

	"intervista/pkg/parser"
)

// DefaultDateLayout is the expected date format of the Date: field.
const DefaultDateLayout = "2006-01-02"

// Enricher derives attributes for raw records against a fixed reference
// date. The reference date is injected rather than read from the clock so
// runs are reproducible.
type Enricher struct {
	today  time.Time
	layout string
	slots  SlotThresholds
}

// Option configures an Enricher.
type Option func(*Enricher)

// WithDateLayout overrides the date layout used to parse the date field.
func WithDateLayout(layout string) Option {
	return func(e *Enricher) {
		if layout != "" {
			e.layout = layout
		}
	}
}

// WithSlotThresholds overrides the time-slot hour boundaries.
func WithSlotThresholds(t SlotThresholds) Option {
	return func(e *Enricher) {
		e.slots = t
	}
}

// NewEnricher creates an Enricher that classifies records relative to asOf.
// Only the date portion of asOf is used.
func NewEnricher(asOf time.Time, opts ...Option) *Enricher {
	y, m, d := asOf.Date()
	e := &Enricher{
		today:  time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		layout: DefaultDateLayout,
		slots:  DefaultSlotThresholds(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Enrich derives all attributes for one raw record. pos is the record's
// 1-based position in the input, carried on failures.
// Returns *InvalidDateError or *InvalidTimeError on unparseable fields.
func (e *Enricher) Enrich(raw parser.RawRecord, pos int) (*Record, error) {
	date, err := time.Parse(e.layout, raw.DateText)
	if err != nil {
		return nil, &InvalidDateError{Position: pos, Value: raw.DateText}
	}

	hour, ok := parseHour(raw.TimeText)
	if !ok {
		return nil, &InvalidTimeError{Position: pos, Value: raw.TimeText}
	}

	weekday := date.Weekday()

	rec := &Record{
		RawRecord: raw,
		Date:      date,
		DayOfWeek: weekday.String(),
		IsWeekend: weekday == time.Saturday || weekday == time.Sunday,
		Hour:      hour,
		TimeSlot:  e.slots.Slot(hour),
		Status:    e.status(raw, date),
	}

	return rec, nil
}

// status resolves the record's state. Cancellation is terminal; otherwise
// the record is completed when its date is strictly before the reference
// date, upcoming when on or after it.
func (e *Enricher) status(raw parser.RawRecord, date time.Time) Status {
	if raw.Cancelled {
		return StatusCancelled
	}
	if date.Before(e.today) {
		return StatusCompleted
	}
	return StatusUpcoming
}

// parseHour extracts the integer hour before the first colon of a time range.
func parseHour(timeText string) (int, bool) {
	head, _, found := strings.Cut(timeText, ":")
	if !found {
		return 0, false
	}

	hour, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}

	return hour, true
}
