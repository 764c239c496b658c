// Package enrich derives calendar, time-slot, and status attributes for
// parsed interview records.
package enrich

import (
	"time"

	"intervista/pkg/parser"
)

// Status is the resolved state of an interview record.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusUpcoming  Status = "upcoming"
	StatusCancelled Status = "cancelled"
)

// TimeSlot is one of four fixed hour-range buckets.
type TimeSlot string

const (
	SlotMorning   TimeSlot = "Morning"
	SlotAfternoon TimeSlot = "Afternoon"
	SlotEvening   TimeSlot = "Evening"
	SlotNight     TimeSlot = "Night"
)

// SlotOrder is the fixed presentation and tie-break order of time slots.
var SlotOrder = []TimeSlot{SlotMorning, SlotAfternoon, SlotEvening, SlotNight}

// StatusOrder is the fixed presentation order of statuses.
var StatusOrder = []Status{StatusCompleted, StatusUpcoming, StatusCancelled}

// Record is a raw record plus its derived attributes. Never mutated after
// enrichment; aggregation only reads.
type Record struct {
	parser.RawRecord

	// Date is the calendar date parsed from DateText.
	Date time.Time `json:"date"`

	// DayOfWeek is the full weekday name derived from Date.
	DayOfWeek string `json:"day_of_week"`

	// IsWeekend is true iff the date falls on Saturday or Sunday.
	IsWeekend bool `json:"is_weekend"`

	// Hour is the starting hour (0-23) parsed from TimeText.
	Hour int `json:"hour"`

	// TimeSlot is the hour-range bucket for Hour.
	TimeSlot TimeSlot `json:"time_slot"`

	// Status is the resolved state at enrichment time.
	Status Status `json:"status"`
}

// MonthKey returns the record's month/year grouping key in YYYY-MM form,
// stable across locales.
func (r *Record) MonthKey() string {
	return r.Date.Format("2006-01")
}

// SlotThresholds defines the exclusive upper hour bound of each slot.
// Hours at or above EveningEnd fall into the Night slot.
type SlotThresholds struct {
	MorningEnd   int
	AfternoonEnd int
	EveningEnd   int
}

// DefaultSlotThresholds returns the standard slot boundaries.
func DefaultSlotThresholds() SlotThresholds {
	return SlotThresholds{MorningEnd: 12, AfternoonEnd: 16, EveningEnd: 20}
}

// Slot returns the time slot for an hour under these thresholds.
func (t SlotThresholds) Slot(hour int) TimeSlot {
	switch {
	case hour < t.MorningEnd:
		return SlotMorning
	case hour < t.AfternoonEnd:
		return SlotAfternoon
	case hour < t.EveningEnd:
		return SlotEvening
	default:
		return SlotNight
	}
}
