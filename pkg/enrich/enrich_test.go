package enrich

import (
	"errors"
	"testing"
	"time"

	"intervista/pkg/parser"
)

// asOf is a fixed Monday used as the reference date in these tests.
var asOf = time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)

func raw(date, timeRange string) parser.RawRecord {
	return parser.RawRecord{ID: "C-1", DateText: date, TimeText: timeRange}
}

func TestEnrich_CalendarAttributes(t *testing.T) {
	e := NewEnricher(asOf)

	rec, err := e.Enrich(raw("2025-03-08", "10:00 - 11:00"), 1) // a Saturday
	if err != nil {
		t.Fatalf("Enrich() error = %v", err)
	}

	if rec.DayOfWeek != "Saturday" {
		t.Errorf("DayOfWeek = %q, want Saturday", rec.DayOfWeek)
	}
	if !rec.IsWeekend {
		t.Error("IsWeekend = false, want true for Saturday")
	}
	if rec.Hour != 10 {
		t.Errorf("Hour = %d, want 10", rec.Hour)
	}
	if rec.MonthKey() != "2025-03" {
		t.Errorf("MonthKey() = %q, want 2025-03", rec.MonthKey())
	}
}

func TestEnrich_WeekendMatchesDayName(t *testing.T) {
	e := NewEnricher(asOf)

	// One week of consecutive dates: 2025-03-03 is a Monday.
	for day := 3; day <= 9; day++ {
		rec, err := e.Enrich(raw(time.Date(2025, 3, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02"), "09:00"), 1)
		if err != nil {
			t.Fatalf("Enrich() error = %v", err)
		}
		wantWeekend := rec.DayOfWeek == "Saturday" || rec.DayOfWeek == "Sunday"
		if rec.IsWeekend != wantWeekend {
			t.Errorf("day %d: IsWeekend = %v, DayOfWeek = %q", day, rec.IsWeekend, rec.DayOfWeek)
		}
	}
}

func TestEnrich_TimeSlotBoundaries(t *testing.T) {
	e := NewEnricher(asOf)

	tests := []struct {
		hour string
		want TimeSlot
	}{
		{"00:00", SlotMorning},
		{"11:59", SlotMorning},
		{"12:00", SlotAfternoon},
		{"15:30", SlotAfternoon},
		{"16:00", SlotEvening},
		{"19:00", SlotEvening},
		{"20:00", SlotNight},
		{"23:00", SlotNight},
	}

	for _, tt := range tests {
		rec, err := e.Enrich(raw("2025-03-05", tt.hour+" - later"), 1)
		if err != nil {
			t.Fatalf("Enrich(%q) error = %v", tt.hour, err)
		}
		if rec.TimeSlot != tt.want {
			t.Errorf("hour %s: TimeSlot = %q, want %q", tt.hour, rec.TimeSlot, tt.want)
		}
	}
}

func TestEnrich_SlotIsAPartition(t *testing.T) {
	slots := DefaultSlotThresholds()

	for hour := 0; hour <= 23; hour++ {
		got := slots.Slot(hour)
		matches := 0
		if hour < slots.MorningEnd && got == SlotMorning {
			matches++
		}
		if hour >= slots.MorningEnd && hour < slots.AfternoonEnd && got == SlotAfternoon {
			matches++
		}
		if hour >= slots.AfternoonEnd && hour < slots.EveningEnd && got == SlotEvening {
			matches++
		}
		if hour >= slots.EveningEnd && got == SlotNight {
			matches++
		}
		if matches != 1 {
			t.Errorf("hour %d: slot %q does not satisfy exactly one predicate", hour, got)
		}
	}
}

func TestEnrich_Status(t *testing.T) {
	e := NewEnricher(asOf)

	tests := []struct {
		name      string
		date      string
		cancelled bool
		want      Status
	}{
		{"past date", "2025-03-09", false, StatusCompleted},
		{"same day", "2025-03-10", false, StatusUpcoming},
		{"future date", "2025-03-11", false, StatusUpcoming},
		{"cancelled past", "2025-03-01", true, StatusCancelled},
		{"cancelled future", "2026-01-01", true, StatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := raw(tt.date, "10:00 - 11:00")
			r.Cancelled = tt.cancelled

			rec, err := e.Enrich(r, 1)
			if err != nil {
				t.Fatalf("Enrich() error = %v", err)
			}
			if rec.Status != tt.want {
				t.Errorf("Status = %q, want %q", rec.Status, tt.want)
			}
		})
	}
}

func TestEnrich_TimeOfDayOfReferenceIgnored(t *testing.T) {
	// Reference dates at 00:00 and 23:59 must classify identically.
	morning := NewEnricher(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	night := NewEnricher(time.Date(2025, 3, 10, 23, 59, 59, 0, time.UTC))

	for _, e := range []*Enricher{morning, night} {
		rec, err := e.Enrich(raw("2025-03-10", "09:00"), 1)
		if err != nil {
			t.Fatalf("Enrich() error = %v", err)
		}
		if rec.Status != StatusUpcoming {
			t.Errorf("Status = %q, want upcoming (same-day is not completed)", rec.Status)
		}
	}
}

func TestEnrich_InvalidDate(t *testing.T) {
	e := NewEnricher(asOf)

	for _, date := range []string{"07-03-2025", "March 7", "2025-13-40", "TBD"} {
		_, err := e.Enrich(raw(date, "10:00"), 3)
		var invalid *InvalidDateError
		if !errors.As(err, &invalid) {
			t.Errorf("Enrich(date=%q) error = %v, want *InvalidDateError", date, err)
			continue
		}
		if invalid.Value != date {
			t.Errorf("Value = %q, want %q", invalid.Value, date)
		}
		if invalid.Position != 3 {
			t.Errorf("Position = %d, want 3", invalid.Position)
		}
	}
}

func TestEnrich_InvalidTime(t *testing.T) {
	e := NewEnricher(asOf)

	for _, timeText := range []string{"morning", "25:00", "-1:00", "noon - late", ""} {
		_, err := e.Enrich(raw("2025-03-05", timeText), 2)
		var invalid *InvalidTimeError
		if !errors.As(err, &invalid) {
			t.Errorf("Enrich(time=%q) error = %v, want *InvalidTimeError", timeText, err)
			continue
		}
		if invalid.Position != 2 {
			t.Errorf("Position = %d, want 2", invalid.Position)
		}
	}
}

func TestEnrich_CustomSlotThresholds(t *testing.T) {
	e := NewEnricher(asOf, WithSlotThresholds(SlotThresholds{MorningEnd: 10, AfternoonEnd: 14, EveningEnd: 18}))

	rec, err := e.Enrich(raw("2025-03-05", "11:00"), 1)
	if err != nil {
		t.Fatalf("Enrich() error = %v", err)
	}
	if rec.TimeSlot != SlotAfternoon {
		t.Errorf("TimeSlot = %q, want Afternoon under custom thresholds", rec.TimeSlot)
	}
}
