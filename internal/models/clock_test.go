package models

import (
	"testing"
	"time"
)

func TestMinutesBetweenSameDay(t *testing.T) {
	a := GameTime{Year: 2026, Month: 3, Day: 2, Hour: 12, Minute: 15}
	b := GameTime{Year: 2026, Month: 3, Day: 2, Hour: 14, Minute: 0}
	if got := MinutesBetween(a, b); got != 105 {
		t.Errorf("MinutesBetween = %d, want 105", got)
	}
}

func TestMinutesBetweenAddsFlatDayOnRollover(t *testing.T) {
	a := GameTime{Year: 2026, Month: 3, Day: 2, Hour: 23, Minute: 45}
	b := GameTime{Year: 2026, Month: 3, Day: 3, Hour: 0, Minute: 15}
	// (0-23)*60 + (15-45) + 1440 = 30
	if got := MinutesBetween(a, b); got != 30 {
		t.Errorf("MinutesBetween = %d, want 30 across midnight", got)
	}

	// Spans of several days are understated: only one flat day is added.
	c := GameTime{Year: 2026, Month: 3, Day: 5, Hour: 0, Minute: 15}
	if got := MinutesBetween(a, c); got != 30 {
		t.Errorf("MinutesBetween = %d, want 30 (flat-day approximation)", got)
	}
}

func TestMinutesBetweenMonthRollover(t *testing.T) {
	a := GameTime{Year: 2026, Month: 3, Day: 31, Hour: 23, Minute: 0}
	b := GameTime{Year: 2026, Month: 4, Day: 1, Hour: 1, Minute: 0}
	if got := MinutesBetween(a, b); got != 1560 {
		t.Errorf("MinutesBetween = %d, want 1560", got)
	}
}

func TestGameClockAdvance(t *testing.T) {
	clock := NewGameClock(time.Date(2026, 3, 2, 23, 50, 0, 0, time.UTC))
	clock.Advance(15)

	now := clock.Now()
	if now.Day != 3 || now.Hour != 0 || now.Minute != 5 {
		t.Errorf("advanced to %+v, want day 3 00:05", now)
	}
	if now.DayOfWeek != time.Tuesday {
		t.Errorf("day of week = %v, want Tuesday", now.DayOfWeek)
	}
}

func TestIsWeekendNight(t *testing.T) {
	friday := GameTime{DayOfWeek: time.Friday}
	monday := GameTime{DayOfWeek: time.Monday}
	if !friday.IsWeekendNight() {
		t.Error("Friday should count as a weekend night")
	}
	if monday.IsWeekendNight() {
		t.Error("Monday should not count as a weekend night")
	}
}

func TestGameTimeIsZero(t *testing.T) {
	var zero GameTime
	if !zero.IsZero() {
		t.Error("zero value must report IsZero")
	}
	stamped := GameTime{Year: 2026, Month: 3, Day: 2}
	if stamped.IsZero() {
		t.Error("stamped time must not report IsZero")
	}
}
