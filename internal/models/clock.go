package models

import "time"

// GameTime is a snapshot of the in-game clock at a state transition.
type GameTime struct {
	Year      int          `json:"year"`
	Month     int          `json:"month"`
	Day       int          `json:"day"`
	Hour      int          `json:"hour"`
	Minute    int          `json:"minute"`
	DayOfWeek time.Weekday `json:"day_of_week"`
}

func (t GameTime) IsZero() bool {
	return t.Year == 0 && t.Month == 0 && t.Day == 0 && t.Hour == 0 && t.Minute == 0
}

// IsWeekendNight reports whether t falls on the busy Friday/Saturday window.
func (t GameTime) IsWeekendNight() bool {
	return t.DayOfWeek == time.Friday || t.DayOfWeek == time.Saturday
}

// MinutesBetween returns in-game minutes elapsed from a to b. Rollover of any
// unit above the hour adds a flat day instead of a calendar delta, so spans
// covering several days are understated.
func MinutesBetween(a, b GameTime) int {
	diff := (b.Hour-a.Hour)*60 + (b.Minute - a.Minute)
	if b.Day != a.Day || b.Month != a.Month || b.Year != a.Year {
		diff += 24 * 60
	}
	return diff
}

// GameClock advances simulated time in fixed-minute ticks.
type GameClock struct {
	current time.Time
}

func NewGameClock(start time.Time) *GameClock {
	return &GameClock{current: start}
}

func (c *GameClock) Now() GameTime {
	return GameTime{
		Year:      c.current.Year(),
		Month:     int(c.current.Month()),
		Day:       c.current.Day(),
		Hour:      c.current.Hour(),
		Minute:    c.current.Minute(),
		DayOfWeek: c.current.Weekday(),
	}
}

// Time exposes the underlying wall representation for serialization.
func (c *GameClock) Time() time.Time {
	return c.current
}

func (c *GameClock) Advance(minutes int) {
	c.current = c.current.Add(time.Duration(minutes) * time.Minute)
}
