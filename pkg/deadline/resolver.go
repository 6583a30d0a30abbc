// Package deadline turns the small set of relative-date phrases that show up
// in meeting action items ("Friday", "next Tuesday", "tomorrow", "next week")
// into absolute timestamps.
package deadline

import (
	"strings"
	"time"
)

// NotSpecified is the placeholder the extractors use for an unknown value.
const NotSpecified = "Not specified"

// DueHour is the local hour of day every resolved deadline lands on.
const DueHour = 17

type weekdayKeyword struct {
	name string
	day  time.Weekday
}

// Checked in this order; the first keyword found in the phrase wins.
// Saturday and Sunday are intentionally absent.
var weekdayKeywords = []weekdayKeyword{
	{"friday", time.Friday},
	{"thursday", time.Thursday},
	{"tuesday", time.Tuesday},
	{"monday", time.Monday},
	{"wednesday", time.Wednesday},
}

// Resolve converts phrase into an absolute deadline anchored to now.
//
// The boolean is false when the phrase carries no deadline we recognise,
// including an empty phrase, "null" and NotSpecified. That is not an error:
// callers store the task without a deadline.
//
// Matching is substring based. Phrases containing several keywords resolve to
// whichever comes first in the priority order weekday > "next week" >
// "tomorrow", so "next Friday, not tomorrow" resolves to a Friday.
func Resolve(phrase string, now time.Time) (time.Time, bool) {
	p := strings.ToLower(strings.TrimSpace(phrase))
	if p == "" || p == "null" || p == strings.ToLower(NotSpecified) {
		return time.Time{}, false
	}

	for _, wk := range weekdayKeywords {
		if !strings.Contains(p, wk.name) {
			continue
		}
		days := daysUntil(now.Weekday(), wk.day)
		if strings.Contains(p, "next "+wk.name) {
			days += 7
		}
		return atDueHour(now, days), true
	}

	if strings.Contains(p, "next week") {
		return atDueHour(now, 7), true
	}

	if strings.Contains(p, "tomorrow") {
		return atDueHour(now, 1), true
	}

	return time.Time{}, false
}

// ResolvePtr is Resolve for callers that store optional deadlines as pointers.
func ResolvePtr(phrase *string, now time.Time) *time.Time {
	if phrase == nil {
		return nil
	}
	t, ok := Resolve(*phrase, now)
	if !ok {
		return nil
	}
	return &t
}

// daysUntil returns how many days ahead the next target weekday is.
// Today never counts: the same weekday is a full week away.
func daysUntil(from, target time.Weekday) int {
	days := (int(target) - int(from) + 7) % 7
	if days == 0 {
		days = 7
	}
	return days
}

func atDueHour(now time.Time, days int) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d+days, DueHour, 0, 0, 0, now.Location())
}
