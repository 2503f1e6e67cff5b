package services

import (
	"math"
	"time"
)

const week = 7 * 24 * time.Hour

// WeekMarker is one rendered week of the project timeline. End is the
// sixth day after Start, matching the displayed "Sep 1 - Sep 7" span.
type WeekMarker struct {
	Week    int       `json:"week"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Current bool      `json:"current"`
}

// WeeksSince returns the number of elapsed whole weeks, rounded up. Zero or
// negative when now is on or before the start date.
func WeeksSince(start, now time.Time) int {
	return int(math.Ceil(float64(now.Sub(start)) / float64(week)))
}

// BuildTimeline computes one marker per elapsed week. It is a pure function
// of the two dates and must be recomputed per request; "now" moves. By
// construction now always falls inside the last week's (start, start+7d]
// span, so exactly one marker is flagged current whenever any exist.
func BuildTimeline(start, now time.Time) []WeekMarker {
	total := WeeksSince(start, now)
	if total < 1 {
		return nil
	}
	out := make([]WeekMarker, 0, total)
	for i := 1; i <= total; i++ {
		weekStart := start.Add(time.Duration(i-1) * week)
		out = append(out, WeekMarker{
			Week:    i,
			Start:   weekStart,
			End:     weekStart.Add(6 * 24 * time.Hour),
			Current: now.After(weekStart) && !now.After(weekStart.Add(week)),
		})
	}
	return out
}
