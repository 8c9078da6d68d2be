// Package stats holds pure aggregation functions over a session log snapshot.
package stats

import (
	"fmt"
	"sort"
	"time"

	"focustree/internal/core/model"
)

// DayTotal is the summed focus minutes for one calendar day.
type DayTotal struct {
	Day     time.Time
	Label   string
	Minutes int
}

// DurationCount is how many sessions were completed with a given duration.
type DurationCount struct {
	Minutes int
	Label   string
	Count   int
}

// Streak returns the length of the consecutive-day run of completions ending
// today. Multiple sessions on one day count once; a day without a session
// today means no active streak.
func Streak(completions []time.Time, today time.Time) int {
	days := make(map[string]bool, len(completions))
	for _, completedAt := range completions {
		days[dayKey(completedAt)] = true
	}

	if !days[dayKey(today)] {
		return 0
	}

	streak := 1
	for day := today.AddDate(0, 0, -1); days[dayKey(day)]; day = day.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}

// DailyMinutes buckets focus minutes per calendar day over the window of
// `days` days ending today, oldest first. Days without sessions appear with
// zero minutes so charts keep a fixed axis.
func DailyMinutes(sessions []model.Session, today time.Time, days int) []DayTotal {
	if days <= 0 {
		return nil
	}

	totals := make([]DayTotal, 0, days)
	index := make(map[string]int, days)
	for i := days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		index[dayKey(day)] = len(totals)
		totals = append(totals, DayTotal{Day: day, Label: day.Format("Mon")})
	}

	for _, session := range sessions {
		if i, ok := index[dayKey(session.CompletedAt)]; ok {
			totals[i].Minutes += session.DurationMinutes
		}
	}
	return totals
}

// DurationDistribution counts sessions per distinct duration and returns the
// `top` most frequent, most frequent first.
func DurationDistribution(sessions []model.Session, top int) []DurationCount {
	counts := make(map[int]int)
	for _, session := range sessions {
		counts[session.DurationMinutes]++
	}

	distribution := make([]DurationCount, 0, len(counts))
	for minutes, count := range counts {
		distribution = append(distribution, DurationCount{
			Minutes: minutes,
			Label:   fmt.Sprintf("%d min", minutes),
			Count:   count,
		})
	}
	sort.Slice(distribution, func(i, j int) bool {
		if distribution[i].Count != distribution[j].Count {
			return distribution[i].Count > distribution[j].Count
		}
		return distribution[i].Minutes < distribution[j].Minutes
	})

	if top > 0 && len(distribution) > top {
		distribution = distribution[:top]
	}
	return distribution
}

// AverageMinutes returns the mean session duration, rounded to the nearest
// minute, or zero for an empty log.
func AverageMinutes(sessions []model.Session) int {
	if len(sessions) == 0 {
		return 0
	}
	total := 0
	for _, session := range sessions {
		total += session.DurationMinutes
	}
	return (total + len(sessions)/2) / len(sessions)
}

// CompletionTimes projects the completion timestamps out of a session list.
func CompletionTimes(sessions []model.Session) []time.Time {
	times := make([]time.Time, 0, len(sessions))
	for _, session := range sessions {
		times = append(times, session.CompletedAt)
	}
	return times
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
