// Package calendar derives per-day completion views from a set of workouts.
// Nothing here touches storage; callers load the owner's workouts first.
package calendar

import (
	"sort"
	"time"

	"alcyxob/fitness-portal/internal/domain"
)

// DayCount is the number of distinct workouts completed on Day.
type DayCount struct {
	Day   time.Time `json:"day"`
	Count int       `json:"count"`
}

// Entry pairs a completion day with the workout completed on it.
type Entry struct {
	Day     time.Time
	Workout domain.Workout
}

// EntriesBetween returns every (day, workout) pair with day in [from, to), ordered by day,
// then by the workout's LoggedDate, then by title.
func EntriesBetween(workouts []domain.Workout, from, to time.Time) []Entry {
	from, to = domain.NormalizeDay(from), domain.NormalizeDay(to)
	var entries []Entry
	for _, w := range workouts {
		for _, d := range w.CompletionDays() {
			if d.Before(from) || !d.Before(to) {
				continue
			}
			entries = append(entries, Entry{Day: d, Workout: w})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.Day.Equal(b.Day) {
			return a.Day.Before(b.Day)
		}
		if !a.Workout.LoggedDate.Equal(b.Workout.LoggedDate) {
			return a.Workout.LoggedDate.Before(b.Workout.LoggedDate)
		}
		return a.Workout.Title < b.Workout.Title
	})
	return entries
}

// MonthEntries is EntriesBetween over the calendar month.
func MonthEntries(workouts []domain.Workout, year int, month time.Month) []Entry {
	from, to := domain.MonthRange(year, month)
	return EntriesBetween(workouts, from, to)
}

// CountByDay groups entries by day. Days without entries are omitted; the result is
// ascending by day regardless of input order.
func CountByDay(entries []Entry) []DayCount {
	counts := make(map[time.Time]int)
	for _, e := range entries {
		counts[domain.NormalizeDay(e.Day)]++
	}
	result := make([]DayCount, 0, len(counts))
	for d, n := range counts {
		result = append(result, DayCount{Day: d, Count: n})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Day.Before(result[j].Day) })
	return result
}

// MonthlyCounts returns the sparse per-day completion counts of the month.
func MonthlyCounts(workouts []domain.Workout, year int, month time.Month) []DayCount {
	return CountByDay(MonthEntries(workouts, year, month))
}

// WorkoutsOn returns the workouts completed on day, ordered by LoggedDate.
func WorkoutsOn(workouts []domain.Workout, day time.Time) []domain.Workout {
	from := domain.NormalizeDay(day)
	entries := EntriesBetween(workouts, from, from.AddDate(0, 0, 1))
	result := make([]domain.Workout, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.Workout)
	}
	return result
}
