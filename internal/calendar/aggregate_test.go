package calendar

import (
	"testing"
	"time"

	"alcyxob/fitness-portal/internal/domain"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func workout(title string, logged time.Time, completions ...time.Time) domain.Workout {
	return domain.Workout{
		ID:          primitive.NewObjectID(),
		Title:       title,
		LoggedDate:  logged,
		Completions: completions,
		Completed:   len(completions) > 0,
	}
}

func TestMonthlyCounts_Scenario(t *testing.T) {
	w := workout("Morning run", day(2024, 3, 1))
	w.MarkCompleted(day(2024, 3, 5))

	counts := MonthlyCounts([]domain.Workout{w}, 2024, time.March)
	require.Len(t, counts, 1)
	assert.Equal(t, DayCount{Day: day(2024, 3, 5), Count: 1}, counts[0])
}

func TestMonthlyCounts_GroupsAcrossWorkouts(t *testing.T) {
	legacy := time.Date(2024, 3, 7, 18, 0, 0, 0, time.UTC)
	a := workout("A", day(2024, 1, 1), day(2024, 3, 7), day(2024, 3, 1))
	a.CompletedAt = &legacy // same day as an array entry, counted once
	b := workout("B", day(2024, 1, 2), time.Date(2024, 3, 7, 9, 0, 0, 0, time.UTC), day(2024, 4, 1))
	legacyOnly := day(2024, 3, 20)
	c := workout("C", day(2024, 1, 3))
	c.Completed, c.CompletedAt = true, &legacyOnly
	d := workout("D", day(2024, 1, 4), day(2024, 2, 29))

	counts := MonthlyCounts([]domain.Workout{a, b, c, d}, 2024, time.March)
	assert.Equal(t, []DayCount{
		{Day: day(2024, 3, 1), Count: 1},
		{Day: day(2024, 3, 7), Count: 2},
		{Day: day(2024, 3, 20), Count: 1},
	}, counts)
}

func TestMonthlyCounts_HalfOpenInterval(t *testing.T) {
	w := workout("edge", day(2024, 1, 1),
		time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC),
		day(2024, 3, 1),
		day(2024, 3, 31),
		day(2024, 4, 1),
	)
	counts := MonthlyCounts([]domain.Workout{w}, 2024, time.March)
	require.Len(t, counts, 2)
	assert.Equal(t, day(2024, 3, 1), counts[0].Day)
	assert.Equal(t, day(2024, 3, 31), counts[1].Day)
}

func TestMonthlyCounts_Empty(t *testing.T) {
	assert.Empty(t, MonthlyCounts(nil, 2024, time.March))
	assert.Empty(t, MonthlyCounts([]domain.Workout{workout("idle", day(2024, 3, 1))}, 2024, time.March))
}

func TestWorkoutsOn_SortedByLoggedDate(t *testing.T) {
	target := day(2024, 3, 5)
	late := workout("late", day(2024, 3, 4), target)
	early := workout("early", day(2024, 2, 1), time.Date(2024, 3, 5, 22, 0, 0, 0, time.UTC))
	other := workout("other", day(2024, 1, 1), day(2024, 3, 6))
	legacyAt := time.Date(2024, 3, 5, 7, 0, 0, 0, time.UTC)
	legacy := workout("legacy", day(2024, 3, 1))
	legacy.Completed, legacy.CompletedAt = true, &legacyAt

	got := WorkoutsOn([]domain.Workout{late, other, early, legacy}, target)
	require.Len(t, got, 3)
	assert.Equal(t, "early", got[0].Title)
	assert.Equal(t, "legacy", got[1].Title)
	assert.Equal(t, "late", got[2].Title)
}

func TestMonthEntries_OrderedByDayThenLoggedDate(t *testing.T) {
	a := workout("a", day(2024, 2, 10), day(2024, 3, 9), day(2024, 3, 2))
	b := workout("b", day(2024, 2, 1), day(2024, 3, 9))

	entries := MonthEntries([]domain.Workout{a, b}, 2024, time.March)
	require.Len(t, entries, 3)
	assert.Equal(t, day(2024, 3, 2), entries[0].Day)
	assert.Equal(t, "a", entries[0].Workout.Title)
	assert.Equal(t, "b", entries[1].Workout.Title)
	assert.Equal(t, "a", entries[2].Workout.Title)
}

// Properties checked against randomly generated owners: the month's counts sum to the
// number of distinct (workout, day) pairs in the month, and each day lists exactly the
// workouts that record it.
func TestAggregation_ConsistencyProperties(t *testing.T) {
	faker := gofakeit.New(20240305)
	from, to := domain.MonthRange(2024, time.March)

	for round := 0; round < 25; round++ {
		var workouts []domain.Workout
		numWorkouts := faker.Number(0, 12)
		for i := 0; i < numWorkouts; i++ {
			w := workout(faker.Sentence(3), day(2024, 1, 1).AddDate(0, 0, faker.Number(0, 90)))
			numDays := faker.Number(0, 8)
			for j := 0; j < numDays; j++ {
				ts := day(2024, 2, 15).Add(time.Duration(faker.Number(0, 45*24*60)) * time.Minute)
				if faker.Bool() {
					w.MarkCompleted(ts)
				} else {
					// raw, un-normalized legacy entry
					w.Completions = append(w.Completions, ts)
				}
			}
			workouts = append(workouts, w)
		}

		type pair struct {
			id  primitive.ObjectID
			day time.Time
		}
		pairs := make(map[pair]struct{})
		for _, w := range workouts {
			raw := append([]time.Time{}, w.Completions...)
			if w.CompletedAt != nil {
				raw = append(raw, *w.CompletedAt)
			}
			for _, ts := range raw {
				d := domain.NormalizeDay(ts)
				if !d.Before(from) && d.Before(to) {
					pairs[pair{w.ID, d}] = struct{}{}
				}
			}
		}

		counts := MonthlyCounts(workouts, 2024, time.March)
		sum := 0
		for i, c := range counts {
			assert.Positive(t, c.Count)
			if i > 0 {
				assert.True(t, counts[i-1].Day.Before(c.Day))
			}
			sum += c.Count

			onDay := WorkoutsOn(workouts, c.Day)
			assert.Len(t, onDay, c.Count)
			for _, w := range onDay {
				_, ok := pairs[pair{w.ID, c.Day}]
				assert.True(t, ok)
			}
		}
		assert.Equal(t, len(pairs), sum)
	}
}
