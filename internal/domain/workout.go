package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/multierr"
)

// Exercise is a single entry of a workout. Duration is in minutes.
type Exercise struct {
	Name     string  `bson:"name" json:"name"`
	Sets     int     `bson:"sets,omitempty" json:"sets,omitempty"`
	Reps     int     `bson:"reps,omitempty" json:"reps,omitempty"`
	Weight   float64 `bson:"weight,omitempty" json:"weight,omitempty"` // kg
	Duration int     `bson:"duration,omitempty" json:"duration,omitempty"`
}

// Workout is owned by exactly one account.
//
// Completions holds one UTC-midnight day per calendar day the workout was performed.
// Completed and CompletedAt are the older scalar summary of the same fact, still read by
// older report consumers, and are kept in sync by MarkCompleted and RemoveCompletion.
type Workout struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID       primitive.ObjectID `bson:"ownerId" json:"ownerId"`
	Title         string             `bson:"title" json:"title"`
	Exercises     []Exercise         `bson:"exercises" json:"exercises"`
	Category      string             `bson:"category,omitempty" json:"category,omitempty"`
	Notes         string             `bson:"notes,omitempty" json:"notes,omitempty"`
	TotalDuration int                `bson:"totalDuration" json:"totalDuration"`
	LoggedDate    time.Time          `bson:"loggedDate" json:"loggedDate"`

	Completions []time.Time `bson:"completions" json:"completions"`
	Completed   bool        `bson:"completed" json:"completed"`
	CompletedAt *time.Time  `bson:"completedAt" json:"completedAt"`

	// Version is bumped by every completion save; see repository.ErrVersionConflict.
	Version int64 `bson:"version" json:"-"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

var ErrNoExercises = errors.New("at least one exercise is required")

// SetExercises replaces the exercise list and recomputes TotalDuration.
// TotalDuration has no other writer.
func (w *Workout) SetExercises(exercises []Exercise) {
	w.Exercises = exercises
	total := 0
	for _, ex := range exercises {
		total += ex.Duration
	}
	w.TotalDuration = total
}

// Validate checks the fields a workout must carry at creation. Every violation is reported.
func (w *Workout) Validate() error {
	var err error
	if strings.TrimSpace(w.Title) == "" {
		err = multierr.Append(err, errors.New("title is required"))
	}
	if len(w.Exercises) == 0 {
		err = multierr.Append(err, ErrNoExercises)
	}
	for i, ex := range w.Exercises {
		if strings.TrimSpace(ex.Name) == "" {
			err = multierr.Append(err, fmt.Errorf("exercise %d: name is required", i+1))
		}
		if ex.Sets < 0 || ex.Reps < 0 || ex.Weight < 0 || ex.Duration < 0 {
			err = multierr.Append(err, fmt.Errorf("exercise %d: sets, reps, weight and duration must not be negative", i+1))
		}
	}
	return err
}

// HasCompletion reports whether day is already recorded in Completions.
func (w *Workout) HasCompletion(day time.Time) bool {
	for _, c := range w.Completions {
		if SameDay(c, day) {
			return true
		}
	}
	return false
}

// MarkCompleted records day as performed. The day is appended only when absent, but the
// legacy pair is overwritten on every call, so CompletedAt reflects the latest call rather
// than the latest day. Returns whether a new entry was appended.
func (w *Workout) MarkCompleted(day time.Time) bool {
	day = NormalizeDay(day)
	added := false
	if !w.HasCompletion(day) {
		w.Completions = append(w.Completions, day)
		added = true
	}
	w.Completed = true
	w.CompletedAt = &day
	return added
}

// RemoveCompletion drops every entry on day's calendar day and clears CompletedAt when it
// points at the same day. Completed is cleared only once nothing else records a completion.
// Returns whether any entry was removed.
func (w *Workout) RemoveCompletion(day time.Time) bool {
	kept := make([]time.Time, 0, len(w.Completions))
	removed := false
	for _, c := range w.Completions {
		if SameDay(c, day) {
			removed = true
			continue
		}
		kept = append(kept, c)
	}
	w.Completions = kept

	if w.CompletedAt != nil && SameDay(*w.CompletedAt, day) {
		w.CompletedAt = nil
	}
	if len(w.Completions) == 0 && w.CompletedAt == nil {
		w.Completed = false
	}
	return removed
}

// CompletionDays returns the normalized, deduplicated union of Completions and CompletedAt
// in ascending order. A workout counts at most once per day.
func (w *Workout) CompletionDays() []time.Time {
	seen := make(map[time.Time]struct{}, len(w.Completions)+1)
	days := make([]time.Time, 0, len(w.Completions)+1)
	add := func(t time.Time) {
		d := NormalizeDay(t)
		if _, ok := seen[d]; ok {
			return
		}
		seen[d] = struct{}{}
		days = append(days, d)
	}
	for _, c := range w.Completions {
		add(c)
	}
	if w.CompletedAt != nil {
		add(*w.CompletedAt)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}
