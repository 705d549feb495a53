package service

import (
	"alcyxob/fitness-portal/internal/cache"
	"alcyxob/fitness-portal/internal/domain"
	"alcyxob/fitness-portal/internal/metrics"
	"alcyxob/fitness-portal/internal/repository"
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const DefaultMaxSaveAttempts = 5

var (
	ErrNotToday               = errors.New("only today's completion can be undone")
	ErrConcurrentModification = errors.New("workout was modified concurrently, please retry")
)

// CompletionService marks and unmarks the days a workout was performed.
//
// A requested day is an optional YYYY-MM-DD or RFC3339 string; empty means today.
// Unparseable input fails with domain.ErrInvalidTimestamp before storage is touched.
type CompletionService interface {
	// MarkCompleted also reports whether the day was newly recorded.
	MarkCompleted(ctx context.Context, workoutID, callerID primitive.ObjectID, requested string) (*domain.Workout, bool, error)
	// Unmark also reports whether a completion entry was actually removed.
	Unmark(ctx context.Context, workoutID, callerID primitive.ObjectID, requested string) (*domain.Workout, bool, error)
}

type completionService struct {
	workoutRepo     repository.WorkoutRepository
	monthCounts     *cache.MonthCounts
	metrics         *metrics.Manager
	now             domain.Clock
	maxSaveAttempts int
}

// NewCompletionService creates a completion service. monthCounts and metricsManager may be nil.
func NewCompletionService(
	workoutRepo repository.WorkoutRepository,
	monthCounts *cache.MonthCounts,
	metricsManager *metrics.Manager,
	now domain.Clock,
	maxSaveAttempts int,
) CompletionService {
	if now == nil {
		now = time.Now
	}
	if maxSaveAttempts <= 0 {
		maxSaveAttempts = DefaultMaxSaveAttempts
	}
	return &completionService{
		workoutRepo:     workoutRepo,
		monthCounts:     monthCounts,
		metrics:         metricsManager,
		now:             now,
		maxSaveAttempts: maxSaveAttempts,
	}
}

// MarkCompleted records the requested day (or today). Any day may be marked.
func (s *completionService) MarkCompleted(ctx context.Context, workoutID, callerID primitive.ObjectID, requested string) (*domain.Workout, bool, error) {
	day, err := s.resolveDay(requested)
	if err != nil {
		return nil, false, err
	}

	workout, added, err := s.mutate(ctx, workoutID, callerID, func(w *domain.Workout) (bool, error) {
		return w.MarkCompleted(day), nil
	})
	if err != nil {
		return nil, false, err
	}

	if added && s.metrics != nil {
		s.metrics.CounterCompletionsMarked.Inc()
	}
	log.Debugf("workout %s marked completed on %s (added: %t)", workoutID.Hex(), domain.FormatDay(day), added)
	return workout, added, nil
}

// Unmark retracts the requested day, which must be today. Removing a day that was never
// recorded is not an error.
func (s *completionService) Unmark(ctx context.Context, workoutID, callerID primitive.ObjectID, requested string) (*domain.Workout, bool, error) {
	day, err := s.resolveDay(requested)
	if err != nil {
		return nil, false, err
	}
	today := domain.NormalizeDay(s.now())

	workout, removed, err := s.mutate(ctx, workoutID, callerID, func(w *domain.Workout) (bool, error) {
		if !day.Equal(today) {
			return false, ErrNotToday
		}
		return w.RemoveCompletion(day), nil
	})
	if err != nil {
		return nil, false, err
	}

	if removed && s.metrics != nil {
		s.metrics.CounterCompletionsRemoved.Inc()
	}
	log.Debugf("workout %s unmarked on %s (removed: %t)", workoutID.Hex(), domain.FormatDay(day), removed)
	return workout, removed, nil
}

func (s *completionService) resolveDay(requested string) (time.Time, error) {
	if requested == "" {
		return domain.NormalizeDay(s.now()), nil
	}
	return domain.ParseDay(requested)
}

// mutate loads the caller's workout, applies fn and saves the completion fields with a
// version check. On a version conflict the workout is reloaded and fn applied again.
func (s *completionService) mutate(
	ctx context.Context,
	workoutID, callerID primitive.ObjectID,
	fn func(w *domain.Workout) (bool, error),
) (*domain.Workout, bool, error) {
	for attempt := 1; attempt <= s.maxSaveAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, false, err
		}

		workout, err := loadOwnedWorkout(ctx, s.workoutRepo, workoutID, callerID)
		if err != nil {
			return nil, false, err
		}

		changed, err := fn(workout)
		if err != nil {
			return nil, false, err
		}

		err = s.workoutRepo.SaveCompletions(ctx, workout)
		if err == nil {
			s.monthCounts.Invalidate(workout.OwnerID)
			return workout, changed, nil
		}
		if !errors.Is(err, repository.ErrVersionConflict) {
			return nil, false, fmt.Errorf("save completions: %w", err)
		}

		if s.metrics != nil {
			s.metrics.CounterVersionConflicts.Inc()
		}
		log.Debugf("workout %s changed during save (attempt %d/%d), retrying", workoutID.Hex(), attempt, s.maxSaveAttempts)
	}

	log.Warnf("giving up on workout %s after %d conflicting saves", workoutID.Hex(), s.maxSaveAttempts)
	return nil, false, ErrConcurrentModification
}
