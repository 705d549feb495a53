package service

import (
	"alcyxob/fitness-portal/internal/cache"
	"alcyxob/fitness-portal/internal/domain"
	"alcyxob/fitness-portal/internal/repository"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrWorkoutNotFound = errors.New("workout not found")
	// ErrForbidden never says more than this; callers must not learn whether the workout exists.
	ErrForbidden      = errors.New("access denied")
	ErrInvalidWorkout = errors.New("invalid workout")
)

// WorkoutInput carries the descriptive fields a caller may set.
type WorkoutInput struct {
	Title     string
	Category  string
	Notes     string
	Exercises []domain.Exercise
}

type WorkoutService interface {
	CreateWorkout(ctx context.Context, ownerID primitive.ObjectID, input WorkoutInput) (*domain.Workout, error)
	GetWorkout(ctx context.Context, workoutID, callerID primitive.ObjectID) (*domain.Workout, error)
	ListWorkouts(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Workout, error)
	UpdateWorkout(ctx context.Context, workoutID, callerID primitive.ObjectID, input WorkoutInput) (*domain.Workout, error)
	DeleteWorkout(ctx context.Context, workoutID, callerID primitive.ObjectID) error
}

// workoutService implements the WorkoutService interface.
type workoutService struct {
	workoutRepo repository.WorkoutRepository
	monthCounts *cache.MonthCounts
	now         domain.Clock
}

// NewWorkoutService creates a new instance of workoutService. monthCounts may be nil.
func NewWorkoutService(workoutRepo repository.WorkoutRepository, monthCounts *cache.MonthCounts, now domain.Clock) WorkoutService {
	if now == nil {
		now = time.Now
	}
	return &workoutService{
		workoutRepo: workoutRepo,
		monthCounts: monthCounts,
		now:         now,
	}
}

// CreateWorkout validates input and stores a new workout for ownerID with no completions.
func (s *workoutService) CreateWorkout(ctx context.Context, ownerID primitive.ObjectID, input WorkoutInput) (*domain.Workout, error) {
	if ownerID == primitive.NilObjectID {
		return nil, errors.New("owner ID is required to create a workout")
	}

	workout := &domain.Workout{
		OwnerID:    ownerID,
		LoggedDate: domain.NormalizeDay(s.now()),
	}
	applyInput(workout, input)
	if err := workout.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWorkout, err)
	}

	workoutID, err := s.workoutRepo.Create(ctx, workout)
	if err != nil {
		return nil, fmt.Errorf("create workout: %w", err)
	}
	workout.ID = workoutID
	log.Debugf("created workout %s for owner %s", workoutID.Hex(), ownerID.Hex())
	return workout, nil
}

// GetWorkout returns the workout if callerID owns it.
func (s *workoutService) GetWorkout(ctx context.Context, workoutID, callerID primitive.ObjectID) (*domain.Workout, error) {
	return loadOwnedWorkout(ctx, s.workoutRepo, workoutID, callerID)
}

// ListWorkouts returns the owner's workouts ordered by loggedDate.
func (s *workoutService) ListWorkouts(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Workout, error) {
	workouts, err := s.workoutRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	return workouts, nil
}

// UpdateWorkout replaces the descriptive fields. Completion fields are never written here.
func (s *workoutService) UpdateWorkout(ctx context.Context, workoutID, callerID primitive.ObjectID, input WorkoutInput) (*domain.Workout, error) {
	workout, err := loadOwnedWorkout(ctx, s.workoutRepo, workoutID, callerID)
	if err != nil {
		return nil, err
	}

	applyInput(workout, input)
	if err := workout.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWorkout, err)
	}

	if err := s.workoutRepo.Update(ctx, workout); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, fmt.Errorf("update workout: %w", err)
	}
	return workout, nil
}

// DeleteWorkout removes the workout and drops the owner's cached calendar months.
func (s *workoutService) DeleteWorkout(ctx context.Context, workoutID, callerID primitive.ObjectID) error {
	workout, err := loadOwnedWorkout(ctx, s.workoutRepo, workoutID, callerID)
	if err != nil {
		return err
	}

	if err := s.workoutRepo.Delete(ctx, workout.ID, workout.OwnerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWorkoutNotFound
		}
		return fmt.Errorf("delete workout: %w", err)
	}
	s.monthCounts.Invalidate(workout.OwnerID)
	log.Debugf("deleted workout %s", workoutID.Hex())
	return nil
}

func applyInput(workout *domain.Workout, input WorkoutInput) {
	workout.Title = strings.TrimSpace(input.Title)
	workout.Category = strings.TrimSpace(input.Category)
	workout.Notes = input.Notes
	exercises := make([]domain.Exercise, len(input.Exercises))
	copy(exercises, input.Exercises)
	workout.SetExercises(exercises)
}

// loadOwnedWorkout resolves workoutID and checks that callerID owns it.
func loadOwnedWorkout(ctx context.Context, repo repository.WorkoutRepository, workoutID, callerID primitive.ObjectID) (*domain.Workout, error) {
	workout, err := repo.GetByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, fmt.Errorf("load workout: %w", err)
	}
	if workout.OwnerID != callerID {
		log.Warnf("user %s denied access to workout %s", callerID.Hex(), workoutID.Hex())
		return nil, ErrForbidden
	}
	return workout, nil
}
