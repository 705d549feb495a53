package repository

import (
	"alcyxob/fitness-portal/internal/domain"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicateKey = RepositoryError("duplicate key")
	// ErrVersionConflict means the document changed between load and save.
	ErrVersionConflict = RepositoryError("version conflict")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with account data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
}

// WorkoutRepository defines the interface for interacting with workout data.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error)
	// ListByOwner returns all of the owner's workouts ordered by loggedDate.
	ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Workout, error)
	// ListCompletedBetween returns the owner's workouts with at least one completion or a
	// legacy completedAt in [from, to), ordered by loggedDate. from and to are UTC midnights.
	ListCompletedBetween(ctx context.Context, ownerID primitive.ObjectID, from, to time.Time) ([]domain.Workout, error)
	// Update writes the descriptive fields only; completion fields are left untouched.
	Update(ctx context.Context, workout *domain.Workout) error
	// SaveCompletions writes completions and the legacy pair if the stored version still
	// equals workout.Version, then increments it. Returns ErrVersionConflict otherwise.
	SaveCompletions(ctx context.Context, workout *domain.Workout) error
	Delete(ctx context.Context, workoutID, ownerID primitive.ObjectID) error
}

// ReportUploadRepository indexes the reports exported to object storage.
type ReportUploadRepository interface {
	Create(ctx context.Context, upload *domain.ReportUpload) (primitive.ObjectID, error)
	// ListByOwner returns the owner's uploads, newest first.
	ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]domain.ReportUpload, error)
}
