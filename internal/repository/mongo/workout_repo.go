// internal/repository/mongo/workout_repo.go
package mongo

import (
	"alcyxob/fitness-portal/internal/domain"
	"alcyxob/fitness-portal/internal/repository"
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const workoutCollectionName = "workouts"

// mongoWorkoutRepository implements repository.WorkoutRepository
type mongoWorkoutRepository struct {
	collection *mongo.Collection
	now        func() time.Time
}

// NewMongoWorkoutRepository creates a new Workout repository.
func NewMongoWorkoutRepository(db *mongo.Database) repository.WorkoutRepository {
	return &mongoWorkoutRepository{
		collection: db.Collection(workoutCollectionName),
		now:        time.Now,
	}
}

// Create inserts a new workout with an empty completion history.
func (r *mongoWorkoutRepository) Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error) {
	if workout.OwnerID == primitive.NilObjectID || workout.Title == "" {
		return primitive.NilObjectID, errors.New("workout requires ownerId and title")
	}
	workout.ID = primitive.NewObjectID()
	now := r.now().UTC()
	workout.CreatedAt = now
	workout.UpdatedAt = now
	if workout.LoggedDate.IsZero() {
		workout.LoggedDate = domain.NormalizeDay(now)
	}
	if workout.Completions == nil {
		workout.Completions = []time.Time{}
	}
	workout.Version = 0

	result, err := r.collection.InsertOne(ctx, workout)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert workout: %w", err)
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted workout ID")
	}
	return insertedID, nil
}

// GetByID retrieves a single workout by its ID.
func (r *mongoWorkoutRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error) {
	var workout domain.Workout
	filter := bson.M{"_id": id}
	err := r.collection.FindOne(ctx, filter).Decode(&workout)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &workout, nil
}

// ListByOwner retrieves all workouts of an owner, oldest logged first.
func (r *mongoWorkoutRepository) ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Workout, error) {
	return r.find(ctx, bson.M{"ownerId": ownerID})
}

// ListCompletedBetween narrows the owner's workouts to those with a raw completion value
// in [from, to). Normalizing to a UTC day never moves a value across a midnight boundary,
// so this matches exactly the workouts whose normalized days fall in the interval.
func (r *mongoWorkoutRepository) ListCompletedBetween(ctx context.Context, ownerID primitive.ObjectID, from, to time.Time) ([]domain.Workout, error) {
	between := bson.M{"$gte": from.UTC(), "$lt": to.UTC()}
	filter := bson.M{
		"ownerId": ownerID,
		"$or": bson.A{
			bson.M{"completions": bson.M{"$elemMatch": between}},
			bson.M{"completedAt": between},
		},
	}
	return r.find(ctx, filter)
}

func (r *mongoWorkoutRepository) find(ctx context.Context, filter bson.M) ([]domain.Workout, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "loggedDate", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	workouts := []domain.Workout{}
	if err = cursor.All(ctx, &workouts); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return workouts, nil
}

// Update writes the descriptive fields. OwnerID, LoggedDate and the completion fields are
// never changed here.
func (r *mongoWorkoutRepository) Update(ctx context.Context, workout *domain.Workout) error {
	if workout.ID == primitive.NilObjectID {
		return errors.New("workout ID is required for update")
	}

	now := r.now().UTC()
	filter := bson.M{"_id": workout.ID, "ownerId": workout.OwnerID}
	updateDoc := bson.M{
		"$set": bson.M{
			"title":         workout.Title,
			"exercises":     workout.Exercises,
			"totalDuration": workout.TotalDuration,
			"category":      workout.Category,
			"notes":         workout.Notes,
			"updatedAt":     now,
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, updateDoc)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	workout.UpdatedAt = now
	return nil
}

// SaveCompletions is a compare-and-set on the version field. Documents written before the
// field existed are treated as version 0.
func (r *mongoWorkoutRepository) SaveCompletions(ctx context.Context, workout *domain.Workout) error {
	if workout.ID == primitive.NilObjectID {
		return errors.New("workout ID is required for update")
	}

	filter := bson.M{"_id": workout.ID, "ownerId": workout.OwnerID}
	if workout.Version == 0 {
		filter["$or"] = bson.A{
			bson.M{"version": 0},
			bson.M{"version": bson.M{"$exists": false}},
		}
	} else {
		filter["version"] = workout.Version
	}

	completions := workout.Completions
	if completions == nil {
		completions = []time.Time{}
	}
	now := r.now().UTC()
	updateDoc := bson.M{
		"$set": bson.M{
			"completions": completions,
			"completed":   workout.Completed,
			"completedAt": workout.CompletedAt,
			"updatedAt":   now,
		},
		"$inc": bson.M{"version": 1},
	}

	result, err := r.collection.UpdateOne(ctx, filter, updateDoc)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrVersionConflict
	}
	workout.Version++
	workout.UpdatedAt = now
	return nil
}

// Delete removes a workout owned by ownerID.
func (r *mongoWorkoutRepository) Delete(ctx context.Context, workoutID, ownerID primitive.ObjectID) error {
	if workoutID == primitive.NilObjectID || ownerID == primitive.NilObjectID {
		return errors.New("workout ID and owner ID are required for deletion")
	}

	filter := bson.M{
		"_id":     workoutID,
		"ownerId": ownerID,
	}

	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureWorkoutIndexes creates necessary indexes. Call during startup.
func EnsureWorkoutIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "ownerId", Value: 1}, {Key: "loggedDate", Value: 1}},
			Options: options.Index(),
		},
		{
			// calendar range scans
			Keys:    bson.D{{Key: "ownerId", Value: 1}, {Key: "completions", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "ownerId", Value: 1}, {Key: "completedAt", Value: 1}},
			Options: options.Index(),
		},
	}
	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Warnf("failed to create indexes for collection %s: %s", collection.Name(), err)
	}
}
