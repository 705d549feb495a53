package mongo

import (
	"alcyxob/fitness-portal/internal/domain"
	"alcyxob/fitness-portal/internal/repository"
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const reportUploadCollectionName = "report_uploads"

// mongoReportUploadRepository implements repository.ReportUploadRepository
type mongoReportUploadRepository struct {
	collection *mongo.Collection
}

// NewMongoReportUploadRepository creates a new report upload repository backed by MongoDB.
func NewMongoReportUploadRepository(db *mongo.Database) repository.ReportUploadRepository {
	return &mongoReportUploadRepository{
		collection: db.Collection(reportUploadCollectionName),
	}
}

// Create inserts new upload metadata into the database.
func (r *mongoReportUploadRepository) Create(ctx context.Context, upload *domain.ReportUpload) (primitive.ObjectID, error) {
	if upload.OwnerID == primitive.NilObjectID || upload.S3ObjectKey == "" {
		return primitive.NilObjectID, errors.New("report upload requires ownerId and s3ObjectKey")
	}

	upload.ID = primitive.NewObjectID()
	if upload.UploadedAt.IsZero() {
		upload.UploadedAt = time.Now().UTC()
	}

	result, err := r.collection.InsertOne(ctx, upload)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, repository.ErrDuplicateKey
		}
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// ListByOwner returns the owner's uploads, newest first.
func (r *mongoReportUploadRepository) ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]domain.ReportUpload, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "uploadedAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"ownerId": ownerID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	uploads := []domain.ReportUpload{}
	if err = cursor.All(ctx, &uploads); err != nil {
		return nil, err
	}
	return uploads, nil
}

// EnsureReportUploadIndexes creates necessary indexes for the report_uploads collection.
func EnsureReportUploadIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "ownerId", Value: 1}, {Key: "uploadedAt", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "s3ObjectKey", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Warnf("failed to create indexes for collection %s: %s", collection.Name(), err)
	}
}
