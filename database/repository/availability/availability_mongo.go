package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"synkt/config"
	"synkt/database"
	"synkt/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAvailabilityRepo implements AvailabilityRepository using MongoDB.
type MongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo creates a new instance of AvailabilityRepository using MongoDB.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("availability")
	repo := &MongoAvailabilityRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes enforces uniqueness on the (userId, day) pair.
func (r *MongoAvailabilityRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "day", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetRange retrieves all availability records for the user in [start, end].
func (r *MongoAvailabilityRepo) GetRange(userID string, start, end time.Time) ([]models.DayAvailability, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"userId": userID,
		"day":    bson.M{"$gte": start, "$lte": end},
	}
	opts := options.Find().SetSort(bson.D{{Key: "day", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var records []models.DayAvailability
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode availability records: %w", err)
	}
	return records, nil
}

// Upsert creates or replaces the record for (userID, day).
func (r *MongoAvailabilityRepo) Upsert(userID string, day time.Time, busyBlocks []models.TimeBlock) (*models.DayAvailability, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if busyBlocks == nil {
		busyBlocks = []models.TimeBlock{}
	}

	now := time.Now()
	filter := bson.M{"userId": userID, "day": day}
	update := bson.M{
		"$set": bson.M{
			"busyBlocks":   busyBlocks,
			"lastSyncedAt": now,
			"updatedAt":    now,
		},
		"$setOnInsert": bson.M{
			"userId":    userID,
			"day":       day,
			"createdAt": now,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var record models.DayAvailability
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&record); err != nil {
		return nil, fmt.Errorf("failed to upsert availability for user %s on %s: %w",
			userID, day.Format("2006-01-02"), err)
	}
	return &record, nil
}
