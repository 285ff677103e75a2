package groupRepo

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

// MongoGroupRepo implements GroupRepository using MongoDB.
type MongoGroupRepo struct {
	coll *mongo.Collection
}

// NewMongoGroupRepo creates a new instance of GroupRepository using MongoDB.
func NewMongoGroupRepo() GroupRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("groups")
	repo := &MongoGroupRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoGroupRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "members.userId", Value: 1}}},
		{Keys: bson.D{{Key: "createdBy", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a group by its unique ID.
func (r *MongoGroupRepo) GetByID(id string) (*models.Group, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var group models.Group
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&group); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch group with id %s: %w", id, err)
	}
	return &group, nil
}

// GetByUserID retrieves all groups the user created or belongs to.
func (r *MongoGroupRepo) GetByUserID(userID string) ([]models.Group, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"$or": []bson.M{
			{"createdBy": userID},
			{"members.userId": userID},
		},
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve groups for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var groups []models.Group
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, fmt.Errorf("failed to decode groups: %w", err)
	}
	return groups, nil
}

// Create inserts a new group document.
func (r *MongoGroupRepo) Create(group *models.Group) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	group.CreatedAt = now
	group.UpdatedAt = now
	group.Version = 1

	_, err := r.coll.InsertOne(ctx, group)
	if err != nil {
		return fmt.Errorf("failed to create group: %w", err)
	}
	return nil
}

// Update persists the group using its version as an optimistic lock.
// The filter matches the version the caller read; a concurrent writer
// bumps it first and this write then matches nothing.
func (r *MongoGroupRepo) Update(group *models.Group) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	readVersion := group.Version
	group.UpdatedAt = time.Now()
	group.Version = readVersion + 1

	filter := bson.M{"id": group.ID, "version": readVersion}
	update := bson.M{"$set": group}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		group.Version = readVersion
		return fmt.Errorf("failed to update group with id %s: %w", group.ID, err)
	}
	if result.MatchedCount == 0 {
		group.Version = readVersion
		return fmt.Errorf("failed to update group with id %s: %w", group.ID, ErrVersionConflict)
	}
	return nil
}

// Delete removes a group document by its ID.
func (r *MongoGroupRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete group with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("group with id %s not found", id)
	}
	return nil
}
