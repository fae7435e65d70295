package deskRepo

import (
	"context"
	"fmt"
	"time"

	"brewdesk/database"
	"brewdesk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDeskRepo implements DeskRepository using MongoDB.
type MongoDeskRepo struct {
	coll *mongo.Collection
}

// NewMongoDeskRepo creates a new instance of DeskRepository using MongoDB.
func NewMongoDeskRepo() DeskRepository {
	repo := &MongoDeskRepo{coll: database.Collection("desks")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoDeskRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "business_id", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new desk document.
func (r *MongoDeskRepo) Create(desk *models.Desk) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	desk.CreatedAt = now
	desk.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, desk); err != nil {
		return fmt.Errorf("failed to create desk: %w", err)
	}
	return nil
}

// Update modifies an existing desk document.
func (r *MongoDeskRepo) Update(desk *models.Desk) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	desk.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": desk.ID}, bson.M{"$set": desk})
	if err != nil {
		return fmt.Errorf("failed to update desk with id %s: %w", desk.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("desk with id %s not found", desk.ID)
	}
	return nil
}

// Delete removes a desk document by its ID.
func (r *MongoDeskRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete desk with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("desk with id %s not found", id)
	}
	return nil
}

// GetByID retrieves a desk by its unique ID.
func (r *MongoDeskRepo) GetByID(id string) (*models.Desk, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var desk models.Desk
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&desk); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch desk with id %s: %w", id, err)
	}
	return &desk, nil
}

// GetByBusinessID retrieves all desks for a business, oldest first.
func (r *MongoDeskRepo) GetByBusinessID(businessID string) ([]models.Desk, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"business_id": businessID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve desks for business %s: %w", businessID, err)
	}
	defer cursor.Close(ctx)

	var desks []models.Desk
	for cursor.Next(ctx) {
		var d models.Desk
		if err := cursor.Decode(&d); err != nil {
			return nil, fmt.Errorf("failed to decode desk: %w", err)
		}
		desks = append(desks, d)
	}
	return desks, nil
}
