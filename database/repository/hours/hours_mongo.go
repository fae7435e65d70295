package hoursRepo

import (
	"context"
	"fmt"
	"time"

	"brewdesk/database"
	"brewdesk/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoHoursRepo implements HoursRepository using MongoDB.
type MongoHoursRepo struct {
	coll *mongo.Collection
}

// NewMongoHoursRepo creates a new instance of HoursRepository using MongoDB.
func NewMongoHoursRepo() HoursRepository {
	repo := &MongoHoursRepo{coll: database.Collection("daily_hours")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoHoursRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{
			Keys:    bson.D{{Key: "business_id", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Upsert creates or replaces the hours record for (businessID, date).
func (r *MongoHoursRepo) Upsert(hours *models.DailyHours) (*models.DailyHours, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"business_id": hours.BusinessID, "date": hours.Date}
	update := bson.M{
		"$set": bson.M{
			"open_time":  hours.OpenTime,
			"close_time": hours.CloseTime,
		},
		"$setOnInsert": bson.M{
			"id":          uuid.New().String(),
			"business_id": hours.BusinessID,
			"date":        hours.Date,
			"created_at":  time.Now(),
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var stored models.DailyHours
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&stored); err != nil {
		return nil, fmt.Errorf("failed to upsert hours for business %s on %s: %w", hours.BusinessID, hours.Date, err)
	}
	return &stored, nil
}

// Get retrieves the hours a business publishes for one date.
func (r *MongoHoursRepo) Get(businessID, date string) (*models.DailyHours, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var hours models.DailyHours
	filter := bson.M{"business_id": businessID, "date": date}
	if err := r.coll.FindOne(ctx, filter).Decode(&hours); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch hours for business %s on %s: %w", businessID, date, err)
	}
	return &hours, nil
}

// Delete clears the hours record for (businessID, date). Deleting hours that
// were never set is not an error.
func (r *MongoHoursRepo) Delete(businessID, date string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"business_id": businessID, "date": date}
	if _, err := r.coll.DeleteOne(ctx, filter); err != nil {
		return fmt.Errorf("failed to delete hours for business %s on %s: %w", businessID, date, err)
	}
	return nil
}

// GetDatesInRange returns the calendar dates with published hours within
// [startDate, endDate], ascending. Lexicographic comparison is correct for
// the "YYYY-MM-DD" form.
func (r *MongoHoursRepo) GetDatesInRange(businessID, startDate, endDate string) ([]string, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"business_id": businessID,
		"date":        bson.M{"$gte": startDate, "$lte": endDate},
	}
	opts := options.Find().
		SetProjection(bson.M{"date": 1}).
		SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve available dates for business %s: %w", businessID, err)
	}
	defer cursor.Close(ctx)

	var dates []string
	for cursor.Next(ctx) {
		var doc struct {
			Date string `bson:"date"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode hours date: %w", err)
		}
		dates = append(dates, doc.Date)
	}
	return dates, nil
}
