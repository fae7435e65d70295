package reservationRepo

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

// MongoReservationRepo implements ReservationRepository using MongoDB.
type MongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo creates a new instance of ReservationRepository using MongoDB.
func NewMongoReservationRepo() ReservationRepository {
	repo := &MongoReservationRepo{coll: database.Collection("reservations")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoReservationRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "desk_id", Value: 1}, {Key: "date", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "business_id", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// overlapFilter matches non-cancelled reservations for the desk/date whose
// half-open [start_time, end_time) range overlaps [startTime, endTime).
// Zero-padded "HH:MM:SS" strings compare correctly lexicographically.
func overlapFilter(deskID, date, startTime, endTime string) bson.M {
	return bson.M{
		"desk_id":    deskID,
		"date":       date,
		"status":     bson.M{"$ne": models.ReservationStatusCancelled},
		"start_time": bson.M{"$lt": endTime},
		"end_time":   bson.M{"$gt": startTime},
	}
}

// GetByID retrieves a reservation by its unique ID.
func (r *MongoReservationRepo) GetByID(id string) (*models.Reservation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var reservation models.Reservation
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&reservation); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch reservation with id %s: %w", id, err)
	}
	return &reservation, nil
}

func (r *MongoReservationRepo) findAll(filter bson.M, sort bson.D) ([]models.Reservation, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(sort)
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var reservations []models.Reservation
	for cursor.Next(ctx) {
		var res models.Reservation
		if err := cursor.Decode(&res); err != nil {
			return nil, fmt.Errorf("failed to decode reservation: %w", err)
		}
		reservations = append(reservations, res)
	}
	return reservations, nil
}

// GetByUserID retrieves all reservations made by a user, newest date first.
func (r *MongoReservationRepo) GetByUserID(userID string) ([]models.Reservation, error) {
	return r.findAll(bson.M{"user_id": userID}, bson.D{{Key: "date", Value: -1}})
}

// GetByBusinessID retrieves all reservations at a business, newest date first.
func (r *MongoReservationRepo) GetByBusinessID(businessID string) ([]models.Reservation, error) {
	return r.findAll(bson.M{"business_id": businessID}, bson.D{{Key: "date", Value: -1}})
}

// GetForDeskOnDate retrieves the non-cancelled reservations for one desk and date.
func (r *MongoReservationRepo) GetForDeskOnDate(deskID, date string) ([]models.Reservation, error) {
	filter := bson.M{
		"desk_id": deskID,
		"date":    date,
		"status":  bson.M{"$ne": models.ReservationStatusCancelled},
	}
	return r.findAll(filter, bson.D{{Key: "start_time", Value: 1}})
}

// CountOverlapping counts conflicting reservations for an advisory availability check.
func (r *MongoReservationRepo) CountOverlapping(ctx context.Context, deskID, date, startTime, endTime string) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, overlapFilter(deskID, date, startTime, endTime))
	if err != nil {
		return 0, fmt.Errorf("failed to count overlapping reservations: %w", err)
	}
	return count, nil
}

// Cancel transitions a reservation to cancelled. Only the user who made the
// reservation may cancel it, and a cancelled reservation stays cancelled.
func (r *MongoReservationRepo) Cancel(id, userID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"id":      id,
		"user_id": userID,
		"status":  bson.M{"$ne": models.ReservationStatusCancelled},
	}
	update := bson.M{"$set": bson.M{"status": models.ReservationStatusCancelled}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to cancel reservation %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("reservation %s not found or already cancelled", id)
	}
	return nil
}
