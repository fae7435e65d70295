// Seed tool: populates a local MongoDB with demo businesses, desks, hours
// and a few reservations for manual testing against a running server.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"brewdesk/config"
	"brewdesk/database"
	"brewdesk/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

func main() {
	config.LoadConfig()
	database.InitDB()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	for _, coll := range []string{"users", "businesses", "desks", "daily_hours", "reservations"} {
		if _, err := database.Collection(coll).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear %s collection: %v", coll, err)
		}
	}

	owner := models.User{
		ID:         uuid.New().String(),
		ExternalID: "seed|owner",
		Email:      "owner@example.com",
		Name:       "Seed Owner",
		CreatedAt:  time.Now(),
	}
	customer := models.User{
		ID:         uuid.New().String(),
		ExternalID: "seed|customer",
		Email:      "customer@example.com",
		Name:       "Seed Customer",
		CreatedAt:  time.Now(),
	}
	if _, err := database.Collection("users").InsertMany(ctx, []interface{}{owner, customer}); err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	business := models.Business{
		ID:        uuid.New().String(),
		OwnerID:   owner.ID,
		Name:      "Grindhouse Coffee",
		Address:   "12 Roast Street",
		City:      "Portland",
		State:     "OR",
		Amenities: []string{"wifi", "power", "espresso"},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if _, err := database.Collection("businesses").InsertOne(ctx, business); err != nil {
		log.Fatalf("Failed to seed business: %v", err)
	}

	var desks []interface{}
	deskIDs := make([]string, 0, 3)
	for i, rate := range []float64{6, 8, 12} {
		desk := models.Desk{
			ID:         uuid.New().String(),
			BusinessID: business.ID,
			Name:       fmt.Sprintf("Window Desk %d", i+1),
			HourlyRate: rate,
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		}
		deskIDs = append(deskIDs, desk.ID)
		desks = append(desks, desk)
	}
	if _, err := database.Collection("desks").InsertMany(ctx, desks); err != nil {
		log.Fatalf("Failed to seed desks: %v", err)
	}

	var hours []interface{}
	today := time.Now()
	for i := 0; i < 7; i++ {
		hours = append(hours, models.DailyHours{
			ID:         uuid.New().String(),
			BusinessID: business.ID,
			Date:       today.AddDate(0, 0, i).Format("2006-01-02"),
			OpenTime:   "09:00:00",
			CloseTime:  "17:00:00",
			CreatedAt:  time.Now(),
		})
	}
	if _, err := database.Collection("daily_hours").InsertMany(ctx, hours); err != nil {
		log.Fatalf("Failed to seed hours: %v", err)
	}

	reservation := models.Reservation{
		ID:            uuid.New().String(),
		UserID:        customer.ID,
		BusinessID:    business.ID,
		DeskID:        deskIDs[0],
		Date:          today.Format("2006-01-02"),
		StartTime:     "12:00:00",
		EndTime:       "14:00:00",
		DurationHours: 2,
		TotalPrice:    12,
		Status:        models.ReservationStatusConfirmed,
		CreatedAt:     time.Now(),
	}
	if _, err := database.Collection("reservations").InsertOne(ctx, reservation); err != nil {
		log.Fatalf("Failed to seed reservation: %v", err)
	}

	log.Printf("Seeded business %s with %d desks, 7 days of hours and 1 reservation", business.ID, len(deskIDs))
}
