package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"brewdesk/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrSlotConflict is returned when the transactional re-check finds an
// overlapping reservation. The caller treats it as a normal negative result,
// not a server failure.
var ErrSlotConflict = fmt.Errorf("reservation conflicts with an existing booking")

// CreateIfAvailable runs the overlap check and the insert inside one Mongo
// session transaction. Two requests racing for the same desk/date window will
// serialize here: the first commit wins, the second observes the conflict and
// aborts, so the handler-level availability check stays advisory only.
func (r *MongoReservationRepo) CreateIfAvailable(ctx context.Context, reservation *models.Reservation) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		filter := overlapFilter(reservation.DeskID, reservation.Date, reservation.StartTime, reservation.EndTime)
		count, err := r.coll.CountDocuments(sc, filter)
		if err != nil {
			return fmt.Errorf("overlap check failed: %w", err)
		}
		if count > 0 {
			return ErrSlotConflict
		}

		reservation.CreatedAt = time.Now()
		if _, err := r.coll.InsertOne(sc, reservation); err != nil {
			return fmt.Errorf("insert reservation failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if err == ErrSlotConflict {
			return ErrSlotConflict
		}
		return fmt.Errorf("reservation transaction failed: %w", err)
	}

	return nil
}
