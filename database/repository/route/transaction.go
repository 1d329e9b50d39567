package routeRepo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// RenumberStops rewrites the dense 1-based order inside a multi-document
// transaction so a failed reorder leaves every stop untouched and the caller
// can fall back to its last known-good sequence.
func (r *MongoRouteRepo) RenumberStops(ctx context.Context, technicianID, date string, orderedStopIDs []string) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		// The submitted set must cover the technician-day exactly.
		count, err := r.coll.CountDocuments(sc, bson.M{"technician_id": technicianID, "date": date})
		if err != nil {
			return fmt.Errorf("count route stops failed: %w", err)
		}
		if count != int64(len(orderedStopIDs)) {
			return fmt.Errorf("stop set mismatch: route has %d stops, got %d ids", count, len(orderedStopIDs))
		}

		for i, stopID := range orderedStopIDs {
			filter := bson.M{"id": stopID, "technician_id": technicianID, "date": date}
			update := bson.M{"$set": bson.M{"order": i + 1}}
			res, err := r.coll.UpdateOne(sc, filter, update)
			if err != nil {
				return fmt.Errorf("renumber stop %s failed: %w", stopID, err)
			}
			if res.MatchedCount == 0 {
				return fmt.Errorf("stop %s does not belong to technician %s on %s", stopID, technicianID, date)
			}
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sess.StartTransaction(); err != nil {
			return fmt.Errorf("could not start transaction: %w", err)
		}
		if err := txnFn(sc); err != nil {
			if abortErr := sess.AbortTransaction(sc); abortErr != nil {
				return fmt.Errorf("%w (abort also failed: %v)", err, abortErr)
			}
			return err
		}
		return sess.CommitTransaction(sc)
	}); err != nil {
		return err
	}
	return nil
}
