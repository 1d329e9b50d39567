package inspectionRepo

import (
	"context"
	"fmt"
	"time"

	"fieldserve/database"
	"fieldserve/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoInspectionRepo implements InspectionRepository using MongoDB.
type MongoInspectionRepo struct {
	coll *mongo.Collection
}

// NewMongoInspectionRepo creates a new instance of InspectionRepository using MongoDB.
func NewMongoInspectionRepo() InspectionRepository {
	coll := database.DB().Collection("inspections")
	return &MongoInspectionRepo{coll: coll}
}

func (r *MongoInspectionRepo) GetByID(id string) (*models.Inspection, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var insp models.Inspection
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&insp); err != nil {
		return nil, fmt.Errorf("failed to fetch inspection with id %s: %w", id, err)
	}
	return &insp, nil
}

func (r *MongoInspectionRepo) GetActiveInRange(from, to string) ([]models.Inspection, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{
		"status":         bson.M{"$in": []string{models.InspectionStatusScheduled, models.InspectionStatusInProgress}},
		"scheduled_date": bson.M{"$gte": from, "$lte": to},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve inspections in range [%s, %s]: %w", from, to, err)
	}
	defer cursor.Close(ctx)

	var inspections []models.Inspection
	for cursor.Next(ctx) {
		var insp models.Inspection
		if err := cursor.Decode(&insp); err != nil {
			return nil, fmt.Errorf("failed to decode inspection: %w", err)
		}
		inspections = append(inspections, insp)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return inspections, nil
}

// LatestCompletedByProperty runs one aggregation for the whole property page so
// queue builds stay a single round trip as the property count grows.
func (r *MongoInspectionRepo) LatestCompletedByProperty(propertyIDs []string) (map[string]time.Time, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	out := make(map[string]time.Time, len(propertyIDs))
	if len(propertyIDs) == 0 {
		return out, nil
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"property_id": bson.M{"$in": propertyIDs},
			"status":      models.InspectionStatusCompleted,
			"completed_at": bson.M{"$ne": nil},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "completed_at", Value: -1}}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":          "$property_id",
			"completed_at": bson.M{"$first": "$completed_at"},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate latest completed inspections: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var row struct {
			PropertyID  string    `bson:"_id"`
			CompletedAt time.Time `bson:"completed_at"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("failed to decode aggregation row: %w", err)
		}
		out[row.PropertyID] = row.CompletedAt
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return out, nil
}

func (r *MongoInspectionRepo) UpdateStatus(id, status string, completedAt *time.Time) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	set := bson.M{"status": status}
	if completedAt != nil {
		set["completed_at"] = *completedAt
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update inspection %s status: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("inspection with id %s: %w", id, mongo.ErrNoDocuments)
	}
	return nil
}
