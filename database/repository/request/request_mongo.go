package requestRepo

import (
	"context"
	"fmt"
	"time"

	"fieldserve/database"
	"fieldserve/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoRequestRepo implements RequestRepository using MongoDB.
type MongoRequestRepo struct {
	coll *mongo.Collection
}

// NewMongoRequestRepo creates a new instance of RequestRepository using MongoDB.
func NewMongoRequestRepo() RequestRepository {
	coll := database.DB().Collection("service_requests")
	return &MongoRequestRepo{coll: coll}
}

func (r *MongoRequestRepo) GetByID(id string) (*models.ServiceRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var req models.ServiceRequest
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&req); err != nil {
		return nil, fmt.Errorf("failed to fetch service request with id %s: %w", id, err)
	}
	return &req, nil
}

func (r *MongoRequestRepo) GetActiveInRange(from, to string) ([]models.ServiceRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{
		"status": bson.M{"$in": []string{
			models.RequestStatusPending,
			models.RequestStatusScheduled,
			models.RequestStatusInProgress,
		}},
		"scheduled_date": bson.M{"$gte": from, "$lte": to},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve service requests in range [%s, %s]: %w", from, to, err)
	}
	defer cursor.Close(ctx)

	var requests []models.ServiceRequest
	for cursor.Next(ctx) {
		var req models.ServiceRequest
		if err := cursor.Decode(&req); err != nil {
			return nil, fmt.Errorf("failed to decode service request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return requests, nil
}

func (r *MongoRequestRepo) UpdateStatus(id, status string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("failed to update service request %s status: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("service request with id %s: %w", id, mongo.ErrNoDocuments)
	}
	return nil
}
