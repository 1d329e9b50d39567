package propertyRepo

import (
	"context"
	"fmt"
	"time"

	"fieldserve/database"
	"fieldserve/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPropertyRepo implements PropertyRepository using MongoDB.
type MongoPropertyRepo struct {
	coll *mongo.Collection
}

// NewMongoPropertyRepo creates a new instance of PropertyRepository using MongoDB.
func NewMongoPropertyRepo() PropertyRepository {
	coll := database.DB().Collection("properties")
	return &MongoPropertyRepo{coll: coll}
}

func (r *MongoPropertyRepo) GetByID(id string) (*models.Property, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var property models.Property
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&property); err != nil {
		return nil, fmt.Errorf("failed to fetch property with id %s: %w", id, err)
	}
	return &property, nil
}

func (r *MongoPropertyRepo) GetActive(limit int) ([]models.Property, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{"status": models.PropertyStatusActive}
	opts := options.Find().SetSort(bson.M{"created_at": 1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve active properties: %w", err)
	}
	defer cursor.Close(ctx)

	var properties []models.Property
	for cursor.Next(ctx) {
		var p models.Property
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode property: %w", err)
		}
		properties = append(properties, p)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return properties, nil
}

func (r *MongoPropertyRepo) GetByIDs(ids []string) (map[string]models.Property, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	out := make(map[string]models.Property, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	cursor, err := r.coll.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve properties by ids: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var p models.Property
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode property: %w", err)
		}
		out[p.ID] = p
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return out, nil
}
