package routeRepo

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

// MongoRouteRepo implements RouteRepository using MongoDB.
type MongoRouteRepo struct {
	coll *mongo.Collection
}

// NewMongoRouteRepo creates a new instance of RouteRepository using MongoDB.
func NewMongoRouteRepo() RouteRepository {
	coll := database.DB().Collection("route_stops")
	return &MongoRouteRepo{coll: coll}
}

func (r *MongoRouteRepo) ListByTechnicianAndDate(technicianID, date string) ([]models.RouteStop, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"technician_id": technicianID, "date": date}
	opts := options.Find().SetSort(bson.M{"order": 1})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve route stops for technician %s on %s: %w", technicianID, date, err)
	}
	defer cursor.Close(ctx)

	var stops []models.RouteStop
	for cursor.Next(ctx) {
		var stop models.RouteStop
		if err := cursor.Decode(&stop); err != nil {
			return nil, fmt.Errorf("failed to decode route stop: %w", err)
		}
		stops = append(stops, stop)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return stops, nil
}

func (r *MongoRouteRepo) Create(stop *models.RouteStop) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, stop); err != nil {
		return fmt.Errorf("failed to create route stop: %w", err)
	}
	return nil
}
