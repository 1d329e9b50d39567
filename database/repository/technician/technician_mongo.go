package technicianRepo

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

// MongoTechnicianRepo implements TechnicianRepository using MongoDB.
type MongoTechnicianRepo struct {
	coll *mongo.Collection
}

// NewMongoTechnicianRepo creates a new instance of TechnicianRepository using MongoDB.
func NewMongoTechnicianRepo() TechnicianRepository {
	coll := database.DB().Collection("technicians")
	return &MongoTechnicianRepo{coll: coll}
}

func (r *MongoTechnicianRepo) GetByID(id string) (*models.Technician, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var tech models.Technician
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&tech); err != nil {
		return nil, fmt.Errorf("failed to fetch technician with id %s: %w", id, err)
	}
	return &tech, nil
}

func (r *MongoTechnicianRepo) GetAllActive() ([]models.Technician, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{"status": models.TechnicianStatusActive}
	opts := options.Find().SetSort(bson.M{"name": 1})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve active technicians: %w", err)
	}
	defer cursor.Close(ctx)

	var technicians []models.Technician
	for cursor.Next(ctx) {
		var tech models.Technician
		if err := cursor.Decode(&tech); err != nil {
			return nil, fmt.Errorf("failed to decode technician: %w", err)
		}
		technicians = append(technicians, tech)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return technicians, nil
}

func (r *MongoTechnicianRepo) GetByTokenHash(tokenHash string) (*models.Technician, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var tech models.Technician
	filter := bson.M{"token_hash": tokenHash}
	if err := r.coll.FindOne(ctx, filter).Decode(&tech); err != nil {
		return nil, fmt.Errorf("failed to fetch technician by token hash: %w", err)
	}
	return &tech, nil
}
