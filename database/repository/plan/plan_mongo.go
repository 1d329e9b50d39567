package planRepo

import (
	"context"
	"fmt"
	"time"

	"fieldserve/database"
	"fieldserve/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoPlanRepo implements PlanRepository using MongoDB.
type MongoPlanRepo struct {
	coll *mongo.Collection
}

// NewMongoPlanRepo creates a new instance of PlanRepository using MongoDB.
func NewMongoPlanRepo() PlanRepository {
	coll := database.DB().Collection("service_plans")
	return &MongoPlanRepo{coll: coll}
}

func (r *MongoPlanRepo) GetByID(id string) (*models.ServicePlan, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var plan models.ServicePlan
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&plan); err != nil {
		return nil, fmt.Errorf("failed to fetch service plan with id %s: %w", id, err)
	}
	return &plan, nil
}

func (r *MongoPlanRepo) GetByIDs(ids []string) (map[string]models.ServicePlan, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	out := make(map[string]models.ServicePlan, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	cursor, err := r.coll.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve service plans by ids: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var plan models.ServicePlan
		if err := cursor.Decode(&plan); err != nil {
			return nil, fmt.Errorf("failed to decode service plan: %w", err)
		}
		out[plan.ID] = plan
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return out, nil
}
