package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"fieldserve/config"
	"fieldserve/database"
	"fieldserve/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// Seeds a local database with a small field-service fixture: plans,
// properties, technicians, visit history and today's routes.
func main() {
	config.LoadConfig()
	database.InitDB()
	db := database.DB()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	collections := []string{"service_plans", "properties", "technicians", "inspections", "service_requests", "route_stops"}
	for _, name := range collections {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear %s collection: %v", name, err)
		}
	}

	plans := []models.ServicePlan{
		{ID: uuid.New().String(), Name: "Monthly", VisitFrequencyDays: 30},
		{ID: uuid.New().String(), Name: "Quarterly", VisitFrequencyDays: 90},
		{ID: uuid.New().String(), Name: "Biweekly", VisitFrequencyDays: 14},
	}
	for _, plan := range plans {
		if _, err := db.Collection("service_plans").InsertOne(ctx, plan); err != nil {
			log.Fatalf("Failed to seed service plan: %v", err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("fieldserve-dev"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	technicians := make([]models.Technician, 0, 5)
	names := []string{"Ada Osei", "Ben Carter", "Chidi Eze", "Dana Moore", "Elio Rossi"}
	for i, name := range names {
		role := models.RoleTechnician
		if i == 0 {
			role = models.RoleStaff
		}
		tech := models.Technician{
			ID:           uuid.New().String(),
			Name:         name,
			Email:        fmt.Sprintf("tech%d@fieldserve.local", i+1),
			Role:         role,
			Status:       models.TechnicianStatusActive,
			PasswordHash: string(hash),
		}
		technicians = append(technicians, tech)
		if _, err := db.Collection("technicians").InsertOne(ctx, tech); err != nil {
			log.Fatalf("Failed to seed technician: %v", err)
		}
	}

	today := time.Now().Format("2006-01-02")
	for i := 0; i < 20; i++ {
		property := models.Property{
			ID:            uuid.New().String(),
			Name:          fmt.Sprintf("Property %02d", i+1),
			AddressLine:   fmt.Sprintf("%d Elm Street", 100+i),
			City:          "Springfield",
			Status:        models.PropertyStatusActive,
			CustomerID:    uuid.New().String(),
			ServicePlanID: plans[i%len(plans)].ID,
			CreatedAt:     time.Now().AddDate(0, -6, 0),
		}
		if _, err := db.Collection("properties").InsertOne(ctx, property); err != nil {
			log.Fatalf("Failed to seed property: %v", err)
		}

		// Most properties have visit history of varying staleness; every
		// fifth one has never been visited.
		if i%5 != 0 {
			completedAt := time.Now().AddDate(0, 0, -rand.Intn(120))
			inspection := models.Inspection{
				ID:            uuid.New().String(),
				PropertyID:    property.ID,
				TechnicianID:  technicians[i%len(technicians)].ID,
				ScheduledDate: completedAt.Format("2006-01-02"),
				ScheduledTime: "09:00",
				Status:        models.InspectionStatusCompleted,
				CompletedAt:   &completedAt,
				CreatedAt:     completedAt.AddDate(0, 0, -7),
			}
			if _, err := db.Collection("inspections").InsertOne(ctx, inspection); err != nil {
				log.Fatalf("Failed to seed inspection: %v", err)
			}
		}

		// Give the first few properties work scheduled today, with a route
		// stop per item, densely ordered per technician.
		if i < 6 {
			tech := technicians[1+i%3]
			inspection := models.Inspection{
				ID:            uuid.New().String(),
				PropertyID:    property.ID,
				TechnicianID:  tech.ID,
				ScheduledDate: today,
				ScheduledTime: fmt.Sprintf("%02d:00", 9+i),
				Status:        models.InspectionStatusScheduled,
				CreatedAt:     time.Now(),
			}
			if _, err := db.Collection("inspections").InsertOne(ctx, inspection); err != nil {
				log.Fatalf("Failed to seed scheduled inspection: %v", err)
			}

			stop := models.RouteStop{
				ID:            uuid.New().String(),
				TechnicianID:  tech.ID,
				Date:          today,
				Kind:          models.KindInspection,
				ItemID:        inspection.ID,
				PropertyID:    property.ID,
				Title:         "Inspection — " + property.Name,
				ScheduledTime: inspection.ScheduledTime,
				Order:         i/3 + 1,
			}
			if _, err := db.Collection("route_stops").InsertOne(ctx, stop); err != nil {
				log.Fatalf("Failed to seed route stop: %v", err)
			}
		}

		if i%4 == 0 {
			request := models.ServiceRequest{
				ID:         uuid.New().String(),
				PropertyID: property.ID,
				Title:      fmt.Sprintf("Leak repair at %s", property.Name),
				Priority:   models.RequestPriorityNormal,
				Status:     models.RequestStatusPending,
				CreatedAt:  time.Now().AddDate(0, 0, -rand.Intn(10)),
			}
			if _, err := db.Collection("service_requests").InsertOne(ctx, request); err != nil {
				log.Fatalf("Failed to seed service request: %v", err)
			}
		}
	}

	log.Println("Seeded fieldserve fixture data successfully")
}
