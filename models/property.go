package models

import "time"

// Property statuses. Inactive properties keep their history but are
// excluded from staleness evaluation and the unscheduled queue.
const (
	PropertyStatusActive   = "active"
	PropertyStatusInactive = "inactive"
)

// Property represents a watched property under a service plan.
type Property struct {
	ID            string    `bson:"id" json:"id"`
	Name          string    `bson:"name" json:"name"`
	AddressLine   string    `bson:"address_line" json:"address_line"`
	City          string    `bson:"city" json:"city"`
	PostalCode    string    `bson:"postal_code,omitempty" json:"postal_code,omitempty"`
	Status        string    `bson:"status" json:"status"` // "active" or "inactive"
	CustomerID    string    `bson:"customer_id" json:"customer_id"`
	ServicePlanID string    `bson:"service_plan_id" json:"service_plan_id"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}

// IsActive reports whether the property is eligible for scheduling.
func (p Property) IsActive() bool {
	return p.Status == PropertyStatusActive
}
