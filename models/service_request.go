package models

import "time"

// ServiceRequest statuses.
const (
	RequestStatusPending    = "pending"
	RequestStatusScheduled  = "scheduled"
	RequestStatusInProgress = "in_progress"
	RequestStatusCompleted  = "completed"
	RequestStatusCancelled  = "cancelled"
)

// ServiceRequest priorities.
const (
	RequestPriorityLow    = "low"
	RequestPriorityNormal = "normal"
	RequestPriorityHigh   = "high"
	RequestPriorityUrgent = "urgent"
)

// ServiceRequest is an ad-hoc piece of field work raised against a property.
type ServiceRequest struct {
	ID            string    `bson:"id" json:"id"`
	PropertyID    string    `bson:"property_id" json:"property_id"`
	TechnicianID  string    `bson:"technician_id,omitempty" json:"technician_id,omitempty"` // empty until assigned
	Title         string    `bson:"title" json:"title"`
	Priority      string    `bson:"priority" json:"priority"`
	Status        string    `bson:"status" json:"status"`
	ScheduledDate string    `bson:"scheduled_date,omitempty" json:"scheduled_date,omitempty"` // "YYYY-MM-DD", empty while pending
	ScheduledTime string    `bson:"scheduled_time,omitempty" json:"scheduled_time,omitempty"` // "HH:MM", empty means TBD
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`                             // drives SLA age display
}
