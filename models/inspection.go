package models

import "time"

// Inspection statuses.
const (
	InspectionStatusScheduled  = "scheduled"
	InspectionStatusInProgress = "in_progress"
	InspectionStatusCompleted  = "completed"
	InspectionStatusCancelled  = "cancelled"
	InspectionStatusMissed     = "missed"
)

// Inspection is a recurring visit scheduled against a property.
type Inspection struct {
	ID            string     `bson:"id" json:"id"`
	PropertyID    string     `bson:"property_id" json:"property_id"`
	TechnicianID  string     `bson:"technician_id,omitempty" json:"technician_id,omitempty"`   // empty until assigned
	ScheduledDate string     `bson:"scheduled_date" json:"scheduled_date"`                     // "YYYY-MM-DD"
	ScheduledTime string     `bson:"scheduled_time,omitempty" json:"scheduled_time,omitempty"` // "HH:MM", empty means TBD
	Status        string     `bson:"status" json:"status"`
	CompletedAt   *time.Time `bson:"completed_at,omitempty" json:"completed_at,omitempty"` // set only on completion
	CreatedAt     time.Time  `bson:"created_at" json:"created_at"`
}
