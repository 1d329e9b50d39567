package inspectionRepo

import (
	"time"

	"fieldserve/models"
)

// InspectionRepository defines data access methods for inspections.
type InspectionRepository interface {
	// GetByID retrieves an inspection by its unique ID.
	GetByID(id string) (*models.Inspection, error)
	// GetActiveInRange retrieves scheduled and in-progress inspections whose
	// scheduled date falls within [from, to] inclusive ("YYYY-MM-DD").
	GetActiveInRange(from, to string) ([]models.Inspection, error)
	// LatestCompletedByProperty returns, for each of the given property ids,
	// the completion time of its most recent completed inspection. Properties
	// with no completed inspection are absent from the result.
	LatestCompletedByProperty(propertyIDs []string) (map[string]time.Time, error)
	// UpdateStatus sets the status of an inspection, stamping completedAt when
	// non-nil. Returns a not-found error when no document matches.
	UpdateStatus(id, status string, completedAt *time.Time) error
}
