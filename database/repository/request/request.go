package requestRepo

import (
	"fieldserve/models"
)

// RequestRepository defines data access methods for service requests.
type RequestRepository interface {
	// GetByID retrieves a service request by its unique ID.
	GetByID(id string) (*models.ServiceRequest, error)
	// GetActiveInRange retrieves pending, scheduled and in-progress requests
	// whose scheduled date falls within [from, to] inclusive ("YYYY-MM-DD").
	GetActiveInRange(from, to string) ([]models.ServiceRequest, error)
	// UpdateStatus sets the status of a service request. Returns a not-found
	// error when no document matches.
	UpdateStatus(id, status string) error
}
