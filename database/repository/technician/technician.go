package technicianRepo

import (
	"fieldserve/models"
)

// TechnicianRepository defines data access methods for technician records.
type TechnicianRepository interface {
	// GetByID retrieves a technician by its unique ID.
	GetByID(id string) (*models.Technician, error)
	// GetAllActive retrieves all active technicians.
	GetAllActive() ([]models.Technician, error)
	// GetByTokenHash retrieves the technician whose token_hash matches.
	GetByTokenHash(tokenHash string) (*models.Technician, error)
}
