package propertyRepo

import (
	"fieldserve/models"
)

// PropertyRepository defines methods for property data access.
type PropertyRepository interface {
	// GetByID retrieves a property by its unique ID.
	GetByID(id string) (*models.Property, error)
	// GetActive retrieves active properties, bounded to limit.
	GetActive(limit int) ([]models.Property, error)
	// GetByIDs retrieves properties for the given ids, keyed by id.
	GetByIDs(ids []string) (map[string]models.Property, error)
}
