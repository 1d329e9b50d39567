package planRepo

import (
	"fieldserve/models"
)

// PlanRepository defines read-only access to service plans. Plans are
// maintained by the broader product and never written from here.
type PlanRepository interface {
	// GetByID retrieves a service plan by its unique ID.
	GetByID(id string) (*models.ServicePlan, error)
	// GetByIDs retrieves plans for the given ids, keyed by id.
	GetByIDs(ids []string) (map[string]models.ServicePlan, error)
}
