package routeRepo

import (
	"context"

	"fieldserve/models"
)

// RouteRepository defines data access methods for a technician's route stops.
// The order field is the only value the scheduling core owns; everything else
// on a stop is a denormalized copy of scheduling data.
type RouteRepository interface {
	// ListByTechnicianAndDate retrieves the stops for one technician-day,
	// sorted by their persisted order.
	ListByTechnicianAndDate(technicianID, date string) ([]models.RouteStop, error)
	// Create inserts a new route stop record.
	Create(stop *models.RouteStop) error
	// RenumberStops rewrites the order of every stop in the technician-day to
	// match orderedStopIDs (first id gets order 1). The write is transactional:
	// if any id does not belong to the technician-day, or the id set does not
	// cover it exactly, no order changes.
	RenumberStops(ctx context.Context, technicianID, date string, orderedStopIDs []string) error
}
