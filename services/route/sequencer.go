package route

import (
	"context"
	"errors"
	"fmt"

	routeRepo "fieldserve/database/repository/route"
	technicianRepo "fieldserve/database/repository/technician"

	"fieldserve/models"
	"fieldserve/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// RouteService maintains a technician's ordered stop sequence for a day.
// Reordering is all-or-nothing: on failure the persisted order is untouched
// and the caller restores its last known-good sequence. Concurrent reorders
// of the same route are last-write-wins.
type RouteService interface {
	// ListStops returns the technician's stops for the date, in stop order.
	ListStops(technicianID, date string) ([]models.RouteStop, error)
	// Reorder rewrites the stop sequence to match orderedStopIDs. The id set
	// must cover the technician-day exactly; orders are renumbered densely
	// from 1 in the given sequence.
	Reorder(ctx context.Context, technicianID, date string, orderedStopIDs []string) error
}

// DefaultRouteService is the standard RouteService implementation.
type DefaultRouteService struct {
	Repo        routeRepo.RouteRepository
	Technicians technicianRepo.TechnicianRepository
}

func (s *DefaultRouteService) ListStops(technicianID, date string) ([]models.RouteStop, error) {
	if _, err := s.Technicians.GetByID(technicianID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{TechnicianID: technicianID}
		}
		return nil, fmt.Errorf("list stops: %w", err)
	}

	stops, err := s.Repo.ListByTechnicianAndDate(technicianID, date)
	if err != nil {
		return nil, fmt.Errorf("list stops: %w", err)
	}
	if stops == nil {
		stops = []models.RouteStop{}
	}
	return stops, nil
}

func (s *DefaultRouteService) Reorder(ctx context.Context, technicianID, date string, orderedStopIDs []string) error {
	if len(orderedStopIDs) == 0 {
		return NewReorderError("ordered stop id list is empty")
	}

	seen := make(map[string]struct{}, len(orderedStopIDs))
	for _, id := range orderedStopIDs {
		if _, dup := seen[id]; dup {
			return NewReorderError(fmt.Sprintf("duplicate stop id %s", id))
		}
		seen[id] = struct{}{}
	}

	current, err := s.Repo.ListByTechnicianAndDate(technicianID, date)
	if err != nil {
		return fmt.Errorf("reorder: %w", err)
	}
	if len(current) != len(orderedStopIDs) {
		return NewReorderError(fmt.Sprintf("route has %d stops, got %d ids", len(current), len(orderedStopIDs)))
	}
	for _, stop := range current {
		if _, ok := seen[stop.ID]; !ok {
			return NewReorderError(fmt.Sprintf("stop %s missing from submitted order", stop.ID))
		}
	}

	// The repository re-validates inside the transaction, so a concurrent
	// edit between the check above and the write still cannot leave a
	// partially renumbered route.
	if err := s.Repo.RenumberStops(ctx, technicianID, date, orderedStopIDs); err != nil {
		utils.GetLogger().Error("route reorder failed",
			zap.String("technicianId", technicianID),
			zap.String("date", date),
			zap.Error(err))
		return fmt.Errorf("reorder: %w", err)
	}
	return nil
}
