package status

import (
	"errors"
	"fmt"
	"time"

	inspectionRepo "fieldserve/database/repository/inspection"
	requestRepo "fieldserve/database/repository/request"

	"fieldserve/models"
	"fieldserve/services/tasks"
	"fieldserve/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Actor identifies who is requesting a transition.
type Actor struct {
	ID   string
	Role string
}

// TransitionResult reports a successfully applied transition. Warning carries
// advisory conditions (such as moving an unassigned request out of pending)
// that do not block the change.
type TransitionResult struct {
	Kind        string     `json:"kind"`
	ID          string     `json:"id"`
	From        string     `json:"from"`
	To          string     `json:"to"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Warning     string     `json:"warning,omitempty"`
}

// StatusService validates and applies status changes to inspections and
// service requests. Direct status buttons and kanban column drags both funnel
// through ApplyTransition so the business rules cannot diverge. Writes are
// all-or-nothing: a returned error means nothing was persisted and the caller
// should roll back its optimistic local update.
type StatusService interface {
	ApplyTransition(kind, id, target string, actor Actor) (*TransitionResult, error)
}

// DefaultStatusService is the standard StatusService implementation.
type DefaultStatusService struct {
	Inspections inspectionRepo.InspectionRepository
	Requests    requestRepo.RequestRepository
	Notifier    tasks.CompletionNotifier // optional; nil disables completion tasks
	Now         func() time.Time         // injectable clock; nil means time.Now
}

func (s *DefaultStatusService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultStatusService) ApplyTransition(kind, id, target string, actor Actor) (*TransitionResult, error) {
	switch kind {
	case models.KindInspection:
		return s.applyInspection(id, target, actor)
	case models.KindService:
		return s.applyRequest(id, target, actor)
	default:
		return nil, NewTransitionError(fmt.Sprintf("unknown item kind %q", kind))
	}
}

func (s *DefaultStatusService) applyRequest(id, target string, actor Actor) (*TransitionResult, error) {
	if !requestStatuses[target] {
		return nil, NewTransitionError(fmt.Sprintf("unknown service request status %q", target))
	}

	req, err := s.Requests.GetByID(id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{Kind: models.KindService, ID: id}
		}
		return nil, fmt.Errorf("apply transition: %w", err)
	}

	if !transitionAllowed(requestTransitions, req.Status, target) {
		return nil, NewTransitionError(fmt.Sprintf("service request cannot move from %s to %s", req.Status, target))
	}

	result := &TransitionResult{Kind: models.KindService, ID: id, From: req.Status, To: target}
	if req.Status == models.RequestStatusPending && target != models.RequestStatusCancelled && req.TechnicianID == "" {
		result.Warning = "request has no assigned technician"
	}

	if err := s.Requests.UpdateStatus(id, target); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{Kind: models.KindService, ID: id}
		}
		return nil, fmt.Errorf("apply transition: %w", err)
	}

	if target == models.RequestStatusCompleted {
		completedAt := s.now()
		result.CompletedAt = &completedAt
		s.notifyCompleted(models.KindService, req.ID, req.PropertyID, req.TechnicianID, completedAt)
	}
	return result, nil
}

func (s *DefaultStatusService) applyInspection(id, target string, actor Actor) (*TransitionResult, error) {
	if !inspectionStatuses[target] {
		return nil, NewTransitionError(fmt.Sprintf("unknown inspection status %q", target))
	}

	insp, err := s.Inspections.GetByID(id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{Kind: models.KindInspection, ID: id}
		}
		return nil, fmt.Errorf("apply transition: %w", err)
	}

	if !transitionAllowed(inspectionTransitions, insp.Status, target) {
		return nil, NewTransitionError(fmt.Sprintf("inspection cannot move from %s to %s", insp.Status, target))
	}

	switch target {
	case models.InspectionStatusInProgress:
		// Only the assigned technician starts a visit; admins may override.
		if actor.ID != insp.TechnicianID && actor.Role != models.RoleAdmin {
			return nil, NewTransitionError("only the assigned technician can start this inspection")
		}
	case models.InspectionStatusCancelled, models.InspectionStatusMissed:
		if actor.Role != models.RoleStaff && actor.Role != models.RoleAdmin {
			return nil, NewTransitionError(fmt.Sprintf("only staff can mark an inspection %s", target))
		}
	}

	result := &TransitionResult{Kind: models.KindInspection, ID: id, From: insp.Status, To: target}

	var completedAt *time.Time
	if target == models.InspectionStatusCompleted {
		if insp.CompletedAt != nil {
			completedAt = insp.CompletedAt
		} else {
			t := s.now()
			completedAt = &t
		}
		result.CompletedAt = completedAt
	}

	if err := s.Inspections.UpdateStatus(id, target, completedAt); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{Kind: models.KindInspection, ID: id}
		}
		return nil, fmt.Errorf("apply transition: %w", err)
	}

	if target == models.InspectionStatusCompleted {
		s.notifyCompleted(models.KindInspection, insp.ID, insp.PropertyID, insp.TechnicianID, *completedAt)
	}
	return result, nil
}

// notifyCompleted enqueues the visit-completed task. Delivery is best effort:
// the transition already persisted, so a queue failure is logged, not returned.
func (s *DefaultStatusService) notifyCompleted(kind, itemID, propertyID, technicianID string, completedAt time.Time) {
	if s.Notifier == nil {
		return
	}
	payload := tasks.VisitCompletedPayload{
		Kind:         kind,
		ItemID:       itemID,
		PropertyID:   propertyID,
		TechnicianID: technicianID,
		CompletedAt:  completedAt,
	}
	if err := s.Notifier.NotifyCompleted(payload); err != nil {
		utils.GetLogger().Error("failed to enqueue visit-completed task",
			zap.String("kind", kind),
			zap.String("itemId", itemID),
			zap.Error(err))
	}
}
