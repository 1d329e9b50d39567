package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

// TypeVisitCompleted is the task type for visit-completed notifications.
const TypeVisitCompleted = "visit:completed"

// VisitCompletedPayload describes a completed visit handed to the
// notification worker.
type VisitCompletedPayload struct {
	Kind         string    `json:"kind"`
	ItemID       string    `json:"itemId"`
	PropertyID   string    `json:"propertyId"`
	TechnicianID string    `json:"technicianId"`
	CompletedAt  time.Time `json:"completedAt"`
}

// CompletionNotifier enqueues a visit-completed notification for asynchronous
// delivery.
type CompletionNotifier interface {
	NotifyCompleted(payload VisitCompletedPayload) error
}

// NewVisitCompletedTask builds the asynq task for a completed visit.
func NewVisitCompletedTask(payload VisitCompletedPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal visit-completed payload: %w", err)
	}
	return asynq.NewTask(TypeVisitCompleted, b), nil
}

// AsynqCompletionNotifier enqueues completion tasks on an asynq client.
type AsynqCompletionNotifier struct {
	Client *asynq.Client
}

func (n *AsynqCompletionNotifier) NotifyCompleted(payload VisitCompletedPayload) error {
	task, err := NewVisitCompletedTask(payload)
	if err != nil {
		return err
	}
	if _, err := n.Client.Enqueue(task); err != nil {
		return fmt.Errorf("failed to enqueue visit-completed task: %w", err)
	}
	return nil
}
