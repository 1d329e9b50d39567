package notification

import (
	"fieldserve/services/tasks"
	"fieldserve/utils"

	"go.uber.org/zap"
)

// Notifier delivers visit-completed notices to customers and staff. Actual
// email/SMS delivery is owned by the messaging service; this interface is the
// seam it plugs into.
type Notifier interface {
	SendVisitCompleted(payload tasks.VisitCompletedPayload) error
}

// LogNotifier is the default Notifier used until a delivery backend is wired
// in: it records the notice and does nothing else.
type LogNotifier struct{}

func (LogNotifier) SendVisitCompleted(payload tasks.VisitCompletedPayload) error {
	utils.GetLogger().Info("visit completed",
		zap.String("kind", payload.Kind),
		zap.String("itemId", payload.ItemID),
		zap.String("propertyId", payload.PropertyID),
		zap.String("technicianId", payload.TechnicianID),
		zap.Time("completedAt", payload.CompletedAt))
	return nil
}
