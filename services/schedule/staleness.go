package schedule

import (
	"time"

	"fieldserve/models"
)

// EvaluateStaleness classifies one active property by how overdue it is for
// its next required visit. lastCompleted is the completion time of the most
// recent completed inspection, nil when the property has never been visited;
// a never-visited property is maximally overdue. Pure function of its inputs.
func EvaluateStaleness(property models.Property, plan models.ServicePlan, lastCompleted *time.Time, asOf time.Time, dueSoonWindowDays int) models.UnscheduledQueueEntry {
	entry := models.UnscheduledQueueEntry{
		Property:           property,
		VisitFrequencyDays: plan.VisitFrequencyDays,
	}

	if lastCompleted == nil {
		entry.Priority = models.QueuePriorityOverdue
		return entry
	}

	days := int(asOf.Sub(*lastCompleted).Hours() / 24)
	entry.DaysSinceLastVisit = &days
	entry.LastVisitDate = lastCompleted.Format("2006-01-02")

	switch {
	case days > plan.VisitFrequencyDays:
		entry.Priority = models.QueuePriorityOverdue
	case days > plan.VisitFrequencyDays-dueSoonWindowDays:
		entry.Priority = models.QueuePriorityDueSoon
	default:
		entry.Priority = models.QueuePriorityUpcoming
	}
	return entry
}
