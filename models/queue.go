package models

// Queue priorities, ordered from most to least urgent.
const (
	QueuePriorityOverdue  = "overdue"
	QueuePriorityDueSoon  = "due-soon"
	QueuePriorityUpcoming = "upcoming"
)

// UnscheduledQueueEntry is one row of the dispatcher work queue: a property
// classified by how overdue it is for its next required visit. Derived fresh
// on every read, never persisted.
type UnscheduledQueueEntry struct {
	Property           Property `json:"property"`
	LastVisitDate      string   `json:"last_visit_date,omitempty"`     // "YYYY-MM-DD", empty if never visited
	DaysSinceLastVisit *int     `json:"days_since_last_visit"`         // nil if never visited
	VisitFrequencyDays int      `json:"visit_frequency_days"`
	Priority           string   `json:"priority"`
}
