package schedule

import (
	"time"

	inspectionRepo "fieldserve/database/repository/inspection"
	planRepo "fieldserve/database/repository/plan"
	propertyRepo "fieldserve/database/repository/property"
	requestRepo "fieldserve/database/repository/request"

	"fieldserve/models"
)

// ScheduleService exposes the read-side scheduling computations: the
// dispatcher queue, the calendar views and the per-technician workload.
// Every method is a stateless aggregation over repository reads, safe to
// invoke concurrently; asOf injects the clock so results are deterministic.
type ScheduleService interface {
	// BuildUnscheduledQueue classifies active properties by visit staleness
	// and returns the overdue and due-soon ones, most urgent first.
	BuildUnscheduledQueue(asOf time.Time) ([]models.UnscheduledQueueEntry, error)
	// AggregateCalendar groups active schedulable items by ISO date across
	// [from, to]. Every date in the range is present, empty dates included.
	AggregateCalendar(from, to string, asOf time.Time) (map[string][]models.SchedulableItem, error)
	// CalendarDay returns the items for one date, ordered for display.
	CalendarDay(date string, asOf time.Time) ([]models.SchedulableItem, error)
	// TechnicianWorkload counts same-day assigned items per technician.
	TechnicianWorkload(date string, asOf time.Time) (map[string]int, error)
}

// DefaultScheduleService is the standard implementation backed by the
// persistence layer repositories.
type DefaultScheduleService struct {
	Properties  propertyRepo.PropertyRepository
	Plans       planRepo.PlanRepository
	Inspections inspectionRepo.InspectionRepository
	Requests    requestRepo.RequestRepository

	// Tuning knobs; zero values fall back to the configured defaults.
	QueuePageSize     int
	QueueMaxEntries   int
	DueSoonWindowDays int
}

const (
	defaultQueuePageSize     = 50
	defaultQueueMaxEntries   = 20
	defaultDueSoonWindowDays = 7
)

func (s *DefaultScheduleService) pageSize() int {
	if s.QueuePageSize > 0 {
		return s.QueuePageSize
	}
	return defaultQueuePageSize
}

func (s *DefaultScheduleService) maxEntries() int {
	if s.QueueMaxEntries > 0 {
		return s.QueueMaxEntries
	}
	return defaultQueueMaxEntries
}

func (s *DefaultScheduleService) dueSoonWindow() int {
	if s.DueSoonWindowDays > 0 {
		return s.DueSoonWindowDays
	}
	return defaultDueSoonWindowDays
}
