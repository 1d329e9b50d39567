package schedule

import (
	"fmt"
	"time"
)

// TechnicianWorkload counts the schedulable items assigned to each technician
// on the given date. Unassigned items are not counted. The result is
// recomputed on every call since assignments can change between reads.
func (s *DefaultScheduleService) TechnicianWorkload(date string, asOf time.Time) (map[string]int, error) {
	items, err := s.collectItems(date, date, asOf)
	if err != nil {
		return nil, fmt.Errorf("workload computation: %w", err)
	}

	workload := make(map[string]int)
	for _, item := range items {
		if item.TechnicianID == "" {
			continue
		}
		workload[item.TechnicianID]++
	}
	return workload, nil
}

// AvailabilityLabel renders a workload count the way the dispatch board
// displays it.
func AvailabilityLabel(count int) string {
	if count == 0 {
		return "available"
	}
	return fmt.Sprintf("%d job(s) today", count)
}
