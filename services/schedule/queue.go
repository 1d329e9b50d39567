package schedule

import (
	"fmt"
	"sort"
	"time"

	"fieldserve/models"
	"fieldserve/utils"

	"go.uber.org/zap"
)

// BuildUnscheduledQueue evaluates a bounded page of active properties against
// their service plans and returns the overdue and due-soon ones, capped and
// sorted most urgent first. A property whose plan or visit history cannot be
// joined is skipped rather than failing the whole build.
func (s *DefaultScheduleService) BuildUnscheduledQueue(asOf time.Time) ([]models.UnscheduledQueueEntry, error) {
	logger := utils.GetLogger()

	properties, err := s.Properties.GetActive(s.pageSize())
	if err != nil {
		return nil, fmt.Errorf("queue build: %w", err)
	}
	if len(properties) == 0 {
		return []models.UnscheduledQueueEntry{}, nil
	}

	propertyIDs := make([]string, 0, len(properties))
	planIDs := make([]string, 0, len(properties))
	for _, p := range properties {
		propertyIDs = append(propertyIDs, p.ID)
		planIDs = append(planIDs, p.ServicePlanID)
	}

	plans, err := s.Plans.GetByIDs(planIDs)
	if err != nil {
		return nil, fmt.Errorf("queue build: %w", err)
	}
	lastVisits, err := s.Inspections.LatestCompletedByProperty(propertyIDs)
	if err != nil {
		return nil, fmt.Errorf("queue build: %w", err)
	}

	entries := make([]models.UnscheduledQueueEntry, 0, len(properties))
	for _, property := range properties {
		plan, ok := plans[property.ServicePlanID]
		if !ok || plan.VisitFrequencyDays <= 0 {
			logger.Warn("skipping property with unusable service plan",
				zap.String("propertyId", property.ID),
				zap.String("planId", property.ServicePlanID))
			continue
		}

		var lastCompleted *time.Time
		if t, ok := lastVisits[property.ID]; ok {
			lastCompleted = &t
		}

		entry := EvaluateStaleness(property, plan, lastCompleted, asOf, s.dueSoonWindow())
		if entry.Priority == models.QueuePriorityUpcoming {
			continue
		}
		entries = append(entries, entry)
	}

	sortQueue(entries)

	if len(entries) > s.maxEntries() {
		entries = entries[:s.maxEntries()]
	}
	return entries, nil
}

// sortQueue orders entries overdue before due-soon, then by descending days
// since the last visit; never-visited properties sort as most urgent.
func sortQueue(entries []models.UnscheduledQueueEntry) {
	rank := func(priority string) int {
		if priority == models.QueuePriorityOverdue {
			return 0
		}
		return 1
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if rank(entries[i].Priority) != rank(entries[j].Priority) {
			return rank(entries[i].Priority) < rank(entries[j].Priority)
		}
		di, dj := entries[i].DaysSinceLastVisit, entries[j].DaysSinceLastVisit
		if di == nil {
			return dj != nil
		}
		if dj == nil {
			return false
		}
		return *di > *dj
	})
}
