package schedule

import (
	"fmt"
	"sort"
	"time"

	"fieldserve/models"
	"fieldserve/utils"

	"go.uber.org/zap"
)

// maxCalendarRangeDays bounds a single aggregation window.
const maxCalendarRangeDays = 366

// AggregateCalendar fetches every active inspection and service request whose
// date falls inside [from, to] and groups them by ISO date. Each date in the
// range gets a key even when it has no items, so "empty day" and "day not in
// the loaded window" stay distinguishable for the caller.
func (s *DefaultScheduleService) AggregateCalendar(from, to string, asOf time.Time) (map[string][]models.SchedulableItem, error) {
	start, err := time.Parse(utils.DateLayout, from)
	if err != nil {
		return nil, fmt.Errorf("invalid range start %q: %w", from, err)
	}
	end, err := time.Parse(utils.DateLayout, to)
	if err != nil {
		return nil, fmt.Errorf("invalid range end %q: %w", to, err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("range end %s precedes start %s", to, from)
	}
	if end.Sub(start) > maxCalendarRangeDays*24*time.Hour {
		return nil, fmt.Errorf("range [%s, %s] exceeds %d days", from, to, maxCalendarRangeDays)
	}

	items, err := s.collectItems(from, to, asOf)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]models.SchedulableItem)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		grouped[d.Format(utils.DateLayout)] = []models.SchedulableItem{}
	}
	for _, item := range items {
		grouped[item.Date] = append(grouped[item.Date], item)
	}
	for date := range grouped {
		sortDayItems(grouped[date])
	}
	return grouped, nil
}

// CalendarDay returns the display-ordered items for a single date. It is the
// same aggregation as the month view narrowed to one day, not a separate
// fetch path.
func (s *DefaultScheduleService) CalendarDay(date string, asOf time.Time) ([]models.SchedulableItem, error) {
	grouped, err := s.AggregateCalendar(date, date, asOf)
	if err != nil {
		return nil, err
	}
	return grouped[date], nil
}

// collectItems projects active inspections and requests in the window into
// schedulable items, joining property names in one batched lookup. An item
// whose property cannot be joined is dropped with a warning rather than
// failing the batch.
func (s *DefaultScheduleService) collectItems(from, to string, asOf time.Time) ([]models.SchedulableItem, error) {
	logger := utils.GetLogger()

	inspections, err := s.Inspections.GetActiveInRange(from, to)
	if err != nil {
		return nil, fmt.Errorf("calendar aggregation: %w", err)
	}
	requests, err := s.Requests.GetActiveInRange(from, to)
	if err != nil {
		return nil, fmt.Errorf("calendar aggregation: %w", err)
	}

	idSet := make(map[string]struct{})
	for _, insp := range inspections {
		idSet[insp.PropertyID] = struct{}{}
	}
	for _, req := range requests {
		idSet[req.PropertyID] = struct{}{}
	}
	propertyIDs := make([]string, 0, len(idSet))
	for id := range idSet {
		propertyIDs = append(propertyIDs, id)
	}

	properties, err := s.Properties.GetByIDs(propertyIDs)
	if err != nil {
		return nil, fmt.Errorf("calendar aggregation: %w", err)
	}

	items := make([]models.SchedulableItem, 0, len(inspections)+len(requests))
	for _, insp := range inspections {
		property, ok := properties[insp.PropertyID]
		if !ok {
			logger.Warn("skipping inspection with unresolvable property",
				zap.String("inspectionId", insp.ID),
				zap.String("propertyId", insp.PropertyID))
			continue
		}
		items = append(items, models.ItemFromInspection(insp, property.Name))
	}
	for _, req := range requests {
		property, ok := properties[req.PropertyID]
		if !ok {
			logger.Warn("skipping service request with unresolvable property",
				zap.String("requestId", req.ID),
				zap.String("propertyId", req.PropertyID))
			continue
		}
		items = append(items, models.ItemFromRequest(req, property.Name, asOf))
	}
	return items, nil
}

// sortDayItems orders one day's items for display: timed items ascending by
// time, items without a time after all timed ones (rendered as "TBD"), with
// (kind, id) as the deterministic tie-break.
func sortDayItems(items []models.SchedulableItem) {
	sort.SliceStable(items, func(i, j int) bool {
		ti, tj := items[i].Time, items[j].Time
		if (ti == "") != (tj == "") {
			return tj == ""
		}
		if ti != tj {
			return ti < tj
		}
		return items[i].Key() < items[j].Key()
	})
}
