package models

import "time"

// Schedulable item kinds. Item ids are unique only within a kind, so
// consumers must always key on (Kind, ID).
const (
	KindInspection = "inspection"
	KindService    = "service"
)

// SchedulableItem is the tagged-variant projection of an Inspection or a
// ServiceRequest into the single shape the calendar, workload and route
// views consume. It is derived on read and never persisted.
type SchedulableItem struct {
	Kind         string `json:"kind"` // "inspection" or "service"
	ID           string `json:"id"`
	Title        string `json:"title"`
	PropertyID   string `json:"property_id"`
	PropertyName string `json:"property_name,omitempty"`
	TechnicianID string `json:"technician_id,omitempty"`
	Date         string `json:"date"`                     // "YYYY-MM-DD"
	Time         string `json:"time,omitempty"`           // "HH:MM", empty renders as "TBD"
	Status       string `json:"status"`
	SLAAgeDays   int    `json:"sla_age_days,omitempty"`   // service requests only
}

// Key returns the composite identity of the item.
func (it SchedulableItem) Key() string {
	return it.Kind + ":" + it.ID
}

// ItemFromInspection projects an inspection into the schedulable shape.
func ItemFromInspection(insp Inspection, propertyName string) SchedulableItem {
	return SchedulableItem{
		Kind:         KindInspection,
		ID:           insp.ID,
		Title:        "Inspection — " + propertyName,
		PropertyID:   insp.PropertyID,
		PropertyName: propertyName,
		TechnicianID: insp.TechnicianID,
		Date:         insp.ScheduledDate,
		Time:         insp.ScheduledTime,
		Status:       insp.Status,
	}
}

// ItemFromRequest projects a service request into the schedulable shape.
// SLA age is the number of whole days elapsed since the request was raised,
// evaluated against asOf so callers control the clock.
func ItemFromRequest(req ServiceRequest, propertyName string, asOf time.Time) SchedulableItem {
	ageDays := int(asOf.Sub(req.CreatedAt).Hours() / 24)
	if ageDays < 0 {
		ageDays = 0
	}
	return SchedulableItem{
		Kind:         KindService,
		ID:           req.ID,
		Title:        req.Title,
		PropertyID:   req.PropertyID,
		PropertyName: propertyName,
		TechnicianID: req.TechnicianID,
		Date:         req.ScheduledDate,
		Time:         req.ScheduledTime,
		Status:       req.Status,
		SLAAgeDays:   ageDays,
	}
}
