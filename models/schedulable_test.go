package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestItemFromInspection(t *testing.T) {
	insp := Inspection{
		ID:            "i-1",
		PropertyID:    "p-1",
		TechnicianID:  "t-1",
		ScheduledDate: "2025-06-02",
		ScheduledTime: "09:00",
		Status:        InspectionStatusScheduled,
	}

	item := ItemFromInspection(insp, "Hillside House")

	assert.Equal(t, KindInspection, item.Kind)
	assert.Equal(t, "inspection:i-1", item.Key())
	assert.Equal(t, "Inspection — Hillside House", item.Title)
	assert.Equal(t, "2025-06-02", item.Date)
	assert.Equal(t, "09:00", item.Time)
	assert.Zero(t, item.SLAAgeDays)
}

func TestItemFromRequestSLAAge(t *testing.T) {
	asOf := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	req := ServiceRequest{
		ID:         "r-1",
		PropertyID: "p-1",
		Title:      "Broken gate",
		Priority:   RequestPriorityHigh,
		Status:     RequestStatusPending,
		CreatedAt:  asOf.AddDate(0, 0, -3),
	}

	item := ItemFromRequest(req, "Hillside House", asOf)

	assert.Equal(t, KindService, item.Kind)
	assert.Equal(t, "service:r-1", item.Key())
	assert.Equal(t, "Broken gate", item.Title)
	assert.Equal(t, 3, item.SLAAgeDays)
	assert.Empty(t, item.Date)

	// A clock skewed behind the created timestamp never reports negative age.
	skewed := ItemFromRequest(req, "Hillside House", req.CreatedAt.AddDate(0, 0, -1))
	assert.Zero(t, skewed.SLAAgeDays)
}

func TestKeyDisambiguatesKinds(t *testing.T) {
	insp := ItemFromInspection(Inspection{ID: "42", PropertyID: "p-1"}, "X")
	req := ItemFromRequest(ServiceRequest{ID: "42", PropertyID: "p-1"}, "X", time.Now())
	assert.NotEqual(t, insp.Key(), req.Key())
}
