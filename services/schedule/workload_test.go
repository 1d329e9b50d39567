package schedule

import (
	"testing"
	"time"

	"fieldserve/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTechnicianWorkloadCountsAssignedItems(t *testing.T) {
	inspRepo := new(mockInspectionRepo)
	inspRepo.On("GetActiveInRange", "2025-06-02", "2025-06-02").Return([]models.Inspection{
		{ID: "i-1", PropertyID: "p-1", TechnicianID: "t-1", ScheduledDate: "2025-06-02", Status: models.InspectionStatusScheduled},
		{ID: "i-2", PropertyID: "p-1", TechnicianID: "t-1", ScheduledDate: "2025-06-02", Status: models.InspectionStatusScheduled},
		{ID: "i-3", PropertyID: "p-2", TechnicianID: "t-1", ScheduledDate: "2025-06-02", Status: models.InspectionStatusInProgress},
		{ID: "i-4", PropertyID: "p-2", TechnicianID: "t-2", ScheduledDate: "2025-06-02", Status: models.InspectionStatusScheduled},
		{ID: "i-5", PropertyID: "p-2", ScheduledDate: "2025-06-02", Status: models.InspectionStatusScheduled}, // unassigned
	}, nil)

	reqRepo := new(mockRequestRepo)
	reqRepo.On("GetActiveInRange", "2025-06-02", "2025-06-02").Return([]models.ServiceRequest{
		{ID: "r-1", PropertyID: "p-1", TechnicianID: "t-1", Status: models.RequestStatusScheduled, ScheduledDate: "2025-06-02"},
	}, nil)

	propRepo := new(mockPropertyRepo)
	propRepo.On("GetByIDs", mock.Anything).Return(map[string]models.Property{
		"p-1": {ID: "p-1", Name: "One"},
		"p-2": {ID: "p-2", Name: "Two"},
	}, nil)

	svc := &DefaultScheduleService{
		Properties:  propRepo,
		Plans:       new(mockPlanRepo),
		Inspections: inspRepo,
		Requests:    reqRepo,
	}

	workload, err := svc.TechnicianWorkload("2025-06-02", time.Now())
	require.NoError(t, err)

	// 3 inspections + 1 request for t-1, a single inspection for t-2, and
	// the unassigned item counted for nobody.
	assert.Equal(t, 4, workload["t-1"])
	assert.Equal(t, 1, workload["t-2"])
	assert.NotContains(t, workload, "")
}

func TestAvailabilityLabel(t *testing.T) {
	assert.Equal(t, "available", AvailabilityLabel(0))
	assert.Equal(t, "1 job(s) today", AvailabilityLabel(1))
	assert.Equal(t, "4 job(s) today", AvailabilityLabel(4))
}
