package schedule

import (
	"time"

	"fieldserve/models"

	"github.com/stretchr/testify/mock"
)

// mockPropertyRepo is a mock implementation of propertyRepo.PropertyRepository.
type mockPropertyRepo struct {
	mock.Mock
}

func (m *mockPropertyRepo) GetByID(id string) (*models.Property, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Property), args.Error(1)
}

func (m *mockPropertyRepo) GetActive(limit int) ([]models.Property, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Property), args.Error(1)
}

func (m *mockPropertyRepo) GetByIDs(ids []string) (map[string]models.Property, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]models.Property), args.Error(1)
}

// mockPlanRepo is a mock implementation of planRepo.PlanRepository.
type mockPlanRepo struct {
	mock.Mock
}

func (m *mockPlanRepo) GetByID(id string) (*models.ServicePlan, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ServicePlan), args.Error(1)
}

func (m *mockPlanRepo) GetByIDs(ids []string) (map[string]models.ServicePlan, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]models.ServicePlan), args.Error(1)
}

// mockInspectionRepo is a mock implementation of inspectionRepo.InspectionRepository.
type mockInspectionRepo struct {
	mock.Mock
}

func (m *mockInspectionRepo) GetByID(id string) (*models.Inspection, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Inspection), args.Error(1)
}

func (m *mockInspectionRepo) GetActiveInRange(from, to string) ([]models.Inspection, error) {
	args := m.Called(from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Inspection), args.Error(1)
}

func (m *mockInspectionRepo) LatestCompletedByProperty(propertyIDs []string) (map[string]time.Time, error) {
	args := m.Called(propertyIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]time.Time), args.Error(1)
}

func (m *mockInspectionRepo) UpdateStatus(id, status string, completedAt *time.Time) error {
	args := m.Called(id, status, completedAt)
	return args.Error(0)
}

// mockRequestRepo is a mock implementation of requestRepo.RequestRepository.
type mockRequestRepo struct {
	mock.Mock
}

func (m *mockRequestRepo) GetByID(id string) (*models.ServiceRequest, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ServiceRequest), args.Error(1)
}

func (m *mockRequestRepo) GetActiveInRange(from, to string) ([]models.ServiceRequest, error) {
	args := m.Called(from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ServiceRequest), args.Error(1)
}

func (m *mockRequestRepo) UpdateStatus(id, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}
