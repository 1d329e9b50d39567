package status

import (
	"time"

	"fieldserve/models"
	"fieldserve/services/tasks"

	"github.com/stretchr/testify/mock"
)

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

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) NotifyCompleted(payload tasks.VisitCompletedPayload) error {
	args := m.Called(payload)
	return args.Error(0)
}
