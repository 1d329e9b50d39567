package route

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"fieldserve/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type mockRouteRepo struct {
	mock.Mock
}

func (m *mockRouteRepo) ListByTechnicianAndDate(technicianID, date string) ([]models.RouteStop, error) {
	args := m.Called(technicianID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RouteStop), args.Error(1)
}

func (m *mockRouteRepo) Create(stop *models.RouteStop) error {
	args := m.Called(stop)
	return args.Error(0)
}

func (m *mockRouteRepo) RenumberStops(ctx context.Context, technicianID, date string, orderedStopIDs []string) error {
	args := m.Called(ctx, technicianID, date, orderedStopIDs)
	return args.Error(0)
}

type mockTechnicianRepo struct {
	mock.Mock
}

func (m *mockTechnicianRepo) GetByID(id string) (*models.Technician, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Technician), args.Error(1)
}

func (m *mockTechnicianRepo) GetAllActive() ([]models.Technician, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Technician), args.Error(1)
}

func (m *mockTechnicianRepo) GetByTokenHash(tokenHash string) (*models.Technician, error) {
	args := m.Called(tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Technician), args.Error(1)
}

func routeFixture() []models.RouteStop {
	return []models.RouteStop{
		{ID: "stop-1", TechnicianID: "t-1", Date: "2025-06-02", Order: 1, Title: "12 Hillside Rd"},
		{ID: "stop-2", TechnicianID: "t-1", Date: "2025-06-02", Order: 2, Title: "48 Lakeview Ave"},
		{ID: "stop-3", TechnicianID: "t-1", Date: "2025-06-02", Order: 3, Title: "3 Meadow Ln"},
	}
}

func TestListStops(t *testing.T) {
	repo := new(mockRouteRepo)
	repo.On("ListByTechnicianAndDate", "t-1", "2025-06-02").Return(routeFixture(), nil)

	techs := new(mockTechnicianRepo)
	techs.On("GetByID", "t-1").Return(&models.Technician{ID: "t-1", Name: "Dana"}, nil)

	svc := &DefaultRouteService{Repo: repo, Technicians: techs}

	stops, err := svc.ListStops("t-1", "2025-06-02")
	require.NoError(t, err)
	require.Len(t, stops, 3)
	assert.Equal(t, 1, stops[0].Order)
	assert.Equal(t, "stop-1", stops[0].ID)
}

func TestListStopsUnknownTechnician(t *testing.T) {
	techs := new(mockTechnicianRepo)
	techs.On("GetByID", "ghost").Return(nil, fmt.Errorf("technician ghost: %w", mongo.ErrNoDocuments))

	svc := &DefaultRouteService{Repo: new(mockRouteRepo), Technicians: techs}

	_, err := svc.ListStops("ghost", "2025-06-02")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "ghost", notFound.TechnicianID)
}

func TestListStopsEmptyDayIsEmptySlice(t *testing.T) {
	repo := new(mockRouteRepo)
	repo.On("ListByTechnicianAndDate", "t-1", "2025-06-03").Return(nil, nil)

	techs := new(mockTechnicianRepo)
	techs.On("GetByID", "t-1").Return(&models.Technician{ID: "t-1"}, nil)

	svc := &DefaultRouteService{Repo: repo, Technicians: techs}

	stops, err := svc.ListStops("t-1", "2025-06-03")
	require.NoError(t, err)
	assert.NotNil(t, stops)
	assert.Empty(t, stops)
}

func TestReorderRenumbersInSubmittedSequence(t *testing.T) {
	submitted := []string{"stop-3", "stop-1", "stop-2"}

	repo := new(mockRouteRepo)
	repo.On("ListByTechnicianAndDate", "t-1", "2025-06-02").Return(routeFixture(), nil)
	repo.On("RenumberStops", mock.Anything, "t-1", "2025-06-02", submitted).Return(nil)

	svc := &DefaultRouteService{Repo: repo, Technicians: new(mockTechnicianRepo)}

	err := svc.Reorder(context.Background(), "t-1", "2025-06-02", submitted)
	require.NoError(t, err)
	repo.AssertCalled(t, "RenumberStops", mock.Anything, "t-1", "2025-06-02", submitted)
}

func TestReorderIdempotent(t *testing.T) {
	same := []string{"stop-1", "stop-2", "stop-3"}

	repo := new(mockRouteRepo)
	repo.On("ListByTechnicianAndDate", "t-1", "2025-06-02").Return(routeFixture(), nil)
	repo.On("RenumberStops", mock.Anything, "t-1", "2025-06-02", same).Return(nil)

	svc := &DefaultRouteService{Repo: repo, Technicians: new(mockTechnicianRepo)}

	require.NoError(t, svc.Reorder(context.Background(), "t-1", "2025-06-02", same))
	require.NoError(t, svc.Reorder(context.Background(), "t-1", "2025-06-02", same))
	repo.AssertNumberOfCalls(t, "RenumberStops", 2)
}

func TestReorderRejectsMismatchedIDSets(t *testing.T) {
	tests := []struct {
		name      string
		submitted []string
	}{
		{"empty list", nil},
		{"duplicate id", []string{"stop-1", "stop-1", "stop-2"}},
		{"foreign id", []string{"stop-1", "stop-2", "stop-99"}},
		{"missing id", []string{"stop-1", "stop-2"}},
		{"extra id", []string{"stop-1", "stop-2", "stop-3", "stop-4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockRouteRepo)
			repo.On("ListByTechnicianAndDate", "t-1", "2025-06-02").Return(routeFixture(), nil)

			svc := &DefaultRouteService{Repo: repo, Technicians: new(mockTechnicianRepo)}

			err := svc.Reorder(context.Background(), "t-1", "2025-06-02", tt.submitted)
			var reorderErr *ReorderError
			require.ErrorAs(t, err, &reorderErr)
			assert.Equal(t, "reorderError", reorderErr.Code)

			// Validation failures never reach the write path.
			repo.AssertNotCalled(t, "RenumberStops", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestReorderSurfacesTransactionFailure(t *testing.T) {
	submitted := []string{"stop-2", "stop-3", "stop-1"}

	repo := new(mockRouteRepo)
	repo.On("ListByTechnicianAndDate", "t-1", "2025-06-02").Return(routeFixture(), nil)
	repo.On("RenumberStops", mock.Anything, "t-1", "2025-06-02", submitted).Return(errors.New("transaction aborted"))

	svc := &DefaultRouteService{Repo: repo, Technicians: new(mockTechnicianRepo)}

	err := svc.Reorder(context.Background(), "t-1", "2025-06-02", submitted)
	require.Error(t, err)
	var reorderErr *ReorderError
	assert.False(t, errors.As(err, &reorderErr))
}
