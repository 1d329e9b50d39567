package schedule

import (
	"testing"
	"time"

	"fieldserve/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func daysAgo(asOf time.Time, days int) *time.Time {
	t := asOf.AddDate(0, 0, -days)
	return &t
}

func TestEvaluateStaleness(t *testing.T) {
	asOf := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	property := models.Property{ID: "prop-1", Name: "Hillside House", Status: models.PropertyStatusActive}
	plan := models.ServicePlan{ID: "plan-1", Name: "Monthly", VisitFrequencyDays: 30}

	tests := []struct {
		name          string
		lastCompleted *time.Time
		wantPriority  string
		wantDays      *int
	}{
		{
			name:          "never visited is overdue with nil days",
			lastCompleted: nil,
			wantPriority:  models.QueuePriorityOverdue,
			wantDays:      nil,
		},
		{
			name:          "40 days ago on a 30 day plan is overdue",
			lastCompleted: daysAgo(asOf, 40),
			wantPriority:  models.QueuePriorityOverdue,
			wantDays:      intPtr(40),
		},
		{
			name:          "25 days ago on a 30 day plan is due soon",
			lastCompleted: daysAgo(asOf, 25),
			wantPriority:  models.QueuePriorityDueSoon,
			wantDays:      intPtr(25),
		},
		{
			name:          "exactly at frequency is due soon, not overdue",
			lastCompleted: daysAgo(asOf, 30),
			wantPriority:  models.QueuePriorityDueSoon,
			wantDays:      intPtr(30),
		},
		{
			name:          "just past frequency is overdue",
			lastCompleted: daysAgo(asOf, 31),
			wantPriority:  models.QueuePriorityOverdue,
			wantDays:      intPtr(31),
		},
		{
			name:          "at the due-soon boundary stays upcoming",
			lastCompleted: daysAgo(asOf, 23),
			wantPriority:  models.QueuePriorityUpcoming,
			wantDays:      intPtr(23),
		},
		{
			name:          "one past the due-soon boundary is due soon",
			lastCompleted: daysAgo(asOf, 24),
			wantPriority:  models.QueuePriorityDueSoon,
			wantDays:      intPtr(24),
		},
		{
			name:          "recent visit is upcoming",
			lastCompleted: daysAgo(asOf, 5),
			wantPriority:  models.QueuePriorityUpcoming,
			wantDays:      intPtr(5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := EvaluateStaleness(property, plan, tt.lastCompleted, asOf, 7)

			assert.Equal(t, tt.wantPriority, entry.Priority)
			assert.Equal(t, plan.VisitFrequencyDays, entry.VisitFrequencyDays)
			assert.Equal(t, property.ID, entry.Property.ID)
			if tt.wantDays == nil {
				assert.Nil(t, entry.DaysSinceLastVisit)
				assert.Empty(t, entry.LastVisitDate)
			} else {
				require.NotNil(t, entry.DaysSinceLastVisit)
				assert.Equal(t, *tt.wantDays, *entry.DaysSinceLastVisit)
				assert.Equal(t, tt.lastCompleted.Format("2006-01-02"), entry.LastVisitDate)
			}
		})
	}
}

func TestEvaluateStalenessIsDeterministic(t *testing.T) {
	asOf := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	property := models.Property{ID: "prop-1"}
	plan := models.ServicePlan{ID: "plan-1", VisitFrequencyDays: 14}
	last := daysAgo(asOf, 10)

	first := EvaluateStaleness(property, plan, last, asOf, 7)
	second := EvaluateStaleness(property, plan, last, asOf, 7)
	assert.Equal(t, first, second)
}

func intPtr(v int) *int { return &v }
