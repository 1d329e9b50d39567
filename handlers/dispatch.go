package handlers

import (
	"net/http"
	"time"

	"fieldserve/services/schedule"
	"fieldserve/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DispatchHandler serves the dispatcher dashboard: the unscheduled work
// queue, the calendar views and technician workload.
type DispatchHandler struct {
	Service schedule.ScheduleService
	Logger  *zap.Logger
}

func NewDispatchHandler(svc schedule.ScheduleService, logger *zap.Logger) *DispatchHandler {
	return &DispatchHandler{Service: svc, Logger: logger}
}

// parseDateParam validates a "YYYY-MM-DD" value, using fallback when empty.
func parseDateParam(value, fallback string) (string, bool) {
	if value == "" {
		value = fallback
	}
	if _, err := time.Parse(utils.DateLayout, value); err != nil {
		return "", false
	}
	return value, true
}

// GetUnscheduledQueueHandler returns the properties due or overdue for a
// visit, most urgent first.
func (h *DispatchHandler) GetUnscheduledQueueHandler(c *gin.Context) {
	asOf := time.Now()
	if raw := c.Query("as_of"); raw != "" {
		parsed, err := time.Parse(utils.DateLayout, raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid as_of date", "expected YYYY-MM-DD")
			return
		}
		asOf = parsed
	}

	entries, err := h.Service.BuildUnscheduledQueue(asOf)
	if err != nil {
		h.Logger.Error("failed to build unscheduled queue", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to build unscheduled queue", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"queue": entries})
}

// GetCalendarHandler returns all active items in [from, to] grouped by date.
func (h *DispatchHandler) GetCalendarHandler(c *gin.Context) {
	from, okFrom := parseDateParam(c.Query("from"), "")
	to, okTo := parseDateParam(c.Query("to"), "")
	if !okFrom || !okTo {
		utils.JSONError(c, http.StatusBadRequest, "invalid calendar range", "from and to must be YYYY-MM-DD")
		return
	}

	grouped, err := h.Service.AggregateCalendar(from, to, time.Now())
	if err != nil {
		h.Logger.Error("failed to aggregate calendar", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to aggregate calendar", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": grouped})
}

// GetCalendarDayHandler returns the display-ordered items for one date.
func (h *DispatchHandler) GetCalendarDayHandler(c *gin.Context) {
	date, ok := parseDateParam(c.Param("date"), "")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", "expected YYYY-MM-DD")
		return
	}

	items, err := h.Service.CalendarDay(date, time.Now())
	if err != nil {
		h.Logger.Error("failed to load calendar day", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load calendar day", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "items": items})
}

// GetWorkloadHandler returns per-technician counts and availability labels
// for one date (defaults to today).
func (h *DispatchHandler) GetWorkloadHandler(c *gin.Context) {
	date, ok := parseDateParam(c.Query("date"), time.Now().Format(utils.DateLayout))
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", "expected YYYY-MM-DD")
		return
	}

	workload, err := h.Service.TechnicianWorkload(date, time.Now())
	if err != nil {
		h.Logger.Error("failed to compute workload", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute workload", err.Error())
		return
	}

	labels := make(map[string]string, len(workload))
	for technicianID, count := range workload {
		labels[technicianID] = schedule.AvailabilityLabel(count)
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "workload": workload, "labels": labels})
}
