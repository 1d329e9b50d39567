package handlers

import (
	"errors"
	"net/http"

	"fieldserve/metrics"
	"fieldserve/services/route"
	"fieldserve/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RouteHandler serves a technician's daily route and manual re-sequencing.
type RouteHandler struct {
	Service route.RouteService
	Logger  *zap.Logger
}

func NewRouteHandler(svc route.RouteService, logger *zap.Logger) *RouteHandler {
	return &RouteHandler{Service: svc, Logger: logger}
}

// ListRouteStopsHandler returns the technician's stops for a date in
// persisted order.
func (h *RouteHandler) ListRouteStopsHandler(c *gin.Context) {
	technicianID := c.Param("technicianID")
	date, ok := parseDateParam(c.Query("date"), "")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", "expected YYYY-MM-DD")
		return
	}

	stops, err := h.Service.ListStops(technicianID, date)
	if err != nil {
		var notFound *route.NotFoundError
		if errors.As(err, &notFound) {
			utils.JSONError(c, http.StatusNotFound, "technician not found", notFound.Error())
			return
		}
		h.Logger.Error("failed to list route stops", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list route stops", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"technician_id": technicianID, "date": date, "stops": stops})
}

// ReorderRouteHandler rewrites the stop sequence for a technician-day. On
// failure nothing has changed server-side, so the client snaps its board back
// to the previous order.
func (h *RouteHandler) ReorderRouteHandler(c *gin.Context) {
	technicianID := c.Param("technicianID")

	var input struct {
		Date           string   `json:"date" binding:"required"`
		OrderedStopIDs []string `json:"ordered_stop_ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	date, ok := parseDateParam(input.Date, "")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", "expected YYYY-MM-DD")
		return
	}

	if err := h.Service.Reorder(c.Request.Context(), technicianID, date, input.OrderedStopIDs); err != nil {
		var reorderErr *route.ReorderError
		if errors.As(err, &reorderErr) {
			utils.JSONError(c, http.StatusBadRequest, "reorder rejected", reorderErr.Message)
			return
		}
		metrics.ReordersFailed.Inc()
		h.Logger.Error("route reorder failed",
			zap.String("technicianId", technicianID),
			zap.String("date", date),
			zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "reorder failed", err.Error())
		return
	}

	stops, err := h.Service.ListStops(technicianID, date)
	if err != nil {
		// The reorder committed; return success without the refreshed list.
		c.JSON(http.StatusOK, gin.H{"technician_id": technicianID, "date": date})
		return
	}
	c.JSON(http.StatusOK, gin.H{"technician_id": technicianID, "date": date, "stops": stops})
}
