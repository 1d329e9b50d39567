package handlers

import (
	"errors"
	"net/http"

	"fieldserve/metrics"
	"fieldserve/middleware"
	"fieldserve/services/status"
	"fieldserve/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StatusHandler applies status transitions to inspections and service
// requests. Both the status buttons and kanban column drags post here.
type StatusHandler struct {
	Service status.StatusService
	Logger  *zap.Logger
}

func NewStatusHandler(svc status.StatusService, logger *zap.Logger) *StatusHandler {
	return &StatusHandler{Service: svc, Logger: logger}
}

// ApplyStatusTransitionHandler moves one item to a target status. A rejected
// transition means nothing was persisted, so the client rolls its optimistic
// update back.
func (h *StatusHandler) ApplyStatusTransitionHandler(c *gin.Context) {
	kind := c.Param("kind")
	id := c.Param("id")

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	actor := status.Actor{
		ID:   c.GetString(middleware.ContextActorID),
		Role: c.GetString(middleware.ContextActorRole),
	}

	result, err := h.Service.ApplyTransition(kind, id, input.Status, actor)
	if err != nil {
		var transitionErr *status.TransitionError
		if errors.As(err, &transitionErr) {
			metrics.TransitionsRejected.Inc()
			utils.JSONError(c, http.StatusBadRequest, "transition rejected", transitionErr.Message)
			return
		}
		var notFound *status.NotFoundError
		if errors.As(err, &notFound) {
			utils.JSONError(c, http.StatusNotFound, "item not found", notFound.Error())
			return
		}
		h.Logger.Error("status transition failed",
			zap.String("kind", kind),
			zap.String("id", id),
			zap.String("target", input.Status),
			zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "transition failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}
