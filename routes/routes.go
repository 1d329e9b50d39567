package routes

import (
	"net/http"
	"time"

	"fieldserve/handlers"
	"fieldserve/middleware"
	"fieldserve/models"
	"fieldserve/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterDispatchRoutes registers the dispatcher dashboard endpoints.
// Dispatching is a staff concern; technicians consult their own route instead.
func RegisterDispatchRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/dispatch")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.TechnicianRepo))
		api.Use(middleware.RequireRole(models.RoleStaff, models.RoleAdmin))
		api.GET("/queue", hb.Dispatch.GetUnscheduledQueueHandler)
		api.GET("/calendar", hb.Dispatch.GetCalendarHandler)
		api.GET("/calendar/:date", hb.Dispatch.GetCalendarDayHandler)
		api.GET("/workload", hb.Dispatch.GetWorkloadHandler)
	}
}

// RegisterRoutePlanRoutes registers the technician route endpoints. Any
// authenticated user can view a route; reordering stays with dispatch staff.
func RegisterRoutePlanRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/routes")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.TechnicianRepo))
		api.GET("/:technicianID", hb.Route.ListRouteStopsHandler)
		api.PUT("/:technicianID/reorder",
			middleware.RequireRole(models.RoleStaff, models.RoleAdmin),
			hb.Route.ReorderRouteHandler)
	}
}

// RegisterStatusRoutes registers the status transition endpoint shared by
// status buttons and kanban drags.
func RegisterStatusRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/status")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.TechnicianRepo))
		api.PATCH("/:kind/:id", hb.Status.ApplyStatusTransitionHandler)
	}
}

// RegisterLookupRoutes registers the read-only record lookups.
func RegisterLookupRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.TechnicianRepo))
		api.GET("/properties/:id", hb.Lookup.GetPropertyByIDHandler)
		api.GET("/technicians", hb.Lookup.ListTechniciansHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterMetricsRoute exposes Prometheus metrics.
func RegisterMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterRoutes wires CORS and all route groups onto the engine.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterMetricsRoute(r)
	RegisterDispatchRoutes(r, hb)
	RegisterRoutePlanRoutes(r, hb)
	RegisterStatusRoutes(r, hb)
	RegisterLookupRoutes(r, hb)
}
