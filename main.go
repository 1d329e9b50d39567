// File: fieldserve/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fieldserve/config"
	"fieldserve/cron"
	"fieldserve/database"
	inspectionRepo "fieldserve/database/repository/inspection"
	planRepo "fieldserve/database/repository/plan"
	propertyRepo "fieldserve/database/repository/property"
	requestRepo "fieldserve/database/repository/request"
	routeRepo "fieldserve/database/repository/route"
	technicianRepo "fieldserve/database/repository/technician"
	"fieldserve/handlers"
	"fieldserve/middleware"
	"fieldserve/routes"
	"fieldserve/services/notification"
	routeSvc "fieldserve/services/route"
	"fieldserve/services/schedule"
	statusSvc "fieldserve/services/status"
	"fieldserve/services/tasks"
	"fieldserve/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.MetricsMiddleware())

	// repositories.
	properties := propertyRepo.NewMongoPropertyRepo()
	plans := planRepo.NewMongoPlanRepo()
	inspections := inspectionRepo.NewMongoInspectionRepo()
	requests := requestRepo.NewMongoRequestRepo()
	technicians := technicianRepo.NewMongoTechnicianRepo()
	routeStops := routeRepo.NewMongoRouteRepo()

	// notification task queue.
	taskClient := cron.NewTaskClient()
	defer taskClient.Close()
	cron.InitNotifyWorker(notification.LogNotifier{})

	// services.
	scheduleService := &schedule.DefaultScheduleService{
		Properties:        properties,
		Plans:             plans,
		Inspections:       inspections,
		Requests:          requests,
		QueuePageSize:     config.AppConfig.QueuePageSize,
		QueueMaxEntries:   config.AppConfig.QueueMaxEntries,
		DueSoonWindowDays: config.AppConfig.DueSoonWindowDays,
	}
	routeService := &routeSvc.DefaultRouteService{
		Repo:        routeStops,
		Technicians: technicians,
	}
	statusService := &statusSvc.DefaultStatusService{
		Inspections: inspections,
		Requests:    requests,
		Notifier:    &tasks.AsynqCompletionNotifier{Client: taskClient},
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		TechnicianRepo: technicians,
		Dispatch:       handlers.NewDispatchHandler(scheduleService, logger),
		Route:          handlers.NewRouteHandler(routeService, logger),
		Status:         handlers.NewStatusHandler(statusService, logger),
		Lookup:         handlers.NewLookupHandler(properties, technicians),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor([]*redis.Client{utils.GetAuthCacheClient()}, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
