package handlers

import (
	technicianRepo "fieldserve/database/repository/technician"
)

// HandlerBundle groups the wired handlers and the repositories the middleware
// needs, so route registration takes a single argument.
type HandlerBundle struct {
	TechnicianRepo technicianRepo.TechnicianRepository

	Dispatch *DispatchHandler
	Route    *RouteHandler
	Status   *StatusHandler
	Lookup   *LookupHandler
}
