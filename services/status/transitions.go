package status

import "fieldserve/models"

// requestTransitions is the service-request state machine. Completed and
// cancelled are terminal.
var requestTransitions = map[string][]string{
	models.RequestStatusPending: {
		models.RequestStatusScheduled,
		models.RequestStatusInProgress,
		models.RequestStatusCancelled,
	},
	models.RequestStatusScheduled: {
		models.RequestStatusInProgress,
		models.RequestStatusCancelled,
	},
	models.RequestStatusInProgress: {
		models.RequestStatusCompleted,
		models.RequestStatusCancelled,
	},
}

// inspectionTransitions is the inspection state machine. Completed, cancelled
// and missed are terminal.
var inspectionTransitions = map[string][]string{
	models.InspectionStatusScheduled: {
		models.InspectionStatusInProgress,
		models.InspectionStatusCancelled,
		models.InspectionStatusMissed,
	},
	models.InspectionStatusInProgress: {
		models.InspectionStatusCompleted,
		models.InspectionStatusCancelled,
	},
}

func transitionAllowed(table map[string][]string, from, to string) bool {
	for _, next := range table[from] {
		if next == to {
			return true
		}
	}
	return false
}

var requestStatuses = map[string]bool{
	models.RequestStatusPending:    true,
	models.RequestStatusScheduled:  true,
	models.RequestStatusInProgress: true,
	models.RequestStatusCompleted:  true,
	models.RequestStatusCancelled:  true,
}

var inspectionStatuses = map[string]bool{
	models.InspectionStatusScheduled:  true,
	models.InspectionStatusInProgress: true,
	models.InspectionStatusCompleted:  true,
	models.InspectionStatusCancelled:  true,
	models.InspectionStatusMissed:     true,
}
