package models

// ServicePlan defines how often a property must receive a completed visit.
// Plans are owned by the broader product; the scheduling core only reads them.
type ServicePlan struct {
	ID                 string `bson:"id" json:"id"`
	Name               string `bson:"name" json:"name"`
	VisitFrequencyDays int    `bson:"visit_frequency_days" json:"visit_frequency_days"` // must be > 0
}
