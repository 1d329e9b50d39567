package models

// RouteStop is one visit within a technician's ordered itinerary for a day.
// Order is the only field the scheduling core owns: a dense 1-based sequence
// per (technician, date), renumbered atomically on reorder.
type RouteStop struct {
	ID            string `bson:"id" json:"id"`
	TechnicianID  string `bson:"technician_id" json:"technician_id"`
	Date          string `bson:"date" json:"date"` // "YYYY-MM-DD"
	Kind          string `bson:"kind" json:"kind"` // schedulable item kind
	ItemID        string `bson:"item_id" json:"item_id"`
	PropertyID    string `bson:"property_id" json:"property_id"`
	Title         string `bson:"title" json:"title"` // display label, doubles as the stop address line
	ScheduledTime string `bson:"scheduled_time,omitempty" json:"scheduled_time,omitempty"`
	Order         int    `bson:"order" json:"order"`
}
