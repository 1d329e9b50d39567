package models

// Roles as stored on the user record.
const (
	RoleTechnician = "technician"
	RoleStaff      = "staff"
	RoleAdmin      = "admin"
)

// Technician statuses.
const (
	TechnicianStatusActive   = "active"
	TechnicianStatusInactive = "inactive"
)

// Technician is a field worker who executes inspections and service requests.
// Credential records are owned by the identity service; this shape carries
// only what the scheduling core and the auth middleware need.
type Technician struct {
	ID           string `bson:"id" json:"id"`
	Name         string `bson:"name" json:"name"`
	Email        string `bson:"email" json:"email"`
	Role         string `bson:"role" json:"role"`
	Status       string `bson:"status" json:"status"`
	TokenHash    string `bson:"token_hash,omitempty" json:"-"`
	PasswordHash string `bson:"password_hash,omitempty" json:"-"`
}
