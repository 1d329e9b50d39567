package route

import "fmt"

// ReorderError is a validation failure of a reorder request: the submitted
// stop ids do not describe the technician-day exactly. Nothing has been
// written when it is returned.
type ReorderError struct {
	Code    string
	Message string
}

func (e *ReorderError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewReorderError(msg string) error {
	return &ReorderError{
		Code:    "reorderError",
		Message: msg,
	}
}

// NotFoundError reports a referenced technician that does not exist.
type NotFoundError struct {
	TechnicianID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("technician %s not found", e.TechnicianID)
}
