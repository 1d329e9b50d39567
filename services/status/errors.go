package status

import "fmt"

// TransitionError is a rejected status change: the requested transition is
// not legal from the item's current state, or the actor is not allowed to
// make it. Nothing has been written when it is returned.
type TransitionError struct {
	Code    string
	Message string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewTransitionError(msg string) error {
	return &TransitionError{
		Code:    "transitionError",
		Message: msg,
	}
}

// NotFoundError reports a referenced item that does not exist, distinct from
// a rejected transition so callers can render "item was deleted" instead of
// "bad request".
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}
