package session

import "fmt"

// ValidationError represents missing or empty user input. Input is
// validated before any backend call is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	ErrNoDeckSelected = &ValidationError{Message: "a deck must be selected"}
	ErrEmptyResult    = &ValidationError{Message: "review result cannot be empty"}
	ErrEmptyTopic     = &ValidationError{Message: "topic cannot be empty"}
	ErrEmptyAnswer    = &ValidationError{Message: "answer cannot be empty"}
	ErrNoContent      = &ValidationError{Message: "there is no note content to publish"}
)

// InvalidTransitionError represents an operation that is not legal in
// the session's current state. No backend call is made.
type InvalidTransitionError struct {
	Operation string
	State     string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s is not allowed in the %s state", e.Operation, e.State)
}
