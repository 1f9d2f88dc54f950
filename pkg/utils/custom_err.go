package utils

import "errors"

var (
	ErrJobNotFound          = errors.New("job not found")
	ErrTourNotFound         = errors.New("tour not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrSlotExtraction       = errors.New("slot extraction failed")
	ErrItineraryGeneration  = errors.New("itinerary generation failed")
	ErrUnsupportedAIBackend = errors.New("unsupported AI provider")
	ErrDatabaseError        = errors.New("database error")
)

// ValidationError reports a request body that failed binding: which field
// and which constraint. It always maps to a 4xx response, never a retry.
type ValidationError struct {
	Field      string
	Constraint string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation failed: " + e.Constraint
	}
	return "validation failed on field " + e.Field + ": " + e.Constraint
}
