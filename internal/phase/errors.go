package phase

import (
	"errors"
	"fmt"
)

// InvalidTransitionError reports a phase pair that is not a consecutive step
// of the cycle. Skipping ahead, stepping backward, and self-transitions all
// produce it.
type InvalidTransitionError struct {
	From Phase
	To   Phase
}

// Error implements the error interface.
func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition %s → %s: phases advance one step at a time", e.From, e.To)
}

// IsInvalidTransition returns true if the error is an invalid transition
// error. Uses errors.As to handle wrapped errors.
func IsInvalidTransition(err error) bool {
	var te *InvalidTransitionError
	return errors.As(err, &te)
}
