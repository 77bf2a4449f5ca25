package domain

import "errors"

var (
	// ErrUnknownValue marks a label outside its enumeration. It is raised
	// where the value is parsed, never as a ValidationError.
	ErrUnknownValue = errors.New("unknown value")

	ErrGuardEvaluation  = errors.New("guard evaluation failed")
	ErrRulePackNotFound = errors.New("rule pack not found")
)

// ValidationError is the only domain failure of the pricer: a drink
// combination the menu does not offer.
type ValidationError struct {
	RuleID string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func NewValidationError(ruleID, reason string) *ValidationError {
	return &ValidationError{RuleID: ruleID, Reason: reason}
}

// AsValidationError unwraps err into a *ValidationError when it carries one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
