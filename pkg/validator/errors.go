package validator

import "errors"

var (
	// ErrValidationFailed is matched by every *ValidationError.
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnknownRule is returned by Parse for a rule name it does not know.
	ErrUnknownRule = errors.New("unknown rule")

	// ErrInvalidRuleArgument is returned by Parse for a malformed rule argument.
	ErrInvalidRuleArgument = errors.New("invalid rule argument")
)
