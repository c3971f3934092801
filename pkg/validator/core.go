package validator

import (
	"errors"
	"maps"
	"slices"
)

// Messages maps an attribute to its failure messages in rule order.
// Only attributes with at least one message are present.
type Messages map[string][]string

// Add appends a message for attribute.
func (m Messages) Add(attribute, message string) {
	m[attribute] = append(m[attribute], message)
}

// Get returns the first message for attribute, or "".
func (m Messages) Get(attribute string) string {
	if msgs := m[attribute]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// All returns every message for attribute.
func (m Messages) All(attribute string) []string {
	return m[attribute]
}

// Has reports whether attribute has at least one message.
func (m Messages) Has(attribute string) bool {
	return len(m[attribute]) > 0
}

// IsEmpty reports whether no attribute failed.
func (m Messages) IsEmpty() bool {
	return len(m) == 0
}

// Attributes returns the failing attributes sorted by name.
func (m Messages) Attributes() []string {
	return slices.Sorted(maps.Keys(m))
}

func (m Messages) clone() Messages {
	out := make(Messages, len(m))
	for k, v := range m {
		out[k] = slices.Clone(v)
	}
	return out
}

// ValidationError is returned by Validator.Validate when any attribute fails.
type ValidationError struct {
	Messages Messages
	// Attributes lists the failing attributes in field order.
	Attributes []string
}

// Error returns the first message of the first failing attribute.
func (e *ValidationError) Error() string {
	if len(e.Attributes) > 0 {
		if msg := e.Messages.Get(e.Attributes[0]); msg != "" {
			return msg
		}
	}
	return ErrValidationFailed.Error()
}

// Unwrap makes errors.Is(err, ErrValidationFailed) hold.
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// ExtractMessages returns the messages carried by err, or nil when err is not
// a *ValidationError.
func ExtractMessages(err error) Messages {
	if err == nil {
		return nil
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Messages
	}

	return nil
}

// IsValidationError reports whether err wraps a *ValidationError.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}
