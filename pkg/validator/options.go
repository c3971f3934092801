package validator

import "log/slog"

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sets the logger used for per-pass debug records.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.log = l
		}
	}
}

// WithData sets the initial input.
func WithData(data map[string]any) Option {
	return func(v *Validator) {
		if data != nil {
			v.data = data
		}
	}
}
