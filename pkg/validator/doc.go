// Package validator validates maps of untyped input against per-attribute
// rule chains and reports human-readable failure messages.
//
// Each attribute gets a Definition: either a *Registration built with fluent
// calls, or a custom rule wrapped with Custom. A Validator evaluates every
// attribute in the order its Fields were declared, collects messages per
// attribute, and projects the input onto the attributes that passed.
//
// # Architecture
//
// Input values are classified into a Value tagged union (missing, null,
// string, number, bool, list, other) so rules switch on Kind instead of
// probing Go types. Rule families live in their own files
// (`string_rules.go`, `numeric_rules.go`, `choice_rules.go`, etc.). Every rule
// implements Rule and reports at most one message per evaluation through the
// Result it is handed.
//
// Core building blocks:
//   - Value         – tagged input value with the shared IsEmpty predicate
//   - Rule          – single check; RuleFunc adapts plain functions
//   - Registration  – ordered, keyed chain of rules for one attribute
//   - Validator     – evaluates Fields against data and caches the outcome
//   - Messages      – attribute -> ordered messages
//
// # Usage
//
//	v := validator.New(validator.Fields{
//	    validator.Attr("email", validator.NewRegistration().Required().Email()),
//	    validator.Attr("age", validator.NewRegistration().Nullable().Numeric().Min(18)),
//	}, validator.WithData(input))
//
//	data, err := v.Validate()
//	if err != nil {
//	    msgs := validator.ExtractMessages(err)
//	    // msgs["email"] -> ["The email field is required."]
//	}
//
// Rule chains can also be written as strings:
//
//	reg, err := validator.Parse("nullable|numeric|min:18", nil)
//
// # Messages
//
// Default messages contain the :attribute placeholder, which is replaced by
// the attribute name with underscores turned into spaces ("first_name" ->
// "first name"). Every builder method accepts an optional override message
// using the same placeholder.
//
// # Nullable
//
// Nullable removes a required rule registered earlier in the chain and, when
// the value is missing, null, blank or an empty list, skips every rule of the
// attribute and treats it as valid.
//
// # Error Handling
//
// Rule violations are never returned as errors by Passes, Fails, Validated or
// Messages. Only Validate returns a *ValidationError, which matches
// ErrValidationFailed via errors.Is and carries all messages.
package validator
