// Package rulekit is a declarative validator for untyped attribute maps.
//
// Callers describe each attribute with a chain of rules, hand over the input,
// and query which attributes passed, the failure messages of the rest, and the
// input restricted to valid attributes.
//
// Key Features:
//
//   - Fluent rule chains: required, string, numeric, array, min, max, in,
//     email, regex and custom rules
//   - Nullable attributes that skip every rule when empty
//   - Laravel-style messages with :attribute substitution
//   - Rule chains from strings ("required|email") and YAML rule sets
//   - Request binders for JSON, forms, query strings and chi path params
//
// Basic Usage:
//
//	v := rulekit.Make(map[string]any{"first_name": "John"},
//		func(rule rulekit.RuleFactory) validator.Fields {
//			return validator.Fields{
//				validator.Attr("first_name", rule().Required()),
//				validator.Attr("last_name", rule().Required()),
//			}
//		})
//
//	if v.Fails() {
//		v.Errors() // {"last_name": ["The last name field is required."]}
//	}
//
// Custom Rules:
//
//	status := rulekit.MakeRule(func(attribute string, value validator.Value, res *validator.Result) {
//		if s, _ := value.Str(); s == "failed" {
//			res.Fail("The " + attribute + " field must not be failed.")
//		}
//	})
//
// HTTP Input:
//
//	v, err := rulekit.FromRequest(r, binder.JSON(), fields)
//	if err != nil {
//		// malformed request
//	}
//	data, err := v.Validate()
//
// Packages:
//
//   - pkg/validator: values, rules, rule chains and the validator itself
//   - pkg/ruleset: YAML rule sets
//   - binder: request input extraction
//   - pkg/logger, pkg/config: slog and environment configuration helpers
package rulekit
