package validator

import (
	"log/slog"
	"regexp"
	"slices"
)

// NamedRule pairs a rule with the kind it was registered under.
type NamedRule struct {
	Kind string
	Rule Rule
}

// Registration accumulates the ordered rule chain of one attribute.
//
//	validator.NewRegistration().Numeric().Min(18).Max(99)
//
// Every method returns the receiver so calls can be chained. Registering the
// same kind twice replaces the earlier rule in place. Builder methods never
// fail: an unusable configuration produces a rule that always passes.
//
// A Registration must not be modified once it is handed to a Validator.
type Registration struct {
	name      string
	fieldType FieldType
	rules     []NamedRule
}

// NewRegistration starts an empty chain. The optional name overrides the
// display name used in messages; by default the attribute key is used.
func NewRegistration(name ...string) *Registration {
	r := &Registration{fieldType: TypeString}
	if len(name) > 0 {
		r.name = name[0]
	}
	return r
}

// String declares the attribute as a string and requires a string value.
func (r *Registration) String(msg ...string) *Registration {
	r.fieldType = TypeString
	return r.set(RuleString, String(msg...))
}

// Numeric declares the attribute as a number and requires a numeric value.
func (r *Registration) Numeric(msg ...string) *Registration {
	r.fieldType = TypeNumber
	return r.set(RuleNumeric, Numeric(msg...))
}

// Array declares the attribute as a list and requires a list value.
func (r *Registration) Array(msg ...string) *Registration {
	r.fieldType = TypeArray
	return r.set(RuleArray, Array(msg...))
}

// Required fails for missing, null, blank and empty-list values.
func (r *Registration) Required(msg ...string) *Registration {
	return r.set(RuleRequired, Required(msg...))
}

// Min adds a lower size bound interpreted with the type declared so far.
func (r *Registration) Min(bound float64, msg ...string) *Registration {
	return r.set(RuleMin, Min(bound, r.fieldType, msg...))
}

// Max adds an upper size bound interpreted with the type declared so far.
func (r *Registration) Max(bound float64, msg ...string) *Registration {
	return r.set(RuleMax, Max(bound, r.fieldType, msg...))
}

// In restricts the value to values, which should be a []string or a slice of numbers.
func (r *Registration) In(values any, msg ...string) *Registration {
	return r.set(RuleIn, In(values, msg...))
}

// Email requires a string shaped like an email address.
func (r *Registration) Email(msg ...string) *Registration {
	return r.set(RuleEmail, Email(msg...))
}

// Regex requires the text form of the value to match pattern.
func (r *Registration) Regex(pattern *regexp.Regexp, msg ...string) *Registration {
	return r.set(RuleRegex, Regex(pattern, msg...))
}

// Nullable drops a previously registered required rule and marks the chain so
// that no rule runs when the value is missing or empty.
func (r *Registration) Nullable() *Registration {
	r.remove(RuleRequired)
	return r.set(RuleNullable, nullableRule{})
}

// Use registers a caller-provided rule under kind.
func (r *Registration) Use(kind string, rule Rule) *Registration {
	if rule == nil {
		return r
	}
	return r.set(kind, rule)
}

// Serialize returns a copy of the chain in registration order.
func (r *Registration) Serialize() []NamedRule {
	return slices.Clone(r.rules)
}

// Has reports whether a rule of the given kind is registered.
func (r *Registration) Has(kind string) bool {
	return r.index(kind) >= 0
}

// Len returns the number of registered rules.
func (r *Registration) Len() int { return len(r.rules) }

// Type returns the declared field type.
func (r *Registration) Type() FieldType { return r.fieldType }

// Name returns the display name override, or "" when unset.
func (r *Registration) Name() string { return r.name }

// SetName sets the display name override. An empty name restores the attribute key.
func (r *Registration) SetName(name string) *Registration {
	r.name = name
	return r
}

// IsNullable reports whether the chain carries the nullable marker.
func (r *Registration) IsNullable() bool {
	return r.Has(RuleNullable)
}

func (r *Registration) set(kind string, rule Rule) *Registration {
	if i := r.index(kind); i >= 0 {
		r.rules[i].Rule = rule
		return r
	}
	r.rules = append(r.rules, NamedRule{Kind: kind, Rule: rule})
	return r
}

func (r *Registration) remove(kind string) {
	if i := r.index(kind); i >= 0 {
		r.rules = slices.Delete(r.rules, i, i+1)
	}
}

func (r *Registration) index(kind string) int {
	return slices.IndexFunc(r.rules, func(nr NamedRule) bool {
		return nr.Kind == kind
	})
}

// evaluate runs the chain for one attribute and appends failure messages to msgs.
func (r *Registration) evaluate(attribute string, value Value, log *slog.Logger, msgs []string) ([]string, bool) {
	if r.IsNullable() && value.IsEmpty() {
		return msgs, true
	}

	name := r.name
	if name == "" {
		name = attribute
	}

	var res Result
	for _, nr := range r.rules {
		res.reset()
		nr.Rule.Validate(name, value, &res)
		if res.Failed() {
			logRuleFailure(log, attribute, nr.Kind)
			msgs = append(msgs, res.Message())
		}
	}
	return msgs, false
}
