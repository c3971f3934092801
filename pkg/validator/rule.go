package validator

import "strings"

// Rule checks one attribute value. A violation is reported through res.Fail.
type Rule interface {
	Validate(attribute string, value Value, res *Result)
}

// RuleFunc adapts a plain function to the Rule interface.
type RuleFunc func(attribute string, value Value, res *Result)

// Validate calls f.
func (f RuleFunc) Validate(attribute string, value Value, res *Result) {
	f(attribute, value, res)
}

// Result receives the outcome of a single rule evaluation.
// Only the first reported message is kept.
type Result struct {
	message string
	failed  bool
}

// Fail records a violation. Subsequent calls are ignored.
func (r *Result) Fail(message string) {
	if r.failed {
		return
	}
	r.message = message
	r.failed = true
}

// Failed reports whether Fail was called.
func (r *Result) Failed() bool { return r.failed }

// Message returns the first reported message, or "".
func (r *Result) Message() string { return r.message }

func (r *Result) reset() {
	r.message = ""
	r.failed = false
}

// Rule kinds registered by the builder.
const (
	RuleRequired = "required"
	RuleNullable = "nullable"
	RuleString   = "string"
	RuleNumeric  = "numeric"
	RuleArray    = "array"
	RuleMin      = "min"
	RuleMax      = "max"
	RuleIn       = "in"
	RuleEmail    = "email"
	RuleRegex    = "regex"
	// RuleCustom labels a rule assigned to an attribute with Custom.
	RuleCustom   = "custom"
)

// FieldType is the semantic type declared for an attribute. It decides how
// min and max measure size.
type FieldType uint8

const (
	TypeString FieldType = iota
	TypeNumber
	TypeArray
)

// String returns the type name used in rule sets.
func (t FieldType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeNumber:
		return "number"
	case TypeArray:
		return "array"
	default:
		return "unknown"
	}
}

// unit is the word that follows a size bound in default messages.
func (t FieldType) unit() string {
	switch t {
	case TypeString:
		return " characters"
	case TypeArray:
		return " items"
	default:
		return ""
	}
}

const attributePlaceholder = ":attribute"

// DisplayName turns an attribute key into its human form: underscores become spaces.
func DisplayName(attribute string) string {
	return strings.ReplaceAll(attribute, "_", " ")
}

// FormatMessage substitutes the display name of attribute for every :attribute token.
func FormatMessage(message, attribute string) string {
	return strings.ReplaceAll(message, attributePlaceholder, DisplayName(attribute))
}

// message carries an optional caller override for a built-in rule.
type message struct {
	override string
	set      bool
}

func newMessage(msg []string) message {
	if len(msg) == 0 {
		return message{}
	}
	return message{override: msg[0], set: true}
}

func (m message) resolve(attribute, fallback string) string {
	if m.set {
		return FormatMessage(m.override, attribute)
	}
	return FormatMessage(fallback, attribute)
}
