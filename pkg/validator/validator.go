package validator

import (
	"log/slog"
	"maps"
	"slices"

	"github.com/dmitrymomot/rulekit/pkg/logger"
)

// Definition is what a single attribute is validated against: either a
// *Registration chain or a custom rule wrapped with Custom.
type Definition interface {
	// evaluate appends failure messages to msgs. skipped is true when a
	// nullable chain was bypassed for an empty value.
	evaluate(attribute string, value Value, log *slog.Logger, msgs []string) (out []string, skipped bool)
}

type customDefinition struct {
	rule Rule
}

// Custom wraps a rule so it can be assigned to an attribute directly.
// The rule receives the attribute key verbatim.
func Custom(rule Rule) Definition {
	return customDefinition{rule: rule}
}

// CustomFunc is Custom for a plain function.
func CustomFunc(fn func(attribute string, value Value, res *Result)) Definition {
	return customDefinition{rule: RuleFunc(fn)}
}

func (d customDefinition) evaluate(attribute string, value Value, log *slog.Logger, msgs []string) ([]string, bool) {
	if d.rule == nil {
		return msgs, false
	}
	var res Result
	d.rule.Validate(attribute, value, &res)
	if res.Failed() {
		logRuleFailure(log, attribute, RuleCustom)
		msgs = append(msgs, res.Message())
	}
	return msgs, false
}

// Field binds an attribute key to its definition.
type Field struct {
	Attribute  string
	Definition Definition
}

// Fields is the ordered rule mapping of a validator. Order decides the order
// of Valid, Invalid and Message.
type Fields []Field

// Attr is shorthand for building a Field.
func Attr(attribute string, def Definition) Field {
	return Field{Attribute: attribute, Definition: def}
}

// Validator evaluates Fields against a data map.
//
// Results are computed lazily on the first query and cached until SetData is
// called. Passes, Fails and Validate always run a fresh pass.
// A Validator is not safe for concurrent use.
type Validator struct {
	fields Fields
	data   map[string]any
	log    *slog.Logger

	evaluated bool
	messages  Messages
	invalid   []string
	validData map[string]any
}

// New creates a validator for fields. Fields with an empty attribute or a nil
// definition are ignored; a repeated attribute replaces the earlier one in place.
func New(fields Fields, opts ...Option) *Validator {
	v := &Validator{
		data: map[string]any{},
		log:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(v)
	}

	for _, f := range fields {
		if f.Attribute == "" || isNilDefinition(f.Definition) {
			continue
		}
		if i := slices.IndexFunc(v.fields, func(e Field) bool { return e.Attribute == f.Attribute }); i >= 0 {
			v.fields[i] = f
			continue
		}
		v.fields = append(v.fields, f)
	}
	return v
}

func isNilDefinition(def Definition) bool {
	if def == nil {
		return true
	}
	reg, ok := def.(*Registration)
	return ok && reg == nil
}

// SetData replaces the input and discards cached results.
func (v *Validator) SetData(data map[string]any) *Validator {
	if data == nil {
		data = map[string]any{}
	}
	v.data = data
	v.reset()
	return v
}

// Data returns the current input.
func (v *Validator) Data() map[string]any { return v.data }

// Attributes returns the attribute keys in evaluation order.
func (v *Validator) Attributes() []string {
	keys := make([]string, len(v.fields))
	for i, f := range v.fields {
		keys[i] = f.Attribute
	}
	return keys
}

// Passes runs a full evaluation pass and reports whether no attribute failed.
func (v *Validator) Passes() bool {
	v.evaluate()
	return len(v.invalid) == 0
}

// Fails is the negation of Passes.
func (v *Validator) Fails() bool {
	return !v.Passes()
}

// Validate runs a full pass and returns the validated data. When any attribute
// fails it returns a *ValidationError whose message is the first failure.
func (v *Validator) Validate() (map[string]any, error) {
	if v.Fails() {
		return nil, &ValidationError{
			Messages:   v.Messages(),
			Attributes: slices.Clone(v.invalid),
		}
	}
	return v.Validated(), nil
}

// Validated returns the data restricted to attributes that passed, without
// failing. Keys absent from the data stay absent.
func (v *Validator) Validated() map[string]any {
	v.ensure()
	return maps.Clone(v.validData)
}

// Valid returns the attributes without failures, in field order.
func (v *Validator) Valid() []string {
	v.ensure()
	valid := make([]string, 0, len(v.fields)-len(v.invalid))
	for _, f := range v.fields {
		if !v.messages.Has(f.Attribute) {
			valid = append(valid, f.Attribute)
		}
	}
	return valid
}

// Invalid returns the attributes with at least one failure, in field order.
func (v *Validator) Invalid() []string {
	v.ensure()
	return slices.Clone(v.invalid)
}

// Messages returns the failure messages keyed by attribute.
func (v *Validator) Messages() Messages {
	v.ensure()
	return v.messages.clone()
}

// Errors is an alias for Messages.
func (v *Validator) Errors() Messages {
	return v.Messages()
}

// Message returns the first message of the first failing attribute, or "".
func (v *Validator) Message() string {
	v.ensure()
	if len(v.invalid) == 0 {
		return ""
	}
	return v.messages.Get(v.invalid[0])
}

func (v *Validator) ensure() {
	if !v.evaluated {
		v.evaluate()
	}
}

func (v *Validator) reset() {
	v.evaluated = false
	v.messages = nil
	v.invalid = nil
	v.validData = nil
}

func (v *Validator) evaluate() {
	v.reset()

	messages := make(Messages)
	var invalid []string
	skipped := 0

	for _, f := range v.fields {
		value := v.value(f.Attribute)
		msgs, skip := f.Definition.evaluate(f.Attribute, value, v.log, nil)
		if skip {
			skipped++
			v.log.Debug("nullable attribute skipped",
				logger.Component("validator"),
				logger.Attribute(f.Attribute),
				slog.String("value_kind", value.Kind().String()),
			)
			continue
		}
		if len(msgs) > 0 {
			messages[f.Attribute] = msgs
			invalid = append(invalid, f.Attribute)
		}
	}

	validData := make(map[string]any, len(v.fields)-len(invalid))
	for _, f := range v.fields {
		if messages.Has(f.Attribute) {
			continue
		}
		if raw, ok := v.data[f.Attribute]; ok {
			validData[f.Attribute] = raw
		}
	}

	v.messages = messages
	v.invalid = invalid
	v.validData = validData
	v.evaluated = true

	v.log.Debug("validation pass completed",
		logger.Component("validator"),
		slog.Int("attributes", len(v.fields)),
		slog.Int("invalid", len(invalid)),
		slog.Int("skipped", skipped),
		logger.Messages(messages),
	)
}

func logRuleFailure(log *slog.Logger, attribute, kind string) {
	log.Debug("rule failed",
		logger.Component("validator"),
		logger.Attribute(attribute),
		logger.Rule(kind),
	)
}

func (v *Validator) value(attribute string) Value {
	raw, ok := v.data[attribute]
	if !ok {
		return Missing()
	}
	return ValueOf(raw)
}
