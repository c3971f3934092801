package validator

type numericRule struct{ msg message }

// Numeric accepts numbers and strings that parse as a float.
func Numeric(msg ...string) Rule {
	return numericRule{msg: newMessage(msg)}
}

func (r numericRule) Validate(attribute string, value Value, res *Result) {
	if _, ok := value.Float(); !ok {
		res.Fail(r.msg.resolve(attribute, "The :attribute field must be a number."))
	}
}

// boundRule implements min and max. The field type is fixed when the rule is built.
type boundRule struct {
	bound     float64
	fieldType FieldType
	max       bool
	msg       message
}

// Min fails when the size of the value is below bound. Strings and lists are
// measured by length for TypeString and TypeArray, numbers by value for TypeNumber.
func Min(bound float64, fieldType FieldType, msg ...string) Rule {
	return boundRule{bound: bound, fieldType: fieldType, msg: newMessage(msg)}
}

// Max fails when the size of the value is above bound.
func Max(bound float64, fieldType FieldType, msg ...string) Rule {
	return boundRule{bound: bound, fieldType: fieldType, max: true, msg: newMessage(msg)}
}

func (r boundRule) Validate(attribute string, value Value, res *Result) {
	size, ok := r.measure(value)
	if !ok {
		return
	}
	if (r.max && size > r.bound) || (!r.max && size < r.bound) {
		res.Fail(r.msg.resolve(attribute, r.defaultMessage()))
	}
}

func (r boundRule) measure(value Value) (float64, bool) {
	switch r.fieldType {
	case TypeString, TypeArray:
		n, ok := value.Len()
		return float64(n), ok
	case TypeNumber:
		return value.Float()
	default:
		// Unknown field types cannot be measured and always violate min.
		if r.max {
			return 0, false
		}
		return r.bound - 1, true
	}
}

func (r boundRule) defaultMessage() string {
	prefix := "The :attribute field must be at least "
	if r.max {
		prefix = "The :attribute field must not have more than "
	}
	return prefix + formatNumber(r.bound) + r.fieldType.unit() + "."
}
