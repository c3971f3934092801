package validator

type requiredRule struct{ msg message }

// Required fails for missing, null, whitespace-only string and empty list values.
func Required(msg ...string) Rule {
	return requiredRule{msg: newMessage(msg)}
}

func (r requiredRule) Validate(attribute string, value Value, res *Result) {
	if value.IsEmpty() {
		res.Fail(r.msg.resolve(attribute, "The :attribute field is required."))
	}
}

type stringRule struct{ msg message }

// String fails for anything that is not a string.
func String(msg ...string) Rule {
	return stringRule{msg: newMessage(msg)}
}

func (r stringRule) Validate(attribute string, value Value, res *Result) {
	if value.Kind() != KindString {
		res.Fail(r.msg.resolve(attribute, "The :attribute field must be a string."))
	}
}

// nullableRule marks a chain whose rules are skipped for empty values. It never fails.
type nullableRule struct{}

func (nullableRule) Validate(string, Value, *Result) {}
