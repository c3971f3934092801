package validator

type arrayRule struct{ msg message }

// Array fails for anything that is not a list.
func Array(msg ...string) Rule {
	return arrayRule{msg: newMessage(msg)}
}

func (r arrayRule) Validate(attribute string, value Value, res *Result) {
	if value.Kind() != KindList {
		res.Fail(r.msg.resolve(attribute, "The :attribute must be an array."))
	}
}
