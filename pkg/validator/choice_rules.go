package validator

type inRule struct {
	allowed []Value
	kind    Kind
	// loose compares by text, and numerically when both sides read as numbers.
	loose bool
	msg   message
}

// In fails when the value is not one of values. values must be a slice; the
// kind of its first element (string or number) decides how the value is compared.
// A non-slice or empty configuration yields a rule that never fails.
func In(values any, msg ...string) Rule {
	r := inRule{msg: newMessage(msg)}
	list, ok := ValueOf(values).List()
	if !ok || len(list) == 0 {
		return r
	}
	switch list[0].Kind() {
	case KindString, KindNumber:
		r.kind = list[0].Kind()
		r.allowed = list
	}
	return r
}

// inText builds the rule behind a textual "in:a,b,c" token. Input from forms
// and query strings is always text, so "2" matches an allowed 2 and an allowed
// "2" matches the number 2.
func inText(values []string, msg ...string) Rule {
	r := inRule{loose: true, msg: newMessage(msg)}
	for _, v := range values {
		r.allowed = append(r.allowed, Value{kind: KindString, str: v, raw: v})
	}
	return r
}

func (r inRule) Validate(attribute string, value Value, res *Result) {
	if len(r.allowed) == 0 {
		return
	}
	if !r.contains(value) {
		res.Fail(r.msg.resolve(attribute, "The selected :attribute is invalid."))
	}
}

func (r inRule) contains(value Value) bool {
	if r.loose {
		return r.containsText(value)
	}
	if value.Kind() != r.kind {
		return false
	}
	for _, allowed := range r.allowed {
		switch r.kind {
		case KindString:
			s, _ := value.Str()
			if a, ok := allowed.Str(); ok && a == s {
				return true
			}
		case KindNumber:
			n, _ := value.Number()
			if a, ok := allowed.Number(); ok && a == n {
				return true
			}
		}
	}
	return false
}

func (r inRule) containsText(value Value) bool {
	switch value.Kind() {
	case KindString, KindNumber:
	default:
		return false
	}
	text := value.Text()
	n, numeric := value.Float()
	for _, allowed := range r.allowed {
		if allowed.str == text {
			return true
		}
		if !numeric {
			continue
		}
		if a, ok := allowed.Float(); ok && a == n {
			return true
		}
	}
	return false
}
