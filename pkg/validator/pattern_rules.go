package validator

import "regexp"

type regexRule struct {
	pattern *regexp.Regexp
	msg     message
}

// Regex matches the string form of the value against pattern. Non-string
// values are rendered with Value.Text first. A nil pattern never fails.
func Regex(pattern *regexp.Regexp, msg ...string) Rule {
	return regexRule{pattern: pattern, msg: newMessage(msg)}
}

func (r regexRule) Validate(attribute string, value Value, res *Result) {
	if r.pattern == nil {
		return
	}
	if !r.pattern.MatchString(value.Text()) {
		res.Fail(r.msg.resolve(attribute, "The :attribute field format is invalid."))
	}
}
