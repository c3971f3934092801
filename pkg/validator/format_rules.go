package validator

import "regexp"

var emailRegex = regexp.MustCompile(`^[A-Za-z0-9._+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

type emailRule struct{ msg message }

// Email accepts strings of the form local@domain.tld using a conservative
// subset of RFC 5322.
func Email(msg ...string) Rule {
	return emailRule{msg: newMessage(msg)}
}

func (r emailRule) Validate(attribute string, value Value, res *Result) {
	s, ok := value.Str()
	if !ok || !emailRegex.MatchString(s) {
		res.Fail(r.msg.resolve(attribute, "The :attribute field must be a valid email address."))
	}
}
