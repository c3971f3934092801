package rulekit

import (
	"net/http"

	"github.com/dmitrymomot/rulekit/binder"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

// RuleFactory starts a new rule chain. The optional name overrides the
// display name used in messages.
type RuleFactory func(name ...string) *validator.Registration

// Make builds a validator from data and the fields returned by build.
//
//	v := rulekit.Make(data, func(rule rulekit.RuleFactory) validator.Fields {
//		return validator.Fields{
//			validator.Attr("first_name", rule().Required()),
//			validator.Attr("age", rule().Nullable().Numeric().Max(120)),
//		}
//	})
func Make(data map[string]any, build func(rule RuleFactory) validator.Fields, opts ...validator.Option) *validator.Validator {
	var fields validator.Fields
	if build != nil {
		fields = build(validator.NewRegistration)
	}
	return validator.New(fields, opts...).SetData(data)
}

// MakeRule turns a predicate into a definition that can be assigned to an
// attribute directly. The predicate calls res.Fail when the value is invalid.
func MakeRule(fn func(attribute string, value validator.Value, res *validator.Result)) validator.Definition {
	return validator.CustomFunc(fn)
}

// FromRequest extracts the request input with bind and returns a validator
// over fields. Binding errors are returned as is.
func FromRequest(r *http.Request, bind binder.Func, fields validator.Fields, opts ...validator.Option) (*validator.Validator, error) {
	data, err := bind(r)
	if err != nil {
		return nil, err
	}
	return validator.New(fields, opts...).SetData(data), nil
}
