// Package binder turns HTTP requests into the untyped attribute map that
// validator.Validator consumes.
//
// Each binder is a Func returning map[string]any. JSON keeps numbers as
// json.Number, Form and Query flatten url.Values (single value -> string,
// repeated value or "name[]" -> []string), and Path/ChiPath read route
// parameters. Merge combines several sources, later ones winning.
//
//	bind := binder.Merge(binder.ChiPath("id"), binder.Query(), binder.JSON())
//	data, err := bind(r)
//	if err != nil {
//	    // errors.Is(err, binder.ErrInvalidJSON), ...
//	}
package binder
