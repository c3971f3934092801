package binder

import (
	"fmt"
	"net/http"
	"net/url"
)

// Query reads the URL query string. Repeated parameters and "name[]" keys
// become []string.
//
//	?q=go&page=2&tags=a&tags=b  ->  {"q": "go", "page": "2", "tags": ["a", "b"]}
func Query() Func {
	return func(r *http.Request) (map[string]any, error) {
		values, err := url.ParseQuery(r.URL.RawQuery)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
		}
		return valuesToMap(values), nil
	}
}
