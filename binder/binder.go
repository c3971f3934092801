package binder

import (
	"maps"
	"mime"
	"net/http"
	"net/url"
	"strings"
)

// Func extracts the untyped input of a request as attribute -> value.
type Func func(r *http.Request) (map[string]any, error)

// Merge runs binders in order and combines their output. Later binders
// overwrite keys set by earlier ones.
func Merge(binders ...Func) Func {
	return func(r *http.Request) (map[string]any, error) {
		data := make(map[string]any)
		for _, bind := range binders {
			if bind == nil {
				continue
			}
			part, err := bind(r)
			if err != nil {
				return nil, err
			}
			maps.Copy(data, part)
		}
		return data, nil
	}
}

// valuesToMap flattens url.Values: a single value becomes a string, repeated
// values a []string. Keys ending in "[]" always produce a []string under the
// key without the suffix.
func valuesToMap(values url.Values) map[string]any {
	data := make(map[string]any, len(values))
	for key, vals := range values {
		if name, ok := strings.CutSuffix(key, "[]"); ok && name != "" {
			data[name] = append([]string(nil), vals...)
			continue
		}
		switch len(vals) {
		case 0:
			data[key] = ""
		case 1:
			data[key] = vals[0]
		default:
			data[key] = append([]string(nil), vals...)
		}
	}
	return data
}

// mediaType returns the media type of the request without parameters.
func mediaType(r *http.Request) (string, bool) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return "", false
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mt = strings.TrimSpace(strings.Split(contentType, ";")[0])
	}
	return strings.ToLower(mt), true
}
