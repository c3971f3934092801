package binder

import (
	"fmt"
	"net/http"
)

const defaultMaxMemory = 32 << 20

// Form reads application/x-www-form-urlencoded and multipart/form-data bodies.
// Uploaded files are ignored; only value fields are returned.
//
// Single values become strings, repeated fields and fields named "tags[]"
// become []string:
//
//	name=John&tags[]=go&tags[]=web  ->  {"name": "John", "tags": ["go", "web"]}
func Form() Func {
	return func(r *http.Request) (map[string]any, error) {
		mt, ok := mediaType(r)
		if !ok {
			return nil, fmt.Errorf("%w: expected form data", ErrMissingContentType)
		}

		switch mt {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			return valuesToMap(r.PostForm), nil
		case "multipart/form-data":
			if err := r.ParseMultipartForm(defaultMaxMemory); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			return valuesToMap(r.MultipartForm.Value), nil
		default:
			return nil, fmt.Errorf("%w: got %s, expected form data", ErrUnsupportedMediaType, mt)
		}
	}
}
