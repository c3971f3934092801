package binder

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Path reads the named path parameters using extractor. Parameters with an
// empty value are left out so that they count as missing.
//
// Example with gorilla/mux:
//
//	muxExtractor := func(r *http.Request, name string) string {
//		return mux.Vars(r)[name]
//	}
//	bind := binder.Path(muxExtractor, "id", "username")
func Path(extractor func(r *http.Request, name string) string, names ...string) Func {
	return func(r *http.Request) (map[string]any, error) {
		if extractor == nil {
			return nil, fmt.Errorf("%w: extractor function is nil", ErrInvalidPath)
		}

		data := make(map[string]any, len(names))
		for _, name := range names {
			if name == "" {
				continue
			}
			if value := extractor(r, name); value != "" {
				data[name] = value
			}
		}
		return data, nil
	}
}

// ChiPath reads path parameters from a chi route.
//
//	r := chi.NewRouter()
//	r.Post("/users/{id}", func(w http.ResponseWriter, r *http.Request) {
//		data, err := binder.Merge(binder.ChiPath("id"), binder.JSON())(r)
//		...
//	})
func ChiPath(names ...string) Func {
	return Path(chi.URLParam, names...)
}
