package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// JSON decodes a JSON object body. Numbers are kept as json.Number so that
// integer precision survives until validation.
//
// Example:
//
//	bind := binder.JSON()
//	data, err := bind(r)
//	v := validator.New(fields, validator.WithData(data))
func JSON() Func {
	return func(r *http.Request) (map[string]any, error) {
		mt, ok := mediaType(r)
		if !ok {
			return nil, fmt.Errorf("%w: expected application/json", ErrMissingContentType)
		}
		if mt != "application/json" {
			return nil, fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mt)
		}

		decoder := json.NewDecoder(r.Body)
		decoder.UseNumber()

		var data map[string]any
		if err := decoder.Decode(&data); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: empty body", ErrInvalidJSON)
			}
			return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		if data == nil {
			return nil, fmt.Errorf("%w: expected a JSON object", ErrInvalidJSON)
		}

		// Ensure entire body was consumed
		var extra json.RawMessage
		if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidJSON)
		}

		return data, nil
	}
}
