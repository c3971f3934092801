package validator_test

import (
	"bytes"
	"errors"
	"log/slog"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

func nameFields() validator.Fields {
	return validator.Fields{
		validator.Attr("first_name", validator.NewRegistration().Required()),
		validator.Attr("last_name", validator.NewRegistration().Required()),
	}
}

func TestValidator_RequiredFields(t *testing.T) {
	t.Parallel()

	t.Run("passing input round-trips", func(t *testing.T) {
		v := validator.New(nameFields(), validator.WithData(map[string]any{
			"first_name": "John",
			"last_name":  "Doe",
		}))

		assert.True(t, v.Passes())
		assert.Equal(t, map[string]any{
			"first_name": "John",
			"last_name":  "Doe",
		}, v.Validated())
	})

	t.Run("missing values produce ordered messages", func(t *testing.T) {
		v := validator.New(nameFields(), validator.WithData(map[string]any{
			"first_name": nil,
		}))

		assert.True(t, v.Fails())
		assert.Equal(t, validator.Messages{
			"first_name": {"The first name field is required."},
			"last_name":  {"The last name field is required."},
		}, v.Errors())
		assert.Equal(t, "The first name field is required.", v.Message())
		assert.Empty(t, v.Validated())
	})

	t.Run("keys outside the rules are not projected", func(t *testing.T) {
		v := validator.New(nameFields(), validator.WithData(map[string]any{
			"first_name": "John",
			"last_name":  "Doe",
			"is_admin":   true,
		}))

		data, err := v.Validate()
		require.NoError(t, err)
		assert.NotContains(t, data, "is_admin")
	})
}

func TestValidator_BoundsRespectDeclaredType(t *testing.T) {
	t.Parallel()

	t.Run("numeric max", func(t *testing.T) {
		v := validator.New(validator.Fields{
			validator.Attr("age", validator.NewRegistration().Numeric().Max(18)),
		}, validator.WithData(map[string]any{"age": 19}))

		assert.Equal(t, validator.Messages{
			"age": {"The age field must not have more than 18."},
		}, v.Messages())
	})

	t.Run("array min", func(t *testing.T) {
		v := validator.New(validator.Fields{
			validator.Attr("name", validator.NewRegistration().Array().Min(3)),
		}, validator.WithData(map[string]any{"name": []any{}}))

		assert.Equal(t, validator.Messages{
			"name": {"The name field must be at least 3 items."},
		}, v.Messages())
	})

	t.Run("string max", func(t *testing.T) {
		v := validator.New(validator.Fields{
			validator.Attr("nickname", validator.NewRegistration().String().Max(3)),
		}, validator.WithData(map[string]any{"nickname": "abcd"}))

		assert.Equal(t, "The nickname field must not have more than 3 characters.", v.Message())
	})
}

func TestValidator_MessagesAccumulateInRuleOrder(t *testing.T) {
	t.Parallel()

	v := validator.New(validator.Fields{
		validator.Attr("name", validator.NewRegistration().String().Required()),
	}, validator.WithData(map[string]any{"name": nil}))

	assert.Equal(t, []string{
		"The name field must be a string.",
		"The name field is required.",
	}, v.Messages().All("name"))
}

func TestValidator_In(t *testing.T) {
	t.Parallel()

	v := validator.New(validator.Fields{
		validator.Attr("gender", validator.NewRegistration().In([]string{"male", "female"})),
	}, validator.WithData(map[string]any{"gender": "John"}))

	assert.Equal(t, "The selected gender is invalid.", v.Message())
}

func TestValidator_Nullable(t *testing.T) {
	t.Parallel()

	fields := func() validator.Fields {
		return validator.Fields{
			validator.Attr("age", validator.NewRegistration().Required().Numeric().Min(18).Nullable()),
			validator.Attr("tags", validator.NewRegistration().Array().Min(1).Nullable()),
		}
	}

	for name, data := range map[string]map[string]any{
		"missing":     {},
		"null":        {"age": nil, "tags": nil},
		"blank":       {"age": "  ", "tags": []any{}},
		"empty slice": {"age": "", "tags": []string{}},
	} {
		t.Run(name, func(t *testing.T) {
			v := validator.New(fields(), validator.WithData(data))
			assert.True(t, v.Passes())
			assert.Equal(t, []string{"age", "tags"}, v.Valid())
			assert.Empty(t, v.Messages())
		})
	}

	t.Run("present values are still checked", func(t *testing.T) {
		v := validator.New(fields(), validator.WithData(map[string]any{
			"age":  "abc",
			"tags": []any{"go"},
		}))

		assert.Equal(t, validator.Messages{
			"age": {"The age field must be a number."},
		}, v.Messages())
	})
}

func TestValidator_ValidInvalidPartition(t *testing.T) {
	t.Parallel()

	v := validator.New(validator.Fields{
		validator.Attr("email", validator.NewRegistration().Required().Email()),
		validator.Attr("name", validator.NewRegistration().Required()),
		validator.Attr("age", validator.NewRegistration().Numeric()),
		validator.Attr("role", validator.NewRegistration().In([]string{"admin", "user"})),
	}, validator.WithData(map[string]any{
		"email": "nope",
		"name":  "Jane",
		"age":   "x",
		"role":  "user",
	}))

	assert.Equal(t, []string{"email", "age"}, v.Invalid())
	assert.Equal(t, []string{"name", "role"}, v.Valid())
	assert.ElementsMatch(t, v.Attributes(), append(v.Valid(), v.Invalid()...))
	assert.Equal(t, map[string]any{"name": "Jane", "role": "user"}, v.Validated())
	assert.Equal(t, "The email field must be a valid email address.", v.Message())
}

func TestValidator_Validate(t *testing.T) {
	t.Parallel()

	t.Run("returns a validation error", func(t *testing.T) {
		v := validator.New(nameFields())

		data, err := v.Validate()
		require.Error(t, err)
		assert.Nil(t, data)
		assert.True(t, errors.Is(err, validator.ErrValidationFailed))
		assert.Equal(t, "The first name field is required.", err.Error())

		var verr *validator.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"first_name", "last_name"}, verr.Attributes)
		assert.Equal(t, v.Messages(), validator.ExtractMessages(err))
	})

	t.Run("returns a copy of the projection", func(t *testing.T) {
		v := validator.New(nameFields(), validator.WithData(map[string]any{
			"first_name": "John",
			"last_name":  "Doe",
		}))

		data, err := v.Validate()
		require.NoError(t, err)
		data["first_name"] = "changed"
		assert.Equal(t, "John", v.Validated()["first_name"])
	})
}

func TestValidator_SetDataInvalidatesResults(t *testing.T) {
	t.Parallel()

	v := validator.New(nameFields())
	assert.Equal(t, []string{"first_name", "last_name"}, v.Invalid())

	v.SetData(map[string]any{"first_name": "John", "last_name": "Doe"})
	assert.Empty(t, v.Invalid())
	assert.Equal(t, "John", v.Data()["first_name"])

	v.SetData(nil)
	assert.NotNil(t, v.Data())
	assert.Len(t, v.Invalid(), 2)
}

func TestValidator_EmptyState(t *testing.T) {
	t.Parallel()

	v := validator.New(nil)
	assert.True(t, v.Passes())
	assert.Empty(t, v.Message())
	assert.Empty(t, v.Validated())
	assert.Empty(t, v.Valid())
}

func TestValidator_FieldOrder(t *testing.T) {
	t.Parallel()

	v := validator.New(validator.Fields{
		validator.Attr("z", validator.NewRegistration().Required()),
		validator.Attr("", validator.NewRegistration().Required()),
		validator.Attr("a", validator.NewRegistration().Required()),
		validator.Attr("skipped", nil),
		validator.Attr("typed_nil", (*validator.Registration)(nil)),
		validator.Attr("z", validator.NewRegistration().Required("replaced :attribute")),
	})

	assert.Equal(t, []string{"z", "a"}, v.Attributes())
	assert.NotPanics(t, func() { v.Passes() })
	assert.Equal(t, "replaced z", v.Message())
}

// phoneNumber validates ten digit phone numbers.
type phoneNumber struct{}

func (phoneNumber) Validate(attribute string, value validator.Value, res *validator.Result) {
	if !regexp.MustCompile(`^\d{10}$`).MatchString(value.Text()) {
		res.Fail("The " + attribute + " must be a 10 digit number.")
	}
}

func TestValidator_CustomRules(t *testing.T) {
	t.Parallel()

	t.Run("custom object", func(t *testing.T) {
		v := validator.New(validator.Fields{
			validator.Attr("phone", validator.Custom(phoneNumber{})),
		}, validator.WithData(map[string]any{"phone": "12345"}))

		assert.Equal(t, validator.Messages{
			"phone": {"The phone must be a 10 digit number."},
		}, v.Messages())

		v.SetData(map[string]any{"phone": 5551234567})
		assert.True(t, v.Passes())
	})

	t.Run("custom function receives the raw key", func(t *testing.T) {
		var seen string
		v := validator.New(validator.Fields{
			validator.Attr("first_name", validator.CustomFunc(func(attribute string, value validator.Value, res *validator.Result) {
				seen = attribute
				if s, _ := value.Str(); s != "John" {
					res.Fail("Only John is allowed.")
				}
			})),
		}, validator.WithData(map[string]any{"first_name": "Jane"}))

		assert.Equal(t, "Only John is allowed.", v.Message())
		assert.Equal(t, "first_name", seen)
	})

	t.Run("only the first fail call is kept", func(t *testing.T) {
		v := validator.New(validator.Fields{
			validator.Attr("code", validator.CustomFunc(func(_ string, _ validator.Value, res *validator.Result) {
				res.Fail("first")
				res.Fail("second")
			})),
		})

		assert.Equal(t, []string{"first"}, v.Messages().All("code"))
	})

	t.Run("nil rule passes", func(t *testing.T) {
		v := validator.New(validator.Fields{validator.Attr("code", validator.Custom(nil))})
		assert.True(t, v.Passes())
	})
}

func TestValidator_Logging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	v := validator.New(validator.Fields{
		validator.Attr("age", validator.NewRegistration().Nullable().Numeric()),
		validator.Attr("name", validator.NewRegistration().Required()),
		validator.Attr("code", validator.CustomFunc(func(_ string, _ validator.Value, res *validator.Result) {
			res.Fail("bad code")
		})),
	}, validator.WithLogger(log))

	assert.True(t, v.Fails())

	out := buf.String()
	assert.Contains(t, out, "nullable attribute skipped")
	assert.Contains(t, out, "attribute=age")
	assert.Contains(t, out, "rule failed")
	assert.Contains(t, out, "attribute=name rule=required")
	assert.Contains(t, out, "attribute=code rule=custom")
	assert.Contains(t, out, "validation pass completed")
	assert.Contains(t, out, "invalid=2")
	assert.Contains(t, out, "skipped=1")
	assert.Contains(t, out, `messages.code="[bad code]"`)
	assert.Contains(t, out, `messages.name="[The name field is required.]"`)
}

func TestValidator_LazyEvaluation(t *testing.T) {
	t.Parallel()

	calls := 0
	v := validator.New(validator.Fields{
		validator.Attr("x", validator.CustomFunc(func(string, validator.Value, *validator.Result) {
			calls++
		})),
	})

	assert.Zero(t, calls)
	v.Messages()
	v.Valid()
	v.Message()
	assert.Equal(t, 1, calls)

	v.Passes()
	assert.Equal(t, 2, calls)
}
