package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

func TestMessages(t *testing.T) {
	t.Run("add keeps order per attribute", func(t *testing.T) {
		m := validator.Messages{}
		m.Add("password", "too short")
		m.Add("password", "missing digit")
		m.Add("email", "is required")

		assert.Equal(t, []string{"too short", "missing digit"}, m.All("password"))
		assert.Equal(t, "too short", m.Get("password"))
		assert.Equal(t, []string{"email", "password"}, m.Attributes())
	})

	t.Run("empty lookups", func(t *testing.T) {
		m := validator.Messages{}
		assert.True(t, m.IsEmpty())
		assert.False(t, m.Has("email"))
		assert.Empty(t, m.Get("email"))
		assert.Nil(t, m.All("email"))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("error returns the first message of the first attribute", func(t *testing.T) {
		err := &validator.ValidationError{
			Messages: validator.Messages{
				"a": {"first a", "second a"},
				"b": {"first b"},
			},
			Attributes: []string{"b", "a"},
		}
		assert.Equal(t, "first b", err.Error())
	})

	t.Run("falls back to the sentinel text", func(t *testing.T) {
		err := &validator.ValidationError{}
		assert.Equal(t, "validation failed", err.Error())
	})

	t.Run("matches the sentinel", func(t *testing.T) {
		var err error = &validator.ValidationError{}
		assert.True(t, errors.Is(err, validator.ErrValidationFailed))
	})
}

func TestExtractMessages(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractMessages(nil))
	})

	t.Run("other error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractMessages(errors.New("boom")))
	})

	t.Run("wrapped validation error", func(t *testing.T) {
		msgs := validator.Messages{"email": {"The email field is required."}}
		err := fmt.Errorf("register user: %w", &validator.ValidationError{
			Messages:   msgs,
			Attributes: []string{"email"},
		})

		got := validator.ExtractMessages(err)
		require.NotNil(t, got)
		assert.Equal(t, msgs, got)
	})
}

func TestIsValidationError(t *testing.T) {
	assert.False(t, validator.IsValidationError(nil))
	assert.False(t, validator.IsValidationError(validator.ErrValidationFailed))
	assert.True(t, validator.IsValidationError(&validator.ValidationError{}))
	assert.True(t, validator.IsValidationError(fmt.Errorf("wrap: %w", &validator.ValidationError{})))
}

func TestFormatMessage(t *testing.T) {
	assert.Equal(t, "first name", validator.DisplayName("first_name"))
	assert.Equal(t, "a b c", validator.DisplayName("a_b_c"))
	assert.Equal(t,
		"The date of birth field is required. (date of birth)",
		validator.FormatMessage("The :attribute field is required. (:attribute)", "date_of_birth"),
	)
	assert.Equal(t, "no placeholder", validator.FormatMessage("no placeholder", "x"))
}
