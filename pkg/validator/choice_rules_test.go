package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

func TestIn(t *testing.T) {
	t.Run("string set", func(t *testing.T) {
		rule := validator.In([]string{"male", "female"})

		_, failed := run(rule, "gender", validator.ValueOf("female"))
		assert.False(t, failed)

		msg, failed := run(rule, "gender", validator.ValueOf("John"))
		assert.True(t, failed)
		assert.Equal(t, "The selected gender is invalid.", msg)
	})

	t.Run("string set rejects other kinds", func(t *testing.T) {
		rule := validator.In([]string{"1", "2"})
		_, failed := run(rule, "level", validator.ValueOf(1))
		assert.True(t, failed)
		_, failed = run(rule, "level", validator.Missing())
		assert.True(t, failed)
	})

	t.Run("number set", func(t *testing.T) {
		rule := validator.In([]int{18, 21})

		_, failed := run(rule, "age", validator.ValueOf(21))
		assert.False(t, failed)
		_, failed = run(rule, "age", validator.ValueOf(21.0))
		assert.False(t, failed)

		_, failed = run(rule, "age", validator.ValueOf(20))
		assert.True(t, failed)
		_, failed = run(rule, "age", validator.ValueOf("21"))
		assert.True(t, failed, "numeric strings do not match a number set")
	})

	t.Run("misconfiguration never fails", func(t *testing.T) {
		for _, values := range []any{nil, "male", 42, []string{}, []bool{true}} {
			_, failed := run(validator.In(values), "gender", validator.ValueOf("anything"))
			assert.False(t, failed, "%#v", values)
		}
	})

	t.Run("custom message", func(t *testing.T) {
		msg, _ := run(validator.In([]string{"a"}, "The :attribute field must be a valid value."), "gender", validator.ValueOf("b"))
		assert.Equal(t, "The gender field must be a valid value.", msg)
	})
}
