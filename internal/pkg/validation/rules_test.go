package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name string  `validate:"required,notblank"`
	Nick *string `validate:"omitempty,notblank"`
}

func TestNotBlank(t *testing.T) {
	v := validator.New()
	require.NoError(t, Register(v))
	blank := "   "
	nick := "Red Five"

	tests := []struct {
		name  string
		input sample
		valid bool
	}{
		{name: "valid", input: sample{Name: "Luke", Nick: &nick}, valid: true},
		{name: "nil optional", input: sample{Name: "Luke"}, valid: true},
		{name: "blank name", input: sample{Name: " \t"}},
		{name: "blank optional", input: sample{Name: "Luke", Nick: &blank}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
