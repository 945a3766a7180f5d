package api_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Wshid/effective-java/pkg/api"
)

func TestToppingValidate(t *testing.T) {
	for _, tp := range api.AllToppings() {
		assert.NoError(t, tp.Validate())
	}

	assert.ErrorIs(t, api.Topping("").Validate(), api.ErrToppingAbsent)
	assert.ErrorIs(t, api.Topping("pineapple").Validate(), api.ErrInvalidTopping)
}

func TestParseTopping(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected api.Topping
		err      error
	}{
		{name: "lower", input: "ham", expected: api.Ham},
		{name: "upper", input: "MUSHROOM", expected: api.Mushroom},
		{name: "padded", input: "  Onion ", expected: api.Onion},
		{name: "empty", input: "", err: api.ErrToppingAbsent},
		{name: "unknown", input: "anchovy", err: api.ErrInvalidTopping},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := api.ParseTopping(tt.input)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				assert.Empty(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestAllToppingsIsACopy(t *testing.T) {
	all := api.AllToppings()
	assert.Equal(t, []api.Topping{
		api.Ham, api.Mushroom, api.Onion, api.Pepper, api.Sausage,
	}, all)

	all[0] = "changed"
	assert.Equal(t, api.Ham, api.AllToppings()[0])
}
