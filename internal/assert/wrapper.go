package assert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wshid/effective-java/internal/config"
	"github.com/Wshid/effective-java/pkg/api"
)

// Wrapper wraps testify assertions with pizza-specific helpers
type Wrapper struct {
	*testing.T
	*assert.Assertions
	Require *require.Assertions
}

// New creates a new test assertion wrapper with both assert and require from
// testify plus pizza-specific helpers
func New(t *testing.T) *Wrapper {
	return &Wrapper{
		T:          t,
		Assertions: assert.New(t),
		Require:    require.New(t),
	}
}

// PizzaValid asserts that a pizza passes validation
func (w *Wrapper) PizzaValid(p api.Product) {
	w.Helper()
	w.Require.NotNil(p)
	w.NoError(p.Validate())
	w.NotEmpty(p.Kind())
}

// ToppingsEqual asserts that a pizza holds exactly the expected toppings,
// ignoring order and duplicates in expected
func (w *Wrapper) ToppingsEqual(p api.Product, expected ...api.Topping) {
	w.Helper()
	w.Require.NotNil(p)

	want := map[api.Topping]struct{}{}
	for _, t := range expected {
		want[t] = struct{}{}
	}
	got := p.Toppings()
	w.Len(got, len(want))
	for t := range want {
		w.True(p.HasTopping(t), "missing topping %q", t)
	}
}

// ConfigValid asserts that a configuration is valid
func (w *Wrapper) ConfigValid(cfg *config.Config) {
	w.Helper()
	w.NoError(cfg.Validate())
}

// ConfigInvalid asserts that a configuration is invalid and that the error
// contains the expected text
func (w *Wrapper) ConfigInvalid(
	cfg *config.Config, expectedErrorContains string,
) {
	w.Helper()
	err := cfg.Validate()
	w.Error(err)
	if err != nil && expectedErrorContains != "" {
		w.Contains(err.Error(), expectedErrorContains)
	}
}
