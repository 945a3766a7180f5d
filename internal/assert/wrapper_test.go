package assert_test

import (
	"testing"

	"github.com/Wshid/effective-java/internal/assert"
	"github.com/Wshid/effective-java/internal/config"
	"github.com/Wshid/effective-java/pkg/api"
	"github.com/Wshid/effective-java/pkg/builder"
)

func TestPizzaAssertions(t *testing.T) {
	as := assert.New(t)

	p, err := builder.NewNYPizza(api.Large).
		AddToppings(api.Onion, api.Ham, api.Onion).
		Build()
	as.Require.NoError(err)

	as.PizzaValid(p)
	as.ToppingsEqual(p, api.Ham, api.Onion, api.Ham)
}

func TestConfigAssertions(t *testing.T) {
	as := assert.New(t)

	cfg := config.NewDefaultConfig()
	as.ConfigValid(cfg)

	cfg.MaxToppings = -1
	as.ConfigInvalid(cfg, "max toppings")
}
