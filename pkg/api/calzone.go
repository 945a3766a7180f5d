package api

import (
	"encoding/json"
	"fmt"
)

// Calzone is a folded pizza whose sauce is either inside or served on the
// side
type Calzone struct {
	Pizza
	sauceInside bool
}

// NewCalzone captures the toppings from src
func NewCalzone(src ToppingSource, sauceInside bool) *Calzone {
	return &Calzone{
		Pizza:       NewPizza(src),
		sauceInside: sauceInside,
	}
}

func (c *Calzone) Kind() Kind {
	return KindCalzone
}

func (c *Calzone) SauceInside() bool {
	return c.sauceInside
}

func (c *Calzone) Validate() error {
	return c.validateToppings()
}

func (c *Calzone) String() string {
	sauce := "on the side"
	if c.sauceInside {
		sauce = "inside"
	}
	return fmt.Sprintf("Calzone with %s (sauce %s)",
		describeToppings(c.Toppings()), sauce)
}

func (c *Calzone) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind        Kind      `json:"kind"`
		SauceInside bool      `json:"sauce_inside"`
		Toppings    []Topping `json:"toppings"`
	}{
		Kind:        c.Kind(),
		SauceInside: c.sauceInside,
		Toppings:    c.Toppings(),
	})
}
