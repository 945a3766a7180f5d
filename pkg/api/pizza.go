package api

import (
	"fmt"

	"github.com/Wshid/effective-java/pkg/util"
)

type (
	// Pizza is the shared base of every concrete pizza. It is meant to be
	// embedded and is only ever produced from a builder through NewPizza
	Pizza struct {
		toppings util.Set[Topping]
	}

	// ToppingSource is anything holding a working set of toppings,
	// regardless of its concrete builder type
	ToppingSource interface {
		ToppingSet() util.Set[Topping]
	}

	// Product is the read-only view shared by all concrete pizzas
	Product interface {
		Kind() Kind
		Toppings() []Topping
		HasTopping(Topping) bool
		Validate() error
	}

	Kind string
)

const (
	KindNY      Kind = "ny"
	KindCalzone Kind = "calzone"
)

// NewPizza captures the source's current toppings into a private copy, so
// that later changes to the source never reach the returned Pizza
func NewPizza(src ToppingSource) Pizza {
	if src == nil {
		return Pizza{toppings: util.Set[Topping]{}}
	}
	return Pizza{toppings: src.ToppingSet().Clone()}
}

// Toppings returns the pizza's toppings in ascending order. The slice is a
// fresh copy on every call
func (p *Pizza) Toppings() []Topping {
	return util.Sorted(p.toppings)
}

func (p *Pizza) HasTopping(t Topping) bool {
	return p.toppings.Contains(t)
}

func (p *Pizza) ToppingCount() int {
	return p.toppings.Len()
}

func (p *Pizza) validateToppings() error {
	for t := range p.toppings {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("pizza: %w", err)
		}
	}
	return nil
}
