package api

import (
	"errors"
	"fmt"
	"strings"
)

type Topping string

const (
	Ham      Topping = "ham"
	Mushroom Topping = "mushroom"
	Onion    Topping = "onion"
	Pepper   Topping = "pepper"
	Sausage  Topping = "sausage"
)

var (
	ErrToppingAbsent  = errors.New("topping absent")
	ErrInvalidTopping = errors.New("invalid topping")
)

var allToppings = []Topping{Ham, Mushroom, Onion, Pepper, Sausage}

var validToppings = map[Topping]struct{}{
	Ham:      {},
	Mushroom: {},
	Onion:    {},
	Pepper:   {},
	Sausage:  {},
}

// AllToppings returns every member of the closed topping set
func AllToppings() []Topping {
	res := make([]Topping, len(allToppings))
	copy(res, allToppings)
	return res
}

// ParseTopping resolves a topping by name, ignoring case and surrounding
// whitespace
func ParseTopping(name string) (Topping, error) {
	t := Topping(strings.ToLower(strings.TrimSpace(name)))
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// Validate rejects the zero value and anything outside the closed set
func (t Topping) Validate() error {
	if t == "" {
		return ErrToppingAbsent
	}
	if _, ok := validToppings[t]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidTopping, string(t))
	}
	return nil
}
