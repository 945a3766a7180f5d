package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

type (
	// NYPizza is a New York style pizza with a mandatory size
	NYPizza struct {
		Pizza
		size Size
	}

	Size string
)

const (
	Small  Size = "small"
	Medium Size = "medium"
	Large  Size = "large"
)

var ErrInvalidSize = errors.New("invalid size")

var validSizes = map[Size]struct{}{
	Small:  {},
	Medium: {},
	Large:  {},
}

// NewNYPizza pairs a size with the toppings captured from src
func NewNYPizza(src ToppingSource, size Size) *NYPizza {
	return &NYPizza{
		Pizza: NewPizza(src),
		size:  size,
	}
}

// ParseSize resolves a size by name, ignoring case and surrounding
// whitespace
func ParseSize(name string) (Size, error) {
	s := Size(strings.ToLower(strings.TrimSpace(name)))
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

func (s Size) Validate() error {
	if _, ok := validSizes[s]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidSize, string(s))
	}
	return nil
}

func (p *NYPizza) Kind() Kind {
	return KindNY
}

func (p *NYPizza) Size() Size {
	return p.size
}

func (p *NYPizza) Validate() error {
	if err := p.size.Validate(); err != nil {
		return err
	}
	return p.validateToppings()
}

func (p *NYPizza) String() string {
	return fmt.Sprintf("New York pizza (%s) with %s",
		p.size, describeToppings(p.Toppings()))
}

func (p *NYPizza) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind     Kind      `json:"kind"`
		Size     Size      `json:"size"`
		Toppings []Topping `json:"toppings"`
	}{
		Kind:     p.Kind(),
		Size:     p.size,
		Toppings: p.Toppings(),
	})
}

func describeToppings(toppings []Topping) string {
	if len(toppings) == 0 {
		return "no toppings"
	}
	names := make([]string, len(toppings))
	for i, t := range toppings {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
