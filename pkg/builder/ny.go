package builder

import "github.com/Wshid/effective-java/pkg/api"

// NYPizza builds api.NYPizza values
type NYPizza struct {
	Builder[*NYPizza]
	size api.Size
}

var (
	_ Self[*NYPizza]          = (*NYPizza)(nil)
	_ Buildable[*api.NYPizza] = (*NYPizza)(nil)
)

// NewNYPizza creates a New York pizza builder for the given size
func NewNYPizza(size api.Size) *NYPizza {
	res := &NYPizza{size: size}
	res.Init(res)
	return res
}

// Build returns a new api.NYPizza holding a copy of the current toppings.
// The builder stays usable and later changes never reach the result
func (b *NYPizza) Build() (*api.NYPizza, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}

	res := api.NewNYPizza(b, b.size)
	if err := res.Validate(); err != nil {
		return nil, err
	}
	return res, nil
}
