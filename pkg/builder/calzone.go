package builder

import "github.com/Wshid/effective-java/pkg/api"

// Calzone builds api.Calzone values
type Calzone struct {
	Builder[*Calzone]
	sauceInside bool
}

var (
	_ Self[*Calzone]          = (*Calzone)(nil)
	_ Buildable[*api.Calzone] = (*Calzone)(nil)
)

// NewCalzone creates a calzone builder with the sauce served on the side
func NewCalzone() *Calzone {
	res := &Calzone{}
	res.Init(res)
	return res
}

func (b *Calzone) SauceInside() *Calzone {
	b.sauceInside = true
	return b
}

// Build returns a new api.Calzone holding a copy of the current toppings
func (b *Calzone) Build() (*api.Calzone, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}

	res := api.NewCalzone(b, b.sauceInside)
	if err := res.Validate(); err != nil {
		return nil, err
	}
	return res, nil
}
