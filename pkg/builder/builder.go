package builder

import (
	"github.com/Wshid/effective-java/pkg/api"
	"github.com/Wshid/effective-java/pkg/util"
)

type (
	// Self is implemented by builders that can return themselves as their
	// concrete type
	Self[T any] interface {
		Self() T
	}

	// Buildable produces a concrete pizza of type P
	Buildable[P api.Product] interface {
		Build() (P, error)
	}

	// Builder accumulates toppings on behalf of a concrete builder T. It
	// must be bound with Init before use
	Builder[T any] struct {
		toppings util.Set[api.Topping]
		self     T
		err      error
	}
)

// Init binds the Builder to the concrete builder embedding it and resets the
// working set
func (b *Builder[T]) Init(self T) {
	b.self = self
	b.toppings = util.Set[api.Topping]{}
	b.err = nil
}

// Self returns the concrete builder bound by Init
func (b *Builder[T]) Self() T {
	return b.self
}

// AddTopping adds a topping to the working set and returns the concrete
// builder. An absent or unknown topping leaves the set untouched and is
// reported by Err and by the concrete Build
func (b *Builder[T]) AddTopping(t api.Topping) T {
	if err := t.Validate(); err != nil {
		b.fail(err)
		return b.self
	}
	if b.toppings == nil {
		b.toppings = util.Set[api.Topping]{}
	}
	b.toppings.Add(t)
	return b.self
}

// AddToppings adds each topping in order, as if by repeated AddTopping
func (b *Builder[T]) AddToppings(toppings ...api.Topping) T {
	for _, t := range toppings {
		b.AddTopping(t)
	}
	return b.self
}

// ToppingSet exposes the working set. The set remains owned by the Builder;
// products copy it through api.NewPizza
func (b *Builder[T]) ToppingSet() util.Set[api.Topping] {
	if b.toppings == nil {
		return util.Set[api.Topping]{}
	}
	return b.toppings
}

// Err returns the first error recorded by a rejected AddTopping
func (b *Builder[T]) Err() error {
	return b.err
}

func (b *Builder[T]) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}
