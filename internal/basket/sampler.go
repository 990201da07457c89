package basket

import (
	"fmt"
	"math/rand/v2"
)

// Sampler draws baskets uniformly from the item universe.
// It is not safe for concurrent use, like the *rand.Rand it wraps.
type Sampler struct {
	rand      *rand.Rand
	items     int
	maxBasket int
}

// NewSampler returns a Sampler drawing item ids in [1, items] and basket
// sizes in [1, maxBasket].
func NewSampler(r *rand.Rand, items, maxBasket int) (*Sampler, error) {
	if items <= 0 {
		return nil, fmt.Errorf("%w: num_items: must be positive, got %d", ErrInvalidArgument, items)
	}
	if maxBasket <= 0 {
		return nil, fmt.Errorf("%w: max_basket: must be positive, got %d", ErrInvalidArgument, maxBasket)
	}
	return &Sampler{rand: r, items: items, maxBasket: maxBasket}, nil
}

// NewSeededSampler is NewSampler over a PCG source seeded with seed.
func NewSeededSampler(seed uint64, items, maxBasket int) (*Sampler, error) {
	return NewSampler(rand.New(rand.NewPCG(seed, seed)), items, maxBasket)
}

// AppendBasket appends one basket to dst. Items are drawn with replacement
// and kept in sampling order.
func (s *Sampler) AppendBasket(dst []int) []int {
	n := 1 + s.rand.IntN(s.maxBasket)
	for range n {
		dst = append(dst, 1+s.rand.IntN(s.items))
	}
	return dst
}
