package blockfall

import (
	"math/rand"

	"github.com/vovakirdan/blockfall/internal/shapes"
)

// Bag is a 7-bag randomizer: every run of seven pieces contains each kind once.
type Bag struct {
	rng     *rand.Rand
	pending []shapes.Kind
}

// NewBag creates a bag drawing from rng.
func NewBag(rng *rand.Rand) *Bag {
	return &Bag{rng: rng}
}

func (b *Bag) refill() {
	kinds := shapes.Kinds()
	b.rng.Shuffle(len(kinds), func(i, j int) {
		kinds[i], kinds[j] = kinds[j], kinds[i]
	})
	b.pending = append(b.pending, kinds...)
}

// Next removes and returns the next kind.
func (b *Bag) Next() shapes.Kind {
	if len(b.pending) == 0 {
		b.refill()
	}
	k := b.pending[0]
	b.pending = b.pending[1:]
	return k
}

// Peek returns the next kind without removing it.
func (b *Bag) Peek() shapes.Kind {
	if len(b.pending) == 0 {
		b.refill()
	}
	return b.pending[0]
}
