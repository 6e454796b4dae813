package snapshot

import "math/rand/v2"

// PerformInOrder runs blocks in the given order. It is the deterministic
// counterpart of PerformInRandomOrder, handy when bisecting an
// order-dependent failure.
func PerformInOrder(blocks ...func()) {
	for _, b := range blocks {
		b()
	}
}

// PerformInRandomOrder runs blocks in a shuffled order, to shake out code
// that depends on the order properties are set in.
func PerformInRandomOrder(blocks ...func()) {
	PerformShuffled(nil, blocks...)
}

// PerformShuffled runs blocks in an order drawn from r, or from the global
// source when r is nil.
func PerformShuffled(r *rand.Rand, blocks ...func()) {
	var perm []int
	if r != nil {
		perm = r.Perm(len(blocks))
	} else {
		perm = rand.Perm(len(blocks))
	}
	for _, i := range perm {
		blocks[i]()
	}
}
