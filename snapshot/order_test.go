package snapshot

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func appendBlocks(order *[]int, n int) []func() {
	blocks := make([]func(), n)
	for i := range blocks {
		blocks[i] = func() { *order = append(*order, i) }
	}
	return blocks
}

func TestPerformInOrder(t *testing.T) {
	var order []int
	PerformInOrder(appendBlocks(&order, 4)...)
	assert.Equal(t, []int{0, 1, 2, 3}, order)
}

func TestPerformShuffled(t *testing.T) {
	var order []int
	PerformShuffled(rand.New(rand.NewPCG(1, 2)), appendBlocks(&order, 8)...)

	want := rand.New(rand.NewPCG(1, 2)).Perm(8)
	assert.Equal(t, want, order)
}

func TestPerformInRandomOrder(t *testing.T) {
	var order []int
	PerformInRandomOrder(appendBlocks(&order, 6)...)
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5}, order)

	PerformInRandomOrder()
}
