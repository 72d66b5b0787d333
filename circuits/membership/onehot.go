package membership

import (
	"github.com/consensys/gnark/frontend"
)

// oneHot derives the selector vector for a claimed index: sel[i] == 1 when
// index == i and 0 otherwise, for i in 0..n-1.
//
// The builder also enforces sum(sel) == 1. This sum constraint is what rejects
// an index outside 0..n-1: no position matches, every selector is 0, and the
// sum cannot reach 1. No explicit range check is needed because n is a small
// size fixed at construction time and known to prover and verifier alike.
func oneHot(api frontend.API, index frontend.Variable, n int) []frontend.Variable {
	sel := make([]frontend.Variable, n)

	sum := frontend.Variable(0)
	for i := 0; i < n; i++ {
		sel[i] = isEqual(api, index, i)
		sum = api.Add(sum, sel[i])
	}
	api.AssertIsEqual(sum, 1)

	return sel
}
