package membership

import (
	"github.com/consensys/gnark/frontend"
)

// selectValue folds a selector vector and the public list into the single
// selected element: acc[i+1] = acc[i] + sel[i]*list[i].
//
// When the one-hot invariant holds every term except the matching one
// contributes 0, so the final accumulator equals list[index]. The fold is kept
// as a pass separate from the selector builder so the one-hot invariant stays
// independently testable.
func selectValue(api frontend.API, sel, list []frontend.Variable) frontend.Variable {
	acc := frontend.Variable(0)
	for i := range list {
		acc = api.MulAcc(acc, sel[i], list[i])
	}
	return acc
}
