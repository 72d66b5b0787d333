// Package membership implements the indexed-membership circuit: a proof of
// knowledge of a secret and a position such that MiMC(secret) equals the
// element at that position in a public list, without revealing either.
//
// Indexed access is not expressible directly in an arithmetic circuit, so the
// circuit derives a one-hot selector vector from the claimed index and folds
// it against the list. The selector derivation and the fold are two explicit
// passes; see onehot.go and select.go.
package membership

import (
	"errors"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/hash/mimc"
)

// Circuit proves MiMC(Secret) == List[Index].
//
// The verifier learns the list and the single output value 1; the secret and
// the position stay private.
type Circuit struct {
	// Secret inputs
	Secret frontend.Variable `gnark:",secret"`
	Index  frontend.Variable `gnark:",secret"`

	// Public inputs
	List []frontend.Variable `gnark:",public"`
	Out  frontend.Variable   `gnark:",public"`
}

// NewCircuit returns a compile template for a list of n elements. The list
// size is fixed at construction time; it is part of the constraint system.
func NewCircuit(n int) *Circuit {
	return &Circuit{
		List: make([]frontend.Variable, n),
	}
}

// Define declares the membership constraints:
//   - the selector vector derived from Index is one-hot,
//   - the selector folds the list into a single selected value,
//   - MiMC(Secret) equals the selected value,
//   - the public output is 1.
func (c *Circuit) Define(api frontend.API) error {
	if len(c.List) == 0 {
		return errors.New("membership: empty public list")
	}

	sel := oneHot(api, c.Index, len(c.List))
	selected := selectValue(api, sel, c.List)

	h, err := mimc.NewMiMC(api)
	if err != nil {
		return err
	}
	h.Write(c.Secret)
	api.AssertIsEqual(h.Sum(), selected)

	api.AssertIsEqual(c.Out, 1)

	return nil
}
