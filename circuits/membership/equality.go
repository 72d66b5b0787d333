package membership

import (
	"math/big"

	"github.com/consensys/gnark/constraint/solver"
	"github.com/consensys/gnark/frontend"
)

func init() {
	// register hints
	solver.RegisterHint(GetHints()...)
}

// GetHints returns all hint functions used by this package. Useful for
// registering the hints with a standalone solver.
func GetHints() []solver.Hint {
	return []solver.Hint{inverseOrZeroHint}
}

// isZero returns a variable constrained to 1 when d == 0 and 0 otherwise.
//
// The test uses the multiplicative-inverse hint: the prover supplies
// inv = d^-1 when d != 0 (and 0 when d == 0), and the circuit enforces
//
//	out = 1 - d*inv
//	d*out = 0
//
// When d != 0 the second constraint forces out to 0, and with it the hint to
// be the true inverse. When d == 0 the first constraint forces out to 1. Both
// together make out boolean without a separate boolean constraint.
func isZero(api frontend.API, d frontend.Variable) frontend.Variable {
	inv, err := api.Compiler().NewHint(inverseOrZeroHint, 1, d)
	if err != nil {
		panic("failed to call inverseOrZero hint: " + err.Error())
	}

	out := api.Sub(1, api.Mul(d, inv[0]))
	api.AssertIsEqual(api.Mul(d, out), 0)
	return out
}

// isEqual returns a variable constrained to 1 when a == b and 0 otherwise.
func isEqual(api frontend.API, a, b frontend.Variable) frontend.Variable {
	return isZero(api, api.Sub(a, b))
}

// inverseOrZeroHint computes the modular inverse of its input, or 0 when the
// input is 0. It must be provided to the prover when the circuit uses it.
func inverseOrZeroHint(field *big.Int, inputs []*big.Int, results []*big.Int) error {
	if inputs[0].Sign() == 0 {
		results[0].SetUint64(0)
		return nil
	}
	results[0].ModInverse(inputs[0], field)
	return nil
}
