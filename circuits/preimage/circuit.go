// Package preimage implements the minimal MiMC preimage circuit: knowledge
// of x such that MiMC(x) == h for a public h. It is the hash-equality step of
// the membership circuit in isolation.
package preimage

import (
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/hash/mimc"
)

// Circuit proves MiMC(Preimage) == Hash.
type Circuit struct {
	// Secret input
	Preimage frontend.Variable `gnark:",secret"`

	// Public input
	Hash frontend.Variable `gnark:",public"`
}

func (c *Circuit) Define(api frontend.API) error {
	h, err := mimc.NewMiMC(api)
	if err != nil {
		return err
	}
	h.Write(c.Preimage)
	api.AssertIsEqual(h.Sum(), c.Hash)

	return nil
}
