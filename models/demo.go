// Package models holds demo fixtures shared by the CLI and tests.
package models

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/veridex/listproof/common"
)

// DemoList builds an n-element public list with MiMC(secret) planted at the
// given position. Every other entry is the hash of a fresh random element, so
// the planted entry is indistinguishable from the rest.
func DemoList(n, position int, secret *big.Int) ([]*big.Int, error) {
	if position < 0 || position >= n {
		return nil, fmt.Errorf("position %d outside list of %d elements", position, n)
	}

	var secretEl fr.Element
	secretEl.SetBigInt(secret)

	list := make([]*big.Int, n)
	for i := range list {
		if i == position {
			h := common.HashToField(secretEl)
			list[i] = h.BigInt(new(big.Int))
			continue
		}

		r, err := common.RandomFieldElement()
		if err != nil {
			return nil, err
		}
		h := common.HashToField(r)
		list[i] = h.BigInt(new(big.Int))
	}
	return list, nil
}
