package models_test

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"

	"github.com/veridex/listproof/common"
	"github.com/veridex/listproof/models"
)

func TestDemoList(t *testing.T) {
	secret := big.NewInt(42)

	list, err := models.DemoList(10, 3, secret)
	require.NoError(t, err)
	require.Len(t, list, 10)

	var secretEl fr.Element
	secretEl.SetBigInt(secret)
	h := common.HashToField(secretEl)

	require.Zero(t, list[3].Cmp(h.BigInt(new(big.Int))))

	// random fillers should not collide with the planted entry
	for i, v := range list {
		if i == 3 {
			continue
		}
		require.NotZero(t, v.Cmp(list[3]))
	}
}

func TestDemoListBadPosition(t *testing.T) {
	_, err := models.DemoList(10, 10, big.NewInt(1))
	require.Error(t, err)

	_, err = models.DemoList(10, -1, big.NewInt(1))
	require.Error(t, err)
}
