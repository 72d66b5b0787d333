package common_test

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"

	"github.com/veridex/listproof/common"
)

func TestParseFieldElement(t *testing.T) {
	v, err := common.ParseFieldElement("42")
	require.NoError(t, err)
	require.Equal(t, int64(42), v.Int64())

	v, err = common.ParseFieldElement("0xff")
	require.NoError(t, err)
	require.Equal(t, int64(255), v.Int64())

	_, err = common.ParseFieldElement("")
	require.Error(t, err)

	_, err = common.ParseFieldElement("12g4")
	require.Error(t, err)

	// field-sized values round trip
	huge := new(big.Int).Lsh(big.NewInt(1), 200)
	v, err = common.ParseFieldElement(huge.String())
	require.NoError(t, err)
	require.Zero(t, v.Cmp(huge))
}

func TestHashToFieldDeterministic(t *testing.T) {
	var a fr.Element
	a.SetUint64(42)

	h1 := common.HashToField(a)
	h2 := common.HashToField(a)
	require.True(t, h1.Equal(&h2))
	require.False(t, h1.Equal(&a))

	var b fr.Element
	b.SetUint64(43)
	h3 := common.HashToField(b)
	require.False(t, h1.Equal(&h3))
}
