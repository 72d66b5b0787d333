package preimage_test

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/backend"
	"github.com/consensys/gnark/test"
	"github.com/stretchr/testify/require"

	"github.com/veridex/listproof/circuits/preimage"
	"github.com/veridex/listproof/common"
)

func TestPreimageProver(t *testing.T) {
	assert := test.NewAssert(t)

	var pre fr.Element
	pre.SetUint64(42)
	hash := common.HashToField(pre)

	assert.ProverSucceeded(&preimage.Circuit{}, &preimage.Circuit{
		Preimage: 42,
		Hash:     hash,
	}, test.WithCurves(ecc.BN254), test.WithBackends(backend.GROTH16))

	assert.ProverFailed(&preimage.Circuit{}, &preimage.Circuit{
		Preimage: 43,
		Hash:     hash,
	}, test.WithCurves(ecc.BN254), test.WithBackends(backend.GROTH16))
}

func TestPreimageInputParser(t *testing.T) {
	parser := &preimage.InputParser{}

	var pre fr.Element
	pre.SetUint64(42)
	hash := common.HashToField(pre)
	hashStr := hash.BigInt(new(big.Int)).String()

	pub, err := json.Marshal(preimage.PublicInput{Hash: hashStr})
	require.NoError(t, err)
	priv, err := json.Marshal(preimage.PrivateInput{Preimage: "42"})
	require.NoError(t, err)

	_, err = parser.Parse(pub, priv)
	require.NoError(t, err)

	// mismatched preimage is rejected before proving
	badPriv, err := json.Marshal(preimage.PrivateInput{Preimage: "43"})
	require.NoError(t, err)
	_, err = parser.Parse(pub, badPriv)
	require.Error(t, err)

	// public-only parse
	_, err = parser.Parse(pub, nil)
	require.NoError(t, err)
}
