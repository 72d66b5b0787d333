package membership_test

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/veridex/listproof/circuits/membership"
)

func marshalInputs(t *testing.T, list []*big.Int, secret, index string) (pub, priv []byte) {
	t.Helper()

	strs := make([]string, len(list))
	for i, v := range list {
		strs[i] = v.String()
	}
	pub, err := json.Marshal(membership.PublicInput{List: strs})
	require.NoError(t, err)
	priv, err = json.Marshal(membership.PrivateInput{Secret: secret, Index: index})
	require.NoError(t, err)
	return pub, priv
}

func TestInputParser(t *testing.T) {
	_, _, list := demoInputs(t)
	parser := &membership.InputParser{N: listSize}

	pub, priv := marshalInputs(t, list, "42", "3")

	assignment, err := parser.Parse(pub, priv)
	require.NoError(t, err)

	c, ok := assignment.(*membership.Circuit)
	require.True(t, ok)
	require.Len(t, c.List, listSize)
	require.NotNil(t, c.Secret)

	// public-only parse for the verification path
	assignment, err = parser.Parse(pub, nil)
	require.NoError(t, err)
	c = assignment.(*membership.Circuit)
	require.Equal(t, 1, c.Out)
	require.Nil(t, c.Secret)
}

func TestInputParserErrors(t *testing.T) {
	_, _, list := demoInputs(t)
	parser := &membership.InputParser{N: listSize}

	// short list
	pub, priv := marshalInputs(t, list[:listSize-1], "42", "3")
	_, err := parser.Parse(pub, priv)
	require.ErrorIs(t, err, membership.ErrShapeMismatch)

	// unsatisfiable witness surfaces before the backend
	pub, priv = marshalInputs(t, list, "42", "4")
	_, err = parser.Parse(pub, priv)
	require.ErrorIs(t, err, membership.ErrUnsatisfiableWitness)

	// malformed field element
	pub, priv = marshalInputs(t, list, "not-a-number", "3")
	_, err = parser.Parse(pub, priv)
	require.Error(t, err)

	// malformed JSON
	_, err = parser.Parse([]byte("{"), priv)
	require.Error(t, err)
}
