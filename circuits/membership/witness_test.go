package membership_test

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"

	"github.com/veridex/listproof/circuits/membership"
)

func demoInputs(t *testing.T) (*membership.Gadget, *big.Int, []*big.Int) {
	t.Helper()

	gadget, err := membership.New(listSize)
	require.NoError(t, err)

	secret := big.NewInt(42)
	list := make([]*big.Int, listSize)
	for i := range list {
		list[i] = big.NewInt(0)
	}
	h := mimcOf(42)
	list[3] = h.BigInt(new(big.Int))

	return gadget, secret, list
}

func TestSynthesize(t *testing.T) {
	gadget, secret, list := demoInputs(t)

	w, err := gadget.Synthesize(secret, big.NewInt(3), list)
	require.NoError(t, err)

	out := w.PublicOutput()
	require.True(t, out.IsOne())
	require.True(t, w.Hash.Equal(&w.Selected))

	// exactly one selector entry is 1, all others 0
	ones := 0
	for i := range w.Selector {
		switch {
		case w.Selector[i].IsOne():
			ones++
		case !w.Selector[i].IsZero():
			t.Fatalf("selector[%d] is neither 0 nor 1", i)
		}
	}
	require.Equal(t, 1, ones)
	require.True(t, w.Selector[3].IsOne())

	// partial sums start at 0 and end at the selected value
	require.True(t, w.PartialSums[0].IsZero())
	require.True(t, w.PartialSums[listSize].Equal(&w.Selected))

	// inverse hints invert index - i wherever the selector is 0
	for i := range w.InverseHints {
		if w.Selector[i].IsOne() {
			require.True(t, w.InverseHints[i].IsZero())
			continue
		}
		var d, iEl, prod fr.Element
		iEl.SetUint64(uint64(i))
		d.Sub(&w.Index, &iEl)
		prod.Mul(&d, &w.InverseHints[i])
		require.True(t, prod.IsOne())
	}
}

func TestSynthesizeUnsatisfiable(t *testing.T) {
	gadget, secret, list := demoInputs(t)

	// wrong index
	_, err := gadget.Synthesize(secret, big.NewInt(4), list)
	require.ErrorIs(t, err, membership.ErrUnsatisfiableWitness)

	// wrong secret
	_, err = gadget.Synthesize(big.NewInt(43), big.NewInt(3), list)
	require.ErrorIs(t, err, membership.ErrUnsatisfiableWitness)

	// out-of-range index
	_, err = gadget.Synthesize(secret, big.NewInt(listSize), list)
	require.ErrorIs(t, err, membership.ErrUnsatisfiableWitness)
}

func TestSynthesizeShapeMismatch(t *testing.T) {
	gadget, secret, list := demoInputs(t)

	_, err := gadget.Synthesize(secret, big.NewInt(3), list[:listSize-1])
	require.ErrorIs(t, err, membership.ErrShapeMismatch)

	long := append(append([]*big.Int{}, list...), big.NewInt(0))
	_, err = gadget.Synthesize(secret, big.NewInt(3), long)
	require.ErrorIs(t, err, membership.ErrShapeMismatch)
}

func TestSynthesizeFieldRange(t *testing.T) {
	gadget, secret, list := demoInputs(t)

	_, err := gadget.Synthesize(nil, big.NewInt(3), list)
	require.ErrorIs(t, err, membership.ErrFieldRange)

	_, err = gadget.Synthesize(secret, big.NewInt(-1), list)
	require.ErrorIs(t, err, membership.ErrFieldRange)

	bad := append([]*big.Int{}, list...)
	bad[7] = nil
	_, err = gadget.Synthesize(secret, big.NewInt(3), bad)
	require.ErrorIs(t, err, membership.ErrFieldRange)
}

func TestSynthesizeDeterministic(t *testing.T) {
	gadget, secret, list := demoInputs(t)

	w1, err := gadget.Synthesize(secret, big.NewInt(3), list)
	require.NoError(t, err)
	w2, err := gadget.Synthesize(secret, big.NewInt(3), list)
	require.NoError(t, err)

	require.Equal(t, w1.Signals(), w2.Signals())
	require.Equal(t, w1, w2)
}

func TestSynthesizeSignals(t *testing.T) {
	gadget, secret, list := demoInputs(t)

	w, err := gadget.Synthesize(secret, big.NewInt(3), list)
	require.NoError(t, err)

	signals := w.Signals()
	// secret, index, hash, selected, out + list + selector + hints + sums
	require.Len(t, signals, 5+listSize+2*listSize+listSize+1)
	outSignal := signals["out"]
	require.True(t, outSignal.IsOne())
	require.Contains(t, signals, "selector[9]")
	require.Contains(t, signals, "acc[10]")
}

func TestGadgetSize(t *testing.T) {
	_, err := membership.New(0)
	require.Error(t, err)

	gadget, err := membership.New(listSize)
	require.NoError(t, err)
	require.Equal(t, listSize, gadget.Size())
}
