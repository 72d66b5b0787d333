package membership

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"

	"github.com/veridex/listproof/common"
)

// Gadget fixes the list size n. The compiled constraint system depends only
// on n and may be shared read-only across concurrent Synthesize calls.
type Gadget struct {
	n int
}

// New returns a gadget for lists of exactly n elements.
func New(n int) (*Gadget, error) {
	if n < 1 {
		return nil, fmt.Errorf("membership: invalid list size %d", n)
	}
	return &Gadget{n: n}, nil
}

// Size returns the fixed list size.
func (g *Gadget) Size() int { return g.n }

// Compile builds the R1CS constraint system for this list size.
func (g *Gadget) Compile() (constraint.ConstraintSystem, error) {
	return frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, NewCircuit(g.n))
}

// Witness is the complete assignment of every signal in the membership
// circuit for one concrete (secret, index, list) triple. It is produced fresh
// per proof attempt and owned exclusively by the prover.
type Witness struct {
	Secret fr.Element
	Index  fr.Element
	List   []fr.Element

	Hash         fr.Element   // MiMC(secret)
	Selector     []fr.Element // one-hot selector vector
	InverseHints []fr.Element // (index - i)^-1 where nonzero, else 0
	PartialSums  []fr.Element // n+1 running sums, PartialSums[0] == 0
	Selected     fr.Element   // PartialSums[n]
	Out          fr.Element   // 1 for a witness returned by Synthesize
}

// Synthesize computes every intermediate signal for the given inputs.
//
// It fails with ErrShapeMismatch when the list does not have exactly n
// elements, ErrFieldRange when an input is nil or negative, and
// ErrUnsatisfiableWitness when the computed output is not 1 (index out of
// range, or the secret's hash does not equal the claimed entry). Surfacing
// the last case here, before the proof backend ever runs, keeps caller-side
// data errors distinguishable from backend failures.
//
// Synthesize is a pure function: same inputs always produce the same witness,
// and concurrent calls share nothing.
func (g *Gadget) Synthesize(secret, index *big.Int, list []*big.Int) (*Witness, error) {
	if len(list) != g.n {
		return nil, fmt.Errorf("membership: got %d list elements, want %d: %w", len(list), g.n, ErrShapeMismatch)
	}

	w := &Witness{
		List:         make([]fr.Element, g.n),
		Selector:     make([]fr.Element, g.n),
		InverseHints: make([]fr.Element, g.n),
		PartialSums:  make([]fr.Element, g.n+1),
	}

	var err error
	if w.Secret, err = toFieldElement("secret", secret); err != nil {
		return nil, err
	}
	if w.Index, err = toFieldElement("index", index); err != nil {
		return nil, err
	}
	for i, v := range list {
		if w.List[i], err = toFieldElement(fmt.Sprintf("list[%d]", i), v); err != nil {
			return nil, err
		}
	}

	w.Hash = common.HashToField(w.Secret)

	// selector derivation: sel[i] = 1 iff index == i, with the inverse of
	// index - i as the auxiliary hint when unequal
	var sum fr.Element
	for i := 0; i < g.n; i++ {
		var d, iEl fr.Element
		iEl.SetUint64(uint64(i))
		d.Sub(&w.Index, &iEl)

		if d.IsZero() {
			w.Selector[i].SetOne()
		} else {
			w.InverseHints[i].Inverse(&d)
		}
		sum.Add(&sum, &w.Selector[i])
	}

	// selection accumulation
	for i := 0; i < g.n; i++ {
		var term fr.Element
		term.Mul(&w.Selector[i], &w.List[i])
		w.PartialSums[i+1].Add(&w.PartialSums[i], &term)
	}
	w.Selected = w.PartialSums[g.n]

	if sum.IsOne() && w.Hash.Equal(&w.Selected) {
		w.Out.SetOne()
	}

	if !w.Out.IsOne() {
		return nil, ErrUnsatisfiableWitness
	}
	return w, nil
}

// Assignment returns the gnark witness assignment for the proof backend.
func (w *Witness) Assignment() *Circuit {
	c := &Circuit{
		Secret: w.Secret,
		Index:  w.Index,
		List:   make([]frontend.Variable, len(w.List)),
		Out:    w.Out,
	}
	for i := range w.List {
		c.List[i] = w.List[i]
	}
	return c
}

// PublicOutput returns the single public output value. It is always 1 for a
// witness returned by Synthesize.
func (w *Witness) PublicOutput() fr.Element { return w.Out }

// Signals returns every signal of the witness by name, the view the proof
// backend consumes.
func (w *Witness) Signals() map[string]fr.Element {
	signals := map[string]fr.Element{
		"secret":   w.Secret,
		"index":    w.Index,
		"hash":     w.Hash,
		"selected": w.Selected,
		"out":      w.Out,
	}
	for i := range w.List {
		signals[fmt.Sprintf("list[%d]", i)] = w.List[i]
	}
	for i := range w.Selector {
		signals[fmt.Sprintf("selector[%d]", i)] = w.Selector[i]
		signals[fmt.Sprintf("invHint[%d]", i)] = w.InverseHints[i]
	}
	for i := range w.PartialSums {
		signals[fmt.Sprintf("acc[%d]", i)] = w.PartialSums[i]
	}
	return signals
}

// toFieldElement reduces v mod the field size. nil and negative values are
// rejected rather than reduced.
func toFieldElement(name string, v *big.Int) (fr.Element, error) {
	var el fr.Element
	if v == nil {
		return el, fmt.Errorf("membership: %s is nil: %w", name, ErrFieldRange)
	}
	if v.Sign() < 0 {
		return el, fmt.Errorf("membership: %s is negative: %w", name, ErrFieldRange)
	}
	el.SetBigInt(v)
	return el, nil
}
