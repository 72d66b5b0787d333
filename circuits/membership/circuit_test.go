package membership_test

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/backend"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/test"

	"github.com/veridex/listproof/circuits/membership"
	"github.com/veridex/listproof/common"
)

const listSize = 10

// mimcOf returns MiMC(v) as a frontend assignment value.
func mimcOf(v uint64) fr.Element {
	var el fr.Element
	el.SetUint64(v)
	return common.HashToField(el)
}

// assignment builds a full circuit assignment for a list with MiMC(secret)
// at the hash position, zeros elsewhere.
func assignment(secret, index uint64, hashPos int) *membership.Circuit {
	c := membership.NewCircuit(listSize)
	for i := range c.List {
		c.List[i] = 0
	}
	c.List[hashPos] = mimcOf(secret)
	c.Secret = secret
	c.Index = index
	c.Out = 1
	return c
}

func TestMembershipProver(t *testing.T) {
	assert := test.NewAssert(t)

	template := membership.NewCircuit(listSize)

	// list[3] = MiMC(42), secret 42 claimed at position 3
	assert.ProverSucceeded(template, assignment(42, 3, 3),
		test.WithCurves(ecc.BN254), test.WithBackends(backend.GROTH16))

	// same list, honest secret but wrong claimed position
	assert.ProverFailed(template, assignment(42, 4, 3),
		test.WithCurves(ecc.BN254), test.WithBackends(backend.GROTH16))

	// right position, wrong secret
	wrongSecret := assignment(42, 3, 3)
	wrongSecret.Secret = 43
	assert.ProverFailed(template, wrongSecret,
		test.WithCurves(ecc.BN254), test.WithBackends(backend.GROTH16))

	// index outside the list: the selector sum never reaches 1
	assert.ProverFailed(template, assignment(42, listSize, 3),
		test.WithCurves(ecc.BN254), test.WithBackends(backend.GROTH16))

	// a dishonest public output cannot rescue a bad witness
	zeroOut := assignment(42, 4, 3)
	zeroOut.Out = 0
	assert.ProverFailed(template, zeroOut,
		test.WithCurves(ecc.BN254), test.WithBackends(backend.GROTH16))
}

func TestMembershipLastPosition(t *testing.T) {
	assert := test.NewAssert(t)

	// nine externally supplied hashes plus MiMC(secret) appended at position 9
	c := membership.NewCircuit(listSize)
	for i := 0; i < listSize-1; i++ {
		c.List[i] = mimcOf(uint64(1000 + i))
	}
	c.List[listSize-1] = mimcOf(7)
	c.Secret = 7
	c.Index = listSize - 1
	c.Out = 1

	assert.ProverSucceeded(membership.NewCircuit(listSize), c,
		test.WithCurves(ecc.BN254), test.WithBackends(backend.GROTH16))
}

func TestMembershipHugeIndex(t *testing.T) {
	// field values far outside 0..n-1, including values wrapping mod p,
	// must not solve the constraints
	modulus := ecc.BN254.ScalarField()

	for _, idx := range []*big.Int{
		big.NewInt(int64(listSize)),
		big.NewInt(1 << 40),
		new(big.Int).Sub(modulus, big.NewInt(1)),
		new(big.Int).Add(modulus, big.NewInt(3)), // reduces to 3, but list[3] won't match secret 9
	} {
		c := assignment(9, 0, 5)
		c.Index = idx
		if err := test.IsSolved(membership.NewCircuit(listSize), c, ecc.BN254.ScalarField()); err == nil {
			t.Errorf("index %s unexpectedly solved the circuit", idx)
		}
	}
}

func TestMembershipEndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping Groth16 setup in short mode")
	}

	ccsPath := "compiled/membership-10-test.ccs"
	pkPath := "compiled/membership-10-test.pk"
	vkPath := "compiled/membership-10-test.vk"

	forceCompile := true

	gadget, err := membership.New(listSize)
	if err != nil {
		t.Fatalf("failed to create gadget: %v", err)
	}

	list := make([]*big.Int, listSize)
	for i := range list {
		list[i] = big.NewInt(0)
	}
	h := mimcOf(42)
	list[3] = h.BigInt(new(big.Int))

	w, err := gadget.Synthesize(big.NewInt(42), big.NewInt(3), list)
	if err != nil {
		t.Fatalf("failed to synthesize witness: %v", err)
	}

	ccs, pk, vk, err := common.InitCircuit(ccsPath, pkPath, vkPath, forceCompile, membership.NewCircuit(listSize))
	if err != nil {
		t.Fatalf("failed to initialize the circuit: %v", err)
	}

	if err := common.ProveAndVerify(w.Assignment(), ccs, pk, vk); err != nil {
		t.Fatalf("prove and verify failed: %v", err)
	}
}

var _ frontend.Circuit = (*membership.Circuit)(nil)
