package common

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/mimc"
	"github.com/consensys/gnark/frontend"
)

// HashToField computes the native MiMC hash of a single field element,
// matching the in-circuit std/hash/mimc computation of one Write.
func HashToField(el fr.Element) fr.Element {
	h := mimc.NewMiMC()
	b := el.Bytes()
	h.Write(b[:])

	var out fr.Element
	out.SetBytes(h.Sum(nil))
	return out
}

// ParseFieldElement parses a decimal or 0x-prefixed hex string into a big.Int
// suitable for reduction into the scalar field.
func ParseFieldElement(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty field element")
	}

	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
		base = 16
	}

	v, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, fmt.Errorf("invalid field element %q", s)
	}
	return v, nil
}

// FieldElementsToVariables converts native field elements to circuit
// assignment values.
func FieldElementsToVariables(els []fr.Element) []frontend.Variable {
	vars := make([]frontend.Variable, len(els))
	for i := range els {
		vars[i] = els[i]
	}
	return vars
}

// RandomFieldElement returns a cryptographically random field element.
func RandomFieldElement() (fr.Element, error) {
	var el fr.Element
	if _, err := el.SetRandom(); err != nil {
		return el, err
	}
	return el, nil
}

// GenerateRandomBytes returns cryptographically secure random bytes
func GenerateRandomBytes(size int) ([]byte, error) {
	randomBytes := make([]byte, size)
	_, err := rand.Read(randomBytes)
	if err != nil {
		return nil, err
	}
	return randomBytes, nil
}
