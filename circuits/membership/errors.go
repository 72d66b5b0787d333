package membership

import "errors"

var (
	// ErrShapeMismatch reports a public list whose length does not match the
	// gadget's fixed size. Detected before any constraint evaluation.
	ErrShapeMismatch = errors.New("public list length does not match gadget size")

	// ErrUnsatisfiableWitness reports inputs that cannot satisfy the
	// membership constraints: the index is outside the list or the secret's
	// hash does not equal the claimed entry. The two causes are deliberately
	// not distinguished; the error stays on the prover's machine and is never
	// part of anything a verifier sees.
	ErrUnsatisfiableWitness = errors.New("witness does not satisfy the membership constraints")

	// ErrFieldRange reports an input that is not reducible to a field
	// element (nil or negative).
	ErrFieldRange = errors.New("value is not a valid field element")
)
