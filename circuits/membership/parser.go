package membership

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/consensys/gnark/frontend"

	"github.com/veridex/listproof/common"
)

// PublicInput is the JSON shape of the verifier-visible inputs. The single
// output value is always 1 and is not part of the request.
type PublicInput struct {
	List []string `json:"list"`
}

// PrivateInput is the JSON shape of the prover-only inputs. Values are
// decimal or 0x-prefixed hex strings.
type PrivateInput struct {
	Secret string `json:"secret"`
	Index  string `json:"index"`
}

// InputParser converts raw JSON inputs to a circuit assignment for a list of
// N elements. When a private input is present the full witness is synthesized
// first, so unsatisfiable inputs surface as typed errors before the proof
// backend runs.
type InputParser struct {
	N int
}

func (p *InputParser) Parse(publicInput, privateInput []byte) (frontend.Circuit, error) {
	var pub PublicInput
	if err := json.Unmarshal(publicInput, &pub); err != nil {
		return nil, fmt.Errorf("failed to parse public input: %w", err)
	}
	if len(pub.List) != p.N {
		return nil, fmt.Errorf("got %d list elements, want %d: %w", len(pub.List), p.N, ErrShapeMismatch)
	}

	list := make([]*big.Int, len(pub.List))
	for i, s := range pub.List {
		v, err := common.ParseFieldElement(s)
		if err != nil {
			return nil, fmt.Errorf("list[%d]: %w", i, err)
		}
		list[i] = v
	}

	var priv PrivateInput
	if len(privateInput) > 0 {
		if err := json.Unmarshal(privateInput, &priv); err != nil {
			return nil, fmt.Errorf("failed to parse private input: %w", err)
		}
	}

	// verification path: only the public half of the assignment is needed
	if priv.Secret == "" && priv.Index == "" {
		assignment := NewCircuit(p.N)
		for i, v := range list {
			assignment.List[i] = v
		}
		assignment.Out = 1
		return assignment, nil
	}

	secret, err := common.ParseFieldElement(priv.Secret)
	if err != nil {
		return nil, fmt.Errorf("secret: %w", err)
	}
	index, err := common.ParseFieldElement(priv.Index)
	if err != nil {
		return nil, fmt.Errorf("index: %w", err)
	}

	gadget, err := New(p.N)
	if err != nil {
		return nil, err
	}
	w, err := gadget.Synthesize(secret, index, list)
	if err != nil {
		return nil, err
	}
	return w.Assignment(), nil
}
