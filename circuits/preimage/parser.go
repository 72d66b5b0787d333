package preimage

import (
	"encoding/json"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/frontend"

	"github.com/veridex/listproof/common"
)

// PublicInput is the JSON shape of the verifier-visible input.
type PublicInput struct {
	Hash string `json:"hash"`
}

// PrivateInput is the JSON shape of the prover-only input.
type PrivateInput struct {
	Preimage string `json:"preimage"`
}

// InputParser converts raw JSON inputs to a circuit assignment.
type InputParser struct{}

func (p *InputParser) Parse(publicInput, privateInput []byte) (frontend.Circuit, error) {
	var pub PublicInput
	if err := json.Unmarshal(publicInput, &pub); err != nil {
		return nil, fmt.Errorf("failed to parse public input: %w", err)
	}
	hash, err := common.ParseFieldElement(pub.Hash)
	if err != nil {
		return nil, fmt.Errorf("hash: %w", err)
	}

	var priv PrivateInput
	if len(privateInput) > 0 {
		if err := json.Unmarshal(privateInput, &priv); err != nil {
			return nil, fmt.Errorf("failed to parse private input: %w", err)
		}
	}

	assignment := &Circuit{Hash: hash}

	if priv.Preimage != "" {
		pre, err := common.ParseFieldElement(priv.Preimage)
		if err != nil {
			return nil, fmt.Errorf("preimage: %w", err)
		}

		// reject mismatched inputs before the backend does
		var preEl, hashEl fr.Element
		preEl.SetBigInt(pre)
		hashEl.SetBigInt(hash)
		if got := common.HashToField(preEl); !got.Equal(&hashEl) {
			return nil, fmt.Errorf("preimage does not hash to the public value")
		}

		assignment.Preimage = pre
	}

	return assignment, nil
}
