package api

import (
	"github.com/veridex/listproof/circuits/membership"
	"github.com/veridex/listproof/circuits/preimage"
)

const (
	// fixed list sizes the server offers; the membership constraint system
	// depends only on the list size
	LIST_SIZE10 = 10
	LIST_SIZE32 = 32
)

var CircuitList = map[string]CircuitInfo{
	"membership-10": {
		Circuit:     membership.NewCircuit(LIST_SIZE10),
		Name:        "membership-10",
		Version:     1,
		Description: "Proves knowledge of a secret whose MiMC hash equals an entry of a 10-element public list, at a hidden position",
		InputParser: &membership.InputParser{N: LIST_SIZE10},
		Fields: []Field{
			{Name: "list", Type: "field[]", Size: LIST_SIZE10, Description: "Public list of field elements", IsPublic: true},
			{Name: "secret", Type: "field", Description: "Hash preimage (secret)", IsPublic: false},
			{Name: "index", Type: "field", Description: "Claimed list position (secret)", IsPublic: false},
		},
	},
	"membership-32": {
		Circuit:     membership.NewCircuit(LIST_SIZE32),
		Name:        "membership-32",
		Version:     1,
		Description: "Proves knowledge of a secret whose MiMC hash equals an entry of a 32-element public list, at a hidden position",
		InputParser: &membership.InputParser{N: LIST_SIZE32},
		Fields: []Field{
			{Name: "list", Type: "field[]", Size: LIST_SIZE32, Description: "Public list of field elements", IsPublic: true},
			{Name: "secret", Type: "field", Description: "Hash preimage (secret)", IsPublic: false},
			{Name: "index", Type: "field", Description: "Claimed list position (secret)", IsPublic: false},
		},
	},
	"preimage": {
		Circuit:     &preimage.Circuit{},
		Name:        "preimage",
		Version:     1,
		Description: "Proves knowledge of a MiMC preimage of a public hash",
		InputParser: &preimage.InputParser{},
		Fields: []Field{
			{Name: "hash", Type: "field", Description: "Public MiMC hash", IsPublic: true},
			{Name: "preimage", Type: "field", Description: "Hash preimage (secret)", IsPublic: false},
		},
	},
}
