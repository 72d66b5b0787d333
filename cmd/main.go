package main

import (
	"fmt"
	"os"
)

// listproof - CLI tool and API service for zero-knowledge list-membership
// proofs
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
