package main

import (
	"github.com/spf13/cobra"

	"github.com/veridex/listproof/cmd/listproof"
)

// Init the cmd
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "listproof",
		Short: "Zero-Knowledge list-membership proofs",
		Long:  `Tools and an API service for proving that the hash of a secret value appears in a public list, without revealing the secret or its position`,
	}

	rootCmd.AddCommand(
		listproof.NewServeCmd(),
		listproof.NewCompileCmd(),
		listproof.NewProveCmd(),
		NewVersionCmd(),
	)

	return rootCmd
}
