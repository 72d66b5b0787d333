package listproof

import (
	"fmt"
	"math/big"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/veridex/listproof/circuits/membership"
	"github.com/veridex/listproof/common"
	"github.com/veridex/listproof/models"
)

type proveConfig struct {
	setupDir string
	size     int
	secret   string
	index    int
	demo     bool
}

// NewProveCmd returns a command that runs a full local membership proof:
// witness synthesis, Groth16 proving and verification, without the server.
func NewProveCmd() *cobra.Command {
	cfg := &proveConfig{}

	cmd := &cobra.Command{
		Use:   "prove",
		Short: "Generate and verify a membership proof locally",
		Long:  `Synthesize a witness for the membership circuit, generate a Groth16 proof and verify it. With --demo a random list is built with the secret's hash planted at the claimed index.`,
		Example: `  # Prove membership of a demo secret at position 3 in a random 10-element list
  listproof prove --demo --secret 42 --index 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProve(cfg)
		},
	}

	cmd.Flags().StringVarP(&cfg.setupDir, "setup-dir", "d", "./setup", "Directory for compiled circuit artifacts")
	cmd.Flags().IntVarP(&cfg.size, "size", "n", 10, "List size")
	cmd.Flags().StringVarP(&cfg.secret, "secret", "s", "", "Secret field element (decimal or 0x hex)")
	cmd.Flags().IntVarP(&cfg.index, "index", "i", 0, "Claimed list position")
	cmd.Flags().BoolVar(&cfg.demo, "demo", false, "Build a demo list with the secret planted at the claimed index")

	return cmd
}

func runProve(cfg *proveConfig) error {
	if !cfg.demo {
		return fmt.Errorf("only --demo mode is supported; supply inputs through the API server otherwise")
	}
	if cfg.secret == "" {
		return fmt.Errorf("--secret is required")
	}

	secret, err := common.ParseFieldElement(cfg.secret)
	if err != nil {
		return fmt.Errorf("secret: %w", err)
	}

	list, err := models.DemoList(cfg.size, cfg.index, secret)
	if err != nil {
		return fmt.Errorf("failed to build demo list: %w", err)
	}

	gadget, err := membership.New(cfg.size)
	if err != nil {
		return err
	}

	// synthesize before touching the backend so bad inputs fail fast
	w, err := gadget.Synthesize(secret, big.NewInt(int64(cfg.index)), list)
	if err != nil {
		return fmt.Errorf("witness synthesis failed: %w", err)
	}

	name := fmt.Sprintf("membership-%d", cfg.size)
	ccsPath := filepath.Join(cfg.setupDir, name+"-1.ccs")
	pkPath := filepath.Join(cfg.setupDir, name+"-1.pk")
	vkPath := filepath.Join(cfg.setupDir, name+"-1.vk")

	ccs, pk, vk, err := common.InitCircuit(ccsPath, pkPath, vkPath, false, membership.NewCircuit(cfg.size))
	if err != nil {
		return fmt.Errorf("failed to initialize the circuit: %w", err)
	}

	return common.ProveAndVerify(w.Assignment(), ccs, pk, vk)
}
