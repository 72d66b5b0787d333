package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
)

// Save compiled circuit and keys
func SetupAndSave(circuitTemplate frontend.Circuit, ccsPath, pkPath, vkPath string) error {
	fmt.Println("\n--- Compiling Circuit ---")
	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, circuitTemplate)
	if err != nil {
		return err
	}
	fmt.Printf("[OK] Circuit compiled: %d constraints\n", ccs.GetNbConstraints())

	// Save compiled circuit
	ccsFile, err := os.Create(ccsPath)
	if err != nil {
		return err
	}
	defer ccsFile.Close()
	if _, err := ccs.WriteTo(ccsFile); err != nil {
		return err
	}

	fmt.Println("\n--- Running Setup ---")
	pk, vk, err := groth16.Setup(ccs)
	if err != nil {
		return err
	}

	// Save proving key
	pkFile, err := os.Create(pkPath)
	if err != nil {
		return err
	}
	defer pkFile.Close()
	if _, err := pk.WriteTo(pkFile); err != nil {
		return err
	}

	// Save verification key
	vkFile, err := os.Create(vkPath)
	if err != nil {
		return err
	}
	defer vkFile.Close()
	if _, err := vk.WriteTo(vkFile); err != nil {
		return err
	}

	fmt.Println("[OK] Setup completed and saved!")
	return nil
}

// Load pre-compiled circuit and keys
func LoadSetup(ccsPath, pkPath, vkPath string) (constraint.ConstraintSystem, groth16.ProvingKey, groth16.VerifyingKey, error) {
	// Load constraint system
	ccsFile, err := os.Open(ccsPath)
	if err != nil {
		return nil, nil, nil, err
	}
	defer ccsFile.Close()

	ccs := groth16.NewCS(ecc.BN254)
	if _, err := ccs.ReadFrom(ccsFile); err != nil {
		return nil, nil, nil, err
	}

	// Load proving key
	pkFile, err := os.Open(pkPath)
	if err != nil {
		return nil, nil, nil, err
	}
	defer pkFile.Close()

	pk := groth16.NewProvingKey(ecc.BN254)
	if _, err := pk.ReadFrom(pkFile); err != nil {
		return nil, nil, nil, err
	}

	// Load verification key
	vkFile, err := os.Open(vkPath)
	if err != nil {
		return nil, nil, nil, err
	}
	defer vkFile.Close()

	vk := groth16.NewVerifyingKey(ecc.BN254)
	if _, err := vk.ReadFrom(vkFile); err != nil {
		return nil, nil, nil, err
	}

	fmt.Println("[OK] Loaded pre-compiled setup")
	return ccs, pk, vk, nil
}

// InitCircuit loads the compiled circuit and keys from disk, compiling and
// running the setup first when the files are missing or forceCompile is set.
func InitCircuit(ccsPath, pkPath, vkPath string, forceCompile bool, circuitTemplate frontend.Circuit) (constraint.ConstraintSystem, groth16.ProvingKey, groth16.VerifyingKey, error) {
	// Validate paths to prevent directory traversal attacks
	if err := validatePath(ccsPath); err != nil {
		return nil, nil, nil, fmt.Errorf("invalid ccsPath: %w", err)
	}
	if err := validatePath(pkPath); err != nil {
		return nil, nil, nil, fmt.Errorf("invalid pkPath: %w", err)
	}
	if err := validatePath(vkPath); err != nil {
		return nil, nil, nil, fmt.Errorf("invalid vkPath: %w", err)
	}

	// Create all necessary subdirectories
	if err := ensureDirectories(ccsPath, pkPath, vkPath); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create directories: %w", err)
	}

	if forceCompile {
		// Safe removal with path validation
		if err := safeRemove(ccsPath); err != nil {
			return nil, nil, nil, fmt.Errorf("failed to remove ccsPath: %w", err)
		}
		if err := safeRemove(pkPath); err != nil {
			return nil, nil, nil, fmt.Errorf("failed to remove pkPath: %w", err)
		}
		if err := safeRemove(vkPath); err != nil {
			return nil, nil, nil, fmt.Errorf("failed to remove vkPath: %w", err)
		}
	}

	// Check if all files exist
	allFilesExist := fileExists(ccsPath) && fileExists(pkPath) && fileExists(vkPath)

	if !allFilesExist || forceCompile {
		fmt.Println("compiling the circuit")
		if err := SetupAndSave(circuitTemplate, ccsPath, pkPath, vkPath); err != nil {
			return nil, nil, nil, fmt.Errorf("setup and save failed: %w", err)
		}
	}

	return LoadSetup(ccsPath, pkPath, vkPath)
}

// validatePath rejects absolute paths and paths escaping the working directory
func validatePath(path string) error {
	if path == "" {
		return fmt.Errorf("empty path")
	}
	clean := filepath.Clean(path)
	if strings.HasPrefix(clean, "..") {
		return fmt.Errorf("path escapes working directory: %s", path)
	}
	return nil
}

func ensureDirectories(paths ...string) error {
	for _, p := range paths {
		dir := filepath.Dir(p)
		if dir == "." {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}

func safeRemove(path string) error {
	if err := validatePath(path); err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
