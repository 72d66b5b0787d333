package api

import (
	"fmt"
	"path/filepath"

	"github.com/consensys/gnark/frontend"

	"github.com/veridex/listproof/common"
)

// CircuitInfo describes a circuit the server can compile and serve
type CircuitInfo struct {
	Circuit     frontend.Circuit
	Dir         string
	Name        string
	Version     uint
	Description string
	InputParser InputParser
	Fields      []Field // All input fields with metadata
}

// Compile compiles a circuit and stores the setup artifacts locally
func (ci CircuitInfo) Compile() error {
	csPath := filepath.Join(ci.Dir, fmt.Sprintf("%s-%d.ccs", ci.Name, ci.Version))
	pkPath := filepath.Join(ci.Dir, fmt.Sprintf("%s-%d.pk", ci.Name, ci.Version))
	vkPath := filepath.Join(ci.Dir, fmt.Sprintf("%s-%d.vk", ci.Name, ci.Version))

	return common.SetupAndSave(ci.Circuit, csPath, pkPath, vkPath)
}

// CompileAll compiles all the circuits and stores them locally
func CompileAll(dir string) error {
	for _, v := range CircuitList {
		v.Dir = dir
		if err := v.Compile(); err != nil {
			return err
		}
	}
	return nil
}
