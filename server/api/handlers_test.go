package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/veridex/listproof/circuits/membership"
)

func TestProveErrorStatus(t *testing.T) {
	status, code := proveErrorStatus(fmt.Errorf("wrap: %w", membership.ErrShapeMismatch))
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "shape_mismatch", code)

	status, code = proveErrorStatus(fmt.Errorf("wrap: %w", membership.ErrFieldRange))
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "field_range", code)

	status, code = proveErrorStatus(membership.ErrUnsatisfiableWitness)
	require.Equal(t, http.StatusUnprocessableEntity, status)
	require.Equal(t, "unsatisfiable_witness", code)

	status, code = proveErrorStatus(fmt.Errorf("backend exploded"))
	require.Equal(t, http.StatusInternalServerError, status)
	require.Equal(t, "proof_generation_failed", code)
}

func TestCircuitListParsers(t *testing.T) {
	for name, info := range CircuitList {
		require.NotNil(t, info.InputParser, "circuit %s has no input parser", name)
		require.NotNil(t, info.Circuit, "circuit %s has no template", name)
		require.NotEmpty(t, info.Fields, "circuit %s has no field metadata", name)
	}
}
