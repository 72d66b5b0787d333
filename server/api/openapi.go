package api

import (
	"net/http"
	"sort"
)

// Field represents a single input field of a circuit
type Field struct {
	Name        string `json:"name"`
	Type        string `json:"type"` // "field" or "field[]"
	Size        int    `json:"size,omitempty"`
	Description string `json:"description"`
	IsPublic    bool   `json:"is_public"`
}

// GetPublicFields returns the circuit's public input fields
func (c CircuitInfo) GetPublicFields() []Field {
	var fields []Field
	for _, f := range c.Fields {
		if f.IsPublic {
			fields = append(fields, f)
		}
	}
	return fields
}

// GetPrivateFields returns the circuit's private input fields
func (c CircuitInfo) GetPrivateFields() []Field {
	var fields []Field
	for _, f := range c.Fields {
		if !f.IsPublic {
			fields = append(fields, f)
		}
	}
	return fields
}

// HandleOpenAPI serves a minimal OpenAPI document generated from the circuit
// list.
func (s *Server) HandleOpenAPI(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, generateOpenAPISpec())
}

func generateOpenAPISpec() map[string]interface{} {
	paths := map[string]interface{}{
		"/health":             pathItem("get", "Health check"),
		"/circuits":           pathItem("get", "List available circuits"),
		"/circuits/{circuit}": pathItem("get", "Get circuit information"),
		"/prove/{circuit}":    pathItem("post", "Generate a proof"),
		"/verify/{circuit}":   pathItem("post", "Verify a proof"),
	}

	circuits := make(map[string]interface{}, len(CircuitList))
	for _, name := range circuitNames() {
		info := CircuitList[name]
		circuits[name] = map[string]interface{}{
			"description":    info.Description,
			"version":        info.Version,
			"public_fields":  info.GetPublicFields(),
			"private_fields": info.GetPrivateFields(),
		}
	}

	return map[string]interface{}{
		"openapi": "3.0.3",
		"info": map[string]interface{}{
			"title":   "listproof API",
			"version": "1.0.0",
		},
		"paths": paths,
		"components": map[string]interface{}{
			"x-circuits": circuits,
		},
	}
}

func pathItem(method, summary string) map[string]interface{} {
	return map[string]interface{}{
		method: map[string]interface{}{
			"summary": summary,
			"responses": map[string]interface{}{
				"200": map[string]interface{}{"description": "OK"},
			},
		},
	}
}

func circuitNames() []string {
	names := make([]string, 0, len(CircuitList))
	for name := range CircuitList {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
