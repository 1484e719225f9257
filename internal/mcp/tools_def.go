// internal/mcp/tools_def.go
package mcp

import (
	_ "embed"
	"encoding/json"
	"sync"
)

//go:embed mcp-tools.json
var toolsJSON []byte

type ToolDef struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"input_schema"`
}
type ToolCatalog struct {
	Tools []ToolDef `json:"tools"`
}

var (
	toolDefs     []ToolDef
	toolDefsOnce sync.Once
	toolDefsErr  error
)

func LoadToolDefs() ([]ToolDef, error) {
	toolDefsOnce.Do(func() {
		var cat ToolCatalog
		if err := json.Unmarshal(toolsJSON, &cat); err != nil {
			toolDefsErr = err
			return
		}
		toolDefs = cat.Tools
	})
	return toolDefs, toolDefsErr
}

// SchemaMap mengembalikan input schema sebagai map (bentuk yang diterima go-sdk).
func (d ToolDef) SchemaMap() (map[string]any, error) {
	m := map[string]any{}
	if len(d.InputSchema) == 0 {
		m["type"] = "object"
		return m, nil
	}
	if err := json.Unmarshal(d.InputSchema, &m); err != nil {
		return nil, err
	}
	return m, nil
}
