// mcp/protocol.go
// Definisi struktur dasar MCP protocol (permukaan HTTP)

package mcp

import "encoding/json"

type ToolRequest struct {
	Tool   string          `json:"tool"`
	Params json.RawMessage `json:"params"`
}

type ToolResponse struct {
	Success bool        `json:"success"`
	Tool    string      `json:"tool,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Route = satu pemanggilan tool di dalam batch {"routes": [...]}.
type Route struct {
	Tool   string          `json:"tool"`
	Params json.RawMessage `json:"params,omitempty"`
}

// Plan membungkus beberapa Route (kompatibel dengan payload {"plan": {...}}).
type Plan struct {
	Mode   string  `json:"mode,omitempty"`
	Reason string  `json:"reason,omitempty"`
	Routes []Route `json:"routes"`
}
