// internal/mcp/stdio.go
// Host MCP via stdin/stdout: setiap entri katalog di-bind ke registry.

package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer membangun server go-sdk berisi semua tool di mcp-tools.json.
// Tool di katalog yang belum terdaftar di registry = error (fail-fast).
func NewServer(reg *Registry, name, version string) (*mcpsdk.Server, error) {
	defs, err := LoadToolDefs()
	if err != nil {
		return nil, fmt.Errorf("load tool defs: %w", err)
	}

	s := mcpsdk.NewServer(&mcpsdk.Implementation{Name: name, Version: version}, nil)
	for _, d := range defs {
		if _, ok := reg.Get(d.Name); !ok {
			return nil, fmt.Errorf("mcp: tool %q in catalog but not registered", d.Name)
		}
		schema, err := d.SchemaMap()
		if err != nil {
			return nil, fmt.Errorf("schema %s: %w", d.Name, err)
		}
		s.AddTool(&mcpsdk.Tool{
			Name:        d.Name,
			Description: d.Description,
			InputSchema: schema,
		}, toolHandler(reg, d.Name))
	}
	return s, nil
}

func toolHandler(reg *Registry, name string) mcpsdk.ToolHandler {
	return func(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
		var args []byte
		if req != nil && req.Params != nil {
			args = req.Params.Arguments
		}
		text, err := reg.Invoke(ctx, name, args)
		if err != nil {
			// argumen salah dilaporkan sebagai hasil tool (IsError), bukan fault protokol
			return &mcpsdk.CallToolResult{
				IsError: true,
				Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: err.Error()}},
			}, nil
		}
		return &mcpsdk.CallToolResult{
			Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: text}},
		}, nil
	}
}

// ServeStdio menjalankan server di atas stdin/stdout sampai ctx selesai
// atau klien menutup channel.
func ServeStdio(ctx context.Context, s *mcpsdk.Server) error {
	return s.Run(ctx, &mcpsdk.StdioTransport{})
}
