// internal/handlers/mcp/ready_flags.go
package mcp

// ReposStatus mengembalikan status siap/tidaknya setiap dependensi tool.
func (t *WeatherTools) ReposStatus() map[string]bool {
	return map[string]bool{
		"weather":  t != nil && t.Weather != nil,
		"call_log": t != nil && t.Calls != nil,
	}
}
