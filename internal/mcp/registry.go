// mcp/registry.go
// Registri mapping nama tool ke handler function

package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"weather-mcp/internal/util"
)

// ToolFunc menerima argumen JSON mentah dan mengembalikan teks hasil.
// Error hanya untuk argumen yang tidak valid; kegagalan provider sudah
// dikonversi jadi teks fallback oleh handler.
type ToolFunc func(ctx context.Context, args json.RawMessage) (string, error)

// Registry menyimpan peta nama tool -> ToolFunc secara thread-safe.
type Registry struct {
	mu    sync.RWMutex
	data  map[string]ToolFunc
	calls map[string]*atomic.Int64
}

func NewRegistry() *Registry {
	return &Registry{
		data:  make(map[string]ToolFunc),
		calls: make(map[string]*atomic.Int64),
	}
}

// Register mendaftarkan handler untuk sebuah tool.
// Jika nama sudah ada, handler lama akan ditimpa.
func (r *Registry) Register(name string, fn ToolFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[name] = fn
	if _, ok := r.calls[name]; !ok {
		r.calls[name] = new(atomic.Int64)
	}
}

// Get mengambil handler berdasarkan nama tool.
func (r *Registry) Get(name string) (ToolFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.data[name]
	return fn, ok
}

// MustGet seperti Get namun panic jika tidak ditemukan (fail-fast saat startup).
func (r *Registry) MustGet(name string) ToolFunc {
	if fn, ok := r.Get(name); ok {
		return fn
	}
	panic(fmt.Sprintf("mcp: tool not found: %s", name))
}

// List mengembalikan nama semua tool terdaftar, terurut.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.data))
	for k := range r.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Invoke mengeksekusi tool 'name'. Tool tidak dikenal -> util.NotFound.
func (r *Registry) Invoke(ctx context.Context, name string, args json.RawMessage) (string, error) {
	r.mu.RLock()
	fn, ok := r.data[name]
	counter := r.calls[name]
	r.mu.RUnlock()
	if !ok {
		return "", util.NotFound("tool not found: " + name)
	}
	counter.Add(1)
	return fn(ctx, args)
}

// Stats mengembalikan jumlah pemanggilan per tool sejak start.
func (r *Registry) Stats() map[string]int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]int64, len(r.calls))
	for k, c := range r.calls {
		out[k] = c.Load()
	}
	return out
}
