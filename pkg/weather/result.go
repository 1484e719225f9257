// pkg/weather/result.go
package weather

import (
	"encoding/json"
	"errors"
)

// Result adalah hasil satu request ke provider: Data(json) atau Unavailable.
type Result struct {
	body json.RawMessage
}

// Unavailable adalah sentinel "tidak ada data" untuk semua jenis kegagalan.
var Unavailable = Result{}

// Data membungkus body JSON yang sudah tervalidasi.
func Data(body json.RawMessage) Result {
	return Result{body: body}
}

func (r Result) Available() bool { return len(r.body) > 0 }

func (r Result) Body() json.RawMessage { return r.body }

// Decode mengisi v dari body. Unavailable selalu gagal.
func (r Result) Decode(v any) error {
	if !r.Available() {
		return ErrUnavailable
	}
	return json.Unmarshal(r.body, v)
}

// ErrUnavailable dikembalikan Decode untuk Result tanpa data.
var ErrUnavailable = errors.New("weather: no data")
