// pkg/weather/models.go
// Bentuk respons OpenWeather yang dipakai tool (field opsional = pointer)

package weather

import "encoding/json"

// Nilai default bila field tidak ada di respons provider.
const (
	DefaultUnknown     = "Unknown"
	DefaultDescription = "No description available"
)

// Condition = satu elemen weather[] (main + description).
type Condition struct {
	Main        *string `json:"main"`
	Description *string `json:"description"`
}

func (c Condition) MainOr(def string) string {
	if c.Main == nil {
		return def
	}
	return *c.Main
}

func (c Condition) DescriptionOr(def string) string {
	if c.Description == nil {
		return def
	}
	return *c.Description
}

// Current = respons /weather. Weather nil berarti list tidak ada sama sekali.
type Current struct {
	Name    string       `json:"name,omitempty"`
	Weather *[]Condition `json:"weather"`
}

// ForecastEntry = satu titik data interval 3 jam di list[].
type ForecastEntry struct {
	DtTxt *string `json:"dt_txt"`
	Main  *struct {
		Temp *json.Number `json:"temp"`
	} `json:"main"`
	Weather []Condition `json:"weather"`
	Wind    *struct {
		Speed *json.Number `json:"speed"`
	} `json:"wind"`
}

// Forecast = respons /forecast. List nil berarti list tidak ada.
type Forecast struct {
	List *[]ForecastEntry `json:"list"`
}

func (e ForecastEntry) TimestampOr(def string) string {
	if e.DtTxt == nil {
		return def
	}
	return *e.DtTxt
}

// TempOr mengembalikan suhu persis seperti literal angka di JSON.
func (e ForecastEntry) TempOr(def string) string {
	if e.Main == nil || e.Main.Temp == nil {
		return def
	}
	return e.Main.Temp.String()
}

func (e ForecastEntry) DescriptionOr(def string) string {
	if len(e.Weather) == 0 {
		return def
	}
	return e.Weather[0].DescriptionOr(def)
}

func (e ForecastEntry) WindSpeedOr(def string) string {
	if e.Wind == nil || e.Wind.Speed == nil {
		return def
	}
	return e.Wind.Speed.String()
}

// HasData true bila Result berisi objek JSON yang tidak kosong.
func HasData(r Result) bool {
	var m map[string]json.RawMessage
	if err := r.Decode(&m); err != nil {
		return false
	}
	return len(m) > 0
}

// DecodeCurrent mengurai Result /weather; ok=false bila tidak ada data yang bisa dipakai.
func DecodeCurrent(r Result) (Current, bool) {
	var c Current
	if !HasData(r) {
		return c, false
	}
	if err := r.Decode(&c); err != nil {
		return c, false
	}
	return c, true
}

// DecodeForecast mengurai Result /forecast; ok=false bila tidak ada data yang bisa dipakai.
func DecodeForecast(r Result) (Forecast, bool) {
	var f Forecast
	if !HasData(r) {
		return f, false
	}
	if err := r.Decode(&f); err != nil {
		return f, false
	}
	return f, true
}
