package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	mysqlrepo "weather-mcp/internal/repositories/mysql"
	"weather-mcp/internal/util"
	"weather-mcp/pkg/weather"
)

type fakeWeather struct {
	current  weather.Result
	forecast weather.Result
	gotLoc   string
}

func (f *fakeWeather) Current(_ context.Context, loc string) weather.Result {
	f.gotLoc = loc
	return f.current
}

func (f *fakeWeather) Forecast(_ context.Context, loc string) weather.Result {
	f.gotLoc = loc
	return f.forecast
}

type fakeRecorder struct {
	mu   sync.Mutex
	recs []mysqlrepo.CallRecord
	err  error
}

func (f *fakeRecorder) Insert(_ context.Context, c mysqlrepo.CallRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recs = append(f.recs, c)
	return f.err
}

func data(s string) weather.Result { return weather.Data(json.RawMessage(s)) }

func forecastJSON(n int) string {
	entries := make([]string, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, fmt.Sprintf(
			`{"dt_txt":"2024-05-01 %02d:00:00","main":{"temp":%d.5},"weather":[{"main":"Clouds","description":"cloud %d"}],"wind":{"speed":%d.1}}`,
			i*3, 10+i, i, i+1))
	}
	return `{"cod":"200","list":[` + strings.Join(entries, ",") + `]}`
}

func TestGetAlertsUnavailable(t *testing.T) {
	tools := &WeatherTools{Weather: &fakeWeather{current: weather.Unavailable}}
	if got := tools.GetAlerts(context.Background(), "Nowhere,xx"); got != "Unable to fetch weather data for this location." {
		t.Fatalf("got %q", got)
	}
}

func TestGetForecastUnavailable(t *testing.T) {
	tools := &WeatherTools{Weather: &fakeWeather{forecast: weather.Unavailable}}
	if got := tools.GetForecast(context.Background(), "Nowhere,xx"); got != "Unable to fetch forecast data for this location." {
		t.Fatalf("got %q", got)
	}
}

func TestGetAlertsSingleThunderstorm(t *testing.T) {
	fw := &fakeWeather{current: data(`{"weather":[{"id":211,"main":"Thunderstorm","description":"thunderstorm with heavy rain"}]}`)}
	tools := &WeatherTools{Weather: fw}

	got := tools.GetAlerts(context.Background(), "London,uk")
	want := "\nSevere Weather Alert: Thunderstorm\nDescription: thunderstorm with heavy rain\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if strings.Contains(got, "---") {
		t.Fatalf("single alert must not contain separator")
	}
	if fw.gotLoc != "London,uk" {
		t.Fatalf("location passed = %q", fw.gotLoc)
	}
}

func TestGetAlertsClearOnly(t *testing.T) {
	tools := &WeatherTools{Weather: &fakeWeather{current: data(`{"weather":[{"main":"Clear","description":"clear sky"}]}`)}}
	if got := tools.GetAlerts(context.Background(), "Cairo,eg"); got != "No active weather alerts for this location." {
		t.Fatalf("got %q", got)
	}
}

func TestGetAlertsNoWeatherList(t *testing.T) {
	tools := &WeatherTools{Weather: &fakeWeather{current: data(`{"name":"London","main":{"temp":10}}`)}}
	if got := tools.GetAlerts(context.Background(), "London,uk"); got != "No weather alerts for this location." {
		t.Fatalf("got %q", got)
	}
}

func TestGetAlertsMultipleJoined(t *testing.T) {
	tools := &WeatherTools{Weather: &fakeWeather{current: data(`{"weather":[
		{"main":"Tornado","description":"tornado"},
		{"main":"Rain","description":"light rain"},
		{"main":"Hurricane"}
	]}`)}}

	got := tools.GetAlerts(context.Background(), "Miami,us")
	want := "\nSevere Weather Alert: Tornado\nDescription: tornado\n" +
		"\n---\n" +
		"\nSevere Weather Alert: Hurricane\nDescription: No description available\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestGetForecastFirstFiveOfEight(t *testing.T) {
	tools := &WeatherTools{Weather: &fakeWeather{forecast: data(forecastJSON(8))}}

	got := tools.GetForecast(context.Background(), "London,uk")
	blocks := strings.Split(got, "\n---\n")
	if len(blocks) != 5 {
		t.Fatalf("blocks = %d, want 5; out=%q", len(blocks), got)
	}
	if n := strings.Count(got, "\n---\n"); n != 4 {
		t.Fatalf("separators = %d, want 4", n)
	}
	wantFirst := "\n2024-05-01 00:00:00:\nTemperature: 10.5°C\nConditions: cloud 0\nWind Speed: 1.1 m/s\n"
	if blocks[0] != wantFirst {
		t.Fatalf("first block = %q, want %q", blocks[0], wantFirst)
	}
	if strings.Contains(got, "2024-05-01 15:00:00") {
		t.Fatalf("sixth entry must not be formatted")
	}
	for i, b := range blocks {
		for _, part := range []string{"Temperature:", "Conditions:", "Wind Speed:", "2024-05-01"} {
			if !strings.Contains(b, part) {
				t.Fatalf("block %d missing %q: %q", i, part, b)
			}
		}
	}
}

func TestGetForecastFewerThanFive(t *testing.T) {
	tools := &WeatherTools{Weather: &fakeWeather{forecast: data(forecastJSON(2))}}

	got := tools.GetForecast(context.Background(), "Oslo,no")
	if n := strings.Count(got, "\n---\n"); n != 1 {
		t.Fatalf("separators = %d, want 1", n)
	}
	if !strings.Contains(got, "cloud 1") {
		t.Fatalf("second entry missing: %q", got)
	}
}

func TestGetForecastMissingList(t *testing.T) {
	for _, body := range []string{`{"cod":"200"}`, `{"list":[]}`} {
		tools := &WeatherTools{Weather: &fakeWeather{forecast: data(body)}}
		if got := tools.GetForecast(context.Background(), "x"); got != "Unable to fetch forecast data for this location." {
			t.Fatalf("body %s: got %q", body, got)
		}
	}
}

func TestFormattingIsDeterministic(t *testing.T) {
	res := data(forecastJSON(6))
	a, _ := FormatForecast(res)
	b, _ := FormatForecast(res)
	if a != b {
		t.Fatalf("non-deterministic output")
	}

	cur := data(`{"weather":[{"main":"Thunderstorm","description":"x"},{"main":"Tornado","description":"y"}]}`)
	c, _ := FormatAlerts(cur)
	d, _ := FormatAlerts(cur)
	if c != d {
		t.Fatalf("non-deterministic alerts")
	}
}

func TestOutputsNeverEmpty(t *testing.T) {
	bodies := []weather.Result{
		weather.Unavailable,
		data(`{}`),
		data(`{"weather":null}`),
		data(`{"weather":"oops"}`),
		data(`{"list":"oops"}`),
		data(`{"list":[{}]}`),
	}
	for _, r := range bodies {
		if s, _ := FormatAlerts(r); s == "" {
			t.Fatalf("empty alerts output for %s", r.Body())
		}
		if s, _ := FormatForecast(r); s == "" {
			t.Fatalf("empty forecast output for %s", r.Body())
		}
	}
}

func TestToolRequiresLocation(t *testing.T) {
	tools := &WeatherTools{Weather: &fakeWeather{current: weather.Unavailable}}
	fn := tools.Tool(ToolGetAlerts)

	for _, raw := range []string{``, `{}`, `{"location": 12}`, `not json`} {
		_, err := fn(context.Background(), json.RawMessage(raw))
		var ae util.AppError
		if !errors.As(err, &ae) || ae.Code != "bad_input" {
			t.Fatalf("args %q: expected bad_input, got %v", raw, err)
		}
	}

	out, err := fn(context.Background(), json.RawMessage(`{"location":"London,uk"}`))
	if err != nil || out != MsgAlertsUnavailable {
		t.Fatalf("out=%q err=%v", out, err)
	}
}

func TestCallsAreRecorded(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("db down")}
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tools := &WeatherTools{
		Weather: &fakeWeather{forecast: data(forecastJSON(1))},
		Calls:   rec,
		Clock:   util.FixedClock{T: now},
	}

	out := tools.GetForecast(context.Background(), "Rome,it")
	if !strings.Contains(out, "Temperature:") {
		t.Fatalf("audit failure must not change output: %q", out)
	}
	if len(rec.recs) != 1 {
		t.Fatalf("records = %d", len(rec.recs))
	}
	r := rec.recs[0]
	if r.Tool != ToolGetForecast || r.Location != "Rome,it" || r.Outcome != "ok" || !r.CreatedAt.Equal(now) || r.ID == "" {
		t.Fatalf("unexpected record %+v", r)
	}
}

func TestHTTPHandler(t *testing.T) {
	tools := &WeatherTools{Weather: &fakeWeather{current: data(`{"weather":[{"main":"Clear"}]}`)}}
	h := tools.HTTPHandler(ToolGetAlerts)

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/mcp/get_alerts?location=Cairo,eg", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var body toolHTTPResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Text != MsgNoActiveAlerts || body.Location != "Cairo,eg" {
		t.Fatalf("unexpected body %+v", body)
	}

	rec = httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/mcp/get_alerts", strings.NewReader(`{}`)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", rec.Code)
	}
}

// location kosong tetap diteruskan ke provider, sama seperti jalur stdio.
func TestHTTPHandlerPassesEmptyLocation(t *testing.T) {
	fw := &fakeWeather{forecast: weather.Unavailable, gotLoc: "unset"}
	h := (&WeatherTools{Weather: fw}).HTTPHandler(ToolGetForecast)

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/mcp/get_forecast?location=", nil),
		httptest.NewRequest(http.MethodPost, "/mcp/get_forecast", strings.NewReader(`{"location":""}`)),
	} {
		fw.gotLoc = "unset"
		rec := httptest.NewRecorder()
		h(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status %d, want 200", req.Method, rec.Code)
		}
		if fw.gotLoc != "" {
			t.Fatalf("%s: provider got %q, want empty location", req.Method, fw.gotLoc)
		}
		var body toolHTTPResponse
		_ = json.Unmarshal(rec.Body.Bytes(), &body)
		if body.Text != MsgForecastUnavailable {
			t.Fatalf("%s: unexpected text %q", req.Method, body.Text)
		}
	}
}

func TestReposStatus(t *testing.T) {
	st := (&WeatherTools{Weather: &fakeWeather{}}).ReposStatus()
	if !st["weather"] || st["call_log"] {
		t.Fatalf("unexpected status %v", st)
	}
}
