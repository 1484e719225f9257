// pkg/weather/client.go
// Client HTTP untuk OpenWeather API (current weather & forecast 5 hari / 3 jam)

package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://api.openweathermap.org/data/2.5"
	DefaultTimeout = 30 * time.Second

	// Endpoint yang didukung provider.
	EndpointCurrent  = "/weather"
	EndpointForecast = "/forecast"

	unitsMetric = "metric"
	maxBodySize = 4 << 20
)

// Config adalah nilai konfigurasi eksplisit untuk Client (diisi saat startup).
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Client aman dipakai bersamaan; satu *http.Client (connection pool) dipakai ulang.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewClient(cfg Config) *Client {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: base,
		http:    &http.Client{Timeout: timeout},
	}
}

// Get melakukan GET {base}{endpoint} dengan params + appid + units=metric.
// Semua jenis kegagalan (jaringan, status non-2xx, body rusak, timeout)
// dikembalikan sebagai Unavailable, tidak pernah sebagai error.
func (c *Client) Get(ctx context.Context, endpoint string, params url.Values) Result {
	q := url.Values{}
	for k, vs := range params {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	q.Set("appid", c.apiKey)
	q.Set("units", unitsMetric)

	u := c.baseURL + endpoint + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		log.Printf("[WARN] weather: build request %s: %v", endpoint, err)
		return Unavailable
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[WARN] weather: GET %s: %v", endpoint, redact(err, c.apiKey))
		return Unavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		log.Printf("[WARN] weather: GET %s: status %d", endpoint, resp.StatusCode)
		return Unavailable
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		log.Printf("[WARN] weather: read body %s: %v", endpoint, err)
		return Unavailable
	}
	if !json.Valid(raw) {
		log.Printf("[WARN] weather: GET %s: malformed json body", endpoint)
		return Unavailable
	}
	return Data(raw)
}

// Current mengambil cuaca saat ini untuk lokasi "Kota,KodeNegara".
func (c *Client) Current(ctx context.Context, location string) Result {
	return c.Get(ctx, EndpointCurrent, url.Values{"q": {location}})
}

// Forecast mengambil prakiraan 5 hari / 3 jam untuk lokasi.
func (c *Client) Forecast(ctx context.Context, location string) Result {
	return c.Get(ctx, EndpointForecast, url.Values{"q": {location}})
}

// redact membuang api key dari pesan error (url.Error menyertakan URL lengkap).
func redact(err error, key string) string {
	msg := err.Error()
	if key == "" {
		return msg
	}
	return strings.ReplaceAll(msg, key, "***")
}

func (c *Client) String() string {
	return fmt.Sprintf("weather.Client(%s)", c.baseURL)
}
