package market

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"toadtoe-api/config"

	"github.com/go-resty/resty/v2"
)

const (
	host = "alpha-vantage.p.rapidapi.com"

	// Matches the reader widget's refresh interval; no point hitting the
	// upstream more often than clients poll.
	cacheTTL = 5 * time.Minute
)

var client = resty.New().SetTimeout(15 * time.Second)

type cacheEntry struct {
	body    json.RawMessage
	fetched time.Time
}

var (
	mu    sync.Mutex
	cache = map[string]cacheEntry{}
)

// IntradayQuote fetches the 5-minute intraday series for a symbol and returns
// the upstream JSON unchanged. Responses are cached per symbol for the TTL.
func IntradayQuote(symbol string) (json.RawMessage, error) {
	if config.RAPIDAPI_KEY == "" {
		return nil, fmt.Errorf("RAPIDAPI_KEY is not configured")
	}

	mu.Lock()
	if e, ok := cache[symbol]; ok && time.Since(e.fetched) < cacheTTL {
		mu.Unlock()
		return e.body, nil
	}
	mu.Unlock()

	resp, err := client.R().
		SetHeader("x-rapidapi-host", host).
		SetHeader("x-rapidapi-key", config.RAPIDAPI_KEY).
		SetQueryParams(map[string]string{
			"datatype":    "json",
			"output_size": "compact",
			"interval":    "5min",
			"function":    "TIME_SERIES_INTRADAY",
			"symbol":      symbol,
		}).
		Get("https://" + host + "/query")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode())
	}

	body := json.RawMessage(resp.Body())

	mu.Lock()
	cache[symbol] = cacheEntry{body: body, fetched: time.Now()}
	mu.Unlock()

	return body, nil
}
