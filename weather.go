package main

import (
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
)

const weatherURL = "https://weather.tsukumijima.net/api/forecast/city/%s"

var weatherJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// telopTable translates the feed's condition key into the short form shown
// on the bar. Unknown keys fall through untranslated.
var telopTable = map[string]string{
	"晴れ":    "fine",
	"曇り":    "cloudy",
	"雨":     "rain",
	"雪":     "snow",
	"晴時々曇":  "fine/cloudy",
	"晴のち曇":  "fine>cloudy",
	"曇時々晴":  "cloudy/fine",
	"曇のち晴":  "cloudy>fine",
	"曇時々雨":  "cloudy/rain",
	"曇のち雨":  "cloudy>rain",
	"雨時々曇":  "rain/cloudy",
	"雨のち曇":  "rain>cloudy",
	"晴時々雨":  "fine/rain",
	"雨時々雪":  "rain/snow",
	"雪時々雨":  "snow/rain",
	"雪のち晴":  "snow>fine",
	"暴風雨":   "storm",
	"暴風雪":   "snowstorm",
}

type forecastDoc struct {
	Forecasts []struct {
		Date  string `json:"date"`
		Telop string `json:"telop"`
	} `json:"forecasts"`
}

// weatherCache serves the last translated condition until the TTL elapses,
// then refreshes synchronously on the next request. The clock and fetcher
// are fields so tests can count fetches against a fake clock.
type weatherCache struct {
	city  string
	ttl   time.Duration
	now   func() time.Time
	fetch func(city string) (string, error)

	fetched   bool
	fetchedAt time.Time
	desc      string
}

func newWeatherCache(city string, ttl time.Duration) *weatherCache {
	return &weatherCache{
		city:  city,
		ttl:   ttl,
		now:   time.Now,
		fetch: fetchForecast,
	}
}

// Current returns the condition for the bar. The very first fetch has no
// cached value to fall back to, so its error propagates (and is fatal to the
// caller); afterwards a failed refresh keeps the stale value. The stamp only
// advances on a successful fetch, so the next request retries right away.
func (w *weatherCache) Current() (string, error) {
	if w.fetched && w.now().Sub(w.fetchedAt) < w.ttl {
		return w.desc, nil
	}
	key, err := w.fetch(w.city)
	if err != nil {
		if !w.fetched {
			return "", err
		}
		return w.desc, nil
	}
	if t, ok := telopTable[key]; ok {
		w.desc = t
	} else {
		w.desc = key
	}
	w.fetched = true
	w.fetchedAt = w.now()
	return w.desc, nil
}

var weatherClient = &http.Client{Timeout: 15 * time.Second}

// fetchForecast pulls the forecast document for the fixed city code and
// returns the first entry's condition key.
func fetchForecast(city string) (string, error) {
	resp, err := weatherClient.Get(fmt.Sprintf(weatherURL, city))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("weather fetch: unexpected status %s", resp.Status)
	}
	var doc forecastDoc
	if err := weatherJSON.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return "", fmt.Errorf("weather fetch: decode: %w", err)
	}
	if len(doc.Forecasts) == 0 {
		return "", fmt.Errorf("weather fetch: no forecasts for city %s", city)
	}
	fc := doc.Forecasts[0]
	if fc.Date == "" || fc.Telop == "" {
		return "", fmt.Errorf("weather fetch: incomplete forecast for city %s", city)
	}
	return fc.Telop, nil
}
