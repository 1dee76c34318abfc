package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Config covers every override the old ad-hoc rc script exposed, as plain
// data. Departure times are "HH:MM" strings, schedules keyed by ESSID.
type Config struct {
	RefreshInterval int                 `json:"refresh_interval"`
	BatteryWarnPct  int                 `json:"battery_warn_percent"`
	WeatherCity     string              `json:"weather_city"`
	WeatherTTLSec   int                 `json:"weather_ttl_seconds"`
	AltZone         string              `json:"alt_zone"`
	FullScreenProcs []string            `json:"fullscreen_procs"`
	RecordingProcs  []string            `json:"recording_procs"`
	Schedules       map[string][]string `json:"schedules"`
	DefaultSchedule []string            `json:"default_schedule"`
}

func defaultConfig() *Config {
	return &Config{
		RefreshInterval: 1,
		BatteryWarnPct:  5,
		WeatherCity:     "130010",
		WeatherTTLSec:   3600,
		AltZone:         "America/Los_Angeles",
		FullScreenProcs: []string{"mpv", "mplayer", "vlc"},
		RecordingProcs:  []string{"ffmpeg", "recordmydesktop"},
		Schedules:       map[string][]string{},
		DefaultSchedule: []string{"07:52", "08:12", "08:32", "08:52", "09:12"},
	}
}

// loadConfig reads the JSON config, falling back to defaults when the file
// does not exist. A file that exists but fails to parse is a startup error
// naming the file.
func loadConfig(path string) (*Config, error) {
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "statbar", "config.json")
	}

	file, err := os.Open(path)
	if err != nil {
		return defaultConfig(), nil
	}
	defer file.Close()

	cfg := defaultConfig()
	if err := json.NewDecoder(file).Decode(cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if cfg.RefreshInterval < 1 {
		cfg.RefreshInterval = 1
	}
	if cfg.WeatherTTLSec < 1 {
		cfg.WeatherTTLSec = 3600
	}
	return cfg, nil
}

// scheduleFor picks the transit schedule for the network the box is
// associated with at startup; unknown or absent ESSIDs get the default.
func (c *Config) scheduleFor(essid *string) []departure {
	if essid != nil {
		if times, ok := c.Schedules[*essid]; ok {
			return parseSchedule(times)
		}
	}
	return parseSchedule(c.DefaultSchedule)
}

// parseSchedule converts "HH:MM" strings into an ascending schedule,
// dropping entries that do not parse.
func parseSchedule(times []string) []departure {
	var out []departure
	for _, t := range times {
		hh, mm, ok := strings.Cut(t, ":")
		if !ok {
			continue
		}
		h, err1 := strconv.Atoi(hh)
		m, err2 := strconv.Atoi(mm)
		if err1 != nil || err2 != nil || h < 0 || h > 23 || m < 0 || m > 59 {
			continue
		}
		out = append(out, departure{Hour: h, Minute: m})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].before(out[j].Hour, out[j].Minute)
	})
	return out
}
