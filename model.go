package main

import (
	"fmt"
	"time"
)

// model is the single long-lived monitor state. It is owned by the program
// loop alone and mutated once per cycle; everything else it holds is the
// most recent sample of each probe.
type model struct {
	cfg *Config

	width  int
	height int

	currTime   time.Time
	lastRedraw time.Time // advanced only on cycles that actually rendered
	lastSample time.Time // stamp of the last counter sample on the current interface

	// Interface-scoped counters. Reset to zero together with lastInterface
	// whenever the detected interface changes; throughput itself is not
	// rendered, only tracked.
	lastInterface string
	txBytes       uint64
	rxBytes       uint64

	net       netInfo
	power     powerInfo
	cpu       cpuInfo
	clock     clockInfo
	recording bool

	schedule    []departure
	weather     *weatherCache
	weatherDesc string

	blinkOn bool
}

// initialModel probes the network once to pick the transit schedule for the
// current location and performs the first weather fetch. That fetch has no
// cached value to fall back to, so its failure aborts startup.
func initialModel(cfg *Config) (model, error) {
	n := fetchNetInfo()

	w := newWeatherCache(cfg.WeatherCity, time.Duration(cfg.WeatherTTLSec)*time.Second)
	desc, err := w.Current()
	if err != nil {
		return model{}, fmt.Errorf("weather: %w", err)
	}

	m := model{
		cfg:         cfg,
		currTime:    time.Now(),
		schedule:    cfg.scheduleFor(n.ESSID),
		weather:     w,
		weatherDesc: desc,
		power:       powerInfo{ACOnline: true},
	}
	m.applyNet(n)
	return m, nil
}

// applyNet folds a network sample into the state. On an interface change the
// scoped counters go to zero in the same step as the name update; the new
// interface's totals are only adopted from the next sample on.
func (m *model) applyNet(n netInfo) {
	name := ""
	if n.Interface != nil {
		name = *n.Interface
	}
	if name != m.lastInterface {
		m.lastInterface = name
		m.txBytes, m.rxBytes = 0, 0
		m.lastSample = time.Time{}
	} else if name != "" {
		m.txBytes, m.rxBytes = n.TxBytes, n.RxBytes
		m.lastSample = time.Now()
	}
	m.net = n
}
