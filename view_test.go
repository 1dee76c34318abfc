package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleLine(t *testing.T) string {
	t.Helper()
	iface := "wlan0"
	essid := "home"
	loadAvg := 0.5

	n := netInfo{Interface: &iface, ESSID: &essid}
	p := powerInfo{ACOnline: false, HasBattery: true, RemainRatio: 0.20, RemainHours: 1, RemainMins: 5, Watts: 9.8}
	c := cpuInfo{Load1: &loadAvg, FreqMHz: 2400}
	clk := clockInfo{Local: "08/27 (Wed) 09:15"}
	now := time.Date(2026, 8, 27, 9, 15, 0, 0, time.UTC)

	return composeLine(n, false, p, c, clk, []departure{{10, 40}, {11, 40}}, "fine", now)
}

func TestComposeLine_SegmentsInOrder(t *testing.T) {
	line := sampleLine(t)

	netIdx := strings.Index(line, "wlan0  home")
	pwIdx := strings.Index(line, "PW")
	cpuIdx := strings.Index(line, "CPU 50%")

	require.GreaterOrEqual(t, netIdx, 0)
	require.Greater(t, pwIdx, netIdx)
	require.Greater(t, cpuIdx, pwIdx)

	assert.Contains(t, line, "20%")
	assert.Contains(t, line, "2.4GHz")
	assert.Contains(t, line, "BUS 10:40/11:40")
	assert.Contains(t, line, "fine")
	assert.Contains(t, line, segmentSep)
}

func TestComposeLine_NoInterfaceMeansEmptyLine(t *testing.T) {
	line := composeLine(netInfo{}, true, powerInfo{ACOnline: true}, cpuInfo{FreqMHz: 2400},
		clockInfo{Local: "08/27 (Wed) 09:15"}, nil, "fine", time.Now())

	assert.Empty(t, line, "never a partial line")
}

func TestComposeLine_RecordingMarker(t *testing.T) {
	iface := "wlan0"
	n := netInfo{Interface: &iface}
	line := composeLine(n, true, powerInfo{ACOnline: true}, cpuInfo{FreqMHz: 1000},
		clockInfo{Local: "x"}, nil, "", time.Now())

	assert.Contains(t, line, segmentSep+"REC"+segmentSep)
}

func TestView_EmptyBeforeFirstResize(t *testing.T) {
	m := model{cfg: defaultConfig()}
	assert.Empty(t, m.View())
}

func TestView_CentersLine(t *testing.T) {
	iface := "wlan0"
	m := model{
		cfg:      defaultConfig(),
		width:    120,
		currTime: time.Now(),
		net:      netInfo{Interface: &iface},
		power:    powerInfo{ACOnline: true},
		cpu:      cpuInfo{FreqMHz: 2000},
		clock:    clockInfo{Local: "08/27 (Wed) 09:15"},
	}

	out := m.View()
	require.NotEmpty(t, out)
	assert.True(t, strings.HasPrefix(out, " "), "line starts at the centered column")
}
