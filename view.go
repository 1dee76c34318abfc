package main

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const segmentSep = " | "

// composeLine joins the enabled segments in fixed order. No detected
// interface means an empty line: the cycle draws nothing at all rather than
// a partial line.
func composeLine(n netInfo, recording bool, p powerInfo, c cpuInfo, clk clockInfo,
	schedule []departure, weather string, now time.Time) string {

	netSeg := netSegment(n)
	if netSeg == "" {
		return ""
	}
	segs := []string{netSeg}
	if s := recSegment(recording); s != "" {
		segs = append(segs, s)
	}
	segs = append(segs, powerSegment(p), cpuSegment(c), clk.Local)
	segs = append(segs, busSegment(schedule, now.Hour(), now.Minute()))
	if weather != "" {
		segs = append(segs, weather)
	}
	return strings.Join(segs, segmentSep)
}

func (m model) View() string {
	if m.width == 0 {
		return ""
	}
	line := composeLine(m.net, m.recording, m.power, m.cpu, m.clock,
		m.schedule, m.weatherDesc, m.currTime)
	if line == "" {
		return ""
	}

	d := batteryColor(m.power.ACOnline, m.power.RemainRatio,
		float64(m.cfg.BatteryWarnPct)/100)
	style := barStyle.Foreground(d.color).Reverse(d.blink && m.blinkOn)

	col := (m.width - lipgloss.Width(line)) / 2
	if col < 0 {
		col = 0
	}
	return strings.Repeat(" ", col) + style.Render(line)
}
