package main

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	green  = lipgloss.Color("2")
	yellow = lipgloss.Color("3")
	orange = lipgloss.Color("208")
	red    = lipgloss.Color("9")

	barStyle = lipgloss.NewStyle().
		Background(lipgloss.Color("0"))
)

// batteryBands is the percentage ladder for the line color. It is scanned
// top down and the lowest band the remaining ratio still falls into wins.
var batteryBands = []struct {
	pct   int
	color lipgloss.Color
}{
	{100, green},
	{75, yellow},
	{50, orange},
	{25, red},
}

// colorDirective is recomputed every rendered cycle from the power sample.
type colorDirective struct {
	color lipgloss.Color
	blink bool
}

// batteryColor picks the line color. On AC the top band always applies; on
// battery the ladder is walked down and every band the ratio still fits
// overwrites the pick. warnRatio or less on battery turns blinking on.
func batteryColor(acOnline bool, remainRatio, warnRatio float64) colorDirective {
	d := colorDirective{color: batteryBands[0].color}
	if acOnline {
		return d
	}
	for _, b := range batteryBands {
		if remainRatio <= float64(b.pct)/100 {
			d.color = b.color
		}
	}
	if remainRatio <= warnRatio {
		d.blink = true
	}
	return d
}
