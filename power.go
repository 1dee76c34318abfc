package main

import (
	"fmt"
	"math"

	"github.com/distatus/battery"
)

const acOnlinePath = "/sys/class/power_supply/AC/online"

// epsilon guards the divisions when counters are zero or missing.
const epsilon = 1e-6

type powerInfo struct {
	ACOnline    bool
	HasBattery  bool
	RemainRatio float64
	RemainHours int
	RemainMins  int
	Watts       float64
}

// fetchPowerInfo samples AC presence and the batteries. AC defaults to
// online when the file is unreadable: no such file usually means desktop
// hardware with no battery at all.
func fetchPowerInfo() powerInfo {
	p := powerInfo{ACOnline: true}
	if readValue(acOnlinePath) == "0" {
		p.ACOnline = false
	}

	bats, err := battery.GetAll()
	if err != nil || len(bats) == 0 {
		return p
	}
	var now, full, rate float64
	for _, b := range bats {
		now += b.Current
		full += b.Full
		rate += b.ChargeRate
	}
	p.HasBattery = true
	p.RemainRatio, p.RemainHours, p.RemainMins = remaining(now, full, rate)
	p.Watts = rate
	return p
}

// remaining derives the battery fraction and the clamped HH:MM estimate.
// Anything past 99 hours reads as 99:99 rather than wrapping.
func remaining(energyNow, energyFull, powerNow float64) (ratio float64, hours, minutes int) {
	ratio = energyNow / math.Max(energyFull, epsilon)
	if ratio > 1 {
		ratio = 1
	}
	secs := energyNow * 3600 / math.Max(powerNow, epsilon)
	hours = int(secs) / 3600
	minutes = int(secs) % 3600 / 60
	if hours > 99 {
		hours, minutes = 99, 99
	}
	return ratio, hours, minutes
}

// powerSegment renders the power portion of the line.
func powerSegment(p powerInfo) string {
	mark := "--"
	if p.ACOnline {
		mark = "AC"
	}
	if !p.HasBattery {
		return fmt.Sprintf("PW %s --%% --:--", mark)
	}
	return fmt.Sprintf("PW %s %d%% %02d:%02d %.1fW",
		mark, int(math.Round(p.RemainRatio*100)), p.RemainHours, p.RemainMins, p.Watts)
}
