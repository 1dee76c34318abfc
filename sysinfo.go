package main

import (
	"fmt"
	"math"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/load"
)

// Boxes that refuse to report a core frequency get a nominal 1 GHz.
const defaultFreqMHz = 1000.0

type cpuInfo struct {
	Load1   *float64
	FreqMHz float64
}

func fetchCPUInfo() cpuInfo {
	c := cpuInfo{FreqMHz: defaultFreqMHz}
	if avg, err := load.Avg(); err == nil {
		v := avg.Load1
		c.Load1 = &v
	}
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 && infos[0].Mhz > 0 {
		c.FreqMHz = infos[0].Mhz
	}
	return c
}

// cpuSegment renders the load as an integer percent-style figure and the
// first core's frequency in GHz.
func cpuSegment(c cpuInfo) string {
	loadStr := "--%"
	if c.Load1 != nil {
		loadStr = fmt.Sprintf("%d%%", int(math.Round(*c.Load1*100)))
	}
	return fmt.Sprintf("CPU %s %.1fGHz", loadStr, c.FreqMHz/1000)
}

// fetchRecording reports whether any of the configured capture processes is
// alive this cycle.
func fetchRecording(names []string) bool {
	for _, name := range names {
		if name != "" && processRunning(name) {
			return true
		}
	}
	return false
}

func recSegment(active bool) string {
	if active {
		return "REC"
	}
	return ""
}
