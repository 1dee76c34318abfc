package main

import (
	"strings"
	"time"
)

const clockFormat = "01/02 (Mon) 15:04"

type clockInfo struct {
	Local string
	// Alt is the zone-dump stamp for the configured foreign zone. It is
	// sampled each cycle for parity with the old display but not rendered.
	Alt string
}

func fetchClockInfo(altZone string) clockInfo {
	ci := clockInfo{Local: time.Now().Format(clockFormat)}
	if altZone == "" {
		return ci
	}
	if out, err := runCommand("zdump", altZone); err == nil {
		ci.Alt = parseZdump(out)
	}
	return ci
}

// parseZdump strips the zone name off a zone-dump line:
// "America/New_York  Wed Aug 27 09:15:04 2026 EDT".
func parseZdump(out string) string {
	fields := strings.Fields(out)
	if len(fields) < 2 {
		return ""
	}
	return strings.Join(fields[1:], " ")
}
