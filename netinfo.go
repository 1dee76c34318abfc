package main

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	gnet "github.com/shirou/gopsutil/v3/net"
	"github.com/shirou/gopsutil/v3/process"
)

// loopbackAddrs drops the loopback lines from the address listing before the
// interface rules ever see them.
var loopbackAddrs = regexp.MustCompile(`\b127\.0\.0\.1\b|\s::1[/\s]`)

const supplicantName = "wpa_supplicant"

type netInfo struct {
	Interface   *string
	IP          *string
	ESSID       *string
	AccessPoint *string
	BitRate     *float64
	LinkQuality *string
	SignalLevel *int
	Supplicant  bool
	TxBytes     uint64
	RxBytes     uint64
}

// fetchNetInfo detects the first non-loopback interface carrying an IPv4
// address and, when one exists, its wifi association and byte counters.
// Both name and address stay nil when nothing is up.
func fetchNetInfo() netInfo {
	var n netInfo
	if out, err := runCommand("ip", "-o", "addr"); err == nil {
		parseAddrListing(strings.NewReader(out), &n)
	}
	if n.Interface == nil {
		return n
	}

	if out, err := runCommand("iwconfig", *n.Interface); err == nil {
		parseAssociation(strings.NewReader(out), &n)
	}

	n.Supplicant = processRunning(supplicantName)
	n.TxBytes, n.RxBytes = ioCounters(*n.Interface)
	return n
}

// parseAddrListing picks the first interface/IPv4 pair out of the address
// listing, skipping the loopback lines.
func parseAddrListing(r io.Reader, n *netInfo) {
	scanLines(r, loopbackAddrs, []*rule{
		strRule(`^\d+:\s+(\S+)\s+inet\s+(\d+\.\d+\.\d+\.\d+)`, 1, &n.Interface),
		strRule(`^\d+:\s+(\S+)\s+inet\s+(\d+\.\d+\.\d+\.\d+)`, 2, &n.IP),
	})
}

// parseAssociation pulls the wifi association fields out of the wireless
// configuration dump; anything absent stays nil.
func parseAssociation(r io.Reader, n *netInfo) {
	scanLines(r, nil, []*rule{
		strRule(`ESSID:"([^"]*)"`, 1, &n.ESSID),
		strRule(`Access Point:\s*([0-9A-Fa-f:]+)`, 1, &n.AccessPoint),
		floatRule(`Bit Rate[=:]\s*([0-9.]+)`, 1, &n.BitRate),
		strRule(`Link Quality[=:]\s*(\d+/\d+)`, 1, &n.LinkQuality),
		intRule(`Signal level[=:]\s*(-?\d+)`, 1, &n.SignalLevel),
	})
}

// processRunning reports whether any process name contains the given name,
// the same boolean contract as an exit-code check on a process lookup.
func processRunning(name string) bool {
	procs, err := process.Processes()
	if err != nil {
		return false
	}
	for _, p := range procs {
		n, err := p.Name()
		if err != nil {
			continue
		}
		if strings.Contains(n, name) {
			return true
		}
	}
	return false
}

// ioCounters reads the interface's total tx/rx bytes, zero when unavailable.
func ioCounters(ifname string) (tx, rx uint64) {
	counters, err := gnet.IOCounters(true)
	if err != nil {
		return 0, 0
	}
	for _, c := range counters {
		if c.Name == ifname {
			return c.BytesSent, c.BytesRecv
		}
	}
	return 0, 0
}

// netSegment renders the network portion of the line: interface name, a
// one-character supplicant marker and the network name, with a dashed
// placeholder when the association is unknown.
func netSegment(n netInfo) string {
	if n.Interface == nil {
		return ""
	}
	mark := " "
	if n.Supplicant {
		mark = "+"
	}
	essid := "--------"
	if n.ESSID != nil {
		essid = *n.ESSID
	}
	return fmt.Sprintf("%s %s%s", *n.Interface, mark, essid)
}
