package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const addrListing = `1: lo    inet 127.0.0.1/8 scope host lo\       valid_lft forever preferred_lft forever
1: lo    inet6 ::1/128 scope host \       valid_lft forever preferred_lft forever
3: wlan0    inet 192.168.1.42/24 brd 192.168.1.255 scope global dynamic wlan0\       valid_lft 85762sec preferred_lft 85762sec
4: eth0    inet 10.0.0.7/24 brd 10.0.0.255 scope global eth0\       valid_lft forever preferred_lft forever
`

const iwconfigDump = `wlan0     IEEE 802.11  ESSID:"home"
          Mode:Managed  Frequency:2.437 GHz  Access Point: AA:BB:CC:DD:EE:FF
          Bit Rate=72.2 Mb/s   Tx-Power=31 dBm
          Link Quality=58/70  Signal level=-52 dBm
`

func TestParseAddrListing_SkipsLoopback(t *testing.T) {
	var n netInfo
	parseAddrListing(strings.NewReader(addrListing), &n)

	require.NotNil(t, n.Interface)
	require.NotNil(t, n.IP)
	assert.Equal(t, "wlan0", *n.Interface, "first non-loopback interface wins")
	assert.Equal(t, "192.168.1.42", *n.IP)
}

func TestParseAddrListing_NothingUp(t *testing.T) {
	var n netInfo
	parseAddrListing(strings.NewReader("1: lo    inet 127.0.0.1/8 scope host lo\n"), &n)

	assert.Nil(t, n.Interface)
	assert.Nil(t, n.IP)
}

func TestParseAssociation(t *testing.T) {
	var n netInfo
	parseAssociation(strings.NewReader(iwconfigDump), &n)

	require.NotNil(t, n.ESSID)
	assert.Equal(t, "home", *n.ESSID)
	require.NotNil(t, n.AccessPoint)
	assert.Equal(t, "AA:BB:CC:DD:EE:FF", *n.AccessPoint)
	require.NotNil(t, n.BitRate)
	assert.Equal(t, 72.2, *n.BitRate)
	require.NotNil(t, n.LinkQuality)
	assert.Equal(t, "58/70", *n.LinkQuality)
	require.NotNil(t, n.SignalLevel)
	assert.Equal(t, -52, *n.SignalLevel)
}

func TestParseAssociation_NotAssociated(t *testing.T) {
	dump := "wlan0     IEEE 802.11  ESSID:off/any\n          Mode:Managed  Access Point: Not-Associated\n"
	var n netInfo
	parseAssociation(strings.NewReader(dump), &n)

	assert.Nil(t, n.ESSID)
	assert.Nil(t, n.BitRate)
}

func TestNetSegment(t *testing.T) {
	iface := "wlan0"
	essid := "home"

	tests := []struct {
		name string
		n    netInfo
		want string
	}{
		{"no interface means empty segment", netInfo{}, ""},
		{"associated without supplicant", netInfo{Interface: &iface, ESSID: &essid}, "wlan0  home"},
		{"supplicant marker", netInfo{Interface: &iface, ESSID: &essid, Supplicant: true}, "wlan0 +home"},
		{"unknown association gets dashes", netInfo{Interface: &iface}, "wlan0  --------"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, netSegment(tt.n))
		})
	}
}
