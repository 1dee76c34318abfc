package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type tickMsg time.Time

// cycleMsg carries one complete sampling pass. When the full-screen check
// fires the rest of the pass is skipped and the zero samples are ignored.
type cycleMsg struct {
	at         time.Time
	suppressed bool
	net        netInfo
	power      powerInfo
	cpu        cpuInfo
	clock      clockInfo
	recording  bool
	weather    string
}

// sampleCmd runs one cycle's probes strictly in sequence. Each external
// call blocks (bounded by its own timeout) and the results land in Update
// as a single message, so the model stays the sole state owner.
func sampleCmd(cfg *Config, weather *weatherCache) tea.Cmd {
	return func() tea.Msg {
		msg := cycleMsg{at: time.Now()}
		if fetchFullScreen(cfg.FullScreenProcs) {
			msg.suppressed = true
			return msg
		}
		msg.net = fetchNetInfo()
		msg.power = fetchPowerInfo()
		msg.cpu = fetchCPUInfo()
		msg.clock = fetchClockInfo(cfg.AltZone)
		msg.recording = fetchRecording(cfg.RecordingProcs)
		// Post-startup fetch errors keep the cached value; nothing to do.
		if desc, err := weather.Current(); err == nil {
			msg.weather = desc
		}
		return msg
	}
}

// pauseUntilNext bounds the sleep so cycles land on the update interval:
// only the remainder since the last redraw, and none at all when overdue.
func pauseUntilNext(interval, sinceRedraw time.Duration) time.Duration {
	d := interval - sinceRedraw
	if d < time.Millisecond {
		return time.Millisecond
	}
	return d
}

func (m model) tickCmd() tea.Cmd {
	interval := time.Duration(m.cfg.RefreshInterval) * time.Second
	return tea.Tick(pauseUntilNext(interval, time.Since(m.lastRedraw)), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Init() tea.Cmd {
	return sampleCmd(m.cfg, m.weather)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		return m, sampleCmd(m.cfg, m.weather)

	case cycleMsg:
		if msg.suppressed {
			// Bar keeps its previous visual state; no redraw stamp.
			return m, m.tickCmd()
		}
		m.currTime = msg.at
		m.applyNet(msg.net)
		m.power = msg.power
		m.cpu = msg.cpu
		m.clock = msg.clock
		m.recording = msg.recording
		m.weatherDesc = msg.weather
		m.blinkOn = !m.blinkOn
		m.lastRedraw = msg.at
		return m, m.tickCmd()
	}
	return m, nil
}
