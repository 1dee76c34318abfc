package main

import (
	"bufio"
	"regexp"
	"strconv"
	"strings"
)

// A window must cover at least this share of both screen dimensions before
// the bar treats it as full-screen.
const fullScreenCover = 0.95

// displayGeometry reads the connected output's dimensions from the output
// configuration listing, e.g. "eDP-1 connected primary 1920x1080+0+0".
func displayGeometry() (width, height int, ok bool) {
	var w, h *int
	scanCommand(nil, []*rule{
		intRule(`\bconnected\b.*?(\d+)x\d+\+\d+\+\d+`, 1, &w),
		intRule(`\bconnected\b.*?\d+x(\d+)\+\d+\+\d+`, 1, &h),
	}, "xrandr", "--query")
	if w == nil || h == nil {
		return 0, 0, false
	}
	return *w, *h, true
}

// windowLine matches the child entries of a root window tree dump:
//
//	0x2e00004 "mpv - clip.mkv": ("mpv" "mpv")  1920x1080+0+0  +0+0
var windowLine = regexp.MustCompile(`"([^"]*)".*?(\d+)x(\d+)[+-]-?\d+[+-]-?\d+`)

// fullScreenActive reports whether the window tree holds a window belonging
// to one of the named players that covers enough of the screen.
func fullScreenActive(tree string, procs []string, screenW, screenH int) bool {
	if screenW <= 0 || screenH <= 0 {
		return false
	}
	scanner := bufio.NewScanner(strings.NewReader(tree))
	for scanner.Scan() {
		m := windowLine.FindStringSubmatch(scanner.Text())
		if m == nil || !nameMatches(m[1], procs) {
			continue
		}
		w, _ := strconv.Atoi(m[2])
		h, _ := strconv.Atoi(m[3])
		if float64(w) >= fullScreenCover*float64(screenW) &&
			float64(h) >= fullScreenCover*float64(screenH) {
			return true
		}
	}
	return false
}

func nameMatches(title string, procs []string) bool {
	title = strings.ToLower(title)
	for _, p := range procs {
		if p != "" && strings.Contains(title, strings.ToLower(p)) {
			return true
		}
	}
	return false
}

// fetchFullScreen runs the per-cycle window-tree introspection. Any failure
// reads as "nothing full-screen": the bar stays up.
func fetchFullScreen(procs []string) bool {
	if len(procs) == 0 {
		return false
	}
	w, h, ok := displayGeometry()
	if !ok {
		return false
	}
	tree, err := runCommand("xwininfo", "-root", "-tree")
	if err != nil {
		return false
	}
	return fullScreenActive(tree, procs, w, h)
}
