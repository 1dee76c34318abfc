package main

import (
	"bufio"
	"context"
	"io"
	"os"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Every external command a probe consumes runs under this bound; a timeout
// counts as "unavailable this cycle", never as an error.
const cmdTimeout = 10 * time.Second

// rule binds one pattern to a typed setter. The first line whose submatch
// resolves fills the slot and locks it; later matches are ignored.
type rule struct {
	re      *regexp.Regexp
	capture int
	set     func(s string) bool
	done    bool
}

func strRule(expr string, capture int, dst **string) *rule {
	return &rule{
		re:      regexp.MustCompile(expr),
		capture: capture,
		set: func(s string) bool {
			v := s
			*dst = &v
			return true
		},
	}
}

func intRule(expr string, capture int, dst **int) *rule {
	return &rule{
		re:      regexp.MustCompile(expr),
		capture: capture,
		set: func(s string) bool {
			n, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil {
				return false
			}
			*dst = &n
			return true
		},
	}
}

func floatRule(expr string, capture int, dst **float64) *rule {
	return &rule{
		re:      regexp.MustCompile(expr),
		capture: capture,
		set: func(s string) bool {
			f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return false
			}
			*dst = &f
			return true
		},
	}
}

// scanLines walks the source once, in order. Lines matching ignore are
// skipped; otherwise every still-open rule is tried and the first successful
// conversion closes its slot. Slots left open simply stay unset.
func scanLines(r io.Reader, ignore *regexp.Regexp, rules []*rule) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if ignore != nil && ignore.MatchString(line) {
			continue
		}
		open := 0
		for _, ru := range rules {
			if ru.done {
				continue
			}
			open++
			m := ru.re.FindStringSubmatch(line)
			if m == nil || ru.capture >= len(m) {
				continue
			}
			if ru.set(m[ru.capture]) {
				ru.done = true
				open--
			}
		}
		if open == 0 {
			return
		}
	}
}

// scanFile applies the rules to a file. A missing or unreadable file leaves
// every slot unset; hardware without the file is not an error.
func scanFile(path string, ignore *regexp.Regexp, rules []*rule) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()
	scanLines(f, ignore, rules)
}

// scanCommand applies the rules to a command's output under cmdTimeout. The
// contract is identical to scanFile: any failure leaves the slots unset.
func scanCommand(ignore *regexp.Regexp, rules []*rule, name string, args ...string) {
	out, err := runCommand(name, args...)
	if err != nil {
		return
	}
	scanLines(strings.NewReader(out), ignore, rules)
}

func runCommand(name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cmdTimeout)
	defer cancel()
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// readValue reads a whole small pseudo-file (sysfs style) trimmed to one
// token, or "" when absent.
func readValue(path string) string {
	b, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}
