package main

import "fmt"

// departure is one scheduled time of day. Schedules are built once at
// startup and never mutated afterwards.
type departure struct {
	Hour   int
	Minute int
}

func (d departure) String() string {
	return fmt.Sprintf("%02d:%02d", d.Hour, d.Minute)
}

func (d departure) before(hour, minute int) bool {
	if d.Hour != hour {
		return d.Hour < hour
	}
	return d.Minute < minute
}

// nextDeparture scans the ascending schedule for the first entry not earlier
// than the given time; an exact match counts as next. It returns the next
// entry and, when one exists, the entry after it. Past the last entry both
// are nil.
func nextDeparture(schedule []departure, hour, minute int) (next, after *departure) {
	for i := range schedule {
		if schedule[i].before(hour, minute) {
			continue
		}
		next = &schedule[i]
		if i+1 < len(schedule) {
			after = &schedule[i+1]
		}
		return next, after
	}
	return nil, nil
}

// busSegment renders the transit portion of the line.
func busSegment(schedule []departure, hour, minute int) string {
	next, after := nextDeparture(schedule, hour, minute)
	switch {
	case next == nil:
		return "BUS --:--"
	case after == nil:
		return fmt.Sprintf("BUS %s", next)
	default:
		return fmt.Sprintf("BUS %s/%s", next, after)
	}
}
