package game

import (
	"fmt"
	"strings"
)

// SimLogEntry is one recorded event during a headless exploration session.
type SimLogEntry struct {
	Tick     int
	Category string  // move, maze, terrain, event
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] maze     goal_reached       cell=(19,19)
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-8s %-18s %s", e.Tick, e.Category, e.Key, e.Value)
}

// SimLog collects structured events during a headless session. It is
// unbounded and machine-readable, meant for reports and test assertions
// rather than interactive display.
type SimLog struct {
	entries []SimLogEntry
	verbose bool
}

// NewSimLog creates a SimLog. If verbose is true, per-tick position
// entries are also recorded.
func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

// Add records a new entry.
func (sl *SimLog) Add(tick int, category, key, value string, numVal float64) {
	sl.entries = append(sl.entries, SimLogEntry{
		Tick:     tick,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (sl *SimLog) AddVerbose(tick int, category, key, value string, numVal float64) {
	if !sl.verbose {
		return
	}
	sl.Add(tick, category, key, value, numVal)
}

// Entries returns all recorded entries in order.
func (sl *SimLog) Entries() []SimLogEntry {
	return sl.entries
}

// CountKey returns how many entries match the given category and key.
func (sl *SimLog) CountKey(category, key string) int {
	n := 0
	for _, e := range sl.entries {
		if e.Category == category && e.Key == key {
			n++
		}
	}
	return n
}

// FirstTick returns the tick of the first entry matching category/key,
// or -1 if none was recorded.
func (sl *SimLog) FirstTick(category, key string) int {
	for _, e := range sl.entries {
		if e.Category == category && e.Key == key {
			return e.Tick
		}
	}
	return -1
}

// Dump renders the whole log as text.
func (sl *SimLog) Dump() string {
	var b strings.Builder
	for _, e := range sl.entries {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}
