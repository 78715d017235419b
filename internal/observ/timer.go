// Package observ tracks phase timings for the CLI's --timings output.
package observ

import (
	"fmt"
	"strings"
	"time"
)

// phase records the duration and metadata of one processing phase.
type phase struct {
	name  string
	start time.Time
	dur   time.Duration
	note  string
}

// Timer tracks the execution time of the load and merge phases of one
// manifest run.
type Timer struct {
	phases []phase
}

// NewTimer creates a new empty Timer.
func NewTimer() *Timer { return &Timer{phases: make([]phase, 0, 4)} }

// Begin starts a new phase and returns its index.
func (t *Timer) Begin(name string) int {
	t.phases = append(t.phases, phase{name: name, start: time.Now()})
	return len(t.phases) - 1
}

// End finishes a phase by its index.
func (t *Timer) End(idx int, note string) {
	if idx < 0 || idx >= len(t.phases) {
		return
	}
	p := &t.phases[idx]
	p.dur = time.Since(p.start)
	p.note = note
}

// Summary returns a human-readable report of all tracked phases.
func (t *Timer) Summary() string {
	var sb strings.Builder
	sb.WriteString("timings:\n")
	var total time.Duration
	for _, p := range t.phases {
		total += p.dur
		fmt.Fprintf(&sb, "  %-12s %7.2f ms", p.name, millis(p.dur))
		if p.note != "" {
			sb.WriteString("  // " + p.note)
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "  %-12s %7.2f ms\n", "total", millis(total))
	return sb.String()
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
