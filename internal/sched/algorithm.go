package sched

import (
	"fmt"
	"strings"
)

// Algorithm selects a scheduling strategy.
type Algorithm int

const (
	FCFS Algorithm = iota
	SJF
	Priority
	RoundRobin
)

// Quantum is the fixed Round-Robin time slice in ticks.
const Quantum = 3

// Algorithms lists every supported strategy in display order.
var Algorithms = []Algorithm{FCFS, SJF, Priority, RoundRobin}

// String returns the wire token for the algorithm.
func (a Algorithm) String() string {
	switch a {
	case FCFS:
		return "fcfs"
	case SJF:
		return "sjf"
	case Priority:
		return "priority"
	case RoundRobin:
		return "rr"
	default:
		return "unknown"
	}
}

// Title is the long human-readable name.
func (a Algorithm) Title() string {
	switch a {
	case FCFS:
		return "First-Come-First-Served"
	case SJF:
		return "Shortest-Job-First"
	case Priority:
		return "Priority"
	case RoundRobin:
		return fmt.Sprintf("Round-Robin (q=%d)", Quantum)
	default:
		return "Unknown"
	}
}

// Preemptive reports whether the strategy slices bursts.
func (a Algorithm) Preemptive() bool { return a == RoundRobin }

// ParseAlgorithm maps a token to an Algorithm. Matching ignores case and
// surrounding whitespace.
func ParseAlgorithm(token string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "fcfs":
		return FCFS, nil
	case "sjf":
		return SJF, nil
	case "priority":
		return Priority, nil
	case "rr", "round_robin", "round-robin", "roundrobin":
		return RoundRobin, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, token)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if a < FCFS || a > RoundRobin {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(b []byte) error {
	v, err := ParseAlgorithm(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
