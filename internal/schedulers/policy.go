package schedulers

import (
	"fmt"
	"strings"

	"cpu-scheduler/internal/core"
)

const (
	FirstComeFirstServeName = "fcfs"
	ShortestJobFirstName    = "sjf"
	PriorityName            = "priority"
	RoundRobinName          = "round_robin"
)

// Policy picks the next process to dispatch from the ready queue and decides
// how long it may keep the CPU.
type Policy interface {
	Name() string
	// SelectNext returns the index of the chosen process in ready, or -1 if
	// ready is empty.
	SelectNext(ready []*core.Process, clock int) int
	TimeSlice(p *core.Process) int
}

// PolicyNames lists the supported policies in report order.
func PolicyNames() []string {
	return []string{FirstComeFirstServeName, ShortestJobFirstName, PriorityName, RoundRobinName}
}

// NewPolicy resolves a policy selector. timeQuantum is only read for round robin.
func NewPolicy(name string, timeQuantum int) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case FirstComeFirstServeName:
		return FirstComeFirstServe{}, nil
	case ShortestJobFirstName:
		return ShortestJobFirst{}, nil
	case PriorityName:
		return PriorityScheduling{}, nil
	case RoundRobinName, "rr", "round-robin":
		rr := RoundRobin{TimeQuantum: timeQuantum}
		if err := rr.Validate(); err != nil {
			return nil, err
		}
		return rr, nil
	default:
		return nil, fmt.Errorf("%w: %q (expected one of %s)", core.ErrUnknownPolicy, name, strings.Join(PolicyNames(), ", "))
	}
}

// selectMin returns the index of the smallest process according to less, or
// -1 for an empty slice. The first of equal elements wins.
func selectMin(ready []*core.Process, less func(a, b *core.Process) bool) int {
	best := -1
	for i, p := range ready {
		if best == -1 || less(p, ready[best]) {
			best = i
		}
	}
	return best
}

// runToCompletion is the time slice of every non-preemptive policy.
func runToCompletion(p *core.Process) int {
	return p.RemainingTime
}
