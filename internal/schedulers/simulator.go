package schedulers

import (
	"fmt"
	"log/slog"
	"slices"

	"cpu-scheduler/internal/core"
)

type SimulationState int

const (
	RunningSimulation SimulationState = iota
	IdleWait
	Done
)

func (s SimulationState) String() string {
	switch s {
	case RunningSimulation:
		return "RUNNING_SIMULATION"
	case IdleWait:
		return "IDLE_WAIT"
	case Done:
		return "DONE"
	default:
		return fmt.Sprintf("SimulationState(%d)", int(s))
	}
}

// Timeline is the result of one simulation run.
type Timeline struct {
	Algorithm string
	Gantt     []core.GanttSegment
	Processes []*core.Process
	Metric    core.CpuMetric
	State     SimulationState
}

type options struct {
	maxIterations int
	logger        *slog.Logger
}

type Option func(*options)

// WithMaxIterations caps the number of loop iterations. Zero or a negative
// value keeps the default bound derived from the input.
func WithMaxIterations(n int) Option {
	return func(o *options) { o.maxIterations = n }
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func newOptions(opts []Option) options {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Simulate runs processes on a single virtual CPU under policy. The processes
// are mutated in place; pass a Registry snapshot to keep inputs reusable.
func Simulate(processes []*core.Process, policy Policy, opts ...Option) (*Timeline, error) {
	if policy == nil {
		return nil, core.NewConfigurationError("no scheduling policy given")
	}
	if v, ok := policy.(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	if err := checkFresh(processes); err != nil {
		return nil, err
	}
	o := newOptions(opts)

	pending := slices.Clone(processes)
	core.SortByArrival(pending)

	limit := o.maxIterations
	if limit <= 0 {
		limit = len(processes) + 1
		for _, p := range processes {
			limit += p.BurstTime
		}
	}

	tl := &Timeline{
		Algorithm: policy.Name(),
		Gantt:     make([]core.GanttSegment, 0, len(processes)),
		Processes: processes,
		State:     RunningSimulation,
	}

	var (
		ready     []*core.Process
		clock     int
		completed int
	)
	admit := func(now int) {
		for len(pending) > 0 && pending[0].ArrivalTime <= now {
			ready = append(ready, pending[0])
			pending = pending[1:]
		}
	}

	for iteration := 0; completed < len(processes); iteration++ {
		if iteration >= limit {
			return nil, fmt.Errorf("%w: %s stopped after %d iterations at clock %d", core.ErrIterationLimit, policy.Name(), limit, clock)
		}
		admit(clock)

		if len(ready) == 0 {
			tl.State = IdleWait
			next := pending[0].ArrivalTime
			o.logger.Debug("cpu idle", "algorithm", policy.Name(), "from", clock, "to", next)
			tl.Metric.IdleTime += next - clock
			clock = next
			continue
		}
		tl.State = RunningSimulation

		idx := policy.SelectNext(ready, clock)
		if idx < 0 || idx >= len(ready) {
			return nil, fmt.Errorf("%w: %s selected index %d of %d ready processes", core.ErrInvalidConfiguration, policy.Name(), idx, len(ready))
		}
		p := ready[idx]
		ready = slices.Delete(ready, idx, idx+1)

		delta := policy.TimeSlice(p)
		if delta <= 0 || delta > p.RemainingTime {
			return nil, fmt.Errorf("%w: %s granted a slice of %d to pid %d with %d remaining", core.ErrInvalidConfiguration, policy.Name(), delta, p.Pid, p.RemainingTime)
		}

		if n := len(tl.Gantt); n > 0 && tl.Gantt[n-1].Pid != p.Pid {
			tl.Metric.ContextSwitches++
		}
		tl.Gantt = append(tl.Gantt, core.GanttSegment{Pid: p.Pid, Start: clock, End: clock + delta})
		o.logger.Debug("dispatch", "algorithm", policy.Name(), "pid", p.Pid, "start", clock, "end", clock+delta)

		p.Execute(clock, delta)
		clock += delta
		tl.Metric.UtilizationTime += delta

		// arrivals during the slice queue up ahead of the preempted process
		admit(clock)
		if p.Done() {
			completed++
			continue
		}
		p.Preempt()
		ready = append(ready, p)
	}

	tl.Metric.TotalTime = clock
	tl.State = Done
	return tl, nil
}

func checkFresh(processes []*core.Process) error {
	var details []core.FieldError
	seen := make(map[int]bool, len(processes))
	for _, p := range processes {
		if p == nil {
			details = append(details, core.FieldError{Field: "process", Message: "is nil"})
			continue
		}
		if seen[p.Pid] {
			details = append(details, core.FieldError{Pid: p.Pid, Field: "pid", Message: "is duplicated"})
		}
		seen[p.Pid] = true
		if p.ArrivalTime < 0 {
			details = append(details, core.FieldError{Pid: p.Pid, Field: "arrival_time", Message: "must not be negative"})
		}
		if p.BurstTime <= 0 {
			details = append(details, core.FieldError{Pid: p.Pid, Field: "burst_time", Message: "must be positive"})
		}
		if p.State != core.Ready || p.RemainingTime != p.BurstTime {
			details = append(details, core.FieldError{Pid: p.Pid, Field: "state", Message: "was already simulated"})
		}
	}
	if len(details) > 0 {
		return core.NewInputError("processes cannot be simulated", details...)
	}
	return nil
}
