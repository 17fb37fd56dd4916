package schedulers

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// RoundRobin serves the ready queue in FIFO order for at most TimeQuantum
// units per dispatch. The simulator appends new arrivals before requeueing a
// preempted process.
type RoundRobin struct {
	TimeQuantum int
}

func (RoundRobin) Name() string { return RoundRobinName }

func (RoundRobin) SelectNext(ready []*core.Process, _ int) int {
	if len(ready) == 0 {
		return -1
	}
	return 0
}

func (r RoundRobin) TimeSlice(p *core.Process) int {
	return min(r.TimeQuantum, p.RemainingTime)
}

func (r RoundRobin) Validate() error {
	if r.TimeQuantum <= 0 {
		return core.NewConfigurationError("round robin needs a positive time quantum",
			core.FieldError{Field: "time_quantum", Message: "must be positive"})
	}
	return nil
}

func ScheduleRoundRobin(request *requests.ScheduleRequests, timeQuantum int, opts ...Option) (responses.ScheduleResponse, error) {
	rr := RoundRobin{TimeQuantum: timeQuantum}
	if err := rr.Validate(); err != nil {
		return responses.ScheduleResponse{}, err
	}
	return run(request, rr, opts...)
}
