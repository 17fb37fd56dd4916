package schedulers

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// PriorityScheduling dispatches the lowest priority value first and runs it to
// completion.
type PriorityScheduling struct{}

func (PriorityScheduling) Name() string { return PriorityName }

func (PriorityScheduling) SelectNext(ready []*core.Process, _ int) int {
	return selectMin(ready, higherPriority)
}

func (PriorityScheduling) TimeSlice(p *core.Process) int { return runToCompletion(p) }

func higherPriority(a, b *core.Process) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return core.ArrivesBefore(a, b)
}

func SchedulePriority(request *requests.ScheduleRequests, opts ...Option) (responses.ScheduleResponse, error) {
	return run(request, PriorityScheduling{}, opts...)
}
