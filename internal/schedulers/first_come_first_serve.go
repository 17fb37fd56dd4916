package schedulers

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// FirstComeFirstServe runs jobs in arrival order, ties broken by pid.
type FirstComeFirstServe struct{}

func (FirstComeFirstServe) Name() string { return FirstComeFirstServeName }

func (FirstComeFirstServe) SelectNext(ready []*core.Process, _ int) int {
	return selectMin(ready, core.ArrivesBefore)
}

func (FirstComeFirstServe) TimeSlice(p *core.Process) int { return runToCompletion(p) }

func ScheduleFirstComeFirstServe(request *requests.ScheduleRequests, opts ...Option) (responses.ScheduleResponse, error) {
	return run(request, FirstComeFirstServe{}, opts...)
}
