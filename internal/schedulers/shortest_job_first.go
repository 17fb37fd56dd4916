package schedulers

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// ShortestJobFirst is non-preemptive: a shorter job arriving while another one
// runs waits for the next dispatch.
type ShortestJobFirst struct{}

func (ShortestJobFirst) Name() string { return ShortestJobFirstName }

func (ShortestJobFirst) SelectNext(ready []*core.Process, _ int) int {
	return selectMin(ready, shorterJob)
}

func (ShortestJobFirst) TimeSlice(p *core.Process) int { return runToCompletion(p) }

func shorterJob(a, b *core.Process) bool {
	if a.BurstTime != b.BurstTime {
		return a.BurstTime < b.BurstTime
	}
	return core.ArrivesBefore(a, b)
}

func ScheduleShortestJobFirst(request *requests.ScheduleRequests, opts ...Option) (responses.ScheduleResponse, error) {
	return run(request, ShortestJobFirst{}, opts...)
}
