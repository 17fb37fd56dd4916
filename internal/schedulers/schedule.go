package schedulers

import (
	"fmt"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// Schedule runs the named policy over the request jobs. timeQuantum is only
// used by round robin.
func Schedule(request *requests.ScheduleRequests, algorithm string, timeQuantum int, opts ...Option) (responses.ScheduleResponse, error) {
	policy, err := NewPolicy(algorithm, timeQuantum)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	return run(request, policy, opts...)
}

func run(request *requests.ScheduleRequests, policy Policy, opts ...Option) (responses.ScheduleResponse, error) {
	registry, err := newRegistry(request)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	return runRegistry(registry, policy, opts...)
}

func newRegistry(request *requests.ScheduleRequests) (*core.Registry, error) {
	if request == nil {
		return core.NewRegistry(nil)
	}
	return core.NewRegistry(request.Descriptors())
}

func runRegistry(registry *core.Registry, policy Policy, opts ...Option) (responses.ScheduleResponse, error) {
	o := newOptions(opts)
	o.logger.Info("running scheduling algorithm", "algorithm", policy.Name(), "jobs", registry.Len())

	timeline, err := Simulate(registry.Snapshot(), policy, opts...)
	if err != nil {
		return responses.ScheduleResponse{}, fmt.Errorf("simulate %s: %w", policy.Name(), err)
	}

	response := generateResponse(timeline)
	if rr, ok := policy.(RoundRobin); ok {
		response.TimeQuantum = rr.TimeQuantum
	}
	o.logger.Debug("schedule finished", "algorithm", policy.Name(),
		"total_time", response.TotalTime, "average_waiting_time", response.AverageWaitingTime)
	return response, nil
}
