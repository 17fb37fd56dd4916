package schedulers

import (
	"errors"
	"sync"

	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"

	"github.com/google/uuid"
)

// CompareAll runs every policy over the same jobs. Each run simulates its own
// snapshot, so the runs execute concurrently without sharing state.
func CompareAll(request *requests.ScheduleRequests, timeQuantum int, opts ...Option) (responses.CompareResponse, error) {
	registry, err := newRegistry(request)
	if err != nil {
		return responses.CompareResponse{}, err
	}

	names := PolicyNames()
	policies := make([]Policy, 0, len(names))
	for _, name := range names {
		policy, err := NewPolicy(name, timeQuantum)
		if err != nil {
			return responses.CompareResponse{}, err
		}
		policies = append(policies, policy)
	}

	results := make([]responses.ScheduleResponse, len(policies))
	errs := make([]error, len(policies))

	var wg sync.WaitGroup
	wg.Add(len(policies))
	for i, policy := range policies {
		go func(i int, policy Policy) {
			defer wg.Done()
			results[i], errs[i] = runRegistry(registry, policy, opts...)
		}(i, policy)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return responses.CompareResponse{}, err
	}

	return responses.CompareResponse{
		RunId:   uuid.NewString(),
		Jobs:    registry.Descriptors(),
		Results: results,
	}, nil
}
