package requests

import "cpu-scheduler/internal/core"

type Job struct {
	ProcessId   int  `json:"process_id" yaml:"pid"`
	ArrivalTime int  `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int  `json:"burst_time" yaml:"burst_time"`
	Priority    *int `json:"priority,omitempty" yaml:"priority,omitempty"`
}

type ScheduleRequests struct {
	Jobs        []Job `json:"jobs" yaml:"jobs"`
	TimeQuantum *int  `json:"time_quantum,omitempty" yaml:"time_quantum,omitempty"`
}

// Descriptors converts the request jobs, filling in the default priority.
func (r *ScheduleRequests) Descriptors() []core.Descriptor {
	descs := make([]core.Descriptor, 0, len(r.Jobs))
	for _, job := range r.Jobs {
		priority := core.DefaultPriority
		if job.Priority != nil {
			priority = *job.Priority
		}
		descs = append(descs, core.Descriptor{
			Pid:         job.ProcessId,
			ArrivalTime: job.ArrivalTime,
			BurstTime:   job.BurstTime,
			Priority:    priority,
		})
	}
	return descs
}

func Priority(p int) *int {
	return &p
}

func Quantum(q int) *int {
	return &q
}
