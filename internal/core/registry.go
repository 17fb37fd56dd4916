package core

import "sort"

// Descriptor is the immutable input of one job.
type Descriptor struct {
	Pid         int `json:"process_id" yaml:"pid"`
	ArrivalTime int `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int `json:"burst_time" yaml:"burst_time"`
	Priority    int `json:"priority" yaml:"priority"`
}

// Registry holds the validated descriptors of one input set. Every policy run
// gets its own Snapshot so state never leaks between runs.
type Registry struct {
	descriptors []Descriptor
}

func NewRegistry(descriptors []Descriptor) (*Registry, error) {
	if err := Validate(descriptors); err != nil {
		return nil, err
	}
	cp := make([]Descriptor, len(descriptors))
	copy(cp, descriptors)
	return &Registry{descriptors: cp}, nil
}

// Validate checks every descriptor and reports all offending fields at once.
func Validate(descriptors []Descriptor) error {
	var details []FieldError
	seen := make(map[int]bool, len(descriptors))
	for _, d := range descriptors {
		if d.Pid <= 0 {
			details = append(details, FieldError{Pid: d.Pid, Field: "pid", Message: "must be a positive integer"})
		} else if seen[d.Pid] {
			details = append(details, FieldError{Pid: d.Pid, Field: "pid", Message: "is duplicated"})
		}
		seen[d.Pid] = true
		if d.ArrivalTime < 0 {
			details = append(details, FieldError{Pid: d.Pid, Field: "arrival_time", Message: "must not be negative"})
		}
		if d.BurstTime <= 0 {
			details = append(details, FieldError{Pid: d.Pid, Field: "burst_time", Message: "must be positive"})
		}
	}
	if len(details) > 0 {
		return NewInputError("rejected job descriptors", details...)
	}
	return nil
}

func (r *Registry) Len() int {
	return len(r.descriptors)
}

// Descriptors returns a copy of the input table in registration order.
func (r *Registry) Descriptors() []Descriptor {
	cp := make([]Descriptor, len(r.descriptors))
	copy(cp, r.descriptors)
	return cp
}

// Snapshot builds fresh processes sorted by (arrival, pid).
func (r *Registry) Snapshot() []*Process {
	processes := make([]*Process, 0, len(r.descriptors))
	for _, d := range r.descriptors {
		processes = append(processes, NewProcess(d.Pid, d.ArrivalTime, d.BurstTime, d.Priority))
	}
	SortByArrival(processes)
	return processes
}

// SortByArrival orders processes by arrival time, ties broken by pid.
func SortByArrival(processes []*Process) {
	sort.SliceStable(processes, func(i, j int) bool {
		return ArrivesBefore(processes[i], processes[j])
	})
}

func ArrivesBefore(a, b *Process) bool {
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.Pid < b.Pid
}
