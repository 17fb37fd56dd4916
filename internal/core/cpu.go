package core

import "fmt"

// DefaultPriority is assigned to a job that does not state its priority.
const DefaultPriority = 1

type State int

const (
	Ready State = iota
	Running
	Waiting // unused: no blocking I/O is simulated
	Completed
)

func (s State) String() string {
	switch s {
	case Ready:
		return "READY"
	case Running:
		return "RUNNING"
	case Waiting:
		return "WAITING"
	case Completed:
		return "COMPLETED"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Process is one job of a simulation run. ArrivalTime, BurstTime and Priority
// never change; the rest is bookkeeping owned by the simulator.
type Process struct {
	Pid         int
	ArrivalTime int
	BurstTime   int
	Priority    int

	RemainingTime  int
	StartTime      int
	CompletionTime int
	State          State
}

func NewProcess(pid, arrival, burst, priority int) *Process {
	return &Process{
		Pid:            pid,
		ArrivalTime:    arrival,
		BurstTime:      burst,
		Priority:       priority,
		RemainingTime:  burst,
		StartTime:      -1,
		CompletionTime: -1,
		State:          Ready,
	}
}

// Clone returns the process as it was before any dispatch.
func (p *Process) Clone() *Process {
	return NewProcess(p.Pid, p.ArrivalTime, p.BurstTime, p.Priority)
}

func (p *Process) Done() bool {
	return p.State == Completed
}

// Execute accounts delta units of CPU time starting at clock.
func (p *Process) Execute(clock, delta int) {
	if p.StartTime == -1 {
		p.StartTime = clock
	}
	p.State = Running
	p.RemainingTime -= delta
	if p.RemainingTime == 0 {
		p.CompletionTime = clock + delta
		p.State = Completed
	}
}

// Preempt puts a running process back to the ready state.
func (p *Process) Preempt() {
	if p.State == Running {
		p.State = Ready
	}
}

func (p *Process) TurnaroundTime() int {
	if p.CompletionTime == -1 {
		return 0
	}
	return p.CompletionTime - p.ArrivalTime
}

func (p *Process) WaitingTime() int {
	if p.CompletionTime == -1 {
		return 0
	}
	return p.TurnaroundTime() - p.BurstTime
}

// ResponseTime is the delay between arrival and first dispatch.
func (p *Process) ResponseTime() int {
	if p.StartTime == -1 {
		return 0
	}
	return p.StartTime - p.ArrivalTime
}

// GanttSegment is an interval [Start, End) during which Pid held the CPU.
type GanttSegment struct {
	Pid   int `json:"pid"`
	Start int `json:"start"`
	End   int `json:"end"`
}

func (g GanttSegment) Duration() int {
	return g.End - g.Start
}

func (g GanttSegment) String() string {
	return fmt.Sprintf("P%d[%d-%d]", g.Pid, g.Start, g.End)
}

// CpuMetric summarises how the single simulated CPU spent its virtual time.
type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
	ContextSwitches int
}

func (m CpuMetric) Utilization() float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(m.UtilizationTime) / float64(m.TotalTime)
}

func (m CpuMetric) Throughput(completed int) float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(completed) / float64(m.TotalTime)
}
