package responses

import "cpu-scheduler/internal/core"

type ProcessResponse struct {
	ProcessId      int     `json:"process_id"`
	ArrivalTime    int     `json:"arrival_time"`
	BurstTime      int     `json:"burst_time"`
	Priority       int     `json:"priority"`
	StartTime      int     `json:"start_time"`
	CompletionTime int     `json:"completion_time"`
	ResponseTime   float64 `json:"response_time"`
	TurnAroundTime float64 `json:"turn_around_time"`
	WaitingTime    float64 `json:"waiting_time"`
}

type ScheduleResponse struct {
	Algorithm             string              `json:"algorithm"`
	TimeQuantum           int                 `json:"time_quantum,omitempty"`
	TotalTime             float64             `json:"total_time"`
	IdleTime              float64             `json:"idle_time"`
	ContextSwitches       int                 `json:"context_switches"`
	AverageWaitingTime    float64             `json:"average_waiting_time"`
	AverageResponseTime   float64             `json:"average_response_time"`
	AverageTurnAroundTime float64             `json:"average_turn_around_time"`
	CpuUtilization        float64             `json:"cpu_utilization"`
	CpuThroughput         float64             `json:"cpu_throughput"`
	Gantt                 []core.GanttSegment `json:"gantt"`
	Details               []ProcessResponse   `json:"details"`
}

type CompareResponse struct {
	RunId   string             `json:"run_id"`
	Jobs    []core.Descriptor  `json:"jobs"`
	Results []ScheduleResponse `json:"results"`
}

type ErrorResponse struct {
	Error   string            `json:"error"`
	Details []core.FieldError `json:"details,omitempty"`
}
