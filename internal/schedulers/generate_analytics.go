package schedulers

import (
	"sort"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/util"
)

func generateResponse(timeline *Timeline) responses.ScheduleResponse {
	proccessDetails := make([]responses.ProcessResponse, 0, len(timeline.Processes))
	completed := 0
	for _, p := range timeline.Processes {
		if !p.Done() {
			continue
		}
		completed++
		proccessDetails = append(proccessDetails, generateProcessDetails(p))
	}
	sort.Slice(proccessDetails, func(i, j int) bool {
		return proccessDetails[i].ProcessId < proccessDetails[j].ProcessId
	})

	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(proccessDetails)
	metric := timeline.Metric

	return responses.ScheduleResponse{
		Algorithm:             timeline.Algorithm,
		TotalTime:             float64(metric.TotalTime),
		IdleTime:              float64(metric.IdleTime),
		ContextSwitches:       metric.ContextSwitches,
		CpuUtilization:        metric.Utilization(),
		CpuThroughput:         metric.Throughput(completed),
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		Gantt:                 timeline.Gantt,
		Details:               proccessDetails,
	}
}

func generateProcessDetails(process *core.Process) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:      process.Pid,
		ArrivalTime:    process.ArrivalTime,
		BurstTime:      process.BurstTime,
		Priority:       process.Priority,
		StartTime:      process.StartTime,
		CompletionTime: process.CompletionTime,
		ResponseTime:   float64(process.ResponseTime()),
		TurnAroundTime: float64(process.TurnaroundTime()),
		WaitingTime:    float64(process.WaitingTime()),
	}
}
