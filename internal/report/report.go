// Package report renders schedule results as plain-text Gantt charts and
// tables.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"

	"github.com/olekukonko/tablewriter"
)

var titles = map[string]string{
	"fcfs":        "First Come First Serve (FCFS)",
	"sjf":         "Shortest Job First (SJF, non-preemptive)",
	"priority":    "Priority Scheduling (non-preemptive)",
	"round_robin": "Round Robin",
}

// Title returns the display name of an algorithm selector.
func Title(algorithm string) string {
	if t, ok := titles[algorithm]; ok {
		return t
	}
	return algorithm
}

func scheduleTitle(resp responses.ScheduleResponse) string {
	title := Title(resp.Algorithm)
	if resp.TimeQuantum > 0 {
		title = fmt.Sprintf("%s (time quantum: %d)", title, resp.TimeQuantum)
	}
	return title
}

// RenderSchedule writes the Gantt chart, the per-process table and the
// averages of one run.
func RenderSchedule(w io.Writer, resp responses.ScheduleResponse) {
	title := scheduleTitle(resp)
	_, _ = fmt.Fprintln(w, title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", max(len(title), 50)))

	_, _ = fmt.Fprintln(w, "Gantt chart:")
	_, _ = fmt.Fprintln(w, GanttLine(resp.Gantt))
	if bar := GanttBar(resp.Gantt); bar != "" {
		_, _ = fmt.Fprintln(w, bar)
	}
	_, _ = fmt.Fprintln(w)

	_, _ = fmt.Fprintln(w, "Process execution details:")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Arrival", "Burst", "Priority", "Start", "Complete", "Turnaround", "Waiting"})
	table.SetAutoFormatHeaders(false)
	for _, d := range resp.Details {
		table.Append([]string{
			"P" + strconv.Itoa(d.ProcessId),
			strconv.Itoa(d.ArrivalTime),
			strconv.Itoa(d.BurstTime),
			strconv.Itoa(d.Priority),
			strconv.Itoa(d.StartTime),
			strconv.Itoa(d.CompletionTime),
			formatTime(d.TurnAroundTime),
			formatTime(d.WaitingTime),
		})
	}
	table.SetFooter([]string{"", "", "", "", "", "Average",
		fmt.Sprintf("%.2f", resp.AverageTurnAroundTime),
		fmt.Sprintf("%.2f", resp.AverageWaitingTime)})
	table.Render()

	_, _ = fmt.Fprintf(w, "Average turnaround time: %.2f\n", resp.AverageTurnAroundTime)
	_, _ = fmt.Fprintf(w, "Average waiting time: %.2f\n", resp.AverageWaitingTime)
	_, _ = fmt.Fprintf(w, "Average response time: %.2f\n", resp.AverageResponseTime)
	_, _ = fmt.Fprintf(w, "Total time: %s, idle: %s, utilization: %.2f%%, throughput: %.2f/t, context switches: %d\n\n",
		formatTime(resp.TotalTime), formatTime(resp.IdleTime), resp.CpuUtilization*100, resp.CpuThroughput, resp.ContextSwitches)
}

// GanttLine formats segments as "P1[0-4] P2[4-7]".
func GanttLine(gantt []core.GanttSegment) string {
	if len(gantt) == 0 {
		return "(empty)"
	}
	parts := make([]string, 0, len(gantt))
	for _, seg := range gantt {
		parts = append(parts, seg.String())
	}
	return strings.Join(parts, " ")
}

// GanttBar draws the segments as boxes with their boundaries underneath. Idle
// gaps are drawn as "idle" boxes.
func GanttBar(gantt []core.GanttSegment) string {
	if len(gantt) == 0 {
		return ""
	}
	const cell = 8

	var bar, axis strings.Builder
	bar.WriteString("|")
	clock := gantt[0].Start
	axis.WriteString(padRight(strconv.Itoa(clock), cell+1))

	box := func(label string, end int) {
		pad := max(cell-len(label), 0)
		bar.WriteString(strings.Repeat(" ", pad/2) + label + strings.Repeat(" ", pad-pad/2) + "|")
		axis.WriteString(padRight(strconv.Itoa(end), cell+1))
	}
	for _, seg := range gantt {
		if seg.Start > clock {
			box("idle", seg.Start)
		}
		box("P"+strconv.Itoa(seg.Pid), seg.End)
		clock = seg.End
	}
	return bar.String() + "\n" + strings.TrimRight(axis.String(), " ")
}

// RenderJobs writes the shared input table.
func RenderJobs(w io.Writer, jobs []core.Descriptor) {
	_, _ = fmt.Fprintln(w, "Test processes:")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Arrival", "Burst", "Priority"})
	table.SetAutoFormatHeaders(false)
	for _, j := range jobs {
		table.Append([]string{
			"P" + strconv.Itoa(j.Pid),
			strconv.Itoa(j.ArrivalTime),
			strconv.Itoa(j.BurstTime),
			strconv.Itoa(j.Priority),
		})
	}
	table.Render()
	_, _ = fmt.Fprintln(w)
}

// RenderComparison writes the input table, every policy report and a summary.
func RenderComparison(w io.Writer, cmp responses.CompareResponse) {
	banner := strings.Repeat("=", 70)
	_, _ = fmt.Fprintln(w, banner)
	_, _ = fmt.Fprintln(w, "CPU SCHEDULING ALGORITHMS COMPARISON")
	_, _ = fmt.Fprintln(w, banner)
	if cmp.RunId != "" {
		_, _ = fmt.Fprintf(w, "Run: %s\n", cmp.RunId)
	}
	RenderJobs(w, cmp.Jobs)

	for _, resp := range cmp.Results {
		RenderSchedule(w, resp)
	}

	_, _ = fmt.Fprintln(w, "Summary:")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg turnaround", "Avg waiting", "Avg response", "Utilization", "Context switches"})
	table.SetAutoFormatHeaders(false)
	for _, resp := range cmp.Results {
		table.Append([]string{
			scheduleTitle(resp),
			fmt.Sprintf("%.2f", resp.AverageTurnAroundTime),
			fmt.Sprintf("%.2f", resp.AverageWaitingTime),
			fmt.Sprintf("%.2f", resp.AverageResponseTime),
			fmt.Sprintf("%.2f%%", resp.CpuUtilization*100),
			strconv.Itoa(resp.ContextSwitches),
		})
	}
	table.Render()
}

func formatTime(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-len(s))
}
