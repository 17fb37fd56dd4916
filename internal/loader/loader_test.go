package loader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_CSV(t *testing.T) {
	input := `pid,arrival,burst,priority
# idle job
1, 0, 4
2, 1, 3, 2
`
	req, err := Parse(strings.NewReader(input), FormatCSV)
	require.NoError(t, err)

	assert.Equal(t, []core.Descriptor{
		{Pid: 1, ArrivalTime: 0, BurstTime: 4, Priority: core.DefaultPriority},
		{Pid: 2, ArrivalTime: 1, BurstTime: 3, Priority: 2},
	}, req.Descriptors())
}

func TestParse_CSVErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "too few fields", input: "1,0\n"},
		{name: "not a number", input: "1,0,4\n2,x,3\n"},
		{name: "malformed first row", input: "P1,0,4\n2,1,3\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input), FormatCSV)
			assert.Error(t, err)
		})
	}
}

func TestParse_YAML(t *testing.T) {
	input := `
time_quantum: 3
jobs:
  - pid: 1
    arrival_time: 0
    burst_time: 4
  - pid: 2
    arrival_time: 1
    burst_time: 3
    priority: 0
`
	req, err := Parse(strings.NewReader(input), FormatYAML)
	require.NoError(t, err)

	require.NotNil(t, req.TimeQuantum)
	assert.Equal(t, 3, *req.TimeQuantum)
	assert.Equal(t, []core.Descriptor{
		{Pid: 1, ArrivalTime: 0, BurstTime: 4, Priority: 1},
		{Pid: 2, ArrivalTime: 1, BurstTime: 3, Priority: 0},
	}, req.Descriptors())
}

func TestParse_JSON(t *testing.T) {
	input := `{"jobs":[{"process_id":5,"arrival_time":2,"burst_time":1,"priority":4}]}`
	req, err := Parse(strings.NewReader(input), FormatJSON)
	require.NoError(t, err)

	assert.Equal(t, []core.Descriptor{{Pid: 5, ArrivalTime: 2, BurstTime: 1, Priority: 4}}, req.Descriptors())
}

func TestParse_EmptyDocuments(t *testing.T) {
	for _, format := range []Format{FormatCSV, FormatYAML, FormatJSON} {
		req, err := Parse(strings.NewReader(""), format)
		require.NoError(t, err, format)
		assert.Empty(t, req.Jobs, format)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jobs.csv")
	require.NoError(t, os.WriteFile(path, []byte("1,0,4\n2,1,3\n"), 0o644))

	req, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, req.Jobs, 2)

	_, err = Load(filepath.Join(dir, "jobs.txt"))
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestGenerate(t *testing.T) {
	a := Generate(20, 11)
	b := Generate(20, 11)
	assert.Equal(t, a, b)
	require.Len(t, a.Jobs, 20)

	for i, job := range a.Jobs {
		assert.Equal(t, i+1, job.ProcessId)
		assert.GreaterOrEqual(t, job.ArrivalTime, 0)
		assert.LessOrEqual(t, job.ArrivalTime, 10)
		assert.GreaterOrEqual(t, job.BurstTime, 1)
		assert.LessOrEqual(t, job.BurstTime, 10)
		require.NotNil(t, job.Priority)
		assert.GreaterOrEqual(t, *job.Priority, 1)
		assert.LessOrEqual(t, *job.Priority, 5)
	}
	_, err := core.NewRegistry(a.Descriptors())
	assert.NoError(t, err)

	assert.Empty(t, Generate(0, 1).Jobs)
	assert.Equal(t, &requests.ScheduleRequests{Jobs: []requests.Job{}}, Generate(-1, 1))
}
