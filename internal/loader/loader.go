// Package loader reads job descriptors from CSV, YAML or JSON files and
// generates random workloads.
package loader

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cpu-scheduler/internal/requests"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

var ErrUnsupportedFormat = errors.New("unsupported input format")

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

func Load(path string) (*requests.ScheduleRequests, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open jobs file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	req, err := Parse(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return req, nil
}

func Parse(r io.Reader, format Format) (*requests.ScheduleRequests, error) {
	switch format {
	case FormatCSV:
		return parseCSV(r)
	case FormatYAML:
		var req requests.ScheduleRequests
		if err := yaml.NewDecoder(r).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		return &req, nil
	case FormatJSON:
		var req requests.ScheduleRequests
		if err := json.NewDecoder(r).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		return &req, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// parseCSV reads rows of pid,arrival,burst[,priority]. A first row with no
// numeric field is a header and is skipped; '#' starts a comment line.
func parseCSV(r io.Reader) (*requests.ScheduleRequests, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	req := &requests.ScheduleRequests{Jobs: make([]requests.Job, 0, len(rows))}
	for i, row := range rows {
		if i == 0 && isHeader(row) {
			continue
		}
		if len(row) != 3 && len(row) != 4 {
			return nil, fmt.Errorf("csv line %d: expected 3 or 4 fields, got %d", i+1, len(row))
		}
		values := make([]int, len(row))
		for j, field := range row {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("csv line %d field %d: %w", i+1, j+1, err)
			}
			values[j] = v
		}
		job := requests.Job{ProcessId: values[0], ArrivalTime: values[1], BurstTime: values[2]}
		if len(values) == 4 {
			job.Priority = requests.Priority(values[3])
		}
		req.Jobs = append(req.Jobs, job)
	}
	return req, nil
}

func isHeader(row []string) bool {
	for _, field := range row {
		if _, err := strconv.Atoi(strings.TrimSpace(field)); err == nil {
			return false
		}
	}
	return len(row) > 0
}

// Generate builds n random jobs with arrival in [0,10], burst in [1,10] and
// priority in [1,5]. The same seed always yields the same jobs.
func Generate(n int, seed int64) *requests.ScheduleRequests {
	rng := rand.New(rand.NewSource(seed))
	req := &requests.ScheduleRequests{Jobs: make([]requests.Job, 0, max(n, 0))}
	for i := 0; i < n; i++ {
		req.Jobs = append(req.Jobs, requests.Job{
			ProcessId:   i + 1,
			ArrivalTime: rng.Intn(11),
			BurstTime:   1 + rng.Intn(10),
			Priority:    requests.Priority(1 + rng.Intn(5)),
		})
	}
	return req
}
