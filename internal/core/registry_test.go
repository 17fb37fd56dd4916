package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry_Validation(t *testing.T) {
	tests := []struct {
		name   string
		descs  []Descriptor
		fields []string
	}{
		{
			name:  "valid",
			descs: []Descriptor{{Pid: 1, ArrivalTime: 0, BurstTime: 3, Priority: 1}},
		},
		{
			name:  "empty input is not an error",
			descs: nil,
		},
		{
			name:   "negative arrival",
			descs:  []Descriptor{{Pid: 1, ArrivalTime: -1, BurstTime: 3}},
			fields: []string{"arrival_time"},
		},
		{
			name:   "zero burst",
			descs:  []Descriptor{{Pid: 1, BurstTime: 0}},
			fields: []string{"burst_time"},
		},
		{
			name:   "duplicate pid",
			descs:  []Descriptor{{Pid: 1, BurstTime: 1}, {Pid: 1, BurstTime: 2}},
			fields: []string{"pid"},
		},
		{
			name:   "non positive pid and negative burst",
			descs:  []Descriptor{{Pid: 0, BurstTime: -2}},
			fields: []string{"pid", "burst_time"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, err := NewRegistry(tt.descs)
			if len(tt.fields) == 0 {
				require.NoError(t, err)
				assert.Equal(t, len(tt.descs), reg.Len())
				return
			}
			require.Error(t, err)
			assert.Nil(t, reg)
			assert.True(t, errors.Is(err, ErrInvalidInput))
			assert.True(t, IsValidation(err))

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			var got []string
			for _, d := range verr.Details {
				got = append(got, d.Field)
			}
			assert.Equal(t, tt.fields, got)
		})
	}
}

func TestRegistry_SnapshotIsFresh(t *testing.T) {
	reg, err := NewRegistry([]Descriptor{
		{Pid: 2, ArrivalTime: 1, BurstTime: 3, Priority: 1},
		{Pid: 3, ArrivalTime: 0, BurstTime: 2, Priority: 1},
		{Pid: 1, ArrivalTime: 1, BurstTime: 4, Priority: 1},
	})
	require.NoError(t, err)

	first := reg.Snapshot()
	require.Len(t, first, 3)
	assert.Equal(t, []int{3, 1, 2}, []int{first[0].Pid, first[1].Pid, first[2].Pid})

	first[0].Execute(0, 2)
	second := reg.Snapshot()
	assert.Equal(t, Ready, second[0].State)
	assert.Equal(t, 2, second[0].RemainingTime)

	descs := reg.Descriptors()
	assert.Equal(t, 2, descs[0].Pid, "descriptors keep registration order")
}

func TestValidationError_Message(t *testing.T) {
	err := NewConfigurationError("round robin needs a quantum", FieldError{Field: "time_quantum", Message: "must be positive"})
	assert.Equal(t, "invalid configuration: round robin needs a quantum (time_quantum must be positive)", err.Error())
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))
}
