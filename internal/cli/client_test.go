package cli

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T) *Client {
	t.Helper()
	c := NewClient("http://scheduler.test/", slog.New(slog.NewTextHandler(io.Discard, nil)))
	httpmock.ActivateNonDefault(c.HTTPClient)
	t.Cleanup(httpmock.DeactivateAndReset)
	return c
}

func TestClient_Schedule(t *testing.T) {
	c := testClient(t)
	httpmock.RegisterResponder(http.MethodPost, "http://scheduler.test/api/v1/rr",
		httpmock.NewJsonResponderOrPanic(http.StatusOK, responses.ScheduleResponse{Algorithm: "round_robin", TimeQuantum: 2}))

	got, err := c.Schedule("round_robin", &requests.ScheduleRequests{TimeQuantum: requests.Quantum(2)})
	require.NoError(t, err)
	assert.Equal(t, "round_robin", got.Algorithm)
	assert.Equal(t, 2, got.TimeQuantum)
}

func TestClient_Compare(t *testing.T) {
	c := testClient(t)
	httpmock.RegisterResponder(http.MethodPost, "http://scheduler.test/api/v1/all",
		httpmock.NewJsonResponderOrPanic(http.StatusOK, responses.CompareResponse{RunId: "abc"}))

	got, err := c.Compare(&requests.ScheduleRequests{})
	require.NoError(t, err)
	assert.Equal(t, "abc", got.RunId)
}

func TestClient_Errors(t *testing.T) {
	c := testClient(t)
	httpmock.RegisterResponder(http.MethodPost, "http://scheduler.test/api/v1/fcfs",
		httpmock.NewJsonResponderOrPanic(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "invalid input: rejected job descriptors",
			Details: []core.FieldError{{Pid: 1, Field: "burst_time", Message: "must be positive"}},
		}))
	httpmock.RegisterResponder(http.MethodPost, "http://scheduler.test/api/v1/sjf",
		httpmock.NewStringResponder(http.StatusBadGateway, "upstream down"))

	_, err := c.Schedule("fcfs", &requests.ScheduleRequests{})
	var remote *RemoteError
	require.True(t, errors.As(err, &remote))
	assert.Equal(t, http.StatusBadRequest, remote.StatusCode)
	require.Len(t, remote.Details, 1)
	assert.Equal(t, "burst_time", remote.Details[0].Field)

	_, err = c.Schedule("sjf", &requests.ScheduleRequests{})
	require.True(t, errors.As(err, &remote))
	assert.Equal(t, "upstream down", remote.Message)

	_, err = c.Schedule("lottery", &requests.ScheduleRequests{})
	assert.True(t, errors.Is(err, core.ErrUnknownPolicy))
}
