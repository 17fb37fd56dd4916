package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// Client talks to a running `cpu-scheduler serve`.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

func NewClient(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{},
		Logger:     logger,
	}
}

// RemoteError is a non-2xx answer from the server.
type RemoteError struct {
	StatusCode int
	Message    string
	Details    []core.FieldError
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

var endpoints = map[string]string{
	"fcfs":        "/api/v1/fcfs",
	"sjf":         "/api/v1/sjf",
	"priority":    "/api/v1/priority",
	"round_robin": "/api/v1/rr",
	"rr":          "/api/v1/rr",
	"all":         "/api/v1/all",
}

func endpointFor(policy string) (string, error) {
	path, ok := endpoints[strings.ToLower(policy)]
	if !ok {
		return "", fmt.Errorf("%w: %q", core.ErrUnknownPolicy, policy)
	}
	return path, nil
}

func (c *Client) Schedule(policy string, request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	var out responses.ScheduleResponse
	path, err := endpointFor(policy)
	if err != nil {
		return out, err
	}
	err = c.post(path, request, &out)
	return out, err
}

func (c *Client) Compare(request *requests.ScheduleRequests) (responses.CompareResponse, error) {
	var out responses.CompareResponse
	err := c.post(endpoints["all"], request, &out)
	return out, err
}

func (c *Client) post(path string, body, out any) error {
	url := c.BaseURL + path

	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.Logger.Debug("HTTP request", "method", http.MethodPost, "url", url)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	c.Logger.Debug("HTTP response", "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr responses.ErrorResponse
		if err := json.Unmarshal(respBody, &apiErr); err != nil || apiErr.Error == "" {
			apiErr.Error = strings.TrimSpace(string(respBody))
		}
		return &RemoteError{StatusCode: resp.StatusCode, Message: apiErr.Error, Details: apiErr.Details}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("parse response (status %d): %w", resp.StatusCode, err)
	}
	return nil
}
