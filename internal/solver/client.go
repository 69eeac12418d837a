// Package solver is the client for the remote shift-assignment service. The
// service is consumed as an opaque function: inputs in, schedule out. All
// transport and payload failures are normalized into *Error so callers deal
// with a single failure shape.
package solver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"staff-scheduler-backend/internal/model"
)

// ShiftPreference steers the solver between full-day and half-day shifts.
type ShiftPreference string

const (
	PreferFullDays ShiftPreference = "PRIORITIZE_FULL_DAYS"
	PreferHalfDays ShiftPreference = "PRIORITIZE_HALF_DAYS"
	PreferNone     ShiftPreference = "NONE"
)

// Request is the solver's input payload.
type Request struct {
	StaffList          []model.StaffMember    `json:"staffList"`
	UnavailabilityList []model.Unavailability `json:"unavailabilityList"`
	WeeklyNeeds        model.WeeklyNeeds      `json:"weeklyNeeds"`
	ShiftDefinitions   model.ShiftDefinitions `json:"shiftDefinitions"`
	ShiftPreference    ShiftPreference        `json:"shiftPreference"`
	StaffPriority      []string               `json:"staffPriority"`
}

// Response is the solver's output payload.
type Response struct {
	Success           bool           `json:"success"`
	Schedule          model.Schedule `json:"schedule"`
	Warnings          []string       `json:"warnings"`
	CalculationTimeMs float64        `json:"calculationTimeMs"`
	Message           string         `json:"message"`
}

// Error is the normalized failure shape for every solver call.
type Error struct {
	Message  string   `json:"message"`
	Warnings []string `json:"warnings,omitempty"`
}

func (e *Error) Error() string { return e.Message }

// Client calls the remote scheduling service.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a solver client for the given base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// Generate posts the scheduling inputs and returns the generated schedule.
// Failures of any kind come back as *Error.
func (c *Client) Generate(ctx context.Context, request Request) (*Response, error) {
	jsonBody, err := json.Marshal(request)
	if err != nil {
		return nil, &Error{Message: fmt.Sprintf("failed to encode scheduling request: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/schedule", bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, &Error{Message: fmt.Sprintf("failed to create scheduling request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &Error{Message: fmt.Sprintf("scheduling service unreachable: %v", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Message: fmt.Sprintf("failed to read scheduling response: %v", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		solveErr := &Error{Message: fmt.Sprintf("scheduling service returned status %d", resp.StatusCode)}
		var parsed Response
		if json.Unmarshal(body, &parsed) == nil {
			if parsed.Message != "" {
				solveErr.Message = parsed.Message
			}
			solveErr.Warnings = parsed.Warnings
		}
		return nil, solveErr
	}

	// A genuinely empty 2xx body means the solver had nothing to assign.
	if len(bytes.TrimSpace(body)) == 0 {
		return &Response{
			Success:  true,
			Schedule: model.Schedule{},
			Warnings: []string{"scheduling service returned an empty response"},
		}, nil
	}

	var parsed Response
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &Error{Message: "scheduling service returned a malformed response"}
	}

	if !parsed.Success {
		msg := parsed.Message
		if msg == "" {
			msg = "scheduling service reported a failure"
		}
		return nil, &Error{Message: msg, Warnings: parsed.Warnings}
	}

	if parsed.Schedule == nil {
		parsed.Schedule = model.Schedule{}
	}
	return &parsed, nil
}
