package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/routinely/routinely/internal/server"
	"github.com/routinely/routinely/internal/tracker"
	"github.com/routinely/routinely/pkg/habit"
)

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(base string) *Client {
	return &Client{
		BaseURL: base,
		HTTP:    http.DefaultClient,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) (int, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return 0, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, &buf)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.HTTP.Do(req)
	if err != nil {
		return 0, err
	}
	defer res.Body.Close()

	if out != nil && res.StatusCode < 300 {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return res.StatusCode, err
		}
	}
	return res.StatusCode, nil
}

func (c *Client) ListHabits(ctx context.Context) ([]habit.Habit, error) {
	var resp server.HabitListResponse
	code, err := c.do(ctx, http.MethodGet, "/habits", nil, &resp)
	if err != nil {
		return nil, err
	}
	if code != http.StatusOK {
		return nil, fmt.Errorf("list habits: status %d", code)
	}
	return resp.Habits, nil
}

func (c *Client) CreateHabit(ctx context.Context, in tracker.HabitInput) (*habit.Habit, error) {
	var created habit.Habit
	code, err := c.do(ctx, http.MethodPost, "/habits", in, &created)
	if err != nil {
		return nil, err
	}
	if code != http.StatusCreated {
		return nil, fmt.Errorf("create habit: status %d", code)
	}
	return &created, nil
}

func (c *Client) UpdateHabit(ctx context.Context, id string, in tracker.HabitInput) (*habit.Habit, error) {
	var updated habit.Habit
	code, err := c.do(ctx, http.MethodPut, "/habits/"+id, in, &updated)
	if err != nil {
		return nil, err
	}
	if code != http.StatusOK {
		return nil, fmt.Errorf("update habit %s: status %d", id, code)
	}
	return &updated, nil
}

func (c *Client) RemoveHabit(ctx context.Context, id string) error {
	code, err := c.do(ctx, http.MethodDelete, "/habits/"+id, nil, nil)
	if err != nil {
		return err
	}
	if code != http.StatusNoContent {
		return fmt.Errorf("remove habit %s: status %d", id, code)
	}
	return nil
}

// CompleteHabit records a completion. A nil reward with a nil error
// means the server rejected the request as a no-op (already completed
// today or not a due day).
func (c *Client) CompleteHabit(ctx context.Context, id string, value *float64) (*habit.Reward, error) {
	var body any
	if value != nil {
		body = server.CompleteRequest{Value: value}
	}
	var reward habit.Reward
	code, err := c.do(ctx, http.MethodPost, "/habits/"+id+"/completions", body, &reward)
	if err != nil {
		return nil, err
	}
	switch code {
	case http.StatusOK:
		return &reward, nil
	case http.StatusConflict:
		return nil, nil
	default:
		return nil, fmt.Errorf("complete habit %s: status %d", id, code)
	}
}

func (c *Client) ListCompletions(ctx context.Context) ([]habit.Completion, error) {
	var resp server.CompletionLogResponse
	code, err := c.do(ctx, http.MethodGet, "/completions", nil, &resp)
	if err != nil {
		return nil, err
	}
	if code != http.StatusOK {
		return nil, fmt.Errorf("list completions: status %d", code)
	}
	return resp.Completions, nil
}

func (c *Client) GetSummary(ctx context.Context) (*server.SummaryResponse, error) {
	var resp server.SummaryResponse
	code, err := c.do(ctx, http.MethodGet, "/summary", nil, &resp)
	if err != nil {
		return nil, err
	}
	if code != http.StatusOK {
		return nil, fmt.Errorf("summary: status %d", code)
	}
	return &resp, nil
}

func (c *Client) ResetState(ctx context.Context) error {
	code, err := c.do(ctx, http.MethodDelete, "/state", nil, nil)
	if err != nil {
		return err
	}
	if code != http.StatusNoContent {
		return fmt.Errorf("reset state: status %d", code)
	}
	return nil
}
