// Package records implements the Records Service client.
//
// The Records Service is the structured store holding the task rows.
// The client consumes exactly two operations: the creation-ordered list
// and record deletion. Every other mutation is routed through the Media
// Service so the backend can keep derived state consistent; that
// routing discipline is the sole contract.
package records

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/wasif-mahmood1/Todo-app/internal/httpapi"
	internalstrings "github.com/wasif-mahmood1/Todo-app/internal/strings"
	"github.com/wasif-mahmood1/Todo-app/task"
)

const tablePath = "/rest/v1/todos"

// Client calls the Records Service REST surface.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewClient creates a client for the given address or URL. The API key
// may be empty when the store does not require one.
func NewClient(addr, apiKey string) *Client {
	baseURL := internalstrings.TrimTrailingSlash(addr)
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "http://" + baseURL
	}
	return &Client{baseURL: baseURL, apiKey: apiKey, client: &http.Client{}}
}

// List returns all tasks ordered ascending by creation time.
func (c *Client) List(ctx context.Context) ([]task.Task, error) {
	target := c.baseURL + tablePath + "?select=*&order=created_at.asc"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	c.authorize(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, httpapi.Decode("list tasks", resp)
	}

	var tasks []task.Task
	if err := json.NewDecoder(resp.Body).Decode(&tasks); err != nil {
		return nil, fmt.Errorf("decode task list: %w", err)
	}
	return tasks, nil
}

// Delete removes the task row with the given id. Deleting a row that
// does not exist is not an error on this surface.
func (c *Client) Delete(ctx context.Context, id int64) error {
	target := fmt.Sprintf("%s%s?id=eq.%d", c.baseURL, tablePath, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, target, nil)
	if err != nil {
		return err
	}
	c.authorize(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return httpapi.Decode("delete task", resp)
	}
	return nil
}

func (c *Client) authorize(req *http.Request) {
	if c.apiKey == "" {
		return
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
}
