// Package media implements the Media Service client: the backend HTTP
// surface that brokers file storage and all task mutations other than
// record deletion.
//
// Every endpoint is mounted under <base>/media, so the file-serving
// endpoint doubles as the proxy URL used directly as an image source.
package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/wasif-mahmood1/Todo-app/internal/httpapi"
	internalstrings "github.com/wasif-mahmood1/Todo-app/internal/strings"
	"github.com/wasif-mahmood1/Todo-app/task"
)

// Client calls the Media Service.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a client for the given address or URL.
func NewClient(addr string) *Client {
	baseURL := internalstrings.TrimTrailingSlash(addr)
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "http://" + baseURL
	}
	return &Client{baseURL: baseURL, client: &http.Client{}}
}

// BaseURL returns the normalized backend base address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// CreateResult is the upload response: either the stored row itself or
// a bare storage reference for the caller to synthesize a task from.
type CreateResult struct {
	Todo *task.Task `json:"todo"`
	Path string     `json:"path"`
	URL  string     `json:"url"`
}

// CheckReachability probes the service. Any HTTP status counts as
// reachable; only a transport failure is an error.
func (c *Client) CheckReachability(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/media/reachability-check", nil)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// Create uploads a new task with an optional image attachment. The
// text travels as the multipart "task" field, the attachment as "file".
func (c *Client) Create(ctx context.Context, text string, file io.Reader, filename string) (*CreateResult, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if err := writer.WriteField("task", text); err != nil {
		return nil, err
	}
	if file != nil {
		part, err := writer.CreateFormFile("file", filename)
		if err != nil {
			return nil, err
		}
		if _, err := io.Copy(part, file); err != nil {
			return nil, fmt.Errorf("read attachment: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/media", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, httpapi.Decode("upload task", resp)
	}

	var result CreateResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode upload response: %w", err)
	}
	return &result, nil
}

// UpdateText replaces the text of an existing task.
func (c *Client) UpdateText(ctx context.Context, id int64, text string) error {
	payload, err := json.Marshal(map[string]string{"task": text})
	if err != nil {
		return err
	}
	target := fmt.Sprintf("%s/media/%d", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, target, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return httpapi.Decode("update task", resp)
	}
	return nil
}

// Toggle flips a task's completion state and returns the resulting
// value the server computed.
func (c *Client) Toggle(ctx context.Context, id int64) (bool, error) {
	target := fmt.Sprintf("%s/media/toggle/%d", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, target, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return false, httpapi.Decode("toggle task", resp)
	}

	var result struct {
		Completed bool `json:"is_completed"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, fmt.Errorf("decode toggle response: %w", err)
	}
	return result.Completed, nil
}

// DeleteFile removes a stored file by key.
func (c *Client) DeleteFile(ctx context.Context, key string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.FileURL(key), nil)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return httpapi.Decode("delete file", resp)
	}
	return nil
}

// StatFile probes a stored file's existence without fetching it.
func (c *Client) StatFile(ctx context.Context, key string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.FileURL(key), nil)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return &httpapi.Error{Op: "stat file", Status: resp.StatusCode}
	}
	return nil
}

// FileURL returns the proxy fetch URL for a stored file key, suitable
// for use directly as an image source.
func (c *Client) FileURL(key string) string {
	return task.ProxyURL(c.baseURL, key)
}
