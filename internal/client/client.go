// Package client is an HTTP client for the notes API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"notes-server/internal/domain"
)

const DefaultBaseURL = "http://127.0.0.1:3000"

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d", e.StatusCode)
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *Client) ListNotes(ctx context.Context) ([]*domain.Note, error) {
	var notes []*domain.Note
	if err := c.do(ctx, http.MethodGet, "/notes", nil, &notes); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

func (c *Client) CreateNote(ctx context.Context, title, content string) (*domain.Note, error) {
	var note domain.Note
	body := &domain.NoteInput{Title: title, Content: content}
	if err := c.do(ctx, http.MethodPost, "/notes", body, &note); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}
	return &note, nil
}

func (c *Client) GetNote(ctx context.Context, id int64) (*domain.Note, error) {
	var note domain.Note
	if err := c.do(ctx, http.MethodGet, notePath(id), nil, &note); err != nil {
		return nil, fmt.Errorf("get note %d: %w", id, err)
	}
	return &note, nil
}

func (c *Client) UpdateNote(ctx context.Context, id int64, title, content string) (*domain.Note, error) {
	var note domain.Note
	body := &domain.NoteInput{Title: title, Content: content}
	if err := c.do(ctx, http.MethodPut, notePath(id), body, &note); err != nil {
		return nil, fmt.Errorf("update note %d: %w", id, err)
	}
	return &note, nil
}

func (c *Client) DeleteNote(ctx context.Context, id int64) (*domain.Note, error) {
	var resp domain.DeleteNoteResponse
	if err := c.do(ctx, http.MethodDelete, notePath(id), nil, &resp); err != nil {
		return nil, fmt.Errorf("delete note %d: %w", id, err)
	}
	return resp.Note, nil
}

func notePath(id int64) string {
	return fmt.Sprintf("/notes/%d", id)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errBody struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err == nil {
			apiErr.Message = errBody.Error
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
