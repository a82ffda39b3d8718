// Package client implements the session-side half of the portal's
// notification pipeline: a durable API consumer, an in-memory
// notification store, and a cross-tab broadcast relay.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Notification is the client-resident view of a notification. Server
// rows and client-synthesized entries share this shape; only the id
// origin differs.
type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Category  string    `json:"category"`
	Priority  string    `json:"priority"`
	Link      string    `json:"link,omitempty"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// API is the durable notification endpoint surface the Store mutates
// against.
type API interface {
	List(ctx context.Context) ([]Notification, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
	Delete(ctx context.Context, id string) error
	ClearAll(ctx context.Context) error
}

// HTTPAPI talks to the portal's notification routes with a bearer token.
type HTTPAPI struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewHTTPAPI(baseURL, token string) *HTTPAPI {
	return &HTTPAPI{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (a *HTTPAPI) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+a.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		resp.Body.Close()
		return nil, fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}
	return resp, nil
}

func (a *HTTPAPI) List(ctx context.Context) ([]Notification, error) {
	resp, err := a.do(ctx, http.MethodGet, "/api/notifications", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload struct {
		Data []Notification `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	return payload.Data, nil
}

func (a *HTTPAPI) MarkRead(ctx context.Context, id string) error {
	resp, err := a.do(ctx, http.MethodPut, "/api/notifications/"+id+"/read", nil)
	if err != nil {
		return err
	}
	return resp.Body.Close()
}

func (a *HTTPAPI) MarkAllRead(ctx context.Context) error {
	resp, err := a.do(ctx, http.MethodPut, "/api/notifications/read-all", nil)
	if err != nil {
		return err
	}
	return resp.Body.Close()
}

func (a *HTTPAPI) Delete(ctx context.Context, id string) error {
	resp, err := a.do(ctx, http.MethodDelete, "/api/notifications/"+id, nil)
	if err != nil {
		return err
	}
	return resp.Body.Close()
}

func (a *HTTPAPI) ClearAll(ctx context.Context) error {
	resp, err := a.do(ctx, http.MethodDelete, "/api/notifications/clear-all", nil)
	if err != nil {
		return err
	}
	return resp.Body.Close()
}
