// Package api is the HTTP client for the SWEeM backend. The backend is
// treated as opaque: the client speaks plain JSON over REST and surfaces
// failures as *Error values for the UI's log/popup machinery.
package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"sweem/internal/model"
)

// DefaultBaseURL matches the backend's development listen address.
const DefaultBaseURL = "http://localhost:5094"

const defaultTimeout = 30 * time.Second

// listPageSize is the page size used when draining all pages of a listing.
const listPageSize = 100

type Client struct {
	http    *http.Client
	baseURL string
}

func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

// Health probes the backend with a minimal listing request.
func (c *Client) Health(ctx context.Context) bool {
	_, err := c.Projects(ctx, 1, 1)
	return err == nil
}

// Projects fetches one page of projects.
func (c *Client) Projects(ctx context.Context, page, pageSize int) (model.Page[model.Project], error) {
	return fetchPage[model.Project](ctx, c, "/projects", page, pageSize)
}

// AllProjects drains every page of the projects listing.
func (c *Client) AllProjects(ctx context.Context) ([]model.Project, error) {
	return fetchAll[model.Project](ctx, c, "/projects")
}

func (c *Client) CreateProject(ctx context.Context, draft model.ProjectDraft) (uuid.UUID, error) {
	return c.create(ctx, "/projects", draft)
}

func (c *Client) UpdateProject(ctx context.Context, id uuid.UUID, draft model.ProjectDraft) (model.Project, error) {
	var out model.Project
	err := c.do(ctx, http.MethodPut, "/projects/"+id.String(), draft, &out)
	return out, err
}

func (c *Client) DeleteProject(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/projects/"+id.String(), nil, nil)
}

// Clients fetches one page of clients.
func (c *Client) Clients(ctx context.Context, page, pageSize int) (model.Page[model.Client], error) {
	return fetchPage[model.Client](ctx, c, "/clients", page, pageSize)
}

func (c *Client) AllClients(ctx context.Context) ([]model.Client, error) {
	return fetchAll[model.Client](ctx, c, "/clients")
}

func (c *Client) CreateClient(ctx context.Context, draft model.ClientDraft) (uuid.UUID, error) {
	return c.create(ctx, "/clients", draft)
}

func (c *Client) UpdateClient(ctx context.Context, id uuid.UUID, draft model.ClientDraft) (model.Client, error) {
	var out model.Client
	err := c.do(ctx, http.MethodPut, "/clients/"+id.String(), draft, &out)
	return out, err
}

func (c *Client) DeleteClient(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/clients/"+id.String(), nil, nil)
}

// Users fetches one page of users.
func (c *Client) Users(ctx context.Context, page, pageSize int) (model.Page[model.User], error) {
	return fetchPage[model.User](ctx, c, "/users", page, pageSize)
}

func (c *Client) AllUsers(ctx context.Context) ([]model.User, error) {
	return fetchAll[model.User](ctx, c, "/users")
}

func (c *Client) CreateUser(ctx context.Context, draft model.UserDraft) (uuid.UUID, error) {
	return c.create(ctx, "/users", draft)
}

func (c *Client) UpdateUser(ctx context.Context, id uuid.UUID, draft model.UserDraft) (model.User, error) {
	var out model.User
	err := c.do(ctx, http.MethodPut, "/users/"+id.String(), draft, &out)
	return out, err
}

func (c *Client) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/users/"+id.String(), nil, nil)
}

func (c *Client) create(ctx context.Context, path string, body any) (uuid.UUID, error) {
	var id uuid.UUID
	err := c.do(ctx, http.MethodPost, path, body, &id)
	return id, err
}

func fetchPage[T any](ctx context.Context, c *Client, path string, page, pageSize int) (model.Page[T], error) {
	var out model.Page[T]
	url := fmt.Sprintf("%s?page=%d&pageSize=%d", path, page, pageSize)
	err := c.do(ctx, http.MethodGet, url, nil, &out)
	return out, err
}

func fetchAll[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var all []T
	for page := 1; ; page++ {
		result, err := fetchPage[T](ctx, c, path, page, listPageSize)
		if err != nil {
			return nil, err
		}
		all = append(all, result.Items...)
		if !result.HasNext {
			return all, nil
		}
	}
}

// do performs one request. body and out may be nil; non-2xx responses come
// back as *Error.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
