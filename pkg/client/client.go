// Package client is a typed HTTP client for the notes REST API.
package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

// Category is a category as returned by the API.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Note is a note as returned by the API.
type Note struct {
	ID         int64      `json:"id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	IsArchived bool       `json:"isArchived"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
	Categories []Category `json:"categories"`
}

// RenderedNote is a note body converted to HTML.
type RenderedNote struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	HTML  string `json:"html"`
}

// CategoryRef points at a category by id or by name.
type CategoryRef struct {
	ID   *int64  `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
}

// RefByID returns a CategoryRef for an existing category.
func RefByID(id int64) CategoryRef { return CategoryRef{ID: &id} }

// RefByName returns a CategoryRef that binds or creates a category by name.
func RefByName(name string) CategoryRef { return CategoryRef{Name: &name} }

// CreateNote is the body of POST /notes.
type CreateNote struct {
	Title      string        `json:"title"`
	Content    string        `json:"content"`
	IsArchived *bool         `json:"isArchived,omitempty"`
	Categories []CategoryRef `json:"categories,omitempty"`
}

// UpdateNote is the body of PATCH /notes/{id}. Nil fields are left unchanged;
// a non-nil Categories replaces the note's categories, an empty slice clears them.
type UpdateNote struct {
	Title      *string        `json:"title,omitempty"`
	Content    *string        `json:"content,omitempty"`
	IsArchived *bool          `json:"isArchived,omitempty"`
	Categories *[]CategoryRef `json:"categories,omitempty"`
}

// ListNotes filters GET /notes.
type ListNotes struct {
	Archived   *bool
	CategoryID *int64
}

// FieldError is a single invalid field reported by the API.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int          `json:"-"`
	Message    string       `json:"error"`
	Fields     []FieldError `json:"fields,omitempty"`
}

func (e *APIError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api: %d %s: %s: %s", e.StatusCode, e.Message, e.Fields[0].Field, e.Fields[0].Message)
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsValidation reports whether err is a 400 from the API.
func IsValidation(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusBadRequest
}

// Client talks to a notes server.
type Client struct {
	http *resty.Client
}

// Option configures a Client.
type Option func(*resty.Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *resty.Client) { c.SetTimeout(d) }
}

// WithHTTPClient replaces the underlying transport client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *resty.Client) {
		c.SetTransport(hc.Transport)
		if hc.Timeout > 0 {
			c.SetTimeout(hc.Timeout)
		}
	}
}

// WithRetries retries GET requests on transport errors and 5xx responses.
// Writes are sent once; the caller decides whether to resubmit them.
func WithRetries(count int, wait time.Duration) Option {
	return func(c *resty.Client) {
		c.SetRetryCount(count).
			SetRetryWaitTime(wait).
			AddRetryCondition(retryableRead)
	}
}

func retryableRead(r *resty.Response, err error) bool {
	if r == nil || r.Request == nil || r.Request.Method != http.MethodGet {
		return false
	}
	return err != nil || r.StatusCode() >= http.StatusInternalServerError
}

// New creates a Client for the server at baseURL.
func New(baseURL string, opts ...Option) *Client {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(10 * time.Second)
	for _, opt := range opts {
		opt(rc)
	}
	return &Client{http: rc}
}

func (c *Client) request(ctx context.Context) *resty.Request {
	return c.http.R().SetContext(ctx).SetError(&APIError{})
}

func (c *Client) send(req *resty.Request, method, path string) error {
	res, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if !res.IsError() {
		return nil
	}

	apiErr, ok := res.Error().(*APIError)
	if !ok || apiErr.Message == "" {
		apiErr = &APIError{Message: http.StatusText(res.StatusCode())}
	}
	apiErr.StatusCode = res.StatusCode()
	return apiErr
}

// ListNotes returns notes matching f, most recently updated first.
func (c *Client) ListNotes(ctx context.Context, f ListNotes) ([]Note, error) {
	var out []Note
	req := c.request(ctx).SetResult(&out)
	if f.Archived != nil {
		req.SetQueryParam("archived", strconv.FormatBool(*f.Archived))
	}
	if f.CategoryID != nil {
		req.SetQueryParam("category", strconv.FormatInt(*f.CategoryID, 10))
	}
	if err := c.send(req, http.MethodGet, "/notes"); err != nil {
		return nil, err
	}
	return out, nil
}

// GetNote returns a single note.
func (c *Client) GetNote(ctx context.Context, id int64) (*Note, error) {
	var out Note
	if err := c.send(c.request(ctx).SetResult(&out), http.MethodGet, notePath(id)); err != nil {
		return nil, err
	}
	return &out, nil
}

// RenderNote returns the note content rendered as HTML.
func (c *Client) RenderNote(ctx context.Context, id int64) (*RenderedNote, error) {
	var out RenderedNote
	if err := c.send(c.request(ctx).SetResult(&out), http.MethodGet, notePath(id)+"/rendered"); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateNote creates a note.
func (c *Client) CreateNote(ctx context.Context, in CreateNote) (*Note, error) {
	var out Note
	if err := c.send(c.request(ctx).SetBody(in).SetResult(&out), http.MethodPost, "/notes"); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateNote applies a partial update.
func (c *Client) UpdateNote(ctx context.Context, id int64, in UpdateNote) (*Note, error) {
	var out Note
	if err := c.send(c.request(ctx).SetBody(in).SetResult(&out), http.MethodPatch, notePath(id)); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteNote removes a note.
func (c *Client) DeleteNote(ctx context.Context, id int64) error {
	return c.send(c.request(ctx), http.MethodDelete, notePath(id))
}

// ListCategories returns all categories in creation order.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var out []Category
	if err := c.send(c.request(ctx).SetResult(&out), http.MethodGet, "/categories"); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateCategory creates a category.
func (c *Client) CreateCategory(ctx context.Context, name string) (*Category, error) {
	var out Category
	body := map[string]string{"name": name}
	if err := c.send(c.request(ctx).SetBody(body).SetResult(&out), http.MethodPost, "/categories"); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCategory removes a category and its note links.
func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	return c.send(c.request(ctx), http.MethodDelete, "/categories/"+strconv.FormatInt(id, 10))
}

func notePath(id int64) string {
	return "/notes/" + strconv.FormatInt(id, 10)
}
