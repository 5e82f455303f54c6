// Package api is the HTTP client for the memorizer server's JSON API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/memorizer/internal/common"
)

// Text mirrors the server's JSON representation of a stored text.
type Text struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Content         string     `json:"content"`
	Tags            string     `json:"tags,omitempty"`
	UserID          string     `json:"userId"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
	LastPracticedAt *time.Time `json:"lastPracticedAt"`
}

// Client talks to the server API over HTTP. The session token obtained at
// login is kept in memory and sent as a bearer header.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// SetToken installs the session token used for authenticated calls.
func (c *Client) SetToken(token string) { c.token = token }

// Token returns the current session token ("" when logged out).
func (c *Client) Token() string { return c.token }

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return statusError(resp)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// statusError maps API status codes back onto the shared sentinel errors.
func statusError(resp *http.Response) error {
	var body struct {
		Message string `json:"message"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&body)

	switch resp.StatusCode {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", common.ErrorValidation, body.Message)
	case http.StatusUnauthorized:
		return common.ErrorUnauthorized
	case http.StatusForbidden:
		return common.ErrorForbidden
	case http.StatusNotFound:
		return common.ErrorNotFound
	case http.StatusConflict:
		return common.ErrorAlreadyExists
	default:
		return fmt.Errorf("%w: server returned %d", common.ErrorInternal, resp.StatusCode)
	}
}

// Register creates an account and returns the new user id.
func (c *Client) Register(ctx context.Context, name, email, password string) (string, error) {
	var out struct {
		UserID string `json:"userId"`
	}
	err := c.do(ctx, http.MethodPost, "/api/register",
		map[string]string{"name": name, "email": email, "password": password}, &out)
	if err != nil {
		return "", err
	}
	return out.UserID, nil
}

// Login authenticates and stores the returned session token on the client.
func (c *Client) Login(ctx context.Context, email, password string) error {
	var out struct {
		Token string `json:"token"`
	}
	err := c.do(ctx, http.MethodPost, "/api/login",
		map[string]string{"email": email, "password": password}, &out)
	if err != nil {
		return err
	}
	c.token = out.Token
	return nil
}

// Logout deletes the server-side session row and clears the stored token.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
	c.token = ""
	return err
}

// ListTexts returns the caller's texts, optionally filtered by a title
// search query.
func (c *Client) ListTexts(ctx context.Context, search string) ([]*Text, error) {
	path := "/api/texts"
	if search != "" {
		path += "?search=" + url.QueryEscape(search)
	}
	var out []*Text
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetText fetches a single text by id.
func (c *Client) GetText(ctx context.Context, id string) (*Text, error) {
	var out Text
	if err := c.do(ctx, http.MethodGet, "/api/texts/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateText stores a new text and returns its id.
func (c *Client) CreateText(ctx context.Context, title, content, tags string) (string, error) {
	var out struct {
		TextID string `json:"textId"`
	}
	err := c.do(ctx, http.MethodPost, "/api/texts/new",
		map[string]string{"title": title, "content": content, "tags": tags}, &out)
	if err != nil {
		return "", err
	}
	return out.TextID, nil
}

// MarkPracticed reports a completed practice run and returns the recorded
// timestamp.
func (c *Client) MarkPracticed(ctx context.Context, id string) (time.Time, error) {
	var out struct {
		LastPracticedAt time.Time `json:"lastPracticedAt"`
	}
	err := c.do(ctx, http.MethodPost, "/api/texts/practice/"+url.PathEscape(id), nil, &out)
	if err != nil {
		return time.Time{}, err
	}
	return out.LastPracticedAt, nil
}
