// Package github is the repository source adapter for the portfolio pipeline.
//
// It lists a user's repositories and fetches README content, either as
// base64-decoded text or as pre-rendered HTML. The adapter is a pure read
// boundary and fails soft: any transport or decode failure is logged and
// degrades to an empty list or an absent README, so one API outage never
// aborts an aggregation. No retries are performed.
package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/showcasehq/showcase/pkg/observability"
)

const (
	defaultBaseURL = "https://api.github.com"
	httpTimeout    = 30 * time.Second

	acceptJSON = "application/vnd.github.v3+json"
	acceptHTML = "application/vnd.github.v3.html"
)

// Client provides read access to the GitHub API.
type Client struct {
	token      string
	httpClient *http.Client
	baseURL    string
	logger     *log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithToken sets a bearer token used for authenticated requests.
// Unauthenticated requests work but are subject to lower rate limits.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithBaseURL overrides the API base URL. Used by tests.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = strings.TrimSuffix(url, "/") }
}

// WithLogger sets the logger used for degrade events.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient creates a GitHub API client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: httpTimeout},
		baseURL:    defaultBaseURL,
		logger:     log.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListRepositories returns all repositories belonging to owner, newest-updated
// first, capped at one page of 100. On any failure it logs and returns an
// empty slice; navigation must keep working through an API outage.
func (c *Client) ListRepositories(ctx context.Context, owner string) []Repo {
	url := fmt.Sprintf("%s/users/%s/repos?sort=updated&per_page=100", c.baseURL, owner)

	body, status, err := c.get(ctx, url, acceptJSON)
	if err != nil {
		c.logger.Warn("listing repositories failed", "owner", owner, "err", err)
		return nil
	}
	defer body.Close()

	if status != http.StatusOK {
		c.logger.Warn("listing repositories failed", "owner", owner, "status", status)
		return nil
	}

	var repos []Repo
	if err := json.NewDecoder(body).Decode(&repos); err != nil {
		c.logger.Warn("decoding repository list failed", "owner", owner, "err", err)
		return nil
	}
	return repos
}

// FetchReadme fetches the README of owner/repo as decoded text.
// A 404 is a normal "no README" result, not an error. Any other failure also
// degrades to absent and is logged.
func (c *Client) FetchReadme(ctx context.Context, owner, repo string) (string, bool) {
	url := fmt.Sprintf("%s/repos/%s/%s/readme", c.baseURL, owner, repo)

	body, status, err := c.get(ctx, url, acceptJSON)
	if err != nil {
		c.logger.Warn("fetching readme failed", "repo", owner+"/"+repo, "err", err)
		return "", false
	}
	defer body.Close()

	switch {
	case status == http.StatusNotFound:
		return "", false
	case status != http.StatusOK:
		c.logger.Warn("fetching readme failed", "repo", owner+"/"+repo, "status", status)
		return "", false
	}

	var resp readmeResponse
	if err := json.NewDecoder(body).Decode(&resp); err != nil {
		c.logger.Warn("decoding readme failed", "repo", owner+"/"+repo, "err", err)
		return "", false
	}

	// The API base64-encodes content with embedded newlines.
	content, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(resp.Content, "\n", ""))
	if err != nil {
		c.logger.Warn("decoding readme content failed", "repo", owner+"/"+repo, "err", err)
		return "", false
	}
	return string(content), true
}

// FetchReadmeHTML fetches the README of owner/repo pre-rendered as HTML.
// Same absent-tolerant semantics as FetchReadme.
func (c *Client) FetchReadmeHTML(ctx context.Context, owner, repo string) (string, bool) {
	url := fmt.Sprintf("%s/repos/%s/%s/readme", c.baseURL, owner, repo)

	body, status, err := c.get(ctx, url, acceptHTML)
	if err != nil {
		c.logger.Warn("fetching readme html failed", "repo", owner+"/"+repo, "err", err)
		return "", false
	}
	defer body.Close()

	switch {
	case status == http.StatusNotFound:
		return "", false
	case status != http.StatusOK:
		c.logger.Warn("fetching readme html failed", "repo", owner+"/"+repo, "status", status)
		return "", false
	}

	html, err := io.ReadAll(body)
	if err != nil {
		c.logger.Warn("reading readme html failed", "repo", owner+"/"+repo, "err", err)
		return "", false
	}
	return string(html), true
}

// ListRepositoriesWithReadme fetches the README for every repository returned
// by ListRepositories. READMEs are fetched sequentially, one repository at a
// time; refreshes are rare and repository counts small, so linear latency is
// an acceptable trade for simplicity. Input order is preserved and each
// entry's README is independently absent-tolerant.
func (c *Client) ListRepositoriesWithReadme(ctx context.Context, owner string) []RepoWithReadme {
	repos := c.ListRepositories(ctx, owner)

	result := make([]RepoWithReadme, 0, len(repos))
	for _, r := range repos {
		readme, ok := c.FetchReadme(ctx, owner, r.Name)
		result = append(result, RepoWithReadme{Repo: r, Readme: readme, HasReadme: ok})
	}
	return result
}

// get performs a single GET with the given Accept header. The returned status
// is only valid when err is nil; callers own closing the body.
func (c *Client) get(ctx context.Context, url, accept string) (io.ReadCloser, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", accept)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	observability.HTTP().OnRequest(ctx, http.MethodGet, req.URL.Host, req.URL.Path)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		observability.HTTP().OnError(ctx, http.MethodGet, req.URL.Host, req.URL.Path, err)
		return nil, 0, fmt.Errorf("send request: %w", err)
	}

	observability.HTTP().OnResponse(ctx, http.MethodGet, req.URL.Host, req.URL.Path, resp.StatusCode, time.Since(start))
	return resp.Body, resp.StatusCode, nil
}
