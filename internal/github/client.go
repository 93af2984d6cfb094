// Package github provides the minimal GitHub REST client relkit needs:
// per-number pull request lookups and credential resolution.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/releng/relkit/internal/changelog"
)

// DefaultBaseURL is the public GitHub API root.
const DefaultBaseURL = "https://api.github.com"

// DefaultTimeout bounds a single PR lookup.
const DefaultTimeout = 10 * time.Second

// Client fetches pull request metadata from the GitHub API.
// It is safe for concurrent use across distinct PR numbers: the token and
// repository coordinates are read-only after construction.
type Client struct {
	httpClient *http.Client
	baseURL    string
	owner      string
	repo       string
	token      string
	warn       io.Writer
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API root, for GitHub Enterprise or tests.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithWarnWriter redirects per-lookup failure diagnostics (default stderr).
func WithWarnWriter(w io.Writer) Option {
	return func(c *Client) { c.warn = w }
}

// NewClient creates a GitHub client for one repository. The token is an
// explicit dependency rather than an ambient environment read, so tests
// can construct clients with fake credentials.
func NewClient(owner, repo, token string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		baseURL:    DefaultBaseURL,
		owner:      owner,
		repo:       repo,
		token:      token,
		warn:       os.Stderr,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// prResponse is the subset of the GitHub PR payload relkit consumes.
type prResponse struct {
	Title string `json:"title"`
	User  struct {
		Login string `json:"login"`
	} `json:"user"`
	Labels []struct {
		Name string `json:"name"`
	} `json:"labels"`
	// Message is set on error payloads (404, rate limit, bad token).
	Message string `json:"message"`
}

// FetchPR retrieves title, author, and label names for one pull request.
//
// A non-success response is not an error: the failing URL, status, and
// server message are written to the warn writer and (nil, nil) is
// returned, so one unavailable PR never aborts changelog generation.
// Transport failures are returned as errors and isolated by the caller.
func (c *Client) FetchPR(ctx context.Context, number int) (*changelog.PRMetadata, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/pulls/%d", c.baseURL, c.owner, c.repo, number)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request for PR #%d: %w", number, err)
	}
	req.Header.Set("Authorization", "Token "+c.token)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching PR #%d: %w", number, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading PR #%d response: %w", number, err)
	}

	var parsed prResponse
	if jsonErr := json.Unmarshal(body, &parsed); jsonErr != nil && resp.StatusCode == http.StatusOK {
		return nil, fmt.Errorf("parsing PR #%d response: %w", number, jsonErr)
	}

	if resp.StatusCode != http.StatusOK {
		fmt.Fprintf(c.warn, "ERROR %s: %d - %s\n", url, resp.StatusCode, parsed.Message)
		return nil, nil
	}

	labels := make([]string, 0, len(parsed.Labels))
	for _, l := range parsed.Labels {
		labels = append(labels, l.Name)
	}

	return &changelog.PRMetadata{
		Author: parsed.User.Login,
		Title:  parsed.Title,
		Labels: labels,
	}, nil
}
