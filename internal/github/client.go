package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/wrenware/repovis/internal/domain"
)

const (
	defaultBaseURL = "https://api.github.com"

	// userAgent identifies the program on every API call.
	userAgent = "repovis"

	acceptListing = "application/vnd.github+json"
	acceptUpdate  = "application/vnd.github.v3+json"
)

// Client talks to the GitHub REST API on behalf of one token.
type Client struct {
	token    string
	baseURL  string
	perPage  int
	maxPages int
	client   *http.Client
	logger   *zap.Logger
}

// NewClient creates a GitHub API client.
// baseURL is used for testing; pass empty string to use the real GitHub API.
// perPage and maxPages bound the repository listing; values <= 0 fall back
// to 100 items per page and 2 pages.
func NewClient(token string, baseURL string, perPage int, maxPages int, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if perPage <= 0 || perPage > 100 {
		perPage = 100
	}
	if maxPages <= 0 {
		maxPages = 2
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		token:    token,
		baseURL:  baseURL,
		perPage:  perPage,
		maxPages: maxPages,
		client:   &http.Client{Timeout: 15 * time.Second},
		logger:   logger,
	}
}

// repoRecord is the raw GitHub API response shape for a listed repository.
type repoRecord struct {
	Name    string `json:"name"`
	URL     string `json:"url"`
	Private bool   `json:"private"`
	Fork    bool   `json:"fork"`
}

// updateRequest is the body of the visibility update call.
type updateRequest struct {
	Name     string `json:"name"`
	Private  bool   `json:"private"`
	AutoInit bool   `json:"auto_init"`
}

// ListRepositories fetches the authenticated user's repositories page by
// page, excluding forks, preserving response order. An empty page ends
// pagination early. A transport failure on a page stops pagination and
// returns the pages fetched so far; an HTTP error status or an undecodable
// body aborts the whole listing.
func (c *Client) ListRepositories(ctx context.Context) ([]domain.Repository, error) {
	var all []domain.Repository
	for page := 1; page <= c.maxPages; page++ {
		url := fmt.Sprintf("%s/user/repos?page=%d&per_page=%d", c.baseURL, page, c.perPage)
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("creating listing request: %w", err)
		}
		req.Header.Set("Accept", acceptListing)
		req.Header.Set("User-Agent", userAgent)
		req.Header.Set("Authorization", "Bearer "+c.token)

		resp, err := c.client.Do(req)
		if err != nil {
			// Degrade to whatever was fetched before this page.
			c.logger.Warn("repository listing stopped early",
				zap.Int("page", page), zap.Error(err))
			return all, nil
		}
		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		c.logger.Debug("listed repository page",
			zap.Int("page", page), zap.Int("status", resp.StatusCode))
		if readErr != nil {
			c.logger.Warn("repository listing stopped early",
				zap.Int("page", page), zap.Error(readErr))
			return all, nil
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, &domain.APIError{StatusCode: resp.StatusCode, Body: string(body)}
		}

		var records []repoRecord
		if err := json.Unmarshal(body, &records); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
		}
		if len(records) == 0 {
			break
		}
		for _, rec := range records {
			if rec.Fork {
				continue
			}
			private := rec.Private
			all = append(all, domain.Repository{
				Name:    rec.Name,
				URL:     rec.URL,
				Private: &private,
			})
		}
	}
	return all, nil
}

// UpdateVisibility sets the private flag of owner/name. A non-success
// status is returned as *domain.APIError carrying the response body.
func (c *Client) UpdateVisibility(ctx context.Context, owner string, name string, private bool) error {
	payload, err := json.Marshal(updateRequest{Name: name, Private: private, AutoInit: true})
	if err != nil {
		return fmt.Errorf("encoding update request: %w", err)
	}
	url := fmt.Sprintf("%s/repos/%s/%s", c.baseURL, owner, name)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating update request: %w", err)
	}
	req.Header.Set("Accept", acceptUpdate)
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Authorization", "token "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("executing update request: %w", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	c.logger.Debug("updated repository visibility",
		zap.String("repository", owner+"/"+name),
		zap.Bool("private", private),
		zap.Int("status", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &domain.APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return nil
}
