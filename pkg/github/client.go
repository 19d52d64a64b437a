// Package github lists a user's public repositories through the GitHub REST API.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"devconnector-backend/pkg/config"

	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
)

const userAgent = "devconnector-backend"

// StatusError is returned when GitHub answers with anything but 200.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("github api error: status %d", e.StatusCode)
}

var errInvalidBody = errors.New("github api returned invalid json")

type Client struct {
	baseURL      string
	clientID     string
	clientSecret string
	httpClient   *http.Client
}

// NewClient builds a client from cfg. When GITHUB_TOKEN is set requests carry it as a bearer token.
func NewClient(cfg *config.Config) *Client {
	httpClient := &http.Client{Timeout: cfg.GitHubTimeout}
	if cfg.GitHubToken != "" {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.GitHubToken})
		httpClient = oauth2.NewClient(context.Background(), src)
		httpClient.Timeout = cfg.GitHubTimeout
	}

	return &Client{
		baseURL:      strings.TrimRight(cfg.GitHubAPIURL, "/"),
		clientID:     cfg.GitHubClientID,
		clientSecret: cfg.GitHubSecret,
		httpClient:   httpClient,
	}
}

// UserRepos returns the five oldest-created repositories of username as raw JSON.
func (c *Client) UserRepos(ctx context.Context, username string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("per_page", "5")
	params.Set("sort", "created:asc")
	if c.clientID != "" {
		params.Set("client_id", c.clientID)
		params.Set("client_secret", c.clientSecret)
	}

	endpoint := fmt.Sprintf("%s/users/%s/repos?%s", c.baseURL, url.PathEscape(username), params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http get: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Debug().Int("status", resp.StatusCode).Str("username", username).Msg("[GitHub] non-200 response")
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}
	if !json.Valid(body) {
		return nil, errInvalidBody
	}

	return json.RawMessage(body), nil
}
