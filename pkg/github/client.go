// Package github provides the GraphQL client that fetches per-repository
// language byte counts for a user.
//
// Transport-level faults (network errors, 5xx responses) are retried with
// exponential backoff via [httputil.Retry]. A structured error payload inside
// a successful GraphQL response is fatal and never retried: GitHub has
// answered, the answer is just "no".
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	apperrors "github.com/matzehuels/langcard/pkg/errors"
	"github.com/matzehuels/langcard/pkg/httputil"
	"github.com/matzehuels/langcard/pkg/observability"
)

// languagesQuery asks for the byte size and color of the top languages of
// every non-fork repository the user owns. 100 repositories and 10 languages
// per repository cover the card use case; anything past that would not make
// the displayed top list anyway.
const languagesQuery = `
query userLanguages($login: String!) {
  user(login: $login) {
    repositories(ownerAffiliations: OWNER, isFork: false, first: 100) {
      nodes {
        name
        languages(first: 10, orderBy: {field: SIZE, direction: DESC}) {
          edges {
            size
            node {
              name
              color
            }
          }
        }
      }
    }
  }
}`

// Client talks to the GitHub GraphQL API.
type Client struct {
	token      string
	httpClient *http.Client
	baseURL    string
	attempts   int
	delay      time.Duration
}

// NewClient creates a client authenticated with the given access token.
// Returns a MISSING_TOKEN error when the token is empty: the languages
// endpoint requires authentication even for public data.
func NewClient(token string) (*Client, error) {
	if token == "" {
		return nil, apperrors.New(apperrors.ErrCodeMissingToken, "no GitHub token configured")
	}
	return &Client{
		token:      token,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    "https://api.github.com/graphql",
		attempts:   httputil.DefaultAttempts,
		delay:      httputil.DefaultInitialDelay,
	}, nil
}

// UserLanguages fetches the language byte counts for every repository the
// user owns. Transport failures are retried; GraphQL error payloads fail
// immediately. A user with no repositories yields an empty slice, not an error.
func (c *Client) UserLanguages(ctx context.Context, login string) ([]Repository, error) {
	var repos []Repository

	err := httputil.Retry(ctx, c.attempts, c.delay, func() error {
		r, err := c.fetch(ctx, login)
		if err != nil {
			return err
		}
		repos = r
		return nil
	})
	if err != nil {
		if code := apperrors.GetCode(err); code != "" {
			return nil, err
		}
		// Retry budget exhausted on transport failures; surface the last one.
		return nil, apperrors.Wrap(apperrors.ErrCodeUpstream, err, "GitHub API unreachable")
	}
	return repos, nil
}

// fetch performs a single GraphQL round-trip. Transient failures come back
// wrapped as retryable; structured failures come back as coded errors.
func (c *Client) fetch(ctx context.Context, login string) ([]Repository, error) {
	body, err := json.Marshal(graphqlRequest{
		Query:     languagesQuery,
		Variables: map[string]any{"login": login},
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "encode query")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "create request")
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	observability.HTTP().OnRequest(ctx, req.Method, req.URL.Host, req.URL.Path)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		observability.HTTP().OnError(ctx, req.Method, req.URL.Host, req.URL.Path, err)
		return nil, httputil.Retryable(fmt.Errorf("send request: %w", err))
	}
	defer resp.Body.Close()
	observability.HTTP().OnResponse(ctx, req.Method, req.URL.Host, req.URL.Path, resp.StatusCode, time.Since(start))

	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, httputil.Retryable(fmt.Errorf("GitHub API error (%d)", resp.StatusCode))
	case resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusTooManyRequests:
		return nil, apperrors.New(apperrors.ErrCodeRateLimited, "GitHub API rate limit exceeded")
	case resp.StatusCode != http.StatusOK:
		raw, _ := io.ReadAll(resp.Body)
		return nil, apperrors.New(apperrors.ErrCodeUpstream, "GitHub API error (%d): %s", resp.StatusCode, string(raw))
	}

	var gr graphqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return nil, httputil.Retryable(fmt.Errorf("decode response: %w", err))
	}

	// A well-formed response may still carry an error payload. That is a
	// definitive answer from GitHub, so it must not be retried.
	if len(gr.Errors) > 0 {
		first := gr.Errors[0]
		if first.Type == "RATE_LIMITED" {
			return nil, apperrors.New(apperrors.ErrCodeRateLimited, "%s", first.Message)
		}
		return nil, apperrors.New(apperrors.ErrCodeUpstream, "%s", first.Message)
	}

	if gr.Data == nil || gr.Data.User == nil {
		return nil, apperrors.New(apperrors.ErrCodeUpstream, "user %q not found", login)
	}

	nodes := gr.Data.User.Repositories.Nodes
	repos := make([]Repository, 0, len(nodes))
	for _, node := range nodes {
		repo := Repository{Name: node.Name}
		for _, edge := range node.Languages.Edges {
			repo.Languages = append(repo.Languages, LanguageEdge{
				Name:  edge.Node.Name,
				Color: edge.Node.Color,
				Size:  edge.Size,
			})
		}
		repos = append(repos, repo)
	}
	return repos, nil
}
