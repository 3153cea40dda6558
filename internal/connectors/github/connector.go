// Package github streams stakeholder narratives from a GitHub issue
// tracker. Issues and their comment threads are rendered to Markdown
// so the loading stage treats them like any other document.
package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	"github.com/meridian-sci/svomap-cli/internal/core/domain"
	"github.com/meridian-sci/svomap-cli/internal/core/ports/driven"
)

// Ensure Connector implements the interface.
var _ driven.Connector = (*Connector)(nil)

// Config holds GitHub connector settings.
type Config struct {
	// Repo is the "owner/name" slug of the repository to read.
	Repo string

	// Token is a personal access token. Required; issue reading on
	// private repositories and sane rate limits both need auth.
	Token string

	// Labels filters issues to those carrying any of these labels.
	// Empty means all issues.
	Labels []string
}

// Connector fetches issue narratives from a GitHub repository.
type Connector struct {
	config  Config
	client  *gh.Client
	limiter *RateLimiter
	mu      sync.Mutex
	closed  bool
}

// New creates a new GitHub connector.
func New(cfg Config) *Connector {
	var httpClient *http.Client
	if cfg.Token != "" {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
		httpClient = oauth2.NewClient(context.Background(), src)
	}

	return &Connector{
		config:  cfg,
		client:  gh.NewClient(httpClient),
		limiter: NewRateLimiter(),
	}
}

// Type returns the connector type identifier.
func (c *Connector) Type() string {
	return "github"
}

// Capabilities returns the connector's capabilities.
func (c *Connector) Capabilities() driven.ConnectorCapabilities {
	return driven.ConnectorCapabilities{
		SupportsWatch:        false, // No webhooks in a CLI
		RequiresAuth:         true,
		SupportsRateLimiting: true,
	}
}

// Validate checks the repo slug and credentials with a lightweight
// rate-limit call.
func (c *Connector) Validate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	owner, name, err := splitRepo(c.config.Repo)
	if err != nil {
		return err
	}

	if c.config.Token == "" {
		return fmt.Errorf("%w: github token not set", domain.ErrAuthRequired)
	}

	if _, _, err := c.client.RateLimit.Get(ctx); err != nil {
		return fmt.Errorf("%w: validate credentials for %s/%s: %v",
			domain.ErrAuthRequired, owner, name, err)
	}

	return nil
}

// Fetch streams all matching issues with their comment threads.
func (c *Connector) Fetch(ctx context.Context) (<-chan domain.RawDocument, <-chan error) {
	docsChan := make(chan domain.RawDocument)
	errsChan := make(chan error, 1)

	go func() {
		defer close(docsChan)
		defer close(errsChan)

		owner, name, err := splitRepo(c.config.Repo)
		if err != nil {
			errsChan <- err
			return
		}

		opts := &gh.IssueListByRepoOptions{
			State:       "all",
			Labels:      c.config.Labels,
			Sort:        "created",
			Direction:   "asc",
			ListOptions: gh.ListOptions{PerPage: 100},
		}

		for {
			select {
			case <-ctx.Done():
				return
			default:
			}

			if err := c.limiter.Wait(ctx); err != nil {
				errsChan <- err
				return
			}

			issues, resp, err := c.client.Issues.ListByRepo(ctx, owner, name, opts)
			if err != nil {
				errsChan <- wrapAPIError(err, "list issues")
				return
			}
			c.limiter.UpdateFromResponse(resp.Response)

			for _, issue := range issues {
				// Pull requests show up in the issues endpoint too.
				if issue.IsPullRequest() {
					continue
				}

				comments, err := c.fetchComments(ctx, owner, name, issue.GetNumber())
				if err != nil {
					errsChan <- err
					return
				}

				doc := buildIssueDocument(owner, name, issue, comments)
				select {
				case <-ctx.Done():
					return
				case docsChan <- doc:
				}
			}

			if resp.NextPage == 0 {
				return
			}
			opts.ListOptions.Page = resp.NextPage
		}
	}()

	return docsChan, errsChan
}

// Watch is not supported; GitHub offers no push channel to a CLI.
func (c *Connector) Watch(_ context.Context) (<-chan struct{}, error) {
	return nil, domain.ErrNotImplemented
}

// Close releases resources.
func (c *Connector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

// fetchComments retrieves the full comment thread for an issue.
func (c *Connector) fetchComments(
	ctx context.Context, owner, name string, number int,
) ([]*gh.IssueComment, error) {
	var all []*gh.IssueComment
	opts := &gh.IssueListCommentsOptions{
		ListOptions: gh.ListOptions{PerPage: 100},
	}

	for {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		comments, resp, err := c.client.Issues.ListComments(ctx, owner, name, number, opts)
		if err != nil {
			return nil, wrapAPIError(err, fmt.Sprintf("list comments for #%d", number))
		}
		c.limiter.UpdateFromResponse(resp.Response)

		all = append(all, comments...)
		if resp.NextPage == 0 {
			return all, nil
		}
		opts.Page = resp.NextPage
	}
}

// splitRepo parses an "owner/name" slug.
func splitRepo(slug string) (string, string, error) {
	parts := strings.Split(slug, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%w: repo must be owner/name, got %q",
			domain.ErrConnectorValidation, slug)
	}
	return parts[0], parts[1], nil
}

// wrapAPIError maps GitHub API failures onto domain errors.
func wrapAPIError(err error, verb string) error {
	var rateErr *gh.RateLimitError
	if errors.As(err, &rateErr) {
		return fmt.Errorf("%w: %s: resets at %s",
			domain.ErrRateLimited, verb, rateErr.Rate.Reset.Time)
	}

	var respErr *gh.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil &&
		(respErr.Response.StatusCode == http.StatusUnauthorized ||
			respErr.Response.StatusCode == http.StatusForbidden) {
		return fmt.Errorf("%w: %s: %v", domain.ErrAuthRequired, verb, err)
	}

	return fmt.Errorf("%s: %w", verb, err)
}
