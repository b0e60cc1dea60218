// Package version checks the running build against the latest published
// release.
package version

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

const (
	defaultOwner      = "ananya"
	defaultRepo       = "practiq"
	defaultAPIBaseURL = "https://api.github.com"
)

// Checker queries the release API for the latest published tag.
type Checker struct {
	owner      string
	repo       string
	apiBaseURL string
	client     *http.Client
}

// Option customizes a Checker.
type Option func(*Checker)

// WithBaseURL overrides the release API base URL. Intended for tests.
func WithBaseURL(url string) Option {
	return func(c *Checker) { c.apiBaseURL = url }
}

// WithRepo overrides the release repository.
func WithRepo(owner, repo string) Option {
	return func(c *Checker) {
		c.owner = owner
		c.repo = repo
	}
}

// NewChecker creates a Checker against the project's release repository.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		owner:      defaultOwner,
		repo:       defaultRepo,
		apiBaseURL: defaultAPIBaseURL,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckResult compares the running version to the latest release.
type CheckResult struct {
	CurrentVersion  string
	LatestVersion   string
	UpdateAvailable bool
}

// Check fetches the latest release tag and compares it semantically with
// current. A development build reports the latest tag but never an update.
func (c *Checker) Check(ctx context.Context, current string) (*CheckResult, error) {
	latest, err := c.latestTag(ctx)
	if err != nil {
		return nil, err
	}

	result := &CheckResult{
		CurrentVersion: current,
		LatestVersion:  latest,
	}
	if current == "(devel)" {
		return result, nil
	}

	cur := normalize(current)
	if !semver.IsValid(cur) {
		return nil, fmt.Errorf("current version %q is not a semantic version", current)
	}
	result.UpdateAvailable = semver.Compare(normalize(latest), cur) > 0
	return result, nil
}

func (c *Checker) latestTag(ctx context.Context) (string, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", strings.TrimRight(c.apiBaseURL, "/"), c.owner, c.repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch latest release: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("release API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", fmt.Errorf("decode release: %w", err)
	}
	if release.TagName == "" {
		return "", fmt.Errorf("release API returned no tag")
	}
	return release.TagName, nil
}

func normalize(v string) string {
	if !strings.HasPrefix(v, "v") {
		return "v" + v
	}
	return v
}
