package selfupdate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/mod/semver"
)

const (
	defaultOwner           = "classpulse"
	defaultRepo            = "classpulse"
	defaultBaseURL         = "https://api.github.com"
	defaultDownloadBaseURL = "https://github.com"
	defaultTimeout         = 30 * time.Second
)

// Checker talks to the GitHub releases API for this project.
type Checker struct {
	client          *http.Client
	owner           string
	repo            string
	baseURL         string
	downloadBaseURL string
	execPath        func() (string, error)
}

type Option func(*Checker)

func WithTimeout(d time.Duration) Option {
	return func(c *Checker) { c.client.Timeout = d }
}

func WithBaseURL(url string) Option {
	return func(c *Checker) { c.baseURL = url }
}

func WithDownloadBaseURL(url string) Option {
	return func(c *Checker) { c.downloadBaseURL = url }
}

// withExecPath overrides executable resolution in tests.
func withExecPath(fn func() (string, error)) Option {
	return func(c *Checker) { c.execPath = fn }
}

func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		client:          &http.Client{Timeout: defaultTimeout},
		owner:           defaultOwner,
		repo:            defaultRepo,
		baseURL:         defaultBaseURL,
		downloadBaseURL: defaultDownloadBaseURL,
		execPath:        os.Executable,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type CheckInput struct {
	Version string
}

type CheckResult struct {
	CurrentVersion  string
	LatestVersion   string
	UpdateAvailable bool
	ReleaseURL      string
}

type releaseResponse struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Check fetches the latest release tag and compares it to the running version.
func (c *Checker) Check(ctx context.Context, input *CheckInput) (*CheckResult, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", c.baseURL, c.owner, c.repo)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d fetching latest release", resp.StatusCode)
	}

	var release releaseResponse
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("decode release response: %w", err)
	}
	if release.TagName == "" {
		return nil, fmt.Errorf("release response has no tag name")
	}

	result := &CheckResult{
		CurrentVersion: input.Version,
		LatestVersion:  release.TagName,
		ReleaseURL:     release.HTMLURL,
	}

	current := ensureV(input.Version)
	latest := ensureV(release.TagName)
	if semver.IsValid(current) && semver.IsValid(latest) {
		result.UpdateAvailable = semver.Compare(latest, current) > 0
	} else {
		result.UpdateAvailable = release.TagName != input.Version
	}
	return result, nil
}

func ensureV(version string) string {
	if version == "" {
		return version
	}
	if version[0] != 'v' {
		return "v" + version
	}
	return version
}
