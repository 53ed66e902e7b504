// Package update asks GitHub whether a newer folio release exists.
package update

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

const (
	LatestReleaseURL = "https://api.github.com/repos/ionut-t/folio/releases/latest"
	cacheFile        = ".update_check.json"
)

type release struct {
	TagName    string `json:"tag_name"`
	ReleaseURL string `json:"html_url"`
}

// lastCheck is the cached result of the previous lookup.
type lastCheck struct {
	CheckedAt time.Time `json:"checked_at"`
	Latest    string    `json:"latest"`
	URL       string    `json:"url,omitempty"`
}

// Result describes the newest published release.
type Result struct {
	Latest    string
	URL       string
	HasUpdate bool
	// Cached is set when the answer came from the cache file.
	Cached bool
}

// Checker compares the running version with the latest release. Answers are
// cached in Dir for Interval.
type Checker struct {
	Current  string
	Dir      string
	Interval time.Duration
	URL      string
	Client   *http.Client

	now func() time.Time
}

// New creates a checker for the running version caching under dir.
func New(current, dir string, interval time.Duration) *Checker {
	return &Checker{
		Current:  current,
		Dir:      dir,
		Interval: interval,
		URL:      LatestReleaseURL,
		Client:   &http.Client{Timeout: 10 * time.Second},
		now:      time.Now,
	}
}

// Check returns the latest release, from the cache when it is fresh enough.
func (c *Checker) Check(ctx context.Context) (*Result, error) {
	if cached, ok := c.cached(); ok {
		return c.result(cached.Latest, cached.URL, true), nil
	}

	rel, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}

	_ = c.save(lastCheck{CheckedAt: c.now(), Latest: rel.TagName, URL: rel.ReleaseURL})

	return c.result(rel.TagName, rel.ReleaseURL, false), nil
}

func (c *Checker) result(latest, url string, cached bool) *Result {
	return &Result{
		Latest:    latest,
		URL:       url,
		HasUpdate: newer(c.Current, latest),
		Cached:    cached,
	}
}

func (c *Checker) cached() (lastCheck, bool) {
	var check lastCheck

	data, err := os.ReadFile(filepath.Join(c.Dir, cacheFile))
	if err != nil {
		return check, false
	}

	if err := json.Unmarshal(data, &check); err != nil {
		return check, false
	}

	return check, c.now().Sub(check.CheckedAt) < c.Interval
}

func (c *Checker) fetch(ctx context.Context) (*release, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", "folio-update-checker")
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch release info: %w", err)
	}

	//nolint:errcheck
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("GitHub API returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var rel release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return nil, fmt.Errorf("failed to decode release info: %w", err)
	}

	return &rel, nil
}

func (c *Checker) save(check lastCheck) error {
	data, err := json.MarshalIndent(check, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(c.Dir, cacheFile), data, 0o644)
}

// newer reports whether latest is a later release than current. Development
// builds never have updates.
func newer(current, latest string) bool {
	current, latest = canonical(current), canonical(latest)
	if !semver.IsValid(current) || !semver.IsValid(latest) {
		return false
	}

	return semver.Compare(current, latest) < 0
}

func canonical(v string) string {
	if v != "" && !strings.HasPrefix(v, "v") {
		return "v" + v
	}
	return v
}
