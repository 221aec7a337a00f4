package services

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/mail"
	"strings"
	"sync"
	"time"

	"scamsignals/internal/config"
	"scamsignals/internal/domain/models"
	"scamsignals/pkg/logger"
)

// PhishListCache holds a blocklist of known phishing URLs fetched from a
// plain-text feed. The cache is owned by its caller: nothing loads or
// refreshes it implicitly.
type PhishListCache struct {
	feedURL         string
	refreshInterval time.Duration
	client          *http.Client
	logger          *logger.Logger

	mu       sync.RWMutex
	urls     map[string]bool
	loadedAt time.Time
}

// NewPhishListCache creates an empty cache. Call Load before Contains
// returns anything useful.
func NewPhishListCache(cfg config.CheckerConfig, log *logger.Logger) *PhishListCache {
	timeout := cfg.FetchTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &PhishListCache{
		feedURL:         cfg.FeedURL,
		refreshInterval: cfg.RefreshInterval,
		client:          &http.Client{Timeout: timeout},
		logger:          log.WithComponent("phishlist"),
		urls:            make(map[string]bool),
	}
}

// Load fetches the feed and replaces the cached set
func (c *PhishListCache) Load(ctx context.Context) error {
	start := time.Now()
	c.logger.Info().Str("feed", c.feedURL).Msg("loading phishing blocklist")

	req, err := http.NewRequestWithContext(ctx, "GET", c.feedURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch blocklist feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("blocklist feed returned status %d: %s", resp.StatusCode, string(body))
	}

	urls := make(map[string]bool)
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls[NormalizeURL(line)] = true
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading feed: %w", err)
	}

	c.mu.Lock()
	c.urls = urls
	c.loadedAt = time.Now()
	c.mu.Unlock()

	c.logger.Info().
		Int("total", len(urls)).
		Dur("duration", time.Since(start)).
		Msg("blocklist loaded")

	return nil
}

// RefreshIfStale reloads the feed when the configured interval has
// passed since the last load
func (c *PhishListCache) RefreshIfStale(ctx context.Context) error {
	c.mu.RLock()
	stale := c.refreshInterval > 0 && time.Since(c.loadedAt) > c.refreshInterval
	c.mu.RUnlock()
	if !stale {
		return nil
	}
	return c.Load(ctx)
}

// Contains reports whether the URL is on the blocklist. Comparison uses
// the same normalization as content hashing, so scheme and trailing
// slash differences do not hide a match.
func (c *PhishListCache) Contains(rawURL string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.urls[NormalizeURL(rawURL)]
}

// Size returns the number of cached blocklist entries
func (c *PhishListCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.urls)
}

// ArtifactChecker cross-references extracted artifacts against the
// blocklist and local validity checks, rendering a plain-text summary
// for downstream consumers
type ArtifactChecker struct {
	phishList *PhishListCache
	logger    *logger.Logger
}

// NewArtifactChecker creates a checker over the given blocklist cache
func NewArtifactChecker(phishList *PhishListCache, log *logger.Logger) *ArtifactChecker {
	return &ArtifactChecker{
		phishList: phishList,
		logger:    log.WithComponent("artifact-checker"),
	}
}

// Check renders the summary block for the artifacts. Checking is best
// effort: with no blocklist loaded URL hits simply come back empty.
func (c *ArtifactChecker) Check(ctx context.Context, artifacts models.Artifacts) string {
	var lines []string

	if len(artifacts.URLs) > 0 {
		var flagged []string
		if c.phishList != nil {
			if err := c.phishList.RefreshIfStale(ctx); err != nil {
				c.logger.Warn().Err(err).Msg("blocklist refresh failed, using cached data")
			}
			for _, u := range artifacts.URLs {
				if c.phishList.Contains(u) {
					flagged = append(flagged, u)
				}
			}
		}
		if len(flagged) > 0 {
			lines = append(lines, fmt.Sprintf("WARNING URL Analysis: %d/%d URLs detected as phishing sites", len(flagged), len(artifacts.URLs)))
			for _, u := range flagged {
				lines = append(lines, fmt.Sprintf("  - Phishing URL: %s", u))
			}
		} else {
			lines = append(lines, fmt.Sprintf("OK URL Analysis: %d URLs checked, none identified as phishing", len(artifacts.URLs)))
		}
	}

	if len(artifacts.Emails) > 0 {
		invalid := 0
		for _, addr := range artifacts.Emails {
			if _, err := mail.ParseAddress(addr); err != nil {
				invalid++
			}
		}
		if invalid > 0 {
			lines = append(lines, fmt.Sprintf("WARNING Email Analysis: %d/%d email addresses are invalid", invalid, len(artifacts.Emails)))
		} else {
			lines = append(lines, fmt.Sprintf("OK Email Analysis: %d email addresses validated", len(artifacts.Emails)))
		}
	}

	if len(artifacts.PhoneNumbers) > 0 {
		lines = append(lines, fmt.Sprintf("OK Phone Analysis: %d phone numbers extracted", len(artifacts.PhoneNumbers)))
	}

	return strings.Join(lines, "\n")
}
