package services

import (
	"net/url"
	"regexp"
	"strings"

	"scamsignals/internal/config"
	"scamsignals/internal/domain/models"
	"scamsignals/pkg/logger"
)

// DomainAnalyzer decomposes URLs and flags risky domain traits. Analysis
// is total: unparseable input yields the zero analysis, never an error.
type DomainAnalyzer struct {
	logger *logger.Logger

	suspiciousTLDs map[string]bool
	shorteners     map[string]bool
	brands         map[string]string
	maxHyphens     int

	randomSubdomain *regexp.Regexp
	digits          *regexp.Regexp
	pathKeywords    []string
}

// NewDomainAnalyzer creates an analyzer from the extraction config
func NewDomainAnalyzer(cfg config.ExtractionConfig, log *logger.Logger) *DomainAnalyzer {
	tlds := make(map[string]bool, len(cfg.SuspiciousTLDs))
	for _, tld := range cfg.SuspiciousTLDs {
		tlds[strings.ToLower(tld)] = true
	}
	shorteners := make(map[string]bool, len(cfg.URLShorteners))
	for _, s := range cfg.URLShorteners {
		shorteners[strings.ToLower(s)] = true
	}

	return &DomainAnalyzer{
		logger:          log.WithComponent("domain-analyzer"),
		suspiciousTLDs:  tlds,
		shorteners:      shorteners,
		brands:          cfg.KnownBrands,
		maxHyphens:      cfg.MaxDomainHyphens,
		randomSubdomain: regexp.MustCompile(`[a-f0-9]{8,}`),
		digits:          regexp.MustCompile(`\d`),
		pathKeywords:    []string{"login", "secure", "verify", "confirm"},
	}
}

// Analyze parses the URL and computes the risk flags
func (a *DomainAnalyzer) Analyze(rawURL string) models.DomainAnalysis {
	analysis := models.DomainAnalysis{}

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return analysis
	}

	host := strings.ToLower(parsed.Host)
	analysis.FullDomain = host
	analysis.Path = parsed.Path
	analysis.Query = parsed.RawQuery
	analysis.Scheme = parsed.Scheme

	parts := strings.Split(host, ".")
	if len(parts) > 1 {
		analysis.TLD = parts[len(parts)-1]
	}
	if len(parts) > 2 {
		analysis.SLD = parts[len(parts)-2]
	}

	analysis.HasSuspiciousTLD = a.suspiciousTLDs[analysis.TLD]
	analysis.HasShortened = a.shorteners[host]
	analysis.IsLookalikeBrand = a.isLookalike(host)

	return analysis
}

// isLookalike reports whether the host name borrows a known brand name
// without being that brand's canonical domain or one of its subdomains
func (a *DomainAnalyzer) isLookalike(host string) bool {
	for brand, canonical := range a.brands {
		if !strings.Contains(host, brand) {
			continue
		}
		if host == canonical || strings.HasSuffix(host, "."+canonical) {
			continue
		}
		return true
	}
	return false
}

// SuspiciousShape flags structural oddities in a domain and path
func (a *DomainAnalyzer) SuspiciousShape(analysis models.DomainAnalysis) models.SuspiciousPatterns {
	patterns := models.SuspiciousPatterns{
		RandomSubdomain: a.randomSubdomain.MatchString(analysis.FullDomain),
		NumbersInDomain: a.digits.MatchString(analysis.FullDomain),
		MultipleHyphens: strings.Count(analysis.FullDomain, "-") > a.maxHyphens,
	}
	for _, keyword := range a.pathKeywords {
		if strings.Contains(analysis.Path, keyword) {
			patterns.SuspiciousPath = true
			break
		}
	}
	return patterns
}

// HasSuspiciousTLD reports whether any of the hosts carries a TLD from
// the suspicious set
func (a *DomainAnalyzer) HasSuspiciousTLD(hosts []string) bool {
	for _, host := range hosts {
		parts := strings.Split(host, ".")
		if len(parts) > 1 && a.suspiciousTLDs[parts[len(parts)-1]] {
			return true
		}
	}
	return false
}

// HasShortener reports whether any of the hosts is a known URL shortener
func (a *DomainAnalyzer) HasShortener(hosts []string) bool {
	for _, host := range hosts {
		if a.shorteners[host] {
			return true
		}
	}
	return false
}
