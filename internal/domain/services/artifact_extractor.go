package services

import (
	"regexp"
	"sort"
	"strings"

	"scamsignals/internal/domain/models"
	"scamsignals/pkg/logger"
)

// minURLLength is the shortest cleaned URL worth keeping
const minURLLength = 10

// ArtifactExtractor pulls URLs, domains, emails, phone numbers, hashtags
// and mentions out of free text. Input freely mixes Latin script with
// CJK, Thai and Vietnamese; extraction never fails, it just finds less.
type ArtifactExtractor struct {
	logger *logger.Logger

	urlPattern      *regexp.Regexp
	trailingPunct   *regexp.Regexp
	trailingWords   []*regexp.Regexp
	nonASCIITail    *regexp.Regexp
	asciiRun        *regexp.Regexp
	bareDomain      *regexp.Regexp
	emailPattern    *regexp.Regexp
	emailExact      *regexp.Regexp
	nonASCII        *regexp.Regexp
	phonePatterns   []*regexp.Regexp
	phoneShape      *regexp.Regexp
	hashtagPattern  *regexp.Regexp
	mentionPattern  *regexp.Regexp
	urlHostPattern  *regexp.Regexp
	minPhoneDigits  int
	domainDenyWords []string
}

// NewArtifactExtractor creates an extractor with compiled patterns
func NewArtifactExtractor(minPhoneDigits int, log *logger.Logger) *ArtifactExtractor {
	return &ArtifactExtractor{
		logger: log.WithComponent("artifact-extractor"),

		urlPattern:    regexp.MustCompile(`(?i)https?://[a-zA-Z0-9._~:/?#\[\]@!$&'()*+,;=%-]+`),
		trailingPunct: regexp.MustCompile(`[,;!?.\x{00A0}]+$`),
		// Function words from surrounding prose glued onto a URL when the
		// author wrote no space: Malay, Thai transliteration, Vietnamese
		// and pinyin respectively
		trailingWords: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(sekiranya|anda|jika|untuk|dengan)$`),
			regexp.MustCompile(`(?i)(khrap|kha|dai|mai|thii|nai|kap|laew)$`),
			regexp.MustCompile(`(?i)(neu|va|hoac|thi|cua|cho|trong|voi)$`),
			regexp.MustCompile(`(?i)(ruguo|jiushi|weile|yinwei|suoyi|danshi|zhege|nage)$`),
		},
		nonASCIITail: regexp.MustCompile(`[\x{00A0}\x{4e00}-\x{9fff}\x{0e00}-\x{0e7f}\x{1ea0}-\x{1ef9}]$`),
		asciiRun:     regexp.MustCompile(`[a-zA-Z0-9._~:/?#\[\]@!$&'()*+,;=%-]+`),
		bareDomain:   regexp.MustCompile(`(?:^|[\s\[\(])(?:www\.)?([a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z]{2,})+)(?:[\s\]\).,!?]|$)`),
		emailPattern: regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`),
		emailExact:   regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`),
		nonASCII:     regexp.MustCompile(`[^\x00-\x7F]`),
		phonePatterns: []*regexp.Regexp{
			regexp.MustCompile(`\+\d{1,3}[-.\s]?\d{3,4}[-.\s]?\d{3,4}[-.\s]?\d{3,4}`),
			regexp.MustCompile(`\(\d{3}\)[-.\s]?\d{3}[-.\s]?\d{4}`),
			regexp.MustCompile(`\d{3}[-.\s]?\d{3}[-.\s]?\d{4}`),
			regexp.MustCompile(`\d{10,15}`),
		},
		phoneShape:     regexp.MustCompile(`^[+\d()\-.\s]{7,20}$`),
		// \p{M} keeps combining vowel and tone marks inside Thai and
		// Vietnamese tags instead of truncating at the first mark
		hashtagPattern: regexp.MustCompile(`#[\p{L}\p{M}\p{N}_]+`),
		mentionPattern: regexp.MustCompile(`@[\p{L}\p{M}\p{N}_]+`),
		urlHostPattern: regexp.MustCompile(`(?i)^https?://([^/]+)`),
		minPhoneDigits: minPhoneDigits,
		// Prose words that pass the domain shape test in agglutinated text
		domainDenyWords: []string{"anda.", "dibekukan.", "untuk.", "yang.", "ini.", "akan."},
	}
}

// Extract runs the sub-extractors selected by the profile and returns
// deduplicated, sorted artifact sets
func (e *ArtifactExtractor) Extract(text string, profile *ExtractionProfile) models.Artifacts {
	artifacts := models.Artifacts{
		URLs:         e.ExtractURLs(text),
		PhoneNumbers: e.ExtractPhoneNumbers(text),
	}
	artifacts.URLDomains = e.URLDomains(artifacts.URLs)
	if profile == nil || profile.ExtractEmails {
		artifacts.Emails = e.ExtractEmails(text)
	}
	if profile != nil && profile.ExtractHashtags {
		artifacts.Hashtags = e.ExtractHashtags(text)
	}
	if profile != nil && profile.ExtractMentions {
		artifacts.Mentions = e.ExtractMentions(text)
	}
	return artifacts
}

// ExtractURLs finds scheme-prefixed URLs, scrubs glued multilingual
// prose off their tails, then infers bare domains the text mentions
// without a scheme
func (e *ArtifactExtractor) ExtractURLs(text string) []string {
	if text == "" {
		return []string{}
	}

	seen := make(map[string]bool)
	urls := []string{}

	for _, raw := range e.urlPattern.FindAllString(text, -1) {
		cleaned := e.cleanURL(raw)
		if cleaned == "" || len(cleaned) <= minURLLength {
			continue
		}
		if !seen[cleaned] {
			seen[cleaned] = true
			urls = append(urls, cleaned)
		}
	}

	for _, domain := range e.bareDomains(text) {
		if e.isDeniedDomain(domain) || e.coveredByURL(domain, urls) {
			continue
		}
		full := "http://" + domain
		if !seen[full] {
			seen[full] = true
			urls = append(urls, full)
		}
	}

	sort.Strings(urls)
	return urls
}

// cleanURL applies the tail cleanup pipeline in order: trailing
// punctuation, glued function words, trailing slash, non-ASCII tail
func (e *ArtifactExtractor) cleanURL(raw string) string {
	cleaned := e.trailingPunct.ReplaceAllString(raw, "")
	for _, words := range e.trailingWords {
		cleaned = words.ReplaceAllString(cleaned, "")
	}
	cleaned = strings.TrimRight(cleaned, "/")
	if e.nonASCIITail.MatchString(cleaned) {
		if run := e.asciiRun.FindString(cleaned); run != "" {
			cleaned = strings.TrimRight(run, "/")
		}
	}
	return cleaned
}

// bareDomains scans for unschemed domains. The pattern consumes the
// trailing separator, so each scan restarts at the end of the domain
// capture rather than the end of the match: the separator that closed
// one domain can then open the next, and adjacent domains like
// "a.example.com b.example.org" both surface.
func (e *ArtifactExtractor) bareDomains(text string) []string {
	domains := []string{}
	for offset := 0; offset < len(text); {
		loc := e.bareDomain.FindStringSubmatchIndex(text[offset:])
		if loc == nil {
			break
		}
		domains = append(domains, text[offset+loc[2]:offset+loc[3]])
		offset += loc[3]
	}
	return domains
}

func (e *ArtifactExtractor) isDeniedDomain(domain string) bool {
	lower := strings.ToLower(domain)
	for _, word := range e.domainDenyWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// coveredByURL reports whether an already-extracted URL contains the
// candidate domain
func (e *ArtifactExtractor) coveredByURL(domain string, urls []string) bool {
	for _, u := range urls {
		if strings.Contains(u, domain) {
			return true
		}
	}
	return false
}

// URLDomains returns the lowercased host of each URL, deduplicated and
// sorted
func (e *ArtifactExtractor) URLDomains(urls []string) []string {
	seen := make(map[string]bool)
	domains := []string{}
	for _, u := range urls {
		match := e.urlHostPattern.FindStringSubmatch(u)
		if match == nil {
			continue
		}
		host := strings.ToLower(match[1])
		if !seen[host] {
			seen[host] = true
			domains = append(domains, host)
		}
	}
	sort.Strings(domains)
	return domains
}

// ExtractEmails finds addresses, strips any non-ASCII characters the
// liberal match dragged in, and keeps only values that still parse as a
// whole address
func (e *ArtifactExtractor) ExtractEmails(text string) []string {
	if text == "" {
		return []string{}
	}
	seen := make(map[string]bool)
	emails := []string{}
	for _, raw := range e.emailPattern.FindAllString(text, -1) {
		cleaned := e.nonASCII.ReplaceAllString(raw, "")
		if !e.emailExact.MatchString(cleaned) {
			continue
		}
		if !seen[cleaned] {
			seen[cleaned] = true
			emails = append(emails, cleaned)
		}
	}
	sort.Strings(emails)
	return emails
}

// ExtractPhoneNumbers matches international, parenthesized, separator and
// bare digit-run forms. Matches flanked by further digits are rejected so
// a run inside a longer number never leaks out as a shorter one.
func (e *ArtifactExtractor) ExtractPhoneNumbers(text string) []string {
	if text == "" {
		return []string{}
	}
	seen := make(map[string]bool)
	phones := []string{}
	for _, pattern := range e.phonePatterns {
		for _, loc := range pattern.FindAllStringIndex(text, -1) {
			if digitAdjacent(text, loc[0], loc[1]) {
				continue
			}
			cleaned := strings.TrimSpace(e.nonASCII.ReplaceAllString(text[loc[0]:loc[1]], ""))
			if !e.phoneShape.MatchString(cleaned) {
				continue
			}
			if countDigits(cleaned) < e.minPhoneDigits {
				continue
			}
			if !seen[cleaned] {
				seen[cleaned] = true
				phones = append(phones, cleaned)
			}
		}
	}
	sort.Strings(phones)
	return phones
}

// digitAdjacent reports whether the byte before start or at end is an
// ASCII digit. The phone patterns are ASCII-only, so byte inspection is
// exact here.
func digitAdjacent(text string, start, end int) bool {
	if start > 0 && text[start-1] >= '0' && text[start-1] <= '9' {
		return true
	}
	if end < len(text) && text[end] >= '0' && text[end] <= '9' {
		return true
	}
	return false
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// ExtractHashtags finds #tags in any script
func (e *ArtifactExtractor) ExtractHashtags(text string) []string {
	return e.findAllUnique(e.hashtagPattern, text)
}

// ExtractMentions finds @handles in any script
func (e *ArtifactExtractor) ExtractMentions(text string) []string {
	return e.findAllUnique(e.mentionPattern, text)
}

func (e *ArtifactExtractor) findAllUnique(pattern *regexp.Regexp, text string) []string {
	if text == "" {
		return []string{}
	}
	seen := make(map[string]bool)
	out := []string{}
	for _, m := range pattern.FindAllString(text, -1) {
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	sort.Strings(out)
	return out
}
