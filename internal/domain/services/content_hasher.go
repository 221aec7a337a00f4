package services

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"scamsignals/internal/domain/models"
)

// ErrUnsupportedContentType is returned when a content type outside the
// known set is submitted
var ErrUnsupportedContentType = errors.New("unsupported content type")

// hashLength is the number of hex characters kept from the SHA-256 digest
const hashLength = 16

// ContentHasher produces deterministic identity hashes for content so
// that repeated submissions of the same artifact resolve to one record
type ContentHasher struct{}

// NewContentHasher creates a new ContentHasher
func NewContentHasher() *ContentHasher {
	return &ContentHasher{}
}

// NormalizeText trims, collapses internal whitespace to single spaces and
// lowercases. The function is idempotent.
func NormalizeText(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// NormalizeURL reduces a URL to its lowercased host and path, dropping
// scheme, query, fragment and any trailing slash. Unparseable input falls
// back to text normalization.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	withScheme := raw
	if !strings.Contains(withScheme, "://") {
		withScheme = "http://" + withScheme
	}
	parsed, err := url.Parse(withScheme)
	if err != nil || parsed.Host == "" {
		return NormalizeText(raw)
	}
	normalized := parsed.Host + parsed.Path
	normalized = strings.TrimRight(normalized, "/")
	return strings.ToLower(normalized)
}

// Hash computes the canonical identity hash for a piece of content.
// Fields are normalized and joined in a fixed per-type order under a type
// prefix, so equivalent submissions always collide and different content
// types never do.
func (h *ContentHasher) Hash(content *models.RawContent) (string, error) {
	var canonical string
	switch content.Type {
	case models.ContentTypeEmail:
		canonical = fmt.Sprintf("email:%s|%s|%s",
			NormalizeText(content.Subject),
			NormalizeText(content.Content),
			NormalizeText(content.FromEmail),
		)
	case models.ContentTypeWebsite:
		canonical = fmt.Sprintf("website:%s|%s|%s",
			NormalizeURL(content.URL),
			NormalizeText(content.Title),
			NormalizeText(content.Content),
		)
	case models.ContentTypeSocialMedia:
		canonical = fmt.Sprintf("socialmedia:%s|%s|%s|%s",
			strings.ToLower(content.Platform),
			NormalizeText(content.Content),
			NormalizeText(content.AuthorUsername),
			NormalizeURL(content.PostURL),
		)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedContentType, content.Type)
	}

	sum := sha256.Sum256([]byte(canonical))
	return hex.EncodeToString(sum[:])[:hashLength], nil
}
