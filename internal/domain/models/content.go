package models

// ContentType identifies the kind of content under analysis
type ContentType string

const (
	ContentTypeEmail       ContentType = "email"
	ContentTypeWebsite     ContentType = "website"
	ContentTypeSocialMedia ContentType = "socialmedia"
)

// Valid reports whether the content type is one of the supported kinds
func (t ContentType) Valid() bool {
	switch t {
	case ContentTypeEmail, ContentTypeWebsite, ContentTypeSocialMedia:
		return true
	}
	return false
}

// EngagementMetrics holds raw interaction counts for a social media post
type EngagementMetrics struct {
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
	Shares   int `json:"shares"`
	Views    int `json:"views"`
}

// WebsiteMetadata carries optional TLS and registration details captured
// alongside a website snapshot
type WebsiteMetadata struct {
	SSLValid      bool `json:"ssl_valid"`
	SSLExpired    bool `json:"ssl_expired"`
	DomainAgeDays int  `json:"domain_age_days"`
	HasScreenshot bool `json:"has_screenshot"`
}

// RawContent is the input to the signal extraction pipeline. Only the
// fields relevant to its Type are consulted.
type RawContent struct {
	Type ContentType `json:"content_type"`

	// Email fields
	Subject      string `json:"subject,omitempty"`
	FromEmail    string `json:"from_email,omitempty"`
	ReplyToEmail string `json:"reply_to_email,omitempty"`

	// Website fields
	URL      string           `json:"url,omitempty"`
	Title    string           `json:"title,omitempty"`
	Metadata *WebsiteMetadata `json:"metadata,omitempty"`

	// Social media fields
	Platform             string             `json:"platform,omitempty"`
	AuthorUsername       string             `json:"author_username,omitempty"`
	PostURL              string             `json:"post_url,omitempty"`
	AuthorFollowersCount int                `json:"author_followers_count,omitempty"`
	Engagement           *EngagementMetrics `json:"engagement_metrics,omitempty"`

	// Shared
	Content string `json:"content"`
}
