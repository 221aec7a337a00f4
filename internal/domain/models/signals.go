package models

// Artifacts holds the deduplicated, sorted sets of machine-readable
// tokens pulled out of free text
type Artifacts struct {
	URLs         []string `json:"urls"`
	URLDomains   []string `json:"url_domains"`
	Emails       []string `json:"emails,omitempty"`
	PhoneNumbers []string `json:"phone_numbers"`
	Hashtags     []string `json:"hashtags,omitempty"`
	Mentions     []string `json:"mentions,omitempty"`
}

// DomainAnalysis describes the structure and risk flags of a single URL
type DomainAnalysis struct {
	FullDomain       string `json:"full_domain"`
	TLD              string `json:"tld"`
	SLD              string `json:"sld"`
	Path             string `json:"path"`
	Query            string `json:"query"`
	Scheme           string `json:"scheme"`
	HasSuspiciousTLD bool   `json:"has_suspicious_tld"`
	HasShortened     bool   `json:"has_shortened"`
	IsLookalikeBrand bool   `json:"is_lookalike_brand"`
}

// SuspiciousPatterns holds structural red flags in a domain and path
type SuspiciousPatterns struct {
	RandomSubdomain bool `json:"random_subdomain"`
	NumbersInDomain bool `json:"numbers_in_domain"`
	MultipleHyphens bool `json:"multiple_hyphens"`
	SuspiciousPath  bool `json:"suspicious_path"`
}

// EmailMeta describes the sender envelope of an email
type EmailMeta struct {
	FromEmail       string `json:"from_email"`
	FromDomain      string `json:"from_domain"`
	ReplyToEmail    string `json:"reply_to_email"`
	ReplyToDomain   string `json:"reply_to_domain"`
	ReplyToMismatch bool   `json:"reply_to_mismatch"`
}

// PlatformMeta describes the social media post envelope
type PlatformMeta struct {
	Platform             string `json:"platform"`
	AuthorUsername       string `json:"author_username"`
	PostURL              string `json:"post_url"`
	AuthorFollowersCount int    `json:"author_followers_count"`
}

// EngagementSignals is derived from raw engagement counts. It is only
// present when a meaningful follower count was supplied.
type EngagementSignals struct {
	EngagementToFollowerRatio float64 `json:"engagement_to_follower_ratio"`
	LowEngagementRate         bool    `json:"low_engagement_rate"`
	HighEngagementRate        bool    `json:"high_engagement_rate"`
}

// ContentAnalysis summarizes the page body of a website snapshot
type ContentAnalysis struct {
	Title         string `json:"title"`
	ContentLength int    `json:"content_length"`
	HasScreenshot bool   `json:"has_screenshot"`
}

// SSLSecurity summarizes TLS and registration metadata of a website
type SSLSecurity struct {
	HasSSL        bool `json:"has_ssl"`
	SSLExpired    bool `json:"ssl_expired"`
	DomainAgeDays int  `json:"domain_age_days"`
	IsNewDomain   bool `json:"is_new_domain"`
}

// FormIndicators flags credential-harvesting page elements
type FormIndicators struct {
	HasInputFields   bool `json:"has_input_fields"`
	HasPasswordField bool `json:"has_password_field"`
	HasEmailField    bool `json:"has_email_field"`
}

// ArtifactCounts holds per-kind artifact totals for quick triage
type ArtifactCounts struct {
	Links    int `json:"links"`
	Emails   int `json:"emails"`
	Phones   int `json:"phones"`
	Hashtags int `json:"hashtags"`
	Mentions int `json:"mentions"`
}

// HeuristicFlags holds the keyword category verdicts and link heuristics
type HeuristicFlags struct {
	Categories       map[string]bool `json:"categories"`
	HasShortenedLink bool            `json:"has_shortened_link"`
	HasSuspiciousTLD bool            `json:"has_suspicious_tld"`
	Counts           ArtifactCounts  `json:"counts"`
}

// SignalsDocument is the structured output of the extraction pipeline.
// Sections that do not apply to the content type are omitted entirely.
type SignalsDocument struct {
	ContentType        ContentType         `json:"content_type"`
	Artifacts          Artifacts           `json:"artifacts"`
	EmailMeta          *EmailMeta          `json:"email_meta,omitempty"`
	DomainAnalysis     *DomainAnalysis     `json:"domain_analysis,omitempty"`
	ContentAnalysis    *ContentAnalysis    `json:"content_analysis,omitempty"`
	SSLSecurity        *SSLSecurity        `json:"ssl_security,omitempty"`
	FormIndicators     *FormIndicators     `json:"form_indicators,omitempty"`
	SuspiciousPatterns *SuspiciousPatterns `json:"suspicious_patterns,omitempty"`
	PlatformMeta       *PlatformMeta       `json:"platform_meta,omitempty"`
	EngagementMetrics  *EngagementMetrics  `json:"engagement_metrics,omitempty"`
	EngagementSignals  *EngagementSignals  `json:"engagement_signals,omitempty"`
	Heuristics         HeuristicFlags      `json:"heuristics"`
	PlatformRisks      map[string]bool     `json:"platform_risks,omitempty"`
	CheckerAnalysis    string              `json:"checker_analysis,omitempty"`
}
