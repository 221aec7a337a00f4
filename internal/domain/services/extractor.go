package services

import (
	"fmt"
	"strings"

	"scamsignals/internal/config"
	"scamsignals/internal/domain/models"
	"scamsignals/pkg/logger"
)

// SignalExtractor assembles the per-content-type pipelines from the
// shared components. Extraction is a pure function of its input: the
// same content always produces the same document.
type SignalExtractor struct {
	profiles   map[models.ContentType]*ExtractionProfile
	artifacts  *ArtifactExtractor
	domains    *DomainAnalyzer
	keywords   *KeywordMatcher
	engagement *EngagementEvaluator
	newDomain  int
	logger     *logger.Logger
}

// NewSignalExtractor wires the extraction pipeline from config
func NewSignalExtractor(cfg config.ExtractionConfig, log *logger.Logger) *SignalExtractor {
	return &SignalExtractor{
		profiles:   DefaultProfiles(),
		artifacts:  NewArtifactExtractor(cfg.MinPhoneDigits, log),
		domains:    NewDomainAnalyzer(cfg, log),
		keywords:   NewKeywordMatcher(log),
		engagement: NewEngagementEvaluator(cfg, log),
		newDomain:  cfg.NewDomainThresholdDays,
		logger:     log.WithComponent("signal-extractor"),
	}
}

// Extract dispatches to the pipeline for the content type
func (s *SignalExtractor) Extract(content *models.RawContent) (*models.SignalsDocument, error) {
	switch content.Type {
	case models.ContentTypeEmail:
		return s.extractEmail(content), nil
	case models.ContentTypeWebsite:
		return s.extractWebsite(content), nil
	case models.ContentTypeSocialMedia:
		return s.extractSocialMedia(content), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedContentType, content.Type)
	}
}

func (s *SignalExtractor) extractEmail(content *models.RawContent) *models.SignalsDocument {
	profile := s.profiles[models.ContentTypeEmail]

	text := content.Content
	if content.Subject != "" {
		text = content.Subject + "\n\n" + content.Content
	}

	artifacts := s.artifacts.Extract(text, profile)
	categories := s.keywords.Match(text, profile.Keywords)

	return &models.SignalsDocument{
		ContentType: models.ContentTypeEmail,
		Artifacts:   artifacts,
		EmailMeta:   buildEmailMeta(content.FromEmail, content.ReplyToEmail),
		Heuristics: models.HeuristicFlags{
			Categories:       categories,
			HasShortenedLink: s.domains.HasShortener(artifacts.URLDomains),
			HasSuspiciousTLD: s.domains.HasSuspiciousTLD(artifacts.URLDomains),
			Counts: models.ArtifactCounts{
				Links:  len(artifacts.URLs),
				Emails: len(artifacts.Emails),
				Phones: len(artifacts.PhoneNumbers),
			},
		},
	}
}

func (s *SignalExtractor) extractWebsite(content *models.RawContent) *models.SignalsDocument {
	profile := s.profiles[models.ContentTypeWebsite]

	artifacts := s.artifacts.Extract(content.Content, profile)
	analysis := s.domains.Analyze(content.URL)
	shape := s.domains.SuspiciousShape(analysis)
	categories := s.keywords.Match(content.Title+" "+content.Content, profile.Keywords)

	doc := &models.SignalsDocument{
		ContentType:    models.ContentTypeWebsite,
		Artifacts:      artifacts,
		DomainAnalysis: &analysis,
		ContentAnalysis: &models.ContentAnalysis{
			Title:         content.Title,
			ContentLength: len(content.Content),
		},
		FormIndicators:     buildFormIndicators(content.Title + " " + content.Content),
		SuspiciousPatterns: &shape,
		Heuristics: models.HeuristicFlags{
			Categories:       categories,
			HasShortenedLink: analysis.HasShortened,
			HasSuspiciousTLD: analysis.HasSuspiciousTLD,
			Counts: models.ArtifactCounts{
				Links:  len(artifacts.URLs),
				Emails: len(artifacts.Emails),
				Phones: len(artifacts.PhoneNumbers),
			},
		},
	}

	if content.Metadata != nil {
		doc.ContentAnalysis.HasScreenshot = content.Metadata.HasScreenshot
		doc.SSLSecurity = &models.SSLSecurity{
			HasSSL:        content.Metadata.SSLValid,
			SSLExpired:    content.Metadata.SSLExpired,
			DomainAgeDays: content.Metadata.DomainAgeDays,
			IsNewDomain:   content.Metadata.DomainAgeDays < s.newDomain,
		}
	}

	return doc
}

func (s *SignalExtractor) extractSocialMedia(content *models.RawContent) *models.SignalsDocument {
	profile := s.profiles[models.ContentTypeSocialMedia]

	artifacts := s.artifacts.Extract(content.Content, profile)
	categories := s.keywords.Match(content.Content, profile.Keywords)
	hasShortened := s.domains.HasShortener(artifacts.URLDomains)
	hasSuspicious := s.domains.HasSuspiciousTLD(artifacts.URLDomains)

	risks := s.keywords.EvaluateRules(content.Platform, profile.PlatformRules, RuleContext{
		Categories:       categories,
		HasShortenedLink: hasShortened,
		HasSuspiciousTLD: hasSuspicious,
		Content:          content.Content,
		AuthorUsername:   content.AuthorUsername,
	})

	return &models.SignalsDocument{
		ContentType: models.ContentTypeSocialMedia,
		Artifacts:   artifacts,
		PlatformMeta: &models.PlatformMeta{
			Platform:             strings.ToLower(content.Platform),
			AuthorUsername:       content.AuthorUsername,
			PostURL:              content.PostURL,
			AuthorFollowersCount: content.AuthorFollowersCount,
		},
		EngagementMetrics: content.Engagement,
		EngagementSignals: s.engagement.Evaluate(content.Engagement, content.AuthorFollowersCount),
		Heuristics: models.HeuristicFlags{
			Categories:       categories,
			HasShortenedLink: hasShortened,
			HasSuspiciousTLD: hasSuspicious,
			Counts: models.ArtifactCounts{
				Links:    len(artifacts.URLs),
				Phones:   len(artifacts.PhoneNumbers),
				Hashtags: len(artifacts.Hashtags),
				Mentions: len(artifacts.Mentions),
			},
		},
		PlatformRisks: risks,
	}
}

// buildEmailMeta derives sender domains and the reply-to mismatch flag.
// The mismatch only fires when both addresses are present and their
// domains differ.
func buildEmailMeta(fromEmail, replyToEmail string) *models.EmailMeta {
	fromDomain := emailDomain(fromEmail)
	replyToDomain := emailDomain(replyToEmail)
	return &models.EmailMeta{
		FromEmail:       fromEmail,
		FromDomain:      fromDomain,
		ReplyToEmail:    replyToEmail,
		ReplyToDomain:   replyToDomain,
		ReplyToMismatch: fromDomain != "" && replyToDomain != "" && fromDomain != replyToDomain,
	}
}

func emailDomain(addr string) string {
	idx := strings.LastIndex(addr, "@")
	if idx < 0 || idx == len(addr)-1 {
		return ""
	}
	return strings.ToLower(addr[idx+1:])
}

// buildFormIndicators applies the basic form heuristics to page text
func buildFormIndicators(text string) *models.FormIndicators {
	lowered := strings.ToLower(text)
	hasInput := false
	for _, k := range []string{"input", "form", "submit", "button"} {
		if strings.Contains(lowered, k) {
			hasInput = true
			break
		}
	}
	return &models.FormIndicators{
		HasInputFields:   hasInput,
		HasPasswordField: strings.Contains(lowered, "password"),
		HasEmailField:    strings.Contains(lowered, "email"),
	}
}
