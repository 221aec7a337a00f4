package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scamsignals/internal/config"
	"scamsignals/internal/domain/models"
)

func newTestExtractor() *SignalExtractor {
	return NewSignalExtractor(config.DefaultExtraction(), testLogger())
}

func TestSignalExtractor_Email(t *testing.T) {
	s := newTestExtractor()

	doc, err := s.Extract(&models.RawContent{
		Type:         models.ContentTypeEmail,
		Subject:      "URGENT: your account will be suspended",
		Content:      "Enter your OTP and password at https://secure-login.xyz/verify within 24 hours.",
		FromEmail:    "support@company.com",
		ReplyToEmail: "recovery@gmail.com",
	})
	require.NoError(t, err)

	assert.Equal(t, models.ContentTypeEmail, doc.ContentType)
	assert.Equal(t, []string{"https://secure-login.xyz/verify"}, doc.Artifacts.URLs)
	assert.Equal(t, []string{"secure-login.xyz"}, doc.Artifacts.URLDomains)

	assert.True(t, doc.Heuristics.Categories["urgency"])
	assert.True(t, doc.Heuristics.Categories["otp_request"])
	assert.True(t, doc.Heuristics.Categories["credential_request"])
	assert.True(t, doc.Heuristics.HasSuspiciousTLD)
	assert.False(t, doc.Heuristics.HasShortenedLink)
	assert.Equal(t, 1, doc.Heuristics.Counts.Links)

	require.NotNil(t, doc.EmailMeta)
	assert.Equal(t, "company.com", doc.EmailMeta.FromDomain)
	assert.Equal(t, "gmail.com", doc.EmailMeta.ReplyToDomain)
	assert.True(t, doc.EmailMeta.ReplyToMismatch)

	// Sections for other content types stay absent
	assert.Nil(t, doc.DomainAnalysis)
	assert.Nil(t, doc.PlatformMeta)
}

func TestSignalExtractor_EmailNoReplyToMismatch(t *testing.T) {
	s := newTestExtractor()

	doc, err := s.Extract(&models.RawContent{
		Type:      models.ContentTypeEmail,
		Content:   "hello",
		FromEmail: "a@company.com",
	})
	require.NoError(t, err)

	require.NotNil(t, doc.EmailMeta)
	assert.False(t, doc.EmailMeta.ReplyToMismatch)
}

func TestSignalExtractor_Website(t *testing.T) {
	s := newTestExtractor()

	doc, err := s.Extract(&models.RawContent{
		Type:    models.ContentTypeWebsite,
		URL:     "http://paypal-secure-update.tk/login",
		Title:   "PayPal Login",
		Content: "Submit your password and email to sign in and restore access.",
		Metadata: &models.WebsiteMetadata{
			SSLValid:      false,
			DomainAgeDays: 10,
			HasScreenshot: true,
		},
	})
	require.NoError(t, err)

	require.NotNil(t, doc.DomainAnalysis)
	assert.Equal(t, "paypal-secure-update.tk", doc.DomainAnalysis.FullDomain)
	assert.True(t, doc.DomainAnalysis.HasSuspiciousTLD)
	assert.True(t, doc.DomainAnalysis.IsLookalikeBrand)

	assert.True(t, doc.Heuristics.Categories["login_form"])
	assert.True(t, doc.Heuristics.HasSuspiciousTLD)

	require.NotNil(t, doc.FormIndicators)
	assert.True(t, doc.FormIndicators.HasInputFields)
	assert.True(t, doc.FormIndicators.HasPasswordField)
	assert.True(t, doc.FormIndicators.HasEmailField)

	require.NotNil(t, doc.SuspiciousPatterns)
	assert.True(t, doc.SuspiciousPatterns.SuspiciousPath)

	require.NotNil(t, doc.SSLSecurity)
	assert.False(t, doc.SSLSecurity.HasSSL)
	assert.True(t, doc.SSLSecurity.IsNewDomain)

	require.NotNil(t, doc.ContentAnalysis)
	assert.True(t, doc.ContentAnalysis.HasScreenshot)
	assert.Equal(t, "PayPal Login", doc.ContentAnalysis.Title)
}

func TestSignalExtractor_WebsiteWithoutMetadata(t *testing.T) {
	s := newTestExtractor()

	doc, err := s.Extract(&models.RawContent{
		Type:    models.ContentTypeWebsite,
		URL:     "https://example.org/about",
		Content: "plain page",
	})
	require.NoError(t, err)

	assert.Nil(t, doc.SSLSecurity)
}

func TestSignalExtractor_SocialMedia(t *testing.T) {
	s := newTestExtractor()

	doc, err := s.Extract(&models.RawContent{
		Type:                 models.ContentTypeSocialMedia,
		Platform:             "Facebook",
		AuthorUsername:       "free.prizes.2024",
		PostURL:              "https://facebook.com/posts/1",
		AuthorFollowersCount: 10000,
		Engagement:           &models.EngagementMetrics{Likes: 5},
		Content:              "FREE iPhone giveaway!! Click https://bit.ly/win-now #giveaway @winner",
	})
	require.NoError(t, err)

	require.NotNil(t, doc.PlatformMeta)
	assert.Equal(t, "facebook", doc.PlatformMeta.Platform)
	assert.Equal(t, 10000, doc.PlatformMeta.AuthorFollowersCount)

	assert.True(t, doc.Heuristics.Categories["giveaway_mention"])
	assert.True(t, doc.Heuristics.HasShortenedLink)
	assert.True(t, doc.PlatformRisks["fake_giveaway"])

	assert.Equal(t, []string{"#giveaway"}, doc.Artifacts.Hashtags)
	assert.Equal(t, []string{"@winner"}, doc.Artifacts.Mentions)
	assert.Equal(t, 1, doc.Heuristics.Counts.Hashtags)
	assert.Equal(t, 1, doc.Heuristics.Counts.Mentions)

	require.NotNil(t, doc.EngagementSignals)
	assert.True(t, doc.EngagementSignals.LowEngagementRate)
}

func TestSignalExtractor_SocialMediaWithoutFollowers(t *testing.T) {
	s := newTestExtractor()

	doc, err := s.Extract(&models.RawContent{
		Type:       models.ContentTypeSocialMedia,
		Platform:   "twitter",
		Content:    "just a post",
		Engagement: &models.EngagementMetrics{Likes: 3},
	})
	require.NoError(t, err)

	assert.Nil(t, doc.EngagementSignals)
	require.NotNil(t, doc.EngagementMetrics)
	assert.Equal(t, 3, doc.EngagementMetrics.Likes)
}

func TestSignalExtractor_UnsupportedType(t *testing.T) {
	s := newTestExtractor()

	_, err := s.Extract(&models.RawContent{Type: "sms", Content: "hello"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedContentType))
}
