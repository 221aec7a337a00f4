package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywordMatcher_Match(t *testing.T) {
	m := NewKeywordMatcher(testLogger())

	categories := m.Match("URGENT: enter your OTP to avoid account suspension", emailKeywords)

	// Every category in the table gets a verdict
	assert.Len(t, categories, len(emailKeywords))
	assert.True(t, categories["urgency"])
	assert.True(t, categories["otp_request"])
	assert.False(t, categories["payment_request"])
	assert.False(t, categories["attachment_mention"])
}

func TestKeywordMatcher_MatchEmptyText(t *testing.T) {
	m := NewKeywordMatcher(testLogger())

	categories := m.Match("", websiteKeywords)

	assert.Len(t, categories, len(websiteKeywords))
	for category, hit := range categories {
		assert.False(t, hit, "category %s should not fire on empty text", category)
	}
}

func TestKeywordMatcher_EvaluateRules(t *testing.T) {
	m := NewKeywordMatcher(testLogger())

	tests := []struct {
		name     string
		platform string
		ctx      RuleContext
		expected map[string]bool
	}{
		{
			name:     "facebook giveaway with shortened link",
			platform: "Facebook",
			ctx: RuleContext{
				Categories:       map[string]bool{"giveaway_mention": true},
				HasShortenedLink: true,
			},
			expected: map[string]bool{"fake_giveaway": true, "impersonation": false},
		},
		{
			name:     "facebook giveaway without shortened link",
			platform: "facebook",
			ctx: RuleContext{
				Categories: map[string]bool{"giveaway_mention": true},
			},
			expected: map[string]bool{"fake_giveaway": false, "impersonation": false},
		},
		{
			name:     "twitter crypto scam needs the substring",
			platform: "twitter",
			ctx: RuleContext{
				Categories: map[string]bool{"investment_mention": true},
				Content:    "Double your CRYPTO holdings overnight",
			},
			expected: map[string]bool{"fake_news": false, "crypto_scam": true},
		},
		{
			name:     "tiktok challenge needs both categories",
			platform: "tiktok",
			ctx: RuleContext{
				Categories: map[string]bool{"giveaway_mention": true, "urgency_mention": false},
			},
			expected: map[string]bool{"fake_challenge": false, "suspicious_promotion": false},
		},
		{
			name:     "unknown platform yields no risks",
			platform: "myspace",
			ctx:      RuleContext{Categories: map[string]bool{"giveaway_mention": true}},
			expected: map[string]bool{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			risks := m.EvaluateRules(tt.platform, platformRules, tt.ctx)
			assert.Equal(t, tt.expected, risks)
		})
	}
}

func TestKeywordMatcher_UnverifiedAuthorRule(t *testing.T) {
	m := NewKeywordMatcher(testLogger())

	ctx := RuleContext{
		Categories:     map[string]bool{"impersonation": true},
		AuthorUsername: "verified_support",
	}
	risks := m.EvaluateRules("facebook", platformRules, ctx)
	assert.False(t, risks["impersonation"])

	ctx.AuthorUsername = "free.prizes.2024"
	risks = m.EvaluateRules("facebook", platformRules, ctx)
	assert.True(t, risks["impersonation"])
}
