package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"scamsignals/internal/config"
)

func TestDomainAnalyzer_Analyze(t *testing.T) {
	a := NewDomainAnalyzer(config.DefaultExtraction(), testLogger())

	tests := []struct {
		name          string
		url           string
		fullDomain    string
		tld           string
		suspiciousTLD bool
		shortened     bool
		lookalike     bool
	}{
		{
			name:          "lookalike on suspicious tld",
			url:           "http://paypal-verify-account.tk/login?session=1",
			fullDomain:    "paypal-verify-account.tk",
			tld:           "tk",
			suspiciousTLD: true,
			lookalike:     true,
		},
		{
			name:       "canonical brand domain is clean",
			url:        "https://www.paypal.com/signin",
			fullDomain: "www.paypal.com",
			tld:        "com",
		},
		{
			name:       "shortener",
			url:        "https://bit.ly/3xYz",
			fullDomain: "bit.ly",
			tld:        "ly",
			shortened:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis := a.Analyze(tt.url)

			assert.Equal(t, tt.fullDomain, analysis.FullDomain)
			assert.Equal(t, tt.tld, analysis.TLD)
			assert.Equal(t, tt.suspiciousTLD, analysis.HasSuspiciousTLD)
			assert.Equal(t, tt.shortened, analysis.HasShortened)
			assert.Equal(t, tt.lookalike, analysis.IsLookalikeBrand)
		})
	}
}

func TestDomainAnalyzer_AnalyzeUnparseable(t *testing.T) {
	a := NewDomainAnalyzer(config.DefaultExtraction(), testLogger())

	analysis := a.Analyze("not a url at all")

	assert.Empty(t, analysis.FullDomain)
	assert.False(t, analysis.HasSuspiciousTLD)
	assert.False(t, analysis.IsLookalikeBrand)
}

func TestDomainAnalyzer_SuspiciousShape(t *testing.T) {
	a := NewDomainAnalyzer(config.DefaultExtraction(), testLogger())

	analysis := a.Analyze("http://a1b2c3d4e5.secure-login-update-account.com/verify/session")
	shape := a.SuspiciousShape(analysis)

	assert.True(t, shape.RandomSubdomain)
	assert.True(t, shape.NumbersInDomain)
	assert.True(t, shape.MultipleHyphens)
	assert.True(t, shape.SuspiciousPath)

	clean := a.SuspiciousShape(a.Analyze("https://example.org/about"))
	assert.False(t, clean.RandomSubdomain)
	assert.False(t, clean.NumbersInDomain)
	assert.False(t, clean.MultipleHyphens)
	assert.False(t, clean.SuspiciousPath)
}

func TestDomainAnalyzer_HostSetChecks(t *testing.T) {
	a := NewDomainAnalyzer(config.DefaultExtraction(), testLogger())

	assert.True(t, a.HasSuspiciousTLD([]string{"example.com", "grab-prize.xyz"}))
	assert.False(t, a.HasSuspiciousTLD([]string{"example.com", "example.org"}))

	assert.True(t, a.HasShortener([]string{"example.com", "bit.ly"}))
	assert.False(t, a.HasShortener([]string{"example.com"}))
}
