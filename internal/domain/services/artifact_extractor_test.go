package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"scamsignals/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Format: "json"})
}

func TestArtifactExtractor_URLWithGluedMalayWord(t *testing.T) {
	e := NewArtifactExtractor(7, testLogger())

	text := "Sila klik https://secure-bank.tk/loginSekiranya anda tidak bertindak"
	urls := e.ExtractURLs(text)

	assert.Equal(t, []string{"https://secure-bank.tk/login"}, urls)
}

func TestArtifactExtractor_URLAdjacentToCJK(t *testing.T) {
	e := NewArtifactExtractor(7, testLogger())

	text := "点击https://evil-site.xyz/verify查看详情"
	urls := e.ExtractURLs(text)

	assert.Equal(t, []string{"https://evil-site.xyz/verify"}, urls)
}

func TestArtifactExtractor_BareDomainInference(t *testing.T) {
	e := NewArtifactExtractor(7, testLogger())

	urls := e.ExtractURLs("Lawati www.free-money.com.my sekarang")

	assert.Equal(t, []string{"http://free-money.com.my"}, urls)
}

func TestArtifactExtractor_AdjacentBareDomains(t *testing.T) {
	e := NewArtifactExtractor(7, testLogger())

	// One space both closes the first domain and opens the second
	urls := e.ExtractURLs("visit a.example.com b.example.org now")

	assert.Equal(t, []string{"http://a.example.com", "http://b.example.org"}, urls)
}

func TestArtifactExtractor_BareDomainDenyWords(t *testing.T) {
	e := NewArtifactExtractor(7, testLogger())

	// Agglutinated Malay prose that passes the domain shape test
	urls := e.ExtractURLs("Akaun anda.dibekukan.my jika tidak bertindak")

	assert.Empty(t, urls)
}

func TestArtifactExtractor_BareDomainCoveredByURL(t *testing.T) {
	e := NewArtifactExtractor(7, testLogger())

	text := "Go to https://shop.example.co.uk/deals or shop.example.co.uk directly"
	urls := e.ExtractURLs(text)

	assert.Equal(t, []string{"https://shop.example.co.uk/deals"}, urls)
}

func TestArtifactExtractor_URLTrailingPunctuation(t *testing.T) {
	e := NewArtifactExtractor(7, testLogger())

	urls := e.ExtractURLs("Verify at https://account-update.xyz/confirm!!")

	assert.Equal(t, []string{"https://account-update.xyz/confirm"}, urls)
}

func TestArtifactExtractor_URLDomains(t *testing.T) {
	e := NewArtifactExtractor(7, testLogger())

	domains := e.URLDomains([]string{
		"https://Secure-Bank.tk/login",
		"http://bit.ly/abc123",
		"https://secure-bank.tk/reset",
	})

	assert.Equal(t, []string{"bit.ly", "secure-bank.tk"}, domains)
}

func TestArtifactExtractor_EmailsAdjacentToCJK(t *testing.T) {
	e := NewArtifactExtractor(7, testLogger())

	emails := e.ExtractEmails("联系support@fake-bank.com咨询详情")

	assert.Equal(t, []string{"support@fake-bank.com"}, emails)
}

func TestArtifactExtractor_PhoneNumbers(t *testing.T) {
	e := NewArtifactExtractor(7, testLogger())

	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "international with separators",
			text:     "Hubungi +60 123-456-789 segera",
			expected: []string{"+60 123-456-789"},
		},
		{
			name:     "parenthesized us format",
			text:     "Call (555) 123-4567 today",
			expected: []string{"(555) 123-4567"},
		},
		{
			name:     "digit run inside longer number rejected",
			text:     "Ref 12345678901234567890",
			expected: []string{},
		},
		{
			name:     "no numbers",
			text:     "no digits here",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, e.ExtractPhoneNumbers(tt.text))
		})
	}
}

func TestArtifactExtractor_HashtagsAndMentionsWithCJK(t *testing.T) {
	e := NewArtifactExtractor(7, testLogger())

	text := "恭喜 #中奖 #prize 联系 @官方客服 @scammer"

	assert.Equal(t, []string{"#prize", "#中奖"}, e.ExtractHashtags(text))
	assert.Equal(t, []string{"@scammer", "@官方客服"}, e.ExtractMentions(text))
}

func TestArtifactExtractor_HashtagsAndMentionsWithThai(t *testing.T) {
	e := NewArtifactExtractor(7, testLogger())

	text := "โปรโมชั่น #ของฟรี และ #中文 #deal จาก @ร้านค้าปลอม"

	assert.Equal(t, []string{"#deal", "#ของฟรี", "#中文"}, e.ExtractHashtags(text))
	assert.Equal(t, []string{"@ร้านค้าปลอม"}, e.ExtractMentions(text))
}

func TestArtifactExtractor_EmptyInput(t *testing.T) {
	e := NewArtifactExtractor(7, testLogger())

	artifacts := e.Extract("", DefaultProfiles()["socialmedia"])

	assert.NotNil(t, artifacts.URLs)
	assert.Empty(t, artifacts.URLs)
	assert.Empty(t, artifacts.URLDomains)
	assert.Empty(t, artifacts.PhoneNumbers)
	assert.Empty(t, artifacts.Hashtags)
	assert.Empty(t, artifacts.Mentions)
}
