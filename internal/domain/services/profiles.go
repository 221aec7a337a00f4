package services

import "scamsignals/internal/domain/models"

// KeywordTable maps a category name to the phrases that trigger it
type KeywordTable map[string][]string

// CompositeRule is a declarative platform risk rule. The rule fires when
// every listed category is set and every extra requirement holds.
type CompositeRule struct {
	Name                    string
	Categories              []string
	RequireShortenedLink    bool
	RequireSuspiciousTLD    bool
	RequireContentSubstring string
	RequireUnverifiedAuthor bool
}

// ExtractionProfile configures the pipeline for one content type: which
// sub-extractors run, which keyword table applies, and which composite
// rules apply per platform.
type ExtractionProfile struct {
	Keywords        KeywordTable
	PlatformRules   map[string][]CompositeRule
	ExtractEmails   bool
	ExtractHashtags bool
	ExtractMentions bool
}

// emailKeywords flags scam tells specific to email bodies
var emailKeywords = KeywordTable{
	"otp_request":        {"otp", "one-time password", "verification code", "6-digit code"},
	"credential_request": {"password", "login", "account details", "pin"},
	"payment_request":    {"transfer", "bank", "wire", "crypto", "gift card", "bitcoin", "usdt", "wallet"},
	"urgency":            {"urgent", "immediately", "asap", "deadline", "suspend", "suspension", "24 hours", "48 hours"},
	"attachment_mention": {"attached", "attachment", ".pdf", ".zip", ".doc", ".xls"},
}

var socialMediaKeywords = KeywordTable{
	"giveaway_mention":   {"giveaway", "free", "win", "prize", "contest", "lucky"},
	"investment_mention": {"investment", "profit", "earn", "money", "crypto", "bitcoin", "trading"},
	"urgency_mention":    {"urgent", "limited time", "last chance", "hurry", "asap", "deadline"},
	"romance_scam":       {"love", "relationship", "marriage", "dating", "romance"},
	"impersonation":      {"official", "verified", "celeb", "celebrity", "brand"},
	"suspicious_contact": {"whatsapp", "telegram", "dm", "direct message", "private message"},
}

var websiteKeywords = KeywordTable{
	"login_form":              {"login", "sign in", "password", "username", "account"},
	"payment_form":            {"payment", "credit card", "bank", "transfer", "wire"},
	"urgency_tactics":         {"urgent", "limited time", "last chance", "hurry", "asap", "deadline", "suspend"},
	"authority_impersonation": {"government", "official", "bank", "police", "irs", "tax"},
	"investment_scam":         {"investment", "profit", "earn", "money", "crypto", "bitcoin", "trading"},
	"tech_support":            {"tech support", "computer", "virus", "microsoft", "apple support"},
	"lottery_winner":          {"lottery", "winner", "prize", "claim", "million"},
	"romance_scam":            {"love", "relationship", "marriage", "dating", "romance"},
	"suspicious_contact":      {"whatsapp", "telegram", "dm", "direct message"},
}

// platformRules encodes how keyword categories combine into per-platform
// risk flags for social media posts
var platformRules = map[string][]CompositeRule{
	"facebook": {
		{Name: "fake_giveaway", Categories: []string{"giveaway_mention"}, RequireShortenedLink: true},
		{Name: "impersonation", Categories: []string{"impersonation"}, RequireUnverifiedAuthor: true},
	},
	"instagram": {
		{Name: "fake_giveaway", Categories: []string{"giveaway_mention"}, RequireShortenedLink: true},
		{Name: "suspicious_promotion", Categories: []string{"investment_mention"}, RequireSuspiciousTLD: true},
	},
	"twitter": {
		{Name: "fake_news", Categories: []string{"impersonation"}, RequireShortenedLink: true},
		{Name: "crypto_scam", Categories: []string{"investment_mention"}, RequireContentSubstring: "crypto"},
	},
	"tiktok": {
		{Name: "fake_challenge", Categories: []string{"giveaway_mention", "urgency_mention"}},
		{Name: "suspicious_promotion", Categories: []string{"investment_mention"}, RequireSuspiciousTLD: true},
	},
	"linkedin": {
		{Name: "fake_job", Categories: []string{"investment_mention", "urgency_mention"}},
		{Name: "business_scam", Categories: []string{"investment_mention"}, RequireSuspiciousTLD: true},
	},
}

// DefaultProfiles returns the stock per-content-type pipelines
func DefaultProfiles() map[models.ContentType]*ExtractionProfile {
	return map[models.ContentType]*ExtractionProfile{
		models.ContentTypeEmail: {
			Keywords:      emailKeywords,
			ExtractEmails: true,
		},
		models.ContentTypeWebsite: {
			Keywords:      websiteKeywords,
			ExtractEmails: true,
		},
		models.ContentTypeSocialMedia: {
			Keywords:        socialMediaKeywords,
			PlatformRules:   platformRules,
			ExtractHashtags: true,
			ExtractMentions: true,
		},
	}
}
