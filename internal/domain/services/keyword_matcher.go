package services

import (
	"strings"

	"scamsignals/pkg/logger"
)

// KeywordMatcher evaluates keyword category tables and composite
// platform risk rules against content text
type KeywordMatcher struct {
	logger *logger.Logger
}

// NewKeywordMatcher creates a new KeywordMatcher
func NewKeywordMatcher(log *logger.Logger) *KeywordMatcher {
	return &KeywordMatcher{logger: log.WithComponent("keyword-matcher")}
}

// Match lowercases the text once and returns one verdict per category.
// Matching is plain substring containment; every category in the table
// appears in the result.
func (m *KeywordMatcher) Match(text string, table KeywordTable) map[string]bool {
	lowered := strings.ToLower(text)
	categories := make(map[string]bool, len(table))
	for category, phrases := range table {
		hit := false
		for _, phrase := range phrases {
			if strings.Contains(lowered, phrase) {
				hit = true
				break
			}
		}
		categories[category] = hit
	}
	return categories
}

// RuleContext carries the non-keyword facts composite rules test against
type RuleContext struct {
	Categories       map[string]bool
	HasShortenedLink bool
	HasSuspiciousTLD bool
	Content          string
	AuthorUsername   string
}

// EvaluateRules applies the platform's composite rules. Platforms
// without rules yield an empty map.
func (m *KeywordMatcher) EvaluateRules(platform string, rules map[string][]CompositeRule, ctx RuleContext) map[string]bool {
	risks := make(map[string]bool)
	platformRules, ok := rules[strings.ToLower(platform)]
	if !ok {
		return risks
	}

	lowered := strings.ToLower(ctx.Content)
	for _, rule := range platformRules {
		risks[rule.Name] = ruleFires(rule, ctx, lowered)
	}
	return risks
}

func ruleFires(rule CompositeRule, ctx RuleContext, loweredContent string) bool {
	for _, category := range rule.Categories {
		if !ctx.Categories[category] {
			return false
		}
	}
	if rule.RequireShortenedLink && !ctx.HasShortenedLink {
		return false
	}
	if rule.RequireSuspiciousTLD && !ctx.HasSuspiciousTLD {
		return false
	}
	if rule.RequireContentSubstring != "" && !strings.Contains(loweredContent, rule.RequireContentSubstring) {
		return false
	}
	if rule.RequireUnverifiedAuthor && strings.HasPrefix(ctx.AuthorUsername, "verified") {
		return false
	}
	return true
}
