package markets

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/bazarkua/polydebate/internal/gamma"
)

type categoryRule struct {
	key  string
	name string
}

// Priority rules win over everything else and are checked across all
// tags before the main set is consulted at all. A market tagged both
// "breaking-news" and "politics" is Breaking, not Politics.
var priorityRules = []categoryRule{
	{"breaking", "Breaking"},
	{"trending", "Trending"},
}

// Main rules are ordered; the first match on a tag decides. Keys match
// when they equal or are contained in the lowercased label or slug.
var mainRules = []categoryRule{
	{"crypto", "Crypto"},
	{"politics", "Politics"},
	{"sports", "Sports"},
	{"science", "Science"},
	{"pop-culture", "Pop Culture"},
	{"business", "Business"},
	{"technology", "Technology"},
	{"finance", "Finance"},
	{"ai", "AI"},
	{"world", "World"},
	{"geopolitics", "Geopolitics"},
}

// resolveCategory maps an event's tag list to a single display category.
// Untagged events land in "Other"; tagged events that match no rule fall
// back to the first tag's label in title case.
func resolveCategory(tags []gamma.Tag) string {
	if len(tags) == 0 {
		return "Other"
	}
	if name, ok := matchRules(tags, priorityRules); ok {
		return name
	}
	if name, ok := matchRules(tags, mainRules); ok {
		return name
	}

	label := tags[0].Label
	if label == "" {
		label = tags[0].Slug
	}
	if label == "" {
		return "Other"
	}
	return cases.Title(language.English).String(label)
}

func matchRules(tags []gamma.Tag, rules []categoryRule) (string, bool) {
	for _, tag := range tags {
		label := strings.ToLower(tag.Label)
		slug := strings.ToLower(tag.Slug)
		for _, r := range rules {
			if strings.Contains(label, r.key) || strings.Contains(slug, r.key) {
				return r.name, true
			}
		}
	}
	return "", false
}

// firstTagID returns the structured id of the event's first tag, or ""
// when the tag list is empty or the first tag is a bare string.
func firstTagID(tags []gamma.Tag) string {
	if len(tags) == 0 {
		return ""
	}
	return tags[0].ID
}
