package gdelt

import (
	"strings"
	"unicode"

	"github.com/cececo-dev/cececo-hub/database/models"
	"github.com/cececo-dev/cececo-hub/services"
	"github.com/cececo-dev/cececo-hub/utils"
)

var impactTypeKeywords = []struct {
	impactType string
	keywords   []string
}{
	{"policy", []string{"policy", "policies", "strategy", "plan", "target"}},
	{"regulation", []string{"regulation", "regulatory", "rule", "code", "standard"}},
	{"project", []string{"project", "pilot", "initiative", "program"}},
	{"achievement", []string{"achievement", "milestone", "success", "completed"}},
}

// InferImpactType buckets an article by keyword. Policy is the default
// because most of the feed is government announcements.
func InferImpactType(title, summary string) string {
	text := strings.ToLower(title + " " + summary)
	for _, bucket := range impactTypeKeywords {
		for _, keyword := range bucket.keywords {
			if strings.Contains(text, keyword) {
				return bucket.impactType
			}
		}
	}
	return "policy"
}

func buildTags(article Article, title, summary string) string {
	var parts []string
	if domain := article.SourceDomain(); domain != "" {
		parts = append(parts, strings.ReplaceAll(domain, ".", "_"))
	}
	if article.Language != "" {
		parts = append(parts, article.Language)
	}

	text := strings.ToLower(title + " " + summary)
	if strings.Contains(text, "solar") || strings.Contains(text, "photovoltaic") || strings.Contains(text, "pv") {
		parts = append(parts, "solar")
	}
	if strings.Contains(text, "wind") || strings.Contains(text, "turbine") {
		parts = append(parts, "wind")
	}
	if strings.Contains(text, "grid") || strings.Contains(text, "transmission") {
		parts = append(parts, "grid")
	}

	if len(parts) == 0 {
		return "gdelt,clean energy"
	}
	return strings.Join(parts, ",")
}

func sourceName(article Article) string {
	name := article.SourceDomain()
	if name == "" {
		return "GDELT"
	}
	if label, _, found := strings.Cut(name, "."); found {
		return titleCase(label)
	}
	return name
}

func titleCase(s string) string {
	prevLetter := false
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			if !prevLetter {
				prevLetter = true
				return unicode.ToUpper(r)
			}
			return unicode.ToLower(r)
		}
		prevLetter = false
		return r
	}, s)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

// MapArticle converts a raw GDELT article into a NewsItem ready for
// persistence. CountryID comes from the attribution step and may be nil
// for global items. Status is left for the caller to decide.
func MapArticle(article Article, countryID *int) models.NewsItem {
	title := article.DisplayTitle()
	summary := article.BestSummary()
	impactType := InferImpactType(title, summary)
	tags := buildTags(article, title, summary)

	item := models.NewsItem{
		CountryID:   countryID,
		ImpactType:  impactType,
		ImpactScore: services.ScoreNewsImpact(impactType, tags, title, summary),
		Title:       truncate(title, 220),
		Summary:     truncate(summary, 5000),
		Tags:        utils.Ptr(truncate(tags, 400)),
		SourceName:  utils.Ptr(truncate(sourceName(article), 120)),
		PublishedAt: article.PublishedAt(),
	}
	if link := article.Link(); link != "" {
		item.SourceURL = utils.Ptr(truncate(link, 600))
	}
	if article.SocialImage != "" {
		item.ImageURL = utils.Ptr(truncate(article.SocialImage, 600))
	}
	return item
}
