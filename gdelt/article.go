package gdelt

import (
	"strings"
	"time"
)

// Article is one entry of a GDELT DOC 2.0 artlist response. The feed is not
// strictly schema'd, so every field that has been observed under more than
// one key gets all of its aliases declared here and an accessor that walks
// the fallback chain.
type Article struct {
	URL            string  `json:"url"`
	URLMobile      string  `json:"url_mobile"`
	Title          string  `json:"title"`
	SeenDate       string  `json:"seendate"`
	Date           string  `json:"date"`
	Snippet        string  `json:"snippet"`
	Summary        string  `json:"summary"`
	SocialImage    string  `json:"socialimage"`
	Domain         string  `json:"domain"`
	Source         string  `json:"source"`
	Language       string  `json:"language"`
	SourceCountry  string  `json:"sourcecountry"`
	Country        string  `json:"country"`
	CountryCode    string  `json:"countrycode"`
	CountryCodeAlt string  `json:"country_code"`
	ISO2           string  `json:"iso2"`
	ISO2Alt        string  `json:"iso_2"`
	Tone           float64 `json:"tone"`
}

// Link returns the canonical article URL, falling back to the mobile one.
func (a Article) Link() string {
	if a.URL != "" {
		return a.URL
	}
	return a.URLMobile
}

// DisplayTitle never returns an empty string.
func (a Article) DisplayTitle() string {
	if strings.TrimSpace(a.Title) == "" {
		return "Untitled"
	}
	return a.Title
}

// BestSummary prefers the snippet, then the summary field, then the title.
// Summaries shorter than 10 characters are treated as useless.
func (a Article) BestSummary() string {
	summary := a.Snippet
	if summary == "" {
		summary = a.Summary
	}
	if summary == "" {
		summary = a.DisplayTitle()
	}
	if len(strings.TrimSpace(summary)) < 10 {
		summary = a.DisplayTitle()
	}
	return summary
}

// SourceDomain returns the publishing domain under either alias.
func (a Article) SourceDomain() string {
	if a.Domain != "" {
		return a.Domain
	}
	return a.Source
}

// PublishedAt parses the seendate field. GDELT emits either the compact
// YYYYMMDDHHMMSS form or a T-separated variant with a trailing Z or offset.
// Anything unparseable resolves to the current time so ingestion never
// stalls on a single malformed record.
func (a Article) PublishedAt() time.Time {
	raw := a.SeenDate
	if raw == "" {
		raw = a.Date
	}
	return parseSeenDate(raw)
}

func parseSeenDate(raw string) time.Time {
	now := time.Now().UTC()
	dateStr := strings.ToUpper(strings.TrimSpace(raw))
	if dateStr == "" {
		return now
	}

	if datePart, timePart, found := strings.Cut(dateStr, "T"); found {
		timePart = strings.TrimSuffix(timePart, "Z")
		if idx := strings.Index(timePart, "+"); idx >= 0 {
			timePart = timePart[:idx]
		} else if idx := strings.Index(timePart, "-"); idx >= 0 && len(timePart) > 6 {
			timePart = timePart[:idx]
		}
		if len(datePart) == 8 && len(timePart) >= 6 {
			if t, err := time.Parse("20060102150405", datePart+timePart[:6]); err == nil {
				return t.UTC()
			}
		}
		return now
	}

	if len(dateStr) >= 14 {
		if t, err := time.Parse("20060102150405", dateStr[:14]); err == nil {
			return t.UTC()
		}
		return now
	}
	if len(dateStr) >= 8 {
		// pad missing time components with midnight
		padded := dateStr + strings.Repeat("0", 14-len(dateStr))
		if t, err := time.Parse("20060102150405", padded); err == nil {
			return t.UTC()
		}
	}
	return now
}
