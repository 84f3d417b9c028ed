package gdelt

import (
	"regexp"
	"strings"

	"github.com/cececo-dev/cececo-hub/database/models"
)

// Attribution is the outcome of resolving an article to a country. A nil
// CountryID with name "Global" means no regional country claimed the item.
type Attribution struct {
	CountryID   *int
	CountryName string
	ISO2        *string
}

func globalAttribution() Attribution {
	return Attribution{CountryName: "Global"}
}

func attributed(c models.Country) Attribution {
	id := c.ID
	iso2 := c.ISO2
	return Attribution{CountryID: &id, CountryName: c.Name, ISO2: &iso2}
}

// extra uppercase aliases seen in the feed, keyed by canonical country name
var countryNameVariants = map[string][]string{
	"Türkiye":    {"TURKEY", "TURKIYE", "TURKISH"},
	"Kazakhstan": {"KAZAKH", "KAZAK"},
	"Uzbekistan": {"UZBEK", "UZBEKISTAN"},
	"Kyrgyzstan": {"KYRGYZ", "KYRGYZSTAN", "KYRGYZ REPUBLIC"},
	"Pakistan":   {"PAKISTANI"},
	"Azerbaijan": {"AZERBAIJANI", "AZERI"},
}

var attributionTLDs = []string{".AZ", ".TR", ".PK", ".KZ", ".UZ", ".KG"}

// ResolveCountry attributes a GDELT article to one of the given countries.
// Strategies run in order of reliability: the sourcecountry field, the
// country name field, alternate ISO2 fields, a word-boundary scan of the
// text, and finally the source domain's ccTLD. The function is pure, it
// never fails and never touches the database.
func ResolveCountry(article Article, countries []models.Country) Attribution {
	byISO2 := make(map[string]models.Country, len(countries))
	for _, c := range countries {
		byISO2[strings.ToUpper(c.ISO2)] = c
	}

	// ordered so that repeated resolutions of the same article agree
	type variantEntry struct {
		variant string
		country models.Country
	}
	var variants []variantEntry
	variantLookup := make(map[string]models.Country)
	addVariant := func(variant string, c models.Country) {
		if _, seen := variantLookup[variant]; seen {
			return
		}
		variantLookup[variant] = c
		variants = append(variants, variantEntry{variant: variant, country: c})
	}
	for _, c := range countries {
		addVariant(strings.ToUpper(c.Name), c)
		for _, alias := range countryNameVariants[c.Name] {
			addVariant(alias, c)
		}
	}

	if iso2 := strings.ToUpper(strings.TrimSpace(article.SourceCountry)); iso2 != "" {
		if c, ok := byISO2[iso2]; ok {
			return attributed(c)
		}
	}

	if name := strings.ToUpper(strings.TrimSpace(article.Country)); name != "" {
		if c, ok := variantLookup[name]; ok {
			return attributed(c)
		}
		for _, entry := range variants {
			if strings.Contains(name, entry.variant) || strings.Contains(entry.variant, name) {
				return attributed(entry.country)
			}
		}
	}

	for _, field := range []string{article.CountryCode, article.CountryCodeAlt, article.ISO2, article.ISO2Alt} {
		if iso2 := strings.ToUpper(strings.TrimSpace(field)); iso2 != "" {
			if c, ok := byISO2[iso2]; ok {
				return attributed(c)
			}
		}
	}

	summary := article.Summary
	if summary == "" {
		summary = article.Snippet
	}
	content := strings.ToUpper(article.Title) + " " + strings.ToUpper(summary)
	for _, entry := range variants {
		pattern := regexp.MustCompile(`\b` + regexp.QuoteMeta(entry.variant) + `\b`)
		if pattern.MatchString(content) {
			return attributed(entry.country)
		}
	}

	if domain := strings.ToUpper(article.Domain); domain != "" {
		for _, tld := range attributionTLDs {
			if c, ok := byISO2[strings.TrimPrefix(tld, ".")]; ok && strings.Contains(domain, tld) {
				return attributed(c)
			}
		}
	}

	return globalAttribution()
}
