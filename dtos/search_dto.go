package dtos

import "time"

// Compact cross-entity search hits. The full records stay behind their own
// endpoints; search only carries enough to render a result list.

type NewsSearchHit struct {
	ID          int       `json:"id"`
	CountryID   *int      `json:"countryId"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	ImpactType  string    `json:"impactType"`
	ImpactScore int       `json:"impactScore"`
	PublishedAt time.Time `json:"publishedAt"`
	SourceURL   *string   `json:"sourceUrl"`
}

type ResourceSearchHit struct {
	ID           int        `json:"id"`
	CountryID    *int       `json:"countryId"`
	Title        string     `json:"title"`
	Abstract     string     `json:"abstract"`
	URL          string     `json:"url"`
	ResourceType string     `json:"resourceType"`
	PublishedAt  *time.Time `json:"publishedAt"`
}

type PolicySearchHit struct {
	ID        int    `json:"id"`
	CountryID int    `json:"countryId"`
	Title     string `json:"title"`
}

type FrameworkSearchHit struct {
	ID        int    `json:"id"`
	CountryID int    `json:"countryId"`
	Name      string `json:"name"`
}

type SearchResponse struct {
	News       []NewsSearchHit      `json:"news"`
	Resources  []ResourceSearchHit  `json:"resources"`
	Policies   []PolicySearchHit    `json:"policies"`
	Frameworks []FrameworkSearchHit `json:"frameworks"`
}
