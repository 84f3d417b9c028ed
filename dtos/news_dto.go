package dtos

import (
	"time"

	"github.com/cececo-dev/cececo-hub/database/models"
)

type NewsFilter struct {
	// CountryID filters to one country; CECECOOnly excludes global items
	// (those with no country) instead.
	CountryID  *int
	CECECOOnly bool
	Q          string
	Limit      int
	Offset     int
}

type NewsItemCreateRequest struct {
	CountryID   *int       `json:"countryId"`
	Status      string     `json:"status" validate:"omitempty,oneof=pending approved"`
	ImpactType  string     `json:"impactType" validate:"required,max=30"`
	Title       string     `json:"title" validate:"required,max=220"`
	Summary     string     `json:"summary" validate:"required"`
	Tags        string     `json:"tags" validate:"max=400"`
	SourceName  string     `json:"sourceName" validate:"max=120"`
	SourceURL   string     `json:"sourceUrl" validate:"omitempty,url,max=600"`
	ImageURL    string     `json:"imageUrl" validate:"omitempty,url,max=600"`
	PublishedAt *time.Time `json:"publishedAt"`
}

// NewsItemResponse enriches a NewsItem with its country's display fields.
// Items without a country render as "Global".
type NewsItemResponse struct {
	models.NewsItem
	CountryName string  `json:"countryName"`
	CountryISO2 *string `json:"countryIso2"`
}

type NewsListResponse struct {
	Items   []NewsItemResponse `json:"items"`
	Total   int64              `json:"total"`
	Limit   int                `json:"limit"`
	Offset  int                `json:"offset"`
	HasMore bool               `json:"has_more"`
}

// IngestOptions parameterizes one GDELT ingestion batch.
type IngestOptions struct {
	SearchQuery string `json:"searchQuery"`
	PerCountry  int    `json:"perCountry"`
	GlobalLimit int    `json:"globalLimit"`
	Timespan    string `json:"timespan"`
	AutoApprove bool   `json:"autoApprove"`

	// TrustFetchCountry controls the conflict policy when an article fetched
	// under a country filter is attributed elsewhere by the resolver. When
	// true (default) the fetch-context country wins; when false the
	// resolver's judgment wins.
	TrustFetchCountry bool `json:"trustFetchCountry"`
}

type IngestResult struct {
	Inserted     int `json:"inserted"`
	Skipped      int `json:"skipped"`
	TotalFetched int `json:"total_fetched"`
}
