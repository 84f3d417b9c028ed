package transformer

import (
	"github.com/cececo-dev/cececo-hub/database/models"
	"github.com/cececo-dev/cececo-hub/dtos"
)

func NewsItemModelToResponse(item models.NewsItem, countryByID map[int]models.Country) dtos.NewsItemResponse {
	response := dtos.NewsItemResponse{
		NewsItem:    item,
		CountryName: "Global",
	}
	if item.CountryID != nil {
		if country, ok := countryByID[*item.CountryID]; ok {
			response.CountryName = country.Name
			iso2 := country.ISO2
			response.CountryISO2 = &iso2
		}
	}
	return response
}

func NewsItemModelsToResponses(items []models.NewsItem, countryByID map[int]models.Country) []dtos.NewsItemResponse {
	responses := make([]dtos.NewsItemResponse, len(items))
	for i, item := range items {
		responses[i] = NewsItemModelToResponse(item, countryByID)
	}
	return responses
}

func CountryLookup(countries []models.Country) map[int]models.Country {
	byID := make(map[int]models.Country, len(countries))
	for _, c := range countries {
		byID[c.ID] = c
	}
	return byID
}

func NewsItemCreateRequestToModel(req dtos.NewsItemCreateRequest) models.NewsItem {
	item := models.NewsItem{
		CountryID:  req.CountryID,
		ImpactType: req.ImpactType,
		Title:      req.Title,
		Summary:    req.Summary,
	}
	if req.Tags != "" {
		tags := req.Tags
		item.Tags = &tags
	}
	if req.SourceName != "" {
		name := req.SourceName
		item.SourceName = &name
	}
	if req.SourceURL != "" {
		url := req.SourceURL
		item.SourceURL = &url
	}
	if req.ImageURL != "" {
		url := req.ImageURL
		item.ImageURL = &url
	}
	if req.PublishedAt != nil {
		item.PublishedAt = *req.PublishedAt
	}
	return item
}
