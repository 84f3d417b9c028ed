package dtos

import "time"

type ResourceSubmitRequest struct {
	CountryID        *int       `json:"countryId"`
	ResourceType     string     `json:"resourceType" validate:"required,max=30"`
	Title            string     `json:"title" validate:"required,max=220"`
	Abstract         string     `json:"abstract" validate:"required"`
	URL              string     `json:"url" validate:"required,url,max=700"`
	Tags             string     `json:"tags" validate:"max=400"`
	PublishedAt      *time.Time `json:"publishedAt"`
	SubmittedByName  string     `json:"submittedByName" validate:"max=120"`
	SubmittedByEmail string     `json:"submittedByEmail" validate:"omitempty,email,max=180"`
}
