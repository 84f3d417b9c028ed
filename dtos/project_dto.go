package dtos

type ProjectFilter struct {
	Kind      string
	CountryID *int
	Q         string
}

type ProjectCreateRequest struct {
	Kind      string `json:"kind" validate:"required,oneof=project startup"`
	CountryID int    `json:"countryId" validate:"required"`
	Title     string `json:"title" validate:"required,max=200"`
	Summary   string `json:"summary" validate:"required"`
	Sector    string `json:"sector"`
	Stage     string `json:"stage"`
	Website   string `json:"website" validate:"omitempty,url"`
}
