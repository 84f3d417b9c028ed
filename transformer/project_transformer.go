package transformer

import (
	"github.com/cececo-dev/cececo-hub/database/models"
	"github.com/cececo-dev/cececo-hub/dtos"
	"github.com/cececo-dev/cececo-hub/utils"
)

func ProjectCreateRequestToModel(req dtos.ProjectCreateRequest) models.Project {
	return models.Project{
		Kind:      models.ProjectKind(req.Kind),
		CountryID: req.CountryID,
		Title:     req.Title,
		Summary:   req.Summary,
		Sector:    utils.EmptyThenNil(req.Sector),
		Stage:     utils.EmptyThenNil(req.Stage),
		Website:   utils.EmptyThenNil(req.Website),
	}
}
