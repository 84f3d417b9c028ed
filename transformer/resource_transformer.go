package transformer

import (
	"github.com/cececo-dev/cececo-hub/database/models"
	"github.com/cececo-dev/cececo-hub/dtos"
	"github.com/cececo-dev/cececo-hub/utils"
)

func ResourceSubmitRequestToModel(req dtos.ResourceSubmitRequest) models.Resource {
	return models.Resource{
		CountryID:        req.CountryID,
		Status:           models.ReviewStatusPending,
		ResourceType:     req.ResourceType,
		Title:            req.Title,
		Abstract:         req.Abstract,
		URL:              req.URL,
		Tags:             utils.EmptyThenNil(utils.NormalizeList(req.Tags)),
		PublishedAt:      req.PublishedAt,
		SubmittedByName:  utils.EmptyThenNil(req.SubmittedByName),
		SubmittedByEmail: utils.EmptyThenNil(req.SubmittedByEmail),
	}
}
