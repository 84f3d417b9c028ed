package transformer

import (
	"github.com/cececo-dev/cececo-hub/database/models"
	"github.com/cececo-dev/cececo-hub/dtos"
	"github.com/cececo-dev/cececo-hub/utils"
)

func InvestorCreateRequestToModel(req dtos.InvestorCreateRequest) models.Investor {
	return models.Investor{
		Name:         req.Name,
		InvestorType: models.InvestorType(req.InvestorType),
		FocusSectors: utils.EmptyThenNil(utils.NormalizeList(req.FocusSectors)),
		Stages:       utils.EmptyThenNil(utils.NormalizeList(req.Stages)),
		TicketMin:    req.TicketMin,
		TicketMax:    req.TicketMax,
		Website:      utils.EmptyThenNil(req.Website),
		ContactEmail: utils.EmptyThenNil(req.ContactEmail),
	}
}
