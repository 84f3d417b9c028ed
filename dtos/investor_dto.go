package dtos

type InvestorFilter struct {
	Q            string
	InvestorType string
	CountryID    *int
}

type InvestorCreateRequest struct {
	Name         string `json:"name" validate:"required,max=200"`
	InvestorType string `json:"investorType" validate:"required,oneof=fund angel corporate public ngo"`
	FocusSectors string `json:"focusSectors"`
	Stages       string `json:"stages"`
	TicketMin    *int   `json:"ticketMin"`
	TicketMax    *int   `json:"ticketMax"`
	Website      string `json:"website" validate:"omitempty,url"`
	ContactEmail string `json:"contactEmail" validate:"omitempty,email"`
	CountryIDs   []int  `json:"countryIds"`
}
