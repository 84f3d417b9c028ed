package models

type InvestorType string

const (
	InvestorTypeFund      InvestorType = "fund"
	InvestorTypeAngel     InvestorType = "angel"
	InvestorTypeCorporate InvestorType = "corporate"
	InvestorTypePublic    InvestorType = "public"
	InvestorTypeNGO       InvestorType = "ngo"
)

func ValidInvestorType(t string) bool {
	switch InvestorType(t) {
	case InvestorTypeFund, InvestorTypeAngel, InvestorTypeCorporate, InvestorTypePublic, InvestorTypeNGO:
		return true
	}
	return false
}

type Investor struct {
	Model
	Name         string       `json:"name" gorm:"type:varchar(200);not null;index"`
	InvestorType InvestorType `json:"investorType" gorm:"type:varchar(30);not null;index"`

	// CSV-encoded lists, normalized through utils.NormalizeList at the
	// persistence boundary. Token order is preserved as entered.
	FocusSectors *string `json:"focusSectors" gorm:"type:text"`
	Stages       *string `json:"stages" gorm:"type:text"`

	// Ticket bounds are informational only. Min exceeding max is accepted.
	TicketMin *int `json:"ticketMin"`
	TicketMax *int `json:"ticketMax"`

	Website      *string `json:"website" gorm:"type:varchar(300)"`
	ContactEmail *string `json:"contactEmail" gorm:"type:varchar(200)"`

	Countries []Country `json:"countries" gorm:"many2many:investor_countries;constraint:OnDelete:CASCADE;"`
}

func (m Investor) TableName() string {
	return "investors"
}
