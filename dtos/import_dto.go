package dtos

// CSV rows for the admin bulk import endpoints. Column names match the
// spreadsheets the CECECO team maintains; csvutil tolerates missing columns
// by leaving fields empty.

type StartupCSVRow struct {
	Name        string `csv:"name"`
	Country     string `csv:"country"`
	CountryISO2 string `csv:"country_iso2"`
	Description string `csv:"description"`
	Summary     string `csv:"summary"`
	Sectors     string `csv:"sectors"`
	Sector      string `csv:"sector"`
	Stages      string `csv:"stages"`
	Stage       string `csv:"stage"`
	Website     string `csv:"website"`
	SourceURL   string `csv:"source_url"`
}

type InvestorCSVRow struct {
	Name         string `csv:"name"`
	InvestorType string `csv:"investor_type"`
	FocusSectors string `csv:"focus_sectors"`
	Stages       string `csv:"stages"`
	TicketMin    string `csv:"ticket_min"`
	TicketMax    string `csv:"ticket_max"`
	Website      string `csv:"website"`
	ContactEmail string `csv:"contact_email"`
	// comma-separated ISO2 codes, e.g. "TR,KZ"
	CountryISO2s string `csv:"country_iso2"`
}

type ImportResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
	Rows    int `json:"rows"`
}
