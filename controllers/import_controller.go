package controllers

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/jszwec/csvutil"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/cececo-dev/cececo-hub/database/models"
	"github.com/cececo-dev/cececo-hub/dtos"
	"github.com/cececo-dev/cececo-hub/shared"
	"github.com/cececo-dev/cececo-hub/utils"
)

// importable region, rows outside of it are skipped
var cececoISO2 = map[string]struct{}{
	"TR": {}, "AZ": {}, "PK": {}, "KZ": {}, "UZ": {}, "KG": {},
}

type ImportController struct {
	countryRepository  shared.CountryRepository
	projectRepository  shared.ProjectRepository
	investorRepository shared.InvestorRepository
}

func NewImportController(countryRepository shared.CountryRepository, projectRepository shared.ProjectRepository, investorRepository shared.InvestorRepository) *ImportController {
	return &ImportController{
		countryRepository:  countryRepository,
		projectRepository:  projectRepository,
		investorRepository: investorRepository,
	}
}

func readCSVUpload[T any](ctx shared.Context) ([]T, error) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return nil, echo.NewHTTPError(400, "file is required").WithInternal(err)
	}
	file, err := fileHeader.Open()
	if err != nil {
		return nil, echo.NewHTTPError(400, "could not open upload").WithInternal(err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, echo.NewHTTPError(400, "could not read upload").WithInternal(err)
	}
	content = bytes.TrimPrefix(content, []byte("\xef\xbb\xbf"))
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, echo.NewHTTPError(400, "empty CSV file")
	}

	var rows []T
	if err := csvutil.Unmarshal(content, &rows); err != nil {
		return nil, echo.NewHTTPError(400, "could not parse CSV").WithInternal(err)
	}
	if len(rows) == 0 {
		return nil, echo.NewHTTPError(400, "no rows found in CSV")
	}
	return rows, nil
}

func firstListToken(values ...string) *string {
	for _, value := range values {
		tokens := utils.SplitList(value)
		if len(tokens) > 0 {
			return &tokens[0]
		}
	}
	return nil
}

func parseTicket(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return utils.Ptr(int(v))
	}
	return nil
}

// ImportStartups upserts startup rows. The dedupe key is
// (title, country, kind=startup); matched rows are patched field by field,
// empty CSV cells never overwrite existing data.
func (controller *ImportController) ImportStartups(ctx shared.Context) error {
	rows, err := readCSVUpload[dtos.StartupCSVRow](ctx)
	if err != nil {
		return err
	}

	countries, err := controller.countryRepository.All()
	if err != nil {
		return echo.NewHTTPError(500, "could not list countries").WithInternal(err)
	}
	byISO2 := make(map[string]models.Country, len(countries))
	byName := make(map[string]models.Country, len(countries))
	for _, c := range countries {
		byISO2[strings.ToUpper(c.ISO2)] = c
		byName[strings.ToLower(c.Name)] = c
	}

	result := dtos.ImportResult{Rows: len(rows)}
	for _, row := range rows {
		title := strings.TrimSpace(row.Name)
		if title == "" {
			result.Skipped++
			continue
		}

		iso2 := strings.ToUpper(strings.TrimSpace(row.CountryISO2))
		if iso2 == "" {
			if c, ok := byName[strings.ToLower(strings.TrimSpace(row.Country))]; ok {
				iso2 = strings.ToUpper(c.ISO2)
			}
		}
		if _, ok := cececoISO2[iso2]; !ok {
			result.Skipped++
			continue
		}
		country, ok := byISO2[iso2]
		if !ok {
			result.Skipped++
			continue
		}

		summary := strings.TrimSpace(row.Description)
		if summary == "" {
			summary = strings.TrimSpace(row.Summary)
		}
		website := strings.TrimSpace(row.Website)
		sector := firstListToken(row.Sectors, row.Sector)
		stage := firstListToken(row.Stages, row.Stage)

		existing, err := controller.projectRepository.FindByTitleCountryKind(title, country.ID, models.ProjectKindStartup)
		switch {
		case err == nil:
			if summary != "" {
				existing.Summary = summary
			}
			if website != "" {
				existing.Website = &website
			}
			if sector != nil {
				existing.Sector = sector
			}
			if stage != nil {
				existing.Stage = stage
			}
			if err := controller.projectRepository.Save(&existing); err != nil {
				return echo.NewHTTPError(500, "could not update startup").WithInternal(err)
			}
			result.Updated++
		case errors.Is(err, gorm.ErrRecordNotFound):
			if summary == "" {
				summary = "No description provided"
			}
			project := models.Project{
				Kind:      models.ProjectKindStartup,
				CountryID: country.ID,
				Title:     title,
				Summary:   summary,
				Sector:    sector,
				Stage:     stage,
				Website:   utils.EmptyThenNil(website),
			}
			if err := controller.projectRepository.Create(&project); err != nil {
				return echo.NewHTTPError(500, "could not create startup").WithInternal(err)
			}
			result.Created++
		default:
			return echo.NewHTTPError(500, "could not look up startup").WithInternal(err)
		}
	}

	return ctx.JSON(200, result)
}

// ImportInvestors upserts investor rows keyed on (name, investor_type).
// Countries are attached additively: an import never detaches an investor
// from a country it already covers.
func (controller *ImportController) ImportInvestors(ctx shared.Context) error {
	rows, err := readCSVUpload[dtos.InvestorCSVRow](ctx)
	if err != nil {
		return err
	}

	countries, err := controller.countryRepository.All()
	if err != nil {
		return echo.NewHTTPError(500, "could not list countries").WithInternal(err)
	}
	byISO2 := make(map[string]models.Country, len(countries))
	for _, c := range countries {
		byISO2[strings.ToUpper(c.ISO2)] = c
	}

	result := dtos.ImportResult{Rows: len(rows)}
	for _, row := range rows {
		name := strings.TrimSpace(row.Name)
		if name == "" {
			result.Skipped++
			continue
		}

		investorType := strings.ToLower(strings.TrimSpace(row.InvestorType))
		if !models.ValidInvestorType(investorType) {
			result.Skipped++
			continue
		}

		var rowCountries []models.Country
		for _, token := range utils.SplitList(row.CountryISO2s) {
			iso2 := strings.ToUpper(token)
			if _, ok := cececoISO2[iso2]; !ok {
				continue
			}
			if c, ok := byISO2[iso2]; ok {
				rowCountries = append(rowCountries, c)
			}
		}
		if len(rowCountries) == 0 {
			result.Skipped++
			continue
		}

		sectors := utils.NormalizeList(row.FocusSectors)
		stages := utils.NormalizeList(row.Stages)
		website := strings.TrimSpace(row.Website)
		contactEmail := strings.TrimSpace(row.ContactEmail)
		ticketMin := parseTicket(row.TicketMin)
		ticketMax := parseTicket(row.TicketMax)

		existing, err := controller.investorRepository.FindByNameAndType(name, models.InvestorType(investorType))
		switch {
		case err == nil:
			if website != "" {
				existing.Website = &website
			}
			if contactEmail != "" {
				existing.ContactEmail = &contactEmail
			}
			if sectors != "" {
				existing.FocusSectors = &sectors
			}
			if stages != "" {
				existing.Stages = &stages
			}
			if ticketMin != nil {
				existing.TicketMin = ticketMin
			}
			if ticketMax != nil {
				existing.TicketMax = ticketMax
			}
			if err := controller.investorRepository.Save(&existing); err != nil {
				return echo.NewHTTPError(500, "could not update investor").WithInternal(err)
			}

			merged := existing.Countries
			have := make(map[int]struct{}, len(merged))
			for _, c := range merged {
				have[c.ID] = struct{}{}
			}
			for _, c := range rowCountries {
				if _, ok := have[c.ID]; !ok {
					merged = append(merged, c)
				}
			}
			if err := controller.investorRepository.ReplaceCountries(&existing, merged); err != nil {
				return echo.NewHTTPError(500, "could not update investor countries").WithInternal(err)
			}
			result.Updated++
		case errors.Is(err, gorm.ErrRecordNotFound):
			investor := models.Investor{
				Name:         name,
				InvestorType: models.InvestorType(investorType),
				FocusSectors: utils.EmptyThenNil(sectors),
				Stages:       utils.EmptyThenNil(stages),
				TicketMin:    ticketMin,
				TicketMax:    ticketMax,
				Website:      utils.EmptyThenNil(website),
				ContactEmail: utils.EmptyThenNil(contactEmail),
				Countries:    rowCountries,
			}
			if err := controller.investorRepository.Create(&investor); err != nil {
				return echo.NewHTTPError(500, "could not create investor").WithInternal(err)
			}
			result.Created++
		default:
			return echo.NewHTTPError(500, "could not look up investor").WithInternal(err)
		}
	}

	return ctx.JSON(200, result)
}
