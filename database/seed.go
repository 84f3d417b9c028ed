package database

import (
	"log/slog"

	"github.com/cececo-dev/cececo-hub/database/models"
	"github.com/cececo-dev/cececo-hub/utils"
	"gorm.io/gorm"
)

var seedCountries = []struct {
	Name string
	ISO2 string
}{
	{"Azerbaijan", "AZ"},
	{"Türkiye", "TR"},
	{"Pakistan", "PK"},
	{"Kazakhstan", "KZ"},
	{"Uzbekistan", "UZ"},
	{"Kyrgyzstan", "KG"},
}

var seedProjects = []struct {
	Kind    models.ProjectKind
	ISO2    string
	Title   string
	Summary string
	Sector  string
	Stage   string
	Website string
}{
	{models.ProjectKindProject, "KZ", "Grid Flex Pilot", "Pilot to improve grid flexibility and demand response coordination.", "Grid", "pilot", ""},
	{models.ProjectKindProject, "TR", "Rooftop Solar Acceleration", "Toolkit for rooftop PV rollout: permitting, financing, and standards.", "Solar", "scaling", ""},
	{models.ProjectKindProject, "AZ", "Wind Resource Screening", "Nationwide screening of wind potential sites with simple feasibility scoring.", "Wind", "planning", ""},
	{models.ProjectKindProject, "KG", "Microhydro Modernization", "Upgrade package for microhydro plants: controls, monitoring, and safety.", "Hydro", "pilot", ""},
	{models.ProjectKindStartup, "UZ", "AgriSolar", "Solar-powered irrigation + monitoring for farms and cooperatives.", "AgriTech", "seed", "https://example.com"},
	{models.ProjectKindStartup, "PK", "BatterySwap", "Swappable battery network for light EV fleets and last-mile delivery.", "Mobility", "pre-seed", ""},
	{models.ProjectKindStartup, "KZ", "HeatSense", "Smart heat monitoring to cut losses in district heating and buildings.", "Efficiency", "seed", ""},
}

var seedInvestors = []struct {
	Name         string
	InvestorType models.InvestorType
	FocusSectors string
	Stages       string
	TicketMin    *int
	TicketMax    *int
}{
	{"GreenBridge Capital", models.InvestorTypeFund, "Solar,Wind,Grid", "seed,seriesA", utils.Ptr(250000), utils.Ptr(2000000)},
	{"Steppe Angels", models.InvestorTypeAngel, "Efficiency,Mobility,AgriTech", "pre-seed,seed", utils.Ptr(25000), utils.Ptr(150000)},
	{"Eurasia Energy Ventures", models.InvestorTypeFund, "Hydro,Grid,Storage", "seriesA,seriesB", utils.Ptr(500000), utils.Ptr(5000000)},
	{"National Climate Program", models.InvestorTypePublic, "Policy,Grid,Efficiency", "pilot,scaling", nil, nil},
	{"Impact for Regions", models.InvestorTypeNGO, "AgriTech,Efficiency,Water", "pilot,seed", utils.Ptr(50000), utils.Ptr(500000)},
}

var seedInvestorCountries = map[string][]string{
	"GreenBridge Capital":     {"KZ", "TR"},
	"Steppe Angels":           {"KZ", "UZ"},
	"Eurasia Energy Ventures": {"AZ", "PK"},
	"National Climate Program": {"KZ", "KG", "UZ"},
	"Impact for Regions":       {"PK", "KG", "UZ"},
}

// SeedInitialData inserts the CECECO baseline idempotently: countries are
// added only when their iso2 is missing, projects and investors only into
// empty tables, and investor-country links only for investors without any.
func SeedInitialData(db *gorm.DB) error {
	var countries []models.Country
	if err := db.Find(&countries).Error; err != nil {
		return err
	}

	existing := make(map[string]struct{}, len(countries))
	for _, c := range countries {
		existing[c.ISO2] = struct{}{}
	}

	for _, sc := range seedCountries {
		if _, ok := existing[sc.ISO2]; ok {
			continue
		}
		country := models.Country{Name: sc.Name, ISO2: sc.ISO2, Region: utils.Ptr("ECO/CECECO")}
		if err := db.Create(&country).Error; err != nil {
			return err
		}
	}

	if err := db.Find(&countries).Error; err != nil {
		return err
	}
	byISO2 := make(map[string]models.Country, len(countries))
	for _, c := range countries {
		byISO2[c.ISO2] = c
	}

	var projectCount int64
	if err := db.Model(&models.Project{}).Count(&projectCount).Error; err != nil {
		return err
	}
	if projectCount == 0 {
		for _, sp := range seedProjects {
			country, ok := byISO2[sp.ISO2]
			if !ok {
				continue
			}
			project := models.Project{
				Kind:      sp.Kind,
				CountryID: country.ID,
				Title:     sp.Title,
				Summary:   sp.Summary,
				Sector:    utils.EmptyThenNil(sp.Sector),
				Stage:     utils.EmptyThenNil(sp.Stage),
				Website:   utils.EmptyThenNil(sp.Website),
			}
			if err := db.Create(&project).Error; err != nil {
				return err
			}
		}
		slog.Info("seeded projects", "count", len(seedProjects))
	}

	var investorCount int64
	if err := db.Model(&models.Investor{}).Count(&investorCount).Error; err != nil {
		return err
	}
	if investorCount == 0 {
		for _, si := range seedInvestors {
			investor := models.Investor{
				Name:         si.Name,
				InvestorType: si.InvestorType,
				FocusSectors: utils.Ptr(si.FocusSectors),
				Stages:       utils.Ptr(si.Stages),
				TicketMin:    si.TicketMin,
				TicketMax:    si.TicketMax,
			}
			if err := db.Create(&investor).Error; err != nil {
				return err
			}
		}
		slog.Info("seeded investors", "count", len(seedInvestors))
	}

	var investors []models.Investor
	if err := db.Preload("Countries").Find(&investors).Error; err != nil {
		return err
	}
	for i := range investors {
		inv := &investors[i]
		if len(inv.Countries) > 0 {
			continue
		}
		iso2s, ok := seedInvestorCountries[inv.Name]
		if !ok {
			continue
		}
		linked := make([]models.Country, 0, len(iso2s))
		for _, iso2 := range iso2s {
			if c, ok := byISO2[iso2]; ok {
				linked = append(linked, c)
			}
		}
		if err := db.Model(inv).Association("Countries").Replace(linked); err != nil {
			return err
		}
	}

	return nil
}
