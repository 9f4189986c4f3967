package catalog

import (
	"errors"
	"fmt"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

// ErrUnknownCompany is returned when a company id is not in the catalog.
var ErrUnknownCompany = errors.New("unknown company")

// Company is a fictional business a learner can keep the books for.
type Company struct {
	ID          string
	Name        string
	Industry    string
	Description string
	Accounts    []model.Account
	// Weeks maps week number (1-based) to the templates active that week.
	Weeks      map[int][]model.Template
	Scenarios  []Scenario
	Objectives []string
}

// Scenario is a narrated business event tied to a simulated day.
type Scenario struct {
	Week        int
	Day         int
	Title       string
	Description string
	Objectives  []string
}

// Catalog is the static set of companies.
type Catalog struct {
	companies []Company
	byID      map[string]int
}

// New creates a Catalog from companies. Order is preserved.
func New(companies []Company) *Catalog {
	byID := make(map[string]int, len(companies))
	for i, c := range companies {
		byID[c.ID] = i
	}
	return &Catalog{companies: companies, byID: byID}
}

// Default returns the built-in catalog of three companies.
func Default() *Catalog {
	return New([]Company{coffeeShop(), tutoringService(), retailStore()})
}

// Companies returns every company in catalog order.
func (c *Catalog) Companies() []Company {
	return c.companies
}

// Company returns a company by id.
func (c *Catalog) Company(id string) (Company, error) {
	i, ok := c.byID[id]
	if !ok {
		return Company{}, fmt.Errorf("%w: %q", ErrUnknownCompany, id)
	}
	return c.companies[i], nil
}

// Chart returns the chart of accounts for a company.
func (c *Catalog) Chart(id string) (*Chart, error) {
	co, err := c.Company(id)
	if err != nil {
		return nil, err
	}
	return NewChart(co.Accounts), nil
}

// Templates returns the templates a company runs in the given week. Unknown
// companies and weeks yield nil.
func (c *Catalog) Templates(id string, week int) []model.Template {
	i, ok := c.byID[id]
	if !ok {
		return nil
	}
	return c.companies[i].Weeks[week]
}

// ScenariosForDay returns the scenarios scheduled for a company on day.
func (c *Catalog) ScenariosForDay(id string, day int) []Scenario {
	i, ok := c.byID[id]
	if !ok {
		return nil
	}
	var out []Scenario
	for _, s := range c.companies[i].Scenarios {
		if s.Day == day {
			out = append(out, s)
		}
	}
	return out
}

// Objectives returns the learning objectives for a company.
func (c *Catalog) Objectives(id string) []string {
	i, ok := c.byID[id]
	if !ok {
		return nil
	}
	return c.companies[i].Objectives
}
