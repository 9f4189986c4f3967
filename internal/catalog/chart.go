package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

// ChartFile is the file name a chart is exported to inside a directory.
const ChartFile = "chart-of-accounts.csv"

// Chart provides in-memory lookup over one company's chart of accounts.
type Chart struct {
	accounts []model.Account
	byCode   map[string]model.Account
}

// NewChart creates a Chart from a slice of accounts. Order is preserved.
func NewChart(accounts []model.Account) *Chart {
	byCode := make(map[string]model.Account, len(accounts))
	for _, a := range accounts {
		byCode[a.Code] = a
	}
	return &Chart{accounts: accounts, byCode: byCode}
}

// LoadChart reads chart-of-accounts.csv from dir.
func LoadChart(dir string) (*Chart, error) {
	path := filepath.Join(dir, ChartFile)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening chart of accounts: %w", err)
	}
	defer f.Close()

	accts, err := ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading chart of accounts: %w", err)
	}
	return NewChart(accts), nil
}

// All returns all accounts in chart order.
func (c *Chart) All() []model.Account {
	return c.accounts
}

// Get returns an account by code.
func (c *Chart) Get(code string) (model.Account, bool) {
	a, ok := c.byCode[code]
	return a, ok
}

// Exists reports whether an account code exists.
func (c *Chart) Exists(code string) bool {
	_, ok := c.byCode[code]
	return ok
}

// ByCategory returns all accounts of the given category.
func (c *Chart) ByCategory(category model.Category) []model.Account {
	var result []model.Account
	for _, a := range c.accounts {
		if a.Category == category {
			result = append(result, a)
		}
	}
	return result
}

// OpeningEquation sums opening balances into assets and liabilities plus
// equity, netting contra accounts against their section.
func (c *Chart) OpeningEquation() (assets, liabilitiesAndEquity decimal.Decimal, balanced bool) {
	assets = decimal.Zero
	liabilitiesAndEquity = decimal.Zero
	for _, a := range c.accounts {
		switch a.Category {
		case model.CategoryAsset:
			if a.NormalSide == model.NormalDebit {
				assets = assets.Add(a.OpeningBalance)
			} else {
				assets = assets.Sub(a.OpeningBalance)
			}
		case model.CategoryLiability, model.CategoryEquity:
			if a.NormalSide == model.NormalCredit {
				liabilitiesAndEquity = liabilitiesAndEquity.Add(a.OpeningBalance)
			} else {
				liabilitiesAndEquity = liabilitiesAndEquity.Sub(a.OpeningBalance)
			}
		}
	}
	balanced = assets.Sub(liabilitiesAndEquity).Abs().LessThan(model.Tolerance)
	return assets, liabilitiesAndEquity, balanced
}

// Save writes the chart to dir/chart-of-accounts.csv.
func (c *Chart) Save(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating chart dir: %w", err)
	}

	path := filepath.Join(dir, ChartFile)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart of accounts file: %w", err)
	}
	defer f.Close()

	if err := WriteAccounts(f, c.accounts); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}
	return nil
}
