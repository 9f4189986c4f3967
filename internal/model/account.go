package model

import "github.com/shopspring/decimal"

// Category classifies accounts in the chart of accounts.
type Category string

const (
	CategoryAsset     Category = "asset"
	CategoryLiability Category = "liability"
	CategoryEquity    Category = "equity"
	CategoryRevenue   Category = "revenue"
	CategoryExpense   Category = "expense"
)

// Subtype refines a Category for presentation.
type Subtype string

const (
	SubtypeCurrent       Subtype = "current"
	SubtypeFixed         Subtype = "fixed"
	SubtypeLongTerm      Subtype = "long-term"
	SubtypeEquity        Subtype = "equity"
	SubtypeRevenue       Subtype = "revenue"
	SubtypeContraRevenue Subtype = "contra-revenue"
	SubtypeExpense       Subtype = "expense"
)

// NormalSide is the side on which an account's balance increases.
type NormalSide string

const (
	NormalDebit  NormalSide = "debit"
	NormalCredit NormalSide = "credit"
)

// Account is one row of a company's chart of accounts.
type Account struct {
	Code           string          `json:"code"`
	Name           string          `json:"name"`
	Category       Category        `json:"category"`
	Subtype        Subtype         `json:"subtype"`
	NormalSide     NormalSide      `json:"normalSide"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
}

// CategoryForCode classifies an account code by its leading digit
// (1 assets, 2 liabilities, 3 equity, 4 revenue, 5 expenses).
func CategoryForCode(code string) (Category, bool) {
	if code == "" {
		return "", false
	}
	switch code[0] {
	case '1':
		return CategoryAsset, true
	case '2':
		return CategoryLiability, true
	case '3':
		return CategoryEquity, true
	case '4':
		return CategoryRevenue, true
	case '5':
		return CategoryExpense, true
	}
	return "", false
}
