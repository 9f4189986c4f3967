package statements

import "github.com/shopspring/decimal"

// Section is one activity group of the cash flow statement.
type Section struct {
	Title string          `json:"title"`
	Lines []Line          `json:"lines"`
	Net   decimal.Decimal `json:"net"`
}

// CashFlowStatement is the operating/investing/financing layout. It is not
// yet derived from postings: every amount is zero and Placeholder is set.
type CashFlowStatement struct {
	Operating   Section         `json:"operating"`
	Investing   Section         `json:"investing"`
	Financing   Section         `json:"financing"`
	NetIncrease decimal.Decimal `json:"netIncrease"`
	Beginning   decimal.Decimal `json:"beginningCash"`
	Ending      decimal.Decimal `json:"endingCash"`
	Placeholder bool            `json:"placeholder"`
}

// CashFlow returns the cash flow skeleton.
// TODO: derive operating, investing and financing flows from cash account postings.
func CashFlow() CashFlowStatement {
	zero := func(name string) Line { return Line{Name: name, Amount: decimal.Zero} }
	return CashFlowStatement{
		Operating: Section{
			Title: "Cash flows from operating activities",
			Lines: []Line{zero("Cash received from customers"), zero("Cash paid to suppliers")},
			Net:   decimal.Zero,
		},
		Investing: Section{
			Title: "Cash flows from investing activities",
			Lines: []Line{zero("Purchase of equipment")},
			Net:   decimal.Zero,
		},
		Financing: Section{
			Title: "Cash flows from financing activities",
			Lines: []Line{zero("Owner contributions"), zero("Owner withdrawals")},
			Net:   decimal.Zero,
		},
		NetIncrease: decimal.Zero,
		Beginning:   decimal.Zero,
		Ending:      decimal.Zero,
		Placeholder: true,
	}
}

// Sections returns the three activity groups in presentation order.
func (c CashFlowStatement) Sections() []Section {
	return []Section{c.Operating, c.Investing, c.Financing}
}
