package generator

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

// Difficulty grades how hard a transaction type is to journalize.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// Analysis is learner guidance for one transaction.
type Analysis struct {
	LearningPoints   []string
	Hint             string
	CommonMistakes   []string
	AccountsAffected int
	Difficulty       Difficulty
}

const defaultHint = "Analyze the transaction carefully."

var learningPoints = map[string][]string{
	"cash_sale": {
		"Revenue is recognized when earned, regardless of payment timing",
		"Cash transactions are recorded immediately",
		"Multiple revenue accounts can be used for different product lines",
	},
	"credit_sale": {
		"Revenue is recognized even when cash is not received",
		"Accounts Receivable represents money owed by customers",
		"Credit sales increase both assets (A/R) and revenue",
	},
	"cash_purchase": {
		"Distinguish between expenses and assets when purchasing",
		"Inventory purchases are assets until sold",
		"Cash decreases when payments are made",
	},
	"expense_payment": {
		"Expenses are recorded when incurred",
		"Payment of expenses reduces cash",
		"Some expenses may be prepaid (assets) rather than immediate expenses",
	},
}

var hints = map[string]string{
	"cash_sale":       "Remember: Cash increases (debit) and Revenue increases (credit)",
	"credit_sale":     "Think: What asset increases? What revenue is earned?",
	"cash_purchase":   "Consider: Is this an expense or an asset purchase?",
	"expense_payment": "Ask: What expense is incurred? What asset decreases?",
}

var commonMistakes = map[string][]string{
	"cash_sale": {
		"Forgetting to debit Cash",
		"Confusing debit/credit rules for revenue",
		"Not splitting revenue between different product types",
	},
	"credit_sale": {
		"Crediting Cash instead of Accounts Receivable",
		"Forgetting that no cash is involved in credit sales",
		"Mixing up the timing of revenue recognition",
	},
	"cash_purchase": {
		"Recording inventory purchases as immediate expenses",
		"Forgetting to credit Cash",
		"Confusing assets with expenses",
	},
	"expense_payment": {
		"Crediting the wrong account",
		"Recording prepaid expenses as immediate expenses",
		"Forgetting the dual effect of transactions",
	},
}

var difficulties = map[string]Difficulty{
	"cash_sale":          Beginner,
	"cash_purchase":      Beginner,
	"expense_payment":    Beginner,
	"credit_sale":        Intermediate,
	"collection":         Intermediate,
	"inventory_purchase": Intermediate,
	"payroll":            Advanced,
	"adjusting_entry":    Advanced,
}

// Analyze returns guidance for a transaction.
func Analyze(tx model.Transaction) Analysis {
	hint, ok := hints[tx.Type]
	if !ok {
		hint = defaultHint
	}
	return Analysis{
		LearningPoints:   learningPoints[tx.Type],
		Hint:             hint,
		CommonMistakes:   commonMistakes[tx.Type],
		AccountsAffected: len(tx.AccountCodes),
		Difficulty:       DifficultyOf(tx.Type),
	}
}

// DifficultyOf grades a transaction type. Ungraded types are intermediate.
func DifficultyOf(typ string) Difficulty {
	if d, ok := difficulties[typ]; ok {
		return d
	}
	return Intermediate
}

// WeekPhase names the stage of the month a day falls in.
func WeekPhase(day int) string {
	switch {
	case day <= 7:
		return "Basic Cash Transactions"
	case day <= 14:
		return "Credit Transactions"
	case day <= 21:
		return "Complex Operations"
	default:
		return "Month-End Activities"
	}
}

// DailyObjectives are the standing goals shown every day.
var DailyObjectives = []string{
	"Analyze source documents carefully",
	"Identify affected accounts",
	"Determine debit and credit amounts",
	"Create balanced journal entries",
}

var typeLabels = map[string]string{
	"cash_sale":          "Cash Sale",
	"credit_sale":        "Credit Sale",
	"cash_purchase":      "Cash Purchase",
	"expense_payment":    "Expense Payment",
	"inventory_purchase": "Inventory Purchase",
}

// TypeLabel returns a display name for a transaction type, or the type itself.
func TypeLabel(typ string) string {
	if l, ok := typeLabels[typ]; ok {
		return l
	}
	return typ
}

var focuses = map[string]string{
	"cash_sale":          "Revenue recognition and cash receipts",
	"credit_sale":        "Accounts receivable and revenue recognition",
	"cash_purchase":      "Asset vs. expense classification",
	"expense_payment":    "Expense recognition and cash payments",
	"inventory_purchase": "Inventory management and accounts payable",
}

// Focus returns the learning focus of a transaction type.
func Focus(typ string) string {
	if f, ok := focuses[typ]; ok {
		return f
	}
	return "General transaction analysis"
}

// ScenarioOption is an on-demand practice transaction a learner can request.
type ScenarioOption struct {
	Day         int
	Title       string
	Type        string
	Description string
}

// ScenarioOptions lists the practice scenarios available on day.
func ScenarioOptions(day int) []ScenarioOption {
	return []ScenarioOption{
		{Day: day, Title: "Daily Cash Sales", Type: "cash_sale", Description: "Process daily cash sales transactions"},
		{Day: day, Title: "Vendor Invoice Payment", Type: "cash_purchase", Description: "Pay supplier invoice with cash"},
		{Day: day, Title: "Utility Bill Payment", Type: "expense_payment", Description: "Pay monthly utility expenses"},
		{Day: day, Title: "Customer Invoice", Type: "credit_sale", Description: "Invoice customer for services on account"},
		{Day: day, Title: "Inventory Purchase", Type: "inventory_purchase", Description: "Purchase inventory on credit"},
	}
}

var scenarioAccounts = map[string][]string{
	"cash_sale":          {"1001", "4001"},
	"credit_sale":        {"1010", "4001"},
	"cash_purchase":      {"1020", "1001"},
	"expense_payment":    {"5030", "1001"},
	"inventory_purchase": {"1020", "2001"},
}

var (
	scenarioMin = decimal.NewFromInt(50)
	scenarioMax = decimal.NewFromInt(500)
)

// GenerateScenario creates a one-off practice transaction for a company.
func (g *Generator) GenerateScenario(companyID string, opt ScenarioOption) (model.Transaction, error) {
	co, err := g.catalog.Company(companyID)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("generating scenario: %w", err)
	}
	accounts, ok := scenarioAccounts[opt.Type]
	if !ok {
		accounts = []string{"1001", "4001"}
	}
	t := model.Template{
		Type:        opt.Type,
		Description: opt.Description,
		Accounts:    accounts,
		Min:         scenarioMin,
		Max:         scenarioMax,
	}
	tx := g.createTransaction(co, t, opt.Day)
	tx.Scenario = true
	return tx, nil
}
