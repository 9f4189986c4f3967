package progress

import (
	"strings"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

const (
	// MaxLevel is the level at which a skill counts as mastered.
	MaxLevel = 3
	// XPPerLevel scales the threshold: reaching level n+1 costs (n+1)*XPPerLevel.
	XPPerLevel = 100
	// CorrectAnswerXP is awarded for each correct answer.
	CorrectAnswerXP = 10
)

const (
	SkillCashTransactions   = "cash-transactions"
	SkillCreditTransactions = "credit-transactions"
	SkillJournalEntries     = "journal-entries"
	SkillPostingLedger      = "posting-ledger"
	SkillTrialBalance       = "trial-balance"
	SkillAdjustingEntries   = "adjusting-entries"
	SkillIncomeStatement    = "income-statement"
	SkillBalanceSheet       = "balance-sheet"
	SkillCashFlow           = "cash-flow"
	SkillInventory          = "inventory-management"
	SkillDepreciation       = "depreciation"
	SkillAccruals           = "accruals"
	SkillDeferrals          = "deferrals"
	SkillFinancialAnalysis  = "financial-analysis"
	SkillClosingEntries     = "closing-entries"
)

// Skills lists every tracked skill in display order.
var Skills = []string{
	SkillCashTransactions,
	SkillCreditTransactions,
	SkillJournalEntries,
	SkillPostingLedger,
	SkillTrialBalance,
	SkillAdjustingEntries,
	SkillIncomeStatement,
	SkillBalanceSheet,
	SkillCashFlow,
	SkillInventory,
	SkillDepreciation,
	SkillAccruals,
	SkillDeferrals,
	SkillFinancialAnalysis,
	SkillClosingEntries,
}

var typeSkills = map[string][]string{
	"cash_sale":          {SkillCashTransactions},
	"cash_service":       {SkillCashTransactions},
	"group_session":      {SkillCashTransactions},
	"cash_purchase":      {SkillCashTransactions, SkillInventory},
	"supply_purchase":    {SkillCashTransactions, SkillInventory},
	"inventory_purchase": {SkillCreditTransactions, SkillInventory},
	"credit_sale":        {SkillCreditTransactions},
	"credit_service":     {SkillCreditTransactions},
	"collection":         {SkillCreditTransactions},
	"payment_to_vendor":  {SkillCreditTransactions},
	"rent_payment":       {SkillDeferrals},
	"insurance_payment":  {SkillDeferrals},
	"employee_wages":     {SkillAccruals},
	"payroll":            {SkillAccruals},
	"tutor_payment":      {SkillAccruals},
}

// SkillsForType returns the skills a correctly journalized transaction of
// the given type exercises. Every entry practices journal entries and
// ledger posting.
func SkillsForType(typ string) []string {
	skills := []string{SkillJournalEntries}
	skills = append(skills, typeSkills[typ]...)
	return append(skills, SkillPostingLedger)
}

// SkillTitle turns "cash-transactions" into "Cash Transactions".
func SkillTitle(skill string) string {
	words := strings.Split(skill, "-")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func newSkill() model.Skill {
	return model.Skill{MaxLevel: MaxLevel}
}

func threshold(level int) int {
	return (level + 1) * XPPerLevel
}
