package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerlab/internal/catalog"
	"github.com/cleared-dev/ledgerlab/internal/generator"
	"github.com/cleared-dev/ledgerlab/internal/journal"
	"github.com/cleared-dev/ledgerlab/internal/ledger"
	"github.com/cleared-dev/ledgerlab/internal/model"
	"github.com/cleared-dev/ledgerlab/internal/progress"
	"github.com/cleared-dev/ledgerlab/internal/statements"
)

func heading(b *strings.Builder, title, subtitle string) {
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(center(title, width)))
	b.WriteString("\n")
	if subtitle != "" {
		b.WriteString(subtitleStyle.Render(center(subtitle, width)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func flush(w io.Writer, b *strings.Builder) error {
	_, err := io.WriteString(w, b.String())
	return err
}

// Companies lists the catalog.
func Companies(w io.Writer, companies []catalog.Company) error {
	var b strings.Builder
	heading(&b, "COMPANIES", "")
	for _, c := range companies {
		fmt.Fprintf(&b, "  %s  %s\n", headerStyle.Render(fmt.Sprintf("%-10s", c.ID)), c.Name)
		fmt.Fprintf(&b, "  %-10s  %s\n", "", dimStyle.Render(c.Industry+" · "+c.Description))
	}
	return flush(w, &b)
}

// Chart lists a chart of accounts grouped by category.
func Chart(w io.Writer, company string, chart *catalog.Chart) error {
	var b strings.Builder
	heading(&b, "CHART OF ACCOUNTS", company)
	for _, cat := range []model.Category{
		model.CategoryAsset, model.CategoryLiability, model.CategoryEquity,
		model.CategoryRevenue, model.CategoryExpense,
	} {
		fmt.Fprintf(&b, "  %s\n", headerStyle.Render(strings.ToUpper(string(cat))))
		for _, a := range chart.ByCategory(cat) {
			fmt.Fprintf(&b, "    %-6s %-38s %12s\n", a.Code, a.Name, Amount(a.OpeningBalance))
		}
	}
	return flush(w, &b)
}

// Transactions lists generated transactions with their source documents.
func Transactions(w io.Writer, day int, txs []model.Transaction, hints bool) error {
	var b strings.Builder
	heading(&b, fmt.Sprintf("DAY %d", day), generator.WeekPhase(day))
	if len(txs) == 0 {
		b.WriteString(dimStyle.Render("  No business today."))
		b.WriteString("\n")
	}
	for _, tx := range txs {
		fmt.Fprintf(&b, "  %s  %-40s %12s\n", headerStyle.Render(tx.ID), tx.Description, Money(tx.Amount))
		if d := tx.Document; d != nil {
			fmt.Fprintf(&b, "    %s %s  %s\n", d.Title, d.Number, dimStyle.Render(d.Date.Format("Jan 2, 2006")))
			for _, it := range d.Items {
				fmt.Fprintf(&b, "      %-34s %6s %12s\n", it.Description, it.Quantity, Money(it.Amount))
			}
		}
		if hints {
			a := generator.Analyze(tx)
			if a.Hint != "" {
				b.WriteString(hintBoxStyle.Render("Hint: " + a.Hint))
				b.WriteString("\n")
			}
		}
	}
	return flush(w, &b)
}

// Entry prints a journal entry.
func Entry(w io.Writer, e model.JournalEntry) error {
	var b strings.Builder
	label := e.ID
	if label == "" {
		label = "DRAFT"
	}
	fmt.Fprintf(&b, "  %s  %s  %s\n", headerStyle.Render(label), e.Date.Format("2006-01-02"), e.Description)
	for _, l := range e.Lines {
		indent := ""
		if !l.IsDebit() {
			indent = "    "
		}
		fmt.Fprintf(&b, "    %s%-6s %-30s %12s %12s\n", indent, l.Account, l.Description, Amount(l.Debit), Amount(l.Credit))
	}
	return flush(w, &b)
}

// Rejection explains why an entry was refused.
func Rejection(w io.Writer, verr *journal.ValidationError) error {
	var b strings.Builder
	b.WriteString(errorStyle.Render("  Entry not posted:"))
	b.WriteString("\n")
	for _, v := range verr.Violations {
		fmt.Fprintf(&b, "    - %s\n", v.Error())
	}
	return flush(w, &b)
}

// TrialBalance prints the trial balance with column totals.
func TrialBalance(w io.Writer, company string, rows []model.TrialBalanceRow) error {
	var b strings.Builder
	heading(&b, "TRIAL BALANCE", company)
	fmt.Fprintf(&b, "  %s\n", headerStyle.Render(fmt.Sprintf("%-6s %-26s %12s %12s", "Code", "Account", "Debit", "Credit")))
	for _, r := range rows {
		if r.Debit.IsZero() && r.Credit.IsZero() {
			continue
		}
		fmt.Fprintf(&b, "  %-6s %-26.26s %12s %12s\n", r.Code, r.Name, Amount(r.Debit), Amount(r.Credit))
	}
	debits, credits := ledger.Totals(rows)
	fmt.Fprintf(&b, "  %s\n", strings.Repeat("─", 58))
	fmt.Fprintf(&b, "  %s\n", totalStyle.Render(fmt.Sprintf("%-33s %12s %12s", "Totals", Money(debits), Money(credits))))
	if debits.Sub(credits).Abs().LessThan(model.Tolerance) {
		b.WriteString(successStyle.Render("  [BALANCED]"))
	} else {
		b.WriteString(errorStyle.Render("  [UNBALANCED]"))
	}
	b.WriteString("\n")
	return flush(w, &b)
}

func section(b *strings.Builder, title string, lines []statements.Line, label string, total decimal.Decimal) {
	fmt.Fprintf(b, "  %s\n", headerStyle.Render(title))
	for _, l := range lines {
		fmt.Fprintf(b, "    %-40s %14s\n", l.Name, Money(l.Amount))
	}
	fmt.Fprintf(b, "  %s\n\n", totalStyle.Render(fmt.Sprintf("%-42s %14s", label, Money(total))))
}

// IncomeStatement prints revenues, expenses and the net result.
func IncomeStatement(w io.Writer, company string, s statements.IncomeStatement) error {
	var b strings.Builder
	heading(&b, "INCOME STATEMENT", company)
	section(&b, "REVENUES", s.Revenues, "Total Revenue", s.TotalRevenue)
	section(&b, "EXPENSES", s.Expenses, "Total Expenses", s.TotalExpenses)
	fmt.Fprintf(&b, "  %s\n", totalStyle.Render(fmt.Sprintf("%-42s %14s", strings.ToUpper(s.Label()), Money(s.NetIncome.Abs()))))
	return flush(w, &b)
}

// BalanceSheet prints the accounting equation.
func BalanceSheet(w io.Writer, company string, s statements.BalanceSheet) error {
	var b strings.Builder
	heading(&b, "BALANCE SHEET", company)
	section(&b, "ASSETS", s.Assets, "Total Assets", s.TotalAssets)
	section(&b, "LIABILITIES", s.Liabilities, "Total Liabilities", s.TotalLiabilities)
	equity := append(s.Equity[:len(s.Equity):len(s.Equity)], statements.Line{Name: "Current Period " + statementsLabel(s), Amount: s.NetIncome})
	section(&b, "OWNER'S EQUITY", equity, "Total Owner's Equity", s.TotalEquity)
	fmt.Fprintf(&b, "  %s\n", totalStyle.Render(fmt.Sprintf("%-42s %14s", "TOTAL LIABILITIES & EQUITY", Money(s.LiabilitiesAndEquity()))))
	if s.Balanced() {
		b.WriteString(successStyle.Render("  [BALANCED]"))
	} else {
		b.WriteString(errorStyle.Render("  [UNBALANCED] off by " + Money(s.Difference())))
	}
	b.WriteString("\n")
	return flush(w, &b)
}

func statementsLabel(s statements.BalanceSheet) string {
	return statements.IncomeStatement{NetIncome: s.NetIncome}.Label()
}

// CashFlow prints the cash flow statement.
func CashFlow(w io.Writer, company string, c statements.CashFlowStatement) error {
	var b strings.Builder
	heading(&b, "CASH FLOW STATEMENT", company)
	for _, s := range c.Sections() {
		section(&b, strings.ToUpper(s.Title), s.Lines, "Net cash", s.Net)
	}
	fmt.Fprintf(&b, "  %s\n", totalStyle.Render(fmt.Sprintf("%-42s %14s", "NET INCREASE IN CASH", Money(c.NetIncrease))))
	if c.Placeholder {
		b.WriteString(dimStyle.Render("  Cash flows are not yet derived from postings."))
		b.WriteString("\n")
	}
	return flush(w, &b)
}

// Progress prints a progress report.
func Progress(w io.Writer, r progress.Report, accuracy float64) error {
	var b strings.Builder
	heading(&b, "PROGRESS", fmt.Sprintf("Accuracy %.1f%%", accuracy))
	fmt.Fprintf(&b, "  Skills mastered: %d/%d   Achievements: %d/%d\n\n",
		r.Summary.MasteredSkills, r.Summary.TotalSkills, r.Summary.EarnedAchievements, r.Summary.TotalAchievements)
	for _, name := range progress.Skills {
		s := r.Skills[name]
		bar := strings.Repeat("■", s.Level) + strings.Repeat("□", max(0, s.MaxLevel-s.Level))
		fmt.Fprintf(&b, "  %-24s %s  %3d xp\n", progress.SkillTitle(name), bar, s.XP)
	}
	if len(r.Achievements) > 0 {
		fmt.Fprintf(&b, "\n  %s\n", headerStyle.Render("ACHIEVEMENTS"))
		for _, a := range r.Achievements {
			fmt.Fprintf(&b, "    %s %s (+%d)\n", a.Icon, a.Title, a.Points)
		}
	}
	if len(r.TopMistakes) > 0 {
		fmt.Fprintf(&b, "\n  %s\n", headerStyle.Render("COMMON MISTAKES"))
		for _, m := range r.TopMistakes {
			fmt.Fprintf(&b, "    %-30s %d\n", journal.Kind(m.Kind).Message(), m.Count)
		}
	}
	for _, rec := range r.Recommendations {
		b.WriteString("\n")
		b.WriteString(hintBoxStyle.Render(rec.Message))
	}
	b.WriteString("\n")
	return flush(w, &b)
}

// Ledger prints account histories with running balances.
func Ledger(w io.Writer, company string, accounts []*ledger.Account) error {
	var b strings.Builder
	heading(&b, "GENERAL LEDGER", company)
	if len(accounts) == 0 {
		b.WriteString(dimStyle.Render("  No matching accounts."))
		b.WriteString("\n")
	}
	for _, a := range accounts {
		fmt.Fprintf(&b, "  %s  %s\n", headerStyle.Render(a.Code+" "+a.Name), dimStyle.Render("opening "+Money(a.OpeningBalance)))
		for _, l := range a.Lines {
			fmt.Fprintf(&b, "    %s %-6s %-26.26s %11s %11s %12s\n",
				l.Date.Format("01-02"), l.EntryID, l.Description, Amount(l.Debit), Amount(l.Credit), Money(l.Balance))
		}
		fmt.Fprintf(&b, "  %s\n\n", totalStyle.Render(fmt.Sprintf("%-56s %12s", "Balance", Money(a.Balance))))
	}
	return flush(w, &b)
}
