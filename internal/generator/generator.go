package generator

import (
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/cleared-dev/ledgerlab/internal/catalog"
	"github.com/cleared-dev/ledgerlab/internal/id"
	"github.com/cleared-dev/ledgerlab/internal/model"
)

// DaysPerWeek groups simulated days into template weeks.
const DaysPerWeek = 7

// Generator produces the day's business transactions for a company.
type Generator struct {
	catalog *catalog.Catalog
	rng     Rand
	start   time.Time
	log     *zap.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) { g.log = l }
}

// New creates a Generator. Day 1 of the simulation falls on start.
func New(cat *catalog.Catalog, rng Rand, start time.Time, opts ...Option) *Generator {
	g := &Generator{
		catalog: cat,
		rng:     rng,
		start:   truncateDay(start),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Week returns the template week a day belongs to.
func Week(day int) int {
	return (day + DaysPerWeek - 1) / DaysPerWeek
}

// DayOfWeek returns 1..7 for day, where 1 is the first day of each week.
func DayOfWeek(day int) int {
	return ((day - 1) % DaysPerWeek) + 1
}

// ShouldFire reports whether a template with the given frequency runs on day.
func ShouldFire(freq model.Frequency, day int) bool {
	dow := DayOfWeek(day)
	switch freq {
	case model.FrequencyDaily:
		return dow <= 5
	case model.FrequencyTwiceWeekly:
		return dow == 2 || dow == 4
	case model.FrequencyWeekly:
		return dow == 1
	case model.FrequencyOnce:
		return day%DaysPerWeek == 1
	default:
		return false
	}
}

// GenerateDailyTransactions returns the transactions a company produces on
// day. Companies or weeks without templates yield an empty slice.
func (g *Generator) GenerateDailyTransactions(companyID string, day int) []model.Transaction {
	templates := g.catalog.Templates(companyID, Week(day))
	txns := []model.Transaction{}
	if len(templates) == 0 {
		g.log.Debug("no templates", zap.String("company", companyID), zap.Int("day", day))
		return txns
	}

	co, err := g.catalog.Company(companyID)
	if err != nil {
		return txns
	}

	for _, t := range templates {
		if !ShouldFire(t.Frequency, day) {
			continue
		}
		txns = append(txns, g.createTransaction(co, t, day))
	}
	g.log.Debug("generated transactions",
		zap.String("company", companyID),
		zap.Int("day", day),
		zap.Int("count", len(txns)),
	)
	return txns
}

// Date returns the calendar date of a simulated day.
func (g *Generator) Date(day int) time.Time {
	return g.start.AddDate(0, 0, day-1)
}

func (g *Generator) createTransaction(co catalog.Company, t model.Template, day int) model.Transaction {
	amount := g.amount(t.Min, t.Max)
	txnID := id.FormatTransactionID(day, g.rng.IntN(1000))
	date := g.Date(day)

	return model.Transaction{
		ID:           txnID,
		Day:          day,
		Date:         date,
		Type:         t.Type,
		Description:  t.Description,
		Amount:       amount,
		AccountCodes: append([]string(nil), t.Accounts...),
		Lines:        Split(t.Type, t.Accounts, amount),
		Document:     g.document(co, t, amount, date, txnID),
	}
}

// amount draws uniformly from [min, max] and rounds to cents.
func (g *Generator) amount(min, max decimal.Decimal) decimal.Decimal {
	span := max.Sub(min)
	return min.Add(span.Mul(decimal.NewFromFloat(g.rng.Float64()))).Round(2)
}

func (g *Generator) pick(pool []string) string {
	return pool[g.rng.IntN(len(pool))]
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
