package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

func tmpl(typ, desc string, freq model.Frequency, min, max int64, accounts ...string) model.Template {
	return model.Template{
		Type:        typ,
		Description: desc,
		Accounts:    accounts,
		Min:         decimal.NewFromInt(min),
		Max:         decimal.NewFromInt(max),
		Frequency:   freq,
	}
}

const (
	daily       = model.FrequencyDaily
	twiceWeekly = model.FrequencyTwiceWeekly
	weekly      = model.FrequencyWeekly
	once        = model.FrequencyOnce
)

func coffeeWeeks() map[int][]model.Template {
	return map[int][]model.Template{
		1: {
			tmpl("cash_sale", "Daily coffee and food sales", daily, 150, 350, "1001", "4001", "4002"),
			tmpl("cash_purchase", "Purchase coffee beans and supplies", twiceWeekly, 200, 500, "1020", "1021", "1001"),
			tmpl("expense_payment", "Pay utilities bill", weekly, 75, 125, "5030", "1001"),
		},
		2: {
			tmpl("credit_sale", "Catering service on account", twiceWeekly, 300, 800, "1010", "4003"),
			tmpl("collection", "Collect payment from customer", weekly, 200, 600, "1001", "1010"),
		},
		3: {
			tmpl("payroll", "Pay employee wages", weekly, 800, 1200, "5010", "1001"),
			tmpl("equipment_purchase", "Purchase new espresso machine", once, 2000, 3500, "1100", "2001"),
		},
		4: {
			tmpl("rent_payment", "Pay monthly rent", once, 1500, 2000, "5020", "1001"),
			tmpl("owner_withdrawal", "Owner draws cash for personal use", once, 500, 1000, "3002", "1001"),
		},
	}
}

func tutoringWeeks() map[int][]model.Template {
	return map[int][]model.Template{
		1: {
			tmpl("cash_service", "Tutoring sessions conducted for cash", daily, 200, 400, "1001", "4001"),
			tmpl("supply_purchase", "Purchase office supplies", weekly, 50, 150, "1020", "1001"),
		},
		2: {
			tmpl("credit_service", "Tutoring services on account", twiceWeekly, 300, 700, "1010", "4001"),
			tmpl("group_session", "Group tutoring session", twiceWeekly, 150, 300, "1001", "4002"),
		},
		3: {
			tmpl("tutor_payment", "Pay tutors for services", weekly, 600, 1000, "5010", "1001"),
			tmpl("rent_payment", "Pay office rent", weekly, 800, 1200, "5020", "1001"),
		},
		4: {
			tmpl("insurance_payment", "Pay professional liability insurance", once, 300, 500, "1040", "1001"),
		},
	}
}

func retailWeeks() map[int][]model.Template {
	return map[int][]model.Template{
		1: {
			tmpl("cash_sale", "Daily merchandise sales", daily, 400, 800, "1001", "4001", "5001", "1020"),
			tmpl("inventory_purchase", "Purchase merchandise on account", twiceWeekly, 1000, 2500, "1020", "2001"),
		},
		2: {
			tmpl("credit_sale", "Sales to business customers on account", twiceWeekly, 300, 1200, "1010", "4001", "5001", "1020"),
			tmpl("payment_to_vendor", "Pay supplier for previous purchases", weekly, 800, 1500, "2001", "1001"),
		},
		3: {
			tmpl("employee_wages", "Pay employee salaries", weekly, 1200, 1800, "5010", "1001"),
			tmpl("sales_return", "Customer returns merchandise", twiceWeekly, 50, 200, "4004", "2030", "1020", "5001"),
		},
		4: {
			tmpl("rent_expense", "Pay store rent", once, 2000, 2500, "5020", "1001"),
			tmpl("utilities", "Pay store utilities", once, 200, 400, "5030", "1001"),
		},
	}
}
