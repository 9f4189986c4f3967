package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

func account(code, name string, cat model.Category, sub model.Subtype, side model.NormalSide, opening int64) model.Account {
	return model.Account{
		Code:           code,
		Name:           name,
		Category:       cat,
		Subtype:        sub,
		NormalSide:     side,
		OpeningBalance: decimal.NewFromInt(opening),
	}
}

func currentAsset(code, name string, opening int64) model.Account {
	return account(code, name, model.CategoryAsset, model.SubtypeCurrent, model.NormalDebit, opening)
}

func fixedAsset(code, name string, opening int64) model.Account {
	return account(code, name, model.CategoryAsset, model.SubtypeFixed, model.NormalDebit, opening)
}

func accumulatedDepreciation(code, name string) model.Account {
	return account(code, name, model.CategoryAsset, model.SubtypeFixed, model.NormalCredit, 0)
}

func currentLiability(code, name string, opening int64) model.Account {
	return account(code, name, model.CategoryLiability, model.SubtypeCurrent, model.NormalCredit, opening)
}

func longTermLiability(code, name string) model.Account {
	return account(code, name, model.CategoryLiability, model.SubtypeLongTerm, model.NormalCredit, 0)
}

func equityAccounts(capital int64) []model.Account {
	return []model.Account{
		account("3001", "Owner's Capital", model.CategoryEquity, model.SubtypeEquity, model.NormalCredit, capital),
		account("3002", "Owner's Drawings", model.CategoryEquity, model.SubtypeEquity, model.NormalDebit, 0),
		account("3003", "Retained Earnings", model.CategoryEquity, model.SubtypeEquity, model.NormalCredit, 0),
	}
}

func revenue(code, name string) model.Account {
	return account(code, name, model.CategoryRevenue, model.SubtypeRevenue, model.NormalCredit, 0)
}

func contraRevenue(code, name string) model.Account {
	return account(code, name, model.CategoryRevenue, model.SubtypeContraRevenue, model.NormalDebit, 0)
}

func expense(code, name string) model.Account {
	return account(code, name, model.CategoryExpense, model.SubtypeExpense, model.NormalDebit, 0)
}

func chart(groups ...[]model.Account) []model.Account {
	var out []model.Account
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func coffeeShop() Company {
	return Company{
		ID:          "coffee",
		Name:        "Campus Coffee Shop",
		Industry:    "Food Service",
		Description: "A cozy coffee shop serving students and faculty on campus",
		Accounts: chart(
			[]model.Account{
				currentAsset("1001", "Cash", 15000),
				currentAsset("1010", "Accounts Receivable", 0),
				currentAsset("1020", "Inventory - Coffee Beans", 2000),
				currentAsset("1021", "Inventory - Supplies", 1500),
				currentAsset("1030", "Prepaid Rent", 0),
				currentAsset("1040", "Prepaid Insurance", 0),
				fixedAsset("1100", "Equipment", 25000),
				accumulatedDepreciation("1101", "Accumulated Depreciation - Equipment"),
				currentLiability("2001", "Accounts Payable", 2500),
				currentLiability("2010", "Wages Payable", 0),
				currentLiability("2020", "Interest Payable", 0),
				currentLiability("2030", "Unearned Revenue", 0),
				longTermLiability("2100", "Notes Payable"),
			},
			equityAccounts(41000),
			[]model.Account{
				revenue("4001", "Coffee Sales"),
				revenue("4002", "Food Sales"),
				revenue("4003", "Catering Revenue"),
				expense("5001", "Cost of Goods Sold"),
				expense("5010", "Wages Expense"),
				expense("5020", "Rent Expense"),
				expense("5030", "Utilities Expense"),
				expense("5040", "Insurance Expense"),
				expense("5050", "Depreciation Expense"),
				expense("5060", "Supplies Expense"),
				expense("5070", "Advertising Expense"),
				expense("5080", "Interest Expense"),
			},
		),
		Weeks: coffeeWeeks(),
		Scenarios: []Scenario{
			{Week: 1, Day: 1, Title: "Opening Day Sales", Description: "First day of business with cash sales",
				Objectives: []string{"Record cash sales transactions", "Understand revenue recognition"}},
			{Week: 1, Day: 2, Title: "Supply Purchase", Description: "Purchase coffee beans and supplies with cash",
				Objectives: []string{"Record cash purchases", "Understand expense vs. asset classification"}},
			{Week: 2, Day: 8, Title: "Credit Sales Introduction", Description: "Start offering credit to regular customers",
				Objectives: []string{"Record credit sales", "Understand accounts receivable"}},
		},
		Objectives: []string{
			"Understanding cash vs. accrual accounting in a service business",
			"Recording inventory purchases and usage",
			"Managing simple payroll transactions",
			"Calculating and recording depreciation",
			"Preparing basic financial statements",
		},
	}
}

func tutoringService() Company {
	return Company{
		ID:          "tutoring",
		Name:        "Smart Tutoring Services",
		Industry:    "Education Services",
		Description: "Educational tutoring service providing personalized academic support",
		Accounts: chart(
			[]model.Account{
				currentAsset("1001", "Cash", 8000),
				currentAsset("1010", "Accounts Receivable", 2500),
				currentAsset("1020", "Office Supplies", 800),
				currentAsset("1030", "Prepaid Rent", 0),
				currentAsset("1040", "Prepaid Insurance", 0),
				fixedAsset("1100", "Computer Equipment", 8000),
				accumulatedDepreciation("1101", "Accumulated Depreciation - Equipment"),
				fixedAsset("1110", "Furniture & Fixtures", 4000),
				accumulatedDepreciation("1111", "Accumulated Depreciation - Furniture"),
				currentLiability("2001", "Accounts Payable", 1500),
				currentLiability("2010", "Wages Payable", 0),
				currentLiability("2020", "Interest Payable", 0),
				currentLiability("2030", "Unearned Tutoring Revenue", 0),
				currentLiability("2040", "Payroll Taxes Payable", 0),
			},
			// Capital is set so that opening assets equal liabilities plus equity.
			equityAccounts(21800),
			[]model.Account{
				revenue("4001", "Tutoring Revenue"),
				revenue("4002", "Group Session Revenue"),
				revenue("4003", "Online Course Revenue"),
				expense("5010", "Tutor Wages"),
				expense("5020", "Rent Expense"),
				expense("5030", "Utilities Expense"),
				expense("5040", "Insurance Expense"),
				expense("5050", "Depreciation Expense"),
				expense("5060", "Office Supplies Expense"),
				expense("5070", "Marketing Expense"),
				expense("5080", "Professional Development"),
				expense("5090", "Payroll Tax Expense"),
			},
		),
		Weeks: tutoringWeeks(),
		Scenarios: []Scenario{
			{Week: 1, Day: 1, Title: "First Tutoring Sessions", Description: "Conducted multiple tutoring sessions for cash",
				Objectives: []string{"Record service revenue", "Understand cash basis transactions"}},
		},
		Objectives: []string{
			"Recording service revenue and accounts receivable",
			"Managing prepaid and accrued expenses",
			"Understanding payroll and payroll taxes",
			"Recording professional service transactions",
			"Analyzing service business profitability",
		},
	}
}

func retailStore() Company {
	return Company{
		ID:          "retail",
		Name:        "Corner Market Store",
		Industry:    "Retail Trade",
		Description: "Local retail store offering everyday essentials and convenience items",
		Accounts: chart(
			[]model.Account{
				currentAsset("1001", "Cash", 12000),
				currentAsset("1010", "Accounts Receivable", 0),
				currentAsset("1020", "Merchandise Inventory", 18000),
				currentAsset("1030", "Store Supplies", 1200),
				currentAsset("1040", "Prepaid Rent", 0),
				currentAsset("1050", "Prepaid Insurance", 0),
				fixedAsset("1100", "Store Equipment", 20000),
				accumulatedDepreciation("1101", "Accumulated Depreciation - Store Equipment"),
				fixedAsset("1110", "Point of Sale System", 8000),
				accumulatedDepreciation("1111", "Accumulated Depreciation - POS System"),
				fixedAsset("1120", "Store Fixtures", 7000),
				accumulatedDepreciation("1121", "Accumulated Depreciation - Fixtures"),
				currentLiability("2001", "Accounts Payable", 8500),
				currentLiability("2010", "Wages Payable", 0),
				currentLiability("2020", "Interest Payable", 0),
				currentLiability("2030", "Sales Tax Payable", 0),
				currentLiability("2040", "Customer Deposits", 0),
				longTermLiability("2100", "Notes Payable"),
			},
			// Capital is set so that opening assets equal liabilities plus equity.
			equityAccounts(57700),
			[]model.Account{
				revenue("4001", "Merchandise Sales"),
				revenue("4002", "Service Revenue"),
				contraRevenue("4003", "Sales Discounts"),
				contraRevenue("4004", "Sales Returns and Allowances"),
				expense("5001", "Cost of Goods Sold"),
				expense("5010", "Salaries and Wages"),
				expense("5020", "Rent Expense"),
				expense("5030", "Utilities Expense"),
				expense("5040", "Insurance Expense"),
				expense("5050", "Depreciation Expense"),
				expense("5060", "Store Supplies Expense"),
				expense("5070", "Advertising Expense"),
				expense("5080", "Interest Expense"),
				expense("5090", "Bad Debt Expense"),
				expense("5100", "Miscellaneous Expense"),
			},
		),
		Weeks: retailWeeks(),
		Scenarios: []Scenario{
			{Week: 1, Day: 1, Title: "Store Opening", Description: "Grand opening with merchandise sales",
				Objectives: []string{"Record retail sales", "Understand cost of goods sold"}},
		},
		Objectives: []string{
			"Understanding perpetual inventory systems",
			"Recording cost of goods sold transactions",
			"Managing accounts receivable and payable",
			"Understanding sales tax collection and remittance",
			"Preparing retail financial statements",
		},
	}
}
