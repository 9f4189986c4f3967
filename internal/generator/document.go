package generator

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerlab/internal/catalog"
	"github.com/cleared-dev/ledgerlab/internal/model"
)

const (
	businessAddress = "123 Business St, City, ST 12345"
	customerAddress = "456 Customer Ave, City, ST 12345"
	vendorAddress   = "789 Supplier Blvd, City, ST 12345"
	utilityCompany  = "City Utilities Company"
	invoiceTerms    = "Net 30"
	invoiceDueDays  = 30
	billDueDays     = 15
	paymentCash     = "CASH"
)

var customerNames = []string{
	"Johnson & Associates", "Smith Enterprises", "Brown Company",
	"Davis Corporation", "Wilson LLC", "Miller Group",
	"Taylor Solutions", "Anderson Services", "Thomas Industries",
}

var vendorNames = map[string][]string{
	"coffee":   {"Premium Coffee Supply", "Bean There Wholesale", "Roasters United"},
	"tutoring": {"Office Supply Plus", "Educational Resources Inc", "Study Materials Co"},
	"retail":   {"Wholesale Distributors", "Merchant Supply Co", "Retail Partners LLC"},
}

// Document titles by transaction type.
const (
	TitleCashReceipt     = "Cash Register Receipt"
	TitleSalesInvoice    = "Sales Invoice"
	TitlePurchaseReceipt = "Purchase Receipt"
	TitleUtilityBill     = "Utility Bill"
)

// document builds the source document for a transaction, or nil when the type
// has no paper trail.
func (g *Generator) document(co catalog.Company, t model.Template, amount decimal.Decimal, date time.Time, txnID string) *model.SourceDocument {
	switch t.Type {
	case "cash_sale", "credit_sale", "cash_purchase", "expense_payment":
	default:
		return nil
	}

	doc := &model.SourceDocument{
		CompanyName: co.Name,
		Date:        date,
		Time:        g.clockTime(),
		Total:       amount,
		Number:      txnID,
	}

	switch t.Type {
	case "cash_sale":
		doc.Kind = model.KindReceipt
		doc.Title = TitleCashReceipt
		doc.PaymentMethod = paymentCash
		doc.Items = saleItems(co.ID, amount)
	case "credit_sale":
		doc.Kind = model.KindInvoice
		doc.Title = TitleSalesInvoice
		doc.Address = businessAddress
		doc.DueDate = date.AddDate(0, 0, invoiceDueDays)
		doc.Terms = invoiceTerms
		doc.CustomerName = g.pick(customerNames)
		doc.CustomerAddress = customerAddress
		doc.Items = invoiceItems(co.ID, amount)
	case "cash_purchase":
		doc.Kind = model.KindReceipt
		doc.Title = TitlePurchaseReceipt
		doc.PaymentMethod = paymentCash
		doc.VendorName = g.pick(vendorPool(co.ID))
		doc.VendorAddress = vendorAddress
		doc.Items = purchaseItems(co.ID, amount)
	case "expense_payment":
		doc.Kind = model.KindBill
		doc.Title = TitleUtilityBill
		doc.VendorName = utilityCompany
		doc.PeriodStart, doc.PeriodEnd = previousMonth(date)
		doc.AccountNumber = "ACCT-" + strconv.Itoa(g.rng.IntN(1000000))
		doc.ServiceAddress = businessAddress
		doc.ServiceType = "Electricity"
		doc.DueDate = date.AddDate(0, 0, billDueDays)
		doc.Items = []model.DocumentItem{{Description: "Electricity Charges", Amount: amount}}
	}
	return doc
}

// clockTime draws a time of day during business hours.
func (g *Generator) clockTime() string {
	return fmt.Sprintf("%02d:%02d", 7+g.rng.IntN(12), g.rng.IntN(60))
}

func vendorPool(companyID string) []string {
	if pool, ok := vendorNames[companyID]; ok {
		return pool
	}
	return vendorNames["retail"]
}

func saleItems(companyID string, total decimal.Decimal) []model.DocumentItem {
	switch companyID {
	case "coffee":
		coffee, food := portion(total, seventy)
		return []model.DocumentItem{
			{Description: "Coffee & Beverages", Amount: coffee},
			{Description: "Food Items", Amount: food},
		}
	case "tutoring":
		return []model.DocumentItem{{Description: "Tutoring Services", Amount: total}}
	case "retail":
		return []model.DocumentItem{{Description: "Merchandise Sales", Amount: total}}
	}
	return nil
}

var hourlyRate = decimal.NewFromInt(50)

func invoiceItems(companyID string, total decimal.Decimal) []model.DocumentItem {
	switch companyID {
	case "coffee":
		return []model.DocumentItem{{Description: "Catering Services", Quantity: "1", Rate: total, Amount: total}}
	case "tutoring":
		hours := total.Div(hourlyRate).Ceil()
		if hours.IsZero() {
			hours = decimal.NewFromInt(1)
		}
		return []model.DocumentItem{{
			Description: "Private Tutoring Sessions",
			Quantity:    hours.String(),
			Rate:        total.Div(hours).Round(2),
			Amount:      total,
		}}
	}
	return []model.DocumentItem{{Description: "Merchandise Sales", Quantity: "1", Rate: total, Amount: total}}
}

func purchaseItems(companyID string, total decimal.Decimal) []model.DocumentItem {
	switch companyID {
	case "coffee":
		beans, supplies := portion(total, sixty)
		return []model.DocumentItem{
			{Description: "Coffee Beans", Quantity: "10 lbs", Amount: beans},
			{Description: "Supplies", Quantity: "Various", Amount: supplies},
		}
	case "tutoring":
		return []model.DocumentItem{{Description: "Office Supplies", Quantity: "Various", Amount: total}}
	}
	return []model.DocumentItem{{Description: "Merchandise Inventory", Quantity: "Various", Amount: total}}
}

// previousMonth returns the first and last day of the month before date.
func previousMonth(date time.Time) (time.Time, time.Time) {
	y, m, _ := date.Date()
	start := time.Date(y, m-1, 1, 0, 0, 0, 0, date.Location())
	end := time.Date(y, m, 0, 0, 0, 0, 0, date.Location())
	return start, end
}
