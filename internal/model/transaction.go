package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Frequency controls on which simulated days a template fires.
type Frequency string

const (
	FrequencyDaily       Frequency = "daily"
	FrequencyTwiceWeekly Frequency = "twice_weekly"
	FrequencyWeekly      Frequency = "weekly"
	FrequencyOnce        Frequency = "once"
)

// Template describes a kind of business event a company produces during one week.
type Template struct {
	Type        string
	Description string
	Accounts    []string
	Min, Max    decimal.Decimal
	Frequency   Frequency
}

// Transaction is a generated business event. It is never mutated after generation.
type Transaction struct {
	ID           string          `json:"id"`
	Day          int             `json:"day"`
	Date         time.Time       `json:"date"`
	Type         string          `json:"type"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	AccountCodes []string        `json:"accounts"`
	Lines        []JournalLine   `json:"journalEntry"`
	Document     *SourceDocument `json:"sourceDocument,omitempty"`
	// Scenario marks an on-demand practice transaction rather than one
	// generated from the day's templates.
	Scenario bool `json:"scenario,omitempty"`
}

// DocumentKind is the broad family of a source document.
type DocumentKind string

const (
	KindReceipt DocumentKind = "receipt"
	KindInvoice DocumentKind = "invoice"
	KindBill    DocumentKind = "bill"
)

// DocumentItem is one itemized line of a source document.
type DocumentItem struct {
	Description string          `json:"description"`
	Quantity    string          `json:"quantity,omitempty"`
	Rate        decimal.Decimal `json:"rate,omitzero"`
	Amount      decimal.Decimal `json:"amount"`
}

// SourceDocument is the data behind a receipt, invoice or bill. Rendering is
// left to the caller.
type SourceDocument struct {
	Kind            DocumentKind    `json:"kind"`
	Title           string          `json:"type"`
	Number          string          `json:"number"`
	CompanyName     string          `json:"companyName"`
	Date            time.Time       `json:"date"`
	Time            string          `json:"time,omitempty"`
	Address         string          `json:"address,omitempty"`
	CustomerName    string          `json:"customerName,omitempty"`
	CustomerAddress string          `json:"customerAddress,omitempty"`
	VendorName      string          `json:"vendorName,omitempty"`
	VendorAddress   string          `json:"vendorAddress,omitempty"`
	DueDate         time.Time       `json:"dueDate,omitzero"`
	Terms           string          `json:"terms,omitempty"`
	PeriodStart     time.Time       `json:"periodStart,omitzero"`
	PeriodEnd       time.Time       `json:"periodEnd,omitzero"`
	AccountNumber   string          `json:"accountNumber,omitempty"`
	ServiceAddress  string          `json:"serviceAddress,omitempty"`
	ServiceType     string          `json:"serviceType,omitempty"`
	PaymentMethod   string          `json:"paymentMethod,omitempty"`
	Items           []DocumentItem  `json:"items,omitempty"`
	Total           decimal.Decimal `json:"total"`
}
