package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

func assertLine(t *testing.T, l model.JournalLine, account, debit, credit string) {
	t.Helper()
	assert.Equal(t, account, l.Account)
	assert.True(t, l.Debit.Equal(dec(debit)), "%s debit = %s, want %s", account, l.Debit, debit)
	assert.True(t, l.Credit.Equal(dec(credit)), "%s credit = %s, want %s", account, l.Credit, credit)
}

func TestSplit_CashSale(t *testing.T) {
	lines := Split("cash_sale", []string{"1001", "4001", "4002"}, dec("200"))
	require.Len(t, lines, 3)
	assertLine(t, lines[0], "1001", "200", "0")
	assertLine(t, lines[1], "4001", "0", "140")
	assertLine(t, lines[2], "4002", "0", "60")
}

func TestSplit_CashSaleRemainder(t *testing.T) {
	lines := Split("cash_sale", []string{"1001", "4001", "4002"}, dec("100.01"))
	require.Len(t, lines, 3)
	assertLine(t, lines[1], "4001", "0", "70.01")
	assertLine(t, lines[2], "4002", "0", "30")
}

func TestSplit_CashSaleRetailUsesFirstThree(t *testing.T) {
	lines := Split("cash_sale", []string{"1001", "4001", "5001", "1020"}, dec("500"))
	require.Len(t, lines, 3)
	assertLine(t, lines[0], "1001", "500", "0")
	assertLine(t, lines[1], "4001", "0", "350")
	assertLine(t, lines[2], "5001", "0", "150")
}

func TestSplit_CashPurchase(t *testing.T) {
	lines := Split("cash_purchase", []string{"1020", "1021", "1001"}, dec("200"))
	require.Len(t, lines, 3)
	assertLine(t, lines[0], "1020", "120", "0")
	assertLine(t, lines[1], "1021", "80", "0")
	assertLine(t, lines[2], "1001", "0", "200")
}

func TestSplit_TwoAccountFallback(t *testing.T) {
	for _, typ := range []string{"cash_sale", "cash_purchase", "credit_sale", "expense_payment", "collection", "payroll"} {
		lines := Split(typ, []string{"1001", "4001"}, dec("75.5"))
		require.Len(t, lines, 2, typ)
		assertLine(t, lines[0], "1001", "75.5", "0")
		assertLine(t, lines[1], "4001", "0", "75.5")
	}
}

func TestSplit_CreditSaleIgnoresExtraAccounts(t *testing.T) {
	lines := Split("credit_sale", []string{"1010", "4001", "5001", "1020"}, dec("300"))
	require.Len(t, lines, 2)
	assertLine(t, lines[0], "1010", "300", "0")
	assertLine(t, lines[1], "4001", "0", "300")
}

func TestSplit_TooFewAccounts(t *testing.T) {
	assert.Empty(t, Split("owner_withdrawal", []string{"3002"}, dec("10")))
	assert.Empty(t, Split("cash_sale", nil, dec("10")))
}
