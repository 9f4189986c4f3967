package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

func TestDefaultCompanies(t *testing.T) {
	cat := Default()
	require.Len(t, cat.Companies(), 3)

	var ids []string
	for _, c := range cat.Companies() {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"coffee", "tutoring", "retail"}, ids)
}

func TestCompany_Unknown(t *testing.T) {
	_, err := Default().Company("bakery")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownCompany)

	_, err = Default().Chart("bakery")
	assert.ErrorIs(t, err, ErrUnknownCompany)
}

func TestCompany_Metadata(t *testing.T) {
	co, err := Default().Company("tutoring")
	require.NoError(t, err)
	assert.Equal(t, "Smart Tutoring Services", co.Name)
	assert.Equal(t, "Education Services", co.Industry)
	assert.Len(t, co.Objectives, 5)
}

func TestAccountCodesUnique(t *testing.T) {
	for _, co := range Default().Companies() {
		seen := make(map[string]bool)
		for _, a := range co.Accounts {
			assert.False(t, seen[a.Code], "%s: duplicate code %s", co.ID, a.Code)
			seen[a.Code] = true

			cat, ok := model.CategoryForCode(a.Code)
			require.True(t, ok, "%s: %s", co.ID, a.Code)
			assert.Equal(t, cat, a.Category, "%s: %s category", co.ID, a.Code)
		}
	}
}

func TestTemplates(t *testing.T) {
	cat := Default()

	w1 := cat.Templates("coffee", 1)
	require.Len(t, w1, 3)
	assert.Equal(t, "cash_sale", w1[0].Type)
	assert.Equal(t, []string{"1001", "4001", "4002"}, w1[0].Accounts)
	assert.Equal(t, model.FrequencyDaily, w1[0].Frequency)

	assert.Empty(t, cat.Templates("coffee", 5))
	assert.Empty(t, cat.Templates("bakery", 1))
}

func TestTemplateAccountsExistInChart(t *testing.T) {
	cat := Default()
	for _, co := range cat.Companies() {
		chart := NewChart(co.Accounts)
		for week, templates := range co.Weeks {
			for _, tp := range templates {
				assert.True(t, tp.Min.LessThanOrEqual(tp.Max), "%s week %d %s range", co.ID, week, tp.Type)
				for _, code := range tp.Accounts {
					assert.True(t, chart.Exists(code), "%s week %d %s uses unknown %s", co.ID, week, tp.Type, code)
				}
			}
		}
	}
}

func TestScenariosForDay(t *testing.T) {
	cat := Default()

	day8 := cat.ScenariosForDay("coffee", 8)
	require.Len(t, day8, 1)
	assert.Equal(t, "Credit Sales Introduction", day8[0].Title)

	assert.Empty(t, cat.ScenariosForDay("coffee", 3))
	assert.Empty(t, cat.ScenariosForDay("bakery", 1))
}

func TestObjectives_Unknown(t *testing.T) {
	assert.Nil(t, Default().Objectives("bakery"))
	assert.Len(t, Default().Objectives("retail"), 5)
}
