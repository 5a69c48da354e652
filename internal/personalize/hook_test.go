package personalize

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/clarencejohnson126/outreach-cli/internal/classify"
	"github.com/clarencejohnson126/outreach-cli/internal/hash"
	"github.com/clarencejohnson126/outreach-cli/internal/model"
)

var refNow = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

func TestHook_YearsInBusiness(t *testing.T) {
	lead := model.RawLead{
		Email:   "info@dach-krause.de",
		Summary: "Dachdeckerei, seit 1998 für Sie da",
	}
	got := Hook(lead, "", classify.FallbackTrade, refNow)
	assert.Equal(t, "seit über 28 Jahren am Markt", got)
}

func TestHook_YearsBelowThresholdIgnored(t *testing.T) {
	lead := model.RawLead{Email: "a@b.com", Summary: "gegründet, seit 2020 am Start"}
	assert.Empty(t, Hook(lead, "", classify.FallbackTrade, refNow))
}

func TestHook_HighValueCrowdsOutGeneric(t *testing.T) {
	// Both an employee count (high) and a neubau keyword (normal) are
	// present; the selection pool must contain only the high-value hit.
	lead := model.RawLead{
		Email:   "a@b.com",
		Summary: "Neubau und mehr, 25 Mitarbeiter",
	}
	got := Hook(lead, "", classify.FallbackTrade, refNow)
	assert.Equal(t, "ein Team von 25 Mitarbeitern", got)
}

func TestHook_DeterministicSelection(t *testing.T) {
	// Two high-value candidates in fixed order: years, then employees.
	lead := model.RawLead{
		Email:   "max@bau-muster.de",
		Summary: "Familienunternehmen seit 1998, 12 Mitarbeiter",
	}
	want := []string{
		"seit über 28 Jahren am Markt",
		"ein Team von 12 Mitarbeitern",
	}[hash.Pick("max@bau-muster.de", 2)]

	for i := 0; i < 3; i++ {
		assert.Equal(t, want, Hook(lead, "", classify.FallbackTrade, refNow))
	}
}

func TestHook_WebsiteSummaryKeywords(t *testing.T) {
	tests := []struct {
		summary  string
		expected string
	}{
		{"Meisterbetrieb für Elektrotechnik", "Ihren Meisterbetrieb"},
		{"Ihr Familienbetrieb in dritter Generation", "Ihren Familienbetrieb"},
		{"Wir arbeiten regional", "Ihre starke regionale Verwurzelung"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			lead := model.RawLead{Email: "a@b.com"}
			assert.Equal(t, tt.expected, Hook(lead, tt.summary, classify.FallbackTrade, refNow))
		})
	}
}

func TestHook_TradeLabelAsLastResort(t *testing.T) {
	lead := model.RawLead{Email: "a@b.com"}
	assert.Equal(t, "Elektrotechnik", Hook(lead, "", "Elektrotechnik", refNow))
}

func TestHook_FallbackTradeNotACandidate(t *testing.T) {
	lead := model.RawLead{Email: "a@b.com"}
	assert.Empty(t, Hook(lead, "", classify.FallbackTrade, refNow))
}

func TestHook_CompanyNameSeedWhenNoEmail(t *testing.T) {
	lead := model.RawLead{
		CompanyName: "Muster Elektrotechnik GmbH",
		Summary:     "seit 1990 am Markt, 8 Mitarbeiter",
	}
	want := []string{
		fmt.Sprintf("seit über %d Jahren am Markt", refNow.Year()-1990),
		"ein Team von 8 Mitarbeitern",
	}[hash.Pick("Muster Elektrotechnik GmbH", 2)]
	assert.Equal(t, want, Hook(lead, "", classify.FallbackTrade, refNow))
}

func TestIsGeneric(t *testing.T) {
	assert.True(t, IsGeneric(""))
	assert.True(t, IsGeneric(classify.FallbackTrade))
	assert.True(t, IsGeneric("handwerk"))
	assert.False(t, IsGeneric("Elektrotechnik"))
	assert.False(t, IsGeneric("seit über 28 Jahren am Markt"))
}
