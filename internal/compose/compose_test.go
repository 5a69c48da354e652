package compose

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clarencejohnson126/outreach-cli/internal/classify"
	"github.com/clarencejohnson126/outreach-cli/internal/model"
)

const testDemoURL = "https://angebots-agent.de/demo"

func newTestComposer(t *testing.T) *Composer {
	t.Helper()
	tmpl, err := Default()
	require.NoError(t, err)
	return New(tmpl, testDemoURL)
}

func TestDraft_ByteIdentical(t *testing.T) {
	c := newTestComposer(t)
	lead := model.EnrichedLead{
		FirstName: "Max",
		LastName:  "Muster",
		Company:   "Muster Elektrotechnik GmbH",
		Email:     "max@bau-muster.de",
		Trade:     "Elektrotechnik",
		Hook:      "seit über 28 Jahren am Markt",
	}

	first := c.Draft(lead)
	for i := 0; i < 5; i++ {
		again := c.Draft(lead)
		assert.Equal(t, first.Subject, again.Subject)
		assert.Equal(t, first.Body, again.Body)
	}
}

func TestDraft_InformalRegisterUsesFirstName(t *testing.T) {
	c := newTestComposer(t)
	// Identity("max@bau-muster.de") is even: informal register, so the
	// greeting addresses the lead by first name.
	draft := c.Draft(model.EnrichedLead{
		FirstName: "Max",
		LastName:  "Muster",
		Email:     "max@bau-muster.de",
	})

	greeting := strings.SplitN(draft.Body, "\n", 2)[0]
	assert.Contains(t, greeting, "Max")
	assert.NotContains(t, greeting, "Herr Muster")
}

func TestDraft_FormalRegisterUsesLastName(t *testing.T) {
	c := newTestComposer(t)
	// Identity("") is odd: formal register.
	draft := c.Draft(model.EnrichedLead{
		FirstName: "Max",
		LastName:  "Muster",
		Email:     "",
	})

	greeting := strings.SplitN(draft.Body, "\n", 2)[0]
	assert.Contains(t, greeting, "Muster")
	assert.NotContains(t, greeting, "Max")
}

func TestDraft_EmptyEmailStillComposes(t *testing.T) {
	c := newTestComposer(t)
	draft := c.Draft(model.EnrichedLead{})
	assert.NotEmpty(t, draft.Subject)
	assert.Contains(t, draft.Body, testDemoURL)
	assert.Equal(t, genericFormalGreeting, strings.SplitN(draft.Body, "\n", 2)[0])
}

func TestDraft_DemoURLAlwaysPresent(t *testing.T) {
	c := newTestComposer(t)
	for _, email := range []string{"a@b.com", "x@y.de", "", "info@dach-krause.de"} {
		draft := c.Draft(model.EnrichedLead{Email: email, FirstName: "A", LastName: "B"})
		assert.Contains(t, draft.Body, testDemoURL, "email %q", email)
	}
}

func TestDraft_HookRendered(t *testing.T) {
	c := newTestComposer(t)
	draft := c.Draft(model.EnrichedLead{
		FirstName: "Max",
		Email:     "max@bau-muster.de",
		Hook:      "ein Team von 12 Mitarbeitern",
	})
	assert.Contains(t, draft.Body, "ein Team von 12 Mitarbeitern")
}

func TestDraft_GenericHookSuppressed(t *testing.T) {
	c := newTestComposer(t)

	withHook := c.Draft(model.EnrichedLead{Email: "a@b.com", FirstName: "A", Hook: "Elektrotechnik"})
	noHook := c.Draft(model.EnrichedLead{Email: "a@b.com", FirstName: "A"})
	generic := c.Draft(model.EnrichedLead{Email: "a@b.com", FirstName: "A", Hook: classify.FallbackTrade})

	// The fallback trade label must not trigger a personalization sentence:
	// the draft is identical to one with no hook at all.
	assert.Equal(t, noHook, generic)
	assert.NotContains(t, generic.Body, classify.FallbackTrade)
	assert.NotEqual(t, withHook.Body, generic.Body)
}

func TestDraft_AssemblyOrder(t *testing.T) {
	c := newTestComposer(t)
	draft := c.Draft(model.EnrichedLead{
		FirstName: "Max",
		Email:     "max@bau-muster.de",
		Hook:      "seit über 28 Jahren am Markt",
	})

	lines := strings.Split(draft.Body, "\n")
	// greeting, "", hook, "", pitch, "", value, "", cta, "", closing (the
	// closing itself spans multiple lines).
	require.GreaterOrEqual(t, len(lines), 11)
	assert.NotEmpty(t, lines[0])
	assert.Empty(t, lines[1])
	assert.Contains(t, lines[2], "seit über 28 Jahren am Markt")
	assert.Empty(t, lines[3])
	assert.NotEmpty(t, lines[4])
	assert.Empty(t, lines[5])
	assert.NotEmpty(t, lines[6])
	assert.Empty(t, lines[7])
	assert.Contains(t, lines[8], testDemoURL)
	assert.Empty(t, lines[9])
	assert.NotEmpty(t, lines[10])
}

func TestDraft_NoHookSkipsPersonalizationBlock(t *testing.T) {
	c := newTestComposer(t)
	draft := c.Draft(model.EnrichedLead{FirstName: "Max", Email: "max@bau-muster.de"})

	lines := strings.Split(draft.Body, "\n")
	require.GreaterOrEqual(t, len(lines), 9)
	assert.NotEmpty(t, lines[0]) // greeting
	assert.Empty(t, lines[1])
	assert.NotEmpty(t, lines[2]) // pitch follows directly
	assert.Contains(t, lines[6], testDemoURL)
}

func TestDefault_Valid(t *testing.T) {
	tmpl, err := Default()
	require.NoError(t, err)
	assert.NotEmpty(t, tmpl.Subjects)
	assert.NotEmpty(t, tmpl.Closings)
}

func TestLoadFile_RejectsEmptyPool(t *testing.T) {
	path := t.TempDir() + "/bad.yaml"
	err := writeFile(t, path, "subjects: []\n")
	require.NoError(t, err)

	_, err = LoadFile(path)
	assert.Error(t, err)
}

func TestLoadFile_RejectsCTAWithoutPlaceholder(t *testing.T) {
	tmpl, err := Default()
	require.NoError(t, err)
	tmpl.CTAs.Informal = []string{"keine URL hier"}
	assert.Error(t, tmpl.validate())
}

func writeFile(t *testing.T, path, content string) error {
	t.Helper()
	return os.WriteFile(path, []byte(content), 0o644)
}
