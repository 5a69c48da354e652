// Package compose assembles one outreach email draft per enriched lead.
// Every "random-looking" choice is a deterministic function of the lead's
// email hash; composing the same lead twice yields byte-identical output.
package compose

import (
	"fmt"
	"strings"

	"github.com/clarencejohnson126/outreach-cli/internal/hash"
	"github.com/clarencejohnson126/outreach-cli/internal/model"
	"github.com/clarencejohnson126/outreach-cli/internal/personalize"
)

// Per-slot hash salts decorrelate independent choices within one email:
// without them every slot would share the same index parity.
const (
	saltSubject = "subject"
	saltGreet   = "greet"
	saltHook    = "hook"
	saltPitch   = "pitch"
	saltValue   = "value"
	saltCTA     = "cta"
	saltClose   = "close"
)

// Fallback greetings used when the lead record carries no usable name.
const (
	genericInformalGreeting = "Hallo,"
	genericFormalGreeting   = "Sehr geehrte Damen und Herren,"
)

// Composer renders drafts from a fixed template set.
type Composer struct {
	tmpl    *Templates
	demoURL string
}

// New creates a Composer. tmpl must have passed validation (see Default /
// LoadFile); demoURL is embedded verbatim into every call-to-action.
func New(tmpl *Templates, demoURL string) *Composer {
	return &Composer{tmpl: tmpl, demoURL: demoURL}
}

// Draft composes the email for a lead. Never fails: an empty email string
// still hashes deterministically, so even degenerate leads get a stable
// draft.
func (c *Composer) Draft(lead model.EnrichedLead) model.EmailDraft {
	email := lead.Email

	// Register and voice come from two separate bits of the identity hash:
	// an even hash means informal "du", bit 1 set means plural "wir".
	informal := !hash.Bit(email, 0)
	plural := hash.Bit(email, 1)

	subject := pick(email+saltSubject, c.tmpl.Subjects)

	lines := []string{
		c.greeting(lead, informal),
		"",
	}

	// Personalization sentence: only for a real hook. The generic trade
	// fallback is suppressed by policy so no email ever "personalizes" on
	// nothing.
	if !personalize.IsGeneric(lead.Hook) {
		hookPool := c.tmpl.HookLines.Formal
		if informal {
			hookPool = c.tmpl.HookLines.Informal
		}
		lines = append(lines, fmt.Sprintf(pick(email+saltHook, hookPool), lead.Hook), "")
	}

	lines = append(lines,
		c.pitch(email, informal, plural),
		"",
		pick(email+saltValue, registerPool(c.tmpl.Values, informal)),
		"",
		fmt.Sprintf(pick(email+saltCTA, registerPool(c.tmpl.CTAs, informal)), c.demoURL),
		"",
		pick(email+saltClose, c.tmpl.Closings),
	)

	return model.EmailDraft{
		Subject: subject,
		Body:    strings.Join(lines, "\n"),
	}
}

func (c *Composer) greeting(lead model.EnrichedLead, informal bool) string {
	if informal {
		name := lead.FirstName
		if name == "" {
			name = lead.LastName
		}
		if name == "" {
			return genericInformalGreeting
		}
		return fmt.Sprintf(pick(lead.Email+saltGreet, c.tmpl.Greetings.Informal), name)
	}

	name := lead.LastName
	if name == "" {
		name = lead.FirstName
	}
	if name == "" {
		return genericFormalGreeting
	}
	return fmt.Sprintf(pick(lead.Email+saltGreet, c.tmpl.Greetings.Formal), name)
}

func (c *Composer) pitch(email string, informal, plural bool) string {
	voices := c.tmpl.Pitches.Formal
	if informal {
		voices = c.tmpl.Pitches.Informal
	}
	pool := voices.Singular
	if plural {
		pool = voices.Plural
	}
	return pick(email+saltPitch, pool)
}

func registerPool(p RegisterPools, informal bool) []string {
	if informal {
		return p.Informal
	}
	return p.Formal
}

func pick(seed string, pool []string) string {
	return pool[hash.Pick(seed, len(pool))]
}
