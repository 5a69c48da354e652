// Package output persists the pipeline's artifacts: one draft file per lead,
// the aggregate CSV, and the run log.
package output

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// maxFilenameLen caps the sanitized base name (without extension) so company
// plus contact names never produce unwieldy paths.
const maxFilenameLen = 90

// SanitizeFilename builds a safe file base name from name parts. Parts are
// joined with underscores; anything outside alphanumerics, German letters,
// hyphen, and underscore becomes an underscore; repeats collapse; leading and
// trailing underscores are trimmed; the result is length-capped. An
// all-unsafe input degrades to "lead".
func SanitizeFilename(parts ...string) string {
	joined := strings.Join(parts, "_")
	// NFC first so decomposed umlauts survive as single safe runes.
	joined = norm.NFC.String(joined)

	var b strings.Builder
	for _, r := range joined {
		if safeFilenameRune(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}

	s := b.String()
	for strings.Contains(s, "__") {
		s = strings.ReplaceAll(s, "__", "_")
	}
	s = strings.Trim(s, "_")

	if len([]rune(s)) > maxFilenameLen {
		s = strings.Trim(string([]rune(s)[:maxFilenameLen]), "_")
	}
	if s == "" {
		return "lead"
	}
	return s
}

func safeFilenameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '-' || r == '_':
		return true
	}
	switch r {
	case 'ä', 'ö', 'ü', 'Ä', 'Ö', 'Ü', 'ß':
		return true
	}
	return false
}
