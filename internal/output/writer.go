package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/clarencejohnson126/outreach-cli/internal/model"
)

// MissingEmailPlaceholder is written into draft files for leads that somehow
// reached generation without a usable address.
const MissingEmailPlaceholder = "<<keine-email>>"

// Writer persists per-lead draft files into a single output directory.
type Writer struct {
	dir string
}

// NewWriter ensures the output directory exists.
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, eris.Wrap(err, "output: create directory")
	}
	return &Writer{dir: dir}, nil
}

// Dir returns the output directory.
func (w *Writer) Dir() string { return w.dir }

// WriteDraft persists one draft as a text file named from the lead's company
// and contact name. The file appears whole or not at all: content goes to a
// temp file first and is renamed into place. Returns the final path.
func (w *Writer) WriteDraft(lead model.EnrichedLead, draft model.EmailDraft) (string, error) {
	name := SanitizeFilename(lead.Company, lead.LastName, lead.FirstName) + ".txt"
	path := filepath.Join(w.dir, name)

	email := lead.Email
	if email == "" {
		email = MissingEmailPlaceholder
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Betreff: %s\n", draft.Subject)
	fmt.Fprintf(&b, "An: %s\n", email)
	b.WriteString("\n")
	b.WriteString(draft.Body)
	b.WriteString("\n")

	if err := writeFileAtomic(path, []byte(b.String())); err != nil {
		return "", eris.Wrapf(err, "output: write draft %s", name)
	}
	return path, nil
}

// writeFileAtomic writes via a temp file plus rename so an interrupted run
// never leaves a half-written artifact on disk.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}
