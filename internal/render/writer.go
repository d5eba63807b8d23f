package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/cleared-dev/csv2html/internal/ledger"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// preamble precedes the templated document. html/template drops comments,
// so it is written verbatim.
const preamble = "<!DOCTYPE html>\n" +
	"<!-- Generated by csv2html -->\n"

// Document holds the page-level settings of a ledger.
type Document struct {
	Title   string   // omitted when empty
	Styles  []string // extra stylesheet URLs
	Scripts []string // script URLs, loaded at the end of the body
}

// Writer writes a ledger document incrementally: the head, one group at a
// time, then the foot.
type Writer struct {
	w io.Writer
}

// NewWriter creates a Writer on w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteHead writes everything up to and including the opening <tbody>.
func (w *Writer) WriteHead(doc Document) error {
	if _, err := io.WriteString(w.w, preamble); err != nil {
		return fmt.Errorf("writing preamble: %w", err)
	}
	if err := templates.ExecuteTemplate(w.w, "head", doc); err != nil {
		return fmt.Errorf("writing head: %w", err)
	}
	return nil
}

// WriteGroup writes the rows of one transaction. It implements ledger.Sink.
func (w *Writer) WriteGroup(g ledger.Group) error {
	for _, row := range Rows(g) {
		name := "split"
		if row.Entry {
			name = "entry"
		}
		if err := templates.ExecuteTemplate(w.w, name, row); err != nil {
			return fmt.Errorf("writing %s row: %w", name, err)
		}
	}
	return nil
}

// WriteFoot closes the table and the document.
func (w *Writer) WriteFoot(doc Document) error {
	if err := templates.ExecuteTemplate(w.w, "foot", doc); err != nil {
		return fmt.Errorf("writing foot: %w", err)
	}
	return nil
}
