package taskline

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Exporter renders the full task collection in an interchange format.
// It never mutates the store.
type Exporter struct{ store *Store }

func NewExporter(store *Store) *Exporter { return &Exporter{store: store} }

// Export returns the collection as json, csv or pdf.
func (e *Exporter) Export(format string) ([]byte, error) {
	tasks := e.store.List("")
	switch strings.ToLower(format) {
	case "json":
		return json.MarshalIndent(tasks, "", "  ")
	case "csv":
		var b strings.Builder
		w := csv.NewWriter(&b)
		_ = w.Write([]string{"id", "description", "status", "createdAt", "updatedAt"})
		for _, t := range tasks {
			_ = w.Write([]string{
				strconv.Itoa(t.ID),
				t.Description,
				string(t.Status),
				t.CreatedAt.Format(time.RFC3339),
				t.UpdatedAt.Format(time.RFC3339),
			})
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return nil, err
		}
		return []byte(b.String()), nil
	case "pdf":
		pdf := gofpdf.New("P", "mm", "A4", "")
		pdf.AddPage()
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(40, 10, "Task Report")
		pdf.Ln(12)
		pdf.SetFont("Arial", "", 10)
		for _, t := range tasks {
			line := fmt.Sprintf("[%d] %s (%s) created=%s updated=%s",
				t.ID, t.Description, t.Status,
				t.CreatedAt.Format(time.RFC3339), t.UpdatedAt.Format(time.RFC3339))
			pdf.MultiCell(0, 6, line, "0", "L", false)
		}
		var buf bytes.Buffer
		if err := pdf.Output(&buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown format %s", format)
	}
}
