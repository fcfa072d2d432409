package export

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/anandhx/Task-Management-System/internal/adapter/cli/dto"
	"github.com/anandhx/Task-Management-System/internal/adapter/cli/mapper"
	"github.com/anandhx/Task-Management-System/internal/adapter/cli/render"
	"github.com/anandhx/Task-Management-System/internal/core/domain"
	"github.com/anandhx/Task-Management-System/internal/core/ports"
)

const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatPDF  = "pdf"
)

var csvHeader = []string{"id", "description", "deadline", "status", "priority"}

// PDF column widths in millimetres, matching the terminal table proportions.
var pdfColumnWidths = []float64{14, 86, 30, 30, 30}

const pdfDescriptionRunes = 45

type Exporter struct {
	taskService ports.TaskService
}

func NewExporter(taskService ports.TaskService) *Exporter {
	return &Exporter{taskService: taskService}
}

// ParseFormat normalizes a format name. Unknown names yield a validation error.
func ParseFormat(raw string) (string, error) {
	switch format := strings.ToLower(strings.TrimSpace(raw)); format {
	case FormatCSV, FormatJSON, FormatPDF:
		return format, nil
	default:
		return "", domain.NewValidationError("format", fmt.Sprintf("unknown export format %q", raw))
	}
}

// Export writes every task, in insertion order, to w.
func (e *Exporter) Export(ctx context.Context, format string, w io.Writer) error {
	format, err := ParseFormat(format)
	if err != nil {
		return err
	}

	tasks, err := e.taskService.ListTasks(ctx, domain.SortNone)
	if err != nil {
		return err
	}
	rows := mapper.ToTaskRows(tasks, "")

	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(rows)
	case FormatCSV:
		return writeCSV(w, rows)
	default:
		return writePDF(w, rows)
	}
}

func writeCSV(w io.Writer, rows []dto.TaskRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write([]string{row.ID, row.Description, row.Deadline, row.Status, row.Priority}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writePDF(w io.Writer, rows []dto.TaskRow) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "Task Report")
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(220, 220, 220)
	for i, header := range csvHeader {
		pdf.CellFormat(pdfColumnWidths[i], 7, strings.ToUpper(header), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, row := range rows {
		for i, value := range []string{row.ID, row.Description, row.Deadline, row.Status, row.Priority} {
			if i == 1 {
				value = render.Truncate(value, pdfDescriptionRunes)
			}
			pdf.CellFormat(pdfColumnWidths[i], 6, tr(value), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}
