package rendering

import (
	"bytes"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/Vijaykrishna2334/Portfoli-ai/internal/types"
)

// RenderPDF produces a single-column PDF resume. Streams are left
// uncompressed so the text content survives as-is in the byte stream.
func RenderPDF(profile *types.ResumeProfile) ([]byte, error) {
	doc := fpdf.New("P", "pt", "Letter", "")
	doc.SetCompression(false)
	doc.SetMargins(36, 36, 36)
	doc.AddPage()
	tr := doc.UnicodeTranslatorFromDescriptor("")

	// Header: name and contact.
	doc.SetFont("Helvetica", "B", 20)
	doc.SetTextColor(0, 123, 255)
	doc.CellFormat(0, 24, tr(strings.ToUpper(profile.Name)), "", 1, "C", false, 0, "")
	doc.SetFont("Helvetica", "I", 10)
	doc.SetTextColor(51, 51, 51)
	doc.CellFormat(0, 14, tr(profile.Email), "", 1, "C", false, 0, "")
	doc.Ln(8)

	writeSection := func(title string) {
		doc.SetFont("Helvetica", "B", 14)
		doc.SetTextColor(51, 51, 51)
		doc.CellFormat(0, 18, tr(title), "", 1, "L", false, 0, "")
	}
	writeBody := func(text string) {
		doc.SetFont("Helvetica", "", 10)
		doc.SetTextColor(0, 0, 0)
		doc.MultiCell(0, 13, tr(text), "", "L", false)
	}

	writeSection("SUMMARY")
	writeBody(strings.TrimSpace(profile.Summary))
	doc.Ln(6)

	writeSection("KEY SKILLS")
	writeBody(strings.Join(profile.Skills, ", "))
	doc.Ln(6)

	writeSection("WORK EXPERIENCE")
	for _, exp := range profile.Experience {
		doc.SetFont("Helvetica", "B", 10)
		doc.CellFormat(0, 14, tr(exp.Title+" at "+exp.Company), "", 1, "L", false, 0, "")
		doc.SetFont("Helvetica", "I", 10)
		doc.CellFormat(0, 13, tr(exp.Years), "", 1, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 10)
		for _, line := range summaryLines(exp.Summary) {
			doc.MultiCell(0, 13, tr("- "+line), "", "L", false)
		}
		doc.Ln(5)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, &RenderError{Format: "pdf", Message: "failed to build document", Cause: err}
	}
	return buf.Bytes(), nil
}

// summaryLines splits an experience summary into bullet lines.
func summaryLines(summary string) []string {
	cleaned := strings.ReplaceAll(summary, "·", "")
	lines := make([]string, 0, 4)
	for _, line := range strings.Split(cleaned, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
