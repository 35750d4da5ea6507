// Package rendering turns a validated resume profile into downloadable
// documents. Renderers are pure: they never mutate their input, touch the
// network, or retain state between calls.
package rendering

import (
	"fmt"

	"github.com/Vijaykrishna2334/Portfoli-ai/internal/types"
)

// Format identifies a supported export format.
type Format string

// Supported export formats.
const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatText Format = "txt"
)

// ParseFormat validates a format string from a request path.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatPDF, FormatDOCX, FormatText:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unsupported export format %q (want pdf, docx or txt)", s)
	}
}

// ContentType returns the MIME type for a format.
func (f Format) ContentType() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	case FormatDOCX:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Filename returns the download filename for a format.
func (f Format) Filename() string {
	return "ATS_Resume." + string(f)
}

// Render produces the byte stream for a profile in the requested format.
func Render(format Format, profile *types.ResumeProfile) ([]byte, error) {
	switch format {
	case FormatPDF:
		return RenderPDF(profile)
	case FormatDOCX:
		return RenderDOCX(profile)
	case FormatText:
		return RenderText(profile), nil
	default:
		return nil, &RenderError{Format: string(format), Message: "unsupported format"}
	}
}
