// Package ingestion converts user-supplied inputs — uploaded resume documents
// and job posting URLs — into clean plain text ready for extraction.
package ingestion

import (
	"bytes"
	"fmt"
	"html"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// DocumentText extracts plain text from an uploaded resume document. The
// format is chosen by file extension: .pdf, .docx, or .txt.
func DocumentText(filename string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", &DocumentError{Filename: filename, Message: "document is empty"}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return pdfText(filename, data)
	case ".docx":
		return docxText(filename, data)
	case ".txt":
		return CleanText(string(data)), nil
	default:
		return "", &DocumentError{
			Filename: filename,
			Message:  "unsupported document type (want .pdf, .docx or .txt)",
		}
	}
}

func pdfText(filename string, data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &DocumentError{Filename: filename, Message: "failed to read PDF", Cause: err}
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", &DocumentError{
				Filename: filename,
				Message:  fmt.Sprintf("failed to extract text from page %d", i),
				Cause:    err,
			}
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return CleanText(sb.String()), nil
}

func docxText(filename string, data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &DocumentError{Filename: filename, Message: "failed to read DOCX", Cause: err}
	}
	defer func() { _ = doc.Close() }()

	return CleanText(stripXMLTags(doc.Editable().GetContent())), nil
}

var (
	paragraphEndRe = regexp.MustCompile(`</w:p>`)
	xmlTagRe       = regexp.MustCompile(`<[^>]+>`)
)

// stripXMLTags flattens WordprocessingML into plain text: paragraph ends
// become newlines, all other tags are dropped, entities are unescaped.
func stripXMLTags(content string) string {
	content = paragraphEndRe.ReplaceAllString(content, "\n")
	content = xmlTagRe.ReplaceAllString(content, "")
	return html.UnescapeString(content)
}
