package rendering

import (
	"bytes"
	"strings"

	"github.com/gingfrederik/docx"

	"github.com/Vijaykrishna2334/Portfoli-ai/internal/types"
)

// RenderDOCX produces an ATS-friendly Word document from a profile.
func RenderDOCX(profile *types.ResumeProfile) ([]byte, error) {
	file := docx.NewFile()

	file.AddParagraph().AddText(strings.ToUpper(profile.Name)).Size(18)
	file.AddParagraph().AddText(profile.Email).Size(10)
	file.AddParagraph().AddText(strings.Repeat("—", 40)).Size(8)

	addHeading := func(title string) {
		file.AddParagraph().AddText(title).Size(13).Color("333333")
	}
	addBody := func(text string) {
		file.AddParagraph().AddText(text).Size(10)
	}

	addHeading("SUMMARY")
	addBody(strings.TrimSpace(profile.Summary))

	addHeading("KEY SKILLS")
	addBody(strings.Join(profile.Skills, ", "))

	addHeading("EXPERIENCE")
	for _, exp := range profile.Experience {
		addBody(exp.Title + " | " + exp.Company + " (" + exp.Years + ")")
		for _, line := range summaryLines(exp.Summary) {
			addBody("• " + line)
		}
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return nil, &RenderError{Format: "docx", Message: "failed to build document", Cause: err}
	}
	return buf.Bytes(), nil
}
