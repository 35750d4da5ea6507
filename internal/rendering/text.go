package rendering

import (
	"fmt"
	"strings"

	"github.com/Vijaykrishna2334/Portfoli-ai/internal/types"
)

// RenderText produces the plain-text ATS profile.
func RenderText(profile *types.ResumeProfile) []byte {
	var sb strings.Builder

	sb.WriteString("--- ATS-READY TEXT PROFILE ---\n\n")
	fmt.Fprintf(&sb, "Name: %s\n", profile.Name)
	fmt.Fprintf(&sb, "Email: %s\n", profile.Email)
	fmt.Fprintf(&sb, "Summary:\n%s\n\n", strings.TrimSpace(profile.Summary))
	fmt.Fprintf(&sb, "Skills: %s\n\n", strings.Join(profile.Skills, ", "))

	sb.WriteString("Experience:\n")
	for _, exp := range profile.Experience {
		fmt.Fprintf(&sb, "- %s at %s (%s)\n", exp.Title, exp.Company, exp.Years)
		for _, line := range summaryLines(exp.Summary) {
			fmt.Fprintf(&sb, "  * %s\n", line)
		}
	}

	return []byte(sb.String())
}
