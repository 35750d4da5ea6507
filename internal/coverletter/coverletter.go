// Package coverletter generates tailored cover letters from a validated
// profile and a target job description.
package coverletter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Vijaykrishna2334/Portfoli-ai/internal/llm"
	"github.com/Vijaykrishna2334/Portfoli-ai/internal/prompts"
	"github.com/Vijaykrishna2334/Portfoli-ai/internal/types"
)

// toneDirectives maps each supported tone to the phrasing the prompt uses.
var toneDirectives = map[string]string{
	types.ToneProfessional: "formal, confident and professional",
	types.ToneFriendly:     "warm, personable and approachable",
	types.ToneTechnical:    "precise, technically detailed and direct",
}

// Writer produces cover letters through the generative model.
type Writer struct {
	client llm.Client
}

// New creates a Writer backed by the given client.
func New(client llm.Client) *Writer {
	return &Writer{client: client}
}

// Generate writes a cover letter for the profile against the job description.
// An unrecognized tone falls back to professional.
func (w *Writer) Generate(ctx context.Context, profile *types.ResumeProfile, jobDescription, tone string) (string, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return "", fmt.Errorf("job description is empty")
	}

	directive, ok := toneDirectives[tone]
	if !ok {
		directive = toneDirectives[types.ToneProfessional]
	}

	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return "", fmt.Errorf("failed to encode profile: %w", err)
	}

	prompt := prompts.Format(prompts.MustGet("coverletter.json", "write-cover-letter"), map[string]string{
		"Tone":           directive,
		"ProfileJSON":    string(profileJSON),
		"JobDescription": jobDescription,
	})

	letter, err := w.client.GenerateContent(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return "", fmt.Errorf("cover letter generation failed: %w", err)
	}
	return strings.TrimSpace(letter), nil
}
