// Package extraction implements the structured extraction contract: it turns
// free text plus a record schema into a validated, typed record by issuing a
// single request to the generative model and validating the response.
package extraction

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/Vijaykrishna2334/Portfoli-ai/internal/llm"
	"github.com/Vijaykrishna2334/Portfoli-ai/internal/prompts"
	"github.com/Vijaykrishna2334/Portfoli-ai/internal/schema"
	"github.com/Vijaykrishna2334/Portfoli-ai/internal/types"
	"github.com/Vijaykrishna2334/Portfoli-ai/internal/validation"
)

// Extractor issues schema-constrained extraction calls. It performs exactly
// one outbound call per operation and does not retry; a failed call surfaces
// as an APICallError and no partial record is ever returned.
type Extractor struct {
	client llm.Client
}

// New creates an Extractor backed by the given client.
func New(client llm.Client) *Extractor {
	return &Extractor{client: client}
}

// ExtractProfile converts raw resume text into a validated ResumeProfile.
func (e *Extractor) ExtractProfile(ctx context.Context, resumeText string) (*types.ResumeProfile, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, &APICallError{Message: "resume text is empty"}
	}

	raw, err := e.extract(ctx, schema.ResumeProfileSchema(), resumeText)
	if err != nil {
		return nil, err
	}
	return validation.DecodeProfile(raw)
}

// GenerateReport compares a validated profile against a job description and
// returns a validated OptimizationReport.
func (e *Extractor) GenerateReport(ctx context.Context, profile *types.ResumeProfile, jobDescription string) (*types.OptimizationReport, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return nil, &APICallError{Message: "job description is empty"}
	}

	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return nil, &APICallError{Message: "failed to encode profile", Cause: err}
	}

	source := prompts.Format(prompts.MustGet("extraction.json", "report-source"), map[string]string{
		"ProfileJSON":    string(profileJSON),
		"JobDescription": jobDescription,
	})

	raw, err := e.extract(ctx, schema.OptimizationReportSchema(), source)
	if err != nil {
		return nil, err
	}
	return validation.DecodeReport(raw)
}

// extract performs the single model call for one schema and source text.
func (e *Extractor) extract(ctx context.Context, s schema.RecordSchema, sourceText string) (string, error) {
	prompt := prompts.Format(prompts.MustGet("extraction.json", "extract-record"), map[string]string{
		"Instruction": s.Instruction(),
		"SourceText":  sourceText,
	})

	raw, err := e.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return "", &APICallError{Message: "extraction call failed", Cause: err}
	}
	return raw, nil
}
