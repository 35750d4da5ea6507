package extraction

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vijaykrishna2334/Portfoli-ai/internal/llm"
	"github.com/Vijaykrishna2334/Portfoli-ai/internal/types"
	"github.com/Vijaykrishna2334/Portfoli-ai/internal/validation"
)

// fakeClient returns canned responses and records the prompts it received.
type fakeClient struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeClient) GenerateContent(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return llm.CleanJSONBlock(f.response), nil
}

func (f *fakeClient) StartChat(string, llm.ModelTier) (llm.Chat, error) {
	return nil, errors.New("not supported")
}

func (f *fakeClient) Close() error { return nil }

const profileResponse = `{
	"name": "Alice Smith",
	"email": "alice@x.com",
	"summary": "Software engineer with a decade of distributed systems work.",
	"skills": ["Go", "Python", "SQL"],
	"experience": [
		{"title": "Software Engineer", "company": "Acme", "years": "2015 - 2025", "summary": "Built distributed systems."}
	]
}`

func TestExtractProfile_Success(t *testing.T) {
	client := &fakeClient{response: profileResponse}
	profile, err := New(client).ExtractProfile(t.Context(),
		"Name: Alice Smith, Email: alice@x.com, 10 years as Software Engineer at Acme (2015-2025): built distributed systems")

	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", profile.Name)
	assert.Equal(t, "alice@x.com", profile.Email)
	require.Len(t, profile.Experience, 1)
	assert.Equal(t, "Acme", profile.Experience[0].Company)
	assert.Contains(t, profile.Experience[0].Years, "2015")
	assert.Contains(t, profile.Experience[0].Years, "2025")
}

func TestExtractProfile_PromptEmbedsSchemaAndSource(t *testing.T) {
	client := &fakeClient{response: profileResponse}
	_, err := New(client).ExtractProfile(t.Context(), "resume body text")
	require.NoError(t, err)

	require.Len(t, client.prompts, 1)
	prompt := client.prompts[0]
	assert.Contains(t, prompt, "The user's full name.")
	assert.Contains(t, prompt, "resume body text")
	assert.Contains(t, prompt, "ONLY a valid JSON object")
}

func TestExtractProfile_EmptyInput(t *testing.T) {
	client := &fakeClient{response: profileResponse}
	profile, err := New(client).ExtractProfile(t.Context(), "   \n ")

	assert.Nil(t, profile)
	var apiErr *APICallError
	require.ErrorAs(t, err, &apiErr)
	assert.Empty(t, client.prompts, "no call may be issued for empty input")
}

func TestExtractProfile_CallFailureSurfaced(t *testing.T) {
	client := &fakeClient{err: errors.New("deadline exceeded")}
	profile, err := New(client).ExtractProfile(t.Context(), "resume text")

	assert.Nil(t, profile)
	var apiErr *APICallError
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, err.Error(), "deadline exceeded")

	// Single-shot contract: exactly one attempt, no retries.
	assert.Len(t, client.prompts, 1)
}

func TestExtractProfile_NonConformantPayloadRejected(t *testing.T) {
	client := &fakeClient{response: `{"name": "Alice Smith"}`}
	profile, err := New(client).ExtractProfile(t.Context(), "resume text")

	assert.Nil(t, profile)
	var ve *validation.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestExtractProfile_MarkdownWrappedResponse(t *testing.T) {
	client := &fakeClient{response: "```json\n" + profileResponse + "\n```"}
	profile, err := New(client).ExtractProfile(t.Context(), "resume text")

	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", profile.Name)
}

func TestGenerateReport_Success(t *testing.T) {
	client := &fakeClient{response: `{
		"match_score": 72,
		"keyword_gaps": ["Kubernetes", "Terraform", "CI/CD"],
		"suggestions": ["Quantify impact", "Mention cloud experience", "Lead with scale"]
	}`}

	profile := &types.ResumeProfile{Name: "Alice Smith", Email: "alice@x.com"}
	report, err := New(client).GenerateReport(t.Context(), profile, "Senior Platform Engineer at Example Corp")

	require.NoError(t, err)
	assert.Equal(t, 72, report.MatchScore)
	assert.Len(t, report.KeywordGaps, 3)
	assert.Len(t, report.Suggestions, 3)

	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "Alice Smith")
	assert.Contains(t, client.prompts[0], "Senior Platform Engineer")
}

func TestGenerateReport_OutOfRangeScoreRejected(t *testing.T) {
	for _, score := range []int{-1, 101} {
		t.Run(fmt.Sprintf("score %d", score), func(t *testing.T) {
			client := &fakeClient{response: fmt.Sprintf(`{
				"match_score": %d,
				"keyword_gaps": ["Kubernetes"],
				"suggestions": ["Add metrics"]
			}`, score)}

			report, err := New(client).GenerateReport(t.Context(), &types.ResumeProfile{Name: "Alice"}, "job")
			assert.Nil(t, report)

			var ve *validation.ValidationError
			require.ErrorAs(t, err, &ve)
		})
	}
}

func TestGenerateReport_EmptyJobDescription(t *testing.T) {
	client := &fakeClient{response: "{}"}
	report, err := New(client).GenerateReport(t.Context(), &types.ResumeProfile{Name: "Alice"}, "")

	assert.Nil(t, report)
	assert.Error(t, err)
	assert.Empty(t, client.prompts)
}
