package alerts

import (
	"context"
	"html/template"
	"log"
	"strings"

	"github.com/resend/resend-go/v2"

	"github.com/Vijaykrishna2334/Portfoli-ai/internal/types"
)

// Mailer is the notification collaborator. Send reports whether the message
// was delivered; false never aborts the calling flow.
type Mailer interface {
	Send(ctx context.Context, to, subject, html string) bool
}

// ResendMailer delivers digests through the Resend API.
type ResendMailer struct {
	client *resend.Client
	from   string
}

// NewResendMailer creates a mailer for the given API key and sender address.
func NewResendMailer(apiKey, from string) *ResendMailer {
	return &ResendMailer{client: resend.NewClient(apiKey), from: from}
}

func (m *ResendMailer) Send(ctx context.Context, to, subject, html string) bool {
	_, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	})
	if err != nil {
		log.Printf("alerts: failed to send email to %s: %v", to, err)
		return false
	}
	return true
}

// DisabledMailer is used when no email provider is configured. Every send
// reports false.
type DisabledMailer struct{}

func (DisabledMailer) Send(context.Context, string, string, string) bool { return false }

var digestTemplate = template.Must(template.New("digest").Parse(`<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2 style="color: #007bff;">Your Top Job Matches</h2>
  <p>Based on your interests ({{.Keywords}}), here are your best openings:</p>
  {{range .Jobs}}
  <div style="border: 1px solid #ddd; border-radius: 6px; padding: 12px; margin-bottom: 12px;">
    <h3 style="margin: 0 0 4px;">{{.Title}} &mdash; {{.Company}}</h3>
    <p style="margin: 0 0 4px;"><strong>Match score:</strong> {{.MatchScore}}/100</p>
    {{if .FitReason}}<p style="margin: 0 0 8px;">{{.FitReason}}</p>{{end}}
    <a href="{{.SourceURL}}">View posting</a>
  </div>
  {{end}}
  <p style="color: #888; font-size: 12px;">You are receiving this digest because of your PortfolioAI alert preferences.</p>
</body>
</html>`))

// FormatJobsEmail renders the HTML digest body for a set of scored jobs.
func FormatJobsEmail(keywords string, jobs []types.ScoredJob) (string, error) {
	var sb strings.Builder
	err := digestTemplate.Execute(&sb, struct {
		Keywords string
		Jobs     []types.ScoredJob
	}{Keywords: keywords, Jobs: jobs})
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}
