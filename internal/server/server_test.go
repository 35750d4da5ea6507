package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vijaykrishna2334/Portfoli-ai/internal/alerts"
	"github.com/Vijaykrishna2334/Portfoli-ai/internal/db"
	"github.com/Vijaykrishna2334/Portfoli-ai/internal/llm"
	"github.com/Vijaykrishna2334/Portfoli-ai/internal/types"
)

const profileResponse = `{
	"name": "Alice Smith",
	"email": "alice@x.com",
	"summary": "Software engineer with a decade of distributed systems work.",
	"skills": ["Go", "Python", "SQL"],
	"experience": [
		{"title": "Software Engineer", "company": "Acme", "years": "2015 - 2025", "summary": "Built distributed systems."}
	]
}`

const reportResponse = `{
	"match_score": 82,
	"keyword_gaps": ["kubernetes", "grpc", "terraform"],
	"suggestions": ["Lead with Go services work.", "Quantify throughput gains.", "Mention on-call experience."]
}`

// fakeChat replays scripted interviewer turns.
type fakeChat struct {
	replies []string
}

func (f *fakeChat) Send(context.Context, string) (string, error) {
	reply := f.replies[0]
	if len(f.replies) > 1 {
		f.replies = f.replies[1:]
	}
	return reply, nil
}

// fakeClient pops scripted JSON responses and returns fixed text content.
type fakeClient struct {
	jsonResponses []string
	jsonErr       error
	content       string
	contentErr    error
	chat          *fakeChat
}

func (f *fakeClient) GenerateContent(context.Context, string, llm.ModelTier) (string, error) {
	return f.content, f.contentErr
}

func (f *fakeClient) GenerateJSON(context.Context, string, llm.ModelTier) (string, error) {
	if f.jsonErr != nil {
		return "", f.jsonErr
	}
	resp := f.jsonResponses[0]
	if len(f.jsonResponses) > 1 {
		f.jsonResponses = f.jsonResponses[1:]
	}
	return resp, nil
}

func (f *fakeClient) StartChat(string, llm.ModelTier) (llm.Chat, error) {
	if f.chat == nil {
		return nil, errors.New("no chat scripted")
	}
	return f.chat, nil
}

func (f *fakeClient) Close() error { return nil }

// fakeStore records saves and always reports success.
type fakeStore struct {
	db.Disabled
	savedProfiles int
	savedAlerts   []string
}

func (f *fakeStore) SaveProfile(context.Context, string, *types.ResumeProfile) bool {
	f.savedProfiles++
	return true
}

func (f *fakeStore) SaveAlertPreferences(_ context.Context, userID, _, _ string) bool {
	f.savedAlerts = append(f.savedAlerts, userID)
	return true
}

func newTestServer(t *testing.T, client llm.Client, store db.Store) *Server {
	t.Helper()
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	if store == nil {
		store = db.Disabled{}
	}
	return newServer(0, client, store, alerts.DisabledMailer{})
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// createProfile parses the canned Alice Smith resume and returns its id.
func createProfile(t *testing.T, srv *Server) string {
	t.Helper()
	rec := doJSON(t, srv, http.MethodPost, "/profiles", types.ParseProfileRequest{ResumeText: "Alice Smith's resume text"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeBody(t, rec)["id"].(string)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, &fakeClient{}, nil)
	rec := doJSON(t, srv, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeBody(t, rec)["status"])
}

func TestParseProfile_JSON(t *testing.T) {
	srv := newTestServer(t, &fakeClient{jsonResponses: []string{profileResponse}}, nil)
	rec := doJSON(t, srv, http.MethodPost, "/profiles", types.ParseProfileRequest{ResumeText: "resume text"})

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	assert.NotEmpty(t, body["id"])
	assert.Equal(t, false, body["persisted"], "no database configured")
	profile := body["profile"].(map[string]any)
	assert.Equal(t, "Alice Smith", profile["name"])
}

func TestParseProfile_MultipartUpload(t *testing.T) {
	srv := newTestServer(t, &fakeClient{jsonResponses: []string{profileResponse}}, nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("resume", "resume.txt")
	require.NoError(t, err)
	_, err = fw.Write([]byte("Alice Smith\nSoftware Engineer at Acme"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/profiles", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestParseProfile_BadRequests(t *testing.T) {
	srv := newTestServer(t, &fakeClient{jsonResponses: []string{profileResponse}}, nil)

	rec := doJSON(t, srv, http.MethodPost, "/profiles", types.ParseProfileRequest{ResumeText: ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/profiles", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	raw := httptest.NewRecorder()
	srv.Handler().ServeHTTP(raw, req)
	assert.Equal(t, http.StatusBadRequest, raw.Code)
}

func TestParseProfile_NonConformantModelOutput(t *testing.T) {
	// Missing required fields in the extracted record.
	srv := newTestServer(t, &fakeClient{jsonResponses: []string{`{"name": "Alice Smith"}`}}, nil)
	rec := doJSON(t, srv, http.MethodPost, "/profiles", types.ParseProfileRequest{ResumeText: "resume text"})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestParseProfile_ProviderFailure(t *testing.T) {
	srv := newTestServer(t, &fakeClient{jsonErr: errors.New("quota exceeded")}, nil)
	rec := doJSON(t, srv, http.MethodPost, "/profiles", types.ParseProfileRequest{ResumeText: "resume text"})

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestParseProfile_PersistsWhenStoreConfigured(t *testing.T) {
	store := &fakeStore{}
	srv := newTestServer(t, &fakeClient{jsonResponses: []string{profileResponse}}, store)
	rec := doJSON(t, srv, http.MethodPost, "/profiles", types.ParseProfileRequest{ResumeText: "resume text"})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, true, decodeBody(t, rec)["persisted"])
	assert.Equal(t, 1, store.savedProfiles)
}

func TestGetProfile(t *testing.T) {
	srv := newTestServer(t, &fakeClient{jsonResponses: []string{profileResponse}}, nil)
	id := createProfile(t, srv)

	rec := doJSON(t, srv, http.MethodGet, "/profiles/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	profile := decodeBody(t, rec)["profile"].(map[string]any)
	assert.Equal(t, "alice@x.com", profile["email"])

	rec = doJSON(t, srv, http.MethodGet, "/profiles/unknown-id", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExport(t *testing.T) {
	srv := newTestServer(t, &fakeClient{jsonResponses: []string{profileResponse}}, nil)
	id := createProfile(t, srv)

	rec := doJSON(t, srv, http.MethodGet, "/profiles/"+id+"/export/txt", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "ATS_Resume.txt")
	assert.Contains(t, rec.Body.String(), "Alice Smith")

	rec = doJSON(t, srv, http.MethodGet, "/profiles/"+id+"/export/pdf", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))

	rec = doJSON(t, srv, http.MethodGet, "/profiles/"+id+"/export/odt", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCoverLetter(t *testing.T) {
	client := &fakeClient{jsonResponses: []string{profileResponse}, content: "Dear Hiring Manager, ..."}
	srv := newTestServer(t, client, nil)
	id := createProfile(t, srv)

	rec := doJSON(t, srv, http.MethodPost, "/profiles/"+id+"/cover-letter", types.CoverLetterRequest{
		JobDescription: "Senior Go Engineer",
		Tone:           types.ToneFriendly,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	assert.Equal(t, "Dear Hiring Manager, ...", body["cover_letter"])
	assert.Equal(t, "friendly", body["tone"])
}

func TestCoverLetter_InvalidTone(t *testing.T) {
	srv := newTestServer(t, &fakeClient{jsonResponses: []string{profileResponse}}, nil)
	id := createProfile(t, srv)

	rec := doJSON(t, srv, http.MethodPost, "/profiles/"+id+"/cover-letter", types.CoverLetterRequest{
		JobDescription: "Senior Go Engineer",
		Tone:           "sarcastic",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReport(t *testing.T) {
	client := &fakeClient{jsonResponses: []string{profileResponse, reportResponse}}
	srv := newTestServer(t, client, nil)
	id := createProfile(t, srv)

	rec := doJSON(t, srv, http.MethodPost, "/profiles/"+id+"/report", types.ReportRequest{
		JobDescription: "Senior Go Engineer building pipelines",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	assert.Equal(t, float64(82), body["match_score"])
	assert.Len(t, body["suggestions"], 3)
}

func TestReport_OutOfRangeScoreRejected(t *testing.T) {
	badReport := strings.Replace(reportResponse, "82", "101", 1)
	client := &fakeClient{jsonResponses: []string{profileResponse, badReport}}
	srv := newTestServer(t, client, nil)
	id := createProfile(t, srv)

	rec := doJSON(t, srv, http.MethodPost, "/profiles/"+id+"/report", types.ReportRequest{
		JobDescription: "Senior Go Engineer",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestInterviewLifecycle(t *testing.T) {
	client := &fakeClient{
		jsonResponses: []string{profileResponse},
		chat:          &fakeChat{replies: []string{"Welcome! Question one?", "Good. Question two?"}},
		content:       "Overall impression: strong.",
	}
	srv := newTestServer(t, client, nil)
	id := createProfile(t, srv)

	rec := doJSON(t, srv, http.MethodPost, "/profiles/"+id+"/interviews", types.StartInterviewRequest{
		Role:         "Backend Engineer",
		QuestionType: types.QuestionsTechnical,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	interviewID := body["id"].(string)
	assert.Equal(t, "in_progress", body["status"])
	assert.Contains(t, body["message"], "Question one")

	rec = doJSON(t, srv, http.MethodPost, "/interviews/"+interviewID+"/messages", types.InterviewMessageRequest{
		Message: "I would use worker pools.",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["message"], "Question two")

	rec = doJSON(t, srv, http.MethodPost, "/interviews/"+interviewID+"/finish", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Equal(t, "finished", body["status"])
	assert.Contains(t, body["report"], "Overall impression")

	// A finished interview refuses further messages.
	rec = doJSON(t, srv, http.MethodPost, "/interviews/"+interviewID+"/messages", types.InterviewMessageRequest{
		Message: "one more",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInterview_UnknownSession(t *testing.T) {
	srv := newTestServer(t, &fakeClient{}, nil)
	rec := doJSON(t, srv, http.MethodPost, "/interviews/unknown/messages", types.InterviewMessageRequest{Message: "hi"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAlertPreferences(t *testing.T) {
	store := &fakeStore{}
	srv := newTestServer(t, &fakeClient{jsonResponses: []string{profileResponse}}, store)
	id := createProfile(t, srv)

	rec := doJSON(t, srv, http.MethodPost, "/profiles/"+id+"/alerts", types.AlertPreferencesRequest{
		Keywords:  "golang, backend",
		Frequency: types.FrequencyWeekly,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, true, decodeBody(t, rec)["persisted"])
	// Without an explicit user id the profile email identifies the subscriber.
	require.Len(t, store.savedAlerts, 1)
	assert.Equal(t, "alice@x.com", store.savedAlerts[0])
}

func TestAlertPreferences_DegradesWithoutStore(t *testing.T) {
	srv := newTestServer(t, &fakeClient{jsonResponses: []string{profileResponse}}, nil)
	id := createProfile(t, srv)

	rec := doJSON(t, srv, http.MethodPost, "/profiles/"+id+"/alerts", types.AlertPreferencesRequest{
		Keywords:  "golang",
		Frequency: types.FrequencyDaily,
	})
	require.Equal(t, http.StatusOK, rec.Code, "flow continues without persistence")
	assert.Equal(t, false, decodeBody(t, rec)["persisted"])
}

func TestAlertPreferences_InvalidFrequency(t *testing.T) {
	srv := newTestServer(t, &fakeClient{jsonResponses: []string{profileResponse}}, nil)
	id := createProfile(t, srv)

	rec := doJSON(t, srv, http.MethodPost, "/profiles/"+id+"/alerts", types.AlertPreferencesRequest{
		Keywords:  "golang",
		Frequency: "hourly",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
