package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Vijaykrishna2334/Portfoli-ai/internal/ingestion"
	"github.com/Vijaykrishna2334/Portfoli-ai/internal/interview"
	"github.com/Vijaykrishna2334/Portfoli-ai/internal/rendering"
	"github.com/Vijaykrishna2334/Portfoli-ai/internal/types"
)

// maxUploadBytes caps resume uploads.
const maxUploadBytes = 10 << 20

// handleParseProfile converts a resume into a validated profile. The resume
// arrives either as a multipart upload under the "resume" field or as a JSON
// body with pasted text.
func (s *Server) handleParseProfile(w http.ResponseWriter, r *http.Request) {
	resumeText, userID, err := s.readResume(r)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	profile, err := s.extractor.ExtractProfile(r.Context(), resumeText)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	id := s.sessions.PutProfile(profile)
	if userID == "" {
		userID = profile.Email
	}
	persisted := s.store.SaveProfile(r.Context(), userID, profile)

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"id":        id,
		"profile":   profile,
		"persisted": persisted,
	})
}

// readResume pulls the resume text and optional user id out of the request.
func (s *Server) readResume(r *http.Request) (string, string, error) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return "", "", &ErrBadRequest{Message: "invalid multipart form", Cause: err}
		}
		file, header, err := r.FormFile("resume")
		if err != nil {
			return "", "", &ErrBadRequest{Message: "missing resume file", Cause: err}
		}
		defer func() { _ = file.Close() }()

		data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
		if err != nil {
			return "", "", &ErrBadRequest{Message: "failed to read upload", Cause: err}
		}
		text, err := ingestion.DocumentText(header.Filename, data)
		if err != nil {
			return "", "", err
		}
		return text, r.FormValue("user_id"), nil
	}

	var req types.ParseProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return "", "", &ErrBadRequest{Message: "invalid JSON body", Cause: err}
	}
	if err := req.Validate(); err != nil {
		return "", "", &ErrBadRequest{Message: "invalid request", Cause: err}
	}
	return ingestion.CleanText(req.ResumeText), req.UserID, nil
}

// handleGetProfile returns a previously parsed profile.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	profile, ok := s.sessions.Profile(id)
	if !ok {
		s.errorResponse(w, &ErrNotFound{Kind: "profile", ID: id})
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"id": id, "profile": profile})
}

// handleExport streams the profile as a downloadable document.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	profile, ok := s.sessions.Profile(id)
	if !ok {
		s.errorResponse(w, &ErrNotFound{Kind: "profile", ID: id})
		return
	}

	format, err := rendering.ParseFormat(r.PathValue("format"))
	if err != nil {
		s.errorResponse(w, &ErrBadRequest{Message: err.Error()})
		return
	}

	data, err := rendering.Render(format, profile)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", format.Filename()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// handleCoverLetter writes a tailored cover letter for a parsed profile.
func (s *Server) handleCoverLetter(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	profile, ok := s.sessions.Profile(id)
	if !ok {
		s.errorResponse(w, &ErrNotFound{Kind: "profile", ID: id})
		return
	}

	var req types.CoverLetterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, &ErrBadRequest{Message: "invalid JSON body", Cause: err})
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, &ErrBadRequest{Message: "invalid request", Cause: err})
		return
	}

	jobDescription, err := ingestion.ResolveJobDescription(r.Context(), req.JobDescription, req.JobURL)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	letter, err := s.writer.Generate(r.Context(), profile, jobDescription, req.Tone)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{
		"cover_letter": letter,
		"tone":         req.Tone,
	})
}

// handleReport scores a parsed profile against a job description.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	profile, ok := s.sessions.Profile(id)
	if !ok {
		s.errorResponse(w, &ErrNotFound{Kind: "profile", ID: id})
		return
	}

	var req types.ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, &ErrBadRequest{Message: "invalid JSON body", Cause: err})
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, &ErrBadRequest{Message: "invalid request", Cause: err})
		return
	}

	jobDescription, err := ingestion.ResolveJobDescription(r.Context(), req.JobDescription, req.JobURL)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	report, err := s.extractor.GenerateReport(r.Context(), profile, jobDescription)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}

// handleStartInterview opens a mock interview for a parsed profile.
func (s *Server) handleStartInterview(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	profile, ok := s.sessions.Profile(id)
	if !ok {
		s.errorResponse(w, &ErrNotFound{Kind: "profile", ID: id})
		return
	}

	var req types.StartInterviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, &ErrBadRequest{Message: "invalid JSON body", Cause: err})
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, &ErrBadRequest{Message: "invalid request", Cause: err})
		return
	}

	session, err := interview.Start(r.Context(), s.client, profile, req.Role, req.QuestionType)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.sessions.PutInterview(id, session)

	s.jsonResponse(w, http.StatusCreated, map[string]string{
		"id":      session.ID,
		"status":  session.Status,
		"message": session.History[0].Text,
	})
}

// handleInterviewMessage sends one candidate answer in an open interview.
func (s *Server) handleInterviewMessage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	entry, ok := s.sessions.Interview(id)
	if !ok {
		s.errorResponse(w, &ErrNotFound{Kind: "interview", ID: id})
		return
	}

	var req types.InterviewMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, &ErrBadRequest{Message: "invalid JSON body", Cause: err})
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, &ErrBadRequest{Message: "invalid request", Cause: err})
		return
	}

	entry.mu.Lock()
	reply, err := entry.session.Reply(r.Context(), req.Message)
	status := entry.session.Status
	entry.mu.Unlock()
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{
		"message": reply,
		"status":  status,
	})
}

// handleFinishInterview closes an interview and returns the performance
// report.
func (s *Server) handleFinishInterview(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	entry, ok := s.sessions.Interview(id)
	if !ok {
		s.errorResponse(w, &ErrNotFound{Kind: "interview", ID: id})
		return
	}
	profile, ok := s.sessions.Profile(entry.profileID)
	if !ok {
		s.errorResponse(w, &ErrNotFound{Kind: "profile", ID: entry.profileID})
		return
	}

	entry.mu.Lock()
	report, err := entry.session.Finish(r.Context(), profile)
	status := entry.session.Status
	entry.mu.Unlock()
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{
		"report": report,
		"status": status,
	})
}

// handleAlertPreferences stores a user's job alert subscription. Persistence
// is best-effort: the response reports whether the preferences were stored.
func (s *Server) handleAlertPreferences(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	profile, ok := s.sessions.Profile(id)
	if !ok {
		s.errorResponse(w, &ErrNotFound{Kind: "profile", ID: id})
		return
	}

	var req types.AlertPreferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, &ErrBadRequest{Message: "invalid JSON body", Cause: err})
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, &ErrBadRequest{Message: "invalid request", Cause: err})
		return
	}

	userID := req.UserID
	if userID == "" {
		userID = profile.Email
	}
	persisted := s.store.SaveAlertPreferences(r.Context(), userID, req.Keywords, req.Frequency)

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"persisted": persisted,
		"keywords":  req.Keywords,
		"frequency": req.Frequency,
	})
}
