// Package interview runs mock interview sessions: a multi-turn chat with the
// model acting as interviewer, followed by a performance report over the
// transcript.
package interview

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Vijaykrishna2334/Portfoli-ai/internal/llm"
	"github.com/Vijaykrishna2334/Portfoli-ai/internal/prompts"
	"github.com/Vijaykrishna2334/Portfoli-ai/internal/types"
)

// Session status values.
const (
	StatusReady      = "ready"
	StatusInProgress = "in_progress"
	StatusFinished   = "finished"
)

// Turn is one message in the interview transcript.
type Turn struct {
	Role string `json:"role"` // "interviewer" or "candidate"
	Text string `json:"text"`
}

// Session is one mock interview. It is not safe for concurrent use; callers
// serialize access per session.
type Session struct {
	ID           string `json:"id"`
	Role         string `json:"role"`
	QuestionType string `json:"question_type"`
	Status       string `json:"status"`
	History      []Turn `json:"history"`

	client llm.Client
	chat   llm.Chat
}

// Start opens a mock interview for the given role and question type, seeded
// with the candidate's profile, and returns the session with the
// interviewer's opening question already in the transcript.
func Start(ctx context.Context, client llm.Client, profile *types.ResumeProfile, role, questionType string) (*Session, error) {
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to encode profile: %w", err)
	}

	instruction := prompts.Format(prompts.MustGet("interview.json", "system-instruction"), map[string]string{
		"Role":         role,
		"QuestionType": questionType,
		"ProfileJSON":  string(profileJSON),
	})

	chat, err := client.StartChat(instruction, llm.TierStandard)
	if err != nil {
		return nil, &CallError{Message: "failed to open session", Cause: err}
	}

	s := &Session{
		ID:           uuid.NewString(),
		Role:         role,
		QuestionType: questionType,
		Status:       StatusReady,
		client:       client,
		chat:         chat,
	}

	opening, err := chat.Send(ctx, prompts.MustGet("interview.json", "kickoff"))
	if err != nil {
		return nil, &CallError{Message: "failed to start interview", Cause: err}
	}
	s.History = append(s.History, Turn{Role: "interviewer", Text: opening})
	s.Status = StatusInProgress

	return s, nil
}

// Reply sends one candidate answer and returns the interviewer's next turn.
func (s *Session) Reply(ctx context.Context, message string) (string, error) {
	if s.Status != StatusInProgress {
		return "", &StateError{Status: s.Status, Op: "reply"}
	}

	reply, err := s.chat.Send(ctx, message)
	if err != nil {
		return "", &CallError{Message: "turn failed", Cause: err}
	}

	s.History = append(s.History, Turn{Role: "candidate", Text: message})
	s.History = append(s.History, Turn{Role: "interviewer", Text: reply})
	return reply, nil
}

// Finish closes the session and produces a performance report from the full
// transcript. After Finish, Reply returns an error.
func (s *Session) Finish(ctx context.Context, profile *types.ResumeProfile) (string, error) {
	if s.Status == StatusFinished {
		return "", &StateError{Status: s.Status, Op: "finish"}
	}

	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return "", fmt.Errorf("failed to encode profile: %w", err)
	}

	prompt := prompts.Format(prompts.MustGet("interview.json", "final-feedback"), map[string]string{
		"Role":         s.Role,
		"QuestionType": s.QuestionType,
		"ProfileJSON":  string(profileJSON),
		"Transcript":   s.Transcript(),
	})

	report, err := s.client.GenerateContent(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return "", &CallError{Message: "failed to generate report", Cause: err}
	}

	s.Status = StatusFinished
	return strings.TrimSpace(report), nil
}

// Transcript renders the history as labeled plain text.
func (s *Session) Transcript() string {
	var sb strings.Builder
	for _, turn := range s.History {
		label := "Interviewer"
		if turn.Role == "candidate" {
			label = "Candidate"
		}
		fmt.Fprintf(&sb, "%s: %s\n", label, turn.Text)
	}
	return sb.String()
}
