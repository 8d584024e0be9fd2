// Package api is the HTTP client for the SmartHire backend. The backend's
// request and response shapes are consumed as a fixed contract; nothing here
// retries automatically. Failed calls surface to the user, who repeats the
// action.
package api

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/hirelab/smarthire/internal"
)

// Client talks to the SmartHire backend.
type Client struct {
	http *resty.Client
}

// NewClient creates a client for the backend at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("User-Agent", "smarthire-cli")

	// Stamp every outgoing call with a request id for log correlation.
	httpClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.SetHeader("X-Request-ID", uuid.NewString())
		return nil
	})

	return &Client{http: httpClient}
}

type sessionsResponse struct {
	Sessions []internal.Session `json:"sessions"`
}

// ListSessions fetches the set of saved sessions.
func (c *Client) ListSessions(ctx context.Context) ([]internal.Session, error) {
	var out sessionsResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/sessions")
	if err := c.check("list sessions", resp, err); err != nil {
		return nil, err
	}
	return out.Sessions, nil
}

type historyResponse struct {
	History []internal.HistoryEvent `json:"history"`
}

// History fetches the full event history for a session, in server order.
func (c *Client) History(ctx context.Context, sessionID string) ([]internal.HistoryEvent, error) {
	var out historyResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		SetPathParam("id", sessionID).
		Get("/history/{id}")
	if err := c.check("history", resp, err); err != nil {
		return nil, err
	}
	return out.History, nil
}

// RenameSession updates a session's title.
func (c *Client) RenameSession(ctx context.Context, sessionID, newTitle string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"new_title": newTitle}).
		SetPathParam("id", sessionID).
		Put("/sessions/{id}")
	return c.check("rename", resp, err)
}

// DeleteSession deletes a session.
func (c *Client) DeleteSession(ctx context.Context, sessionID string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", sessionID).
		Delete("/sessions/{id}")
	return c.check("delete", resp, err)
}

// AnalyzeRequest carries one analyze call: the job description, the session
// to continue (empty for a fresh one), and resume files to upload.
type AnalyzeRequest struct {
	JobDescription string
	SessionID      string
	ResumePaths    []string
}

// AnalyzeResponse is the backend's reply to an analyze call. Exactly one of
// Results or Message is normally set; SessionID is present when the backend
// created or reused a session.
type AnalyzeResponse struct {
	SessionID string               `json:"session_id,omitempty"`
	Results   []internal.Candidate `json:"results,omitempty"`
	Message   string               `json:"message,omitempty"`
}

// Analyze uploads resumes with a job description as a multipart form.
func (c *Client) Analyze(ctx context.Context, req AnalyzeRequest) (*AnalyzeResponse, error) {
	r := c.http.R().
		SetContext(ctx).
		SetMultipartFormData(map[string]string{"job_description": req.JobDescription})

	if req.SessionID != "" {
		r.SetMultipartFormData(map[string]string{"session_id": req.SessionID})
	}

	for _, path := range req.ResumePaths {
		if _, err := os.Stat(path); err != nil {
			return nil, &internal.APIError{Op: "analyze", Err: fmt.Errorf("resume not found: %w", err)}
		}
		r.SetFile("resumes", path)
	}

	var out AnalyzeResponse
	resp, err := r.SetResult(&out).Post("/analyze")
	if err := c.check("analyze", resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

type scheduleRequest struct {
	Candidates []internal.Candidate `json:"candidates"`
	StartTime  string               `json:"start_time"`
}

type scheduleResponse struct {
	Logs []string `json:"logs"`
}

// Schedule sends interview invitations to the selected candidates and
// returns the backend's per-candidate delivery log.
func (c *Client) Schedule(ctx context.Context, candidates []internal.Candidate, startTime string) ([]string, error) {
	var out scheduleResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(scheduleRequest{Candidates: candidates, StartTime: startTime}).
		SetResult(&out).
		Post("/schedule")
	if err := c.check("schedule", resp, err); err != nil {
		return nil, err
	}
	return out.Logs, nil
}

type transcribeResponse struct {
	Text string `json:"text"`
}

// Transcribe uploads a recorded audio file and returns its transcription.
func (c *Client) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if _, err := os.Stat(audioPath); err != nil {
		return "", &internal.APIError{Op: "transcribe", Err: fmt.Errorf("audio file not found: %w", err)}
	}

	var out transcribeResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetFile("audio", audioPath).
		SetResult(&out).
		Post("/interview/transcribe")
	if err := c.check("transcribe", resp, err); err != nil {
		return "", err
	}
	return out.Text, nil
}

// InterviewRequest carries one mock-interview turn.
type InterviewRequest struct {
	UserText   string `json:"user_text"`
	SessionID  string `json:"session_id,omitempty"`
	JobDesc    string `json:"job_desc"`
	ResumeText string `json:"resume_text"`
}

// InterviewReply is the backend's spoken answer: text plus base64 MP3 audio.
type InterviewReply struct {
	SessionID   string `json:"session_id,omitempty"`
	AIText      string `json:"ai_text"`
	AudioBase64 string `json:"audio_base64"`
}

// InterviewTurn sends one interview answer and returns the AI's next turn.
func (c *Client) InterviewTurn(ctx context.Context, req InterviewRequest) (*InterviewReply, error) {
	var out InterviewReply
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/interview/chat")
	if err := c.check("interview", resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// Reset deletes all sessions server-side. Irreversible; never retried
// automatically.
func (c *Client) Reset(ctx context.Context) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Post("/reset")
	return c.check("reset", resp, err)
}

// check folds the transport error and the HTTP status into the client's
// error taxonomy.
func (c *Client) check(op string, resp *resty.Response, err error) error {
	if err != nil {
		return &internal.APIError{Op: op, Err: err}
	}
	if resp.IsError() {
		return &internal.APIError{
			Op:     op,
			Status: resp.StatusCode(),
			Err:    fmt.Errorf("server error: %s", resp.Status()),
		}
	}
	return nil
}
