package api

import "time"

type JobExternalStatus string

const (
	JobStatusError JobExternalStatus = "Error"
)

type JobResponse struct {
	Id        string            `json:"id" example:"job_cz109"`
	Result    Result            `json:"result"`
	Error     *JobOutgoingError `json:"error,omitempty"`
	StartTime time.Time         `json:"start_time"`
	EndTime   time.Time         `json:"end_time,omitempty"`
}

type JobOutgoingError struct {
	Code    int    `json:"code" example:"400"`
	Message string `json:"message" example:"Job not found"`
	Retry   bool   `json:"can_retry" example:"false"`
}

type NoteResult struct {
	NoteId string `json:"note_id" example:"0b7c5a1e-4f1e-4c1d-9a52-2f0c3b3c9d11"`
	Title  string `json:"title" example:"Lecture 3"`
	PdfURL string `json:"pdf_url,omitempty"`
}

type DeckResult struct {
	DeckId    string `json:"deck_id"`
	NoteId    string `json:"note_id"`
	CardCount int    `json:"card_count" example:"20"`
}

type Result struct {
	Status string      `json:"status"`
	Step   string      `json:"step,omitempty"`
	Note   *NoteResult `json:"note,omitempty"`
	Deck   *DeckResult `json:"deck,omitempty"`
}

type InitJobResponse struct {
	Id        string `json:"id"`
	StatusURL string `json:"status_url"`
}

type NoteResponse struct {
	Id           string    `json:"id"`
	ClassId      string    `json:"class_id"`
	SessionId    string    `json:"session_id"`
	SessionTitle string    `json:"session_title"`
	Type         string    `json:"type" example:"slides"`
	Title        string    `json:"title"`
	Content      string    `json:"content" example:"### Document\n- Cells divide by mitosis."`
	CreatedBy    string    `json:"created_by"`
	Public       bool      `json:"public"`
	PdfURL       string    `json:"pdf_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type FlashcardResponse struct {
	Id       string `json:"id"`
	Question string `json:"question" example:"Define: Osmosis"`
	Answer   string `json:"answer" example:"movement of water"`
}

type DeckResponse struct {
	Id        string              `json:"id"`
	ClassId   string              `json:"class_id,omitempty"`
	SessionId string              `json:"session_id,omitempty"`
	Title     string              `json:"title"`
	CreatedBy string              `json:"created_by"`
	Public    bool                `json:"public"`
	CreatedAt time.Time           `json:"created_at"`
	Cards     []FlashcardResponse `json:"cards"`
}

type JoinClassResponse struct {
	ClassId string `json:"class_id"`
	Joined  bool   `json:"joined"`
}

// requests---------------------

// CreateDeckRequest: Public defaults to true when omitted.
type CreateDeckRequest struct {
	Title     string `json:"title" validate:"required"`
	ClassId   string `json:"class_id,omitempty"`
	SessionId string `json:"session_id,omitempty"`
	Public    *bool  `json:"public,omitempty"`
}

type GenerateDeckRequest struct {
	NoteId string `json:"note_id" validate:"required"`
	Count  int    `json:"count,omitempty" example:"20"`
}
