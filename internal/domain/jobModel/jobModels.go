package jobModel

import (
	"context"
	"time"
)

type JobStatus string
type InternalStatus string

type JobType string

const (
	JobStatusQueued   JobStatus = "QUEUED"
	JobStatusRunning  JobStatus = "RUNNING"
	JobStatusComplete JobStatus = "COMPLETE"
	JobStatusError    JobStatus = "Error"

	NoteInit       InternalStatus = "NoteInit"
	ObjectFetch    InternalStatus = "ObjectFetch"
	TextExtraction InternalStatus = "TextExtraction"
	Summarizing    InternalStatus = "Summarizing"
	NoteSave       InternalStatus = "NoteSave"

	DeckInit       InternalStatus = "DeckInit"
	CardGeneration InternalStatus = "CardGeneration"
	CardSave       InternalStatus = "CardSave"

	Error    InternalStatus = "Error"
	Complete InternalStatus = "Complete"

	JobTypeNote JobType = "Note"
	JobTypeDeck JobType = "Deck"
)

type Job struct {
	Id          string         `json:"id"`
	TraceId     string         `json:"trace_id"`
	JobType     JobType        `json:"job_type"`
	JobPayload  JobPayload     `json:"job_payload"`
	Error       JobError       `json:"error,omitempty"`
	CreatedTime time.Time      `json:"created_time"`
	EndTime     time.Time      `json:"end_time,omitempty"`
	Status      JobStatus      `json:"status"`
	CurrentStep InternalStatus `json:"current_step"`
}

type JobError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Retry   bool   `json:"retry"`
}

type JobPayload struct {
	UserId  string `json:"user_id"`
	ClassId string `json:"class_id,omitempty"`
	Title   string `json:"title,omitempty"`
	Public  bool   `json:"public,omitempty"`

	//note creation
	FileName  string `json:"file_name,omitempty"`
	ObjectKey string `json:"object_key,omitempty"`
	PdfURL    string `json:"pdf_url,omitempty"`
	NoteId    string `json:"note_id,omitempty"`

	//deck generation
	DeckId    string `json:"deck_id,omitempty"`
	CardCount int    `json:"card_count,omitempty"`
}

type JobStore interface {
	GetJob(ctx context.Context, jobId string) (Job, bool)
	SaveJob(ctx context.Context, job Job) error
	DeleteJob(ctx context.Context, jobID string)
}
