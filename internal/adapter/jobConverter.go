package adapter

import (
	"fmt"
	"time"

	"github.com/akolanti/StudyAPI/internal/api"
	"github.com/akolanti/StudyAPI/internal/domain/jobModel"
)

func ToInitJobResponse(id string) api.InitJobResponse {
	return api.InitJobResponse{
		Id:        id,
		StatusURL: fmt.Sprintf("status/%s", id), //pass "status/job.Id"
	}
}

func ToAPIResponse(job jobModel.Job) api.JobResponse {

	var errorPtr *api.JobOutgoingError
	if job.Error.Message != "" || job.Error.Code != 0 {
		errorPtr = &api.JobOutgoingError{
			Code:    job.Error.Code,
			Message: job.Error.Message,
			Retry:   job.Error.Retry,
		}
	}

	result := api.Result{
		Status: string(job.Status),
		Step:   string(job.CurrentStep),
	}
	if job.Status == jobModel.JobStatusComplete {
		switch job.JobType {
		case jobModel.JobTypeNote:
			result.Note = ToNoteResult(job.JobPayload)
		case jobModel.JobTypeDeck:
			result.Deck = ToDeckResult(job.JobPayload)
		}
	}

	return api.JobResponse{
		Id:        job.Id,
		StartTime: job.CreatedTime,
		EndTime:   job.EndTime,
		Error:     errorPtr,
		Result:    result,
	}
}

func ToNoteResult(payload jobModel.JobPayload) *api.NoteResult {
	if payload.NoteId == "" {
		return nil
	}
	return &api.NoteResult{
		NoteId: payload.NoteId,
		Title:  payload.Title,
		PdfURL: payload.PdfURL,
	}
}

func ToDeckResult(payload jobModel.JobPayload) *api.DeckResult {
	if payload.DeckId == "" {
		return nil
	}
	return &api.DeckResult{
		DeckId:    payload.DeckId,
		NoteId:    payload.NoteId,
		CardCount: payload.CardCount,
	}
}

func BadRequest(id string, error string, code int) api.JobResponse {
	return api.JobResponse{
		Id:        id,
		StartTime: time.Time{},
		EndTime:   time.Time{},
		Result: api.Result{
			Status: string(api.JobStatusError),
		},
		Error: &api.JobOutgoingError{
			Code:    code,
			Message: error,
			Retry:   false,
		},
	}
}
