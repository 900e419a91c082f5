package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/akolanti/StudyAPI/internal/adapter"
	"github.com/akolanti/StudyAPI/internal/config"
	"github.com/akolanti/StudyAPI/internal/domain/jobModel"
	"github.com/akolanti/StudyAPI/internal/domain/studyModel"
)

func writeJsonResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but can't send a clean status code now
		logRH.Error("Error encoding response", "error", err)
	}
}

func validateId(id string, traceId string) (result jobModel.Job, isFound bool) {
	if id == "" {
		logRH.Warn("Empty Job ID")
		return jobModel.Job{}, false
	}
	return GetJobStatus(id, traceId)
}

func validateContext(ctx context.Context) bool {
	if ctx.Err() != nil {
		logRH.WithTrace(ctx).Warn("context error", "error", ctx.Err())
		return false
	}
	if handlerInstance == nil {
		logRH.Error("job handler is not initialised")
		return false
	}
	return true
}

func WriteErrorResponse(w http.ResponseWriter, httpCode int, id string, error string) {
	writeJsonResponse(w, httpCode, adapter.BadRequest(id, error, httpCode))
}

func traceId(ctx context.Context) string {
	trace, _ := ctx.Value(config.TRACE_ID_KEY).(string)
	return trace
}

// userId is set by the auth middleware; an empty id never passes the ownership checks.
func userId(ctx context.Context) string {
	user, _ := ctx.Value(config.USER_ID_KEY).(string)
	return user
}

// canViewNote: owners always, others only for public notes of a class they joined.
func canViewNote(ctx context.Context, note studyModel.Note, user string) bool {
	if note.CreatedBy == user {
		return true
	}
	return note.Public && handlerInstance.service.ClassStore.IsMember(ctx, note.ClassId, user)
}

// canViewDeck: owners always, others for public decks, which may be limited to a class.
func canViewDeck(ctx context.Context, deck studyModel.Deck, user string) bool {
	if deck.CreatedBy == user {
		return true
	}
	if !deck.Public {
		return false
	}
	return deck.ClassId == "" || handlerInstance.service.ClassStore.IsMember(ctx, deck.ClassId, user)
}
