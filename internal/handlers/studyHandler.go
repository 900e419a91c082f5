package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/akolanti/StudyAPI/internal/adapter"
	"github.com/akolanti/StudyAPI/internal/adapter/utils"
	"github.com/akolanti/StudyAPI/internal/api"
	"github.com/akolanti/StudyAPI/internal/domain/studyModel"
	"github.com/akolanti/StudyAPI/internal/study/textproc"
)

const maxDeckTitleLen = 180

// GetNoteHandler godoc
// @Summary      Get a note
// @Description  Returns a note and its generated summary. Private notes are only visible to their owner.
// @Tags         Notes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Note ID"
// @Success      200  {object}  api.NoteResponse
// @Failure      403  {object}  api.JobResponse  "Note not visible to the caller"
// @Failure      404  {object}  api.JobResponse  "Note not found"
// @Router       /notes/{id} [get]
func GetNoteHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	ctx := r.Context()
	noteId := utils.GetChiURLParam(r, "id")

	note, found := handlerInstance.service.NoteStore.GetNote(ctx, noteId)
	if !found {
		WriteErrorResponse(w, http.StatusNotFound, noteId, "Note not found")
		return
	}
	if !canViewNote(ctx, note, userId(ctx)) {
		WriteErrorResponse(w, http.StatusForbidden, noteId, "You do not have access to this note")
		return
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToNoteResponse(note))
}

// DeleteNoteHandler godoc
// @Summary      Delete a note
// @Description  Deletes a note and its uploaded document. Only the owner can delete.
// @Tags         Notes
// @Security     BearerAuth
// @Param        id   path  string  true  "Note ID"
// @Success      204
// @Failure      403  {object}  api.JobResponse  "Not the owner"
// @Failure      404  {object}  api.JobResponse  "Note not found"
// @Router       /notes/{id} [delete]
func DeleteNoteHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	ctx := r.Context()
	log := logRH.WithTrace(ctx)
	noteId := utils.GetChiURLParam(r, "id")

	note, found := handlerInstance.service.NoteStore.GetNote(ctx, noteId)
	if !found {
		WriteErrorResponse(w, http.StatusNotFound, noteId, "Note not found")
		return
	}
	if note.CreatedBy != userId(ctx) {
		WriteErrorResponse(w, http.StatusForbidden, noteId, "Only the owner can delete this note")
		return
	}
	if err := handlerInstance.service.NoteStore.DeleteNote(ctx, noteId); err != nil {
		log.Error("Failed to delete note", "noteId", noteId, "err", err)
		WriteErrorResponse(w, http.StatusInternalServerError, noteId, "Internal Server Error")
		return
	}
	if note.ObjectKey != "" {
		if err := handlerInstance.service.ObjectStore.RemoveObject(ctx, note.ObjectKey); err != nil {
			log.Warn("Failed to remove note document", "key", note.ObjectKey, "err", err)
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

// PostDeckHandler godoc
// @Summary      Create a deck
// @Description  Creates an empty flashcard deck owned by the caller. A class deck requires class membership. Decks are public unless public is false.
// @Tags         Decks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      api.CreateDeckRequest  true  "Deck title, optional class and visibility"
// @Success      201      {object}  api.DeckResponse
// @Failure      400      {object}  api.JobResponse  "Invalid request"
// @Failure      403      {object}  api.JobResponse  "Not a member of the class"
// @Router       /decks [post]
func PostDeckHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	ctx := r.Context()
	user := userId(ctx)

	var requestData api.CreateDeckRequest
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil || strings.TrimSpace(requestData.Title) == "" {
		WriteErrorResponse(w, http.StatusBadRequest, "", "title is required")
		return
	}
	if requestData.ClassId != "" && !handlerInstance.service.ClassStore.IsMember(ctx, requestData.ClassId, user) {
		WriteErrorResponse(w, http.StatusForbidden, requestData.ClassId, "You must join the class before adding decks")
		return
	}

	public := true
	if requestData.Public != nil {
		public = *requestData.Public
	}
	deck := studyModel.Deck{
		Id:        utils.GetNewUUID(),
		ClassId:   requestData.ClassId,
		SessionId: requestData.SessionId,
		Title:     textproc.Truncate(strings.TrimSpace(requestData.Title), maxDeckTitleLen),
		CreatedBy: user,
		Public:    public,
		CreatedAt: time.Now(),
	}
	if err := handlerInstance.service.DeckStore.SaveDeck(ctx, deck); err != nil {
		logRH.WithTrace(ctx).Error("Failed to save deck", "err", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "", "Internal Server Error")
		return
	}
	writeJsonResponse(w, http.StatusCreated, adapter.ToDeckResponse(deck, nil))
}

// GetDeckHandler godoc
// @Summary      Get a deck with its cards
// @Tags         Decks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Deck ID"
// @Success      200  {object}  api.DeckResponse
// @Failure      403  {object}  api.JobResponse  "Deck not visible to the caller"
// @Failure      404  {object}  api.JobResponse  "Deck not found"
// @Router       /decks/{id} [get]
func GetDeckHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	ctx := r.Context()
	deckId := utils.GetChiURLParam(r, "id")

	deck, found := handlerInstance.service.DeckStore.GetDeck(ctx, deckId)
	if !found {
		WriteErrorResponse(w, http.StatusNotFound, deckId, "Deck not found")
		return
	}
	if !canViewDeck(ctx, deck, userId(ctx)) {
		WriteErrorResponse(w, http.StatusForbidden, deckId, "You do not have access to this deck")
		return
	}
	cards, err := handlerInstance.service.DeckStore.GetCards(ctx, deckId)
	if err != nil {
		logRH.WithTrace(ctx).Error("Failed to load cards", "deckId", deckId, "err", err)
		WriteErrorResponse(w, http.StatusInternalServerError, deckId, "Internal Server Error")
		return
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToDeckResponse(deck, cards))
}

// PostJoinClassHandler godoc
// @Summary      Join a class
// @Description  Adds the caller to the class members. Joining twice is a no-op.
// @Tags         Classes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Class ID"
// @Success      200  {object}  api.JoinClassResponse
// @Router       /classes/{id}/join [post]
func PostJoinClassHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	ctx := r.Context()
	classId := strings.TrimSpace(utils.GetChiURLParam(r, "id"))
	if classId == "" {
		WriteErrorResponse(w, http.StatusBadRequest, "", "class id is required")
		return
	}
	if err := handlerInstance.service.ClassStore.JoinClass(ctx, classId, userId(ctx)); err != nil {
		logRH.WithTrace(ctx).Error("Failed to join class", "classId", classId, "err", err)
		WriteErrorResponse(w, http.StatusInternalServerError, classId, "Internal Server Error")
		return
	}
	writeJsonResponse(w, http.StatusOK, api.JoinClassResponse{ClassId: classId, Joined: true})
}
