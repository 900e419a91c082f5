package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/akolanti/StudyAPI/internal/adapter"
	"github.com/akolanti/StudyAPI/internal/adapter/utils"
	"github.com/akolanti/StudyAPI/internal/api"
	"github.com/akolanti/StudyAPI/internal/config"
	"github.com/akolanti/StudyAPI/internal/domain/commonModels"
	"github.com/akolanti/StudyAPI/internal/domain/jobModel"
	"github.com/akolanti/StudyAPI/internal/study/extract"
	"github.com/akolanti/StudyAPI/pkg/logger_i"
)

var logRH *logger_i.Logger

type newJobData struct {
	id      string
	traceId string
	jobType jobModel.JobType
	payload jobModel.JobPayload
}

func GetHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// GetStatusHandler godoc
// @Summary      Get job status
// @Description  Retrieves the current status of a note or deck job. Only the user who started the job can see it.
// @Tags         Job Status
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job ID "
// @Success      200  {object}  api.JobResponse   "Successful retrieval of job status"
// @Failure      404  {object}  api.JobResponse   "Job not found (returns Error object within JobResponse)"
// @Router       /status/{id} [get]
func GetStatusHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request", "remoteAddr", r.RemoteAddr)
		return
	}
	idString := utils.GetChiURLParam(r, "id")
	result, isFound := validateId(idString, traceId(r.Context()))

	logRH.Debug("Get Status Request", "URL path", r.URL.Path)
	if !isFound || result.JobPayload.UserId != userId(r.Context()) {
		WriteErrorResponse(w, http.StatusNotFound, idString, "Job not found")
		return
	}

	writeJsonResponse(w, http.StatusOK, adapter.ToAPIResponse(result))
}

// PostNoteUploadHandler godoc
// @Summary      Upload a document and create a note
// @Description  Stores the uploaded PDF (or docx/odt/rtf/txt) and queues a job that extracts its text and summarizes it into a note.
// @Tags         Notes
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file      formData  file    true   "The document to upload"
// @Param        class_id  formData  string  true   "Class the note belongs to"
// @Param        title     formData  string  false  "Note title, defaults to the file name"
// @Param        public    formData  bool    false  "Visible to other class members"
// @Success      202  {object}  api.InitJobResponse  "Job successfully created"
// @Failure      400  {object}  api.JobResponse      "Missing fields, unsupported file or file too large"
// @Failure      403  {object}  api.JobResponse      "Not a member of the class"
// @Failure      500  {object}  api.JobResponse      "Storage error"
// @Router       /notes/upload [post]
func PostNoteUploadHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request", "remoteAddr", r.RemoteAddr)
		return
	}
	ctx := r.Context()
	log := logRH.WithTrace(ctx)
	user := userId(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, config.MaxUploadSize)
	if err := r.ParseMultipartForm(config.MaxUploadSize); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "", "File too large or bad request")
		return
	}

	classId := strings.TrimSpace(r.FormValue("class_id"))
	if classId == "" {
		WriteErrorResponse(w, http.StatusBadRequest, "", "class_id is required")
		return
	}
	if !handlerInstance.service.ClassStore.IsMember(ctx, classId, user) {
		WriteErrorResponse(w, http.StatusForbidden, classId, "You must join the class before adding notes")
		return
	}

	fileReader, fileMetadata, err := r.FormFile(config.UploadFormFile)
	if err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, classId, "Could not retrieve file")
		return
	}
	defer fileReader.Close()

	if extract.GetDocType(fileMetadata.Filename) == commonModels.ERR {
		WriteErrorResponse(w, http.StatusBadRequest, classId, "Unsupported file type")
		return
	}

	data, err := io.ReadAll(fileReader)
	if err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, classId, "Could not read file")
		return
	}
	if len(data) == 0 {
		WriteErrorResponse(w, http.StatusBadRequest, classId, "File is empty")
		return
	}

	objectKey := user + "/" + utils.GetNewUUID() + strings.ToLower(filepath.Ext(fileMetadata.Filename))
	contentType := fileMetadata.Header.Get("Content-Type")
	pdfURL, err := handlerInstance.service.ObjectStore.PutObject(ctx, objectKey, data, contentType)
	if err != nil {
		log.Error("Couldn't store upload", "err", err)
		WriteErrorResponse(w, http.StatusInternalServerError, classId, "Storage error")
		return
	}

	public, _ := strconv.ParseBool(r.FormValue("public"))
	processNewJobData(r, w, jobModel.JobTypeNote, jobModel.JobPayload{
		UserId:    user,
		ClassId:   classId,
		Title:     strings.TrimSpace(r.FormValue("title")),
		Public:    public,
		FileName:  fileMetadata.Filename,
		ObjectKey: objectKey,
		PdfURL:    pdfURL,
	})
}

// PostGenerateDeckHandler godoc
// @Summary      Generate flashcards for a deck
// @Description  Queues a job that generates flashcards from a note and appends them to the deck.
// @Tags         Decks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  string                   true  "Deck ID"
// @Param        request  body  api.GenerateDeckRequest  true  "Source note and card count"
// @Success      202  {object}  api.InitJobResponse  "Job successfully created"
// @Failure      400  {object}  api.JobResponse      "Invalid request"
// @Failure      403  {object}  api.JobResponse      "Not the deck owner or note not visible"
// @Failure      404  {object}  api.JobResponse      "Deck or note not found"
// @Router       /decks/{id}/generate [post]
func PostGenerateDeckHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request", "remoteAddr", r.RemoteAddr)
		return
	}
	ctx := r.Context()
	user := userId(ctx)
	deckId := utils.GetChiURLParam(r, "id")

	var requestData api.GenerateDeckRequest
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil || requestData.NoteId == "" {
		logRH.Warn("Bad generate request", "error", err)
		WriteErrorResponse(w, http.StatusBadRequest, deckId, "note_id is required")
		return
	}
	if requestData.Count == 0 {
		requestData.Count = config.DefaultDeckCards
	}
	if requestData.Count < 0 {
		WriteErrorResponse(w, http.StatusBadRequest, deckId, "count must be positive")
		return
	}

	deck, found := handlerInstance.service.DeckStore.GetDeck(ctx, deckId)
	if !found {
		WriteErrorResponse(w, http.StatusNotFound, deckId, "Deck not found")
		return
	}
	if deck.CreatedBy != user {
		WriteErrorResponse(w, http.StatusForbidden, deckId, "Only the deck owner can add cards")
		return
	}
	note, found := handlerInstance.service.NoteStore.GetNote(ctx, requestData.NoteId)
	if !found {
		WriteErrorResponse(w, http.StatusNotFound, requestData.NoteId, "Note not found")
		return
	}
	if !canViewNote(ctx, note, user) {
		WriteErrorResponse(w, http.StatusForbidden, requestData.NoteId, "You do not have access to this note")
		return
	}

	processNewJobData(r, w, jobModel.JobTypeDeck, jobModel.JobPayload{
		UserId:    user,
		ClassId:   deck.ClassId,
		DeckId:    deck.Id,
		NoteId:    note.Id,
		CardCount: requestData.Count,
	})
}

func processNewJobData(request *http.Request, w http.ResponseWriter, jobType jobModel.JobType, payload jobModel.JobPayload) {
	newJob := newJobData{
		id:      utils.GetNewUUID(),
		traceId: traceId(request.Context()),
		jobType: jobType,
		payload: payload,
	}
	CreateNewJob(newJob)
	writeJsonResponse(w, http.StatusAccepted, adapter.ToInitJobResponse(newJob.id))
}
