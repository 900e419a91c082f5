package study

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/akolanti/StudyAPI/internal/adapter/utils"
	"github.com/akolanti/StudyAPI/internal/config"
	"github.com/akolanti/StudyAPI/internal/domain/commonModels"
	"github.com/akolanti/StudyAPI/internal/domain/jobModel"
	"github.com/akolanti/StudyAPI/internal/domain/studyModel"
	"github.com/akolanti/StudyAPI/internal/metrics"
	"github.com/akolanti/StudyAPI/internal/study/extract"
	"github.com/akolanti/StudyAPI/internal/study/textproc"
	"github.com/akolanti/StudyAPI/pkg/logger_i"
)

const (
	msgExtractionFailed = "Could not extract text from document"
	msgEmptyContent     = "Could not extract text from PDF"
	msgNoteNotFound     = "Note not found"
	msgDeckNotFound     = "Deck not found"
	msgInternal         = "Internal Server Error"
)

var errEmptyContent = errors.New("document has no extractable text")

// Service is what the worker calls. Stores and the text pipeline stay behind it.
type Service interface {
	CreateNote(ctx context.Context, job jobModel.Job) jobModel.Job
	GenerateDeck(ctx context.Context, job jobModel.Job) jobModel.Job
}

type Stores struct {
	Notes   studyModel.NoteStore
	Decks   studyModel.DeckStore
	Objects studyModel.ObjectStore
}

type service struct {
	notes    studyModel.NoteStore
	decks    studyModel.DeckStore
	objects  studyModel.ObjectStore
	pipeline *Pipeline
	logger   *logger_i.Logger
}

func NewService(stores Stores, pipeline *Pipeline) Service {
	return &service{
		notes:    stores.Notes,
		decks:    stores.Decks,
		objects:  stores.Objects,
		pipeline: pipeline,
		logger:   logger_i.NewLogger("Study Service"),
	}
}

// CreateNote turns the uploaded object of a note job into a stored note whose content
// is the generated summary.
func (s *service) CreateNote(ctx context.Context, job jobModel.Job) jobModel.Job {
	log := s.logger.WithTrace(ctx).With("JobId", job.Id)
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("note_creation", time.Since(start)) }()

	payload := job.JobPayload

	job = logOutput(job, jobModel.ObjectFetch, log)
	data, err := s.objects.GetObject(ctx, payload.ObjectKey)
	if err != nil {
		return s.jobError(job, err, "OBJECT_FETCH_FAILURE", http.StatusInternalServerError, msgInternal, true)
	}

	job = logOutput(job, jobModel.TextExtraction, log)
	text, err := s.pipeline.Text(ctx, commonModels.RawDocument{Name: payload.FileName, Data: data})
	var extractionErr *extract.ExtractionError
	if errors.As(err, &extractionErr) {
		s.removeUpload(ctx, payload.ObjectKey, log)
		return s.jobError(job, err, "EXTRACTION_FAILURE", http.StatusUnprocessableEntity, msgExtractionFailed, false)
	} else if err != nil {
		return s.jobError(job, err, "EXTRACTION_INTERRUPTED", http.StatusInternalServerError, msgInternal, true)
	}
	if strings.TrimSpace(text) == "" {
		s.removeUpload(ctx, payload.ObjectKey, log)
		return s.jobError(job, errEmptyContent, "EMPTY_CONTENT", http.StatusUnprocessableEntity, msgEmptyContent, false)
	}

	job = logOutput(job, jobModel.Summarizing, log)
	summary := s.pipeline.Summary(text)

	job = logOutput(job, jobModel.NoteSave, log)
	note := buildNote(job, text, summary)
	if err = s.notes.SaveNote(ctx, note); err != nil {
		return s.jobError(job, err, "NOTE_SAVE_FAILURE", http.StatusInternalServerError, msgInternal, true)
	}

	job.JobPayload.NoteId = note.Id
	job.CurrentStep = jobModel.Complete
	return job
}

// GenerateDeck generates flashcards from a note's text and appends them to a deck.
func (s *service) GenerateDeck(ctx context.Context, job jobModel.Job) jobModel.Job {
	log := s.logger.WithTrace(ctx).With("JobId", job.Id)
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("deck_generation", time.Since(start)) }()

	payload := job.JobPayload
	job = logOutput(job, jobModel.DeckInit, log)

	if _, found := s.decks.GetDeck(ctx, payload.DeckId); !found {
		return s.jobError(job, errors.New("deck not found"), "DECK_NOT_FOUND", http.StatusNotFound, msgDeckNotFound, false)
	}
	note, found := s.notes.GetNote(ctx, payload.NoteId)
	if !found {
		return s.jobError(job, errors.New("note not found"), "NOTE_NOT_FOUND", http.StatusNotFound, msgNoteNotFound, false)
	}

	text := note.SourceText
	if text == "" {
		text = note.Content
	}

	job = logOutput(job, jobModel.CardGeneration, log)
	cards := s.pipeline.Cards(text, payload.CardCount)

	job = logOutput(job, jobModel.CardSave, log)
	now := time.Now()
	records := make([]studyModel.Flashcard, 0, len(cards))
	for _, c := range cards {
		records = append(records, studyModel.Flashcard{
			Id:        utils.GetNewUUID(),
			DeckId:    payload.DeckId,
			Question:  c.Question,
			Answer:    c.Answer,
			CreatedBy: payload.UserId,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	if err := s.decks.AddCards(ctx, payload.DeckId, records); err != nil {
		return s.jobError(job, err, "CARD_SAVE_FAILURE", http.StatusInternalServerError, msgInternal, true)
	}
	metrics.CaptureCardsGenerated(len(records))

	job.JobPayload.CardCount = len(records)
	job.CurrentStep = jobModel.Complete
	return job
}

func (s *service) removeUpload(ctx context.Context, key string, log *logger_i.Logger) {
	if err := s.objects.RemoveObject(ctx, key); err != nil {
		log.Warn("failed removing unreadable upload", "key", key, "error", err)
	}
}

func buildNote(job jobModel.Job, text string, summary string) studyModel.Note {
	payload := job.JobPayload
	session := sessionTitle(payload.FileName)
	title := strings.TrimSpace(payload.Title)
	if title == "" {
		title = session
	}

	now := time.Now()
	return studyModel.Note{
		Id:         utils.GetNewUUID(),
		ClassId:    payload.ClassId,
		SessionId:  utils.GetNewUUID(),
		Session:    session,
		Type:       studyModel.NoteTypeSlides,
		Title:      textproc.Truncate(title, config.MaxNoteTitleLen),
		Content:    summary,
		SourceText: text,
		CreatedBy:  payload.UserId,
		Public:     payload.Public,
		PdfURL:     payload.PdfURL,
		ObjectKey:  payload.ObjectKey,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// sessionTitle is the upload's file name without extension.
func sessionTitle(fileName string) string {
	base := filepath.Base(fileName)
	title := strings.TrimSpace(strings.TrimSuffix(base, filepath.Ext(base)))
	if title == "" || title == "." || title == string(filepath.Separator) {
		return config.DefaultSessionTitle
	}
	return textproc.Truncate(title, config.MaxSessionTitleLen)
}
