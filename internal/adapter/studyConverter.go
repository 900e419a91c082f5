package adapter

import (
	"github.com/akolanti/StudyAPI/internal/api"
	"github.com/akolanti/StudyAPI/internal/domain/studyModel"
)

// ToNoteResponse leaves out the extracted source text.
func ToNoteResponse(note studyModel.Note) api.NoteResponse {
	return api.NoteResponse{
		Id:           note.Id,
		ClassId:      note.ClassId,
		SessionId:    note.SessionId,
		SessionTitle: note.Session,
		Type:         note.Type,
		Title:        note.Title,
		Content:      note.Content,
		CreatedBy:    note.CreatedBy,
		Public:       note.Public,
		PdfURL:       note.PdfURL,
		CreatedAt:    note.CreatedAt,
	}
}

func ToDeckResponse(deck studyModel.Deck, cards []studyModel.Flashcard) api.DeckResponse {
	out := make([]api.FlashcardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, api.FlashcardResponse{Id: c.Id, Question: c.Question, Answer: c.Answer})
	}
	return api.DeckResponse{
		Id:        deck.Id,
		ClassId:   deck.ClassId,
		SessionId: deck.SessionId,
		Title:     deck.Title,
		CreatedBy: deck.CreatedBy,
		Public:    deck.Public,
		CreatedAt: deck.CreatedAt,
		Cards:     out,
	}
}
