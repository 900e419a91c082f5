package studyModel

import (
	"context"
	"time"
)

const NoteTypeSlides = "slides"

// Note is the stored result of one upload: the generated summary plus the text it
// was built from, kept so decks can be generated later without the pdf.
type Note struct {
	Id         string    `json:"id"`
	ClassId    string    `json:"class_id"`
	SessionId  string    `json:"session_id"`
	Session    string    `json:"session_title"`
	Type       string    `json:"type"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	SourceText string    `json:"source_text,omitempty"`
	CreatedBy  string    `json:"created_by"`
	Public     bool      `json:"public"`
	PdfURL     string    `json:"pdf_url,omitempty"`
	ObjectKey  string    `json:"object_key,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Deck struct {
	Id        string    `json:"id"`
	ClassId   string    `json:"class_id,omitempty"`
	SessionId string    `json:"session_id,omitempty"`
	Title     string    `json:"title"`
	CreatedBy string    `json:"created_by"`
	Public    bool      `json:"public"`
	CreatedAt time.Time `json:"created_at"`
}

type Flashcard struct {
	Id        string    `json:"id"`
	DeckId    string    `json:"deck_id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type NoteStore interface {
	SaveNote(ctx context.Context, note Note) error
	GetNote(ctx context.Context, noteId string) (Note, bool)
	DeleteNote(ctx context.Context, noteId string) error
}

type DeckStore interface {
	SaveDeck(ctx context.Context, deck Deck) error
	GetDeck(ctx context.Context, deckId string) (Deck, bool)
	AddCards(ctx context.Context, deckId string, cards []Flashcard) error
	GetCards(ctx context.Context, deckId string) ([]Flashcard, error)
}

type ClassStore interface {
	JoinClass(ctx context.Context, classId string, userId string) error
	IsMember(ctx context.Context, classId string, userId string) bool
}

// ObjectStore holds the uploaded files. PutObject returns the public url of the object.
type ObjectStore interface {
	PutObject(ctx context.Context, key string, data []byte, contentType string) (string, error)
	GetObject(ctx context.Context, key string) ([]byte, error)
	RemoveObject(ctx context.Context, key string) error
}
