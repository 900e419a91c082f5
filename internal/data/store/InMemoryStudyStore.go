package store

import (
	"context"
	"sync"

	"github.com/akolanti/StudyAPI/internal/domain/studyModel"
)

// in-memory versions of the note, deck and class stores, used when redis is offline

type InMemoryNoteStore struct {
	lock  *sync.RWMutex
	notes map[string]studyModel.Note
}

func InitInMemoryNoteStore() *InMemoryNoteStore {
	return &InMemoryNoteStore{
		lock:  new(sync.RWMutex),
		notes: make(map[string]studyModel.Note),
	}
}

func (store *InMemoryNoteStore) SaveNote(ctx context.Context, note studyModel.Note) error {
	store.lock.Lock()
	defer store.lock.Unlock()
	store.notes[note.Id] = note
	inMemLogger.Debug("Saved note to store", "noteId", note.Id)
	return nil
}

func (store *InMemoryNoteStore) GetNote(ctx context.Context, noteId string) (studyModel.Note, bool) {
	store.lock.RLock()
	defer store.lock.RUnlock()
	note, found := store.notes[noteId]
	return note, found
}

func (store *InMemoryNoteStore) DeleteNote(ctx context.Context, noteId string) error {
	store.lock.Lock()
	defer store.lock.Unlock()
	delete(store.notes, noteId)
	return nil
}

type InMemoryDeckStore struct {
	lock  *sync.RWMutex
	decks map[string]studyModel.Deck
	cards map[string][]studyModel.Flashcard
}

func InitInMemoryDeckStore() *InMemoryDeckStore {
	return &InMemoryDeckStore{
		lock:  new(sync.RWMutex),
		decks: make(map[string]studyModel.Deck),
		cards: make(map[string][]studyModel.Flashcard),
	}
}

func (store *InMemoryDeckStore) SaveDeck(ctx context.Context, deck studyModel.Deck) error {
	store.lock.Lock()
	defer store.lock.Unlock()
	store.decks[deck.Id] = deck
	return nil
}

func (store *InMemoryDeckStore) GetDeck(ctx context.Context, deckId string) (studyModel.Deck, bool) {
	store.lock.RLock()
	defer store.lock.RUnlock()
	deck, found := store.decks[deckId]
	return deck, found
}

func (store *InMemoryDeckStore) AddCards(ctx context.Context, deckId string, cards []studyModel.Flashcard) error {
	store.lock.Lock()
	defer store.lock.Unlock()
	store.cards[deckId] = append(store.cards[deckId], cards...)
	inMemLogger.Debug("Saved cards to store", "deckId", deckId, "count", len(cards))
	return nil
}

func (store *InMemoryDeckStore) GetCards(ctx context.Context, deckId string) ([]studyModel.Flashcard, error) {
	store.lock.RLock()
	defer store.lock.RUnlock()
	out := make([]studyModel.Flashcard, len(store.cards[deckId]))
	copy(out, store.cards[deckId])
	return out, nil
}

type InMemoryClassStore struct {
	lock    *sync.RWMutex
	members map[string]map[string]struct{}
}

func InitInMemoryClassStore() *InMemoryClassStore {
	return &InMemoryClassStore{
		lock:    new(sync.RWMutex),
		members: make(map[string]map[string]struct{}),
	}
}

func (store *InMemoryClassStore) JoinClass(ctx context.Context, classId string, userId string) error {
	store.lock.Lock()
	defer store.lock.Unlock()
	if store.members[classId] == nil {
		store.members[classId] = make(map[string]struct{})
	}
	store.members[classId][userId] = struct{}{}
	return nil
}

func (store *InMemoryClassStore) IsMember(ctx context.Context, classId string, userId string) bool {
	store.lock.RLock()
	defer store.lock.RUnlock()
	_, ok := store.members[classId][userId]
	return ok
}
