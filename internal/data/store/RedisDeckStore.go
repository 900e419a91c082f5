package store

import (
	"context"
	"encoding/json"

	"github.com/akolanti/StudyAPI/internal/config"
	"github.com/akolanti/StudyAPI/internal/data/redisStore"
	"github.com/akolanti/StudyAPI/internal/domain/studyModel"
	"github.com/akolanti/StudyAPI/pkg/logger_i"
)

const cardsKeySuffix = ":cards"

// decks are stored as json under the deck id; their cards as a list under "<deck id>:cards"
type RedisDeckStore struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

func GetRedisDeckStore(ctx context.Context) *RedisDeckStore {
	s := redisStore.GetRedisStore(ctx, config.RedisDeckStore)
	if s == nil {
		return nil
	}
	return &RedisDeckStore{store: s, logger: logger_i.NewLogger("DeckStore")}
}

func (s *RedisDeckStore) SaveDeck(ctx context.Context, deck studyModel.Deck) error {
	data, err := json.Marshal(deck)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, deck.Id, data, 0)
}

func (s *RedisDeckStore) GetDeck(ctx context.Context, deckId string) (studyModel.Deck, bool) {
	var deck studyModel.Deck
	val, err := s.store.Get(ctx, deckId)
	if s.store.IsNil(err) {
		return deck, false
	} else if err != nil {
		s.logger.WithTrace(ctx).Error("error reading deck", "deck Id", deckId, "error", err)
		return deck, false
	}
	if err = json.Unmarshal([]byte(val), &deck); err != nil {
		return deck, false
	}
	return deck, true
}

func (s *RedisDeckStore) AddCards(ctx context.Context, deckId string, cards []studyModel.Flashcard) error {
	log := s.logger.WithTrace(ctx).With("deck Id", deckId)
	values := make([]interface{}, 0, len(cards))
	for _, card := range cards {
		data, err := json.Marshal(card)
		if err != nil {
			return err
		}
		values = append(values, data)
	}
	if err := s.store.ListPush(ctx, deckId+cardsKeySuffix, values...); err != nil {
		log.Error("error saving cards", "error", err)
		return err
	}
	log.Debug("Saved cards", "count", len(cards))
	return nil
}

func (s *RedisDeckStore) GetCards(ctx context.Context, deckId string) ([]studyModel.Flashcard, error) {
	raw, err := s.store.ListGetAll(ctx, deckId+cardsKeySuffix)
	if err != nil {
		return nil, err
	}
	cards := make([]studyModel.Flashcard, 0, len(raw))
	for _, item := range raw {
		var card studyModel.Flashcard
		if err := json.Unmarshal([]byte(item), &card); err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func TestDeckStore(store *redisStore.Store) *RedisDeckStore {
	return &RedisDeckStore{store: store, logger: logger_i.NewLogger("test redis")}
}
