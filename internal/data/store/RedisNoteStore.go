package store

import (
	"context"
	"encoding/json"

	"github.com/akolanti/StudyAPI/internal/config"
	"github.com/akolanti/StudyAPI/internal/data/redisStore"
	"github.com/akolanti/StudyAPI/internal/domain/studyModel"
	"github.com/akolanti/StudyAPI/pkg/logger_i"
)

// notes live without expiry, keyed by note id
type RedisNoteStore struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

func GetRedisNoteStore(ctx context.Context) *RedisNoteStore {
	s := redisStore.GetRedisStore(ctx, config.RedisNoteStore)
	if s == nil {
		return nil
	}
	return &RedisNoteStore{store: s, logger: logger_i.NewLogger("NoteStore")}
}

func (s *RedisNoteStore) SaveNote(ctx context.Context, note studyModel.Note) error {
	log := s.logger.WithTrace(ctx).With("note Id", note.Id)
	data, err := json.Marshal(note)
	if err != nil {
		return err
	}
	if err = s.store.Set(ctx, note.Id, data, 0); err != nil {
		log.Error("error saving note", "error", err)
		return err
	}
	log.Debug("Saved note to Redis")
	return nil
}

func (s *RedisNoteStore) GetNote(ctx context.Context, noteId string) (studyModel.Note, bool) {
	var note studyModel.Note
	val, err := s.store.Get(ctx, noteId)
	if s.store.IsNil(err) {
		return note, false
	} else if err != nil {
		s.logger.WithTrace(ctx).Error("error reading note", "note Id", noteId, "error", err)
		return note, false
	}
	if err = json.Unmarshal([]byte(val), &note); err != nil {
		return note, false
	}
	return note, true
}

func (s *RedisNoteStore) DeleteNote(ctx context.Context, noteId string) error {
	return s.store.Del(ctx, noteId)
}

func TestNoteStore(store *redisStore.Store) *RedisNoteStore {
	return &RedisNoteStore{store: store, logger: logger_i.NewLogger("test redis")}
}
