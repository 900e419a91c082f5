package store

import (
	"context"
	"sync"
	"time"

	"github.com/akolanti/StudyAPI/internal/config"
	"github.com/akolanti/StudyAPI/internal/domain/jobModel"
	"github.com/akolanti/StudyAPI/pkg/logger_i"
)

var inMemLogger = logger_i.NewLogger("InMem Store")

type storedJob struct {
	job       jobModel.Job
	expiresAt time.Time
}

// InMemoryJobStore mirrors the redis job store, including its TTL. Expired jobs are
// dropped lazily on lookup and on every save.
type InMemoryJobStore struct {
	jobMutex *sync.RWMutex
	jobMap   map[string]storedJob
	ttl      time.Duration
	now      func() time.Time
}

func InitInMemoryJobStore() *InMemoryJobStore {
	return &InMemoryJobStore{
		jobMutex: new(sync.RWMutex),
		jobMap:   make(map[string]storedJob),
		ttl:      config.RedisJobStoreTTL,
		now:      time.Now,
	}
}

func (store *InMemoryJobStore) SaveJob(ctx context.Context, jobToStored jobModel.Job) error {
	store.jobMutex.Lock()
	defer store.jobMutex.Unlock()
	now := store.now()
	for id, entry := range store.jobMap {
		if now.After(entry.expiresAt) {
			delete(store.jobMap, id)
		}
	}
	store.jobMap[jobToStored.Id] = storedJob{job: jobToStored, expiresAt: now.Add(store.ttl)}
	inMemLogger.Debug("Saved job to store", "jobId", jobToStored.Id, "status", jobToStored.Status)
	return nil
}

func (store *InMemoryJobStore) GetJob(ctx context.Context, jobId string) (jobModel.Job, bool) {
	store.jobMutex.RLock()
	defer store.jobMutex.RUnlock()
	entry, found := store.jobMap[jobId]
	if found && store.now().After(entry.expiresAt) {
		found = false
	}
	inMemLogger.Debug("Job lookup", "jobId", jobId, "found", found)
	if !found {
		return jobModel.Job{}, false
	}
	return entry.job, true
}

func (store *InMemoryJobStore) DeleteJob(ctx context.Context, jobID string) {
	store.jobMutex.Lock()
	defer store.jobMutex.Unlock()
	delete(store.jobMap, jobID)
}

// TestInMemoryJobStore builds an in-memory job store with a custom clock and ttl.
func TestInMemoryJobStore(ttl time.Duration, now func() time.Time) *InMemoryJobStore {
	s := InitInMemoryJobStore()
	s.ttl = ttl
	s.now = now
	return s
}
