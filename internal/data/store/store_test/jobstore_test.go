package store_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/akolanti/StudyAPI/internal/config"
	"github.com/akolanti/StudyAPI/internal/data/redisStore"
	"github.com/akolanti/StudyAPI/internal/data/store"
	"github.com/akolanti/StudyAPI/internal/domain/jobModel"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redisStore.Store) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, redisStore.NewTestStore(client)
}

func TestRedisJobStore_Lifecycle(t *testing.T) {
	mr, internalStore := newTestRedis(t)
	jobStore := store.TestJobStore(internalStore)

	ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "test-trace")
	jobID := "job_abc_123"

	testJob := jobModel.Job{
		Id:      jobID,
		JobType: jobModel.JobTypeNote,
		Status:  jobModel.JobStatusRunning,
		JobPayload: jobModel.JobPayload{
			UserId:   "user-1",
			FileName: "cells.pdf",
		},
	}

	t.Run("Save and Get Roundtrip", func(t *testing.T) {
		if err := jobStore.SaveJob(ctx, testJob); err != nil {
			t.Fatalf("SaveJob failed: %v", err)
		}

		retrievedJob, found := jobStore.GetJob(ctx, jobID)
		if !found {
			t.Fatal("Job was saved but not found in Redis")
		}
		if retrievedJob.JobPayload.FileName != testJob.JobPayload.FileName {
			t.Errorf("Data mismatch! Got %s, want %s",
				retrievedJob.JobPayload.FileName, testJob.JobPayload.FileName)
		}
	})

	t.Run("Job has a ttl", func(t *testing.T) {
		if ttl := mr.TTL(jobID); ttl != config.RedisJobStoreTTL {
			t.Errorf("ttl = %v; want %v", ttl, config.RedisJobStoreTTL)
		}
	})

	t.Run("Get Non-Existent Job", func(t *testing.T) {
		if _, found := jobStore.GetJob(ctx, "ghost-id"); found {
			t.Error("Expected found=false for non-existent key")
		}
	})

	t.Run("Delete Job", func(t *testing.T) {
		jobStore.DeleteJob(ctx, jobID)
		if mr.Exists(jobID) {
			t.Error("Job still exists in Redis after DeleteJob call")
		}
	})
}

func TestRedisJobStore_Race(t *testing.T) {
	_, internalStore := newTestRedis(t)
	jobStore := store.TestJobStore(internalStore)

	ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "race-trace")
	job := jobModel.Job{Id: "race-job"}

	const workers = 50
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = jobStore.SaveJob(ctx, job)
			_, _ = jobStore.GetJob(ctx, "race-job")
		}()
	}
	wg.Wait()
}

func TestInMemoryJobStore(t *testing.T) {
	ctx := context.Background()
	jobStore := store.InitInMemoryJobStore()

	_ = jobStore.SaveJob(ctx, jobModel.Job{Id: "a", Status: jobModel.JobStatusQueued})
	if got, ok := jobStore.GetJob(ctx, "a"); !ok || got.Status != jobModel.JobStatusQueued {
		t.Errorf("GetJob = %+v, %v", got, ok)
	}
	jobStore.DeleteJob(ctx, "a")
	if _, ok := jobStore.GetJob(ctx, "a"); ok {
		t.Error("job still present after delete")
	}
}

func TestInMemoryJobStore_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	jobStore := store.TestInMemoryJobStore(time.Hour, func() time.Time { return now })

	_ = jobStore.SaveJob(ctx, jobModel.Job{Id: "old"})
	now = now.Add(30 * time.Minute)
	if _, ok := jobStore.GetJob(ctx, "old"); !ok {
		t.Fatal("job expired before its ttl")
	}

	now = now.Add(31 * time.Minute)
	if _, ok := jobStore.GetJob(ctx, "old"); ok {
		t.Error("job still visible after its ttl")
	}

	_ = jobStore.SaveJob(ctx, jobModel.Job{Id: "new"})
	if _, ok := jobStore.GetJob(ctx, "new"); !ok {
		t.Error("fresh job not found")
	}
}
