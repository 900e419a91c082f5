package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/akolanti/StudyAPI/internal/domain/jobModel"
	"github.com/akolanti/StudyAPI/internal/job"
	"github.com/akolanti/StudyAPI/pkg/logger_i"
)

// MockStudyService to track if jobs are executed
type MockStudyService struct {
	NotesCreated   int32
	DecksGenerated int32
}

func (m *MockStudyService) CreateNote(ctx context.Context, j jobModel.Job) jobModel.Job {
	atomic.AddInt32(&m.NotesCreated, 1)
	return j
}

func (m *MockStudyService) GenerateDeck(ctx context.Context, j jobModel.Job) jobModel.Job {
	atomic.AddInt32(&m.DecksGenerated, 1)
	j.Status = jobModel.JobStatusError
	return j
}

// slowStudyService runs until the job deadline and then reports the interruption.
type slowStudyService struct{}

func (slowStudyService) CreateNote(ctx context.Context, j jobModel.Job) jobModel.Job {
	<-ctx.Done()
	j.Status = jobModel.JobStatusError
	j.CurrentStep = jobModel.Error
	j.Error = jobModel.JobError{Code: 500, Message: "EXTRACTION_INTERRUPTED"}
	return j
}

func (slowStudyService) GenerateDeck(ctx context.Context, j jobModel.Job) jobModel.Job {
	return slowStudyService{}.CreateNote(ctx, j)
}

type MockJobStore struct {
	OnSaveJob func(ctx context.Context, job jobModel.Job) error
}

func (m *MockJobStore) GetJob(ctx context.Context, jobId string) (jobModel.Job, bool) {
	return jobModel.Job{}, false
}

func (m *MockJobStore) DeleteJob(ctx context.Context, jobID string) {}

func (m *MockJobStore) SaveJob(ctx context.Context, j jobModel.Job) error {
	if m.OnSaveJob != nil {
		return m.OnSaveJob(ctx, j)
	}
	return nil
}

func TestWorkerPool_Flow(t *testing.T) {
	// 1. Setup
	var savedMu sync.Mutex
	saved := map[string]jobModel.JobStatus{}
	jobStore := &MockJobStore{
		OnSaveJob: func(ctx context.Context, j jobModel.Job) error {
			savedMu.Lock()
			defer savedMu.Unlock()
			saved[j.Id] = j.Status
			return nil
		},
	}
	jobSvc := &job.Service{
		JobChannel:        make(chan jobModel.Job, 10),
		DispatcherChannel: make(chan bool, 10),
		JobStore:          jobStore,
	}
	mockStudy := &MockStudyService{}
	stopChan := make(chan bool)
	wg := &sync.WaitGroup{}

	InitServices(jobSvc, mockStudy)
	InitWorkerPool(stopChan, wg)

	// Reset global state for test
	atomic.StoreInt64(&currentWorkerCount, 0)

	t.Run("Dispatcher creates worker on signal", func(t *testing.T) {
		// Signal dispatcher to create a worker
		jobSvc.DispatcherChannel <- true

		// Give it a millisecond to spawn
		time.Sleep(50 * time.Millisecond)

		count := atomic.LoadInt64(&currentWorkerCount)
		if count < 1 {
			t.Errorf("Expected at least 1 worker, got %d", count)
		}
	})

	t.Run("Worker processes a job", func(t *testing.T) {
		jobSvc.JobChannel <- jobModel.Job{Id: "note-job", JobType: jobModel.JobTypeNote}
		jobSvc.JobChannel <- jobModel.Job{Id: "deck-job", JobType: jobModel.JobTypeDeck}

		// Wait for worker to pick up and process
		time.Sleep(50 * time.Millisecond)

		if n := atomic.LoadInt32(&mockStudy.NotesCreated); n != 1 {
			t.Errorf("Expected 1 note job processed, got %d", n)
		}
		if n := atomic.LoadInt32(&mockStudy.DecksGenerated); n != 1 {
			t.Errorf("Expected 1 deck job processed, got %d", n)
		}

		savedMu.Lock()
		defer savedMu.Unlock()
		if saved["note-job"] != jobModel.JobStatusComplete {
			t.Errorf("note job final status = %s; want COMPLETE", saved["note-job"])
		}
		if saved["deck-job"] != jobModel.JobStatusError {
			t.Errorf("failed deck job final status = %s; want Error", saved["deck-job"])
		}
	})

	t.Run("Unknown job type is marked failed", func(t *testing.T) {
		jobSvc.JobChannel <- jobModel.Job{Id: "odd-job", JobType: "Quiz"}
		time.Sleep(50 * time.Millisecond)

		savedMu.Lock()
		defer savedMu.Unlock()
		if saved["odd-job"] != jobModel.JobStatusError {
			t.Errorf("unknown job final status = %s; want Error", saved["odd-job"])
		}
	})

	t.Run("Stop signal retires workers", func(t *testing.T) {
		// Send stop signal
		close(stopChan)

		// Wait for workers to exit
		done := make(chan struct{})
		go func() {
			wg.Wait()
			close(done)
		}()

		select {
		case <-done:
			// Success
		case <-time.After(2 * time.Second):
			t.Error("Workers did not stop within timeout")
		}
	})
}

func TestWorker_IdleTimeout(t *testing.T) {
	// Temporarily override config/globals for test
	oldMin, oldIdle := atomic.LoadInt64(&minWorkerCount), idleTimeout
	t.Cleanup(func() {
		atomic.StoreInt64(&minWorkerCount, oldMin)
		idleTimeout = oldIdle
	})
	idleTimeout = 20 * time.Millisecond
	atomic.StoreInt64(&currentWorkerCount, 0)
	logger = logger_i.NewLogger("TestWorkerPool")
	jobSvc := &job.Service{
		JobChannel: make(chan jobModel.Job),
	}
	InitServices(jobSvc, &MockStudyService{})

	wg := &sync.WaitGroup{}
	stopChan := make(chan bool)
	workerWaitGroup = wg
	stopWorkerChannel = stopChan

	t.Run("extra workers retire", func(t *testing.T) {
		atomic.StoreInt64(&minWorkerCount, 0)
		createWorker()
		createWorker()
		time.Sleep(200 * time.Millisecond)

		if count := atomic.LoadInt64(&currentWorkerCount); count != 0 {
			t.Errorf("Worker should have timed out and retired, but count is %d", count)
		}
	})

	t.Run("pool keeps its minimum", func(t *testing.T) {
		atomic.StoreInt64(&minWorkerCount, 1)
		createWorker()
		createWorker()
		time.Sleep(200 * time.Millisecond)

		if count := atomic.LoadInt64(&currentWorkerCount); count != 1 {
			t.Errorf("worker count = %d; want the minimum of 1", count)
		}

		close(stopChan)
		done := make(chan struct{})
		go func() {
			wg.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Error("remaining worker did not stop")
		}
	})
}

func TestExecuteJob_SavesFinalStatusAfterDeadline(t *testing.T) {
	oldTimeout := jobTimeout
	t.Cleanup(func() { jobTimeout = oldTimeout })
	jobTimeout = 20 * time.Millisecond
	logger = logger_i.NewLogger("TestWorkerPool")

	var savedMu sync.Mutex
	var statuses []jobModel.JobStatus
	jobStore := &MockJobStore{
		OnSaveJob: func(ctx context.Context, j jobModel.Job) error {
			// behaves like redis: an expired ctx rejects the write
			if err := ctx.Err(); err != nil {
				return err
			}
			savedMu.Lock()
			defer savedMu.Unlock()
			statuses = append(statuses, j.Status)
			return nil
		},
	}
	InitServices(&job.Service{JobStore: jobStore}, slowStudyService{})

	executeJob(jobModel.Job{Id: "slow-job", JobType: jobModel.JobTypeNote})

	savedMu.Lock()
	defer savedMu.Unlock()
	want := []jobModel.JobStatus{jobModel.JobStatusRunning, jobModel.JobStatusError}
	if len(statuses) != len(want) {
		t.Fatalf("saved statuses = %v; want %v", statuses, want)
	}
	for i := range want {
		if statuses[i] != want[i] {
			t.Errorf("saved statuses = %v; want %v", statuses, want)
			break
		}
	}
}
