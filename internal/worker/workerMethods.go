package worker

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/akolanti/StudyAPI/internal/config"
	jobmodel "github.com/akolanti/StudyAPI/internal/domain/jobModel"
	"github.com/akolanti/StudyAPI/internal/metrics"
)

func executeJob(job jobmodel.Job) {
	start := time.Now()
	defer func() {
		// Record total time at the end
		metrics.CaptureJobMetrics(string(job.Status), time.Since(start))
	}()
	ctxTrace := context.WithValue(context.Background(), config.TRACE_ID_KEY, job.TraceId)
	ctx, cancel := context.WithTimeout(ctxTrace, jobTimeout)
	defer cancel()
	log := logger.WithTrace(ctx)
	log.Debug("Processing job", "jobId", job.Id, "type", job.JobType)

	saveJobState(ctx, job, jobmodel.JobStatusRunning)

	switch job.JobType {
	case jobmodel.JobTypeNote:
		job.CurrentStep = jobmodel.NoteInit
		job = _studyService.CreateNote(ctx, job)
	case jobmodel.JobTypeDeck:
		job.CurrentStep = jobmodel.DeckInit
		job = _studyService.GenerateDeck(ctx, job)
	default:
		log.Error("Unknown job type", "jobId", job.Id, "type", job.JobType)
		job.Status = jobmodel.JobStatusError
		job.CurrentStep = jobmodel.Error
		job.Error = jobmodel.JobError{Code: 400, Message: "Unknown job type"}
	}

	job.EndTime = time.Now()

	// the job ctx may already be past its deadline here
	saveCtx, saveCancel := context.WithTimeout(context.WithoutCancel(ctx), config.RedisIOTimeout)
	defer saveCancel()
	if job.Status == jobmodel.JobStatusError {
		saveJobState(saveCtx, job, jobmodel.JobStatusError)
		return
	}
	saveJobState(saveCtx, job, jobmodel.JobStatusComplete)
}

func removeWorker(reason string) {
	workerWaitGroup.Done()
	atomic.AddInt64(&currentWorkerCount, -1)
	logger.Info("Removed worker", "reason", reason, "workerCount", atomic.LoadInt64(&currentWorkerCount))
	metrics.DecrementActiveWorkerCount()
}

func saveJobState(ctx context.Context, job jobmodel.Job, jobStatus jobmodel.JobStatus) {
	job.Status = jobStatus
	if err := _jobService.JobStore.SaveJob(ctx, job); err != nil {
		logger.Error("Failed to update job status", "err", err)
	}
}
