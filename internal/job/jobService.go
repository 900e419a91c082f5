package job

import (
	"github.com/akolanti/StudyAPI/internal/domain/jobModel"
	"github.com/akolanti/StudyAPI/internal/domain/studyModel"
)

type Service struct {
	JobChannel        chan jobModel.Job
	RequestCount      int64
	DispatcherChannel chan bool
	JobStore          jobModel.JobStore
	NoteStore         studyModel.NoteStore
	DeckStore         studyModel.DeckStore
	ClassStore        studyModel.ClassStore
	ObjectStore       studyModel.ObjectStore
}

type ServiceConfig struct {
	JobChannel        chan jobModel.Job
	RequestCount      int64
	DispatcherChannel chan bool
	JobStore          jobModel.JobStore
	NoteStore         studyModel.NoteStore
	DeckStore         studyModel.DeckStore
	ClassStore        studyModel.ClassStore
	ObjectStore       studyModel.ObjectStore
}

func InitJobService(cfg ServiceConfig) *Service {
	return &Service{
		JobChannel:        cfg.JobChannel,
		RequestCount:      cfg.RequestCount,
		DispatcherChannel: cfg.DispatcherChannel,
		JobStore:          cfg.JobStore,
		NoteStore:         cfg.NoteStore,
		DeckStore:         cfg.DeckStore,
		ClassStore:        cfg.ClassStore,
		ObjectStore:       cfg.ObjectStore,
	}
}
