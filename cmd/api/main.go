package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/akolanti/StudyAPI/internal/config"
	"github.com/akolanti/StudyAPI/internal/data/objectStore"
	"github.com/akolanti/StudyAPI/internal/data/store"
	jobmodel "github.com/akolanti/StudyAPI/internal/domain/jobModel"
	"github.com/akolanti/StudyAPI/internal/handlers"
	"github.com/akolanti/StudyAPI/internal/job"
	"github.com/akolanti/StudyAPI/internal/server"
	"github.com/akolanti/StudyAPI/internal/study"
	"github.com/akolanti/StudyAPI/internal/worker"
	"github.com/akolanti/StudyAPI/pkg/logger_i"
)

var (
	listenAddr        string
	pipelineConfig    string
	requestCount      int64
	stopWorkerChannel chan bool
	workerWaitGroup   sync.WaitGroup
)

func main() {

	config.LoadEnvironment()
	logger_i.Init()
	var logger = logger_i.NewLogger("main")

	//config
	flag.StringVar(&listenAddr, "listen-addr", config.EnvOrDefault("LISTEN_ADDR", config.ServerListenAddr), "server listen address")
	flag.StringVar(&pipelineConfig, "pipeline-config", config.EnvOrDefault("PIPELINE_CONFIG", "pipeline.yaml"), "pipeline yaml file")
	flag.Parse()

	pipelineSettings, err := config.LoadPipeline(pipelineConfig)
	if err != nil {
		logger.Error("Invalid pipeline config", "path", pipelineConfig, "err", err)
		return
	}
	if config.AuthBypass {
		logger.Warn("Auth bypass is enabled, requests are trusted as the X-User-Id header")
	} else if config.AuthJWTSecret == "" {
		logger.Error("AUTH_JWT_SECRET is not set, every request will be rejected")
	}

	//init buffered job channel
	jobChannel := make(chan jobmodel.Job, config.BufferLimit)
	dispatcherChannel := make(chan bool, 1)
	stopWorkerChannel = make(chan bool, 1)

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	//init job service and stores
	serviceConfig := job.ServiceConfig{
		JobChannel:        jobChannel,
		RequestCount:      requestCount,
		DispatcherChannel: dispatcherChannel,
	}
	initStores(serviceContext, &serviceConfig, logger)
	logger.Info("Starting job service")
	service := job.InitJobService(serviceConfig)

	studyService := study.NewService(study.Stores{
		Notes:   service.NoteStore,
		Decks:   service.DeckStore,
		Objects: service.ObjectStore,
	}, study.NewPipeline(pipelineSettings))

	handlers.InitJobHandler(service)

	//init worker pool
	worker.InitServices(service, studyService)
	worker.InitWorkerPool(stopWorkerChannel, &workerWaitGroup)

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		WorkerStop:       stopWorkerChannel,
		Group:            &workerWaitGroup,
		CloseServices:    closeExternalServices,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(listenAddr)

	<-stopExecution
	logger.Info("Server stopped")
}

// initStores wires redis and minio, falling back to in-memory stores when they are offline.
func initStores(ctx context.Context, cfg *job.ServiceConfig, logger *logger_i.Logger) {
	jobStore := store.GetRedisJobStore(ctx)
	noteStore := store.GetRedisNoteStore(ctx)
	deckStore := store.GetRedisDeckStore(ctx)
	classStore := store.GetRedisClassStore(ctx)

	if jobStore == nil || noteStore == nil || deckStore == nil || classStore == nil {
		if !config.FALLBACK_REDIS_TO_INTERNALSTORE {
			logger.Error("Redis stores are offline")
			os.Exit(1)
		}
		logger.Error("Redis stores are offline, using in-memory stores")
		cfg.JobStore = store.InitInMemoryJobStore()
		cfg.NoteStore = store.InitInMemoryNoteStore()
		cfg.DeckStore = store.InitInMemoryDeckStore()
		cfg.ClassStore = store.InitInMemoryClassStore()
	} else {
		cfg.JobStore = jobStore
		cfg.NoteStore = noteStore
		cfg.DeckStore = deckStore
		cfg.ClassStore = classStore
	}

	minioStore, err := objectStore.GetMinioStore(ctx)
	if err != nil {
		logger.Error("Object storage is offline, uploads are kept in memory", "err", err)
		cfg.ObjectStore = objectStore.InitInMemoryObjectStore(config.MinioBucket)
		return
	}
	cfg.ObjectStore = minioStore
}
