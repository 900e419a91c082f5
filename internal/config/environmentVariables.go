package config

import (
	"log/slog"
	"time"
)

const (
	IS_PROD                         = false
	LOG_LEVEL_PROD                  = slog.LevelInfo
	FALLBACK_REDIS_TO_INTERNALSTORE = true //if redis init fails, it falls back to an internals in-memory store
	TRACE_ID_KEY                    = "traceId"
	USER_ID_KEY                     = "userId"
	RATE_LIMIT_PER_SECOND           = 2
	BURST_RATE_LIMIT_PER_SECOND     = 5
	MaxTrackedIPs                   = 10_000
	IdleIPLimiterTimeout            = 10 * time.Minute

	RequestsPerNewWorkerCount int64 = 10
	MaxWorkerCount            int64 = 10
	MinWorkerCount            int64 = 1
	IdleWorkerTimeout               = 1 * time.Minute
	JobTimeout                      = 60 * time.Second

	//serverTimeouts
	ReadTimeout            = 15 * time.Second
	WriteTimeout           = 15 * time.Second
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//server listening port
	ServerListenAddr = ":3000"

	//job requests buffer limit
	BufferLimit = 100

	//uploads
	MaxUploadSize       = 32 << 20 //32mb
	UploadFormFile      = "file"
	DefaultSessionTitle = "PDF Upload"
	MaxSessionTitleLen  = 120
	MaxNoteTitleLen     = 180
	DefaultDeckCards    = 20

	//pipeline defaults - can be overridden by the pipeline yaml
	DefaultMaxCards          = 60
	DefaultSummaryPerSection = 4
	DefaultSummaryFallback   = 8
	DefaultMaxTextRunes      = 400_000
	DefaultPageTimeout       = 10 * time.Second

	//object storage
	DefaultBucket       = "notes-pdfs"
	MinioConnectTimeout = 5 * time.Second

	//http pooling for the object store client
	MaxIdleConns          = 100
	MaxIdleConnsPerHost   = 20
	IdleConnTimeout       = 90 * time.Second
	DialTimeout           = 5 * time.Second
	DialKeepAlive         = 30 * time.Second
	ResponseHeaderTimeout = 30 * time.Second

	//redis
	redisHost = "127.0.0.1"
	redisPort = "6379"
	RedisAddr = redisHost + ":" + redisPort

	//redis has 16 DB we can use
	RedisJobStore   = 0
	RedisNoteStore  = 1
	RedisDeckStore  = 2
	RedisClassStore = 3

	//redis timeouts
	RedisJobStoreTTL = 24 * time.Hour
	RedisIOTimeout   = 30 * time.Second
	RedisPingTimeout = 3 * time.Second
)
