package middleware

import (
	"net/http"
	"strconv"

	"github.com/akolanti/StudyAPI/internal/handlers"
	"github.com/akolanti/StudyAPI/internal/metrics"
	"github.com/akolanti/StudyAPI/pkg/logger_i"
)

type requestResponseStruct struct {
	writer     http.ResponseWriter
	req        *http.Request
	badRequest failureStruct
	logger     *logger_i.Logger
}

type failureStruct struct {
	isBadRequest bool
	httpCode     int
	errorMessage string
	id           string
}

var GetHandler = Wrap(handlers.GetHandler)
var GetStatusHandler = Wrap(handlers.GetStatusHandler)

var PostNoteUploadHandler = Wrap(handlers.PostNoteUploadHandler)
var GetNoteHandler = Wrap(handlers.GetNoteHandler)
var DeleteNoteHandler = Wrap(handlers.DeleteNoteHandler)

var PostDeckHandler = Wrap(handlers.PostDeckHandler)
var GetDeckHandler = Wrap(handlers.GetDeckHandler)
var PostGenerateDeckHandler = Wrap(handlers.PostGenerateDeckHandler)

var PostJoinClassHandler = Wrap(handlers.PostJoinClassHandler)

func Wrap(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &metrics.HttpStatusRecorder{ResponseWriter: w, Status: 200} //metrics
		re := processRequest(requestResponseStruct{req: r, writer: rec})

		if !handleBadRequest(re) {
			metrics.HttpRequestsTotal.WithLabelValues(r.URL.Path, strconv.Itoa(rec.Status)).Inc() //metrics
			return
		}
		next(rec, re.req)

		metrics.HttpRequestsTotal.WithLabelValues(r.URL.Path, strconv.Itoa(rec.Status)).Inc() //metrics
	}
}

// processRequest runs trace, auth and rate limit in order and stops at the first failure.
// The caller writes the failure.
func processRequest(re requestResponseStruct) requestResponseStruct {
	re.logger = logger_i.NewLogger("middleware")
	re.logger.Info("New request received")
	for _, step := range []func(requestResponseStruct) requestResponseStruct{injectTrace, authenticate, rateLimiter} {
		re = step(re)
		if re.badRequest.isBadRequest {
			return re
		}
	}
	return re
}
