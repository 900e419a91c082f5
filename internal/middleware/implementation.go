package middleware

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/akolanti/StudyAPI/internal/adapter/utils"
	"github.com/akolanti/StudyAPI/internal/config"
	"github.com/akolanti/StudyAPI/internal/handlers"
	"github.com/golang-jwt/jwt/v5"
)

const (
	bypassUserHeader = "X-User-Id"
	bypassUser       = "dev-user"
)

var (
	errNoSecret    = errors.New("jwt secret is not configured")
	errNoBearer    = errors.New("no bearer token")
	errNoSubject   = errors.New("token has no subject")
	validAlgorithm = jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})
)

func injectTrace(re requestResponseStruct) requestResponseStruct {
	re.logger.Debug("Injecting trace middleware")
	req := re.req
	if req == nil {
		//this is a bad request
		re.badRequest.httpCode = http.StatusBadRequest
		re.badRequest.errorMessage = "request is empty"
		re.badRequest.isBadRequest = true
		return re
	}
	trace := req.Header.Get("X-Trace-Id")
	if trace == "" {
		trace = utils.GetNewUUID()
	}
	re.logger = re.logger.With("traceId", trace)
	ctx := context.WithValue(req.Context(), config.TRACE_ID_KEY, trace)
	req.Header.Set(`X-Trace-Id`, trace)
	re.req = req.WithContext(ctx)

	re.logger.Debug("trace middleware injected")
	return re
}

// authenticate resolves the caller and stores its id under config.USER_ID_KEY.
func authenticate(re requestResponseStruct) requestResponseStruct {
	re.logger.Debug("Authenticating request")

	user, err := userFromRequest(re.req)
	if err != nil {
		re.logger.Error("Unauthorized request", "err", err)
		re.badRequest = failureStruct{
			isBadRequest: true,
			httpCode:     http.StatusUnauthorized,
			errorMessage: "Unauthorized",
		}
		return re
	}
	re.logger = re.logger.With("userId", user)
	re.req = re.req.WithContext(context.WithValue(re.req.Context(), config.USER_ID_KEY, user))
	re.logger.Debug("Authorized")
	return re
}

func userFromRequest(req *http.Request) (string, error) {
	if config.AuthBypass {
		if user := strings.TrimSpace(req.Header.Get(bypassUserHeader)); user != "" {
			return user, nil
		}
		return bypassUser, nil
	}
	return ParseBearerToken(req.Header.Get("Authorization"), config.AuthJWTSecret)
}

// ParseBearerToken validates an HS256 bearer token and returns its subject.
func ParseBearerToken(authHeader string, secret string) (string, error) {
	if secret == "" {
		return "", errNoSecret
	}
	raw, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found || strings.TrimSpace(raw) == "" {
		return "", errNoBearer
	}

	token, err := jwt.Parse(strings.TrimSpace(raw), func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, validAlgorithm, jwt.WithExpirationRequired())
	if err != nil {
		return "", err
	}
	subject, err := token.Claims.GetSubject()
	if err != nil {
		return "", err
	}
	if subject == "" {
		return "", errNoSubject
	}
	return subject, nil
}

func rateLimiter(re requestResponseStruct) requestResponseStruct {
	re.logger.Debug("Rate limiter middleware")
	ip, _, err := net.SplitHostPort(re.req.RemoteAddr)
	if err != nil {
		ip = re.req.RemoteAddr
	}

	if !limiterInstance.GetLimiter(ip).Allow() {
		re.logger.Error("Too many requests", "Rate Limiter exceeded", ip)
		re.badRequest = failureStruct{
			isBadRequest: true,
			httpCode:     http.StatusTooManyRequests,
			errorMessage: "Rate limit exceeded",
		}
		return re
	}
	re.logger.Debug("Rate limiter middleware authorized")
	return re
}

func handleBadRequest(re requestResponseStruct) bool {
	if re.badRequest.isBadRequest {
		re.logger.Warn("Bad request", "httpCode", re.badRequest.httpCode, "errorMessage", re.badRequest.errorMessage, "IP", re.req.RemoteAddr)
		handlers.WriteErrorResponse(re.writer, re.badRequest.httpCode, re.badRequest.id, re.badRequest.errorMessage)
		return false
	}
	return true
}
