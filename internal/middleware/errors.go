package middleware

import (
	"errors"
	"net/http"

	"github.com/fekuna/omnipos-commerce/pkg/apperror"
	"github.com/fekuna/omnipos-commerce/pkg/logger"
	"github.com/fekuna/omnipos-commerce/pkg/response"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// HandlerFunc is an HTTP handler that reports failures by returning them.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// ErrorHandler owns the single path from an error to an HTTP response.
type ErrorHandler struct {
	logger logger.ZapLogger
}

func NewErrorHandler(log logger.ZapLogger) *ErrorHandler {
	return &ErrorHandler{logger: log}
}

// Wrap adapts h to http.HandlerFunc, sending returned errors and panics to WriteError.
func (e *ErrorHandler) Wrap(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				e.WriteError(w, r, apperror.Internal(panicError(rec)))
			}
		}()
		if err := h(w, r); err != nil {
			e.WriteError(w, r, err)
		}
	}
}

func (e *ErrorHandler) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	reqID := chimw.GetReqID(r.Context())
	translated := apperror.Translate(err)

	var appErr *apperror.AppError
	if !errors.As(translated, &appErr) {
		e.logger.Error("unhandled error",
			zap.String("request_id", reqID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		appErr = apperror.Internal(err)
	} else if appErr.StatusCode >= http.StatusInternalServerError {
		e.logger.Error("request failed",
			zap.String("request_id", reqID),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	} else {
		e.logger.Debug("request rejected",
			zap.String("request_id", reqID),
			zap.String("path", r.URL.Path),
			zap.String("kind", string(appErr.Kind)),
			zap.String("message", appErr.Message),
		)
	}

	response.Error(w, appErr.StatusCode, appErr.Message, string(appErr.Kind))
}

// NotFound and MethodNotAllowed keep the envelope for unmatched routes.
func (e *ErrorHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	e.WriteError(w, r, apperror.NotFound("Route "+r.Method+" "+r.URL.Path+" not found"))
}

func (e *ErrorHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	e.WriteError(w, r, apperror.New(http.StatusMethodNotAllowed, "Method not allowed", apperror.KindBadRequest))
}
