package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/fekuna/omnipos-commerce/pkg/apperror"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func panicError(rec any) error {
	if err, ok := rec.(error); ok {
		return fmt.Errorf("panic: %w", err)
	}
	return fmt.Errorf("panic: %v", rec)
}

// Recover catches panics from handlers that are not wrapped by Wrap.
func (e *ErrorHandler) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				e.logger.Error("panic recovered",
					zap.String("request_id", chimw.GetReqID(r.Context())),
					zap.Any("panic", rec),
					zap.ByteString("stack", debug.Stack()),
				)
				e.WriteError(w, r, apperror.Internal(panicError(rec)))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
