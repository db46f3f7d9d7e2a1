package httpx

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/aussiebroadwan/todo/pkg/slogx"
)

// InternalErrorMessage is the body message for any unexpected failure.
const InternalErrorMessage = "Something went wrong!!"

// Recover converts a panic in a handler into a logged 500 envelope.
// http.ErrAbortHandler is re-raised so the server can drop the connection.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(v)
			}

			slogx.FromContext(r.Context()).Error("handler panicked",
				"panic", v,
				"stack", string(debug.Stack()),
			)
			Fail(w, http.StatusInternalServerError, InternalErrorMessage)
		}()
		next.ServeHTTP(w, r)
	})
}
