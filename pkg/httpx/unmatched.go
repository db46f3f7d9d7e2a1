package httpx

import "net/http"

// EnvelopeUnmatched serves mux, replacing the plain-text 404 and 405 bodies
// it writes for unrouted requests with failed envelopes. The Allow header
// of a 405 is kept.
func EnvelopeUnmatched(mux *http.ServeMux) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, pattern := mux.Handler(r)
		if pattern != "" {
			mux.ServeHTTP(w, r)
			return
		}

		capture := &headerCapture{header: http.Header{}, code: http.StatusNotFound}
		h.ServeHTTP(capture, r)

		if capture.code == http.StatusMethodNotAllowed {
			w.Header().Set("Allow", capture.header.Get("Allow"))
			Fail(w, http.StatusMethodNotAllowed, "Method not allowed.")
			return
		}
		Fail(w, http.StatusNotFound, "Resource not found.")
	})
}

// headerCapture records what the mux's fallback handler would have sent and
// discards the body.
type headerCapture struct {
	header http.Header
	code   int
}

func (c *headerCapture) Header() http.Header         { return c.header }
func (c *headerCapture) Write(b []byte) (int, error) { return len(b), nil }
func (c *headerCapture) WriteHeader(code int)        { c.code = code }
