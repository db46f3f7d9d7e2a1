package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareLabelsByPattern(t *testing.T) {
	m := New()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/todo/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	h := m.Middleware(mux)

	for _, id := range []string{"1", "2", "3"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/todo/"+id, nil))
	}
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	require.Equal(t, 3.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "GET /api/todo/{id}", "404")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "unmatched", "404")))
	require.Equal(t, 0.0, testutil.ToFloat64(m.inFlight))
}

func TestBusinessCounters(t *testing.T) {
	m := New()

	m.RecordRegistration()
	m.RecordLogin(true)
	m.RecordLogin(false)
	m.RecordLogin(false)
	m.RecordTodoOp("create")
	m.SetDatabaseUp(true)

	require.Equal(t, 1.0, testutil.ToFloat64(m.registrations))
	require.Equal(t, 1.0, testutil.ToFloat64(m.logins.WithLabelValues("success")))
	require.Equal(t, 2.0, testutil.ToFloat64(m.logins.WithLabelValues("failure")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.todoOps.WithLabelValues("create")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.dbUp))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, strings.Contains(rec.Body.String(), "todo_registrations_total 1"))
}
