package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/metrics"
	"github.com/aussiebroadwan/todo/internal/todo/store"
	"github.com/aussiebroadwan/todo/pkg/httpx"
	"github.com/aussiebroadwan/todo/pkg/slogx"
	"github.com/aussiebroadwan/todo/pkg/todosdk"
)

// LivezHandler godoc
//
//	@Summary		Liveness check
//	@Description	Returns 200 while the process is running.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	todosdk.Response[todosdk.HealthResponse]
//	@Router			/livez [get]
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.OK(w, http.StatusOK, todosdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).Round(time.Second).String(),
			Version: version,
		}, "alive")
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness check
//	@Description	Returns 200 when the database answers a ping, 503 otherwise.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	todosdk.Response[todosdk.HealthResponse]
//	@Failure		503	{object}	todosdk.Response[todosdk.HealthResponse]
//	@Router			/readyz [get]
func ReadyzHandler(startTime time.Time, version string, st store.Store, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := todosdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).Round(time.Second).String(),
			Version: version,
			Checks:  map[string]string{"database": "ok"},
		}

		if err := st.Ping(r.Context()); err != nil {
			slogx.FromContext(r.Context()).Error("readiness: database ping failed", "error", err)
			resp.Status = "degraded"
			resp.Checks["database"] = "unreachable"
			m.SetDatabaseUp(false)
			httpx.WriteJSON(w, http.StatusServiceUnavailable, httpx.Envelope{Status: false, Data: resp, Message: "not ready"})
			return
		}

		m.SetDatabaseUp(true)
		httpx.OK(w, http.StatusOK, resp, "ready")
	}
}
