package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/internal/todo/metrics"
	"github.com/aussiebroadwan/todo/internal/todo/service"
	"github.com/aussiebroadwan/todo/internal/todo/store"
	"github.com/aussiebroadwan/todo/pkg/httpx"
	"github.com/aussiebroadwan/todo/pkg/jwtx"
	"github.com/aussiebroadwan/todo/pkg/slogx"

	_ "github.com/aussiebroadwan/todo/api/todo" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux *http.ServeMux

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	UserService *service.UserService
	TodoService *service.TodoService
	Metrics     *metrics.Metrics

	handler http.Handler
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	return &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}
}

// ApplyRoutes registers every endpoint and builds the global middleware
// chain. Services and Metrics must be set first.
func (r *Router) ApplyRoutes() {
	if r.Metrics == nil {
		r.Metrics = metrics.New()
	}

	r.registerUsers()
	r.registerTodos()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())

	// metrics sits inside the logger so it can read the pattern the mux
	// matched; panics are recovered before metrics sees the status
	routed := httpx.Chain(httpx.EnvelopeUnmatched(r.Mux), httpx.Recover)
	r.handler = httpx.Chain(r.Metrics.Middleware(routed),
		slogx.HTTPMiddleware(r.logger),
	)
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Todo API
//	@version		0.1.0
//	@description	Personal todo lists with user registration and role based access.
//	@description	Administrators see and manage every todo; everyone else only their own.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/todo
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host		localhost:8080
//	@BasePath	/
//
//	@schemes	http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				HS256 access token from /api/users/login. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.handler.ServeHTTP(w, req)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService, Metrics: r.Metrics}

	// public, limited by address to slow down credential stuffing
	r.Mux.Handle("POST /api/users/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.AuthLimit),
		),
	)
	r.Mux.Handle("POST /api/users/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.AuthLimit),
		),
	)

	r.Mux.Handle("POST /api/users/assign-role",
		httpx.Chain(http.HandlerFunc(h.HandleAssignRole),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyRole(domain.RoleAdmin),
			httpx.RateLimitByUser(httpx.APILimit),
		),
	)
}

func (r *Router) registerTodos() {
	h := &TodoHandler{TodoService: r.TodoService, Metrics: r.Metrics}

	secured := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.APILimit),
		)
	}

	r.Mux.Handle("GET /api/todo", secured(h.HandleList))
	r.Mux.Handle("GET /api/todo/{id}", secured(h.HandleGet))
	r.Mux.Handle("POST /api/todo", secured(h.HandleCreate))
	r.Mux.Handle("PUT /api/todo/{id}", secured(h.HandleUpdate))
	r.Mux.Handle("DELETE /api/todo/{id}", secured(h.HandleDelete))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.Metrics))
	r.Mux.Handle("GET /metrics", r.Metrics.Handler())
}
