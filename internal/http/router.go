package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"

	"github.com/conectavoluntarios/api/internal/config"
	httpmiddleware "github.com/conectavoluntarios/api/internal/http/middleware"
	"github.com/conectavoluntarios/api/internal/repo"
	"github.com/conectavoluntarios/api/internal/service"
)

// Database é o subconjunto do pgxpool usado por health e diagnóstico.
type Database interface {
	Ping(ctx context.Context) error
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Deps reúne o que o roteador precisa para montar os handlers.
type Deps struct {
	Config        *config.Config
	DB            Database
	Redis         *redis.Client
	Auth          *service.AuthService
	Oportunidades *service.OportunidadeService
	Inscricoes    *service.InscricaoService
	Voluntarios   *service.VoluntarioService
}

type Handler struct {
	cfg           *config.Config
	db            Database
	redis         *redis.Client
	authService   *service.AuthService
	oportunidades *service.OportunidadeService
	inscricoes    *service.InscricaoService
	voluntarios   *service.VoluntarioService
	metrics       *httpmiddleware.Metrics
	publicLimiter *httpmiddleware.RateLimiter
	authLimiter   *httpmiddleware.RateLimiter
}

// NewRouter devolve roteador configurado.
func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	h := &Handler{
		cfg:           cfg,
		db:            deps.DB,
		redis:         deps.Redis,
		authService:   deps.Auth,
		oportunidades: deps.Oportunidades,
		inscricoes:    deps.Inscricoes,
		voluntarios:   deps.Voluntarios,
		metrics:       httpmiddleware.NewMetrics(),
		publicLimiter: httpmiddleware.NewRateLimiter(cfg.RateLimitPublic.RequestsPerSecond, cfg.RateLimitPublic.Burst),
		authLimiter:   httpmiddleware.NewRateLimiter(cfg.RateLimitAuth.RequestsPerSecond, cfg.RateLimitAuth.Burst),
	}

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(httpmiddleware.Logging)
	r.Use(httpmiddleware.Recover)
	r.Use(h.metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Requested-With", "X-Debug-Token"},
		AllowCredentials: !allowsAnyOrigin(cfg.AllowOrigins),
		MaxAge:           300,
	}))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Method(http.MethodGet, "/metrics", h.metrics.Handler())

	r.Group(func(public chi.Router) {
		public.Use(httpmiddleware.IPRateLimit(h.publicLimiter))

		public.Route("/auth", func(auth chi.Router) {
			auth.Post("/signup", h.Signup)
			auth.Post("/login", h.Login)
		})

		public.Get("/oportunidades", h.ListOportunidades)
		public.Get("/oportunidades/{id}", h.GetOportunidade)

		public.Get("/ongs", h.ListOngs)
		public.Get("/ongs/{id}/inscricoes", h.ListInscricoesByOng)

		public.Route("/inscricoes", func(i chi.Router) {
			i.Get("/", h.ListInscricoes)
			i.Post("/", h.SubmitInscricao)
			i.Patch("/{id}", h.UpdateInscricaoStatus)
		})

		public.Route("/voluntarios", func(v chi.Router) {
			v.Get("/", h.ListVoluntarios)
			v.Get("/{id}", h.GetVoluntario)
			v.Get("/{id}/inscricoes", h.ListInscricoesByVoluntario)
		})

		if cfg.DebugToken != "" {
			public.With(h.requireDebugToken).Get("/_debug/db", h.DebugDB)
		}
	})

	r.Group(func(private chi.Router) {
		private.Use(httpmiddleware.Auth(h.authService))
		private.Use(httpmiddleware.UserRateLimit(h.authLimiter))

		private.Get("/me", h.Me)
		private.With(httpmiddleware.RequireRole(repo.RoleNGO)).Post("/ongs/oportunidades", h.CreateOportunidade)
	})

	return r
}

func allowsAnyOrigin(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}

// Health responde status simples.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready valida conexões com Postgres e, quando configurado, Redis.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	var dbErr, redisErr error
	if h.db != nil {
		dbErr = h.db.Ping(ctx)
	}
	if h.redis != nil {
		redisErr = h.redis.Ping(ctx).Err()
	}

	if dbErr != nil || redisErr != nil {
		WriteError(w, http.StatusServiceUnavailable, "INTERNAL", "dependências indisponíveis", map[string]any{
			"db":    dbErr != nil,
			"redis": redisErr != nil,
		})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"ready": true})
}
