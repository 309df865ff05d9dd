package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/drgilson/gascrm-backend/api/controllers"
	"github.com/drgilson/gascrm-backend/api/middleware"
	"github.com/drgilson/gascrm-backend/internal/auth"
	"github.com/drgilson/gascrm-backend/internal/customers"
	"github.com/drgilson/gascrm-backend/internal/messages"
	"github.com/drgilson/gascrm-backend/internal/setup"
	"github.com/drgilson/gascrm-backend/internal/stats"
	"github.com/drgilson/gascrm-backend/pkg/auth/session"
	"github.com/drgilson/gascrm-backend/pkg/config"
	"github.com/drgilson/gascrm-backend/pkg/db"
	"github.com/drgilson/gascrm-backend/pkg/logger"
	"github.com/drgilson/gascrm-backend/pkg/metrics"
	redisclient "github.com/drgilson/gascrm-backend/pkg/redis"
)

// RouterParams bundles everything the route table needs.
type RouterParams struct {
	Config      *config.Config
	Logger      *logger.Logger
	DB          *db.Client
	Redis       *redisclient.Client
	Sessions    session.Checker
	HTTPMetrics *metrics.HTTPMetrics
	Registry    *prometheus.Registry

	SetupService     setup.Service
	AuthService      auth.Service
	CustomersService customers.Service
	MessagesService  messages.Service
	StatsService     stats.Service
}

// NewRouter assembles the route table. Everything under the session group
// requires a valid session cookie; the bootstrap, login and init endpoints
// stay public.
func NewRouter(p RouterParams) http.Handler {
	cfg := p.Config
	logg := p.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(p.HTTPMetrics),
		middleware.CORS(cfg.App.CORSOrigins),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)

	r.Get("/", controllers.Root())

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive())
		r.Get("/ready", controllers.HealthReady(map[string]db.Pinger{
			"database": p.DB,
			"redis":    p.Redis,
		}, logg))
	})

	if p.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/init-db", controllers.InitDB(p.DB, logg))
		r.Post("/init-db", controllers.InitDB(p.DB, logg))

		r.Route("/setup", func(r chi.Router) {
			r.Get("/verificar", controllers.SetupVerify(p.SetupService))
			r.Post("/criar-admin", controllers.SetupCreateAdmin(p.SetupService, cfg.Session, logg))
		})

		r.Route("/auth", func(r chi.Router) {
			r.With(middleware.AuthRateLimit(loginPolicy, p.Redis, logg)).
				Post("/login", controllers.AuthLogin(p.AuthService, cfg.Session, logg))

			r.Group(func(r chi.Router) {
				r.Use(middleware.Session(cfg.Session, p.Sessions, logg))
				r.Post("/logout", controllers.AuthLogout(p.AuthService, cfg.Session, logg))
				r.Get("/usuario-atual", controllers.AuthCurrentUser(p.AuthService, logg))
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Session(cfg.Session, p.Sessions, logg))

			r.Route("/clientes", func(r chi.Router) {
				r.Get("/", controllers.CustomersList(p.CustomersService, logg))
				r.Post("/", controllers.CustomersCreate(p.CustomersService, logg))
				r.Put("/{id}", controllers.CustomersUpdate(p.CustomersService, logg))
				r.Delete("/{id}", controllers.CustomersDelete(p.CustomersService, logg))
			})

			r.Route("/mensagens", func(r chi.Router) {
				r.Post("/enviar", controllers.MessagesSend(p.MessagesService, logg))
				r.Get("/historico", controllers.MessagesHistory(p.MessagesService, logg))
			})

			r.Get("/estatisticas", controllers.StatsSummary(p.StatsService, logg))
		})
	})

	return r
}
