package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/casaluz/website/handler"
	"github.com/casaluz/website/locales"
	"github.com/casaluz/website/migrations"
	"github.com/casaluz/website/modules/auth"
	"github.com/casaluz/website/modules/pages"
	"github.com/casaluz/website/modules/reservations"
	"github.com/casaluz/website/pkg/clientip"
	"github.com/casaluz/website/pkg/config"
	"github.com/casaluz/website/pkg/cookie"
	"github.com/casaluz/website/pkg/email"
	"github.com/casaluz/website/pkg/httpserver"
	"github.com/casaluz/website/pkg/i18n"
	"github.com/casaluz/website/pkg/logger"
	"github.com/casaluz/website/pkg/pg"
	"github.com/casaluz/website/pkg/ratelimiter"
	"github.com/casaluz/website/pkg/redis"
	"github.com/casaluz/website/pkg/session"
	"github.com/casaluz/website/static"
	"github.com/casaluz/website/views"
)

type appConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`

	// SessionStore selects the session backend: "pg", "redis" or "memory".
	SessionStore string `env:"SESSION_STORE" envDefault:"pg"`

	// LangCookie holds an explicit language choice, winning over
	// Accept-Language negotiation.
	LangCookie string `env:"LANG_COOKIE_NAME" envDefault:"lang"`

	HTTP    httpserver.Config
	PG      pg.Config
	Redis   redis.Config
	Cookie  cookie.Config
	Session session.Config
	Email   email.Config
	Auth    auth.Config

	// AuthRateLimit throttles credential submissions per client IP.
	AuthRateLimit ratelimiter.Config
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithEnvironment(cfg.Env, "casaluz-website"),
		logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
			if id := chimw.GetReqID(ctx); id != "" {
				return slog.String("request_id", id), true
			}
			return slog.Attr{}, false
		}),
	)

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	pool, err := pg.Connect(ctx, cfg.PG)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pg.Migrate(ctx, pool, migrations.FS, ".", cfg.PG, log); err != nil {
		return err
	}

	cookies, err := cookie.NewFromConfig(cfg.Cookie)
	if err != nil {
		return err
	}

	healthchecks := []func(context.Context) error{pg.Healthcheck(pool)}

	var store session.Store
	switch cfg.SessionStore {
	case "redis":
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer client.Close()
		store = session.NewRedisStore(client)
		healthchecks = append(healthchecks, redis.Healthcheck(client))
	case "memory":
		store = session.NewMemoryStore(cfg.Session.CleanupInterval)
	default:
		store = session.NewPGStore(pool)
	}

	sessions := session.NewFromConfig(cfg.Session,
		session.WithStore(store),
		session.WithTransport(session.NewCookieTransport(cookies, cfg.Session.CookieName, cfg.Cookie.Secure)),
	)

	tr, err := i18n.NewTranslator(ctx, i18n.NewFSAdapter(locales.FS, "."))
	if err != nil {
		return err
	}

	mailer, err := email.NewFromConfig(cfg.Email)
	if err != nil {
		return err
	}

	v := views.New(tr)

	errorHandler := handler.NewErrorHandler(log, handler.ErrorHandlerConfig{
		ErrorPage:   v.ErrorPage,
		ErrorToast:  v.ErrorToast,
		ToastTarget: "#toast-container",
		LocaleFromContext: func(ctx handler.Context) string {
			return i18n.GetLocale(ctx)
		},
	})

	authModule := auth.NewModule(
		auth.NewService(cfg.Auth, auth.NewPGStorage(pool), mailer, tr, log),
		sessions, v.Auth, errorHandler,
	)
	reservationsModule := reservations.NewModule(
		reservations.NewService(reservations.NewPGStorage(pool)),
		v.Reservations, errorHandler,
	)
	pagesModule := pages.NewModule(pages.NewPGStorage(pool), v.Pages, log, errorHandler)

	limiterStore := ratelimiter.NewMemoryStore()
	defer limiterStore.Close()
	authLimiter, err := ratelimiter.NewBucket(limiterStore, cfg.AuthRateLimit)
	if err != nil {
		return err
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(clientip.Middleware)

	r.Get("/healthz", httpserver.HealthCheckHandler(log, healthchecks...))
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(static.FS)))

	r.Group(func(r chi.Router) {
		r.Use(i18n.Middleware(i18n.MiddlewareConfig{
			Supported:  tr.SupportedLanguages(),
			Default:    tr.DefaultLang(),
			CookieName: cfg.LangCookie,
			Bypass:     []string{"/healthz", "/static"},
		}))
		r.Use(sessions.Middleware)
		r.Use(auth.Guard(auth.GuardConfig{
			SignInPath: "/signin",
			Protected:  []string{"/reservations"},
		}))

		r.Mount("/reservations", reservationsModule.Handle())

		authRoutes := authModule.Handle()
		r.Handle("/signout", authRoutes)
		r.Handle("/verify-email", authRoutes)

		// Credential submissions sit behind a per-IP token bucket; page
		// views stay unmetered.
		r.Group(func(r chi.Router) {
			limit := ratelimiter.Middleware(authLimiter, ratelimiter.ByClientIP())
			r.Use(func(next http.Handler) http.Handler {
				limited := limit(next)
				return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
					if req.Method == http.MethodPost {
						limited.ServeHTTP(w, req)
						return
					}
					next.ServeHTTP(w, req)
				})
			})
			r.Handle("/signup", authRoutes)
			r.Handle("/signin", authRoutes)
		})

		r.Mount("/", pagesModule.Handle())
	})

	log.InfoContext(ctx, "starting server",
		slog.String("addr", cfg.HTTP.Addr),
		slog.String("env", cfg.Env),
		slog.String("session_store", cfg.SessionStore),
	)

	return httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log)).Run(ctx, http.Handler(r))
}
