package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"

	"github.com/seu-repo/medsys/internal/adapter/http/fiber/handlers"
	"github.com/seu-repo/medsys/internal/adapter/http/fiber/middleware"
	"github.com/seu-repo/medsys/internal/adapter/http/fiber/views"
	"github.com/seu-repo/medsys/internal/ports"
	"github.com/seu-repo/medsys/internal/service/health"
	"github.com/seu-repo/medsys/pkg/config"
)

// Deps are the collaborators of the web dashboard.
type Deps struct {
	Config  *config.Config
	Service ports.ClinicService
	Health  *health.Service
	Log     *zap.Logger

	// Sessions overrides the cookie session store built from Config.Session.
	Sessions *session.Store
}

// New builds the dashboard application with every route registered.
func New(d Deps) *fiber.App {
	cfg := d.Config

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		ServerHeader:          cfg.App.Name,
		DisableStartupMessage: true,
		Views:                 views.NewEngine(),
		ReadTimeout:           cfg.HTTP.ReadTimeout,
		WriteTimeout:          cfg.HTTP.WriteTimeout,
		IdleTimeout:           cfg.HTTP.IdleTimeout,
		ErrorHandler:          middleware.ErrorHandler(d.Log),
	})

	// Global Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(middleware.RequestLogger(d.Log))

	// Health and metrics stay outside the circuit breaker so probes keep answering.
	if d.Health != nil {
		health.NewFiberHandler(d.Health).RegisterRoutes(app)
	}
	if cfg.Prometheus.Enabled {
		metrics := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
		app.Get(cfg.Prometheus.Path, func(c *fiber.Ctx) error {
			metrics(c.Context())
			return nil
		})
	}

	pages := app.Group("")
	if cfg.CircuitBreaker.Enabled {
		pages.Use(middleware.CircuitBreaker(cfg.CircuitBreaker, d.Log))
	}

	sessions := d.Sessions
	if sessions == nil {
		sessions = session.New(session.Config{
			Expiration:     cfg.Session.Expiration,
			KeyLookup:      "cookie:" + cfg.Session.CookieName,
			CookieSecure:   cfg.Session.CookieSecure,
			CookieHTTPOnly: true,
			CookieSameSite: "Lax",
		})
	}
	flashes := handlers.NewFlashes(sessions, d.Log)

	dashboard := handlers.NewDashboardHandler(d.Service, flashes, d.Log)
	listing := handlers.NewListingHandler(d.Service, flashes, d.Log)
	registration := handlers.NewRegistrationHandler(d.Service, flashes, d.Log)

	pages.Get("/", dashboard.Index)
	pages.Get("/medicos", listing.Doctors)
	pages.Get("/pacientes", listing.Patients)
	pages.Get("/consultas", listing.Appointments)
	pages.Get("/cadastro", registration.Form)
	pages.Post("/cadastro", registration.Submit)

	return app
}
