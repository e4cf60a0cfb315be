package http

import (
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"condovia/config"
	"condovia/shared/constant"
	"condovia/transport/http/middleware"
	"condovia/transport/http/response"
	"condovia/transport/http/router"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"
)

type ServerState int

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

type HTTP struct {
	Config        *config.Config
	Router        router.Router
	State         ServerState
	appMiddleware middleware.AppMiddleware
	authRole      middleware.AuthRole
	mux           *chi.Mux
}

func New(cfg *config.Config, r router.Router, appMiddleware middleware.AppMiddleware, authRole middleware.AuthRole) *HTTP {
	return &HTTP{
		Config:        cfg,
		Router:        r,
		appMiddleware: appMiddleware,
		authRole:      authRole,
	}
}

func (h *HTTP) Serve() {
	h.setup()

	addr := net.JoinHostPort("0.0.0.0", h.Config.Server.Port)

	log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

	if err := http.ListenAndServe(addr, h.mux); err != nil {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

// Handler exposes the configured handler for serverless adapters
func (h *HTTP) Handler() http.Handler {
	h.setup()

	return h.mux
}

func (h *HTTP) setup() {
	if h.mux != nil {
		return
	}

	h.setupRoutes()
	h.setupGracefulShutdown()
	h.State = ServerStateReady
}

func (h *HTTP) setupRoutes() {
	mux := chi.NewRouter()

	if h.Config.App.CORS.Enable {
		mux.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.Config.App.CORS.AllowedOrigins,
			AllowedMethods:   h.Config.App.CORS.AllowedMethods,
			AllowedHeaders:   h.Config.App.CORS.AllowedHeaders,
			AllowCredentials: h.Config.App.CORS.AllowCredentials,
			MaxAge:           h.Config.App.CORS.MaxAgeSeconds,
		}))
	}

	mux.Use(h.appMiddleware.Tracing)
	mux.Use(h.appMiddleware.RateLimit())

	mux.Get("/health", h.HealthCheck)

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		mux.Get("/swagger/*", httpSwagger.Handler())

		log.Info().Msg("Swagger UI enabled at /swagger/index.html")
	}

	mux.Group(func(protected chi.Router) {
		protected.Use(h.authRole.Auth)
		protected.Use(h.authRole.RBAC)

		h.Router.SetupRoutes(protected)
	})

	h.mux = mux
}

// HealthCheck performs a health check on the server.
//
//	@Summary		Health Check
//	@Description	Health Check Endpoint
//	@Tags			health
//	@Produce		json
//	@Success		200
//	@Failure		503
//	@Router			/health [get]
func (h *HTTP) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if h.State != ServerStateReady {
		response.WithPreparingShutdown(w)

		return
	}

	response.WithMessage(w, http.StatusOK, "OK")
}

func (h *HTTP) setupGracefulShutdown() {
	serverStateCh := make(chan os.Signal, 1)

	signal.Notify(serverStateCh, os.Interrupt, syscall.SIGTERM)

	go h.respondToSigterm(serverStateCh)
}

func (h *HTTP) respondToSigterm(done chan os.Signal) {
	<-done

	defer os.Exit(0)

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")

		return
	}

	shutdownConfig := h.Config.Server.Shutdown

	log.Info().Msg("Received SIGTERM.")
	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	h.State = ServerStateInGracePeriod

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.State = ServerStateInCleanupPeriod

	time.Sleep(time.Duration(shutdownConfig.CleanupPeriodSeconds) * time.Second)

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}
