package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/metrics"
	"calendar-assistant/pkg/goauth"
	"calendar-assistant/pkg/log"
	"calendar-assistant/pkg/openai"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Shared infrastructure
	postgresDB *sql.DB
	oauth      *goauth.Client
	llm        openai.IOpenAI
	metrics    *metrics.Collector

	// Session and assistant settings
	sessionSecret            string
	assistantRateLimitPerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	PostgresDB *sql.DB
	OAuth      *goauth.Client
	LLM        openai.IOpenAI

	SessionSecret            string
	AssistantRateLimitPerMin int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                        logger,
		gin:                      gin.Default(),
		port:                     cfg.Port,
		mode:                     cfg.Mode,
		environment:              cfg.Environment,
		postgresDB:               cfg.PostgresDB,
		oauth:                    cfg.OAuth,
		llm:                      cfg.LLM,
		metrics:                  metrics.NewCollector(),
		sessionSecret:            cfg.SessionSecret,
		assistantRateLimitPerMin: cfg.AssistantRateLimitPerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres connection is required")
	}
	if srv.oauth == nil {
		return errors.New("oauth client is required")
	}
	if srv.sessionSecret == "" {
		return errors.New("session secret is required")
	}
	return nil
}
