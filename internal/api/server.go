package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-fuego/fuego"
	"github.com/go-fuego/fuego/option"
)

// Server represents the Fuego API server.
type Server struct {
	fuego   *fuego.Server
	handler *Handler
	port    int
}

// Config holds API server configuration.
type Config struct {
	Port        int
	Title       string
	Description string
	Version     string
}

// NewServer creates a new Fuego API server.
func NewServer(cfg *Config, h *Handler) *Server {
	s := fuego.NewServer(
		fuego.WithAddr(fmt.Sprintf(":%d", cfg.Port)),
		fuego.WithEngineOptions(
			fuego.WithOpenAPIConfig(fuego.OpenAPIConfig{
				PrettyFormatJSON: true,
				JSONFilePath:     "openapi.json",
				SwaggerURL:       "/docs",
				SpecURL:          "/openapi.json",
				UIHandler: func(specURL string) http.Handler {
					return ScalarHandler(specURL, cfg.Title, cfg.Description)
				},
			}),
		),
	)

	// Set OpenAPI info
	s.OpenAPI.Description().Info.Title = cfg.Title
	s.OpenAPI.Description().Info.Description = cfg.Description
	s.OpenAPI.Description().Info.Version = cfg.Version

	// Add Chi middleware (Fuego is net/http compatible)
	fuego.Use(s, middleware.RequestID)
	fuego.Use(s, middleware.RealIP)
	fuego.Use(s, middleware.Logger)
	fuego.Use(s, middleware.Recoverer)

	// The intake widget is embedded on marketing pages, so any origin may
	// call the API.
	fuego.Use(s, cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	srv := &Server{
		fuego:   s,
		handler: h,
		port:    cfg.Port,
	}

	srv.registerRoutes()

	return srv
}

func (s *Server) registerRoutes() {
	// Health check
	fuego.GetStd(s.fuego, "/health", s.handler.Health,
		option.Summary("Health Check"),
		option.Description("Returns the health status of the API"),
		option.Tags("System"),
	)

	// Analysis API
	analysisGroup := fuego.Group(s.fuego, "/api/v1",
		option.Tags("Analysis"),
	)

	fuego.PostStd(analysisGroup, "/analyze", s.handler.Analyze,
		option.Summary("Generate Career Report"),
		option.Description("Generates a career growth report from the intake profile and captures the lead"),
	)

	fuego.PostStd(analysisGroup, "/analyze-resume", s.handler.AnalyzeResume,
		option.Summary("Analyze Resume"),
		option.Description("Generates a critique of the submitted resume text"),
	)

	fuego.PostStd(analysisGroup, "/job-recommendations", s.handler.JobRecommendations,
		option.Summary("Get Job Recommendations"),
		option.Description("Scores the job catalog against the submitted resume"),
	)

	fuego.PostStd(analysisGroup, "/generate-tasks", s.handler.GenerateTasks,
		option.Summary("Generate Tasks"),
		option.Description("Generates a short task list for a project prompt"),
		option.Tags("Tasks"),
	)

	// Intake API
	intakeGroup := fuego.Group(s.fuego, "/api/v1/intake",
		option.Tags("Intake"),
	)

	fuego.PostStd(intakeGroup, "/validate", s.handler.ValidateIntake,
		option.Summary("Validate Intake Step"),
		option.Description("Validates one step of the intake wizard and returns field-level errors"),
	)

	fuego.PostStd(s.fuego, "/api/v1/resume/upload", s.handler.UploadResume,
		option.Summary("Upload Resume"),
		option.Description("Accepts a resume file and returns the extracted plain text"),
		option.Tags("Intake"),
	)

	// WebSocket event feed
	if s.handler.hub != nil {
		fuego.GetStd(s.fuego, "/ws", func(w http.ResponseWriter, r *http.Request) {
			ServeWs(s.handler.hub, w, r)
		},
			option.Summary("Event Feed"),
			option.Description("WebSocket feed of lead and analysis events"),
			option.Tags("System"),
		)
	}
}

// Start starts the API server.
func (s *Server) Start() error {
	return s.fuego.Run()
}

// Stop gracefully stops the server, waiting for in-flight requests up to
// the context deadline.
func (s *Server) Stop(ctx context.Context) error {
	return s.fuego.Shutdown(ctx)
}

// Mux returns the underlying ServeMux for mounting additional routes.
func (s *Server) Mux() *http.ServeMux {
	return s.fuego.Mux
}
