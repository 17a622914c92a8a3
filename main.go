package main

import (
	"net/http"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/donalddop/proteinlab/internal/config"
	"github.com/donalddop/proteinlab/internal/metrics"
	"github.com/donalddop/proteinlab/logger"
	"github.com/donalddop/proteinlab/pkg/db"
	"github.com/donalddop/proteinlab/pkg/handler"
	"github.com/donalddop/proteinlab/pkg/middle"
)

func main() {

	// Try load env before reading it; the logger's own settings live there.
	dotenvErr := godotenv.Load()

	cfg := config.FromEnv()

	if err := logger.Init(cfg.LogLevel, cfg.LogEncoding); err != nil {
		panic(err)
	}

	defer logger.Sync() // Make sure that the buffered is flushed.

	if dotenvErr != nil {
		logger.Warn("No .env found, using local environment")
	}
	for _, warning := range cfg.Warnings {
		logger.Warn(warning)
	}

	store, err := db.NewStore(cfg.StoreBackend)
	if err != nil {
		logger.Fatal("Store setup failed", zap.String("error message", err.Error()))
	}

	apictx := &handler.APIContext{
		Store: store,
	}

	logger.Info("Start:", zap.String("Version", config.Version))
	logger.Info("Using store backend", zap.String("backend", cfg.StoreBackend))

	root := buildHandler(apictx, cfg.CORSOrigins)

	logger.Info("Server starting", zap.String("addr", cfg.Addr))
	httpErr := http.ListenAndServe(cfg.Addr, root)
	if httpErr != nil {
		logger.Error("Error starting server:", zap.String("error message", httpErr.Error()))
	}
}

// buildHandler stacks the middleware onto the router, innermost first.
func buildHandler(apictx *handler.APIContext, origins []string) http.Handler {
	var root http.Handler = NewRouter(apictx)
	root = middle.LoggingMiddleware(logger.L())(root)
	root = middle.MetricsMiddleware()(root)
	root = middle.RequestIDMiddleware()(root)
	return newCORS(origins).Handler(root)
}

// Move to router.go in the next iteration
func NewRouter(apictx *handler.APIContext) *http.ServeMux {
	mux := http.NewServeMux()

	// "GET /" would match every unknown path; "{$}" pins it to the root.
	mux.HandleFunc("GET /{$}", handler.Root)

	// Sequence routes
	mux.HandleFunc("POST /sequences/upload", apictx.UploadSequence)
	mux.HandleFunc("POST /sequences/text", apictx.AddSequenceText)
	mux.HandleFunc("GET /sequences", apictx.ListSequences)
	mux.HandleFunc("GET /sequences/{id}", apictx.GetSequence)
	mux.HandleFunc("POST /sequences/{id}/mutate", apictx.MutateSequence)

	// Reference data
	mux.HandleFunc("GET /amino-acids", apictx.AminoAcidTable)

	// Operational routes
	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.Handle("GET /metrics", metrics.Handler())

	return mux
}

// newCORS allows the browser frontends on the allow-list, with credentials,
// any method and any header.
func newCORS(origins []string) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodHead,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
}
