package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/tennisscore/internal/api/handler"
	apimiddleware "github.com/mcoot/tennisscore/internal/api/middleware"
	"github.com/mcoot/tennisscore/internal/middleware"
	"github.com/mcoot/tennisscore/internal/services/game"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	GameController *game.Controller
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(handler.NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(handler.MethodNotAllowed)

	tennisHandler := handler.NewTennisHandler(cfg.GameController)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.RequestID)
	api.Use(apimiddleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	tennis := api.PathPrefix("/tennis").Subrouter()
	tennis.HandleFunc("/play", tennisHandler.Play).Methods(http.MethodPost)
	tennis.HandleFunc("/play/{sequence}", tennisHandler.PlayPath).Methods(http.MethodGet)

	api.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	return r
}
