package handler

import (
	"context"

	"notes-server/internal/config"
	"notes-server/internal/middleware"
	"notes-server/pkg/logger"

	"github.com/gorilla/mux"
)

type RouterDeps struct {
	Notes     *NoteHandler
	Health    *HealthHandler
	WebSocket *WebSocketHandler
	CORS      config.CORSConfig
	Logger    *logger.Logger
}

func NewRouter(deps RouterDeps) *mux.Router {
	if deps.Logger == nil {
		deps.Logger = logger.Log(context.Background())
	}

	r := mux.NewRouter()

	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware(deps.Logger))
	r.Use(middleware.RecoveryMiddleware())
	r.Use(middleware.CORSMiddleware(
		deps.CORS.AllowedOrigins,
		deps.CORS.AllowedMethods,
		deps.CORS.AllowedHeaders,
	))

	registerNoteRoutes(r, deps.Notes)
	registerNoteRoutes(r.PathPrefix("/api").Subrouter(), deps.Notes)

	if deps.WebSocket != nil {
		r.HandleFunc("/ws", deps.WebSocket.HandleConnection).Methods("GET")
	}

	r.HandleFunc("/health", deps.Health.Health).Methods("GET", "OPTIONS")
	r.HandleFunc("/api", deps.Health.Root).Methods("GET", "OPTIONS")
	r.HandleFunc("/", deps.Health.Root).Methods("GET", "OPTIONS")

	return r
}

func registerNoteRoutes(r *mux.Router, h *NoteHandler) {
	r.HandleFunc("/notes", h.List).Methods("GET", "OPTIONS")
	r.HandleFunc("/notes", h.Create).Methods("POST", "OPTIONS")
	r.HandleFunc("/notes/{id}", h.Get).Methods("GET", "OPTIONS")
	r.HandleFunc("/notes/{id}", h.Update).Methods("PUT", "OPTIONS")
	r.HandleFunc("/notes/{id}", h.Delete).Methods("DELETE", "OPTIONS")
}
