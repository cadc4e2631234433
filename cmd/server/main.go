package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"notes-server/internal/config"
	"notes-server/internal/handler"
	"notes-server/internal/repository"
	"notes-server/internal/service"
	"notes-server/internal/websocket"
	"notes-server/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.NewLogger(logger.ParseEnvironment(cfg.Server.Env), cfg.Logging.Level)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Sync()
	logger.SetGlobalLogger(appLogger)

	ctx := logger.NewContext(context.Background(), appLogger)

	noteRepo := repository.NewNoteRepository()

	var publisher service.EventPublisher
	var wsHandler *handler.WebSocketHandler
	var wsManager *websocket.Manager
	if cfg.WebSocket.Enabled {
		wsManager = websocket.NewManager(websocket.Options{
			MaxClients:     cfg.WebSocket.MaxClients,
			MaxMessageSize: cfg.WebSocket.MaxMessageSize,
			WriteWait:      cfg.WebSocket.WriteWait,
			PongWait:       cfg.WebSocket.PongWait,
			PingPeriod:     cfg.WebSocket.PingPeriod,
		}, appLogger)
		wsManager.SetMessageHandler(handler.NewWebSocketMessageHandler())
		go wsManager.Run()

		publisher = wsManager
		wsHandler = handler.NewWebSocketHandler(wsManager, cfg.WebSocket.ReadBufferSize, cfg.WebSocket.WriteBufferSize)
	}

	noteService := service.NewNoteService(noteRepo, publisher)

	router := handler.NewRouter(handler.RouterDeps{
		Notes:     handler.NewNoteHandler(noteService),
		Health:    handler.NewHealthHandler(noteService),
		WebSocket: wsHandler,
		CORS:      cfg.CORS,
		Logger:    appLogger,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info(ctx, "Server running",
			zap.String("addr", srv.Addr),
			zap.String("env", cfg.Server.Env),
			zap.Bool("websocket", cfg.WebSocket.Enabled),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal(ctx, "Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info(ctx, "Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	if wsManager != nil {
		wsManager.Stop()
	}

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error(ctx, "Server forced to shutdown", zap.Error(err))
		return
	}

	appLogger.Info(ctx, "Server stopped gracefully")
}
