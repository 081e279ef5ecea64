package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/post-service/internal/api/http"
	"github.com/spec-kit/post-service/internal/api/http/handlers"
	"github.com/spec-kit/post-service/internal/auth"
	"github.com/spec-kit/post-service/internal/config"
	"github.com/spec-kit/post-service/internal/events"
	"github.com/spec-kit/post-service/internal/observability"
	"github.com/spec-kit/post-service/internal/repository"
	"github.com/spec-kit/post-service/internal/service"
	"github.com/spec-kit/post-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()

	userRepo := repository.NewUserRepository()
	postRepo := repository.NewPostRepository()

	authService := service.NewAuthService(*cfg, userRepo, dispatcher)
	postService := service.NewPostService(postRepo, auth.NewOwnershipPolicy(), dispatcher)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager())

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version),
		Users:          handlers.NewUsersHandler(authService),
		Posts:          handlers.NewPostsHandler(postService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
