package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/post-service/internal/api/http/handlers"
	"github.com/spec-kit/post-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Posts          *handlers.PostsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Registration and login are the only
// endpoints reachable without a token, besides health probes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")
	api.Post("/user/register", cfg.Users.Register)
	api.Post("/user/login", cfg.Users.Login)

	protected := api.Group("", cfg.AuthMiddleware.Handle)
	protected.Post("/user/forget-password", cfg.Users.ForgetPassword)
	protected.Post("/post", cfg.Posts.CreatePost)
	protected.Get("/posts", cfg.Posts.ListPosts)
	protected.Put("/post/:postId", cfg.Posts.UpdatePost)
	protected.Delete("/post/:postId", cfg.Posts.DeletePost)
	protected.Post("/post/:postId/like", cfg.Posts.LikePost)
	protected.Post("/post/:postId/comment", cfg.Posts.CommentPost)
}
