package routes

import (
	"time"

	"github.com/calotrack/backend/internal/config"
	"github.com/calotrack/backend/internal/handlers"
	"github.com/calotrack/backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	profileHandler *handlers.ProfileHandler,
	dailyHandler *handlers.DailyHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// Everything below requires a valid JWT.
	jwt := middleware.JWTProtected(cfg)

	profile := api.Group("/profile", jwt)
	profile.Post("", profileHandler.Create)
	profile.Get("", profileHandler.Get)
	profile.Patch("", profileHandler.Update)
	profile.Get("/metrics", profileHandler.Metrics)

	daily := api.Group("/daily", jwt)
	daily.Get("", dailyHandler.GetToday)
	daily.Get("/history", dailyHandler.History)
	daily.Post("/food", dailyHandler.AddFood)
	daily.Patch("/food/:id", dailyHandler.UpdateFood)
	daily.Delete("/food/:id", dailyHandler.DeleteFood)
	daily.Post("/exercise", dailyHandler.AddExercise)
}
