package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler, m *AuthMiddleware) {
	auth := app.Group("/api/v1/auth")

	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)
	auth.Post("/refresh", h.Refresh)
	auth.Post("/logout", m.RequireAuth(), h.Logout)
	auth.Get("/validate", h.Validate)
	auth.Get("/me", m.RequireAuth(), h.Me)
	auth.Get("/health", h.Health)
}
