package handler

import (
	"github.com/gofiber/fiber/v2"

	authhandler "github.com/jobportal/api/internal/auth/handler"
	authservice "github.com/jobportal/api/internal/auth/service"
	"github.com/jobportal/api/internal/dashboard/dto"
	"github.com/jobportal/api/internal/dashboard/service"
	apperr "github.com/jobportal/api/internal/errors"
	"github.com/jobportal/api/pkg/constant"
	"github.com/jobportal/api/pkg/validate"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
	authService      *authservice.AuthService
}

func NewDashboardHandler(dashboardService *service.DashboardService,
	authService *authservice.AuthService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		authService:      authService,
	}
}

func (h *DashboardHandler) AdminStats(c *fiber.Ctx) error {
	out, err := h.dashboardService.AdminStats(c.Context())
	if err != nil {
		return c.Status(apperr.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *DashboardHandler) RecruiterStats(c *fiber.Ctx) error {
	claims := authhandler.ClaimsFromCtx(c)

	out, err := h.dashboardService.RecruiterStats(c.Context(), claims.UserID)
	if err != nil {
		return c.Status(apperr.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *DashboardHandler) ListUsers(c *fiber.Ctx) error {
	out, err := h.dashboardService.ListUsers(c.Context(), c.Query("q"),
		c.QueryInt("page"), c.QueryInt("size"))
	if err != nil {
		return c.Status(apperr.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *DashboardHandler) SetUserEnabled(c *fiber.Ctx) error {
	var req dto.SetEnabledRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.dashboardService.SetUserEnabled(c.Context(), c.Params("id"), *req.Enabled); err != nil {
		return c.Status(apperr.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "user updated",
	})
}

// PurgeTokens is the maintenance hook for expired refresh tokens; the
// scheduler that calls it lives outside the service.
func (h *DashboardHandler) PurgeTokens(c *fiber.Ctx) error {
	purged, err := h.authService.PurgeExpiredTokens(c.Context())
	if err != nil {
		return c.Status(apperr.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"purged": purged,
	})
}

func RegisterRoutes(app *fiber.App, h *DashboardHandler, m *authhandler.AuthMiddleware) {
	app.Get("/api/v1/recruiters/me/stats", m.RequireRole(constant.RoleRecruiter), h.RecruiterStats)

	admin := app.Group("/api/v1/admin", m.RequireRole(constant.RoleAdmin))
	admin.Get("/stats", h.AdminStats)
	admin.Get("/users", h.ListUsers)
	admin.Patch("/users/:id/enabled", h.SetUserEnabled)
	admin.Post("/tokens/purge", h.PurgeTokens)
}
