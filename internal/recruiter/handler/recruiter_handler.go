package handler

import (
	"github.com/gofiber/fiber/v2"

	authhandler "github.com/jobportal/api/internal/auth/handler"
	apperr "github.com/jobportal/api/internal/errors"
	"github.com/jobportal/api/internal/recruiter/dto"
	"github.com/jobportal/api/internal/recruiter/service"
	"github.com/jobportal/api/pkg/constant"
	"github.com/jobportal/api/pkg/validate"
)

type RecruiterHandler struct {
	recruiterService *service.RecruiterService
}

func NewRecruiterHandler(recruiterService *service.RecruiterService) *RecruiterHandler {
	return &RecruiterHandler{recruiterService: recruiterService}
}

func (h *RecruiterHandler) SaveProfile(c *fiber.Ctx) error {
	var input dto.RecruiterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	claims := authhandler.ClaimsFromCtx(c)

	out, err := h.recruiterService.SaveProfile(c.Context(), claims.UserID, input)
	if err != nil {
		return c.Status(apperr.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *RecruiterHandler) GetOwnProfile(c *fiber.Ctx) error {
	claims := authhandler.ClaimsFromCtx(c)

	out, err := h.recruiterService.GetOwnProfile(c.Context(), claims.UserID)
	if err != nil {
		return c.Status(apperr.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *RecruiterHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.recruiterService.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(apperr.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *RecruiterHandler) Verify(c *fiber.Ctx) error {
	if err := h.recruiterService.Verify(c.Context(), c.Params("id")); err != nil {
		return c.Status(apperr.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "recruiter verified",
	})
}

func RegisterRoutes(app *fiber.App, h *RecruiterHandler, m *authhandler.AuthMiddleware) {
	recruiters := app.Group("/api/v1/recruiters")

	recruiters.Put("/me", m.RequireRole(constant.RoleRecruiter), h.SaveProfile)
	recruiters.Get("/me", m.RequireRole(constant.RoleRecruiter), h.GetOwnProfile)
	recruiters.Get("/:id", h.GetByID)

	admin := app.Group("/api/v1/admin/recruiters", m.RequireRole(constant.RoleAdmin))
	admin.Patch("/:id/verify", h.Verify)
}
