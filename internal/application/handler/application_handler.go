package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jobportal/api/internal/application/dto"
	"github.com/jobportal/api/internal/application/service"
	authhandler "github.com/jobportal/api/internal/auth/handler"
	apperr "github.com/jobportal/api/internal/errors"
	"github.com/jobportal/api/pkg/constant"
	"github.com/jobportal/api/pkg/validate"
)

type ApplicationHandler struct {
	applicationService *service.ApplicationService
}

func NewApplicationHandler(applicationService *service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	var req dto.ApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	claims := authhandler.ClaimsFromCtx(c)

	out, err := h.applicationService.Apply(c.Context(), claims.UserID, req)
	if err != nil {
		return c.Status(apperr.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *ApplicationHandler) GetByID(c *fiber.Ctx) error {
	claims := authhandler.ClaimsFromCtx(c)

	out, err := h.applicationService.GetByID(c.Context(), claims.UserID, c.Params("id"))
	if err != nil {
		return c.Status(apperr.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *ApplicationHandler) ListOwn(c *fiber.Ctx) error {
	claims := authhandler.ClaimsFromCtx(c)

	out, err := h.applicationService.ListByUser(c.Context(), claims.UserID,
		c.QueryInt("page"), c.QueryInt("size"))
	if err != nil {
		return c.Status(apperr.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *ApplicationHandler) ListByJob(c *fiber.Ctx) error {
	claims := authhandler.ClaimsFromCtx(c)

	out, err := h.applicationService.ListByJob(c.Context(), claims.UserID, c.Params("jobId"),
		c.QueryInt("page"), c.QueryInt("size"))
	if err != nil {
		return c.Status(apperr.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *ApplicationHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	claims := authhandler.ClaimsFromCtx(c)

	out, err := h.applicationService.UpdateStatus(c.Context(), claims.UserID, c.Params("id"), req.Status)
	if err != nil {
		return c.Status(apperr.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *ApplicationHandler) Withdraw(c *fiber.Ctx) error {
	claims := authhandler.ClaimsFromCtx(c)

	if err := h.applicationService.Withdraw(c.Context(), claims.UserID, c.Params("id")); err != nil {
		return c.Status(apperr.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "application withdrawn",
	})
}

func RegisterRoutes(app *fiber.App, h *ApplicationHandler, m *authhandler.AuthMiddleware) {
	applications := app.Group("/api/v1/applications", m.RequireAuth())

	applications.Post("/", m.RequireRole(constant.RoleJobSeeker), h.Apply)
	applications.Get("/mine", h.ListOwn)
	applications.Get("/job/:jobId", m.RequireRole(constant.RoleRecruiter), h.ListByJob)
	applications.Get("/:id", h.GetByID)
	applications.Patch("/:id/status", m.RequireRole(constant.RoleRecruiter), h.UpdateStatus)
	applications.Delete("/:id", m.RequireRole(constant.RoleJobSeeker), h.Withdraw)
}
