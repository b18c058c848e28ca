package handler

import (
	"github.com/gofiber/fiber/v2"

	authhandler "github.com/jobportal/api/internal/auth/handler"
	apperr "github.com/jobportal/api/internal/errors"
	"github.com/jobportal/api/internal/job/dto"
	"github.com/jobportal/api/internal/job/service"
	"github.com/jobportal/api/pkg/constant"
	"github.com/jobportal/api/pkg/validate"
)

type JobHandler struct {
	jobService *service.JobService
}

func NewJobHandler(jobService *service.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

func (h *JobHandler) Create(c *fiber.Ctx) error {
	var req dto.JobRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	claims := authhandler.ClaimsFromCtx(c)

	out, err := h.jobService.Create(c.Context(), claims.UserID, req)
	if err != nil {
		return c.Status(apperr.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *JobHandler) Update(c *fiber.Ctx) error {
	var req dto.JobUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	claims := authhandler.ClaimsFromCtx(c)

	out, err := h.jobService.Update(c.Context(), claims.UserID, c.Params("id"), req)
	if err != nil {
		return c.Status(apperr.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *JobHandler) Delete(c *fiber.Ctx) error {
	claims := authhandler.ClaimsFromCtx(c)

	if err := h.jobService.Delete(c.Context(), claims.UserID, c.Params("id")); err != nil {
		return c.Status(apperr.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "job deactivated",
	})
}

func (h *JobHandler) ToggleStatus(c *fiber.Ctx) error {
	claims := authhandler.ClaimsFromCtx(c)

	out, err := h.jobService.ToggleStatus(c.Context(), claims.UserID, c.Params("id"))
	if err != nil {
		return c.Status(apperr.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *JobHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.jobService.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(apperr.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *JobHandler) List(c *fiber.Ctx) error {
	out, err := h.jobService.ListActive(c.Context(), c.QueryInt("page"), c.QueryInt("size"))
	if err != nil {
		return c.Status(apperr.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *JobHandler) Search(c *fiber.Ctx) error {
	var req dto.SearchRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid query"})
	}

	out, err := h.jobService.Search(c.Context(), req)
	if err != nil {
		return c.Status(apperr.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *JobHandler) ListOwn(c *fiber.Ctx) error {
	claims := authhandler.ClaimsFromCtx(c)

	out, err := h.jobService.ListOwn(c.Context(), claims.UserID, c.QueryInt("page"), c.QueryInt("size"))
	if err != nil {
		return c.Status(apperr.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func RegisterRoutes(app *fiber.App, h *JobHandler, m *authhandler.AuthMiddleware) {
	jobs := app.Group("/api/v1/jobs")

	jobs.Get("/", h.List)
	jobs.Get("/search", h.Search)
	jobs.Get("/mine", m.RequireRole(constant.RoleRecruiter), h.ListOwn)
	jobs.Get("/:id", h.GetByID)

	jobs.Post("/", m.RequireRole(constant.RoleRecruiter), h.Create)
	jobs.Put("/:id", m.RequireRole(constant.RoleRecruiter), h.Update)
	jobs.Delete("/:id", m.RequireRole(constant.RoleRecruiter), h.Delete)
	jobs.Patch("/:id/status", m.RequireRole(constant.RoleRecruiter), h.ToggleStatus)
}
