package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"stackboard/internal/domain"
	applog "stackboard/internal/log"
	"stackboard/internal/repos"
	"stackboard/internal/services"
	"stackboard/internal/validate"
)

type UserHandler struct {
	Users *services.UserService
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	role := strings.TrimSpace(c.Query("role"))
	limit := validate.Limit(c.Query("limit"), 0)
	users, err := h.Users.List(role, limit)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"users":     users,
		"total":     len(users),
		"timestamp": nowISO(),
	})
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return errJSON(c, fiber.StatusNotFound, "User not found")
	}
	u, err := h.Users.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return errJSON(c, fiber.StatusNotFound, "User not found")
	}
	if err != nil {
		return err
	}
	return c.JSON(u)
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	var body struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	if err := c.BodyParser(&body); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if body.Name == "" || body.Email == "" {
		return errJSON(c, fiber.StatusBadRequest, "Name and email are required")
	}
	email, ok := validate.Email(body.Email)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "email"})
		return errJSON(c, fiber.StatusBadRequest, "Invalid email")
	}
	if body.Role != "" {
		if _, ok := validate.Role(body.Role); !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "role", "value": body.Role})
			return errJSON(c, fiber.StatusBadRequest, "Invalid role")
		}
	}

	u, err := h.Users.Create(body.Name, email, body.Role)
	if errors.Is(err, repos.ErrDuplicateEmail) {
		return errJSON(c, fiber.StatusConflict, "Email already exists")
	}
	if err != nil {
		return err
	}
	applog.Audit(c, "user.create", map[string]any{"user_id": u.ID})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User created successfully",
		"user":    u,
	})
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return errJSON(c, fiber.StatusNotFound, "User not found")
	}
	var patch domain.UserPatch
	if err := c.BodyParser(&patch); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if patch.Email != nil {
		email, ok := validate.Email(*patch.Email)
		if !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "email"})
			return errJSON(c, fiber.StatusBadRequest, "Invalid email")
		}
		patch.Email = &email
	}
	if patch.Role != nil {
		if _, ok := validate.Role(*patch.Role); !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "role"})
			return errJSON(c, fiber.StatusBadRequest, "Invalid role")
		}
	}

	u, err := h.Users.Update(id, patch)
	if errors.Is(err, sql.ErrNoRows) {
		return errJSON(c, fiber.StatusNotFound, "User not found")
	}
	if err != nil {
		return err
	}
	applog.Audit(c, "user.update", map[string]any{"user_id": u.ID})
	return c.JSON(fiber.Map{
		"message": "User updated successfully",
		"user":    u,
	})
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return errJSON(c, fiber.StatusNotFound, "User not found")
	}
	u, err := h.Users.Delete(id)
	if errors.Is(err, sql.ErrNoRows) {
		return errJSON(c, fiber.StatusNotFound, "User not found")
	}
	if err != nil {
		return err
	}
	applog.Audit(c, "user.delete", map[string]any{"user_id": u.ID})
	return c.JSON(fiber.Map{
		"message": "User deleted successfully",
		"user":    u,
	})
}

func (h *UserHandler) Paginated(c *fiber.Ctx) error {
	page := validate.IntOr(c.Query("page"), 1, 0)
	limit := validate.IntOr(c.Query("limit"), 10, 100)
	users, pg, err := h.Users.Paginate(page, limit)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"users":      users,
		"pagination": pg,
		"timestamp":  nowISO(),
	})
}

func (h *UserHandler) BulkCreate(c *fiber.Ctx) error {
	var body struct {
		Users []services.BulkItem `json:"users"`
	}
	if err := c.BodyParser(&body); err != nil || body.Users == nil {
		return errJSON(c, fiber.StatusBadRequest, "Users must be an array")
	}

	created, bulkErrs, err := h.Users.BulkCreate(body.Users)
	if err != nil {
		return err
	}
	status := fiber.StatusBadRequest
	if len(created) > 0 {
		status = fiber.StatusCreated
	}
	applog.Audit(c, "user.bulk_create", map[string]any{"created": len(created), "rejected": len(bulkErrs)})
	return c.Status(status).JSON(fiber.Map{
		"message":   fmt.Sprintf("%d users created successfully", len(created)),
		"created":   created,
		"errors":    bulkErrs,
		"timestamp": nowISO(),
	})
}
