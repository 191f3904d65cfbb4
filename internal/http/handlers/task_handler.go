package handlers

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"stackboard/internal/domain"
	applog "stackboard/internal/log"
	"stackboard/internal/services"
	"stackboard/internal/validate"
)

type TaskHandler struct {
	Tasks *services.TaskService
}

func (h *TaskHandler) List(c *fiber.Ctx) error {
	var f domain.TaskFilter
	if v := c.Query("completed"); v != "" {
		b := v == "true"
		f.Completed = &b
	}
	f.Priority = strings.TrimSpace(c.Query("priority"))
	if id, ok := validate.ID(c.Query("assignedTo")); ok {
		f.AssignedTo = &id
	}

	tasks, completed, pending, err := h.Tasks.List(f)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"tasks":     tasks,
		"total":     len(tasks),
		"completed": completed,
		"pending":   pending,
		"timestamp": nowISO(),
	})
}

func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var body struct {
		Title      string `json:"title"`
		Priority   string `json:"priority"`
		AssignedTo *int64 `json:"assignedTo"`
	}
	if err := c.BodyParser(&body); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if body.Title == "" {
		return errJSON(c, fiber.StatusBadRequest, "Title is required")
	}
	if body.Priority != "" {
		if _, ok := validate.Priority(body.Priority); !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "priority", "value": body.Priority})
			return errJSON(c, fiber.StatusBadRequest, "Invalid priority")
		}
	}

	t, err := h.Tasks.Create(body.Title, body.Priority, body.AssignedTo)
	if err != nil {
		return err
	}
	applog.Audit(c, "task.create", map[string]any{"task_id": t.ID})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Task created successfully",
		"task":    t,
	})
}

func (h *TaskHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return errJSON(c, fiber.StatusNotFound, "Task not found")
	}
	var patch domain.TaskPatch
	if err := c.BodyParser(&patch); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if patch.Priority != nil {
		if _, ok := validate.Priority(*patch.Priority); !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "priority"})
			return errJSON(c, fiber.StatusBadRequest, "Invalid priority")
		}
	}

	t, err := h.Tasks.Update(id, patch)
	if errors.Is(err, sql.ErrNoRows) {
		return errJSON(c, fiber.StatusNotFound, "Task not found")
	}
	if err != nil {
		return err
	}
	applog.Audit(c, "task.update", map[string]any{"task_id": t.ID})
	return c.JSON(fiber.Map{
		"message": "Task updated successfully",
		"task":    t,
	})
}
