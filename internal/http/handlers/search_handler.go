package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "stackboard/internal/log"
	"stackboard/internal/services"
	"stackboard/internal/validate"
)

type SearchHandler struct {
	Search *services.SearchService
}

func (h *SearchHandler) Run(c *fiber.Ctx) error {
	q, ok := validate.Q(c.Query("q"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "q"})
		return errJSON(c, fiber.StatusBadRequest, "Search query is required")
	}

	res, err := h.Search.Run(q, c.Query("type"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"query":        q,
		"results":      res,
		"totalResults": res.Total(),
		"timestamp":    nowISO(),
	})
}
