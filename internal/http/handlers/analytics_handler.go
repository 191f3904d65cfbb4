package handlers

import (
	"github.com/gofiber/fiber/v2"

	"stackboard/internal/services"
)

type AnalyticsHandler struct {
	Analytics *services.AnalyticsService
}

func (h *AnalyticsHandler) Snapshot(c *fiber.Ctx) error {
	a, err := h.Analytics.Snapshot()
	if err != nil {
		return err
	}
	return c.JSON(a)
}
