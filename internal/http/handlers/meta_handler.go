package handlers

import (
	"runtime"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Version is the API version reported by the banner and health endpoints.
const Version = "2.0.0"

type MetaHandler struct {
	Start time.Time
}

func (h *MetaHandler) Banner(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":   "World Hello",
		"timestamp": nowISO(),
		"version":   Version,
		"endpoints": fiber.Map{
			"users":     "/api/users",
			"products":  "/api/products",
			"orders":    "/api/orders",
			"tasks":     "/api/tasks",
			"analytics": "/api/analytics",
			"search":    "/api/search",
			"health":    "/api/health",
		},
	})
}

func (h *MetaHandler) Health(c *fiber.Ctx) error {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return c.JSON(fiber.Map{
		"status":    "OK",
		"uptime":    time.Since(h.Start).Seconds(),
		"timestamp": nowISO(),
		"memory": fiber.Map{
			"alloc":      m.Alloc,
			"totalAlloc": m.TotalAlloc,
			"sys":        m.Sys,
			"numGC":      m.NumGC,
		},
		"version": Version,
	})
}
