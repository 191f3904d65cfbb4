package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func errJSON(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

func nowISO() string { return time.Now().UTC().Format(time.RFC3339) }
