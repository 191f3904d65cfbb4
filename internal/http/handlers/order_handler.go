package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"stackboard/internal/domain"
	applog "stackboard/internal/log"
	"stackboard/internal/repos"
	"stackboard/internal/services"
	"stackboard/internal/validate"
)

type OrderHandler struct {
	Orders *services.OrderService
}

func (h *OrderHandler) List(c *fiber.Ctx) error {
	f := domain.OrderFilter{Status: strings.TrimSpace(c.Query("status"))}
	if id, ok := validate.ID(c.Query("userId")); ok {
		f.UserID = &id
	}
	orders, err := h.Orders.List(f)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"orders":    orders,
		"total":     len(orders),
		"timestamp": nowISO(),
	})
}

func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var body struct {
		UserID    *int64 `json:"userId"`
		ProductID *int64 `json:"productId"`
		Quantity  *int   `json:"quantity"`
	}
	if err := c.BodyParser(&body); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if body.UserID == nil || body.ProductID == nil {
		return errJSON(c, fiber.StatusBadRequest, "User ID and Product ID are required")
	}
	quantity := 1
	if body.Quantity != nil {
		if *body.Quantity < 1 {
			applog.Security(c, "validation.fail", map[string]any{"field": "quantity"})
			return errJSON(c, fiber.StatusBadRequest, "Quantity must be a positive integer")
		}
		quantity = *body.Quantity
	}

	o, err := h.Orders.Place(*body.UserID, *body.ProductID, quantity)
	switch {
	case errors.Is(err, repos.ErrUserNotFound):
		return errJSON(c, fiber.StatusNotFound, "User not found")
	case errors.Is(err, repos.ErrProductNotFound):
		return errJSON(c, fiber.StatusNotFound, "Product not found")
	case errors.Is(err, repos.ErrInsufficientStock):
		return errJSON(c, fiber.StatusBadRequest, "Insufficient stock")
	case err != nil:
		return err
	}
	applog.Audit(c, "order.place", map[string]any{
		"order_id": o.ID,
		"user_id":  o.UserID,
		"total":    o.TotalPrice,
	})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Order created successfully",
		"order":   o,
	})
}
