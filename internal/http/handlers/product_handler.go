package handlers

import (
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"stackboard/internal/domain"
	applog "stackboard/internal/log"
	"stackboard/internal/services"
	"stackboard/internal/validate"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

// productFilters echoes the applied query filters back to the client;
// unsupplied filters are omitted.
type productFilters struct {
	Category string `json:"category,omitempty"`
	MinPrice string `json:"minPrice,omitempty"`
	MaxPrice string `json:"maxPrice,omitempty"`
	Sort     string `json:"sort,omitempty"`
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	f := domain.ProductFilter{
		Category: strings.TrimSpace(c.Query("category")),
		Limit:    validate.Limit(c.Query("limit"), 0),
	}
	if v, err := strconv.ParseFloat(c.Query("minPrice"), 64); err == nil {
		f.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(c.Query("maxPrice"), 64); err == nil {
		f.MaxPrice = &v
	}
	switch c.Query("sort") {
	case "price_asc", "price_desc", "name":
		f.Sort = c.Query("sort")
	}

	products, err := h.Catalog.List(f)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"products": products,
		"total":    len(products),
		"filters": productFilters{
			Category: c.Query("category"),
			MinPrice: c.Query("minPrice"),
			MaxPrice: c.Query("maxPrice"),
			Sort:     f.Sort,
		},
		"timestamp": nowISO(),
	})
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return errJSON(c, fiber.StatusNotFound, "Product not found")
	}
	p, err := h.Catalog.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return errJSON(c, fiber.StatusNotFound, "Product not found")
	}
	if err != nil {
		return err
	}
	return c.JSON(p)
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var body struct {
		Name        string   `json:"name"`
		Price       *float64 `json:"price"`
		Category    string   `json:"category"`
		Stock       int      `json:"stock"`
		Description string   `json:"description"`
	}
	if err := c.BodyParser(&body); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if body.Name == "" || body.Price == nil || body.Category == "" {
		return errJSON(c, fiber.StatusBadRequest, "Name, price, and category are required")
	}
	if *body.Price < 0 {
		applog.Security(c, "validation.fail", map[string]any{"field": "price"})
		return errJSON(c, fiber.StatusBadRequest, "Price must be non-negative")
	}

	p, err := h.Catalog.Create(body.Name, *body.Price, body.Category, body.Stock, body.Description)
	if err != nil {
		return err
	}
	applog.Audit(c, "product.create", map[string]any{"product_id": p.ID})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Product created successfully",
		"product": p,
	})
}
