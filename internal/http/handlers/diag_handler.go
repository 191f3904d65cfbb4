package handlers

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"stackboard/internal/validate"
)

// DiagHandler serves the /api/test/* routes: deliberately simple endpoints
// that let clients exercise latency, error, and large-payload handling.
type DiagHandler struct{}

var errorMessages = map[int]string{
	400: "Bad Request - Invalid parameters",
	401: "Unauthorized - Authentication required",
	403: "Forbidden - Access denied",
	404: "Not Found - Resource does not exist",
	500: "Internal Server Error - Something went wrong",
}

// Slow responds after the requested delay. The sleep only suspends this
// request's goroutine; other requests keep flowing.
func (h *DiagHandler) Slow(c *fiber.Ctx) error {
	delay := validate.IntOr(c.Query("delay"), 2000, 30000)
	time.Sleep(time.Duration(delay) * time.Millisecond)
	return c.JSON(fiber.Map{
		"message":   fmt.Sprintf("Response after %dms delay", delay),
		"timestamp": nowISO(),
	})
}

func (h *DiagHandler) Error(c *fiber.Ctx) error {
	code, ok := validate.ID(c.Params("code"))
	if !ok || code < 100 || code > 599 {
		return errJSON(c, fiber.StatusBadRequest, "Invalid status code")
	}
	msg, found := errorMessages[int(code)]
	if !found {
		msg = "Unknown error"
	}
	return c.Status(int(code)).JSON(fiber.Map{
		"error":     msg,
		"code":      code,
		"timestamp": nowISO(),
	})
}

type diagItem struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Value     float64  `json:"value"`
	Timestamp string   `json:"timestamp"`
	Metadata  diagMeta `json:"metadata"`
}

type diagMeta struct {
	Category string `json:"category"`
	Priority string `json:"priority"`
	Active   bool   `json:"active"`
}

func (h *DiagHandler) LargeData(c *fiber.Ctx) error {
	count := validate.IntOr(c.Query("count"), 1000, 10000)
	categories := []string{"A", "B", "C"}
	priorities := []string{"low", "medium", "high"}
	now := nowISO()

	data := make([]diagItem, count)
	for i := range data {
		data[i] = diagItem{
			ID:        i + 1,
			Name:      fmt.Sprintf("Item %d", i+1),
			Value:     rand.Float64() * 1000,
			Timestamp: now,
			Metadata: diagMeta{
				Category: categories[i%3],
				Priority: priorities[i%3],
				Active:   rand.Intn(2) == 1,
			},
		}
	}
	return c.JSON(fiber.Map{
		"count":     len(data),
		"data":      data,
		"generated": now,
	})
}

func (h *DiagHandler) Echo(c *fiber.Ctx) error {
	var received any
	if err := json.Unmarshal(c.Body(), &received); err != nil {
		received = string(c.Body())
	}
	return c.JSON(fiber.Map{
		"message":   "Echo endpoint - returning your data",
		"received":  received,
		"headers":   c.GetReqHeaders(),
		"method":    c.Method(),
		"timestamp": nowISO(),
	})
}

func (h *DiagHandler) Random(c *fiber.Ctx) error {
	typ := c.Query("type", "number")
	var result any
	switch typ {
	case "string":
		result = uuid.NewString()
	case "boolean":
		result = rand.Intn(2) == 1
	case "array":
		vals := make([]int, 5)
		for i := range vals {
			vals[i] = rand.Intn(100)
		}
		result = vals
	case "object":
		result = fiber.Map{
			"id":     rand.Intn(1000),
			"name":   fmt.Sprintf("Random Item %d", rand.Intn(100)),
			"value":  rand.Float64() * 1000,
			"active": rand.Intn(2) == 1,
		}
	default:
		result = rand.Float64() * 1000
	}
	return c.JSON(fiber.Map{
		"type":      typ,
		"result":    result,
		"timestamp": nowISO(),
	})
}
