package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"

	"stackboard/internal/repos"
	"stackboard/internal/services"
)

type Deps struct {
	Users     *UserHandler
	Products  *ProductHandler
	Orders    *OrderHandler
	Tasks     *TaskHandler
	Analytics *AnalyticsHandler
	Search    *SearchHandler
	Meta      *MetaHandler
	Diag      *DiagHandler
}

func NewDeps(db *sqlx.DB) *Deps {
	userRepo := repos.NewUserRepo(db)
	prodRepo := repos.NewProductRepo(db)
	taskRepo := repos.NewTaskRepo(db)
	orderRepo := repos.NewOrderRepo(db)

	return &Deps{
		Users:     &UserHandler{Users: services.NewUserService(userRepo)},
		Products:  &ProductHandler{Catalog: services.NewCatalogService(prodRepo)},
		Orders:    &OrderHandler{Orders: services.NewOrderService(orderRepo)},
		Tasks:     &TaskHandler{Tasks: services.NewTaskService(taskRepo)},
		Analytics: &AnalyticsHandler{Analytics: services.NewAnalyticsService(userRepo, prodRepo, orderRepo, taskRepo)},
		Search:    &SearchHandler{Search: services.NewSearchService(userRepo, prodRepo, taskRepo)},
		Meta:      &MetaHandler{Start: time.Now()},
		Diag:      &DiagHandler{},
	}
}

// Register mounts every route under /api plus the JSON 404 fallback.
func Register(app *fiber.App, d *Deps) {
	api := app.Group("/api")
	api.Get("/", d.Meta.Banner)
	api.Get("/health", d.Meta.Health)

	// Static segments first so /users/paginated is not swallowed by :id.
	api.Get("/users/paginated", d.Users.Paginated)
	api.Post("/users/bulk", d.Users.BulkCreate)
	api.Get("/users", d.Users.List)
	api.Post("/users", d.Users.Create)
	api.Get("/users/:id", d.Users.Get)
	api.Put("/users/:id", d.Users.Update)
	api.Delete("/users/:id", d.Users.Delete)

	api.Get("/products", d.Products.List)
	api.Post("/products", d.Products.Create)
	api.Get("/products/:id", d.Products.Get)

	api.Get("/orders", d.Orders.List)
	api.Post("/orders", d.Orders.Create)

	api.Get("/tasks", d.Tasks.List)
	api.Post("/tasks", d.Tasks.Create)
	api.Put("/tasks/:id", d.Tasks.Update)

	api.Get("/analytics", d.Analytics.Snapshot)
	api.Get("/search", d.Search.Run)

	test := api.Group("/test")
	test.Get("/slow", d.Diag.Slow)
	test.Get("/error/:code", d.Diag.Error)
	test.Get("/large-data", d.Diag.LargeData)
	test.Post("/echo", d.Diag.Echo)
	test.Get("/random", d.Diag.Random)

	app.Use(func(c *fiber.Ctx) error {
		return errJSON(c, fiber.StatusNotFound, "Not found")
	})
}
