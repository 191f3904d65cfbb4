package services_test

import (
	"math"
	"testing"

	"stackboard/internal/repos"
	"stackboard/internal/services"
)

func newAnalytics(t *testing.T) (*services.AnalyticsService, *services.OrderService, *services.TaskService, *repos.UserRepo) {
	t.Helper()
	db := memdb(t)
	userRepo := repos.NewUserRepo(db)
	prodRepo := repos.NewProductRepo(db)
	orderRepo := repos.NewOrderRepo(db)
	taskRepo := repos.NewTaskRepo(db)
	return services.NewAnalyticsService(userRepo, prodRepo, orderRepo, taskRepo),
		services.NewOrderService(orderRepo),
		services.NewTaskService(taskRepo),
		userRepo
}

func TestAnalytics_SeededSnapshot(t *testing.T) {
	svc, _, _, _ := newAnalytics(t)

	a, err := svc.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	if a.Users.Total != 3 || a.Users.Admins != 1 || a.Users.Regular != 2 {
		t.Fatalf("bad user stats: %+v", a.Users)
	}
	// Seeded categories: Electronics, Home, Education
	if a.Products.Total != 5 || a.Products.Categories != 3 {
		t.Fatalf("bad product stats: %+v", a.Products)
	}
	if a.Products.LowStock != 0 {
		t.Fatalf("no seeded product is below the threshold: %+v", a.Products)
	}
	wantValue := 999.99*50 + 699.99*100 + 199.99*75 + 89.99*30 + 14.99*200
	if math.Abs(a.Products.TotalValue-wantValue) > 1e-6 {
		t.Fatalf("want totalValue %v, got %v", wantValue, a.Products.TotalValue)
	}
	if a.Orders.Total != 0 || a.Orders.TotalRevenue != 0 {
		t.Fatalf("bad order stats: %+v", a.Orders)
	}
	if a.Tasks.Total != 3 || a.Tasks.Completed != 1 || a.Tasks.Pending != 2 || a.Tasks.HighPriority != 2 {
		t.Fatalf("bad task stats: %+v", a.Tasks)
	}
}

func TestAnalytics_ConsistentAfterMutations(t *testing.T) {
	svc, orders, tasks, users := newAnalytics(t)

	if _, err := orders.Place(1, 4, 25); err != nil {
		t.Fatal(err)
	}
	if _, err := tasks.Create("Review analytics", "low", nil); err != nil {
		t.Fatal(err)
	}

	a, err := svc.Snapshot()
	if err != nil {
		t.Fatal(err)
	}

	n, err := users.Count()
	if err != nil {
		t.Fatal(err)
	}
	if a.Users.Total != n {
		t.Fatalf("analytics users.total=%d, store has %d", a.Users.Total, n)
	}
	if a.Users.Admins+a.Users.Regular != a.Users.Total {
		t.Fatalf("role split inconsistent: %+v", a.Users)
	}
	if a.Tasks.Completed+a.Tasks.Pending != a.Tasks.Total {
		t.Fatalf("task split inconsistent: %+v", a.Tasks)
	}
	if a.Orders.Total != 1 || a.Orders.Pending != 1 {
		t.Fatalf("bad order stats: %+v", a.Orders)
	}
	if math.Abs(a.Orders.TotalRevenue-89.99*25) > 1e-6 {
		t.Fatalf("want revenue %v, got %v", 89.99*25, a.Orders.TotalRevenue)
	}
	// Coffee Maker stock dropped 30 -> 5, now below the low-stock threshold.
	if a.Products.LowStock != 1 {
		t.Fatalf("want lowStock 1, got %+v", a.Products)
	}
}
