package services

import (
	"time"

	"stackboard/internal/domain"
	"stackboard/internal/repos"
)

type AnalyticsService struct {
	Users  *repos.UserRepo
	Prods  *repos.ProductRepo
	Orders *repos.OrderRepo
	Tasks  *repos.TaskRepo
}

func NewAnalyticsService(users *repos.UserRepo, prods *repos.ProductRepo, orders *repos.OrderRepo, tasks *repos.TaskRepo) *AnalyticsService {
	return &AnalyticsService{Users: users, Prods: prods, Orders: orders, Tasks: tasks}
}

// Snapshot recomputes every aggregate from the current store state.
func (s *AnalyticsService) Snapshot() (domain.Analytics, error) {
	var a domain.Analytics
	var err error
	if a.Users, err = s.Users.Stats(); err != nil {
		return domain.Analytics{}, err
	}
	if a.Products, err = s.Prods.Stats(); err != nil {
		return domain.Analytics{}, err
	}
	if a.Orders, err = s.Orders.Stats(); err != nil {
		return domain.Analytics{}, err
	}
	if a.Tasks, err = s.Tasks.Stats(); err != nil {
		return domain.Analytics{}, err
	}
	a.Timestamp = time.Now().UTC().Format(time.RFC3339)
	return a, nil
}
