package services

import (
	"stackboard/internal/domain"
	"stackboard/internal/repos"
)

type OrderService struct {
	Orders *repos.OrderRepo
}

func NewOrderService(orders *repos.OrderRepo) *OrderService { return &OrderService{Orders: orders} }

func (s *OrderService) List(f domain.OrderFilter) ([]domain.Order, error) {
	return s.Orders.List(f)
}

// Place creates an order and decrements the product's stock atomically.
// An omitted quantity defaults to 1.
func (s *OrderService) Place(userID, productID int64, quantity int) (domain.Order, error) {
	if quantity == 0 {
		quantity = 1
	}
	return s.Orders.Place(userID, productID, quantity)
}
