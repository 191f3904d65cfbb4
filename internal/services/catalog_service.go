package services

import (
	"stackboard/internal/domain"
	"stackboard/internal/repos"
)

type CatalogService struct {
	Prods *repos.ProductRepo
}

func NewCatalogService(prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Prods: prods}
}

func (s *CatalogService) List(f domain.ProductFilter) ([]domain.Product, error) {
	return s.Prods.List(f)
}

func (s *CatalogService) Get(id int64) (domain.Product, error) {
	return s.Prods.ByID(id)
}

func (s *CatalogService) Create(name string, price float64, category string, stock int, description string) (domain.Product, error) {
	if stock < 0 {
		stock = 0
	}
	return s.Prods.Create(name, price, category, stock, description)
}
