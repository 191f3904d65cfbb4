package services

import (
	"stackboard/internal/domain"
	"stackboard/internal/repos"
)

type SearchService struct {
	Users *repos.UserRepo
	Prods *repos.ProductRepo
	Tasks *repos.TaskRepo
}

func NewSearchService(users *repos.UserRepo, prods *repos.ProductRepo, tasks *repos.TaskRepo) *SearchService {
	return &SearchService{Users: users, Prods: prods, Tasks: tasks}
}

// Run matches q case-insensitively as a substring against each collection's
// searchable fields. An empty typ searches everything; otherwise only the
// named collection appears in the result.
func (s *SearchService) Run(q, typ string) (domain.SearchResult, error) {
	var res domain.SearchResult
	if typ == "" || typ == "users" {
		users, err := s.Users.Search(q)
		if err != nil {
			return domain.SearchResult{}, err
		}
		res.Users = &users
	}
	if typ == "" || typ == "products" {
		products, err := s.Prods.Search(q)
		if err != nil {
			return domain.SearchResult{}, err
		}
		res.Products = &products
	}
	if typ == "" || typ == "tasks" {
		tasks, err := s.Tasks.Search(q)
		if err != nil {
			return domain.SearchResult{}, err
		}
		res.Tasks = &tasks
	}
	return res, nil
}
