package services

import (
	"stackboard/internal/domain"
	"stackboard/internal/repos"
)

type UserService struct {
	Users *repos.UserRepo
}

func NewUserService(users *repos.UserRepo) *UserService { return &UserService{Users: users} }

func (s *UserService) List(role string, limit int) ([]domain.User, error) {
	return s.Users.List(role, limit)
}

func (s *UserService) Get(id int64) (domain.User, error) {
	return s.Users.ByID(id)
}

// Create registers a user; anything but an explicit "admin" role is
// stored as "user".
func (s *UserService) Create(name, email, role string) (domain.User, error) {
	if role != "admin" {
		role = "user"
	}
	return s.Users.Create(name, email, role)
}

func (s *UserService) Update(id int64, p domain.UserPatch) (domain.User, error) {
	return s.Users.Update(id, p)
}

func (s *UserService) Delete(id int64) (domain.User, error) {
	return s.Users.Delete(id)
}

// Paginate returns one page plus the page descriptor. Unlike the filtered
// listing, total here is the unfiltered collection size.
func (s *UserService) Paginate(page, limit int) ([]domain.User, domain.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	total, err := s.Users.Count()
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	users, err := s.Users.Page((page-1)*limit, limit)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	pages := (total + limit - 1) / limit
	return users, domain.Pagination{
		Page:    page,
		Limit:   limit,
		Total:   total,
		Pages:   pages,
		HasNext: page*limit < total,
		HasPrev: page > 1,
	}, nil
}

// BulkItem is one entry of a bulk user create request.
type BulkItem struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// BulkCreate applies each item independently: failures are reported per
// index and do not stop the rest of the batch.
func (s *UserService) BulkCreate(items []BulkItem) ([]domain.User, []domain.BulkError, error) {
	created := []domain.User{}
	errs := []domain.BulkError{}
	for i, it := range items {
		if it.Name == "" || it.Email == "" {
			errs = append(errs, domain.BulkError{Index: i, Error: "Name and email are required"})
			continue
		}
		u, err := s.Create(it.Name, it.Email, it.Role)
		if err == repos.ErrDuplicateEmail {
			errs = append(errs, domain.BulkError{Index: i, Error: "Email already exists"})
			continue
		}
		if err != nil {
			return nil, nil, err
		}
		created = append(created, u)
	}
	return created, errs, nil
}
