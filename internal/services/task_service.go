package services

import (
	"stackboard/internal/domain"
	"stackboard/internal/repos"
)

type TaskService struct {
	Tasks *repos.TaskRepo
}

func NewTaskService(tasks *repos.TaskRepo) *TaskService { return &TaskService{Tasks: tasks} }

// List returns the filtered tasks plus the store-wide completed/pending
// counts, which every listing reports regardless of filters.
func (s *TaskService) List(f domain.TaskFilter) (tasks []domain.Task, completed, pending int, err error) {
	if tasks, err = s.Tasks.List(f); err != nil {
		return nil, 0, 0, err
	}
	completed, pending, err = s.Tasks.Counts()
	return tasks, completed, pending, err
}

// Create adds an open task; an empty priority defaults to "medium".
// assignedTo is not checked against the users collection: dangling
// assignments are tolerated and resolved client-side.
func (s *TaskService) Create(title, priority string, assignedTo *int64) (domain.Task, error) {
	if priority == "" {
		priority = "medium"
	}
	return s.Tasks.Create(title, priority, assignedTo)
}

func (s *TaskService) Update(id int64, p domain.TaskPatch) (domain.Task, error) {
	return s.Tasks.Update(id, p)
}
