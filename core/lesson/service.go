package lesson

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no lesson has the requested id.
var ErrNotFound = errors.New("lesson not found")

type (
	// Repository is a read-only provider of the lesson catalog.
	Repository interface {
		// QueryAllLessons returns every lesson in storage order.
		QueryAllLessons(ctx context.Context) ([]Lesson, error)
		GetLessonByID(ctx context.Context, id string) (Lesson, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) List(ctx context.Context) ([]Lesson, error) {
	return svc.repo.QueryAllLessons(ctx)
}

func (svc *Service) Get(ctx context.Context, id string) (Lesson, error) {
	return svc.repo.GetLessonByID(ctx, id)
}

// IDs returns the ids of all lessons in storage order.
func (svc *Service) IDs(ctx context.Context) ([]string, error) {
	lessons, err := svc.repo.QueryAllLessons(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(lessons))
	for _, l := range lessons {
		ids = append(ids, l.ID)
	}
	return ids, nil
}
