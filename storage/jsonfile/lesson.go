package jsonfile

import (
	"context"

	"github.com/finwise/finwise/core/lesson"
)

type lessonRepository struct {
	db *DB
}

func NewLessonRepository(db *DB) lesson.Repository {
	return &lessonRepository{db: db}
}

func (repo *lessonRepository) QueryAllLessons(_ context.Context) ([]lesson.Lesson, error) {
	lessons := make([]lesson.Lesson, 0)
	if err := repo.db.read(LessonsFile, &lessons, false); err != nil {
		return nil, err
	}
	return lessons, nil
}

func (repo *lessonRepository) GetLessonByID(ctx context.Context, id string) (lesson.Lesson, error) {
	lessons, err := repo.QueryAllLessons(ctx)
	if err != nil {
		return lesson.Lesson{}, err
	}
	for _, l := range lessons {
		if l.ID == id {
			return l, nil
		}
	}
	return lesson.Lesson{}, lesson.ErrNotFound
}
