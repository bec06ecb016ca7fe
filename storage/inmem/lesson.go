package inmem

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
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return copyLessons(repo.db.lessons), nil
}

func (repo *lessonRepository) GetLessonByID(_ context.Context, id string) (lesson.Lesson, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, l := range repo.db.lessons {
		if l.ID == id {
			return copyLesson(l), nil
		}
	}
	return lesson.Lesson{}, lesson.ErrNotFound
}
