package inmem

import (
	"context"

	"github.com/finwise/finwise/core/quiz"
)

type quizRepository struct {
	db *DB
}

func NewQuizRepository(db *DB) quiz.Repository {
	return &quizRepository{db: db}
}

func (repo *quizRepository) QueryQuizzesByLesson(_ context.Context, lessonID string) ([]quiz.Question, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	questions := make([]quiz.Question, 0)
	for _, q := range repo.db.quizzes {
		if q.LessonID == lessonID {
			questions = append(questions, copyQuestion(q))
		}
	}
	return questions, nil
}
