package jsonfile

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
	var all []quiz.Question
	if err := repo.db.read(QuizzesFile, &all, false); err != nil {
		return nil, err
	}
	questions := make([]quiz.Question, 0)
	for _, q := range all {
		if q.LessonID == lessonID {
			questions = append(questions, q)
		}
	}
	return questions, nil
}
