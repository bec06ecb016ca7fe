package inmem

import (
	"sync"

	"github.com/finwise/finwise/core/lesson"
	"github.com/finwise/finwise/core/progress"
	"github.com/finwise/finwise/core/quiz"
)

type DB struct {
	lessons []lesson.Lesson
	quizzes []quiz.Question
	records []progress.Record
	mutex   sync.RWMutex
}

func Open() *DB {
	return &DB{}
}

// Seed replaces the whole content of the DB.
func (db *DB) Seed(lessons []lesson.Lesson, quizzes []quiz.Question, records []progress.Record) {
	db.mutex.Lock()
	defer db.mutex.Unlock()
	db.lessons = copyLessons(lessons)
	db.quizzes = make([]quiz.Question, 0, len(quizzes))
	for _, q := range quizzes {
		db.quizzes = append(db.quizzes, copyQuestion(q))
	}
	db.records = append([]progress.Record(nil), records...)
}

// Lessons and questions hold slices; copies keep callers and the store apart.

func copyLesson(l lesson.Lesson) lesson.Lesson {
	if l.Resources != nil {
		l.Resources = append([]lesson.Resource(nil), l.Resources...)
	}
	return l
}

func copyLessons(lessons []lesson.Lesson) []lesson.Lesson {
	out := make([]lesson.Lesson, 0, len(lessons))
	for _, l := range lessons {
		out = append(out, copyLesson(l))
	}
	return out
}

func copyQuestion(q quiz.Question) quiz.Question {
	if q.Options != nil {
		q.Options = append([]string(nil), q.Options...)
	}
	return q
}
