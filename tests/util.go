package testutil

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/finwise/finwise/core"
	"github.com/finwise/finwise/core/lesson"
	"github.com/finwise/finwise/core/progress"
	"github.com/finwise/finwise/core/quiz"
	"github.com/finwise/finwise/storage/inmem"
)

func NewLesson(id string, price float64) lesson.Lesson {
	return lesson.Lesson{
		ID:          id,
		Title:       "Lesson " + id,
		Description: "About " + id,
		PriceInINR:  price,
		Content:     "# Lesson " + id,
		Resources:   []lesson.Resource{{Title: "Read more", URL: "https://example.com/" + id}},
	}
}

// NewQuestion builds a question with options A, B, C and D.
func NewQuestion(id, lessonID, correct string) quiz.Question {
	return quiz.Question{
		ID:            id,
		LessonID:      lessonID,
		Question:      "Question " + id + "?",
		Options:       []string{"A", "B", "C", "D"},
		CorrectAnswer: correct,
	}
}

func PrepareDB(lessons []lesson.Lesson, quizzes []quiz.Question, records []progress.Record) *inmem.DB {
	db := inmem.Open()
	db.Seed(lessons, quizzes, records)
	return db
}

// WriteJSON writes v as file `name` in dir.
func WriteJSON(t *testing.T, dir, name string, v interface{}) {
	t.Helper()
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		t.Fatalf("WriteJSON() failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		t.Fatalf("WriteJSON() failed: %v", err)
	}
}

// LogEntry is one call recorded by Logger.
type LogEntry struct {
	Level string
	Msg   string
	Args  []interface{}
}

// Logger is a core.Logger that keeps entries in memory.
type Logger struct {
	mu      sync.Mutex
	entries []LogEntry
}

var _ core.Logger = (*Logger)(nil)

func NewLogger() *Logger { return &Logger{} }

func (l *Logger) log(level, msg string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, LogEntry{Level: level, Msg: msg, Args: args})
}

func (l *Logger) Entries(level string) []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []LogEntry
	for _, e := range l.entries {
		if level == "" || e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

func (l *Logger) Debug(msg string, args ...interface{}) { l.log("debug", msg, args) }
func (l *Logger) Info(msg string, args ...interface{})  { l.log("info", msg, args) }
func (l *Logger) Warn(msg string, args ...interface{})  { l.log("warn", msg, args) }
func (l *Logger) Error(msg string, args ...interface{}) { l.log("error", msg, args) }
func (l *Logger) Fatal(msg string, args ...interface{}) {
	l.log("fatal", msg, args)
	panic(fmt.Sprintf("fatal: %s", msg))
}
