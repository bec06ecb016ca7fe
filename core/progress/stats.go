package progress

import (
	"math"

	"github.com/finwise/finwise/core/lesson"
)

type Level string

const (
	LevelBeginner  Level = "Beginner"
	LevelLearning  Level = "Learning"
	LevelAdvancing Level = "Advancing"
	LevelExpert    Level = "Expert"
)

// LevelFor maps a number of completed lessons to a Level.
// The breakpoints are fixed and do not depend on the size of the catalog.
func LevelFor(completed int) Level {
	switch {
	case completed <= 0:
		return LevelBeginner
	case completed <= 2:
		return LevelLearning
	case completed <= 4:
		return LevelAdvancing
	default:
		return LevelExpert
	}
}

// CompletionRate returns round(completed / total * 100), or 0 for an empty catalog.
func CompletionRate(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

type (
	LessonStatus struct {
		LessonID   string  `json:"lessonId"`
		Title      string  `json:"title"`
		PriceInINR float64 `json:"priceInINR"`
		Free       bool    `json:"free"`
		Completed  bool    `json:"completed"`
		Accessible bool    `json:"accessible"`
	}

	Summary struct {
		UserID         string         `json:"userId"`
		TotalLessons   int            `json:"totalLessons"`
		CompletedCount int            `json:"completedCount"`
		CompletionRate int            `json:"completionRate"`
		FreeCompleted  int            `json:"freeCompleted"`
		PaidCompleted  int            `json:"paidCompleted"`
		Level          Level          `json:"level"`
		Lessons        []LessonStatus `json:"lessons"`
	}
)

// CompletedSet returns the ids of the lessons userID has completed.
func CompletedSet(userID string, records []Record) map[string]bool {
	done := make(map[string]bool)
	for _, rec := range records {
		if rec.UserID == userID && rec.Completed {
			done[rec.LessonID] = true
		}
	}
	return done
}

// Summarize derives the progress statistics of userID over the catalog.
// Only lessons present in the catalog are counted; records for unknown lessons are ignored.
func Summarize(userID string, lessons []lesson.Lesson, records []Record) Summary {
	done := CompletedSet(userID, records)

	sum := Summary{
		UserID:       userID,
		TotalLessons: len(lessons),
		Lessons:      make([]LessonStatus, 0, len(lessons)),
	}
	for _, l := range lessons {
		completed := done[l.ID]
		sum.Lessons = append(sum.Lessons, LessonStatus{
			LessonID:   l.ID,
			Title:      l.Title,
			PriceInINR: l.PriceInINR,
			Free:       l.IsFree(),
			Completed:  completed,
			Accessible: l.IsAccessible(completed),
		})
		if !completed {
			continue
		}
		sum.CompletedCount++
		if l.IsFree() {
			sum.FreeCompleted++
		} else {
			sum.PaidCompleted++
		}
	}
	sum.CompletionRate = CompletionRate(sum.CompletedCount, sum.TotalLessons)
	sum.Level = LevelFor(sum.CompletedCount)
	return sum
}
