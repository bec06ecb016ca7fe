package progress

import (
	"context"

	"github.com/pkg/errors"

	"github.com/finwise/finwise/core/lesson"
)

type (
	// Ledger is a read/replace provider of the full Record collection.
	Ledger interface {
		// QueryAllRecords returns every record in storage order.
		QueryAllRecords(ctx context.Context) ([]Record, error)
		// UpsertRecord replaces the record with the same Key in place, or appends it.
		// The whole ledger is persisted before returning; on failure nothing changes.
		UpsertRecord(ctx context.Context, rec Record) (Record, error)
	}

	Service struct {
		ledger  Ledger
		lessons lesson.Repository
	}
)

func NewService(ledger Ledger, lessons lesson.Repository) *Service {
	return &Service{ledger: ledger, lessons: lessons}
}

func (svc *Service) List(ctx context.Context) ([]Record, error) {
	return svc.ledger.QueryAllRecords(ctx)
}

// ListFor returns the records of userID only.
func (svc *Service) ListFor(ctx context.Context, userID string) ([]Record, error) {
	records, err := svc.ledger.QueryAllRecords(ctx)
	if err != nil {
		return nil, err
	}
	mine := make([]Record, 0)
	for _, rec := range records {
		if rec.UserID == userID {
			mine = append(mine, rec)
		}
	}
	return mine, nil
}

func (svc *Service) Upsert(ctx context.Context, u Upsert) (Record, error) {
	return svc.ledger.UpsertRecord(ctx, u.Record())
}

// MarkCompleted upserts a completed record for (userID, lessonID).
func (svc *Service) MarkCompleted(ctx context.Context, userID, lessonID string) (Record, error) {
	return svc.ledger.UpsertRecord(ctx, Record{UserID: userID, LessonID: lessonID, Completed: true})
}

func (svc *Service) IsCompleted(ctx context.Context, userID, lessonID string) (bool, error) {
	records, err := svc.ledger.QueryAllRecords(ctx)
	if err != nil {
		return false, err
	}
	return CompletedSet(userID, records)[lessonID], nil
}

// IsAccessible applies the access rule of the lesson for userID.
func (svc *Service) IsAccessible(ctx context.Context, userID, lessonID string) (bool, lesson.Lesson, error) {
	l, err := svc.lessons.GetLessonByID(ctx, lessonID)
	if err != nil {
		return false, lesson.Lesson{}, errors.Wrap(err, "getting lesson")
	}
	if l.IsFree() {
		return true, l, nil
	}
	completed, err := svc.IsCompleted(ctx, userID, lessonID)
	if err != nil {
		return false, l, errors.Wrap(err, "checking completion")
	}
	return l.IsAccessible(completed), l, nil
}

func (svc *Service) Summary(ctx context.Context, userID string) (Summary, error) {
	lessons, err := svc.lessons.QueryAllLessons(ctx)
	if err != nil {
		return Summary{}, errors.Wrap(err, "querying lessons")
	}
	records, err := svc.ledger.QueryAllRecords(ctx)
	if err != nil {
		return Summary{}, errors.Wrap(err, "querying records")
	}
	return Summarize(userID, lessons, records), nil
}
