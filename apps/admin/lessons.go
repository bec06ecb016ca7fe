package main

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/finwise/finwise/core/lesson"
)

type lessonRow struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	PriceInINR float64 `json:"priceInINR"`
	Free       bool    `json:"free"`
	Accessible bool    `json:"accessible"`
}

func (cli *commandLine) listLessons(userID string) error {
	sum, err := cli.progressSvc.Summary(context.Background(), userID)
	if err != nil {
		return err
	}

	data := make([]lessonRow, 0, len(sum.Lessons))
	rows := make([][]string, 0, len(sum.Lessons))
	for _, st := range sum.Lessons {
		data = append(data, lessonRow{ID: st.LessonID, Title: st.Title, PriceInINR: st.PriceInINR, Free: st.Free, Accessible: st.Accessible})
		rows = append(rows, []string{st.LessonID, st.Title, fmt.Sprintf("%v", st.PriceInINR), yesNo(st.Free), yesNo(st.Accessible)})
	}
	return cli.render(data, []string{"ID", "TITLE", "PRICE (INR)", "FREE", "ACCESSIBLE"}, rows)
}

// getLesson is lessonSvc.Get with a "did you mean" hint on unknown ids.
func (cli *commandLine) getLesson(ctx context.Context, id string) (lesson.Lesson, error) {
	l, err := cli.lessonSvc.Get(ctx, id)
	if errors.Cause(err) != lesson.ErrNotFound {
		return l, err
	}
	ids, idsErr := cli.lessonSvc.IDs(ctx)
	if idsErr != nil {
		return l, err
	}
	if best := closest(id, ids); best != "" {
		return l, errors.Wrapf(err, "%q (did you mean %q?)", id, best)
	}
	return l, errors.Wrapf(err, "%q", id)
}
