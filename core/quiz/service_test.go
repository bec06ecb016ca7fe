package quiz_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finwise/finwise/core/quiz"
	"github.com/finwise/finwise/storage/inmem"
	"github.com/finwise/finwise/tests"
)

func newService() *quiz.Service {
	db := testutil.PrepareDB(nil, []quiz.Question{
		testutil.NewQuestion("q1", "l1", "A"),
		testutil.NewQuestion("q2", "l2", "C"),
		testutil.NewQuestion("q3", "l1", "B"),
	}, nil)
	return quiz.NewService(inmem.NewQuizRepository(db))
}

func TestService_Get(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	qs, err := svc.Get(ctx, "l1")
	require.NoError(t, err)
	require.Len(t, qs, 2)
	assert.Equal(t, "q1", qs[0].ID)
	assert.Equal(t, "q3", qs[1].ID)

	qs, err = svc.Get(ctx, "unknown")
	require.NoError(t, err)
	assert.NotNil(t, qs)
	assert.Empty(t, qs)
}

func TestService_Start(t *testing.T) {
	svc := newService()

	_, err := svc.Start(context.Background(), "unknown")
	assert.Equal(t, quiz.ErrNoQuestions, err)

	sess, err := svc.Start(context.Background(), "l2")
	require.NoError(t, err)
	assert.Equal(t, 1, sess.Len())
}

func TestService_Grade(t *testing.T) {
	svc := newService()

	tests := []struct {
		name           string
		lessonID       string
		answers        []string
		opts           []quiz.SessionOption
		wantErr        error
		wantPercentage int
		wantPassed     bool
	}{
		{name: "all correct", lessonID: "l1", answers: []string{"A", "B"}, wantPercentage: 100, wantPassed: true},
		{name: "half", lessonID: "l1", answers: []string{"A", "C"}, wantPercentage: 50},
		{name: "missing answer", lessonID: "l1", answers: []string{"A"}, wantErr: quiz.ErrAnswerRequired},
		{name: "empty answer", lessonID: "l1", answers: []string{"A", ""}, wantErr: quiz.ErrInvalidOption},
		{name: "empty answer (permissive)", lessonID: "l1", answers: []string{"A", ""}, opts: []quiz.SessionOption{quiz.Permissive()}, wantErr: quiz.ErrAnswerRequired},
		{name: "invalid option", lessonID: "l1", answers: []string{"A", "Z"}, wantErr: quiz.ErrInvalidOption},
		{name: "too many answers", lessonID: "l2", answers: []string{"C", "C"}, wantErr: quiz.ErrAnswerCount},
		{name: "no questions", lessonID: "l9", answers: []string{"A"}, wantErr: quiz.ErrNoQuestions},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Grade(context.Background(), tt.lessonID, tt.answers, tt.opts...)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, errors.Cause(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPercentage, res.Percentage)
			assert.Equal(t, tt.wantPassed, res.Passed)
		})
	}
}
