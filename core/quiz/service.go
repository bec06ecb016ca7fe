package quiz

import (
	"context"

	"github.com/pkg/errors"
)

var ErrAnswerCount = errors.New("more answers than questions")

type (
	// Repository is a read-only provider of the quiz bank.
	Repository interface {
		// QueryQuizzesByLesson returns the lesson's questions in storage order; none is not an error.
		QueryQuizzesByLesson(ctx context.Context, lessonID string) ([]Question, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Get(ctx context.Context, lessonID string) ([]Question, error) {
	return svc.repo.QueryQuizzesByLesson(ctx, lessonID)
}

// Start opens a new Session over the lesson's questions.
func (svc *Service) Start(ctx context.Context, lessonID string, opts ...SessionOption) (*Session, error) {
	questions, err := svc.repo.QueryQuizzesByLesson(ctx, lessonID)
	if err != nil {
		return nil, errors.Wrap(err, "querying quizzes")
	}
	return NewSession(questions, opts...)
}

// Grade replays answers through a Session, one per question in order, and scores it.
func (svc *Service) Grade(ctx context.Context, lessonID string, answers []string, opts ...SessionOption) (Result, error) {
	sess, err := svc.Start(ctx, lessonID, opts...)
	if err != nil {
		return Result{}, err
	}
	if len(answers) > sess.Len() {
		return Result{}, ErrAnswerCount
	}
	for _, answer := range answers {
		if err := sess.SelectAnswer(answer); err != nil {
			return Result{}, errors.Wrapf(err, "answering question %d", sess.CurrentIndex()+1)
		}
		if err := sess.Next(); err != nil {
			return Result{}, errors.Wrapf(err, "leaving question %d", sess.CurrentIndex()+1)
		}
	}
	if sess.State() != StateFinished {
		// the first unanswered question blocks the session
		return Result{}, errors.Wrapf(ErrAnswerRequired, "answering question %d", sess.CurrentIndex()+1)
	}
	return sess.Score()
}
