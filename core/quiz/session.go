package quiz

import (
	"errors"
	"math"
)

// PassPercentage is the minimum rounded percentage to pass a quiz.
const PassPercentage = 70

var (
	ErrNoQuestions    = errors.New("quiz has no questions")
	ErrAnswerRequired = errors.New("an answer is required before moving on")
	ErrInvalidOption  = errors.New("answer is not one of the question's options")
	ErrFinished       = errors.New("quiz session is finished")
	ErrNotFinished    = errors.New("quiz session is not finished")
)

type State int

const (
	StateInProgress State = iota
	StateFinished
)

func (s State) String() string {
	if s == StateFinished {
		return "finished"
	}
	return "in_progress"
}

// Session drives one attempt at a lesson's questions: InProgress(index) -> Finished.
// It is owned by a single caller and is not safe for concurrent use.
type Session struct {
	questions  []Question
	answers    []string // "" means unanswered
	current    int
	finished   bool
	permissive bool
}

type SessionOption func(*Session)

// Permissive accepts answers that are not among the question's options.
func Permissive() SessionOption {
	return func(s *Session) { s.permissive = true }
}

func NewSession(questions []Question, opts ...SessionOption) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	s := &Session{
		questions: append([]Question(nil), questions...),
		answers:   make([]string, len(questions)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Session) State() State {
	if s.finished {
		return StateFinished
	}
	return StateInProgress
}

func (s *Session) CurrentIndex() int { return s.current }
func (s *Session) Len() int          { return len(s.questions) }
func (s *Session) IsLast() bool      { return s.current == len(s.questions)-1 }

func (s *Session) Current() Question {
	return s.questions[s.current]
}

func (s *Session) Questions() []Question {
	return append([]Question(nil), s.questions...)
}

func (s *Session) Answers() []string {
	return append([]string(nil), s.answers...)
}

// Answer returns the selection stored for question i, if any.
func (s *Session) Answer(i int) (string, bool) {
	if i < 0 || i >= len(s.answers) || s.answers[i] == "" {
		return "", false
	}
	return s.answers[i], true
}

// SelectAnswer stores option for the current question, overwriting any prior selection.
func (s *Session) SelectAnswer(option string) error {
	if s.finished {
		return ErrFinished
	}
	if !s.permissive && !s.questions[s.current].HasOption(option) {
		return ErrInvalidOption
	}
	s.answers[s.current] = option
	return nil
}

// Next moves to the following question, or finishes the session on the last one.
func (s *Session) Next() error {
	if s.finished {
		return ErrFinished
	}
	if s.answers[s.current] == "" {
		return ErrAnswerRequired
	}
	if s.IsLast() {
		s.finished = true
		return nil
	}
	s.current++
	return nil
}

// Previous moves back one question; it is a no-op on the first one.
func (s *Session) Previous() error {
	if s.finished {
		return ErrFinished
	}
	if s.current > 0 {
		s.current--
	}
	return nil
}

// Reset returns to the first question with every answer cleared. The question set is kept.
func (s *Session) Reset() {
	s.current = 0
	s.finished = false
	for i := range s.answers {
		s.answers[i] = ""
	}
}

func (s *Session) Score() (Result, error) {
	if !s.finished {
		return Result{}, ErrNotFinished
	}
	res := Result{
		Total:  len(s.questions),
		Review: make([]Review, 0, len(s.questions)),
	}
	for i, q := range s.questions {
		ok := q.IsCorrect(s.answers[i])
		if ok {
			res.Correct++
		}
		res.Review = append(res.Review, Review{
			QuestionID:    q.ID,
			Question:      q.Question,
			Selected:      s.answers[i],
			CorrectAnswer: q.CorrectAnswer,
			IsCorrect:     ok,
		})
	}
	res.Percentage = Percentage(res.Correct, res.Total)
	res.Passed = Passed(res.Percentage)
	return res, nil
}

// Percentage returns round(correct / total * 100).
func Percentage(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

func Passed(percentage int) bool {
	return percentage >= PassPercentage
}
