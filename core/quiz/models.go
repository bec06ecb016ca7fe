package quiz

// Question is a multiple-choice question of a lesson. CorrectAnswer is one of Options.
type Question struct {
	ID            string   `json:"id"`
	LessonID      string   `json:"lessonId"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

func (q Question) HasOption(option string) bool {
	for _, opt := range q.Options {
		if opt == option {
			return true
		}
	}
	return false
}

// IsCorrect compares answer with CorrectAnswer (exact, case-sensitive).
func (q Question) IsCorrect(answer string) bool {
	return answer != "" && answer == q.CorrectAnswer
}

// Attempt is a full set of answers submitted at once, aligned with the lesson's questions.
type Attempt struct {
	Answers []string `json:"answers" validate:"required"`
}

type (
	Review struct {
		QuestionID    string `json:"questionId"`
		Question      string `json:"question"`
		Selected      string `json:"selected"`
		CorrectAnswer string `json:"correctAnswer"`
		IsCorrect     bool   `json:"isCorrect"`
	}

	Result struct {
		Correct    int      `json:"correct"`
		Total      int      `json:"total"`
		Percentage int      `json:"percentage"`
		Passed     bool     `json:"passed"`
		Review     []Review `json:"review"`
	}
)
