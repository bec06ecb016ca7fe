package purchase

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/finwise/finwise/core"
)

// Request asks the simulator to "pay" amount for a lesson.
type Request struct {
	UserID   string  `json:"userId" validate:"required,ident"`
	LessonID string  `json:"lessonId" validate:"required,ident"`
	Amount   float64 `json:"amount" validate:"gte=0,money"`
}

func (r *Request) Validate(validate *validator.Validate) error {
	r.UserID = core.CleanString(r.UserID)
	r.LessonID = core.CleanString(r.LessonID)
	return validate.Struct(r)
}

// Receipt is the ephemeral proof of a simulated payment. It is never persisted:
// the purchase only becomes durable once the lesson is marked completed in the progress ledger.
type Receipt struct {
	Success       bool      `json:"success"`
	TransactionID string    `json:"transactionId"`
	LessonID      string    `json:"lessonId"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	UserID        string    `json:"userId"`
	Timestamp     time.Time `json:"timestamp"` // UTC
}
