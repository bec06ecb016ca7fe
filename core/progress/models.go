package progress

import (
	"github.com/go-playground/validator/v10"

	"github.com/finwise/finwise/core"
)

// Record is the durable fact that a user has (or has not) completed a lesson.
// (UserID, LessonID) is the natural key: the ledger holds at most one Record per key.
type Record struct {
	UserID    string `json:"userId"`
	LessonID  string `json:"lessonId"`
	Completed bool   `json:"completed"`
}

func (r Record) Key() Key {
	return Key{UserID: r.UserID, LessonID: r.LessonID}
}

type Key struct {
	UserID   string
	LessonID string
}

// Upsert contains the information needed to create or replace a Record.
type Upsert struct {
	UserID    string `json:"userId" validate:"required,ident"`
	LessonID  string `json:"lessonId" validate:"required,ident"`
	Completed bool   `json:"completed"`
}

func (u *Upsert) Validate(validate *validator.Validate) error {
	u.UserID = core.CleanString(u.UserID)
	u.LessonID = core.CleanString(u.LessonID)
	return validate.Struct(u)
}

func (u Upsert) Record() Record {
	return Record{UserID: u.UserID, LessonID: u.LessonID, Completed: u.Completed}
}
