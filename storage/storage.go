// Package storage picks the backing store configured by storage.engine.
package storage

import (
	"github.com/pkg/errors"

	"github.com/finwise/finwise/core"
	"github.com/finwise/finwise/core/lesson"
	"github.com/finwise/finwise/core/progress"
	"github.com/finwise/finwise/core/quiz"
	"github.com/finwise/finwise/storage/inmem"
	"github.com/finwise/finwise/storage/jsonfile"
)

type Repos struct {
	Lessons lesson.Repository
	Quizzes quiz.Repository
	Ledger  progress.Ledger
}

// Open returns the repositories of the configured engine.
// The memory engine is seeded once from the data directory and never writes back.
func Open(conf *core.Config) (*Repos, error) {
	fdb, err := jsonfile.Open(conf.DataPath())
	if err != nil {
		return nil, err
	}

	switch conf.Storage.Engine {
	case core.StorageJSONFile:
		return &Repos{
			Lessons: jsonfile.NewLessonRepository(fdb),
			Quizzes: jsonfile.NewQuizRepository(fdb),
			Ledger:  jsonfile.NewLedger(fdb),
		}, nil
	case core.StorageMemory:
		lessons, quizzes, records, err := fdb.Snapshot()
		if err != nil {
			return nil, errors.Wrap(err, "seeding memory store")
		}
		mdb := inmem.Open()
		mdb.Seed(lessons, quizzes, records)
		return &Repos{
			Lessons: inmem.NewLessonRepository(mdb),
			Quizzes: inmem.NewQuizRepository(mdb),
			Ledger:  inmem.NewLedger(mdb),
		}, nil
	default:
		return nil, errors.Errorf("unknown storage engine %q", conf.Storage.Engine)
	}
}
