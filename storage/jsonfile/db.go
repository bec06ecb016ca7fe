package jsonfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/finwise/finwise/core"
	"github.com/finwise/finwise/core/lesson"
	"github.com/finwise/finwise/core/progress"
	"github.com/finwise/finwise/core/quiz"
)

const (
	LessonsFile  = "lessons.json"
	QuizzesFile  = "quizzes.json"
	ProgressFile = "progress.json"
)

const newFilePerm = 0o644

var renameFunc = os.Rename // mockable

// DB is a directory of flat JSON files. Every call reads the whole file; ledger writes rewrite it.
type DB struct {
	dir string

	// serializes the read-modify-write cycles of the ledger
	mutex sync.Mutex
}

func Open(dir string) (*DB, error) {
	fi, err := os.Stat(dir)
	if err != nil {
		return nil, core.NewStorageError("opening "+dir, err)
	}
	if !fi.IsDir() {
		return nil, core.NewStorageError("opening "+dir, errors.New("not a directory"))
	}
	return &DB{dir: dir}, nil
}

func (db *DB) Dir() string { return db.dir }

func (db *DB) path(name string) string {
	return filepath.Join(db.dir, name)
}

// read decodes file `name` into v. A missing file leaves v untouched when missingOK.
func (db *DB) read(name string, v interface{}, missingOK bool) error {
	data, err := os.ReadFile(db.path(name))
	if err != nil {
		if missingOK && os.IsNotExist(err) {
			return nil
		}
		return core.NewStorageError("reading "+name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return core.NewStorageError("decoding "+name, err)
	}
	return nil
}

// write replaces file `name` with the indented JSON of v. The previous content survives any failure.
func (db *DB) write(name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return core.NewStorageError("encoding "+name, err)
	}

	tmp, err := os.CreateTemp(db.dir, "."+name+".*")
	if err != nil {
		return core.NewStorageError("writing "+name, err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	// CreateTemp uses 0600; keep the mode of the file being replaced
	perm := os.FileMode(newFilePerm)
	if fi, sErr := os.Stat(db.path(name)); sErr == nil {
		perm = fi.Mode().Perm()
	}
	if err = tmp.Chmod(perm); err == nil {
		_, err = tmp.Write(data)
	}
	if err == nil {
		err = tmp.Sync()
	}
	if cErr := tmp.Close(); err == nil {
		err = cErr
	}
	if err != nil {
		cleanup()
		return core.NewStorageError("writing "+name, err)
	}
	if err = renameFunc(tmpName, db.path(name)); err != nil {
		cleanup()
		return core.NewStorageError("writing "+name, err)
	}
	return nil
}

// Snapshot reads the three files at once, e.g. to seed another store.
func (db *DB) Snapshot() ([]lesson.Lesson, []quiz.Question, []progress.Record, error) {
	var (
		lessons []lesson.Lesson
		quizzes []quiz.Question
		records []progress.Record
	)
	if err := db.read(LessonsFile, &lessons, false); err != nil {
		return nil, nil, nil, err
	}
	if err := db.read(QuizzesFile, &quizzes, false); err != nil {
		return nil, nil, nil, err
	}
	db.mutex.Lock()
	defer db.mutex.Unlock()
	if err := db.read(ProgressFile, &records, true); err != nil {
		return nil, nil, nil, err
	}
	return lessons, quizzes, records, nil
}
