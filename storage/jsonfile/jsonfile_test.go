package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finwise/finwise/core"
	"github.com/finwise/finwise/core/lesson"
	"github.com/finwise/finwise/core/progress"
	"github.com/finwise/finwise/core/quiz"
	"github.com/finwise/finwise/tests"
)

func setup(t *testing.T) *DB {
	dir := t.TempDir()
	testutil.WriteJSON(t, dir, LessonsFile, []lesson.Lesson{
		testutil.NewLesson("1", 0),
		testutil.NewLesson("2", 199),
	})
	testutil.WriteJSON(t, dir, QuizzesFile, []quiz.Question{
		testutil.NewQuestion("q1", "1", "A"),
		testutil.NewQuestion("q2", "2", "B"),
		testutil.NewQuestion("q3", "1", "C"),
	})
	db, err := Open(dir)
	require.NoError(t, err)
	return db
}

func TestOpen(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing"))
	assert.True(t, core.IsStorageUnavailable(err))

	f := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(f, nil, 0o644))
	_, err = Open(f)
	assert.True(t, core.IsStorageUnavailable(err))
}

func TestLessonRepository(t *testing.T) {
	db := setup(t)
	repo := NewLessonRepository(db)
	ctx := context.Background()

	lessons, err := repo.QueryAllLessons(ctx)
	require.NoError(t, err)
	assert.Equal(t, []lesson.Lesson{testutil.NewLesson("1", 0), testutil.NewLesson("2", 199)}, lessons)

	l, err := repo.GetLessonByID(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, 199.0, l.PriceInINR)

	_, err = repo.GetLessonByID(ctx, "3")
	assert.Equal(t, lesson.ErrNotFound, err)

	// unreadable store is not "not found"
	require.NoError(t, os.WriteFile(db.path(LessonsFile), []byte("{oops"), 0o644))
	_, err = repo.GetLessonByID(ctx, "2")
	assert.True(t, core.IsStorageUnavailable(err))
	assert.NotEqual(t, lesson.ErrNotFound, errors.Cause(err))

	require.NoError(t, os.Remove(db.path(LessonsFile)))
	_, err = repo.QueryAllLessons(ctx)
	assert.True(t, core.IsStorageUnavailable(err))
}

func TestQuizRepository(t *testing.T) {
	db := setup(t)
	repo := NewQuizRepository(db)
	ctx := context.Background()

	qs, err := repo.QueryQuizzesByLesson(ctx, "1")
	require.NoError(t, err)
	require.Len(t, qs, 2)
	assert.Equal(t, "q1", qs[0].ID)
	assert.Equal(t, "q3", qs[1].ID)

	qs, err = repo.QueryQuizzesByLesson(ctx, "9")
	require.NoError(t, err)
	assert.Empty(t, qs)

	require.NoError(t, os.Remove(db.path(QuizzesFile)))
	_, err = repo.QueryQuizzesByLesson(ctx, "1")
	assert.True(t, core.IsStorageUnavailable(err))
}

func TestLedger(t *testing.T) {
	db := setup(t)
	ldg := NewLedger(db)
	ctx := context.Background()

	// missing file is an empty ledger
	records, err := ldg.QueryAllRecords(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	for _, rec := range []progress.Record{
		{UserID: "u1", LessonID: "1", Completed: false},
		{UserID: "u1", LessonID: "2", Completed: true},
		{UserID: "u1", LessonID: "1", Completed: true},
		{UserID: "u1", LessonID: "1", Completed: true},
	} {
		got, err := ldg.UpsertRecord(ctx, rec)
		require.NoError(t, err)
		assert.Equal(t, rec, got)
	}

	records, err = ldg.QueryAllRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, []progress.Record{
		{UserID: "u1", LessonID: "1", Completed: true},
		{UserID: "u1", LessonID: "2", Completed: true},
	}, records)

	data, err := os.ReadFile(db.path(ProgressFile))
	require.NoError(t, err)
	assert.Equal(t, `[
  {
    "userId": "u1",
    "lessonId": "1",
    "completed": true
  },
  {
    "userId": "u1",
    "lessonId": "2",
    "completed": true
  }
]`, string(data))
}

func TestLedger_keepsFileMode(t *testing.T) {
	tests := []struct {
		name     string
		existing os.FileMode // 0 means no progress.json yet
		wantMode os.FileMode
	}{
		{name: "new file", wantMode: 0o644},
		{name: "world readable", existing: 0o644, wantMode: 0o644},
		{name: "group readable", existing: 0o640, wantMode: 0o640},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setup(t)
			if tt.existing != 0 {
				require.NoError(t, os.WriteFile(db.path(ProgressFile), []byte(`[]`), tt.existing))
				require.NoError(t, os.Chmod(db.path(ProgressFile), tt.existing))
			}

			_, err := NewLedger(db).UpsertRecord(context.Background(), progress.Record{UserID: "u1", LessonID: "1", Completed: true})
			require.NoError(t, err)

			fi, err := os.Stat(db.path(ProgressFile))
			require.NoError(t, err)
			assert.Equal(t, tt.wantMode, fi.Mode().Perm())
		})
	}
}

func TestLedger_failedWriteKeepsState(t *testing.T) {
	db := setup(t)
	ldg := NewLedger(db)
	ctx := context.Background()

	_, err := ldg.UpsertRecord(ctx, progress.Record{UserID: "u1", LessonID: "1", Completed: true})
	require.NoError(t, err)

	renameFunc = func(_, _ string) error { return os.ErrPermission }
	defer func() { renameFunc = os.Rename }()

	_, err = ldg.UpsertRecord(ctx, progress.Record{UserID: "u1", LessonID: "2", Completed: true})
	assert.True(t, core.IsStorageUnavailable(err))

	renameFunc = os.Rename
	records, err := ldg.QueryAllRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, []progress.Record{{UserID: "u1", LessonID: "1", Completed: true}}, records)

	// no temp file left behind
	entries, err := os.ReadDir(db.Dir())
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestLedger_corruptFile(t *testing.T) {
	db := setup(t)
	require.NoError(t, os.WriteFile(db.path(ProgressFile), []byte("not json"), 0o644))

	_, err := NewLedger(db).UpsertRecord(context.Background(), progress.Record{UserID: "u1", LessonID: "1"})
	assert.True(t, core.IsStorageUnavailable(err))

	data, err := os.ReadFile(db.path(ProgressFile))
	require.NoError(t, err)
	assert.Equal(t, "not json", string(data))
}

func TestLedger_concurrentUpserts(t *testing.T) {
	db := setup(t)
	ldg := NewLedger(db)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rec := progress.Record{UserID: "u" + string(rune('a'+i)), LessonID: "1", Completed: true}
			_, err := ldg.UpsertRecord(ctx, rec)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	records, err := ldg.QueryAllRecords(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 20) // no lost update
}
