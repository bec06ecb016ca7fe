package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	. "github.com/finwise/finwise/apps/api/echo"
	"github.com/finwise/finwise/core"
	"github.com/finwise/finwise/core/lesson"
	"github.com/finwise/finwise/core/progress"
	"github.com/finwise/finwise/core/purchase"
	"github.com/finwise/finwise/core/quiz"
	"github.com/finwise/finwise/storage/inmem"
	"github.com/finwise/finwise/tests"
)

const defaultUser = "user1"

type env struct {
	app    Server
	db     *inmem.DB
	logger *testutil.Logger
}

func catalog() []lesson.Lesson {
	return []lesson.Lesson{
		testutil.NewLesson("1", 0),
		testutil.NewLesson("2", 199),
		testutil.NewLesson("3", 499),
	}
}

func questions() []quiz.Question {
	return []quiz.Question{
		testutil.NewQuestion("q1", "1", "A"),
		testutil.NewQuestion("q2", "1", "B"),
		testutil.NewQuestion("q3", "2", "C"),
	}
}

func setup(t *testing.T, records ...progress.Record) env {
	t.Helper()
	db := testutil.PrepareDB(catalog(), questions(), records)
	return setupWith(t, db, inmem.NewLedger(db))
}

// setupWith lets tests swap the ledger, e.g. for one that fails.
func setupWith(t *testing.T, db *inmem.DB, ledger progress.Ledger) env {
	t.Helper()
	logger := testutil.NewLogger()
	conf := &core.Config{
		TestMode:      true,
		DefaultUserID: defaultUser,
		Server:        core.ServerConfig{DisableReqLogs: true},
		Purchase:      core.PurchaseConfig{Currency: "₹"},
	}

	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)

	lessonRepo := inmem.NewLessonRepository(db)
	app := NewServer(ServerDeps{
		Conf:        conf,
		Logger:      logger,
		LessonSvc:   lesson.NewService(lessonRepo),
		ProgressSvc: progress.NewService(ledger, lessonRepo),
		QuizSvc:     quiz.NewService(inmem.NewQuizRepository(db)),
		PurchaseSvc: purchase.NewService(conf.Purchase.Currency, logger),
		Validate:    validate,
		Translator:  translator,
	})
	t.Cleanup(func() { _ = app.Close() })
	return env{app: app, db: db, logger: logger}
}

type failingLedger struct{}

func (failingLedger) QueryAllRecords(context.Context) ([]progress.Record, error) {
	return nil, core.NewStorageError("reading progress.json", assert.AnError)
}

func (failingLedger) UpsertRecord(context.Context, progress.Record) (progress.Record, error) {
	return progress.Record{}, core.NewStorageError("writing progress.json", assert.AnError)
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	userID   string
	wantCode int
	wantData []byte
}

func newUserRequest(method, path, userID string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newUserRequest(method, path, "", data...)
}

func do(app Server, tt httpTest) *httptest.ResponseRecorder {
	req, rec := newUserRequest(tt.method, tt.path, tt.userID, tt.body)
	app.ServeHTTP(rec, req)
	return rec
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func marchallList(t *testing.T, objs ...interface{}) []byte {
	if objs == nil {
		objs = []interface{}{}
	}
	data, err := json.Marshal(objs)
	if err != nil {
		t.Fatalf("marchallList() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
