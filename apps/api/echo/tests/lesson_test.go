package tests

import (
	"net/http"
	"testing"

	. "github.com/finwise/finwise/apps/api/echo"
	"github.com/finwise/finwise/core/progress"
	"github.com/finwise/finwise/storage/inmem"
	"github.com/finwise/finwise/tests"
)

func TestHome(t *testing.T) {
	e := setup(t)
	req, rec := newRequest(http.MethodGet, "/")
	e.app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || rec.Body.String() != "Welcome to Finwise API!" {
		t.Errorf("home: code = %v; body = %q", rec.Code, rec.Body.String())
	}
}

func Test_lessonApi(t *testing.T) {
	e := setup(t, progress.Record{UserID: "user2", LessonID: "2", Completed: true})
	lessons := catalog()

	tests := []httpTest{
		{
			name:     "list",
			method:   http.MethodGet,
			path:     "/v1/lessons",
			wantCode: http.StatusOK,
			wantData: marchallList(t, lessons[0], lessons[1], lessons[2]),
		},
		{
			name:     "trailing slash",
			method:   http.MethodGet,
			path:     "/v1/lessons/",
			wantCode: http.StatusOK,
			wantData: marchallList(t, lessons[0], lessons[1], lessons[2]),
		},
		{
			name:     "retrieve",
			method:   http.MethodGet,
			path:     "/v1/lessons/2",
			wantCode: http.StatusOK,
			wantData: marchallObj(t, lessons[1]),
		},
		{
			name:     "retrieve unknown",
			method:   http.MethodGet,
			path:     "/v1/lessons/42",
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, httpErr{Error: "lesson not found"}),
		},
		{
			name:     "free lesson is accessible",
			method:   http.MethodGet,
			path:     "/v1/lessons/1/access",
			wantCode: http.StatusOK,
			wantData: marchallObj(t, AccessResponse{LessonID: "1", UserID: defaultUser, Free: true, Accessible: true}),
		},
		{
			name:     "paid lesson is locked",
			method:   http.MethodGet,
			path:     "/v1/lessons/2/access",
			wantCode: http.StatusOK,
			wantData: marchallObj(t, AccessResponse{LessonID: "2", UserID: defaultUser}),
		},
		{
			name:     "paid lesson completed by header user",
			method:   http.MethodGet,
			path:     "/v1/lessons/2/access",
			userID:   "user2",
			wantCode: http.StatusOK,
			wantData: marchallObj(t, AccessResponse{LessonID: "2", UserID: "user2", Accessible: true}),
		},
		{
			name:     "user from query",
			method:   http.MethodGet,
			path:     "/v1/lessons/2/access?userId=user2",
			wantCode: http.StatusOK,
			wantData: marchallObj(t, AccessResponse{LessonID: "2", UserID: "user2", Accessible: true}),
		},
		{
			name:     "access unknown",
			method:   http.MethodGet,
			path:     "/v1/lessons/42/access",
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, httpErr{Error: "lesson not found"}),
		},
		{
			name:     "bad user id",
			method:   http.MethodGet,
			path:     "/v1/lessons",
			userID:   "../etc",
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"userId": "invalid user id"}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkCodeAndData(t, tt, do(e.app, tt))
		})
	}
}

func Test_lessonApi_emptyCatalog(t *testing.T) {
	db := testutil.PrepareDB(nil, nil, nil)
	e := setupWith(t, db, inmem.NewLedger(db))

	tt := httpTest{method: http.MethodGet, path: "/v1/lessons", wantCode: http.StatusOK, wantData: []byte(`[]`)}
	checkCodeAndData(t, tt, do(e.app, tt))
}
