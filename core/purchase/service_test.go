package purchase

import (
	"regexp"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finwise/finwise/core"
	"github.com/finwise/finwise/tests"
)

func TestService_Purchase(t *testing.T) {
	fixed := time.Date(2024, 3, 1, 10, 30, 0, 0, time.FixedZone("IST", 19800))
	nowFunc = func() time.Time { return fixed }
	suffixFunc = func() string { return "abc123xyz" }
	defer func() {
		nowFunc = time.Now
		suffixFunc = randomSuffix
	}()

	logger := testutil.NewLogger()
	svc := NewService("INR", logger)

	rcpt := svc.Purchase(Request{UserID: "u1", LessonID: "l1", Amount: 100})
	assert.Equal(t, Receipt{
		Success:       true,
		TransactionID: "txn_1709269200000_abc123xyz",
		LessonID:      "l1",
		Amount:        100,
		Currency:      "INR",
		UserID:        "u1",
		Timestamp:     fixed.UTC(),
	}, rcpt)

	infos := logger.Entries("info")
	require.Len(t, infos, 1)
	assert.Equal(t, "Processing payment for user u1: INR100 for lesson l1", infos[0].Msg)
	assert.Equal(t, []interface{}{core.Learner{ID: "u1"}}, infos[0].Args)
}

func TestNewTransactionID(t *testing.T) {
	pattern := regexp.MustCompile(`^txn_\d{13}_[0-9a-f]{9}$`)
	now := time.Now()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewTransactionID(now)
		assert.Regexp(t, pattern, id)
		assert.False(t, seen[id], "duplicate transaction id %s", id)
		seen[id] = true
	}
}

func TestRequest_Validate(t *testing.T) {
	validate := validator.New()
	core.InitValidators(validate, core.NewTranslator())

	tests := []struct {
		name    string
		req     Request
		wantErr bool
	}{
		{name: "valid", req: Request{UserID: " u1 ", LessonID: "l1", Amount: 100}},
		{name: "free", req: Request{UserID: "u1", LessonID: "l1"}},
		{name: "negative amount", req: Request{UserID: "u1", LessonID: "l1", Amount: -1}, wantErr: true},
		{name: "missing user", req: Request{LessonID: "l1", Amount: 1}, wantErr: true},
		{name: "bad lesson id", req: Request{UserID: "u1", LessonID: "l 1", Amount: 1}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate(validate)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
