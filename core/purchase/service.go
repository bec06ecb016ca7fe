package purchase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/finwise/finwise/core"
)

var (
	nowFunc    = time.Now // mockable
	suffixFunc = randomSuffix
)

// Service simulates a payment rail. It has no durable effect: callers unlock the lesson
// through the progress ledger afterwards, and a failure in between is not reconciled.
type Service struct {
	currency string
	logger   core.Logger
}

func NewService(currency string, logger core.Logger) *Service {
	return &Service{currency: currency, logger: logger}
}

// Purchase always succeeds and fabricates a receipt echoing the request.
func (svc *Service) Purchase(req Request) Receipt {
	now := nowFunc().UTC()
	svc.logger.Info(
		fmt.Sprintf("Processing payment for user %s: %s%v for lesson %s", req.UserID, svc.currency, req.Amount, req.LessonID),
		core.Learner{ID: req.UserID},
	)
	return Receipt{
		Success:       true,
		TransactionID: NewTransactionID(now),
		LessonID:      req.LessonID,
		Amount:        req.Amount,
		Currency:      svc.currency,
		UserID:        req.UserID,
		Timestamp:     now,
	}
}

// NewTransactionID returns "txn_<unix millis>_<9 random chars>".
func NewTransactionID(t time.Time) string {
	return fmt.Sprintf("txn_%d_%s", t.UnixNano()/int64(time.Millisecond), suffixFunc())
}

func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
}
