package logsvc

import (
	"bytes"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/finwise/finwise/core"
)

func TestRollbarLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewRollbarLogger(log.New(&buf, "TEST : ", 0), &core.Config{Env: "TEST", Build: "test"})
	logger.Enable(false)

	logger.Info("Processing payment", core.Learner{ID: "u1"})
	logger.Error("writing progress.json", errors.New("disk full"), map[string]interface{}{"lessonId": "3"})
	logger.Warn("unlock failed", map[string]interface{}{"txn": "txn_1_abc", "lessonId": "3"}, 42)

	assert.Equal(t, "TEST : [INFO] Processing payment learner=u1\n"+
		"TEST : [ERROR] writing progress.json err=\"disk full\" lessonId=3\n"+
		"TEST : [WARN] unlock failed lessonId=3 txn=txn_1_abc 42\n", buf.String())
}

func TestRollbarLogger_prepare(t *testing.T) {
	logger := RollbarLogger{}
	err := errors.New("boom")

	args := logger.prepare("msg", []interface{}{core.Learner{ID: "u1"}, err, core.Learner{ID: "u2"}})
	assert.Equal(t, []interface{}{"msg", err}, args)
}
