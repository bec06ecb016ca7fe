package logsvc

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/rollbar/rollbar-go"
	"github.com/rollbar/rollbar-go/errors"

	"github.com/finwise/finwise/core"
)

type RollbarLogger struct {
	std *log.Logger
}

var _ core.Logger = (*RollbarLogger)(nil)

func NewRollbarLogger(std *log.Logger, conf *core.Config) *RollbarLogger {
	rollbar.SetToken(conf.RollbarToken)
	rollbar.SetEnvironment(conf.Env)
	rollbar.SetServerHost(conf.Server.Host)
	rollbar.SetCodeVersion(conf.Build)
	rollbar.SetStackTracer(errors.StackTracer)
	return &RollbarLogger{std: std}
}

func (l RollbarLogger) Enable(enabled bool) {
	rollbar.SetEnabled(enabled)
}

// expected fmt: msg | error, map[string]interface{}, core.Learner
func (l RollbarLogger) prepare(msg string, args []interface{}) []interface{} {
	var lrnSet bool
	newArgs := make([]interface{}, 0, len(args)+1)
	newArgs = append(newArgs, msg)
	for _, arg := range args {
		if lrn, ok := arg.(core.Learner); ok {
			if !lrnSet { // only set one Learner
				rollbar.SetPerson(lrn.ID, lrn.ID, "")
				lrnSet = true
			}
		} else {
			newArgs = append(newArgs, arg)
		}
	}
	if !lrnSet {
		rollbar.ClearPerson()
	}
	return newArgs
}

// print writes one line per entry: "[LEVEL] msg key=value ...". Map keys are sorted.
func (l RollbarLogger) print(level, msg string, args []interface{}) {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", level, msg)
	for _, arg := range args {
		switch v := arg.(type) {
		case core.Learner:
			fmt.Fprintf(&b, " learner=%s", v.ID)
		case error:
			fmt.Fprintf(&b, " err=%q", v.Error())
		case map[string]interface{}:
			keys := make([]string, 0, len(v))
			for k := range v {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(&b, " %s=%v", k, v[k])
			}
		default:
			fmt.Fprintf(&b, " %+v", v)
		}
	}
	l.std.Print(b.String())
}

func (l RollbarLogger) Debug(msg string, args ...interface{}) {
	rollbar.Debug(l.prepare(msg, args)...)
	l.print("DEBUG", msg, args)
}

func (l RollbarLogger) Info(msg string, args ...interface{}) {
	rollbar.Info(l.prepare(msg, args)...)
	l.print("INFO", msg, args)
}

func (l RollbarLogger) Warn(msg string, args ...interface{}) {
	rollbar.Warning(l.prepare(msg, args)...)
	l.print("WARN", msg, args)
}

func (l RollbarLogger) Error(msg string, args ...interface{}) {
	rollbar.Error(l.prepare(msg, args)...)
	l.print("ERROR", msg, args)
}

func (l RollbarLogger) Fatal(msg string, args ...interface{}) {
	rollbar.Critical(l.prepare(msg, args)...)
	l.print("FATAL", msg, args)
	rollbar.Wait()
	l.std.Fatal(msg)
}
