package main

import (
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/finwise/finwise/core"
	"github.com/finwise/finwise/core/lesson"
	"github.com/finwise/finwise/core/progress"
	"github.com/finwise/finwise/core/purchase"
	"github.com/finwise/finwise/core/quiz"
	logsvc "github.com/finwise/finwise/services/logger"
	"github.com/finwise/finwise/storage"
)

func main() {
	conf := core.NewConfig()

	// diagnostics go to stderr so that JSON output stays pipeable
	logger := logsvc.NewRollbarLogger(
		log.New(os.Stderr, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug && conf.RollbarToken != "")

	repos, err := storage.Open(conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up %s storage: %v", conf.Storage.Engine, err), err)
	}

	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)

	// start CLI
	cli := commandLine{
		defaultUser: conf.DefaultUserID,
		lessonSvc:   lesson.NewService(repos.Lessons),
		progressSvc: progress.NewService(repos.Ledger, repos.Lessons),
		quizSvc:     quiz.NewService(repos.Quizzes),
		purchaseSvc: purchase.NewService(conf.Purchase.Currency, logger),
		logger:      logger,
		validate:    validate,
		translator:  translator,
		in:          os.Stdin,
		out:         os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			fmt.Fprintf(os.Stderr, "\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}
