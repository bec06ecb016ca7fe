package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/finwise/finwise/core"
	"github.com/finwise/finwise/core/lesson"
	"github.com/finwise/finwise/core/progress"
	"github.com/finwise/finwise/core/purchase"
	"github.com/finwise/finwise/core/quiz"
)

var (
	isTerminalFunc = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) } // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	defaultUser string
	lessonSvc   *lesson.Service
	progressSvc *progress.Service
	quizSvc     *quiz.Service
	purchaseSvc *purchase.Service
	logger      core.Logger
	validate    *validator.Validate
	translator  ut.Translator

	in  io.Reader
	out io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  lessons [-user USER]                       - list lessons and whether USER can open them")
	fmt.Fprintln(cli.out, "  complete [-user USER] -lesson ID [-undo]   - mark a lesson (not) completed")
	fmt.Fprintln(cli.out, "  buy [-user USER] -lesson ID                - simulate a purchase, then unlock the lesson")
	fmt.Fprintln(cli.out, "  stats [-user USER]                         - progress summary")
	fmt.Fprintln(cli.out, "  quiz -lesson ID                            - take the lesson quiz interactively")
}

// inputError turns validator errors into "invalid input: field: message" with the API's wording.
func (cli *commandLine) inputError(err error) error {
	vErrs, ok := errors.Cause(err).(validator.ValidationErrors)
	if !ok {
		return err
	}
	msgs := make([]string, 0, len(vErrs))
	for _, fe := range vErrs {
		msgs = append(msgs, fe.Field()+": "+fe.Translate(cli.translator))
	}
	return errors.Errorf("invalid input: %s", strings.Join(msgs, "; "))
}

func (cli *commandLine) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cli.out)
	return fs
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	lessonsCmd := cli.newFlagSet("lessons")
	lessonsUser := lessonsCmd.String("user", cli.defaultUser, "The learner id.")

	completeCmd := cli.newFlagSet("complete")
	completeUser := completeCmd.String("user", cli.defaultUser, "The learner id.")
	completeLesson := completeCmd.String("lesson", "", "The lesson id.")
	completeUndo := completeCmd.Bool("undo", false, "Mark the lesson as not completed.")

	buyCmd := cli.newFlagSet("buy")
	buyUser := buyCmd.String("user", cli.defaultUser, "The learner id.")
	buyLesson := buyCmd.String("lesson", "", "The lesson id.")

	statsCmd := cli.newFlagSet("stats")
	statsUser := statsCmd.String("user", cli.defaultUser, "The learner id.")

	quizCmd := cli.newFlagSet("quiz")
	quizLesson := quizCmd.String("lesson", "", "The lesson id.")

	switch args[1] {
	case "lessons":
		if err := lessonsCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		return cli.listLessons(*lessonsUser)
	case "complete":
		if err := completeCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *completeLesson == "" || *completeUser == "" {
			completeCmd.Usage()
			return errHelp
		}
		return cli.complete(*completeUser, *completeLesson, !*completeUndo)
	case "buy":
		if err := buyCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *buyLesson == "" || *buyUser == "" {
			buyCmd.Usage()
			return errHelp
		}
		return cli.buy(*buyUser, *buyLesson)
	case "stats":
		if err := statsCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		return cli.stats(*statsUser)
	case "quiz":
		if err := quizCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *quizLesson == "" {
			quizCmd.Usage()
			return errHelp
		}
		return cli.takeQuiz(*quizLesson)
	default:
		cli.printUsage()
		return errHelp
	}
}
