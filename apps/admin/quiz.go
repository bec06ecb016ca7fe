package main

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/finwise/finwise/core/quiz"
)

var errQuizAborted = errors.New("quiz aborted")

// takeQuiz drives a quiz.Session from cli.in, one command per line:
// an option number selects it, n/p move, r restarts and q quits.
func (cli *commandLine) takeQuiz(lessonID string) error {
	ctx := context.Background()
	l, err := cli.getLesson(ctx, lessonID)
	if err != nil {
		return err
	}
	sess, err := cli.quizSvc.Start(ctx, l.ID)
	if err != nil {
		return err
	}

	fmt.Fprintf(cli.out, "Quiz: %s (%d questions)\n", l.Title, sess.Len())
	scanner := bufio.NewScanner(cli.in)
	for sess.State() == quiz.StateInProgress {
		cli.showQuestion(sess)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return errors.Wrap(err, "reading answer")
			}
			return errQuizAborted
		}

		var cmdErr error
		cmd := strings.ToLower(strings.TrimSpace(scanner.Text()))
		switch cmd {
		case "n":
			cmdErr = sess.Next()
		case "p":
			cmdErr = sess.Previous()
		case "r":
			sess.Reset()
		case "q":
			return errQuizAborted
		default:
			n, convErr := strconv.Atoi(cmd)
			opts := sess.Current().Options
			if convErr != nil || n < 1 || n > len(opts) {
				fmt.Fprintf(cli.out, "enter 1-%d, n, p, r or q\n", len(opts))
				continue
			}
			cmdErr = sess.SelectAnswer(opts[n-1])
		}
		if cmdErr != nil {
			fmt.Fprintf(cli.out, "! %v\n", cmdErr)
		}
	}

	res, err := sess.Score()
	if err != nil {
		return err
	}
	cli.showResult(res)
	return nil
}

func (cli *commandLine) showQuestion(sess *quiz.Session) {
	q := sess.Current()
	selected, _ := sess.Answer(sess.CurrentIndex())

	fmt.Fprintf(cli.out, "\n[%d/%d] %s\n", sess.CurrentIndex()+1, sess.Len(), q.Question)
	for i, opt := range q.Options {
		mark := " "
		if opt == selected {
			mark = "*"
		}
		fmt.Fprintf(cli.out, " %s %d) %s\n", mark, i+1, opt)
	}
	if sess.IsLast() {
		fmt.Fprint(cli.out, "(n to finish) > ")
	} else {
		fmt.Fprint(cli.out, "> ")
	}
}

func (cli *commandLine) showResult(res quiz.Result) {
	verdict := "Keep practicing"
	if res.Passed {
		verdict = "Passed"
	}
	fmt.Fprintf(cli.out, "\n%s: %d/%d correct (%d%%)\n", verdict, res.Correct, res.Total, res.Percentage)
	for i, r := range res.Review {
		mark := "x"
		if r.IsCorrect {
			mark = "v"
		}
		fmt.Fprintf(cli.out, " %s %d) %s -> %s (answer: %s)\n", mark, i+1, r.Question, r.Selected, r.CorrectAnswer)
	}
}
