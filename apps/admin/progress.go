package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pkg/errors"

	"github.com/finwise/finwise/core"
	"github.com/finwise/finwise/core/progress"
	"github.com/finwise/finwise/core/purchase"
)

func (cli *commandLine) complete(userID, lessonID string, completed bool) error {
	ctx := context.Background()
	data := progress.Upsert{UserID: userID, LessonID: lessonID, Completed: completed}
	if err := data.Validate(cli.validate); err != nil {
		return cli.inputError(err)
	}
	if _, err := cli.getLesson(ctx, data.LessonID); err != nil {
		return err
	}
	rec, err := cli.progressSvc.Upsert(ctx, data)
	if err != nil {
		return err
	}
	return cli.render(rec, []string{"USER", "LESSON", "COMPLETED"}, [][]string{{rec.UserID, rec.LessonID, yesNo(rec.Completed)}})
}

// buy charges the lesson's price, then unlocks it. A failure of the second step leaves a receipt
// without access; it is logged with the transaction id so it can be settled by hand.
func (cli *commandLine) buy(userID, lessonID string) error {
	ctx := context.Background()
	l, err := cli.getLesson(ctx, lessonID)
	if err != nil {
		return err
	}
	if l.IsFree() {
		return errors.Errorf("lesson %q is free", lessonID)
	}
	req := purchase.Request{UserID: userID, LessonID: l.ID, Amount: l.PriceInINR}
	if err := req.Validate(cli.validate); err != nil {
		return cli.inputError(err)
	}
	userID = req.UserID

	receipt := cli.purchaseSvc.Purchase(req)
	if _, err := cli.progressSvc.MarkCompleted(ctx, userID, l.ID); err != nil {
		cli.logger.Warn(
			fmt.Sprintf("purchase %s succeeded but lesson %s was not unlocked", receipt.TransactionID, l.ID),
			err, map[string]interface{}{"txn": receipt.TransactionID, "lessonId": l.ID, "amount": receipt.Amount},
			core.Learner{ID: userID},
		)
		return errors.Wrapf(err, "unlocking lesson after %s", receipt.TransactionID)
	}
	return cli.render(
		receipt,
		[]string{"TRANSACTION", "USER", "LESSON", "AMOUNT"},
		[][]string{{receipt.TransactionID, receipt.UserID, receipt.LessonID, fmt.Sprintf("%s%v", receipt.Currency, receipt.Amount)}},
	)
}

func (cli *commandLine) stats(userID string) error {
	sum, err := cli.progressSvc.Summary(context.Background(), userID)
	if err != nil {
		return err
	}
	rows := [][]string{
		{"user", sum.UserID},
		{"completed", fmt.Sprintf("%d/%d", sum.CompletedCount, sum.TotalLessons)},
		{"completion rate", strconv.Itoa(sum.CompletionRate) + "%"},
		{"free completed", strconv.Itoa(sum.FreeCompleted)},
		{"paid completed", strconv.Itoa(sum.PaidCompleted)},
		{"level", string(sum.Level)},
	}
	return cli.render(sum, []string{"STAT", "VALUE"}, rows)
}
