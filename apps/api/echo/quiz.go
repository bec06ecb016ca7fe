package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/finwise/finwise/core/quiz"
)

type quizApi struct {
	svc      *quiz.Service
	validate *validator.Validate
}

func registerQuizAPI(g *echo.Group, svc *quiz.Service, validate *validator.Validate) {
	api := quizApi{svc: svc, validate: validate}

	qg := g.Group("/quizzes/:lessonId")
	qg.GET("", api.query)
	qg.POST("/attempts", api.grade)
}

// Handlers

func (api *quizApi) query(ctx echo.Context) error {
	questions, err := api.svc.Get(ctx.Request().Context(), ctx.Param("lessonId"))
	if err != nil {
		return errors.Wrap(err, "querying quizzes")
	}
	if questions == nil {
		questions = []quiz.Question{}
	}
	return ctx.JSON(http.StatusOK, questions)
}

func (api *quizApi) grade(ctx echo.Context) error {
	var data quiz.Attempt
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to quiz.Attempt")
	}
	if err := api.validate.Struct(data); err != nil {
		return err
	}

	// Grade errors already name the offending question.
	res, err := api.svc.Grade(ctx.Request().Context(), ctx.Param("lessonId"), data.Answers)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, res)
}
