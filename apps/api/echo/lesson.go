package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/finwise/finwise/core/lesson"
	"github.com/finwise/finwise/core/progress"
)

type lessonApi struct {
	svc         *lesson.Service
	progressSvc *progress.Service
}

func registerLessonAPI(g *echo.Group, svc *lesson.Service, progressSvc *progress.Service) {
	api := lessonApi{svc: svc, progressSvc: progressSvc}

	lg := g.Group("/lessons")
	lg.GET("", api.query)
	lg.GET("/:id", api.retrieve)
	lg.GET("/:id/access", api.access)
}

// Handlers

func (api *lessonApi) query(ctx echo.Context) error {
	lessons, err := api.svc.List(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying lessons")
	}
	if lessons == nil {
		lessons = []lesson.Lesson{}
	}
	return ctx.JSON(http.StatusOK, lessons)
}

func (api *lessonApi) retrieve(ctx echo.Context) error {
	l, err := api.svc.Get(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "getting lesson")
	}
	return ctx.JSON(http.StatusOK, l)
}

func (api *lessonApi) access(ctx echo.Context) error {
	lrn := learnerOf(ctx)
	ok, l, err := api.progressSvc.IsAccessible(ctx.Request().Context(), lrn.ID, ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "checking access")
	}
	return ctx.JSON(http.StatusOK, AccessResponse{
		LessonID:   l.ID,
		UserID:     lrn.ID,
		Free:       l.IsFree(),
		Accessible: ok,
	})
}

type AccessResponse struct {
	LessonID   string `json:"lessonId"`
	UserID     string `json:"userId"`
	Free       bool   `json:"free"`
	Accessible bool   `json:"accessible"`
}
