package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/finwise/finwise/core/progress"
)

type progressApi struct {
	svc      *progress.Service
	validate *validator.Validate
}

func registerProgressAPI(g *echo.Group, svc *progress.Service, validate *validator.Validate) {
	api := progressApi{svc: svc, validate: validate}

	pg := g.Group("/progress")
	pg.GET("", api.query)
	pg.POST("", api.upsert)
	pg.GET("/summary", api.summary)
}

// Handlers

func (api *progressApi) query(ctx echo.Context) error {
	filter := new(ProgressFilter)
	filter.Bind(ctx)

	var records []progress.Record
	var err error
	if filter.Mine {
		records, err = api.svc.ListFor(ctx.Request().Context(), learnerOf(ctx).ID)
	} else {
		records, err = api.svc.List(ctx.Request().Context())
	}
	if err != nil {
		return errors.Wrap(err, "querying progress")
	}
	if records == nil {
		records = []progress.Record{}
	}
	return ctx.JSON(http.StatusOK, records)
}

func (api *progressApi) upsert(ctx echo.Context) error {
	var data progress.Upsert
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to progress.Upsert")
	}
	if data.UserID == "" {
		data.UserID = learnerOf(ctx).ID
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	rec, err := api.svc.Upsert(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "upserting progress")
	}
	return ctx.JSON(http.StatusOK, rec)
}

func (api *progressApi) summary(ctx echo.Context) error {
	sum, err := api.svc.Summary(ctx.Request().Context(), learnerOf(ctx).ID)
	if err != nil {
		return errors.Wrap(err, "summarizing progress")
	}
	return ctx.JSON(http.StatusOK, sum)
}
