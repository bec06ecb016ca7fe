package echoapi

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/finwise/finwise/core"
)

const (
	learnerHeader = "X-User-ID"
	learnerParam  = "userId"
	learnerCtxKey = "learner"
)

// learnerMiddleware resolves who the request acts for: X-User-ID header, then ?userId=, then defaultID.
// There is no authentication; the id is only checked for shape.
func learnerMiddleware(defaultID string, validate *validator.Validate) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			id := core.CleanString(ctx.Request().Header.Get(learnerHeader))
			if id == "" {
				id = core.CleanString(ctx.QueryParam(learnerParam))
			}
			if id == "" {
				id = defaultID
			}
			if err := validate.Var(id, "ident"); err != nil {
				return core.NewValidationError(nil, core.FieldError{Field: learnerParam, Error: "invalid user id"})
			}

			lrn := core.Learner{ID: id}
			ctx.Set(learnerCtxKey, lrn)
			ctx.SetRequest(ctx.Request().WithContext(core.WithLearner(ctx.Request().Context(), lrn)))
			return next(ctx)
		}
	}
}

func learnerOf(ctx echo.Context) core.Learner {
	if lrn, ok := ctx.Get(learnerCtxKey).(core.Learner); ok {
		return lrn
	}
	return core.Learner{}
}
