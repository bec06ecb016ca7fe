package echoapi

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

var mineParam = "mine"

// ProgressFilter narrows GET /progress to the requesting learner with ?mine=true.
type ProgressFilter struct {
	Mine bool
}

func (f *ProgressFilter) Bind(ctx echo.Context) {
	val := ctx.QueryParam(mineParam)
	if val == "" {
		return
	}
	if mine, err := strconv.ParseBool(val); err == nil {
		f.Mine = mine
	}
}
