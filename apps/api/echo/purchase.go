package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/finwise/finwise/core/purchase"
)

type purchaseApi struct {
	svc      *purchase.Service
	validate *validator.Validate
}

func registerPurchaseAPI(g *echo.Group, svc *purchase.Service, validate *validator.Validate) {
	api := purchaseApi{svc: svc, validate: validate}
	g.POST("/purchase", api.create)
}

// create only simulates the payment. Clients unlock the lesson with POST /progress afterwards.
func (api *purchaseApi) create(ctx echo.Context) error {
	var data purchase.Request
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to purchase.Request")
	}
	if data.UserID == "" {
		data.UserID = learnerOf(ctx).ID
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, api.svc.Purchase(data))
}
