package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/framemarket/goapi/base/ctx"
	"github.com/framemarket/goapi/base/delivery"
	"github.com/framemarket/goapi/domain"
	"github.com/framemarket/goapi/domain/wallet"
)

type handler struct {
	wallet wallet.UseCase
}

// New registers the wallet session endpoints
func New(e *echo.Echo, walletUseCase wallet.UseCase) {
	h := &handler{
		wallet: walletUseCase,
	}

	g := e.Group("/wallet")
	g.GET("", h.getState)
	g.GET("/balance/:address", h.getBalance)
	g.POST("/connect", h.connect)
	g.POST("/disconnect", h.disconnect)
}

func (h *handler) getState(c echo.Context) error {
	return delivery.MakeJsonResp(c, http.StatusOK, h.wallet.State())
}

func (h *handler) connect(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	state, err := h.wallet.Connect(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, state)
}

func (h *handler) disconnect(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	h.wallet.Disconnect(ctx)

	return delivery.MakeJsonResp(c, http.StatusOK, h.wallet.State())
}

func (h *handler) getBalance(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		Address domain.Address `param:"address" validate:"required,eth_addr"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	balance, err := h.wallet.GetBalance(ctx, p.Address.ToLower())
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, balance.String())
}
