package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/framemarket/goapi/base/ctx"
	"github.com/framemarket/goapi/base/delivery"
	pricefomatter "github.com/framemarket/goapi/base/price_fomatter"
	"github.com/framemarket/goapi/domain"
	"github.com/framemarket/goapi/domain/listing"
	"github.com/framemarket/goapi/domain/market"
)

type handler struct {
	market market.UseCase
	price  pricefomatter.PriceFormatter
}

// New registers the mutating marketplace endpoints
func New(e *echo.Echo, marketUseCase market.UseCase, priceFormatter pricefomatter.PriceFormatter) {
	h := &handler{
		market: marketUseCase,
		price:  priceFormatter,
	}

	g := e.Group("/market")
	g.POST("/list", h.list)
	g.POST("/approve", h.approve)
	g.POST("/purchase/:id", h.purchase)
	g.POST("/price/:id", h.updatePrice)
	g.POST("/cancel/:id", h.cancel)
	g.GET("/wizard", h.wizard)
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		Nft     domain.Address `json:"nft" validate:"required"`
		TokenId domain.TokenId `json:"tokenId" validate:"required"`
		Price   string         `json:"price" validate:"required"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	price, err := h.price.ParseNative(p.Price)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	outcome, err := h.market.List(ctx, p.Nft, p.TokenId, price)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, outcome)
}

func (h *handler) approve(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		Nft     domain.Address `json:"nft" validate:"required"`
		TokenId domain.TokenId `json:"tokenId" validate:"required"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	outcome, err := h.market.Approve(ctx, p.Nft, p.TokenId)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, outcome)
}

func (h *handler) purchase(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		Id    uint64 `param:"id"`
		Price string `json:"price" validate:"required"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	price, err := h.price.ParseNative(p.Price)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	outcome, err := h.market.Purchase(ctx, listing.Id(p.Id), price)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, outcome)
}

func (h *handler) updatePrice(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		Id    uint64 `param:"id"`
		Price string `json:"price" validate:"required"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	price, err := h.price.ParseNative(p.Price)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	outcome, err := h.market.UpdatePrice(ctx, listing.Id(p.Id), price)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, outcome)
}

func (h *handler) cancel(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		Id uint64 `param:"id"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	outcome, err := h.market.Cancel(ctx, listing.Id(p.Id))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, outcome)
}

func (h *handler) wizard(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		Nft     domain.Address `query:"nft"`
		TokenId domain.TokenId `query:"tokenId"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	state, err := h.market.WizardFor(ctx, p.Nft, p.TokenId)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, map[string]market.WizardState{
		"state": state,
	})
}
