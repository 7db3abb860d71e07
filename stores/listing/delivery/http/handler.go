package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/framemarket/goapi/base/ctx"
	"github.com/framemarket/goapi/base/delivery"
	"github.com/framemarket/goapi/domain/listing"
)

type handler struct {
	listing listing.UseCase
}

// New registers the read-only listing endpoints
func New(e *echo.Echo, listingUseCase listing.UseCase) {
	h := &handler{
		listing: listingUseCase,
	}

	g := e.Group("/listings")
	g.GET("", h.getListings)
	g.GET("/fee", h.getFee)
	g.GET("/:id", h.getListing)
}

func (h *handler) getListings(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		ActiveOnly bool `query:"activeOnly"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	details, err := h.listing.GetListings(ctx, p.ActiveOnly)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, details)
}

func (h *handler) getListing(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		Id uint64 `param:"id"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	detail, err := h.listing.GetListing(ctx, listing.Id(p.Id))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, detail)
}

func (h *handler) getFee(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	fee, err := h.listing.GetFee(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, fee)
}
