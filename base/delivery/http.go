package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/framemarket/goapi/domain"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, domain.ErrBadParamInput), errors.Is(err, domain.ErrInvalidAddress), errors.Is(err, domain.ErrInvalidPrice),
			errors.Is(err, domain.ErrNotErc721), errors.Is(err, domain.ErrNotTokenOwner):
			status = http.StatusBadRequest
		case errors.Is(err, domain.ErrNotConnected):
			status = http.StatusPreconditionFailed
		case errors.Is(err, domain.ErrUserRejected):
			status = http.StatusForbidden
		case errors.Is(err, domain.ErrSimulationReverted):
			status = http.StatusUnprocessableEntity
		case errors.Is(err, domain.ErrNoProvider):
			status = http.StatusServiceUnavailable
		case errors.Is(err, domain.ErrReadFailed), errors.Is(err, domain.ErrTimeout):
			status = http.StatusBadGateway
		}
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
