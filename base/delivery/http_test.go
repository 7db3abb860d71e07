package delivery

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	"github.com/framemarket/goapi/domain"
)

func respFor(t *testing.T, status int, data interface{}) (*httptest.ResponseRecorder, JsonResponse) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, MakeJsonResp(c, status, data))
	var body JsonResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestMakeJsonRespSuccess(t *testing.T) {
	req := require.New(t)
	rec, body := respFor(t, http.StatusOK, map[string]string{"hello": "world"})
	req.Equal(http.StatusOK, rec.Code)
	req.Equal(JsonResponseStatusSuccess, body.Status)
}

func TestMakeJsonRespErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrNotFound, http.StatusNotFound},
		{domain.ErrBadParamInput, http.StatusBadRequest},
		{domain.ErrInvalidAddress, http.StatusBadRequest},
		{domain.ErrInvalidPrice, http.StatusBadRequest},
		{domain.ErrNotErc721, http.StatusBadRequest},
		{domain.ErrNotTokenOwner, http.StatusBadRequest},
		{domain.ErrNotConnected, http.StatusPreconditionFailed},
		{domain.ErrUserRejected, http.StatusForbidden},
		{domain.ErrSimulationReverted, http.StatusUnprocessableEntity},
		{domain.ErrNoProvider, http.StatusServiceUnavailable},
		{domain.ErrReadFailed, http.StatusBadGateway},
		{domain.ErrTimeout, http.StatusBadGateway},
		// wrapped errors keep their class
		{xerrors.Errorf("simulate: boom: %w", domain.ErrReadFailed), http.StatusBadGateway},
	}
	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			req := require.New(t)
			rec, body := respFor(t, http.StatusInternalServerError, tc.err)
			req.Equal(tc.code, rec.Code)
			req.Equal(JsonResponseStatusFail, body.Status)
		})
	}
}
