package repository

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	bCtx "github.com/framemarket/goapi/base/ctx"
)

func Test_httpReaderRepo_Get(t *testing.T) {
	req := require.New(t)
	expected := []byte(`{"name":"Frame #7","description":"on-chain frame","image":"ipfs://Qm/7.svg"}`)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metadata.json" {
			w.Write(expected)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	ctx := bCtx.Background()
	r := NewHttpReaderRepo(http.Client{}, 10*time.Second)

	b, err := r.Get(ctx, srv.URL+"/metadata.json")
	req.NoError(err)
	req.Equal(expected, b)

	_, err = r.Get(ctx, srv.URL+"/missing.json")
	req.Error(err)
}
