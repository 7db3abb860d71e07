package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/framemarket/goapi/base/ctx"
	"github.com/framemarket/goapi/service/cache/provider/primitive"
)

var (
	mockCtx = ctx.Background()
)

type payload struct {
	Name string `json:"name"`
}

type testsuite struct {
	suite.Suite
	im Service
}

func (ts *testsuite) SetupTest() {
	ts.im = New(ServiceConfig{
		Ttl:   time.Minute,
		Pfx:   "test",
		Cache: primitive.NewPrimitive("test", 16),
	})
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestGetByFunc() {
	calls := 0
	getter := func() (interface{}, error) {
		calls++
		return &payload{Name: "frame"}, nil
	}

	res := payload{}
	ts.NoError(ts.im.GetByFunc(mockCtx, "key", &res, getter))
	ts.Equal("frame", res.Name)
	ts.Equal(1, calls)

	// hit cache, getter untouched
	res = payload{}
	ts.NoError(ts.im.GetByFunc(mockCtx, "key", &res, getter))
	ts.Equal("frame", res.Name)
	ts.Equal(1, calls)
}

func (ts *testsuite) TestGetSetDel() {
	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, "key", &payload{}))

	ts.NoError(ts.im.Set(mockCtx, "key", &payload{Name: "frame"}))

	res := payload{}
	ts.NoError(ts.im.Get(mockCtx, "key", &res))
	ts.Equal("frame", res.Name)

	ts.NoError(ts.im.Del(mockCtx, "key"))
	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, "key", &res))
}
