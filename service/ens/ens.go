package ens

import (
	"github.com/framemarket/goapi/base/ctx"
	"github.com/framemarket/goapi/domain"
)

type ENS interface {
	Resolve(ctx ctx.Ctx, name string) (domain.Address, error)
	ReverseResolve(ctx ctx.Ctx, address domain.Address) (string, error)
}
