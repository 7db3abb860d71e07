package repository

import (
	"time"

	"github.com/framemarket/goapi/base/ctx"
	hcdomain "github.com/framemarket/goapi/domain/healthcheck"
	"github.com/framemarket/goapi/service/chain"
)

type impl struct {
	chainService chain.Client
}

// New creates new healthCheckRepo object representation of HealthCheckRepo interface
func New(chainService chain.Client) hcdomain.HealthCheckRepo {
	return &impl{
		chainService: chainService,
	}
}

func (im *impl) PingChain(context ctx.Ctx) error {
	ctx, cancel := ctx.WithTimeout(context, 2*time.Second)
	defer cancel()
	if _, err := im.chainService.BlockNumber(ctx); err != nil {
		context.WithField("err", err).Error("ping rpc error")
		return err
	}
	return nil
}
