package repository

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	bCtx "github.com/framemarket/goapi/base/ctx"
	"github.com/framemarket/goapi/domain"
	"github.com/framemarket/goapi/domain/wallet"
	"github.com/framemarket/goapi/service/chain"
)

type balanceRepo struct {
	chainService chain.Client
}

func NewBalanceRepo(chainService chain.Client) wallet.BalanceReader {
	return &balanceRepo{chainService: chainService}
}

func (r *balanceRepo) BalanceOf(c bCtx.Ctx, address domain.Address) (*big.Int, error) {
	balance, err := r.chainService.BalanceAt(c, common.HexToAddress(string(address)))
	if err != nil {
		c.WithField("err", err).Error("balance read failed")
		return nil, err
	}
	return balance, nil
}
