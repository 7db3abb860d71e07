package repository

import (
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/xerrors"

	bCtx "github.com/framemarket/goapi/base/ctx"
	"github.com/framemarket/goapi/domain"
	"github.com/framemarket/goapi/domain/tx"
	"github.com/framemarket/goapi/service/chain"
)

type simulatorRepo struct {
	chainService chain.Client
}

func NewSimulatorRepo(chainService chain.Client) tx.Simulator {
	return &simulatorRepo{chainService: chainService}
}

func (r *simulatorRepo) Simulate(c bCtx.Ctx, from domain.Address, call *domain.ContractCall) error {
	err := r.chainService.Simulate(c, common.HexToAddress(from.ToLowerStr()), call)
	if err == nil {
		return nil
	}
	if errors.Is(err, chain.ErrExecutionReverted) {
		return domain.ErrSimulationReverted
	}
	// rpc trouble is not a verdict on the call
	return xerrors.Errorf("simulate: %s: %w", err, domain.ErrReadFailed)
}
