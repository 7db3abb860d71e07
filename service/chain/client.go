package chain

import (
	"errors"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	bCtx "github.com/framemarket/goapi/base/ctx"
	bEthereum "github.com/framemarket/goapi/base/ethereum"
	"github.com/framemarket/goapi/base/log"
	"github.com/framemarket/goapi/domain"
)

var ErrExecutionReverted = errors.New("execution reverted")

// isRevert distinguishes a node-reported revert from a transport or rpc
// failure. Geth-style nodes attach revert data to the json-rpc error,
// others only carry the message.
func isRevert(err error) bool {
	var dataErr interface{ ErrorData() interface{} }
	if errors.As(err, &dataErr) {
		return true
	}
	return strings.Contains(err.Error(), "execution reverted")
}

type ClientCfg struct {
	ChainId        domain.ChainId
	RpcUrl         string
	MaxConcurrency int
}

// Client is the single-network RPC surface the rest of the app talks
// through. All reads and broadcasts go to the one chain named in config.
type Client interface {
	ChainId() domain.ChainId
	// Call packs, eth_calls and unpacks a read-only contract method at
	// the latest block.
	Call(bCtx.Ctx, common.Address, abi.ABI, string, ...interface{}) ([]interface{}, error)
	// Simulate dry-runs a state-changing call from the given sender
	// without broadcasting. A node-reported revert surfaces as
	// ErrExecutionReverted, anything else is a transport failure.
	Simulate(bCtx.Ctx, common.Address, *domain.ContractCall) error
	BlockNumber(bCtx.Ctx) (uint64, error)
	BalanceAt(bCtx.Ctx, common.Address) (*big.Int, error)
	TransactionReceipt(bCtx.Ctx, common.Hash) (*types.Receipt, error)
	PendingNonceAt(bCtx.Ctx, common.Address) (uint64, error)
	SuggestGasPrice(bCtx.Ctx) (*big.Int, error)
	EstimateGas(bCtx.Ctx, ethereum.CallMsg) (uint64, error)
	SendTransaction(bCtx.Ctx, *types.Transaction) error
}

type clientImpl struct {
	chainId domain.ChainId
	client  *bEthereum.ThrottledClient
}

func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	rpc, err := ethclient.DialContext(ctx, cfg.RpcUrl)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"chainId": cfg.ChainId,
			"url":     cfg.RpcUrl,
		}).Error("failed to dial rpc")
		return nil, err
	}
	concurrency := cfg.MaxConcurrency
	if concurrency <= 0 {
		concurrency = 8
	}
	return &clientImpl{
		chainId: cfg.ChainId,
		client:  bEthereum.NewThrottledClient(rpc, concurrency),
	}, nil
}

func (c *clientImpl) ChainId() domain.ChainId {
	return c.chainId
}

func (c *clientImpl) Call(ctx bCtx.Ctx, addr common.Address, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := c.client.CallContract(ctx, msg, nil)
	if err != nil {
		ctx.WithField("err", err).Error("client.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithField("err", err).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

func (c *clientImpl) Simulate(ctx bCtx.Ctx, from common.Address, call *domain.ContractCall) error {
	data, err := call.CallData()
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": call.FunctionName,
			"err":    err,
		}).Error("abi.Pack failed")
		return err
	}
	target := common.HexToAddress(call.Target.ToLowerStr())
	msg := ethereum.CallMsg{
		From:  from,
		To:    &target,
		Value: call.Value,
		Data:  data,
	}
	if _, err := c.client.CallContract(ctx, msg, nil); err != nil {
		ctx.WithFields(log.Fields{
			"method": call.FunctionName,
			"target": call.Target,
			"err":    err,
		}).Warn("simulation call failed")
		if isRevert(err) {
			return ErrExecutionReverted
		}
		return err
	}
	return nil
}

func (c *clientImpl) BlockNumber(ctx bCtx.Ctx) (uint64, error) {
	return c.client.BlockNumber(ctx)
}

func (c *clientImpl) BalanceAt(ctx bCtx.Ctx, account common.Address) (*big.Int, error) {
	return c.client.BalanceAt(ctx, account, nil)
}

func (c *clientImpl) TransactionReceipt(ctx bCtx.Ctx, hash common.Hash) (*types.Receipt, error) {
	return c.client.TransactionReceipt(ctx, hash)
}

func (c *clientImpl) PendingNonceAt(ctx bCtx.Ctx, account common.Address) (uint64, error) {
	return c.client.PendingNonceAt(ctx, account)
}

func (c *clientImpl) SuggestGasPrice(ctx bCtx.Ctx) (*big.Int, error) {
	return c.client.SuggestGasPrice(ctx)
}

func (c *clientImpl) EstimateGas(ctx bCtx.Ctx, msg ethereum.CallMsg) (uint64, error) {
	return c.client.EstimateGas(ctx, msg)
}

func (c *clientImpl) SendTransaction(ctx bCtx.Ctx, tx *types.Transaction) error {
	return c.client.SendTransaction(ctx, tx)
}
