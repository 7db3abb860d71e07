package ethereum

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

// ThrottledClient bounds the number of concurrent RPC calls against one
// endpoint with a token channel. Batch listing reads fan out through it.
type ThrottledClient struct {
	*ethclient.Client
	tokens chan struct{}
}

func NewThrottledClient(client *ethclient.Client, n int) *ThrottledClient {
	tokens := make(chan struct{}, n)
	for i := 0; i < n; i++ {
		tokens <- struct{}{}
	}
	return &ThrottledClient{
		Client: client,
		tokens: tokens,
	}
}

func (c *ThrottledClient) BlockNumber(ctx context.Context) (uint64, error) {
	if !c.before(ctx) {
		return 0, ctx.Err()
	}
	defer c.after()
	return c.Client.BlockNumber(ctx)
}

func (c *ThrottledClient) CallContract(ctx context.Context, msg ethereum.CallMsg, number *big.Int) ([]byte, error) {
	if !c.before(ctx) {
		return nil, ctx.Err()
	}
	defer c.after()
	return c.Client.CallContract(ctx, msg, number)
}

func (c *ThrottledClient) BalanceAt(ctx context.Context, account common.Address, number *big.Int) (*big.Int, error) {
	if !c.before(ctx) {
		return nil, ctx.Err()
	}
	defer c.after()
	return c.Client.BalanceAt(ctx, account, number)
}

func (c *ThrottledClient) TransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	if !c.before(ctx) {
		return nil, ctx.Err()
	}
	defer c.after()
	return c.Client.TransactionReceipt(ctx, hash)
}

func (c *ThrottledClient) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	if !c.before(ctx) {
		return 0, ctx.Err()
	}
	defer c.after()
	return c.Client.PendingNonceAt(ctx, account)
}

func (c *ThrottledClient) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	if !c.before(ctx) {
		return nil, ctx.Err()
	}
	defer c.after()
	return c.Client.SuggestGasPrice(ctx)
}

func (c *ThrottledClient) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	if !c.before(ctx) {
		return 0, ctx.Err()
	}
	defer c.after()
	return c.Client.EstimateGas(ctx, msg)
}

func (c *ThrottledClient) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	if !c.before(ctx) {
		return ctx.Err()
	}
	defer c.after()
	return c.Client.SendTransaction(ctx, tx)
}

func (c *ThrottledClient) before(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return false
	case <-c.tokens:
		return true
	}
}

func (c *ThrottledClient) after() {
	c.tokens <- struct{}{}
}
