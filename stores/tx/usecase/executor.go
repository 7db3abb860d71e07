package usecase

import (
	"errors"
	"time"

	"github.com/framemarket/goapi/base/backoff"
	bCtx "github.com/framemarket/goapi/base/ctx"
	"github.com/framemarket/goapi/base/log"
	"github.com/framemarket/goapi/base/metrics"
	"github.com/framemarket/goapi/domain"
	"github.com/framemarket/goapi/domain/tx"
	"github.com/framemarket/goapi/domain/wallet"
)

// ErrReverted marks a transaction that was mined but reverted.
var ErrReverted = errors.New("transaction reverted on chain")

type ExecutorCfg struct {
	Session  wallet.UseCase
	Provider wallet.Provider
	Sim      tx.Simulator
	Receipts tx.ReceiptReader
	// PollStart is the first receipt polling interval, PollLimit caps the
	// exponential growth, PollTimeout bounds the whole wait.
	PollStart   time.Duration
	PollLimit   time.Duration
	PollTimeout time.Duration
}

type executorImpl struct {
	session     wallet.UseCase
	provider    wallet.Provider
	sim         tx.Simulator
	receipts    tx.ReceiptReader
	pollStart   time.Duration
	pollLimit   time.Duration
	pollTimeout time.Duration
	metrics     metrics.Service
}

func NewExecutor(cfg *ExecutorCfg) tx.Executor {
	im := &executorImpl{
		session:     cfg.Session,
		provider:    cfg.Provider,
		sim:         cfg.Sim,
		receipts:    cfg.Receipts,
		pollStart:   cfg.PollStart,
		pollLimit:   cfg.PollLimit,
		pollTimeout: cfg.PollTimeout,
		metrics:     metrics.New("tx"),
	}
	if im.pollStart == 0 {
		im.pollStart = 2 * time.Second
	}
	if im.pollLimit == 0 {
		im.pollLimit = 16 * time.Second
	}
	if im.pollTimeout == 0 {
		im.pollTimeout = 5 * time.Minute
	}
	return im
}

// Submit drives one call to a terminal state: simulate, broadcast, poll.
// Status moves strictly forward, the observer sees every transition.
func (im *executorImpl) Submit(c bCtx.Ctx, call *domain.ContractCall, observer tx.StatusObserver) (tx.PendingTx, error) {
	pending := tx.PendingTx{Status: tx.StatusUnsent}
	notify := func() {
		if observer != nil {
			observer(pending)
		}
	}
	fail := func(reason error) (tx.PendingTx, error) {
		pending.Status = tx.StatusFailed
		pending.Reason = reason
		notify()
		im.metrics.BumpSum("submit.failed", 1)
		return pending, reason
	}

	state := im.session.State()
	if !state.Connected() {
		return fail(domain.ErrNotConnected)
	}
	notify()

	defer im.metrics.BumpTime("submit.time").End()

	if err := im.sim.Simulate(c, state.Address, call); err != nil {
		c.WithFields(log.Fields{
			"method": call.FunctionName,
			"err":    err,
		}).Warn("simulation rejected call")
		// the simulator already split reverts from transport failures
		return fail(err)
	}

	hash, err := im.provider.SendTransaction(c, state.Address, call)
	if err != nil {
		c.WithFields(log.Fields{
			"method": call.FunctionName,
			"err":    err,
		}).Warn("broadcast failed")
		return fail(err)
	}

	pending.Hash = hash
	pending.Status = tx.StatusPending
	notify()

	receipt, err := im.awaitReceipt(c, hash)
	if err != nil {
		return fail(err)
	}
	if !receipt.Succeeded {
		c.WithField("hash", hash).Warn("transaction reverted")
		return fail(ErrReverted)
	}

	pending.Status = tx.StatusConfirmed
	notify()
	im.metrics.BumpSum("submit.confirmed", 1)
	return pending, nil
}

// awaitReceipt polls with exponential backoff until the transaction is
// mined or the bound elapses.
func (im *executorImpl) awaitReceipt(c bCtx.Ctx, hash domain.TxHash) (*tx.Receipt, error) {
	pollCtx, cancel := bCtx.WithTimeout(c, im.pollTimeout)
	defer cancel()

	b := backoff.NewExponential(im.pollStart, im.pollLimit)
	for {
		receipt, err := im.receipts.ReceiptOf(pollCtx, hash)
		if err != nil {
			c.WithFields(log.Fields{
				"hash": hash,
				"err":  err,
			}).Warn("receipt poll failed")
		} else if receipt != nil {
			return receipt, nil
		}

		if err := b.Backoff(pollCtx); err != nil {
			im.metrics.BumpSum("submit.timeout", 1)
			return nil, domain.ErrTimeout
		}
	}
}
