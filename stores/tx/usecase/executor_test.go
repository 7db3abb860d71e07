package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	bCtx "github.com/framemarket/goapi/base/ctx"
	"github.com/framemarket/goapi/domain"
	"github.com/framemarket/goapi/domain/mocks"
	"github.com/framemarket/goapi/domain/tx"
	"github.com/framemarket/goapi/domain/wallet"
)

var (
	testSender = domain.Address("0x3845badade8e6dff049820680d1f14bd3903a5d0")
	testHash   = domain.TxHash("0x58e5a0fc7fbc849eddc100d44e86276168a8c7baaa5604e44ba6f5eb8ba1b7eb")
	testCall   = &domain.ContractCall{Target: "0x72ff012103660445a024e9426a7ca2d3b353aad9", FunctionName: "cancel"}
)

type executorHarness struct {
	session  *mocks.WalletUseCase
	provider *mocks.WalletProvider
	sim      *mocks.Simulator
	receipts *mocks.ReceiptReader
	ex       tx.Executor
}

func newExecutorHarness(connected bool) *executorHarness {
	h := &executorHarness{
		session:  &mocks.WalletUseCase{},
		provider: &mocks.WalletProvider{},
		sim:      &mocks.Simulator{},
		receipts: &mocks.ReceiptReader{},
	}
	state := wallet.State{}
	if connected {
		state.Address = testSender
		state.ChainId = 8453
	}
	h.session.On("State").Return(state)
	h.ex = NewExecutor(&ExecutorCfg{
		Session:     h.session,
		Provider:    h.provider,
		Sim:         h.sim,
		Receipts:    h.receipts,
		PollStart:   time.Millisecond,
		PollLimit:   5 * time.Millisecond,
		PollTimeout: 200 * time.Millisecond,
	})
	return h
}

func collectStatuses(transitions *[]tx.PendingTx) tx.StatusObserver {
	return func(p tx.PendingTx) { *transitions = append(*transitions, p) }
}

func TestSubmitNotConnected(t *testing.T) {
	req := require.New(t)
	h := newExecutorHarness(false)

	pending, err := h.ex.Submit(bCtx.Background(), testCall, nil)
	req.ErrorIs(err, domain.ErrNotConnected)
	req.Equal(tx.StatusFailed, pending.Status)
	// nothing was simulated or broadcast
	h.sim.AssertNotCalled(t, "Simulate", mock.Anything, mock.Anything, mock.Anything)
	h.provider.AssertNotCalled(t, "SendTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitConfirmed(t *testing.T) {
	req := require.New(t)
	h := newExecutorHarness(true)

	h.sim.On("Simulate", mock.Anything, testSender, testCall).Return(nil)
	h.provider.On("SendTransaction", mock.Anything, testSender, testCall).Return(testHash, nil)
	h.receipts.On("ReceiptOf", mock.Anything, testHash).Return(nil, nil).Once()
	h.receipts.On("ReceiptOf", mock.Anything, testHash).Return(&tx.Receipt{TxHash: testHash, Succeeded: true, BlockNumber: 10}, nil)

	var transitions []tx.PendingTx
	pending, err := h.ex.Submit(bCtx.Background(), testCall, collectStatuses(&transitions))
	req.NoError(err)
	req.Equal(tx.StatusConfirmed, pending.Status)
	req.Equal(testHash, pending.Hash)

	// unsent -> pending -> confirmed, strictly forward
	req.Equal([]tx.Status{tx.StatusUnsent, tx.StatusPending, tx.StatusConfirmed}, statusesOf(transitions))
}

func TestSubmitSimulationReverted(t *testing.T) {
	req := require.New(t)
	h := newExecutorHarness(true)

	h.sim.On("Simulate", mock.Anything, testSender, testCall).Return(domain.ErrSimulationReverted)

	var transitions []tx.PendingTx
	pending, err := h.ex.Submit(bCtx.Background(), testCall, collectStatuses(&transitions))
	req.ErrorIs(err, domain.ErrSimulationReverted)
	req.Equal(tx.StatusFailed, pending.Status)
	req.Empty(pending.Hash)
	h.provider.AssertNotCalled(t, "SendTransaction", mock.Anything, mock.Anything, mock.Anything)
	req.Equal([]tx.Status{tx.StatusUnsent, tx.StatusFailed}, statusesOf(transitions))
}

func TestSubmitSimulationRpcFailure(t *testing.T) {
	req := require.New(t)
	h := newExecutorHarness(true)

	// an rpc blip during the dry-run is not a revert verdict
	simErr := xerrors.Errorf("simulate: connection refused: %w", domain.ErrReadFailed)
	h.sim.On("Simulate", mock.Anything, testSender, testCall).Return(simErr)

	pending, err := h.ex.Submit(bCtx.Background(), testCall, nil)
	req.ErrorIs(err, domain.ErrReadFailed)
	req.NotErrorIs(err, domain.ErrSimulationReverted)
	req.Equal(tx.StatusFailed, pending.Status)
	h.provider.AssertNotCalled(t, "SendTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitUserRejected(t *testing.T) {
	req := require.New(t)
	h := newExecutorHarness(true)

	h.sim.On("Simulate", mock.Anything, testSender, testCall).Return(nil)
	h.provider.On("SendTransaction", mock.Anything, testSender, testCall).Return(domain.TxHash(""), domain.ErrUserRejected)

	pending, err := h.ex.Submit(bCtx.Background(), testCall, nil)
	req.ErrorIs(err, domain.ErrUserRejected)
	req.Equal(tx.StatusFailed, pending.Status)
}

func TestSubmitMinedRevert(t *testing.T) {
	req := require.New(t)
	h := newExecutorHarness(true)

	h.sim.On("Simulate", mock.Anything, testSender, testCall).Return(nil)
	h.provider.On("SendTransaction", mock.Anything, testSender, testCall).Return(testHash, nil)
	h.receipts.On("ReceiptOf", mock.Anything, testHash).Return(&tx.Receipt{TxHash: testHash, Succeeded: false, BlockNumber: 10}, nil)

	pending, err := h.ex.Submit(bCtx.Background(), testCall, nil)
	req.ErrorIs(err, ErrReverted)
	req.Equal(tx.StatusFailed, pending.Status)
	req.Equal(testHash, pending.Hash)
}

func TestSubmitTimeout(t *testing.T) {
	req := require.New(t)
	h := newExecutorHarness(true)

	h.sim.On("Simulate", mock.Anything, testSender, testCall).Return(nil)
	h.provider.On("SendTransaction", mock.Anything, testSender, testCall).Return(testHash, nil)
	// never mined
	h.receipts.On("ReceiptOf", mock.Anything, testHash).Return(nil, nil)

	start := time.Now()
	var transitions []tx.PendingTx
	pending, err := h.ex.Submit(bCtx.Background(), testCall, collectStatuses(&transitions))
	req.ErrorIs(err, domain.ErrTimeout)
	req.Equal(tx.StatusFailed, pending.Status)
	req.Equal([]tx.Status{tx.StatusUnsent, tx.StatusPending, tx.StatusFailed}, statusesOf(transitions))
	// the 200ms polling bound must actually terminate the wait
	req.Less(time.Since(start), 2*time.Second)
}

func statusesOf(transitions []tx.PendingTx) []tx.Status {
	statuses := make([]tx.Status, 0, len(transitions))
	for _, p := range transitions {
		statuses = append(statuses, p.Status)
	}
	return statuses
}
