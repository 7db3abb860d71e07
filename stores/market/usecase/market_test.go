package usecase

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	bCtx "github.com/framemarket/goapi/base/ctx"
	"github.com/framemarket/goapi/domain"
	"github.com/framemarket/goapi/domain/listing"
	"github.com/framemarket/goapi/domain/market"
	"github.com/framemarket/goapi/domain/mocks"
	"github.com/framemarket/goapi/domain/tx"
	"github.com/framemarket/goapi/domain/wallet"
)

var (
	marketAddr = domain.Address("0x72ff012103660445a024e9426a7ca2d3b353aad9")
	sender     = domain.Address("0x3845badade8e6dff049820680d1f14bd3903a5d0")
	nftAddr    = domain.Address("0x9C2E6f2B86Dd7f7e67B9BBa1679859B3f5a84c4C")
	testHash   = domain.TxHash("0x58e5a0fc7fbc849eddc100d44e86276168a8c7baaa5604e44ba6f5eb8ba1b7eb")
)

type marketHarness struct {
	session  *mocks.WalletUseCase
	executor *mocks.TxExecutor
	contract *mocks.MarketContract
	token    *mocks.TokenContract
	notifier *mocks.Notifier
	uc       market.UseCase
}

func newMarketHarness(connected bool) *marketHarness {
	h := &marketHarness{
		session:  &mocks.WalletUseCase{},
		executor: &mocks.TxExecutor{},
		contract: &mocks.MarketContract{},
		token:    &mocks.TokenContract{},
		notifier: &mocks.Notifier{},
	}
	state := wallet.State{}
	if connected {
		state.Address = sender
		state.ChainId = 8453
	}
	h.session.On("State").Return(state)
	h.contract.On("Address").Return(marketAddr)
	h.notifier.On("Notify", mock.Anything, mock.Anything).Return()
	h.uc = NewMarketUseCase(&MarketUseCaseCfg{
		Session:  h.session,
		Executor: h.executor,
		Market:   h.contract,
		Token:    h.token,
		Notifier: h.notifier,
	})
	return h
}

func confirmed() tx.PendingTx {
	return tx.PendingTx{Hash: testHash, Status: tx.StatusConfirmed}
}

func TestListConfirmedRecoversId(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	h := newMarketHarness(true)

	price := big.NewInt(1000)
	call := &domain.ContractCall{Target: marketAddr, FunctionName: "list"}
	h.token.On("Supports721Interface", mock.Anything, nftAddr).Return(true, nil)
	h.token.On("OwnerOf", mock.Anything, nftAddr, domain.TokenId("7")).Return(sender, nil)
	h.contract.On("ListCall", nftAddr, domain.TokenId("7"), price).Return(call, nil)
	h.executor.On("Submit", mock.Anything, call, mock.Anything).Return(confirmed(), nil)
	h.contract.On("ListedIdOf", mock.Anything, testHash).Return(listing.Id(12), nil)

	outcome, err := h.uc.List(ctx, nftAddr, domain.TokenId("7"), price)
	req.NoError(err)
	req.Equal(tx.StatusConfirmed, outcome.Tx.Status)
	req.NotNil(outcome.ListingId)
	req.Equal(listing.Id(12), *outcome.ListingId)
}

func TestListNotConnected(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	h := newMarketHarness(false)

	h.contract.On("ListCall", nftAddr, domain.TokenId("7"), mock.Anything).
		Return(&domain.ContractCall{}, nil)

	_, err := h.uc.List(ctx, nftAddr, domain.TokenId("7"), big.NewInt(1))
	req.ErrorIs(err, domain.ErrNotConnected)
	h.executor.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything)
}

func TestListRejectsBadInput(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	h := newMarketHarness(true)

	_, err := h.uc.List(ctx, "not-an-address", domain.TokenId("7"), big.NewInt(1))
	req.ErrorIs(err, domain.ErrInvalidAddress)

	_, err = h.uc.List(ctx, nftAddr, domain.TokenId("7"), big.NewInt(0))
	req.ErrorIs(err, domain.ErrInvalidPrice)

	_, err = h.uc.List(ctx, nftAddr, domain.TokenId("7"), nil)
	req.ErrorIs(err, domain.ErrInvalidPrice)
}

func TestListRejectsNonErc721(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	h := newMarketHarness(true)

	h.token.On("Supports721Interface", mock.Anything, nftAddr).Return(false, nil)

	_, err := h.uc.List(ctx, nftAddr, domain.TokenId("7"), big.NewInt(1000))
	req.ErrorIs(err, domain.ErrNotErc721)
	h.executor.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything)
}

func TestListRejectsNonOwner(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	h := newMarketHarness(true)

	h.token.On("Supports721Interface", mock.Anything, nftAddr).Return(true, nil)
	// token belongs to someone else
	h.token.On("OwnerOf", mock.Anything, nftAddr, domain.TokenId("7")).Return(marketAddr, nil)

	_, err := h.uc.List(ctx, nftAddr, domain.TokenId("7"), big.NewInt(1000))
	req.ErrorIs(err, domain.ErrNotTokenOwner)
	h.executor.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything)
}

func TestPurchaseStalePriceSurfacesRevert(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	h := newMarketHarness(true)

	price := big.NewInt(1000)
	call := &domain.ContractCall{Target: marketAddr, FunctionName: "purchase", Value: price}
	h.contract.On("PurchaseCall", listing.Id(3), price).Return(call)
	failed := tx.PendingTx{Status: tx.StatusFailed, Reason: domain.ErrSimulationReverted}
	h.executor.On("Submit", mock.Anything, call, mock.Anything).Return(failed, domain.ErrSimulationReverted)

	outcome, err := h.uc.Purchase(ctx, 3, price)
	req.ErrorIs(err, domain.ErrSimulationReverted)
	req.Equal(tx.StatusFailed, outcome.Tx.Status)

	// in-progress followed by failure notification
	h.notifier.AssertNumberOfCalls(t, "Notify", 2)
	kinds := notificationKinds(h.notifier)
	req.Equal([]market.NotificationKind{market.NotificationInProgress, market.NotificationFailure}, kinds)
}

func TestApproveTargetsMarketplace(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	h := newMarketHarness(true)

	call := &domain.ContractCall{Target: nftAddr, FunctionName: "approve"}
	h.token.On("ApproveCall", nftAddr, marketAddr, domain.TokenId("7")).Return(call, nil)
	h.executor.On("Submit", mock.Anything, call, mock.Anything).Return(confirmed(), nil)

	outcome, err := h.uc.Approve(ctx, nftAddr, domain.TokenId("7"))
	req.NoError(err)
	req.Equal(tx.StatusConfirmed, outcome.Tx.Status)
	h.token.AssertExpectations(t)
}

func TestUpdatePriceAndCancel(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	h := newMarketHarness(true)

	update := &domain.ContractCall{Target: marketAddr, FunctionName: "updatePrice"}
	cancel := &domain.ContractCall{Target: marketAddr, FunctionName: "cancel"}
	h.contract.On("UpdatePriceCall", listing.Id(5), big.NewInt(2000)).Return(update)
	h.contract.On("CancelCall", listing.Id(5)).Return(cancel)
	h.executor.On("Submit", mock.Anything, update, mock.Anything).Return(confirmed(), nil)
	h.executor.On("Submit", mock.Anything, cancel, mock.Anything).Return(confirmed(), nil)

	_, err := h.uc.UpdatePrice(ctx, 5, big.NewInt(2000))
	req.NoError(err)

	_, err = h.uc.Cancel(ctx, 5)
	req.NoError(err)
}

func TestWizardFor(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	t.Run("incomplete input", func(t *testing.T) {
		h := newMarketHarness(true)
		state, err := h.uc.WizardFor(ctx, "", "")
		req.NoError(err)
		req.Equal(market.WizardCollectingInput, state)
	})

	t.Run("approval pending", func(t *testing.T) {
		h := newMarketHarness(true)
		h.token.On("GetApproved", mock.Anything, nftAddr, domain.TokenId("7")).Return(domain.EmptyAddress, nil)
		state, err := h.uc.WizardFor(ctx, nftAddr, domain.TokenId("7"))
		req.NoError(err)
		req.Equal(market.WizardAwaitingApproval, state)
	})

	t.Run("already approved skips the step", func(t *testing.T) {
		h := newMarketHarness(true)
		h.token.On("GetApproved", mock.Anything, nftAddr, domain.TokenId("7")).Return(marketAddr, nil)
		state, err := h.uc.WizardFor(ctx, nftAddr, domain.TokenId("7"))
		req.NoError(err)
		req.Equal(market.WizardReadyToList, state)
	})
}

func notificationKinds(n *mocks.Notifier) []market.NotificationKind {
	kinds := []market.NotificationKind{}
	for _, call := range n.Calls {
		if call.Method != "Notify" {
			continue
		}
		kinds = append(kinds, call.Arguments.Get(1).(market.Notification).Kind)
	}
	return kinds
}
