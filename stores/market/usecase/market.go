package usecase

import (
	"math/big"

	"github.com/google/uuid"
	bCtx "github.com/framemarket/goapi/base/ctx"
	"github.com/framemarket/goapi/base/log"
	"github.com/framemarket/goapi/base/metrics"
	"github.com/framemarket/goapi/base/validator"
	"github.com/framemarket/goapi/domain"
	"github.com/framemarket/goapi/domain/listing"
	"github.com/framemarket/goapi/domain/market"
	"github.com/framemarket/goapi/domain/tx"
	"github.com/framemarket/goapi/domain/wallet"
)

type MarketUseCaseCfg struct {
	Session  wallet.UseCase
	Executor tx.Executor
	Market   market.Contract
	Token    market.TokenContract
	Notifier market.Notifier
}

type impl struct {
	session  wallet.UseCase
	executor tx.Executor
	market   market.Contract
	token    market.TokenContract
	notifier market.Notifier
	metrics  metrics.Service
}

func NewMarketUseCase(cfg *MarketUseCaseCfg) market.UseCase {
	return &impl{
		session:  cfg.Session,
		executor: cfg.Executor,
		market:   cfg.Market,
		token:    cfg.Token,
		notifier: cfg.Notifier,
		metrics:  metrics.New("market"),
	}
}

func (im *impl) List(c bCtx.Ctx, nft domain.Address, tokenId domain.TokenId, price *big.Int) (*market.Outcome, error) {
	if !validator.IsValidAddress(string(nft)) {
		return nil, domain.ErrInvalidAddress
	}
	if price == nil || price.Sign() <= 0 {
		return nil, domain.ErrInvalidPrice
	}

	state := im.session.State()
	if !state.Connected() {
		return nil, domain.ErrNotConnected
	}
	// the contract would revert on these anyway, catch them before the
	// approval/broadcast round trip
	if ok, err := im.token.Supports721Interface(c, nft); err != nil {
		c.WithFields(log.Fields{
			"nft": nft,
			"err": err,
		}).Error("interface check failed")
		return nil, err
	} else if !ok {
		return nil, domain.ErrNotErc721
	}
	owner, err := im.token.OwnerOf(c, nft, tokenId)
	if err != nil {
		return nil, err
	}
	if !owner.Equals(state.Address) {
		return nil, domain.ErrNotTokenOwner
	}

	call, err := im.market.ListCall(nft, tokenId, price)
	if err != nil {
		return nil, err
	}

	outcome, err := im.run(c, "list", call)
	if err != nil {
		return outcome, err
	}

	// the contract assigns the id, read it back off the Listed event
	id, err := im.market.ListedIdOf(c, outcome.Tx.Hash)
	if err != nil {
		c.WithFields(log.Fields{
			"hash": outcome.Tx.Hash,
			"err":  err,
		}).Error("confirmed list without recoverable id")
		return outcome, err
	}
	outcome.ListingId = &id
	return outcome, nil
}

func (im *impl) Approve(c bCtx.Ctx, nft domain.Address, tokenId domain.TokenId) (*market.Outcome, error) {
	if !validator.IsValidAddress(string(nft)) {
		return nil, domain.ErrInvalidAddress
	}
	call, err := im.token.ApproveCall(nft, im.market.Address(), tokenId)
	if err != nil {
		return nil, err
	}
	return im.run(c, "approve", call)
}

// Purchase attaches value == price. When the listing changed under the
// buyer the simulation rejects the call before anything is broadcast.
func (im *impl) Purchase(c bCtx.Ctx, id listing.Id, price *big.Int) (*market.Outcome, error) {
	if price == nil || price.Sign() <= 0 {
		return nil, domain.ErrInvalidPrice
	}
	return im.run(c, "purchase", im.market.PurchaseCall(id, price))
}

func (im *impl) UpdatePrice(c bCtx.Ctx, id listing.Id, newPrice *big.Int) (*market.Outcome, error) {
	if newPrice == nil || newPrice.Sign() <= 0 {
		return nil, domain.ErrInvalidPrice
	}
	return im.run(c, "update-price", im.market.UpdatePriceCall(id, newPrice))
}

func (im *impl) Cancel(c bCtx.Ctx, id listing.Id) (*market.Outcome, error) {
	return im.run(c, "cancel", im.market.CancelCall(id))
}

// WizardFor sequences the two-step list flow. The approval step is skipped
// when the marketplace already holds approval for the token.
func (im *impl) WizardFor(c bCtx.Ctx, nft domain.Address, tokenId domain.TokenId) (market.WizardState, error) {
	if !validator.IsValidAddress(string(nft)) || len(tokenId) == 0 {
		return market.WizardCollectingInput, nil
	}
	approved, err := im.token.GetApproved(c, nft, tokenId)
	if err != nil {
		c.WithFields(log.Fields{
			"nft":     nft,
			"tokenId": tokenId,
			"err":     err,
		}).Error("approval read failed")
		return market.WizardCollectingInput, err
	}
	if approved.Equals(im.market.Address()) {
		return market.WizardReadyToList, nil
	}
	return market.WizardAwaitingApproval, nil
}

// run guards the session, drives the call to a terminal state and emits
// the in-progress/terminal notification pair.
func (im *impl) run(c bCtx.Ctx, action string, call *domain.ContractCall) (*market.Outcome, error) {
	if !im.session.State().Connected() {
		return nil, domain.ErrNotConnected
	}

	id := uuid.New().String()
	im.notify(c, market.Notification{Id: id, Kind: market.NotificationInProgress, Action: action})

	pending, err := im.executor.Submit(c, call, nil)
	outcome := &market.Outcome{Tx: pending}
	if err != nil {
		im.metrics.BumpSum("action.failed", 1, "action", action)
		im.notify(c, market.Notification{
			Id:     id,
			Kind:   market.NotificationFailure,
			Action: action,
			TxHash: pending.Hash,
			Reason: err.Error(),
		})
		return outcome, err
	}

	im.metrics.BumpSum("action.confirmed", 1, "action", action)
	im.notify(c, market.Notification{
		Id:     id,
		Kind:   market.NotificationSuccess,
		Action: action,
		TxHash: pending.Hash,
	})
	return outcome, nil
}

func (im *impl) notify(c bCtx.Ctx, n market.Notification) {
	if im.notifier == nil {
		return
	}
	im.notifier.Notify(c, n)
}
