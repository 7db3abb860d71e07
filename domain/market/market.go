package market

import (
	"math/big"

	"github.com/framemarket/goapi/base/ctx"
	"github.com/framemarket/goapi/domain"
	"github.com/framemarket/goapi/domain/listing"
	"github.com/framemarket/goapi/domain/tx"
)

// Outcome is the result of one mutating marketplace action.
type Outcome struct {
	Tx tx.PendingTx `json:"tx"`
	// ListingId is set for List once the Listed event is recovered from the
	// confirmed receipt.
	ListingId *listing.Id `json:"listingId,omitempty"`
}

// UseCase is the set of mutating marketplace operations. Every operation
// requires a connected wallet session and fails with domain.ErrNotConnected
// otherwise; the executor's status machine passes through unchanged.
type UseCase interface {
	List(c ctx.Ctx, nft domain.Address, tokenId domain.TokenId, price *big.Int) (*Outcome, error)
	Approve(c ctx.Ctx, nft domain.Address, tokenId domain.TokenId) (*Outcome, error)
	// Purchase attaches value == price to the call; a stale price reverts
	// on chain and surfaces as domain.ErrSimulationReverted.
	Purchase(c ctx.Ctx, id listing.Id, price *big.Int) (*Outcome, error)
	UpdatePrice(c ctx.Ctx, id listing.Id, newPrice *big.Int) (*Outcome, error)
	Cancel(c ctx.Ctx, id listing.Id) (*Outcome, error)
	// WizardFor reports the pre-listing wizard state for a token: the
	// awaiting-approval step is skipped when the marketplace is already
	// approved for the token.
	WizardFor(c ctx.Ctx, nft domain.Address, tokenId domain.TokenId) (WizardState, error)
}

// WizardState is the purely local pre-listing sequencing state.
type WizardState string

const (
	WizardCollectingInput  WizardState = "collecting-input"
	WizardAwaitingApproval WizardState = "awaiting-approval"
	WizardReadyToList      WizardState = "ready-to-list"
)

// ApprovalReader checks token approval state for the wizard.
type ApprovalReader interface {
	GetApproved(ctx.Ctx, domain.Address, domain.TokenId) (domain.Address, error)
}

// Contract builds the mutating marketplace calls and reads back the id a
// confirmed list transaction was assigned.
type Contract interface {
	Address() domain.Address
	ListCall(nft domain.Address, tokenId domain.TokenId, price *big.Int) (*domain.ContractCall, error)
	PurchaseCall(id listing.Id, price *big.Int) *domain.ContractCall
	UpdatePriceCall(id listing.Id, newPrice *big.Int) *domain.ContractCall
	CancelCall(id listing.Id) *domain.ContractCall
	ListedIdOf(ctx.Ctx, domain.TxHash) (listing.Id, error)
}

// TokenContract is the nft-side surface of listing: approval state, the
// pre-list ownership checks and the approve call builder.
type TokenContract interface {
	ApprovalReader
	// Supports721Interface reports whether the contract implements ERC-721
	// (supportsInterface(0x80ac58cd)).
	Supports721Interface(ctx.Ctx, domain.Address) (bool, error)
	OwnerOf(ctx.Ctx, domain.Address, domain.TokenId) (domain.Address, error)
	ApproveCall(token domain.Address, to domain.Address, tokenId domain.TokenId) (*domain.ContractCall, error)
}

type NotificationKind string

const (
	NotificationInProgress NotificationKind = "in-progress"
	NotificationSuccess    NotificationKind = "success"
	NotificationFailure    NotificationKind = "failure"
)

// Notification is the transient user-visible outcome of a mutating action.
type Notification struct {
	Id     string           `json:"id"`
	Kind   NotificationKind `json:"kind"`
	Action string           `json:"action"`
	TxHash domain.TxHash    `json:"txHash,omitempty"`
	Reason string           `json:"reason,omitempty"`
}

// Notifier receives action notifications. Implementations must not block.
type Notifier interface {
	Notify(ctx.Ctx, Notification)
}
