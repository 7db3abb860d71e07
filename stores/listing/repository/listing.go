package repository

import (
	bCtx "github.com/framemarket/goapi/base/ctx"
	"github.com/framemarket/goapi/domain"
	"github.com/framemarket/goapi/domain/listing"
	"github.com/framemarket/goapi/service/chain/contract"
)

type listingRepo struct {
	market *contract.FrameMarket
}

// NewListingRepo reads listing state straight off the marketplace
// contract. There is no off-chain store, the contract is the registry.
func NewListingRepo(market *contract.FrameMarket) listing.Repo {
	return &listingRepo{market: market}
}

func (r *listingRepo) NextListingId(c bCtx.Ctx) (uint64, error) {
	return r.market.NextListingId(c)
}

func (r *listingRepo) GetListing(c bCtx.Ctx, id listing.Id) (*listing.Listing, error) {
	record, err := r.market.GetListing(c, id)
	if err != nil {
		return nil, err
	}
	// ids at or beyond the counter decode to an all-zero record
	if record.Seller.IsEmpty() {
		return nil, domain.ErrNotFound
	}
	return record, nil
}

func (r *listingRepo) IsActive(c bCtx.Ctx, id listing.Id) (bool, error) {
	return r.market.IsListingActive(c, id)
}

func (r *listingRepo) GetFee(c bCtx.Ctx) (*listing.Fee, error) {
	bps, err := r.market.FeeBps(c)
	if err != nil {
		return nil, err
	}
	recipient, err := r.market.FeeRecipient(c)
	if err != nil {
		return nil, err
	}
	return &listing.Fee{Bps: bps, Recipient: recipient}, nil
}
