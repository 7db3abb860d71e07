package listing

import (
	"math/big"

	"github.com/framemarket/goapi/base/ctx"
	"github.com/framemarket/goapi/domain"
)

type Id uint64

// Listing is a read-only snapshot of one marketplace entry owned by the
// contract. Ids are assigned monotonically and never reused; once Active
// turns false it never turns true again for the same id.
type Listing struct {
	Id      Id             `json:"id"`
	Seller  domain.Address `json:"seller"`
	Nft     domain.Address `json:"nft"`
	TokenId domain.TokenId `json:"tokenId"`
	Price   *big.Int       `json:"price"`
	Active  bool           `json:"active"`
}

// Fee is the marketplace fee configuration read from the contract.
type Fee struct {
	Bps       uint16         `json:"bps"`
	Recipient domain.Address `json:"recipient"`
}

// Repo reads listing state from the contract. No cross-id atomicity:
// concurrent reads may reflect different chain heights.
type Repo interface {
	// NextListingId reads the counter of listings ever created.
	NextListingId(ctx.Ctx) (uint64, error)
	// GetListing returns the record for id, including inactive listings.
	// Returns domain.ErrNotFound for ids at or beyond the counter.
	GetListing(ctx.Ctx, Id) (*Listing, error)
	// IsActive reads the active flag only, cheaper than a full record.
	IsActive(ctx.Ctx, Id) (bool, error)
	// GetFee reads feeBps and feeRecipient.
	GetFee(ctx.Ctx) (*Fee, error)
}

// Detail augments a Listing with display data. Metadata fields stay empty
// when resolution failed; the listing still renders.
type Detail struct {
	Listing
	DisplayPrice string `json:"displayPrice"`
	SellerEns    string `json:"sellerEns,omitempty"`
	SellerShort  string `json:"sellerShort"`
	Name         string `json:"name,omitempty"`
	Description  string `json:"description,omitempty"`
	Image        string `json:"image,omitempty"`
}

type UseCase interface {
	// ListAllIds returns the dense snapshot range [0, nextListingId).
	ListAllIds(ctx.Ctx) ([]Id, error)
	// GetListing returns the augmented record, nil for out-of-range ids.
	GetListing(ctx.Ctx, Id) (*Detail, error)
	// GetListings enumerates and augments the full range, optionally
	// filtered down to active listings. Ids whose detail read failed after
	// enumeration are skipped, not fatal.
	GetListings(ctx.Ctx, bool) ([]*Detail, error)
	GetFee(ctx.Ctx) (*Fee, error)
}
