package domain

import (
	"github.com/framemarket/goapi/base/ctx"
)

// NftMetadata is the resolved off-chain descriptive document for one token.
// All fields are optional; a failed resolution yields the zero value.
type NftMetadata struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

// MetadataUseCase resolves token metadata through tokenURI. Resolve always
// returns a usable (possibly empty) result; the error reports why fields are
// absent and is non fatal to rendering. Each (contract, tokenId) pair is
// fetched at most once per session unless invalidated.
type MetadataUseCase interface {
	Resolve(ctx.Ctx, Address, TokenId) (*NftMetadata, error)
	Invalidate(ctx.Ctx, Address, TokenId) error
}

// TokenURIReader reads the content-URI pointer from a token contract.
type TokenURIReader interface {
	TokenURI(ctx.Ctx, Address, TokenId) (string, error)
}
