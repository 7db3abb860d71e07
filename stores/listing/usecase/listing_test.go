package usecase

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	bCtx "github.com/framemarket/goapi/base/ctx"
	pricefomatter "github.com/framemarket/goapi/base/price_fomatter"
	"github.com/framemarket/goapi/domain"
	"github.com/framemarket/goapi/domain/listing"
	"github.com/framemarket/goapi/domain/mocks"
)

var (
	seller = domain.Address("0x3845badade8e6dff049820680d1f14bd3903a5d0")
	nft    = domain.Address("0x9c2e6f2b86dd7f7e67b9bba1679859b3f5a84c4c")
)

type listingHarness struct {
	repo     *mocks.ListingRepo
	metadata *mocks.MetadataUseCase
	ens      *mocks.ENS
	uc       listing.UseCase
}

func newListingHarness() *listingHarness {
	h := &listingHarness{
		repo:     &mocks.ListingRepo{},
		metadata: &mocks.MetadataUseCase{},
		ens:      &mocks.ENS{},
	}
	h.uc = NewListingUseCase(&ListingUseCaseCfg{
		Repo:           h.repo,
		Metadata:       h.metadata,
		Ens:            h.ens,
		PriceFormatter: pricefomatter.NewPriceFormatter(&pricefomatter.PriceFormatterCfg{Symbol: "ETH"}),
	})
	return h
}

func record(id listing.Id, active bool) *listing.Listing {
	return &listing.Listing{
		Id:      id,
		Seller:  seller,
		Nft:     nft,
		TokenId: domain.TokenId("7"),
		Price:   big.NewInt(500000000000000000),
		Active:  active,
	}
}

func TestListAllIds(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	h := newListingHarness()

	h.repo.On("NextListingId", mock.Anything).Return(uint64(3), nil)

	ids, err := h.uc.ListAllIds(ctx)
	req.NoError(err)
	req.Equal([]listing.Id{0, 1, 2}, ids)
}

func TestListAllIdsEmpty(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	h := newListingHarness()

	h.repo.On("NextListingId", mock.Anything).Return(uint64(0), nil)

	ids, err := h.uc.ListAllIds(ctx)
	req.NoError(err)
	req.Empty(ids)
}

func TestGetListingDetail(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	h := newListingHarness()

	h.repo.On("GetListing", mock.Anything, listing.Id(0)).Return(record(0, true), nil)
	h.ens.On("ReverseResolve", mock.Anything, seller).Return("frame.eth", nil)
	h.metadata.On("Resolve", mock.Anything, nft, domain.TokenId("7")).
		Return(&domain.NftMetadata{Name: "Frame #7", Image: "https://img"}, nil)

	detail, err := h.uc.GetListing(ctx, 0)
	req.NoError(err)
	req.Equal("0.5 ETH", detail.DisplayPrice)
	req.Equal("frame.eth", detail.SellerEns)
	req.Equal("0x3845...a5d0", detail.SellerShort)
	req.Equal("Frame #7", detail.Name)
	req.Equal("https://img", detail.Image)
}

func TestGetListingMetadataFailureStillRenders(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	h := newListingHarness()

	h.repo.On("GetListing", mock.Anything, listing.Id(0)).Return(record(0, true), nil)
	h.ens.On("ReverseResolve", mock.Anything, seller).Return("", nil)
	h.metadata.On("Resolve", mock.Anything, nft, domain.TokenId("7")).
		Return(&domain.NftMetadata{}, domain.ErrMetadataFetchFailed)

	detail, err := h.uc.GetListing(ctx, 0)
	req.NoError(err)
	req.Empty(detail.Name)
	req.Equal("0.5 ETH", detail.DisplayPrice)
}

func TestGetListingNotFound(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	h := newListingHarness()

	h.repo.On("GetListing", mock.Anything, listing.Id(9)).Return(nil, domain.ErrNotFound)

	_, err := h.uc.GetListing(ctx, 9)
	req.ErrorIs(err, domain.ErrNotFound)
}

func TestGetListingsActiveFilterAndSkips(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	h := newListingHarness()

	h.repo.On("NextListingId", mock.Anything).Return(uint64(3), nil)
	h.repo.On("GetListing", mock.Anything, listing.Id(0)).Return(record(0, true), nil)
	// cancelled listing stays readable but inactive
	h.repo.On("GetListing", mock.Anything, listing.Id(1)).Return(record(1, false), nil)
	// unreadable id is skipped, not fatal
	h.repo.On("GetListing", mock.Anything, listing.Id(2)).Return(nil, domain.ErrReadFailed)
	h.repo.On("IsActive", mock.Anything, listing.Id(0)).Return(true, nil)
	h.repo.On("IsActive", mock.Anything, listing.Id(1)).Return(false, nil)
	h.repo.On("IsActive", mock.Anything, listing.Id(2)).Return(false, domain.ErrReadFailed)
	h.ens.On("ReverseResolve", mock.Anything, seller).Return("", nil)
	h.metadata.On("Resolve", mock.Anything, nft, domain.TokenId("7")).Return(&domain.NftMetadata{}, nil)

	all, err := h.uc.GetListings(ctx, false)
	req.NoError(err)
	req.Len(all, 2)
	// snapshot keeps id order
	req.Equal(listing.Id(0), all[0].Id)
	req.Equal(listing.Id(1), all[1].Id)

	active, err := h.uc.GetListings(ctx, true)
	req.NoError(err)
	req.Len(active, 1)
	req.Equal(listing.Id(0), active[0].Id)
}

func TestGetListingsActiveScreensByFlag(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	h := newListingHarness()

	h.repo.On("NextListingId", mock.Anything).Return(uint64(2), nil)
	h.repo.On("IsActive", mock.Anything, listing.Id(0)).Return(true, nil)
	h.repo.On("IsActive", mock.Anything, listing.Id(1)).Return(false, nil)
	h.repo.On("GetListing", mock.Anything, listing.Id(0)).Return(record(0, true), nil)
	h.ens.On("ReverseResolve", mock.Anything, seller).Return("", nil)
	h.metadata.On("Resolve", mock.Anything, nft, domain.TokenId("7")).Return(&domain.NftMetadata{}, nil)

	active, err := h.uc.GetListings(ctx, true)
	req.NoError(err)
	req.Len(active, 1)
	// the inactive id never pays for the record plus metadata reads
	h.repo.AssertNotCalled(t, "GetListing", mock.Anything, listing.Id(1))
}

func TestGetFee(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	h := newListingHarness()

	h.repo.On("GetFee", mock.Anything).Return(&listing.Fee{Bps: 250, Recipient: seller}, nil)

	fee, err := h.uc.GetFee(ctx)
	req.NoError(err)
	req.Equal(uint16(250), fee.Bps)
}
