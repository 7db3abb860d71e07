package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	baseabi "github.com/framemarket/goapi/base/abi"
	bCtx "github.com/framemarket/goapi/base/ctx"
	"github.com/framemarket/goapi/base/log"
	"github.com/framemarket/goapi/domain"
	"github.com/framemarket/goapi/domain/listing"
	"github.com/framemarket/goapi/service/chain"
)

// listingRecord mirrors the getListing return tuple.
type listingRecord struct {
	Seller  common.Address
	Nft     common.Address
	TokenId *big.Int
	Price   *big.Int
	Active  bool
}

// FrameMarket wraps reads and call builders for the marketplace contract.
// Reads that come back malformed are reported as domain.ErrReadFailed
// instead of a type-assertion panic.
type FrameMarket struct {
	abi          ethabi.ABI
	chainService chain.Client
	addr         common.Address
}

func NewFrameMarket(chainService chain.Client, addr domain.Address) *FrameMarket {
	return &FrameMarket{
		abi:          baseabi.FrameMarketABI,
		chainService: chainService,
		addr:         common.HexToAddress(string(addr)),
	}
}

func (m *FrameMarket) Address() domain.Address {
	return domain.Address(m.addr.Hex())
}

func (m *FrameMarket) NextListingId(ctx bCtx.Ctx) (uint64, error) {
	method := "nextListingId"
	unpacked, err := m.chainService.Call(ctx, m.addr, m.abi, method)
	if err != nil {
		return 0, err
	}
	next, ok := firstBig(unpacked)
	if !ok || !next.IsUint64() {
		ctx.WithField("method", method).Error("malformed contract response")
		return 0, domain.ErrReadFailed
	}
	return next.Uint64(), nil
}

func (m *FrameMarket) GetListing(ctx bCtx.Ctx, id listing.Id) (*listing.Listing, error) {
	method := "getListing"
	unpacked, err := m.chainService.Call(ctx, m.addr, m.abi, method, new(big.Int).SetUint64(uint64(id)))
	if err != nil {
		return nil, err
	}
	if len(unpacked) != 1 {
		ctx.WithField("method", method).Error("malformed contract response")
		return nil, domain.ErrReadFailed
	}
	record, err := toListingRecord(unpacked[0])
	if err != nil {
		ctx.WithFields(log.Fields{
			"method":    method,
			"listingId": id,
			"err":       err,
		}).Error("malformed listing tuple")
		return nil, domain.ErrReadFailed
	}
	return &listing.Listing{
		Id:      id,
		Seller:  domain.Address(record.Seller.Hex()).ToLower(),
		Nft:     domain.Address(record.Nft.Hex()).ToLower(),
		TokenId: domain.TokenId(record.TokenId.String()),
		Price:   record.Price,
		Active:  record.Active,
	}, nil
}

func (m *FrameMarket) IsListingActive(ctx bCtx.Ctx, id listing.Id) (bool, error) {
	method := "isListingActive"
	unpacked, err := m.chainService.Call(ctx, m.addr, m.abi, method, new(big.Int).SetUint64(uint64(id)))
	if err != nil {
		return false, err
	}
	if len(unpacked) != 1 {
		return false, domain.ErrReadFailed
	}
	active, ok := unpacked[0].(bool)
	if !ok {
		return false, domain.ErrReadFailed
	}
	return active, nil
}

func (m *FrameMarket) FeeBps(ctx bCtx.Ctx) (uint16, error) {
	method := "feeBps"
	unpacked, err := m.chainService.Call(ctx, m.addr, m.abi, method)
	if err != nil {
		return 0, err
	}
	if len(unpacked) != 1 {
		return 0, domain.ErrReadFailed
	}
	bps, ok := unpacked[0].(uint16)
	if !ok {
		return 0, domain.ErrReadFailed
	}
	return bps, nil
}

func (m *FrameMarket) FeeRecipient(ctx bCtx.Ctx) (domain.Address, error) {
	method := "feeRecipient"
	unpacked, err := m.chainService.Call(ctx, m.addr, m.abi, method)
	if err != nil {
		return "", err
	}
	if len(unpacked) != 1 {
		return "", domain.ErrReadFailed
	}
	recipient, ok := unpacked[0].(common.Address)
	if !ok {
		return "", domain.ErrReadFailed
	}
	return domain.Address(recipient.Hex()).ToLower(), nil
}

// ListCall builds the list(nft, tokenId, price) invocation.
func (m *FrameMarket) ListCall(nft domain.Address, tokenId domain.TokenId, price *big.Int) (*domain.ContractCall, error) {
	id, err := tokenId.ToBig()
	if err != nil {
		return nil, domain.ErrBadParamInput
	}
	return &domain.ContractCall{
		Target:       m.Address(),
		ABI:          m.abi,
		FunctionName: "list",
		Args:         []interface{}{common.HexToAddress(string(nft)), id, price},
	}, nil
}

// PurchaseCall builds purchase(listingId) with the price attached as value.
func (m *FrameMarket) PurchaseCall(id listing.Id, price *big.Int) *domain.ContractCall {
	return &domain.ContractCall{
		Target:       m.Address(),
		ABI:          m.abi,
		FunctionName: "purchase",
		Args:         []interface{}{new(big.Int).SetUint64(uint64(id))},
		Value:        price,
	}
}

func (m *FrameMarket) UpdatePriceCall(id listing.Id, newPrice *big.Int) *domain.ContractCall {
	return &domain.ContractCall{
		Target:       m.Address(),
		ABI:          m.abi,
		FunctionName: "updatePrice",
		Args:         []interface{}{new(big.Int).SetUint64(uint64(id)), newPrice},
	}
}

func (m *FrameMarket) CancelCall(id listing.Id) *domain.ContractCall {
	return &domain.ContractCall{
		Target:       m.Address(),
		ABI:          m.abi,
		FunctionName: "cancel",
		Args:         []interface{}{new(big.Int).SetUint64(uint64(id))},
	}
}

// ListedIdOf recovers the listing id assigned by a confirmed list
// transaction from its Listed event.
func (m *FrameMarket) ListedIdOf(ctx bCtx.Ctx, hash domain.TxHash) (listing.Id, error) {
	receipt, err := m.chainService.TransactionReceipt(ctx, common.HexToHash(hash.String()))
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"hash": hash,
		}).Error("failed to fetch receipt")
		return 0, err
	}
	return m.ListedIdFromReceipt(ctx, receipt)
}

// ListedIdFromReceipt recovers the listing id assigned by a list
// transaction from its Listed event. Returns ErrNotFound when the
// receipt carries no Listed log from this contract.
func (m *FrameMarket) ListedIdFromReceipt(ctx bCtx.Ctx, receipt *types.Receipt) (listing.Id, error) {
	topic := m.abi.Events["Listed"].ID
	for _, l := range receipt.Logs {
		if l.Address != m.addr || len(l.Topics) == 0 || l.Topics[0] != topic {
			continue
		}
		listed, err := baseabi.ToMarketListedLog(l)
		if err != nil {
			ctx.WithField("err", err).Error("failed to unpack Listed log")
			return 0, domain.ErrReadFailed
		}
		if !listed.Id.IsUint64() {
			return 0, domain.ErrReadFailed
		}
		return listing.Id(listed.Id.Uint64()), nil
	}
	return 0, domain.ErrNotFound
}

// ConvertType panics on a shape mismatch, turn that into an error.
func toListingRecord(raw interface{}) (record *listingRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			record, err = nil, domain.ErrReadFailed
		}
	}()
	record = &listingRecord{}
	converted := ethabi.ConvertType(raw, record)
	result, ok := converted.(*listingRecord)
	if !ok {
		return nil, domain.ErrReadFailed
	}
	if result.TokenId == nil || result.Price == nil {
		return nil, domain.ErrReadFailed
	}
	return result, nil
}

func firstBig(unpacked []interface{}) (*big.Int, bool) {
	if len(unpacked) != 1 {
		return nil, false
	}
	v, ok := unpacked[0].(*big.Int)
	return v, ok
}
