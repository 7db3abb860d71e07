package abi

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var FrameMarketABI abi.ABI

var frameMarketABI = `[{"type":"function","name":"list","stateMutability":"nonpayable","inputs":[{"type":"address","name":"nft"},{"type":"uint256","name":"tokenId"},{"type":"uint256","name":"price"}],"outputs":[{"type":"uint96","name":"listingId"}]},{"type":"function","name":"purchase","stateMutability":"payable","inputs":[{"type":"uint96","name":"listingId"}],"outputs":[]},{"type":"function","name":"updatePrice","stateMutability":"nonpayable","inputs":[{"type":"uint96","name":"listingId"},{"type":"uint256","name":"newPrice"}],"outputs":[]},{"type":"function","name":"cancel","stateMutability":"nonpayable","inputs":[{"type":"uint96","name":"listingId"}],"outputs":[]},{"type":"function","name":"getListing","constant":true,"stateMutability":"view","inputs":[{"type":"uint96","name":"listingId"}],"outputs":[{"type":"tuple","components":[{"type":"address","name":"seller"},{"type":"address","name":"nft"},{"type":"uint256","name":"tokenId"},{"type":"uint256","name":"price"},{"type":"bool","name":"active"}]}]},{"type":"function","name":"nextListingId","constant":true,"stateMutability":"view","inputs":[],"outputs":[{"type":"uint96"}]},{"type":"function","name":"isListingActive","constant":true,"stateMutability":"view","inputs":[{"type":"uint96","name":"listingId"}],"outputs":[{"type":"bool"}]},{"type":"function","name":"feeBps","constant":true,"stateMutability":"view","inputs":[],"outputs":[{"type":"uint16"}]},{"type":"function","name":"feeRecipient","constant":true,"stateMutability":"view","inputs":[],"outputs":[{"type":"address"}]},{"type":"event","anonymous":false,"name":"Listed","inputs":[{"type":"uint96","name":"id","indexed":true},{"type":"address","name":"seller","indexed":true},{"type":"address","name":"nft","indexed":true},{"type":"uint256","name":"tokenId"},{"type":"uint256","name":"price"}]},{"type":"event","anonymous":false,"name":"Purchased","inputs":[{"type":"uint96","name":"id","indexed":true},{"type":"address","name":"buyer","indexed":true},{"type":"address","name":"seller","indexed":true},{"type":"address","name":"nft"},{"type":"uint256","name":"tokenId"},{"type":"uint256","name":"price"}]},{"type":"event","anonymous":false,"name":"ListingCancelled","inputs":[{"type":"uint96","name":"id","indexed":true}]},{"type":"event","anonymous":false,"name":"ListingUpdated","inputs":[{"type":"uint96","name":"id","indexed":true},{"type":"uint256","name":"newPrice"}]},{"type":"event","anonymous":false,"name":"FeeCollected","inputs":[{"type":"uint96","name":"listingId","indexed":true},{"type":"address","name":"recipient","indexed":true},{"type":"uint256","name":"amount"}]}]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(frameMarketABI))
	if err != nil {
		panic("Failed to parse frame market abi")
	}
	FrameMarketABI = _abi
}

type MarketListedLog struct {
	Id      *big.Int       // indexed
	Seller  common.Address // indexed
	Nft     common.Address // indexed
	TokenId *big.Int
	Price   *big.Int
}

func ToMarketListedLog(log *types.Log) (*MarketListedLog, error) {
	var listed MarketListedLog
	if err := FrameMarketABI.UnpackIntoInterface(&listed, "Listed", log.Data); err != nil {
		return nil, err
	}
	listed.Id = new(big.Int).SetBytes(log.Topics[1].Bytes())
	listed.Seller = common.BytesToAddress(log.Topics[2].Bytes())
	listed.Nft = common.BytesToAddress(log.Topics[3].Bytes())
	return &listed, nil
}
