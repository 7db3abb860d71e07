package contract

import (
	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	baseabi "github.com/framemarket/goapi/base/abi"
	bCtx "github.com/framemarket/goapi/base/ctx"
	"github.com/framemarket/goapi/domain"
	"github.com/framemarket/goapi/service/chain"
)

type Erc721 struct {
	abi               ethabi.ABI
	chainService      chain.Client
	erc721InterfaceId [4]byte
}

func NewErc721(chainService chain.Client) *Erc721 {
	interfaceId := [4]byte{}
	copy(interfaceId[:], common.FromHex("0x80ac58cd"))
	return &Erc721{
		abi:               baseabi.ERC721TokenABI,
		chainService:      chainService,
		erc721InterfaceId: interfaceId,
	}
}

func (e *Erc721) Supports721Interface(ctx bCtx.Ctx, addr domain.Address) (bool, error) {
	method := "supportsInterface"
	unpacked, err := e.chainService.Call(ctx, common.HexToAddress(string(addr)), e.abi, method, e.erc721InterfaceId)
	if err != nil {
		return false, err
	}
	if len(unpacked) != 1 {
		return false, domain.ErrReadFailed
	}
	supported, ok := unpacked[0].(bool)
	if !ok {
		return false, domain.ErrReadFailed
	}
	return supported, nil
}

func (e *Erc721) OwnerOf(ctx bCtx.Ctx, addr domain.Address, tokenId domain.TokenId) (domain.Address, error) {
	method := "ownerOf"
	id, err := tokenId.ToBig()
	if err != nil {
		return "", domain.ErrBadParamInput
	}
	unpacked, err := e.chainService.Call(ctx, common.HexToAddress(string(addr)), e.abi, method, id)
	if err != nil {
		return "", err
	}
	if len(unpacked) != 1 {
		return "", domain.ErrReadFailed
	}
	owner, ok := unpacked[0].(common.Address)
	if !ok {
		return "", domain.ErrReadFailed
	}
	return domain.Address(owner.Hex()).ToLower(), nil
}

func (e *Erc721) GetApproved(ctx bCtx.Ctx, addr domain.Address, tokenId domain.TokenId) (domain.Address, error) {
	method := "getApproved"
	id, err := tokenId.ToBig()
	if err != nil {
		return "", domain.ErrBadParamInput
	}
	unpacked, err := e.chainService.Call(ctx, common.HexToAddress(string(addr)), e.abi, method, id)
	if err != nil {
		return "", err
	}
	if len(unpacked) != 1 {
		return "", domain.ErrReadFailed
	}
	approved, ok := unpacked[0].(common.Address)
	if !ok {
		return "", domain.ErrReadFailed
	}
	return domain.Address(approved.Hex()).ToLower(), nil
}

func (e *Erc721) TokenURI(ctx bCtx.Ctx, addr domain.Address, tokenId domain.TokenId) (string, error) {
	method := "tokenURI"
	id, err := tokenId.ToBig()
	if err != nil {
		return "", domain.ErrBadParamInput
	}
	unpacked, err := e.chainService.Call(ctx, common.HexToAddress(string(addr)), e.abi, method, id)
	if err != nil {
		return "", err
	}
	if len(unpacked) != 1 {
		return "", domain.ErrReadFailed
	}
	uri, ok := unpacked[0].(string)
	if !ok {
		return "", domain.ErrReadFailed
	}
	return uri, nil
}

// ApproveCall builds approve(to, tokenId) against the token contract.
func (e *Erc721) ApproveCall(token domain.Address, to domain.Address, tokenId domain.TokenId) (*domain.ContractCall, error) {
	id, err := tokenId.ToBig()
	if err != nil {
		return nil, domain.ErrBadParamInput
	}
	return &domain.ContractCall{
		Target:       token,
		ABI:          e.abi,
		FunctionName: "approve",
		Args:         []interface{}{common.HexToAddress(string(to)), id},
	}, nil
}
