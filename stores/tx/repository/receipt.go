package repository

import (
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	bCtx "github.com/framemarket/goapi/base/ctx"
	"github.com/framemarket/goapi/domain"
	"github.com/framemarket/goapi/domain/tx"
	"github.com/framemarket/goapi/service/chain"
)

type receiptRepo struct {
	chainService chain.Client
}

func NewReceiptRepo(chainService chain.Client) tx.ReceiptReader {
	return &receiptRepo{chainService: chainService}
}

func (r *receiptRepo) ReceiptOf(c bCtx.Ctx, hash domain.TxHash) (*tx.Receipt, error) {
	receipt, err := r.chainService.TransactionReceipt(c, common.HexToHash(hash.String()))
	if err == ethereum.NotFound {
		// not mined yet
		return nil, nil
	}
	if err != nil {
		c.WithField("err", err).Warn("receipt fetch failed")
		return nil, err
	}
	return &tx.Receipt{
		TxHash:      hash,
		Succeeded:   receipt.Status == types.ReceiptStatusSuccessful,
		BlockNumber: domain.BlockNumber(receipt.BlockNumber.Uint64()),
	}, nil
}
