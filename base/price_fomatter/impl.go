package pricefomatter

import (
	"strings"

	"math/big"

	"github.com/shopspring/decimal"
	"github.com/framemarket/goapi/domain"
)

type PriceFormatterCfg struct {
	// Symbol is the native currency symbol, e.g. "ETH"
	Symbol string
	// Decimals is the native currency precision, 18 for wei
	Decimals int32
}

type impl struct {
	symbol   string
	decimals int32
}

func NewPriceFormatter(cfg *PriceFormatterCfg) PriceFormatter {
	decimals := cfg.Decimals
	if decimals == 0 {
		decimals = 18
	}
	return &impl{
		symbol:   cfg.Symbol,
		decimals: decimals,
	}
}

func (f *impl) FormatNative(value *big.Int) string {
	if value == nil {
		value = big.NewInt(0)
	}
	d := decimal.NewFromBigInt(value, -f.decimals)
	return d.String() + " " + f.symbol
}

func (f *impl) ParseNative(s string) (*big.Int, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), f.symbol))
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, domain.ErrInvalidPrice
	}
	wei := d.Shift(f.decimals)
	if wei.Exponent() < 0 || wei.Sign() < 0 {
		return nil, domain.ErrInvalidPrice
	}
	return wei.BigInt(), nil
}
