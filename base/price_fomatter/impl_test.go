package pricefomatter

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatNative(t *testing.T) {
	req := require.New(t)
	f := NewPriceFormatter(&PriceFormatterCfg{Symbol: "ETH"})

	oneEth, _ := new(big.Int).SetString("1000000000000000000", 10)
	halfEth, _ := new(big.Int).SetString("500000000000000000", 10)

	req.Equal("1 ETH", f.FormatNative(oneEth))
	req.Equal("0.5 ETH", f.FormatNative(halfEth))
	req.Equal("0 ETH", f.FormatNative(nil))
}

func TestParseNative(t *testing.T) {
	req := require.New(t)
	f := NewPriceFormatter(&PriceFormatterCfg{Symbol: "ETH"})

	tests := []struct {
		in      string
		exp     string
		wantErr bool
	}{
		{in: "1", exp: "1000000000000000000"},
		{in: "0.5 ETH", exp: "500000000000000000"},
		{in: "1.25", exp: "1250000000000000000"},
		{in: "-1", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "0.0000000000000000001", wantErr: true},
	}
	for _, tt := range tests {
		got, err := f.ParseNative(tt.in)
		if tt.wantErr {
			req.Error(err, tt.in)
			continue
		}
		req.NoError(err, tt.in)
		req.Equal(tt.exp, got.String(), tt.in)
	}
}
