package pricefomatter

import (
	"math/big"
)

// PriceFormatter converts between smallest-unit amounts and the display
// form of the active network's native currency.
type PriceFormatter interface {
	// FormatNative renders a wei-equivalent amount, e.g. "1 ETH", "0.5 ETH".
	FormatNative(value *big.Int) string
	// ParseNative parses a display amount back into the smallest unit.
	ParseNative(s string) (*big.Int, error)
}
