package domain

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
)

// ContractCall describes one mutating contract invocation to be signed and
// broadcast by the wallet. Value is attached native currency in wei, nil
// means zero.
type ContractCall struct {
	Target       Address
	ABI          ethabi.ABI
	FunctionName string
	Args         []interface{}
	Value        *big.Int
}

// CallData packs the call into calldata bytes.
func (c *ContractCall) CallData() ([]byte, error) {
	return c.ABI.Pack(c.FunctionName, c.Args...)
}
