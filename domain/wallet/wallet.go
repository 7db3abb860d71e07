package wallet

import (
	"math/big"

	"github.com/framemarket/goapi/base/ctx"
	"github.com/framemarket/goapi/domain"
)

// State is the local view of the connected wallet. Address is empty while
// disconnected. Balance may be stale between refreshes.
type State struct {
	Address    domain.Address `json:"address"`
	ChainId    domain.ChainId `json:"chainId"`
	Balance    *big.Int       `json:"balance"`
	Connecting bool           `json:"connecting"`
}

func (s State) Connected() bool {
	return !s.Address.IsEmpty()
}

// Provider is the external wallet surface the session consumes. An
// implementation signs with keys it holds; RequestAccounts stands in for the
// wallet approval prompt.
type Provider interface {
	// RequestAccounts prompts for connection approval and returns the
	// accounts the wallet exposes. Fails with domain.ErrUserRejected when
	// the prompt is declined and domain.ErrNoProvider when no wallet is
	// available.
	RequestAccounts(ctx.Ctx) ([]domain.Address, error)
	ChainId(ctx.Ctx) (domain.ChainId, error)
	// SendTransaction signs and broadcasts the call from the given account,
	// returning the transaction hash once accepted by the network.
	SendTransaction(ctx.Ctx, domain.Address, *domain.ContractCall) (domain.TxHash, error)
	// OnAccountsChanged registers a listener for wallet account changes. An
	// empty slice means the wallet exposes no accounts anymore.
	OnAccountsChanged(func([]domain.Address))
	// OnChainChanged registers a listener for active network changes.
	OnChainChanged(func(domain.ChainId))
	// Teardown unregisters provider listeners. Called on app shutdown.
	Teardown()
}

// BalanceReader reads the native balance of an account at the latest block.
type BalanceReader interface {
	BalanceOf(ctx.Ctx, domain.Address) (*big.Int, error)
}

// Observer receives every session state change, synchronously.
type Observer func(State)

type UseCase interface {
	// Connect initiates the wallet approval prompt. Calling Connect while a
	// connect is already in flight is a no-op that resolves to the same
	// final state.
	Connect(ctx.Ctx) (State, error)
	// Disconnect clears local session state. Always succeeds locally.
	Disconnect(ctx.Ctx)
	// GetBalance returns the latest known native balance for the address
	// and triggers a background refresh.
	GetBalance(ctx.Ctx, domain.Address) (*big.Int, error)
	State() State
	Subscribe(Observer)
	// Teardown stops the session and its provider listeners.
	Teardown()
}
