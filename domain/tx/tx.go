package tx

import (
	"github.com/framemarket/goapi/base/ctx"
	"github.com/framemarket/goapi/domain"
)

type Status string

const (
	StatusUnsent    Status = "unsent"
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusFailed    Status = "failed"
)

// Terminal reports whether the status is a terminal one.
func (s Status) Terminal() bool {
	return s == StatusConfirmed || s == StatusFailed
}

// PendingTx is one in-flight mutating call. Hash is empty until the wallet
// accepts and broadcasts the call. Status only ever moves forward:
// unsent -> pending -> {confirmed|failed}.
type PendingTx struct {
	Hash   domain.TxHash `json:"hash,omitempty"`
	Status Status        `json:"status"`
	// Reason carries the failure cause for StatusFailed, nil otherwise.
	Reason error `json:"-"`
}

// StatusObserver is invoked on every status transition of a submission.
type StatusObserver func(PendingTx)

// Executor submits contract calls through the wallet and tracks them to a
// terminal state.
type Executor interface {
	// Submit runs the full lifecycle of one call: signing/broadcast,
	// receipt polling, terminal transition. It blocks until the terminal
	// state is reached and returns the final PendingTx. The observer, when
	// non nil, sees every transition including the terminal one.
	//
	// Fails fast with domain.ErrNotConnected when no session is active.
	// Broadcast-phase failures surface domain.ErrUserRejected or
	// domain.ErrSimulationReverted; polling past the bound surfaces
	// domain.ErrTimeout.
	Submit(ctx.Ctx, *domain.ContractCall, StatusObserver) (PendingTx, error)
}

// Simulator dry-runs a call from the given sender without broadcasting.
// A revert comes back as domain.ErrSimulationReverted, a transport
// failure as a domain.ErrReadFailed wrap.
type Simulator interface {
	Simulate(ctx.Ctx, domain.Address, *domain.ContractCall) error
}

// Receipt is the minimal confirmation outcome the executor needs from the
// network: whether the transaction is mined and whether it succeeded.
type Receipt struct {
	TxHash      domain.TxHash
	Succeeded   bool
	BlockNumber domain.BlockNumber
}

// ReceiptReader reads inclusion state for a broadcast transaction. A nil
// receipt with nil error means not yet mined.
type ReceiptReader interface {
	ReceiptOf(ctx.Ctx, domain.TxHash) (*Receipt, error)
}
