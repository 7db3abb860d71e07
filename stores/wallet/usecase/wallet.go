package usecase

import (
	"math/big"
	"sync"

	bCtx "github.com/framemarket/goapi/base/ctx"
	"github.com/framemarket/goapi/base/log"
	"github.com/framemarket/goapi/base/metrics"
	"github.com/framemarket/goapi/domain"
	"github.com/framemarket/goapi/domain/wallet"
)

type WalletUseCaseCfg struct {
	Provider wallet.Provider
	Balance  wallet.BalanceReader
}

type impl struct {
	provider wallet.Provider
	balance  wallet.BalanceReader
	metrics  metrics.Service

	mu        sync.Mutex
	connectMu sync.Mutex
	state     wallet.State
	observers []wallet.Observer
}

// NewWalletUseCase builds the session state machine and hooks it onto the
// provider's account and chain events.
func NewWalletUseCase(ctx bCtx.Ctx, cfg *WalletUseCaseCfg) wallet.UseCase {
	im := &impl{
		provider: cfg.Provider,
		balance:  cfg.Balance,
		metrics:  metrics.New("wallet"),
	}
	im.provider.OnAccountsChanged(func(accounts []domain.Address) {
		im.onAccountsChanged(ctx, accounts)
	})
	im.provider.OnChainChanged(func(chainId domain.ChainId) {
		im.onChainChanged(ctx, chainId)
	})
	return im
}

// Connect runs the approval prompt and fills session state. A concurrent
// Connect blocks on the same flight and observes its final state.
func (im *impl) Connect(c bCtx.Ctx) (wallet.State, error) {
	im.connectMu.Lock()
	defer im.connectMu.Unlock()

	if state := im.State(); state.Connected() {
		return state, nil
	}

	defer im.metrics.BumpTime("connect.time").End()
	im.setState(c, func(s *wallet.State) { s.Connecting = true })

	accounts, err := im.provider.RequestAccounts(c)
	if err != nil {
		im.setState(c, func(s *wallet.State) { *s = wallet.State{} })
		im.metrics.BumpSum("connect.err", 1)
		c.WithField("err", err).Warn("wallet connect failed")
		return im.State(), err
	}

	if len(accounts) == 0 {
		im.setState(c, func(s *wallet.State) { *s = wallet.State{} })
		im.metrics.BumpSum("connect.err", 1)
		c.Warn("provider approved connect with no accounts")
		return im.State(), domain.ErrNoProvider
	}

	chainId, err := im.provider.ChainId(c)
	if err != nil {
		im.setState(c, func(s *wallet.State) { *s = wallet.State{} })
		im.metrics.BumpSum("connect.err", 1)
		c.WithField("err", err).Error("failed to read chain id")
		return im.State(), err
	}

	address := accounts[0].ToLower()
	im.setState(c, func(s *wallet.State) {
		*s = wallet.State{Address: address, ChainId: chainId, Connecting: false}
	})
	im.metrics.BumpSum("connect.ok", 1)

	if balance, err := im.balance.BalanceOf(c, address); err != nil {
		c.WithField("err", err).Warn("initial balance read failed")
	} else {
		im.setState(c, func(s *wallet.State) {
			if s.Address.Equals(address) {
				s.Balance = balance
			}
		})
	}
	return im.State(), nil
}

func (im *impl) Disconnect(c bCtx.Ctx) {
	im.setState(c, func(s *wallet.State) { *s = wallet.State{} })
	im.metrics.BumpSum("disconnect", 1)
}

// GetBalance returns the last known balance and refreshes it in the
// background. When nothing is cached yet the read is synchronous.
func (im *impl) GetBalance(c bCtx.Ctx, address domain.Address) (*big.Int, error) {
	state := im.State()
	if state.Address.Equals(address) && state.Balance != nil {
		go im.refreshBalance(c, address)
		return state.Balance, nil
	}

	balance, err := im.balance.BalanceOf(c, address)
	if err != nil {
		c.WithFields(log.Fields{
			"address": address,
			"err":     err,
		}).Error("balance read failed")
		return nil, err
	}
	im.setState(c, func(s *wallet.State) {
		if s.Address.Equals(address) {
			s.Balance = balance
		}
	})
	return balance, nil
}

func (im *impl) State() wallet.State {
	im.mu.Lock()
	defer im.mu.Unlock()
	return im.state
}

func (im *impl) Subscribe(observer wallet.Observer) {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.observers = append(im.observers, observer)
}

func (im *impl) Teardown() {
	im.provider.Teardown()
}

func (im *impl) refreshBalance(c bCtx.Ctx, address domain.Address) {
	balance, err := im.balance.BalanceOf(c, address)
	if err != nil {
		c.WithField("err", err).Warn("background balance refresh failed")
		return
	}
	im.setState(c, func(s *wallet.State) {
		if s.Address.Equals(address) {
			s.Balance = balance
		}
	})
}

// setState mutates the session under lock and notifies observers with the
// new snapshot, synchronously.
func (im *impl) setState(c bCtx.Ctx, mutate func(*wallet.State)) {
	im.mu.Lock()
	mutate(&im.state)
	state := im.state
	observers := append([]wallet.Observer{}, im.observers...)
	im.mu.Unlock()
	for _, observer := range observers {
		observer(state)
	}
}

func (im *impl) onAccountsChanged(c bCtx.Ctx, accounts []domain.Address) {
	if !im.State().Connected() {
		return
	}
	if len(accounts) == 0 {
		c.Info("wallet exposes no accounts, disconnecting")
		im.Disconnect(c)
		return
	}
	next := accounts[0].ToLower()
	if im.State().Address.Equals(next) {
		return
	}
	c.WithField("address", next).Info("wallet account changed")
	im.setState(c, func(s *wallet.State) {
		s.Address = next
		s.Balance = nil
	})
	im.refreshBalance(c, next)
}

func (im *impl) onChainChanged(c bCtx.Ctx, chainId domain.ChainId) {
	if !im.State().Connected() {
		return
	}
	c.WithField("chainId", chainId).Info("wallet chain changed")
	im.setState(c, func(s *wallet.State) {
		s.ChainId = chainId
		s.Balance = nil
	})
}
