package wallet

import (
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
	bCtx "github.com/framemarket/goapi/base/ctx"
	"github.com/framemarket/goapi/base/log"
	"github.com/framemarket/goapi/domain"
	"github.com/framemarket/goapi/domain/wallet"
	"github.com/framemarket/goapi/service/chain"
)

// ApprovalRequest describes what the user is asked to approve. Call is nil
// for a connection request.
type ApprovalRequest struct {
	Account domain.Address
	Call    *domain.ContractCall
}

// ApprovalFunc stands in for the wallet prompt. Returning false rejects the
// request. A nil ApprovalFunc approves everything.
type ApprovalFunc func(bCtx.Ctx, *ApprovalRequest) bool

type KeystoreProviderCfg struct {
	KeystoreDir  string
	Passphrase   string
	ChainService chain.Client
	Approve      ApprovalFunc
}

// keystoreProvider implements wallet.Provider on top of a local encrypted
// keystore. The first keystore account acts as the exposed wallet account.
type keystoreProvider struct {
	ks           *keystore.KeyStore
	passphrase   string
	chainService chain.Client
	approve      ApprovalFunc

	mu               sync.Mutex
	accountListeners []func([]domain.Address)
	chainListeners   []func(domain.ChainId)
	sub              event.Subscription
	quit             chan struct{}
}

func NewKeystoreProvider(ctx bCtx.Ctx, cfg *KeystoreProviderCfg) wallet.Provider {
	ks := keystore.NewKeyStore(cfg.KeystoreDir, keystore.StandardScryptN, keystore.StandardScryptP)
	p := &keystoreProvider{
		ks:           ks,
		passphrase:   cfg.Passphrase,
		chainService: cfg.ChainService,
		approve:      cfg.Approve,
		quit:         make(chan struct{}),
	}
	events := make(chan accounts.WalletEvent, 16)
	p.sub = ks.Subscribe(events)
	go p.watch(ctx, events)
	return p
}

func (p *keystoreProvider) RequestAccounts(ctx bCtx.Ctx) ([]domain.Address, error) {
	accs := p.ks.Accounts()
	if len(accs) == 0 {
		return nil, domain.ErrNoProvider
	}
	addrs := toAddresses(accs)
	if p.approve != nil && !p.approve(ctx, &ApprovalRequest{Account: addrs[0]}) {
		return nil, domain.ErrUserRejected
	}
	return addrs, nil
}

func (p *keystoreProvider) ChainId(ctx bCtx.Ctx) (domain.ChainId, error) {
	return p.chainService.ChainId(), nil
}

func (p *keystoreProvider) SendTransaction(ctx bCtx.Ctx, from domain.Address, call *domain.ContractCall) (domain.TxHash, error) {
	account, err := p.findAccount(from)
	if err != nil {
		return "", err
	}
	if p.approve != nil && !p.approve(ctx, &ApprovalRequest{Account: from, Call: call}) {
		return "", domain.ErrUserRejected
	}

	data, err := call.CallData()
	if err != nil {
		ctx.WithField("err", err).Error("abi.Pack failed")
		return "", err
	}
	to := common.HexToAddress(string(call.Target))
	value := call.Value
	if value == nil {
		value = big.NewInt(0)
	}

	nonce, err := p.chainService.PendingNonceAt(ctx, account.Address)
	if err != nil {
		ctx.WithField("err", err).Error("failed to fetch nonce")
		return "", err
	}
	gasPrice, err := p.chainService.SuggestGasPrice(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("failed to fetch gas price")
		return "", err
	}
	gas, err := p.chainService.EstimateGas(ctx, ethereum.CallMsg{
		From:  account.Address,
		To:    &to,
		Value: value,
		Data:  data,
	})
	if err != nil {
		ctx.WithField("err", err).Error("failed to estimate gas")
		return "", err
	}

	unsigned := types.NewTransaction(nonce, to, value, gas, gasPrice, data)
	chainId := big.NewInt(int64(p.chainService.ChainId()))
	signed, err := p.ks.SignTxWithPassphrase(account, p.passphrase, unsigned, chainId)
	if err != nil {
		ctx.WithField("err", err).Error("failed to sign transaction")
		return "", err
	}
	if err := p.chainService.SendTransaction(ctx, signed); err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"hash": signed.Hash().Hex(),
		}).Error("failed to broadcast transaction")
		return "", err
	}
	return domain.TxHash(signed.Hash().Hex()), nil
}

func (p *keystoreProvider) OnAccountsChanged(listener func([]domain.Address)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.accountListeners = append(p.accountListeners, listener)
}

func (p *keystoreProvider) OnChainChanged(listener func(domain.ChainId)) {
	// a local signer never hops networks at runtime; listeners are kept so
	// the session wiring stays uniform
	p.mu.Lock()
	defer p.mu.Unlock()
	p.chainListeners = append(p.chainListeners, listener)
}

func (p *keystoreProvider) Teardown() {
	p.sub.Unsubscribe()
	close(p.quit)
}

func (p *keystoreProvider) watch(ctx bCtx.Ctx, events chan accounts.WalletEvent) {
	for {
		select {
		case <-p.quit:
			return
		case err := <-p.sub.Err():
			if err != nil {
				ctx.WithField("err", err).Warn("keystore subscription closed")
			}
			return
		case ev := <-events:
			ctx.WithField("kind", ev.Kind).Info("keystore wallet event")
			p.mu.Lock()
			listeners := append([]func([]domain.Address){}, p.accountListeners...)
			p.mu.Unlock()
			addrs := toAddresses(p.ks.Accounts())
			for _, listener := range listeners {
				listener(addrs)
			}
		}
	}
}

func (p *keystoreProvider) findAccount(addr domain.Address) (accounts.Account, error) {
	for _, account := range p.ks.Accounts() {
		if domain.Address(account.Address.Hex()).Equals(addr) {
			return account, nil
		}
	}
	return accounts.Account{}, domain.ErrNoProvider
}

func toAddresses(accs []accounts.Account) []domain.Address {
	addrs := make([]domain.Address, 0, len(accs))
	for _, a := range accs {
		addrs = append(addrs, domain.Address(a.Address.Hex()).ToLower())
	}
	return addrs
}
