package wallet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	bCtx "github.com/framemarket/goapi/base/ctx"
	"github.com/framemarket/goapi/domain"
)

func TestRequestAccountsWithEmptyKeystore(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()

	p := NewKeystoreProvider(c, &KeystoreProviderCfg{
		KeystoreDir: t.TempDir(),
		Passphrase:  "test",
	})
	defer p.Teardown()

	_, err := p.RequestAccounts(c)
	req.ErrorIs(err, domain.ErrNoProvider)
}

func TestRequestAccounts(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()

	p := NewKeystoreProvider(c, &KeystoreProviderCfg{
		KeystoreDir: t.TempDir(),
		Passphrase:  "test",
	}).(*keystoreProvider)
	defer p.Teardown()

	account, err := p.ks.NewAccount("test")
	req.NoError(err)

	addrs, err := p.RequestAccounts(c)
	req.NoError(err)
	req.Len(addrs, 1)
	req.Equal(strings.ToLower(account.Address.Hex()), addrs[0].ToLowerStr())
}

func TestRequestAccountsRejected(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()

	p := NewKeystoreProvider(c, &KeystoreProviderCfg{
		KeystoreDir: t.TempDir(),
		Passphrase:  "test",
		Approve: func(bCtx.Ctx, *ApprovalRequest) bool {
			return false
		},
	}).(*keystoreProvider)
	defer p.Teardown()

	_, err := p.ks.NewAccount("test")
	req.NoError(err)

	_, err = p.RequestAccounts(c)
	req.ErrorIs(err, domain.ErrUserRejected)
}

func TestSendTransactionRejectsUnknownAccount(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()

	p := NewKeystoreProvider(c, &KeystoreProviderCfg{
		KeystoreDir: t.TempDir(),
		Passphrase:  "test",
	})
	defer p.Teardown()

	_, err := p.SendTransaction(c, domain.Address("0x3845badade8e6dff049820680d1f14bd3903a5d0"), nil)
	req.ErrorIs(err, domain.ErrNoProvider)
}
