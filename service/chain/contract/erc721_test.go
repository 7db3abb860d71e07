package contract

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/framemarket/goapi/domain"
)

func TestApproveCall(t *testing.T) {
	req := require.New(t)
	e := NewErc721(nil)

	call, err := e.ApproveCall(domain.Address(testNftAddress), domain.Address(testMarketAddress), domain.TokenId("7"))
	req.NoError(err)
	req.Equal("approve", call.FunctionName)
	req.Equal(domain.Address(testNftAddress), call.Target)

	data, err := call.CallData()
	req.NoError(err)
	req.NotEmpty(data)
}

func TestApproveCallRejectsMalformedTokenId(t *testing.T) {
	req := require.New(t)
	e := NewErc721(nil)

	_, err := e.ApproveCall(domain.Address(testNftAddress), domain.Address(testMarketAddress), domain.TokenId("7x"))
	req.ErrorIs(err, domain.ErrBadParamInput)
}
