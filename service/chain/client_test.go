package chain

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"
)

type revertDataError struct{}

func (revertDataError) Error() string          { return "execution reverted: NotSeller()" }
func (revertDataError) ErrorData() interface{} { return "0x07bf51b6" }

func TestIsRevert(t *testing.T) {
	req := require.New(t)

	// json-rpc errors carrying revert data
	req.True(isRevert(revertDataError{}))
	req.True(isRevert(xerrors.Errorf("rpc: %w", revertDataError{})))
	// message-only reverts
	req.True(isRevert(xerrors.Errorf("execution reverted")))
	// transport trouble is not a verdict
	req.False(isRevert(xerrors.Errorf("dial tcp: connection refused")))
	req.False(isRevert(xerrors.Errorf("context deadline exceeded")))
}
