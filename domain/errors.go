package domain

import "errors"

var (
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given param is not valid")

	// wallet lifecycle
	ErrNotConnected = errors.New("wallet not connected")
	ErrUserRejected = errors.New("user rejected the request")
	ErrNoProvider   = errors.New("no wallet provider available")

	// transaction lifecycle
	ErrSimulationReverted = errors.New("call would revert on chain")
	ErrTimeout            = errors.New("confirmation polling exceeded bound")

	// chain reads
	ErrReadFailed = errors.New("chain read failed")

	// metadata resolution, non fatal
	ErrMetadataFetchFailed = errors.New("metadata fetch failed")

	ErrUnsupportedSchema = errors.New("unsupported schema")
	ErrInvalidJsonFormat = errors.New("invalid JSON format")
	ErrInvalidAddress    = errors.New("invalid address")
	ErrInvalidPrice      = errors.New("invalid price")

	// pre-list checks, mirroring the contract's own reverts
	ErrNotErc721     = errors.New("contract is not an erc721 token")
	ErrNotTokenOwner = errors.New("token is not owned by the connected account")
)
