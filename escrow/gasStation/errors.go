package gas

import "errors"

var (
	// ErrNilNetworkConfigProvider signals that a nil network config provider was provided
	ErrNilNetworkConfigProvider = errors.New("nil network config provider")
	// ErrInvalidGasLimit signals that an invalid gas limit was provided
	ErrInvalidGasLimit = errors.New("invalid gas limit")
	// ErrNilTransaction signals that a nil transaction was provided
	ErrNilTransaction = errors.New("nil transaction")
	// ErrInvalidNetworkConfig signals that the network configuration is incomplete
	ErrInvalidNetworkConfig = errors.New("invalid network config")
	// ErrInsufficientGasLimit signals that the configured gas limit does not cover the network minimum for the payload
	ErrInsufficientGasLimit = errors.New("insufficient gas limit")
)
