package gas

import (
	"context"
	"fmt"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-core-go/data/transaction"
	"github.com/multiversx/mx-sdk-go/data"
)

// DefaultGasLimit is the gas limit used for every escrow contract call
const DefaultGasLimit = uint64(50_000_000)

const defaultTxVersion = uint32(1)

// ArgsGasService is the DTO used to create a new gas service
type ArgsGasService struct {
	NetworkConfigProvider NetworkConfigProvider
	GasLimit              uint64
}

type gasService struct {
	networkConfigProvider NetworkConfigProvider
	gasLimit              uint64
}

// NewGasService creates a new instance of the gas service
func NewGasService(args ArgsGasService) (*gasService, error) {
	if err := checkArgsGasService(args); err != nil {
		return nil, err
	}

	return &gasService{
		networkConfigProvider: args.NetworkConfigProvider,
		gasLimit:              args.GasLimit,
	}, nil
}

func checkArgsGasService(args ArgsGasService) error {
	if check.IfNil(args.NetworkConfigProvider) {
		return ErrNilNetworkConfigProvider
	}
	if args.GasLimit == 0 {
		return ErrInvalidGasLimit
	}

	return nil
}

// ApplyGas sets the fixed gas limit together with the network gas price, chain ID and transaction version
func (gs *gasService) ApplyGas(ctx context.Context, tx *transaction.FrontendTransaction) error {
	if tx == nil {
		return ErrNilTransaction
	}

	networkConfig, err := gs.networkConfigProvider.GetNetworkConfig(ctx)
	if err != nil {
		return err
	}

	err = checkNetworkConfig(networkConfig)
	if err != nil {
		return err
	}

	// the network charges a minimum plus a per-byte cost for the data field
	minGasLimit := networkConfig.MinGasLimit + networkConfig.GasPerDataByte*uint64(len(tx.Data))
	if gs.gasLimit < minGasLimit {
		return fmt.Errorf("%w: configured %d, minimum for %d data bytes %d",
			ErrInsufficientGasLimit, gs.gasLimit, len(tx.Data), minGasLimit)
	}

	tx.GasLimit = gs.gasLimit
	tx.GasPrice = networkConfig.MinGasPrice
	tx.ChainID = networkConfig.ChainID
	tx.Version = networkConfig.MinTransactionVersion
	if tx.Version == 0 {
		tx.Version = defaultTxVersion
	}

	return nil
}

func checkNetworkConfig(networkConfig *data.NetworkConfig) error {
	if networkConfig == nil {
		return fmt.Errorf("%w: nil network config", ErrInvalidNetworkConfig)
	}
	if len(networkConfig.ChainID) == 0 {
		return fmt.Errorf("%w: empty chain ID", ErrInvalidNetworkConfig)
	}
	if networkConfig.MinGasPrice == 0 {
		return fmt.Errorf("%w: zero min gas price", ErrInvalidNetworkConfig)
	}

	return nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (gs *gasService) IsInterfaceNil() bool {
	return gs == nil
}
