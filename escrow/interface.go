package escrow

import (
	"context"

	"github.com/multiversx/mx-chain-core-go/data/transaction"
	sdkCore "github.com/multiversx/mx-sdk-go/core"
	"github.com/multiversx/mx-sdk-go/data"
)

// Proxy holds the primitive functions that the multiversx proxy engine supports & implements
// dependency inversion: blockchain package is considered inner business logic, this package is considered "plugin"
type Proxy interface {
	GetAccount(ctx context.Context, address sdkCore.AddressHandler) (*data.Account, error)
	SendTransaction(ctx context.Context, tx *transaction.FrontendTransaction) (string, error)
	IsInterfaceNil() bool
}

// TransactionStatusProxy defines the proxy subset able to report the processing status of a transaction
type TransactionStatusProxy interface {
	GetTransactionStatus(ctx context.Context, hash string) (string, error)
	IsInterfaceNil() bool
}

// WalletProvider defines the component that holds the signing keys, usually a hardware device
type WalletProvider interface {
	// Init prepares the provider. A false result with a nil error means the device or its app is not ready yet
	Init(ctx context.Context) (bool, error)
	// Login performs the handshake that yields the active address
	Login(ctx context.Context) (string, error)
	// SignTransaction signs the transaction in place
	SignTransaction(ctx context.Context, tx *transaction.FrontendTransaction) error
	IsInterfaceNil() bool
}

// GasService defines the component able to apply the network parameters (gas, chain ID, version) on a transaction
type GasService interface {
	ApplyGas(ctx context.Context, tx *transaction.FrontendTransaction) error
	IsInterfaceNil() bool
}

// TransactionAwaiter defines the component able to wait until a transaction reached a final status
type TransactionAwaiter interface {
	AwaitExecuted(ctx context.Context, hash string) (string, error)
	IsInterfaceNil() bool
}

// TransactionJournal keeps track of every submitted transaction
type TransactionJournal interface {
	Record(receipt *Receipt) error
	UpdateStatus(hash string, status string) error
	IsInterfaceNil() bool
}

// MetricsHandler defines the component able to count the executed operations
type MetricsHandler interface {
	ObserveOperation(action Action, outcome string, durationInSeconds float64)
	ObserveConnect(status ConnectStatus)
	IsInterfaceNil() bool
}
