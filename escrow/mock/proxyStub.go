package mock

import (
	"context"

	"github.com/multiversx/mx-chain-core-go/data/transaction"
	sdkCore "github.com/multiversx/mx-sdk-go/core"
	"github.com/multiversx/mx-sdk-go/data"
)

// ProxyStub -
type ProxyStub struct {
	GetAccountCalled           func(ctx context.Context, address sdkCore.AddressHandler) (*data.Account, error)
	SendTransactionCalled      func(ctx context.Context, tx *transaction.FrontendTransaction) (string, error)
	GetNetworkConfigCalled     func(ctx context.Context) (*data.NetworkConfig, error)
	GetTransactionStatusCalled func(ctx context.Context, hash string) (string, error)
}

// GetAccount -
func (stub *ProxyStub) GetAccount(ctx context.Context, address sdkCore.AddressHandler) (*data.Account, error) {
	if stub.GetAccountCalled != nil {
		return stub.GetAccountCalled(ctx, address)
	}

	return &data.Account{}, nil
}

// SendTransaction -
func (stub *ProxyStub) SendTransaction(ctx context.Context, tx *transaction.FrontendTransaction) (string, error) {
	if stub.SendTransactionCalled != nil {
		return stub.SendTransactionCalled(ctx, tx)
	}

	return "", nil
}

// GetNetworkConfig -
func (stub *ProxyStub) GetNetworkConfig(ctx context.Context) (*data.NetworkConfig, error) {
	if stub.GetNetworkConfigCalled != nil {
		return stub.GetNetworkConfigCalled(ctx)
	}

	return &data.NetworkConfig{}, nil
}

// GetTransactionStatus -
func (stub *ProxyStub) GetTransactionStatus(ctx context.Context, hash string) (string, error) {
	if stub.GetTransactionStatusCalled != nil {
		return stub.GetTransactionStatusCalled(ctx, hash)
	}

	return "", nil
}

// IsInterfaceNil -
func (stub *ProxyStub) IsInterfaceNil() bool {
	return stub == nil
}
