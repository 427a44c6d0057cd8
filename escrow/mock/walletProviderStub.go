package mock

import (
	"context"

	"github.com/multiversx/mx-chain-core-go/data/transaction"
)

// WalletProviderStub -
type WalletProviderStub struct {
	InitCalled            func(ctx context.Context) (bool, error)
	LoginCalled           func(ctx context.Context) (string, error)
	SignTransactionCalled func(ctx context.Context, tx *transaction.FrontendTransaction) error
}

// Init -
func (stub *WalletProviderStub) Init(ctx context.Context) (bool, error) {
	if stub.InitCalled != nil {
		return stub.InitCalled(ctx)
	}

	return true, nil
}

// Login -
func (stub *WalletProviderStub) Login(ctx context.Context) (string, error) {
	if stub.LoginCalled != nil {
		return stub.LoginCalled(ctx)
	}

	return "", nil
}

// SignTransaction -
func (stub *WalletProviderStub) SignTransaction(ctx context.Context, tx *transaction.FrontendTransaction) error {
	if stub.SignTransactionCalled != nil {
		return stub.SignTransactionCalled(ctx, tx)
	}

	return nil
}

// IsInterfaceNil -
func (stub *WalletProviderStub) IsInterfaceNil() bool {
	return stub == nil
}
