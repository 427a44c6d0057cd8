package mock

import (
	"context"

	"github.com/multiversx/mx-chain-core-go/data/transaction"
)

// GasServiceStub -
type GasServiceStub struct {
	ApplyGasCalled func(ctx context.Context, tx *transaction.FrontendTransaction) error
}

// ApplyGas -
func (stub *GasServiceStub) ApplyGas(ctx context.Context, tx *transaction.FrontendTransaction) error {
	if stub.ApplyGasCalled != nil {
		return stub.ApplyGasCalled(ctx, tx)
	}

	return nil
}

// IsInterfaceNil -
func (stub *GasServiceStub) IsInterfaceNil() bool {
	return stub == nil
}
