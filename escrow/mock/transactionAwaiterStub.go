package mock

import "context"

// TransactionAwaiterStub -
type TransactionAwaiterStub struct {
	AwaitExecutedCalled func(ctx context.Context, hash string) (string, error)
}

// AwaitExecuted -
func (stub *TransactionAwaiterStub) AwaitExecuted(ctx context.Context, hash string) (string, error) {
	if stub.AwaitExecutedCalled != nil {
		return stub.AwaitExecutedCalled(ctx, hash)
	}

	return "success", nil
}

// IsInterfaceNil -
func (stub *TransactionAwaiterStub) IsInterfaceNil() bool {
	return stub == nil
}
