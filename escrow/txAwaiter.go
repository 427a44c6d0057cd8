package escrow

import (
	"context"
	"fmt"
	"time"

	"github.com/multiversx/mx-chain-core-go/core/check"
)

const minPollingInterval = 10 * time.Millisecond

// ArgsTransactionAwaiter is the argument DTO for the NewTransactionAwaiter function
type ArgsTransactionAwaiter struct {
	Proxy           TransactionStatusProxy
	PollingInterval time.Duration
	Timeout         time.Duration
}

type transactionAwaiter struct {
	proxy           TransactionStatusProxy
	pollingInterval time.Duration
	timeout         time.Duration
}

// NewTransactionAwaiter creates a component that polls the network until a transaction reaches a final status
func NewTransactionAwaiter(args ArgsTransactionAwaiter) (*transactionAwaiter, error) {
	if check.IfNil(args.Proxy) {
		return nil, ErrNilProxy
	}
	if args.PollingInterval < minPollingInterval {
		return nil, fmt.Errorf("%w, minimum %v, got %v", ErrInvalidPollingInterval, minPollingInterval, args.PollingInterval)
	}
	if args.Timeout < args.PollingInterval {
		return nil, fmt.Errorf("%w, should be at least the polling interval %v, got %v",
			ErrInvalidAwaitTimeout, args.PollingInterval, args.Timeout)
	}

	return &transactionAwaiter{
		proxy:           args.Proxy,
		pollingInterval: args.PollingInterval,
		timeout:         args.Timeout,
	}, nil
}

// AwaitExecuted blocks until the transaction reaches a final status and returns it.
// Query errors are retried on the next tick since a freshly sent transaction might not be indexed yet
func (ta *transactionAwaiter) AwaitExecuted(ctx context.Context, hash string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, ta.timeout)
	defer cancel()

	ticker := time.NewTicker(ta.pollingInterval)
	defer ticker.Stop()

	var lastErr error
	for {
		select {
		case <-ctx.Done():
			if lastErr != nil {
				return "", fmt.Errorf("%w, hash %s, last error: %v", ErrAwaitTimeout, hash, lastErr)
			}
			return "", fmt.Errorf("%w, hash %s", ErrAwaitTimeout, hash)
		case <-ticker.C:
		}

		status, err := ta.proxy.GetTransactionStatus(ctx, hash)
		if err != nil {
			lastErr = err
			log.Debug("transaction status query failed", "hash", hash, "error", err)
			continue
		}

		log.Trace("transaction status", "hash", hash, "status", status)
		if IsFinalStatus(status) {
			return status, nil
		}
	}
}

// IsInterfaceNil returns true if there is no value under the interface
func (ta *transactionAwaiter) IsInterfaceNil() bool {
	return ta == nil
}
