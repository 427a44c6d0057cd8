package escrow

import "errors"

var (
	// ErrNilProxy signals that a nil proxy was provided
	ErrNilProxy = errors.New("nil proxy")
	// ErrNilWalletProvider signals that a nil wallet provider was provided
	ErrNilWalletProvider = errors.New("nil wallet provider")
	// ErrNilGasService signals that a nil gas service was provided
	ErrNilGasService = errors.New("nil gas service")
	// ErrNilTransactionAwaiter signals that a nil transaction awaiter was provided
	ErrNilTransactionAwaiter = errors.New("nil transaction awaiter")
	// ErrNilTransactionJournal signals that a nil transaction journal was provided
	ErrNilTransactionJournal = errors.New("nil transaction journal")
	// ErrNilMetricsHandler signals that a nil metrics handler was provided
	ErrNilMetricsHandler = errors.New("nil metrics handler")
	// ErrInvalidContractAddress signals that the contract address is not a valid bech32 address
	ErrInvalidContractAddress = errors.New("invalid contract address")
	// ErrInvalidWalletAddress signals that the wallet reported an empty or malformed address
	ErrInvalidWalletAddress = errors.New("invalid wallet address")
	// ErrInvalidCallerAddress signals that the caller address is not a valid bech32 address
	ErrInvalidCallerAddress = errors.New("invalid caller address")
	// ErrInvalidSellerAddress signals that the seller address is not a valid bech32 address
	ErrInvalidSellerAddress = errors.New("invalid seller address")
	// ErrInvalidGigID signals that the gig ID is not an unsigned 64-bit integer
	ErrInvalidGigID = errors.New("invalid gig ID")
	// ErrInvalidDeadline signals that the deadline is not an unsigned 64-bit integer
	ErrInvalidDeadline = errors.New("invalid deadline")
	// ErrInvalidAmount signals that the provided amount is not a non-negative decimal number
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrNilAccount signals that the proxy returned a nil account
	ErrNilAccount = errors.New("nil account")
	// ErrEmptyTxHash signals that the proxy returned an empty transaction hash
	ErrEmptyTxHash = errors.New("empty transaction hash")
	// ErrInvalidPollingInterval signals that an invalid polling interval was provided
	ErrInvalidPollingInterval = errors.New("invalid polling interval")
	// ErrInvalidAwaitTimeout signals that an invalid await timeout was provided
	ErrInvalidAwaitTimeout = errors.New("invalid await timeout")
	// ErrAwaitTimeout signals that the transaction did not reach a final status in time
	ErrAwaitTimeout = errors.New("timeout waiting for the transaction to be executed")
)
