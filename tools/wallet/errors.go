package wallet

import "errors"

var (
	// ErrMissingKeySource signals that neither a PEM file nor a mnemonic was provided
	ErrMissingKeySource = errors.New("missing key source, provide a PEM file or a mnemonic")
	// ErrAmbiguousKeySource signals that both a PEM file and a mnemonic were provided
	ErrAmbiguousKeySource = errors.New("ambiguous key source, provide either a PEM file or a mnemonic")
	// ErrInvalidMnemonic signals that the mnemonic is not a valid BIP39 mnemonic
	ErrInvalidMnemonic = errors.New("invalid mnemonic")
	// ErrNilTransaction signals that a nil transaction was provided
	ErrNilTransaction = errors.New("nil transaction")
	// ErrSenderMismatch signals that the transaction sender is not the wallet address
	ErrSenderMismatch = errors.New("transaction sender does not match the wallet address")
)
