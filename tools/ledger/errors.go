package ledger

import "errors"

var (
	// ErrDeviceNotFound signals that no Ledger device is attached
	ErrDeviceNotFound = errors.New("ledger device not found")
	// ErrHIDNotSupported signals that the platform has no USB HID support compiled in
	ErrHIDNotSupported = errors.New("usb hid not supported on this platform")
	// ErrInvalidReplyHeader signals that a HID report did not carry the expected channel and tag
	ErrInvalidReplyHeader = errors.New("invalid ledger reply header")
	// ErrInvalidReplySequence signals that HID reports arrived out of order
	ErrInvalidReplySequence = errors.New("invalid ledger reply sequence")
	// ErrAPDUTooLarge signals that the command does not fit in a single APDU
	ErrAPDUTooLarge = errors.New("apdu too large")
	// ErrInvalidResponse signals that the device answered with a malformed response
	ErrInvalidResponse = errors.New("invalid ledger response")
	// ErrAppNotReady signals that the device is locked or the MultiversX app is not open
	ErrAppNotReady = errors.New("ledger locked or MultiversX app not open")
	// ErrUserDenied signals that the user rejected the request on the device
	ErrUserDenied = errors.New("request denied by the user")
	// ErrUnexpectedStatusWord signals any other non-success status word
	ErrUnexpectedStatusWord = errors.New("unexpected ledger status word")
	// ErrNilOpenTransportHandler signals that a nil transport opener was provided
	ErrNilOpenTransportHandler = errors.New("nil open transport handler")
	// ErrNotInitialized signals that Init was not called or did not succeed
	ErrNotInitialized = errors.New("ledger provider not initialized")
	// ErrNotLoggedIn signals that Login was not called or did not succeed
	ErrNotLoggedIn = errors.New("ledger provider not logged in")
	// ErrSenderMismatch signals that the transaction sender is not the device address
	ErrSenderMismatch = errors.New("transaction sender does not match the ledger address")
	// ErrContractDataDisabled signals that the device refuses transactions carrying data
	ErrContractDataDisabled = errors.New("contract data is disabled in the MultiversX ledger app settings")
	// ErrNilTransaction signals that a nil transaction was provided
	ErrNilTransaction = errors.New("nil transaction")
)
