package ledger

// Transport exchanges raw APDUs with a Ledger device. The returned response includes the trailing
// 2-byte status word
type Transport interface {
	Exchange(apdu []byte) ([]byte, error)
	Close() error
}
