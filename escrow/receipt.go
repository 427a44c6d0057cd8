package escrow

import "github.com/multiversx/mx-chain-core-go/data/transaction"

// Action names a marketplace operation. Its value is the contract function being called
type Action string

const (
	// ActionList lists a gig
	ActionList Action = "list"
	// ActionUnlist removes a listed gig
	ActionUnlist Action = "unlist"
	// ActionDeliver marks an ordered gig as delivered
	ActionDeliver Action = "deliver"
	// ActionClaim lets the seller claim the payment of a gig
	ActionClaim Action = "claim"
	// ActionOrder orders a gig, paying its price into escrow
	ActionOrder Action = "order"
	// ActionRefund asks for the escrowed payment back
	ActionRefund Action = "refund"
	// ActionDispute opens a dispute on an ordered gig
	ActionDispute Action = "dispute"
	// ActionAccept accepts a delivered gig
	ActionAccept Action = "accept"
)

// StatusPending is the journal status of a submitted transaction which has not been finalized yet
const StatusPending = string(transaction.TxStatusPending)

// Receipt is the handle of a submitted marketplace transaction
type Receipt struct {
	Hash     string `json:"hash"`
	Action   Action `json:"action"`
	Sender   string `json:"sender"`
	Receiver string `json:"receiver"`
	Nonce    uint64 `json:"nonce"`
	Value    string `json:"value"`
	GasLimit uint64 `json:"gasLimit"`
	GasPrice uint64 `json:"gasPrice"`
	Data     string `json:"data"`
	Status   string `json:"status"`
}

// IsFinal returns true if the transaction reached a status that will not change anymore
func (r *Receipt) IsFinal() bool {
	return IsFinalStatus(r.Status)
}

// IsSuccessful returns true if the transaction was executed successfully
func (r *Receipt) IsSuccessful() bool {
	return r.Status == string(transaction.TxStatusSuccess)
}

// IsFinalStatus returns true if the provided network status will not change anymore
func IsFinalStatus(status string) bool {
	switch transaction.TxStatus(status) {
	case transaction.TxStatusSuccess, transaction.TxStatusFail, transaction.TxStatusInvalid, transaction.TxStatusRewardReverted:
		return true
	default:
		return false
	}
}

func newReceipt(action Action, hash string, tx *transaction.FrontendTransaction) *Receipt {
	return &Receipt{
		Hash:     hash,
		Action:   action,
		Sender:   tx.Sender,
		Receiver: tx.Receiver,
		Nonce:    tx.Nonce,
		Value:    tx.Value,
		GasLimit: tx.GasLimit,
		GasPrice: tx.GasPrice,
		Data:     string(tx.Data),
		Status:   StatusPending,
	}
}

// ConnectStatus is the outcome of a wallet connect attempt
type ConnectStatus string

const (
	// ConnectStatusConnected means the login handshake finished and an address is available
	ConnectStatusConnected ConnectStatus = "connected"
	// ConnectStatusDeviceNotReady means the device is absent, locked or the MultiversX app is not open
	ConnectStatusDeviceNotReady ConnectStatus = "device-not-ready"
	// ConnectStatusDeviceError means initialising or logging in failed
	ConnectStatusDeviceError ConnectStatus = "device-error"
)

// ConnectResult holds the outcome of Connect
type ConnectResult struct {
	Status  ConnectStatus
	Address string
	Err     error
}
