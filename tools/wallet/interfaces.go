package wallet

import (
	"github.com/multiversx/mx-chain-core-go/data/transaction"
	"github.com/multiversx/mx-sdk-go/core"
	"github.com/multiversx/mx-sdk-go/data"
)

// TxSigner defines the component able to sign a transaction with the keys of a crypto holder
type TxSigner interface {
	ApplyUserSignature(cryptoHolder core.CryptoComponentsHolder, tx *transaction.FrontendTransaction) error
}

// KeyLoader defines the component able to load private keys from PEM files or mnemonics
type KeyLoader interface {
	LoadPrivateKeyFromPemFile(file string) ([]byte, error)
	GetPrivateKeyFromMnemonic(mnemonic data.Mnemonic, account, addressIndex uint32) []byte
}
