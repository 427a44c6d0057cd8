package wallet

import (
	"context"
	"fmt"
	"strings"

	"github.com/cosmos/go-bip39"
	"github.com/multiversx/mx-chain-core-go/data/transaction"
	"github.com/multiversx/mx-chain-crypto-go/signing"
	"github.com/multiversx/mx-chain-crypto-go/signing/ed25519"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-sdk-go/blockchain/cryptoProvider"
	"github.com/multiversx/mx-sdk-go/builders"
	"github.com/multiversx/mx-sdk-go/core"
	"github.com/multiversx/mx-sdk-go/data"
	"github.com/multiversx/mx-sdk-go/interactors"
)

var (
	log    = logger.GetOrCreate("tools/wallet")
	keyGen = signing.NewKeyGenerator(ed25519.NewEd25519())
)

// ArgsSoftwareWallet is the argument DTO for the NewSoftwareWallet function
type ArgsSoftwareWallet struct {
	PemFile      string
	Mnemonic     string
	AccountIndex uint32
	AddressIndex uint32
}

type softwareWallet struct {
	cryptoHolder core.CryptoComponentsHolder
	txSigner     TxSigner
	address      string
}

// NewSoftwareWallet creates a wallet provider backed by a key loaded from a PEM file or derived from a mnemonic
func NewSoftwareWallet(args ArgsSoftwareWallet) (*softwareWallet, error) {
	privateKey, err := loadPrivateKey(interactors.NewWallet(), args)
	if err != nil {
		return nil, err
	}

	cryptoHolder, err := cryptoProvider.NewCryptoComponentsHolder(keyGen, privateKey)
	if err != nil {
		return nil, err
	}

	txSigner, err := builders.NewTxBuilder(cryptoProvider.NewSigner())
	if err != nil {
		return nil, err
	}

	return &softwareWallet{
		cryptoHolder: cryptoHolder,
		txSigner:     txSigner,
		address:      cryptoHolder.GetBech32(),
	}, nil
}

func loadPrivateKey(loader KeyLoader, args ArgsSoftwareWallet) ([]byte, error) {
	mnemonic := strings.Join(strings.Fields(args.Mnemonic), " ")

	switch {
	case len(args.PemFile) > 0 && len(mnemonic) > 0:
		return nil, ErrAmbiguousKeySource
	case len(args.PemFile) > 0:
		privateKey, err := loader.LoadPrivateKeyFromPemFile(args.PemFile)
		if err != nil {
			return nil, fmt.Errorf("%w while loading the PEM file %s", err, args.PemFile)
		}

		return privateKey, nil
	case len(mnemonic) > 0:
		if !bip39.IsMnemonicValid(mnemonic) {
			return nil, ErrInvalidMnemonic
		}

		return loader.GetPrivateKeyFromMnemonic(data.Mnemonic(mnemonic), args.AccountIndex, args.AddressIndex), nil
	default:
		return nil, ErrMissingKeySource
	}
}

// Init is always ready for software keys
func (sw *softwareWallet) Init(_ context.Context) (bool, error) {
	return true, nil
}

// Login returns the wallet address
func (sw *softwareWallet) Login(_ context.Context) (string, error) {
	log.Debug("software wallet login", "address", sw.address)

	return sw.address, nil
}

// SignTransaction signs the transaction with the loaded key
func (sw *softwareWallet) SignTransaction(_ context.Context, tx *transaction.FrontendTransaction) error {
	if tx == nil {
		return ErrNilTransaction
	}
	if tx.Sender != sw.address {
		return fmt.Errorf("%w, sender %s, wallet address %s", ErrSenderMismatch, tx.Sender, sw.address)
	}

	tx.Signature = ""

	return sw.txSigner.ApplyUserSignature(sw.cryptoHolder, tx)
}

// Close does nothing for software keys
func (sw *softwareWallet) Close() error {
	return nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (sw *softwareWallet) IsInterfaceNil() bool {
	return sw == nil
}
