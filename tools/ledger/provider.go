package ledger

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"

	"github.com/multiversx/mx-chain-core-go/data/transaction"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("tools/ledger")

// ArgsProvider is the argument DTO for the NewProvider function
type ArgsProvider struct {
	OpenTransport func() (Transport, error)
	AccountIndex  uint32
	AddressIndex  uint32
}

type provider struct {
	mut           sync.Mutex
	openTransport func() (Transport, error)
	accountIndex  uint32
	addressIndex  uint32
	transport     Transport
	app           *app
	configuration *AppConfiguration
	address       string
}

// NewProvider creates a wallet provider which signs transactions on a Ledger device
func NewProvider(args ArgsProvider) (*provider, error) {
	if args.OpenTransport == nil {
		return nil, ErrNilOpenTransportHandler
	}

	return &provider{
		openTransport: args.OpenTransport,
		accountIndex:  args.AccountIndex,
		addressIndex:  args.AddressIndex,
	}, nil
}

// Init opens the device and reads the app configuration. It returns false without an error when no
// device is attached, the device is locked or the MultiversX app is not open
func (p *provider) Init(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	p.mut.Lock()
	defer p.mut.Unlock()

	_ = p.closeTransport()

	transport, err := p.openTransport()
	if errors.Is(err, ErrDeviceNotFound) {
		log.Debug("no ledger device attached")
		return false, nil
	}
	if err != nil {
		return false, err
	}

	ledgerApp := newApp(transport)
	configuration, err := ledgerApp.GetAppConfiguration()
	if err != nil {
		_ = transport.Close()
		if errors.Is(err, ErrAppNotReady) {
			log.Debug("ledger app not ready", "error", err)
			return false, nil
		}

		return false, err
	}

	p.transport = transport
	p.app = ledgerApp
	p.configuration = configuration

	log.Debug("ledger app initialized", "version", configuration.Version,
		"contract data", configuration.ContractDataEnabled)

	return true, nil
}

// Login selects the configured account and address index and returns the device address
func (p *provider) Login(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	p.mut.Lock()
	defer p.mut.Unlock()

	if p.app == nil {
		return "", ErrNotInitialized
	}

	err := p.app.SetAddress(p.accountIndex, p.addressIndex)
	if err != nil {
		return "", err
	}

	address, err := p.app.GetAddress(p.accountIndex, p.addressIndex)
	if err != nil {
		return "", err
	}

	p.address = address
	log.Debug("ledger login", "account", p.accountIndex, "index", p.addressIndex, "address", address)

	return address, nil
}

// SignTransaction asks the device to sign the transaction and sets its signature
func (p *provider) SignTransaction(ctx context.Context, tx *transaction.FrontendTransaction) error {
	if tx == nil {
		return ErrNilTransaction
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	p.mut.Lock()
	defer p.mut.Unlock()

	if p.app == nil {
		return ErrNotInitialized
	}
	if len(p.address) == 0 {
		return ErrNotLoggedIn
	}
	if tx.Sender != p.address {
		return fmt.Errorf("%w, sender %s, ledger address %s", ErrSenderMismatch, tx.Sender, p.address)
	}
	if len(tx.Data) > 0 && !p.configuration.ContractDataEnabled {
		return ErrContractDataDisabled
	}

	log.Info("please confirm the transaction on your ledger device", "nonce", tx.Nonce, "receiver", tx.Receiver)

	signature, err := p.app.SignTransaction(tx)
	if err != nil {
		return err
	}

	tx.Signature = hex.EncodeToString(signature)

	return nil
}

// Close releases the device
func (p *provider) Close() error {
	p.mut.Lock()
	defer p.mut.Unlock()

	return p.closeTransport()
}

func (p *provider) closeTransport() error {
	if p.transport == nil {
		return nil
	}

	err := p.transport.Close()
	p.transport = nil
	p.app = nil
	p.configuration = nil
	p.address = ""

	return err
}

// IsInterfaceNil returns true if there is no value under the interface
func (p *provider) IsInterfaceNil() bool {
	return p == nil
}
