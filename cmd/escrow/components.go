package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/klever-io/mx-gig-escrow-go/config"
	"github.com/klever-io/mx-gig-escrow-go/escrow"
	apiGin "github.com/klever-io/mx-gig-escrow-go/escrow/api/gin"
	gas "github.com/klever-io/mx-gig-escrow-go/escrow/gasStation"
	"github.com/klever-io/mx-gig-escrow-go/escrow/journal"
	"github.com/klever-io/mx-gig-escrow-go/escrow/metrics"
	"github.com/klever-io/mx-gig-escrow-go/tools/ledger"
	"github.com/klever-io/mx-gig-escrow-go/tools/wallet"
	"github.com/multiversx/mx-sdk-go/blockchain"
	sdkCore "github.com/multiversx/mx-sdk-go/core"
)

const (
	walletTypeLedger   = "ledger"
	walletTypePem      = "pem"
	walletTypeMnemonic = "mnemonic"
)

type walletProvider interface {
	escrow.WalletProvider
	Close() error
}

type metricsHandler interface {
	escrow.MetricsHandler
	ObserveHTTPRequest(method string, route string, code int)
	Handler() http.Handler
}

// escrowComponents holds every component built from the configuration
type escrowComponents struct {
	proxy   blockchainProxy
	wallet  walletProvider
	journal journal.Journal
	metrics metricsHandler
	facade  apiGin.EscrowFacade
}

type blockchainProxy interface {
	escrow.Proxy
	escrow.TransactionStatusProxy
	gas.NetworkConfigProvider
}

func createComponents(cfg config.EscrowConfig, notifier journal.EntriesNotifier) (*escrowComponents, error) {
	if len(cfg.GeneralConfig.NetworkAddress) == 0 {
		return nil, fmt.Errorf("empty NetworkAddress in config file")
	}

	proxy, err := createProxy(cfg.GeneralConfig)
	if err != nil {
		return nil, err
	}

	walletHandler, err := createWalletProvider(cfg.Wallet)
	if err != nil {
		return nil, err
	}

	txJournal, err := createJournal(cfg.Journal, notifier)
	if err != nil {
		_ = walletHandler.Close()
		return nil, err
	}

	components := &escrowComponents{
		proxy:   proxy,
		wallet:  walletHandler,
		journal: txJournal,
	}

	components.metrics, err = createMetrics(cfg.Api)
	if err != nil {
		components.close()
		return nil, err
	}

	gasService, err := gas.NewGasService(gas.ArgsGasService{
		NetworkConfigProvider: proxy,
		GasLimit:              cfg.GeneralConfig.GasLimit,
	})
	if err != nil {
		components.close()
		return nil, err
	}

	txAwaiter, err := escrow.NewTransactionAwaiter(escrow.ArgsTransactionAwaiter{
		Proxy:           proxy,
		PollingInterval: time.Millisecond * time.Duration(cfg.GeneralConfig.TxPollingIntervalInMillis),
		Timeout:         time.Second * time.Duration(cfg.GeneralConfig.TxAwaitTimeoutInSeconds),
	})
	if err != nil {
		components.close()
		return nil, err
	}

	components.facade, err = escrow.NewEscrowFacade(escrow.ArgsEscrowFacade{
		Proxy:           proxy,
		Wallet:          walletHandler,
		GasService:      gasService,
		TxAwaiter:       txAwaiter,
		Journal:         txJournal,
		Metrics:         components.metrics,
		ContractAddress: cfg.GeneralConfig.ContractAddress,
	})
	if err != nil {
		components.close()
		return nil, err
	}

	return components, nil
}

func createProxy(cfg config.GeneralConfig) (blockchainProxy, error) {
	argsProxy := blockchain.ArgsProxy{
		ProxyURL: cfg.NetworkAddress,
		Client: &http.Client{
			Timeout: time.Second * time.Duration(cfg.ProxyRequestTimeoutInSeconds),
		},
		SameScState:         false,
		ShouldBeSynced:      false,
		FinalityCheck:       cfg.ProxyFinalityCheck,
		AllowedDeltaToFinal: cfg.ProxyMaxNoncesDelta,
		CacheExpirationTime: time.Second * time.Duration(cfg.ProxyCacherExpirationSeconds),
		EntityType:          sdkCore.RestAPIEntityType(cfg.ProxyRestAPIEntityType),
	}

	return blockchain.NewProxy(argsProxy)
}

func createWalletProvider(cfg config.WalletConfig) (walletProvider, error) {
	switch cfg.Type {
	case walletTypeLedger:
		return ledger.NewProvider(ledger.ArgsProvider{
			OpenTransport: ledger.OpenHIDTransport,
			AccountIndex:  cfg.AccountIndex,
			AddressIndex:  cfg.AddressIndex,
		})
	case walletTypePem:
		return wallet.NewSoftwareWallet(wallet.ArgsSoftwareWallet{
			PemFile: cfg.PemFile,
		})
	case walletTypeMnemonic:
		return wallet.NewSoftwareWallet(wallet.ArgsSoftwareWallet{
			Mnemonic:     cfg.Mnemonic,
			AccountIndex: cfg.AccountIndex,
			AddressIndex: cfg.AddressIndex,
		})
	default:
		return nil, fmt.Errorf("unknown wallet type %q, valid options are %s, %s and %s",
			cfg.Type, walletTypeLedger, walletTypePem, walletTypeMnemonic)
	}
}

func createJournal(cfg config.JournalConfig, notifier journal.EntriesNotifier) (journal.Journal, error) {
	if !cfg.Enabled {
		log.Debug("transactions journal is disabled")
		return journal.NewDisabledJournal(), nil
	}

	return journal.NewBadgerJournal(journal.ArgsBadgerJournal{
		Path:     cfg.Path,
		Notifier: notifier,
	})
}

func createMetrics(cfg config.ApiConfig) (metricsHandler, error) {
	if !cfg.MetricsEnabled {
		return metrics.NewDisabledMetrics(), nil
	}

	return metrics.NewPrometheusMetrics()
}

func (ec *escrowComponents) close() {
	if ec.wallet != nil {
		log.LogIfError(ec.wallet.Close())
	}
	if ec.journal != nil {
		log.LogIfError(ec.journal.Close())
	}
}
