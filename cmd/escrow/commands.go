package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/klever-io/mx-gig-escrow-go/config"
	"github.com/klever-io/mx-gig-escrow-go/escrow"
	apiGin "github.com/klever-io/mx-gig-escrow-go/escrow/api/gin"
	"github.com/klever-io/mx-gig-escrow-go/escrow/journal"
	"github.com/multiversx/mx-sdk-go/core/polling"
	"github.com/urfave/cli"
)

var (
	errWalletNotConnected       = errors.New("wallet not connected")
	errSoftwareWalletNotAllowed = errors.New("software wallets are not allowed for the serve command, set Api.AllowSoftwareWallet to override")
)

type operationHandler func(ctx context.Context, facade apiGin.EscrowFacade, caller string, c *cli.Context) (*escrow.Receipt, error)

func getCommands() []cli.Command {
	return []cli.Command{
		{
			Name:   "connect",
			Usage:  "Connects the configured wallet and displays its address",
			Action: connectAction,
		},
		operationCommand("list", "Lists a gig with a deadline and a price", []cli.Flag{callerAddress, gigID, deadline, price}, sellerList),
		operationCommand("unlist", "Removes a listed gig", []cli.Flag{callerAddress, gigID}, sellerAction(escrow.ActionUnlist)),
		operationCommand("deliver", "Marks an ordered gig as delivered", []cli.Flag{callerAddress, gigID}, sellerAction(escrow.ActionDeliver)),
		operationCommand("claim", "Claims the escrowed payment of a gig", []cli.Flag{callerAddress, gigID}, sellerAction(escrow.ActionClaim)),
		operationCommand("order", "Orders a gig, paying into escrow", []cli.Flag{callerAddress, gigID, sellerAddress, payment}, buyerOrder),
		operationCommand("refund", "Asks for the escrowed payment back", []cli.Flag{callerAddress, gigID, sellerAddress}, buyerAction(escrow.ActionRefund)),
		operationCommand("dispute", "Opens a dispute on an ordered gig", []cli.Flag{callerAddress, gigID, sellerAddress}, buyerAction(escrow.ActionDispute)),
		operationCommand("accept", "Accepts a delivered gig", []cli.Flag{callerAddress, gigID, sellerAddress}, buyerAction(escrow.ActionAccept)),
		{
			Name:   "serve",
			Usage:  "Starts the REST API and the journal reconciler until interrupted",
			Action: serveAction,
		},
		{
			Name:   "history",
			Usage:  "Displays the journaled transactions",
			Flags:  []cli.Flag{historyLimit, txHash},
			Action: historyAction,
		},
	}
}

func operationCommand(name string, usage string, flags []cli.Flag, handler operationHandler) cli.Command {
	return cli.Command{
		Name:  name,
		Usage: usage,
		Flags: flags,
		Action: func(c *cli.Context) error {
			return runOperation(c, handler)
		},
	}
}

func connectAction(c *cli.Context) error {
	cfg, _, _, err := setup(c)
	if err != nil {
		return err
	}

	components, err := createComponents(cfg, nil)
	if err != nil {
		return err
	}
	defer components.close()

	result := components.facade.Connect(context.Background())
	log.Info("wallet connect", "status", result.Status, "address", result.Address)

	return result.Err
}

func runOperation(c *cli.Context, handler operationHandler) error {
	cfg, _, _, err := setup(c)
	if err != nil {
		return err
	}

	components, err := createComponents(cfg, nil)
	if err != nil {
		return err
	}
	defer components.close()

	ctx, cancel := contextWithSignals()
	defer cancel()

	result := components.facade.Connect(ctx)
	if result.Status != escrow.ConnectStatusConnected {
		if result.Err != nil {
			return result.Err
		}
		return errWalletNotConnected
	}

	caller := c.String(callerAddress.Name)
	if len(caller) == 0 {
		caller = result.Address
	}

	receipt, err := handler(ctx, components.facade, caller, c)
	if receipt != nil {
		log.Info("transaction", "action", receipt.Action, "hash", receipt.Hash,
			"nonce", receipt.Nonce, "value", receipt.Value, "status", receipt.Status)
	}
	if err != nil {
		return err
	}
	if !receipt.IsSuccessful() {
		log.Warn("transaction was not executed successfully", "hash", receipt.Hash, "status", receipt.Status)
	}

	return nil
}

func sellerList(ctx context.Context, facade apiGin.EscrowFacade, caller string, c *cli.Context) (*escrow.Receipt, error) {
	id, err := escrow.ParseGigID(c.String(gigID.Name))
	if err != nil {
		return nil, err
	}

	gigDeadline, err := escrow.ParseDeadline(c.String(deadline.Name))
	if err != nil {
		return nil, err
	}

	return facade.SellerList(ctx, caller, id, gigDeadline, c.String(price.Name))
}

func sellerAction(action escrow.Action) operationHandler {
	return func(ctx context.Context, facade apiGin.EscrowFacade, caller string, c *cli.Context) (*escrow.Receipt, error) {
		id, err := escrow.ParseGigID(c.String(gigID.Name))
		if err != nil {
			return nil, err
		}

		switch action {
		case escrow.ActionUnlist:
			return facade.SellerUnlist(ctx, caller, id)
		case escrow.ActionDeliver:
			return facade.SellerDeliver(ctx, caller, id)
		default:
			return facade.SellerClaim(ctx, caller, id)
		}
	}
}

func buyerOrder(ctx context.Context, facade apiGin.EscrowFacade, caller string, c *cli.Context) (*escrow.Receipt, error) {
	id, err := escrow.ParseGigID(c.String(gigID.Name))
	if err != nil {
		return nil, err
	}

	return facade.BuyerOrder(ctx, caller, id, c.String(sellerAddress.Name), c.String(payment.Name))
}

func buyerAction(action escrow.Action) operationHandler {
	return func(ctx context.Context, facade apiGin.EscrowFacade, caller string, c *cli.Context) (*escrow.Receipt, error) {
		id, err := escrow.ParseGigID(c.String(gigID.Name))
		if err != nil {
			return nil, err
		}

		seller := c.String(sellerAddress.Name)
		switch action {
		case escrow.ActionRefund:
			return facade.BuyerRefund(ctx, caller, id, seller)
		case escrow.ActionDispute:
			return facade.BuyerDispute(ctx, caller, id, seller)
		default:
			return facade.BuyerAccept(ctx, caller, id, seller)
		}
	}
}

func serveAction(c *cli.Context) error {
	cfg, flagsConfig, _, err := setup(c)
	if err != nil {
		return err
	}

	err = checkServeWallet(cfg.Wallet, cfg.Api)
	if err != nil {
		return err
	}

	hub := apiGin.NewReceiptsHub(cfg.Api.CorsAllowedOrigins)
	components, err := createComponents(cfg, hub)
	if err != nil {
		return err
	}
	defer components.close()

	reconciler, err := journal.NewReconciler(journal.ArgsReconciler{
		Journal: components.journal,
		Proxy:   components.proxy,
	})
	if err != nil {
		return err
	}

	reconcileInterval := time.Second * time.Duration(cfg.Journal.ReconcileIntervalInSeconds)
	argsPollingHandler := polling.ArgsPollingHandler{
		Log:              log,
		Name:             "journal reconciler polling handler",
		PollingInterval:  reconcileInterval,
		PollingWhenError: reconcileInterval,
		Executor:         reconciler,
	}
	pollingHandler, err := polling.NewPollingHandler(argsPollingHandler)
	if err != nil {
		return err
	}

	webServer, err := apiGin.NewWebServerHandler(apiGin.ArgsWebServerHandler{
		Facade:           components.facade,
		Journal:          components.journal,
		Metrics:          components.metrics,
		Hub:              hub,
		Config:           cfg.Api,
		RestApiInterface: flagsConfig.RestApiInterface,
	})
	if err != nil {
		return err
	}

	err = webServer.StartHttpServer()
	if err != nil {
		return err
	}

	log.Info("starting the gig escrow client", "rest api interface", flagsConfig.RestApiInterface,
		"contract", cfg.GeneralConfig.ContractAddress, "wallet", cfg.Wallet.Type)

	err = pollingHandler.StartProcessingLoop()
	if err != nil {
		log.LogIfError(webServer.Close())
		return err
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	<-sigs

	log.Info("application closing, closing web server and polling handler...")

	log.LogIfError(webServer.Close())

	return pollingHandler.Close()
}

func checkServeWallet(walletCfg config.WalletConfig, apiCfg config.ApiConfig) error {
	if walletCfg.Type == walletTypeLedger {
		return nil
	}
	if !apiCfg.AllowSoftwareWallet {
		return fmt.Errorf("%w, wallet type %s", errSoftwareWalletNotAllowed, walletCfg.Type)
	}

	log.Warn("serving with a software wallet, every authorized request is signed without confirmation", "wallet", walletCfg.Type)

	return nil
}

func historyAction(c *cli.Context) error {
	cfg, _, _, err := setup(c)
	if err != nil {
		return err
	}

	if !cfg.Journal.Enabled {
		log.Warn("transactions journal is disabled, nothing to display")
		return nil
	}

	txJournal, err := journal.NewBadgerJournal(journal.ArgsBadgerJournal{Path: cfg.Journal.Path})
	if err != nil {
		return err
	}
	defer func() {
		log.LogIfError(txJournal.Close())
	}()

	hash := c.String(txHash.Name)
	if len(hash) > 0 {
		entry, errGet := txJournal.Get(hash)
		if errGet != nil {
			return errGet
		}

		logEntry(entry)
		return nil
	}

	entries, err := txJournal.List(c.Int(historyLimit.Name))
	if err != nil {
		return err
	}

	log.Info("journaled transactions", "num", len(entries))
	for _, entry := range entries {
		logEntry(entry)
	}

	return nil
}

func logEntry(entry *journal.Entry) {
	log.Info("transaction", "sequence", entry.Sequence, "action", entry.Action, "hash", entry.Hash,
		"sender", entry.Sender, "value", entry.Value, "status", entry.Status,
		"submitted", time.Unix(entry.SubmittedAt, 0).UTC().Format(time.RFC3339))
}

// contextWithSignals returns a context cancelled on SIGINT or SIGTERM, so an await in progress stops
// while the already sent transaction stays in the journal as pending
func contextWithSignals() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
