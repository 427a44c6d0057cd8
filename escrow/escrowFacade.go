package escrow

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-core-go/data/transaction"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-sdk-go/builders"
	sdkCore "github.com/multiversx/mx-sdk-go/core"
	"github.com/multiversx/mx-sdk-go/data"
)

const (
	outcomeSuccess = "success"
	outcomeFailed  = "failed"
	outcomeError   = "error"
)

var log = logger.GetOrCreate("escrow")

// ArgsEscrowFacade is the argument DTO for the NewEscrowFacade function
type ArgsEscrowFacade struct {
	Proxy           Proxy
	Wallet          WalletProvider
	GasService      GasService
	TxAwaiter       TransactionAwaiter
	Journal         TransactionJournal
	Metrics         MetricsHandler
	ContractAddress string
}

type escrowFacade struct {
	proxy           Proxy
	wallet          WalletProvider
	gasService      GasService
	txAwaiter       TransactionAwaiter
	journal         TransactionJournal
	metrics         MetricsHandler
	contractAddress string
}

// argument is a single typed contract call argument: either an unsigned integer or an address
type argument struct {
	number  *big.Int
	address sdkCore.AddressHandler
}

type contractCall struct {
	action        Action
	caller        string
	callerAddress sdkCore.AddressHandler
	value         *big.Int
	arguments     []argument
}

// NewEscrowFacade will create a new instance of the escrow contract facade
func NewEscrowFacade(args ArgsEscrowFacade) (*escrowFacade, error) {
	err := checkArgsEscrowFacade(args)
	if err != nil {
		return nil, err
	}

	return &escrowFacade{
		proxy:           args.Proxy,
		wallet:          args.Wallet,
		gasService:      args.GasService,
		txAwaiter:       args.TxAwaiter,
		journal:         args.Journal,
		metrics:         args.Metrics,
		contractAddress: args.ContractAddress,
	}, nil
}

func checkArgsEscrowFacade(args ArgsEscrowFacade) error {
	if check.IfNil(args.Proxy) {
		return ErrNilProxy
	}
	if check.IfNil(args.Wallet) {
		return ErrNilWalletProvider
	}
	if check.IfNil(args.GasService) {
		return ErrNilGasService
	}
	if check.IfNil(args.TxAwaiter) {
		return ErrNilTransactionAwaiter
	}
	if check.IfNil(args.Journal) {
		return ErrNilTransactionJournal
	}
	if check.IfNil(args.Metrics) {
		return ErrNilMetricsHandler
	}

	_, err := parseAddress(args.ContractAddress)
	if err != nil {
		return fmt.Errorf("%w, %s", ErrInvalidContractAddress, err.Error())
	}

	return nil
}

// Connect initialises the wallet provider and, if the device is ready, performs the login handshake.
// Failures are logged and reported through the result status, never as an error
func (ef *escrowFacade) Connect(ctx context.Context) *ConnectResult {
	result := ef.connect(ctx)
	ef.metrics.ObserveConnect(result.Status)

	return result
}

func (ef *escrowFacade) connect(ctx context.Context) *ConnectResult {
	ready, err := ef.wallet.Init(ctx)
	if err != nil {
		log.Error("error initialising the wallet provider", "error", err)
		return &ConnectResult{
			Status: ConnectStatusDeviceError,
			Err:    err,
		}
	}
	if !ready {
		log.Warn("could not initialise ledger app, make sure MultiversX app is open")
		return &ConnectResult{
			Status: ConnectStatusDeviceNotReady,
		}
	}

	address, err := ef.wallet.Login(ctx)
	if err != nil {
		log.Warn("wallet login failed", "error", err)
		return &ConnectResult{
			Status: ConnectStatusDeviceError,
			Err:    err,
		}
	}
	_, err = parseAddress(address)
	if err != nil {
		log.Warn("wallet returned an invalid address", "address", address, "error", err)
		return &ConnectResult{
			Status: ConnectStatusDeviceError,
			Err:    fmt.Errorf("%w: %s", ErrInvalidWalletAddress, err.Error()),
		}
	}

	log.Info("wallet connected", "address", address)

	return &ConnectResult{
		Status:  ConnectStatusConnected,
		Address: address,
	}
}

// SellerList lists a gig with the provided deadline and price (in EGLD)
func (ef *escrowFacade) SellerList(ctx context.Context, caller string, gigID uint64, deadline uint64, price string) (*Receipt, error) {
	denominatedPrice, err := DenominateAmount(price)
	if err != nil {
		return nil, fmt.Errorf("%w for action %s", err, ActionList)
	}

	arguments := []argument{
		uintArgument(gigID),
		uintArgument(deadline),
		{number: denominatedPrice},
	}

	return ef.callContract(ctx, ActionList, caller, nil, arguments)
}

// SellerUnlist removes a listed gig
func (ef *escrowFacade) SellerUnlist(ctx context.Context, caller string, gigID uint64) (*Receipt, error) {
	return ef.callContract(ctx, ActionUnlist, caller, nil, []argument{uintArgument(gigID)})
}

// SellerDeliver marks the gig as delivered
func (ef *escrowFacade) SellerDeliver(ctx context.Context, caller string, gigID uint64) (*Receipt, error) {
	return ef.callContract(ctx, ActionDeliver, caller, nil, []argument{uintArgument(gigID)})
}

// SellerClaim claims the escrowed payment of the gig
func (ef *escrowFacade) SellerClaim(ctx context.Context, caller string, gigID uint64) (*Receipt, error) {
	return ef.callContract(ctx, ActionClaim, caller, nil, []argument{uintArgument(gigID)})
}

// BuyerOrder orders the seller's gig, transferring the payment (in EGLD) into escrow
func (ef *escrowFacade) BuyerOrder(ctx context.Context, caller string, gigID uint64, seller string, payment string) (*Receipt, error) {
	denominatedPayment, err := DenominateAmount(payment)
	if err != nil {
		return nil, fmt.Errorf("%w for action %s", err, ActionOrder)
	}

	return ef.callWithSeller(ctx, ActionOrder, caller, gigID, seller, denominatedPayment)
}

// BuyerRefund asks for the escrowed payment back
func (ef *escrowFacade) BuyerRefund(ctx context.Context, caller string, gigID uint64, seller string) (*Receipt, error) {
	return ef.callWithSeller(ctx, ActionRefund, caller, gigID, seller, nil)
}

// BuyerDispute opens a dispute on the ordered gig
func (ef *escrowFacade) BuyerDispute(ctx context.Context, caller string, gigID uint64, seller string) (*Receipt, error) {
	return ef.callWithSeller(ctx, ActionDispute, caller, gigID, seller, nil)
}

// BuyerAccept accepts the delivered gig
func (ef *escrowFacade) BuyerAccept(ctx context.Context, caller string, gigID uint64, seller string) (*Receipt, error) {
	return ef.callWithSeller(ctx, ActionAccept, caller, gigID, seller, nil)
}

func (ef *escrowFacade) callWithSeller(
	ctx context.Context,
	action Action,
	caller string,
	gigID uint64,
	seller string,
	value *big.Int,
) (*Receipt, error) {
	sellerAddress, err := parseAddress(seller)
	if err != nil {
		return nil, fmt.Errorf("%w for action %s: %s", ErrInvalidSellerAddress, action, err.Error())
	}

	arguments := []argument{
		uintArgument(gigID),
		{address: sellerAddress},
	}

	return ef.callContract(ctx, action, caller, value, arguments)
}

func (ef *escrowFacade) callContract(
	ctx context.Context,
	action Action,
	caller string,
	value *big.Int,
	arguments []argument,
) (*Receipt, error) {
	// rejected inputs never reach the chain and are not observed as operations
	callerAddress, err := parseAddress(caller)
	if err != nil {
		return nil, fmt.Errorf("%w for action %s: %s", ErrInvalidCallerAddress, action, err.Error())
	}

	start := time.Now()

	call := &contractCall{
		action:        action,
		caller:        caller,
		callerAddress: callerAddress,
		value:         value,
		arguments:     arguments,
	}

	receipt, err := ef.execute(ctx, call)
	switch {
	case err != nil:
		ef.observe(action, outcomeError, start)
		return receipt, fmt.Errorf("%w while executing action %s", err, action)
	case receipt.IsSuccessful():
		ef.observe(action, outcomeSuccess, start)
	default:
		ef.observe(action, outcomeFailed, start)
	}

	return receipt, nil
}

// execute syncs the nonce, builds, signs, sends the transaction and waits for it to be executed.
// Once the transaction was sent, the receipt is returned even if the wait fails so the hash is not lost
func (ef *escrowFacade) execute(ctx context.Context, call *contractCall) (*Receipt, error) {
	account, err := ef.proxy.GetAccount(ctx, call.callerAddress)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrNilAccount
	}

	txData, err := ef.prepareTxData(call)
	if err != nil {
		return nil, err
	}

	tx := &transaction.FrontendTransaction{
		Nonce:    account.Nonce,
		Value:    valueAsString(call.value),
		Receiver: ef.contractAddress,
		Sender:   call.caller,
		Data:     txData,
	}

	err = ef.gasService.ApplyGas(ctx, tx)
	if err != nil {
		return nil, err
	}

	err = ef.wallet.SignTransaction(ctx, tx)
	if err != nil {
		return nil, err
	}

	txHash, err := ef.proxy.SendTransaction(ctx, tx)
	if err != nil {
		return nil, err
	}
	if len(txHash) == 0 {
		return nil, ErrEmptyTxHash
	}

	log.Debug("sent transaction", "action", call.action, "hash", txHash, "nonce", tx.Nonce)

	receipt := newReceipt(call.action, txHash, tx)
	err = ef.journal.Record(receipt)
	if err != nil {
		log.Warn("could not record the transaction in journal", "hash", txHash, "error", err)
	}

	status, err := ef.txAwaiter.AwaitExecuted(ctx, txHash)
	if err != nil {
		return receipt, err
	}

	receipt.Status = status
	err = ef.journal.UpdateStatus(txHash, status)
	if err != nil {
		log.Warn("could not update the transaction status in journal", "hash", txHash, "error", err)
	}

	log.Info("transaction executed", "action", call.action, "hash", txHash, "status", status)

	return receipt, nil
}

func (ef *escrowFacade) prepareTxData(call *contractCall) ([]byte, error) {
	txDataBuilder := builders.NewTxDataBuilder()
	txDataBuilder.Function(string(call.action))

	for _, arg := range call.arguments {
		if arg.address != nil {
			txDataBuilder.ArgAddress(arg.address)
			continue
		}

		txDataBuilder.ArgBigInt(arg.number)
	}

	return txDataBuilder.ToDataBytes()
}

func (ef *escrowFacade) observe(action Action, outcome string, start time.Time) {
	ef.metrics.ObserveOperation(action, outcome, time.Since(start).Seconds())
}

// IsInterfaceNil returns true if there is no value under the interface
func (ef *escrowFacade) IsInterfaceNil() bool {
	return ef == nil
}

func uintArgument(value uint64) argument {
	return argument{
		number: new(big.Int).SetUint64(value),
	}
}

func valueAsString(value *big.Int) string {
	if value == nil {
		return "0"
	}

	return value.String()
}

func parseAddress(bech32 string) (sdkCore.AddressHandler, error) {
	address, err := data.NewAddressFromBech32String(bech32)
	if err != nil {
		return nil, err
	}
	if !address.IsValid() {
		return nil, fmt.Errorf("address %q is not valid", bech32)
	}

	return address, nil
}
