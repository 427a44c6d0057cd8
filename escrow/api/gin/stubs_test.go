package gin

import (
	"context"
	"net/http"

	"github.com/klever-io/mx-gig-escrow-go/escrow"
	"github.com/klever-io/mx-gig-escrow-go/escrow/journal"
)

type escrowFacadeStub struct {
	ConnectCalled       func(ctx context.Context) *escrow.ConnectResult
	SellerListCalled    func(ctx context.Context, caller string, gigID uint64, deadline uint64, price string) (*escrow.Receipt, error)
	SellerUnlistCalled  func(ctx context.Context, caller string, gigID uint64) (*escrow.Receipt, error)
	SellerDeliverCalled func(ctx context.Context, caller string, gigID uint64) (*escrow.Receipt, error)
	SellerClaimCalled   func(ctx context.Context, caller string, gigID uint64) (*escrow.Receipt, error)
	BuyerOrderCalled    func(ctx context.Context, caller string, gigID uint64, seller string, payment string) (*escrow.Receipt, error)
	BuyerRefundCalled   func(ctx context.Context, caller string, gigID uint64, seller string) (*escrow.Receipt, error)
	BuyerDisputeCalled  func(ctx context.Context, caller string, gigID uint64, seller string) (*escrow.Receipt, error)
	BuyerAcceptCalled   func(ctx context.Context, caller string, gigID uint64, seller string) (*escrow.Receipt, error)
}

func (stub *escrowFacadeStub) Connect(ctx context.Context) *escrow.ConnectResult {
	if stub.ConnectCalled != nil {
		return stub.ConnectCalled(ctx)
	}

	return &escrow.ConnectResult{Status: escrow.ConnectStatusDeviceNotReady}
}

func (stub *escrowFacadeStub) SellerList(ctx context.Context, caller string, gigID uint64, deadline uint64, price string) (*escrow.Receipt, error) {
	if stub.SellerListCalled != nil {
		return stub.SellerListCalled(ctx, caller, gigID, deadline, price)
	}

	return &escrow.Receipt{}, nil
}

func (stub *escrowFacadeStub) SellerUnlist(ctx context.Context, caller string, gigID uint64) (*escrow.Receipt, error) {
	if stub.SellerUnlistCalled != nil {
		return stub.SellerUnlistCalled(ctx, caller, gigID)
	}

	return &escrow.Receipt{}, nil
}

func (stub *escrowFacadeStub) SellerDeliver(ctx context.Context, caller string, gigID uint64) (*escrow.Receipt, error) {
	if stub.SellerDeliverCalled != nil {
		return stub.SellerDeliverCalled(ctx, caller, gigID)
	}

	return &escrow.Receipt{}, nil
}

func (stub *escrowFacadeStub) SellerClaim(ctx context.Context, caller string, gigID uint64) (*escrow.Receipt, error) {
	if stub.SellerClaimCalled != nil {
		return stub.SellerClaimCalled(ctx, caller, gigID)
	}

	return &escrow.Receipt{}, nil
}

func (stub *escrowFacadeStub) BuyerOrder(ctx context.Context, caller string, gigID uint64, seller string, payment string) (*escrow.Receipt, error) {
	if stub.BuyerOrderCalled != nil {
		return stub.BuyerOrderCalled(ctx, caller, gigID, seller, payment)
	}

	return &escrow.Receipt{}, nil
}

func (stub *escrowFacadeStub) BuyerRefund(ctx context.Context, caller string, gigID uint64, seller string) (*escrow.Receipt, error) {
	if stub.BuyerRefundCalled != nil {
		return stub.BuyerRefundCalled(ctx, caller, gigID, seller)
	}

	return &escrow.Receipt{}, nil
}

func (stub *escrowFacadeStub) BuyerDispute(ctx context.Context, caller string, gigID uint64, seller string) (*escrow.Receipt, error) {
	if stub.BuyerDisputeCalled != nil {
		return stub.BuyerDisputeCalled(ctx, caller, gigID, seller)
	}

	return &escrow.Receipt{}, nil
}

func (stub *escrowFacadeStub) BuyerAccept(ctx context.Context, caller string, gigID uint64, seller string) (*escrow.Receipt, error) {
	if stub.BuyerAcceptCalled != nil {
		return stub.BuyerAcceptCalled(ctx, caller, gigID, seller)
	}

	return &escrow.Receipt{}, nil
}

func (stub *escrowFacadeStub) IsInterfaceNil() bool {
	return stub == nil
}

type transactionsJournalStub struct {
	GetCalled  func(hash string) (*journal.Entry, error)
	ListCalled func(limit int) ([]*journal.Entry, error)
}

func (stub *transactionsJournalStub) Get(hash string) (*journal.Entry, error) {
	if stub.GetCalled != nil {
		return stub.GetCalled(hash)
	}

	return nil, journal.ErrEntryNotFound
}

func (stub *transactionsJournalStub) List(limit int) ([]*journal.Entry, error) {
	if stub.ListCalled != nil {
		return stub.ListCalled(limit)
	}

	return make([]*journal.Entry, 0), nil
}

func (stub *transactionsJournalStub) IsInterfaceNil() bool {
	return stub == nil
}

type httpMetricsHandlerStub struct {
	ObserveHTTPRequestCalled func(method string, route string, code int)
	HandlerCalled            func() http.Handler
}

func (stub *httpMetricsHandlerStub) ObserveHTTPRequest(method string, route string, code int) {
	if stub.ObserveHTTPRequestCalled != nil {
		stub.ObserveHTTPRequestCalled(method, route, code)
	}
}

func (stub *httpMetricsHandlerStub) Handler() http.Handler {
	if stub.HandlerCalled != nil {
		return stub.HandlerCalled()
	}

	return http.NotFoundHandler()
}

func (stub *httpMetricsHandlerStub) IsInterfaceNil() bool {
	return stub == nil
}
