package gin

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/klever-io/mx-gig-escrow-go/escrow"
	"github.com/klever-io/mx-gig-escrow-go/escrow/journal"
)

// EscrowFacade defines the marketplace operations exposed by the REST API
type EscrowFacade interface {
	Connect(ctx context.Context) *escrow.ConnectResult
	SellerList(ctx context.Context, caller string, gigID uint64, deadline uint64, price string) (*escrow.Receipt, error)
	SellerUnlist(ctx context.Context, caller string, gigID uint64) (*escrow.Receipt, error)
	SellerDeliver(ctx context.Context, caller string, gigID uint64) (*escrow.Receipt, error)
	SellerClaim(ctx context.Context, caller string, gigID uint64) (*escrow.Receipt, error)
	BuyerOrder(ctx context.Context, caller string, gigID uint64, seller string, payment string) (*escrow.Receipt, error)
	BuyerRefund(ctx context.Context, caller string, gigID uint64, seller string) (*escrow.Receipt, error)
	BuyerDispute(ctx context.Context, caller string, gigID uint64, seller string) (*escrow.Receipt, error)
	BuyerAccept(ctx context.Context, caller string, gigID uint64, seller string) (*escrow.Receipt, error)
	IsInterfaceNil() bool
}

// TransactionsJournal defines the journal queries exposed by the REST API
type TransactionsJournal interface {
	Get(hash string) (*journal.Entry, error)
	List(limit int) ([]*journal.Entry, error)
	IsInterfaceNil() bool
}

// HTTPMetricsHandler defines the component counting the served requests and exposing the metrics
type HTTPMetricsHandler interface {
	ObserveHTTPRequest(method string, route string, code int)
	Handler() http.Handler
	IsInterfaceNil() bool
}

// ReceiptsHub defines the component streaming journal entries over websocket
type ReceiptsHub interface {
	HandleWebSocket(c *gin.Context)
	Close() error
	IsInterfaceNil() bool
}

type server interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}
