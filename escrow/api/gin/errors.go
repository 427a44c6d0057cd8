package gin

import "errors"

var (
	// ErrNilEscrowFacade signals that a nil escrow facade was provided
	ErrNilEscrowFacade = errors.New("nil escrow facade")
	// ErrNilTransactionsJournal signals that a nil transactions journal was provided
	ErrNilTransactionsJournal = errors.New("nil transactions journal")
	// ErrNilMetricsHandler signals that a nil metrics handler was provided
	ErrNilMetricsHandler = errors.New("nil metrics handler")
	// ErrNilReceiptsHub signals that a nil receipts hub was provided
	ErrNilReceiptsHub = errors.New("nil receipts hub")
	// ErrNilHttpServer signals that a nil http server was provided
	ErrNilHttpServer = errors.New("nil http server")
	// ErrInvalidRateLimit signals that an invalid rate limit was provided
	ErrInvalidRateLimit = errors.New("invalid rate limit")
	// ErrEmptyApiToken signals that no API token was configured for the write routes
	ErrEmptyApiToken = errors.New("empty API token")
	// ErrInvalidApiToken signals that a request carried a missing or wrong API token
	ErrInvalidApiToken = errors.New("missing or invalid API token")
	// ErrUnsupportedContentType signals that a write request did not carry a JSON body
	ErrUnsupportedContentType = errors.New("content type must be application/json")
)
