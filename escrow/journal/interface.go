package journal

import (
	"context"

	"github.com/klever-io/mx-gig-escrow-go/escrow"
)

// Journal defines the persistent record of submitted marketplace transactions
type Journal interface {
	Record(receipt *escrow.Receipt) error
	UpdateStatus(hash string, status string) error
	Get(hash string) (*Entry, error)
	List(limit int) ([]*Entry, error)
	Pending() ([]*Entry, error)
	Close() error
	IsInterfaceNil() bool
}

// StatusProxy defines the component able to query the status of a transaction
type StatusProxy interface {
	GetTransactionStatus(ctx context.Context, hash string) (string, error)
	IsInterfaceNil() bool
}

// EntriesNotifier receives every entry stored by the journal
type EntriesNotifier interface {
	NotifyEntry(entry *Entry)
	IsInterfaceNil() bool
}
