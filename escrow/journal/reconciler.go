package journal

import (
	"context"

	"github.com/klever-io/mx-gig-escrow-go/escrow"
	"github.com/multiversx/mx-chain-core-go/core/check"
)

// ArgsReconciler is the argument DTO for the NewReconciler function
type ArgsReconciler struct {
	Journal Journal
	Proxy   StatusProxy
}

type reconciler struct {
	journal Journal
	proxy   StatusProxy
}

// NewReconciler creates the executor that finalises the pending journal entries. It is meant to be
// driven by a polling handler
func NewReconciler(args ArgsReconciler) (*reconciler, error) {
	if check.IfNil(args.Journal) {
		return nil, ErrNilJournal
	}
	if check.IfNil(args.Proxy) {
		return nil, ErrNilStatusProxy
	}

	return &reconciler{
		journal: args.Journal,
		proxy:   args.Proxy,
	}, nil
}

// Execute queries the status of every pending entry and stores the final ones
func (r *reconciler) Execute(ctx context.Context) error {
	entries, err := r.journal.Pending()
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		status, errStatus := r.proxy.GetTransactionStatus(ctx, entry.Hash)
		if errStatus != nil {
			log.Debug("could not query the status of a pending transaction", "hash", entry.Hash, "error", errStatus)
			continue
		}
		if !escrow.IsFinalStatus(status) {
			continue
		}

		errUpdate := r.journal.UpdateStatus(entry.Hash, status)
		if errUpdate != nil {
			log.Warn("could not update the journal entry", "hash", entry.Hash, "error", errUpdate)
			continue
		}

		log.Info("reconciled pending transaction", "action", entry.Action, "hash", entry.Hash, "status", status)
	}

	return nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (r *reconciler) IsInterfaceNil() bool {
	return r == nil
}
