package journal

import (
	"fmt"

	"github.com/klever-io/mx-gig-escrow-go/escrow"
)

type disabledJournal struct{}

// NewDisabledJournal returns a journal which keeps nothing
func NewDisabledJournal() *disabledJournal {
	return &disabledJournal{}
}

// Record does nothing
func (dj *disabledJournal) Record(_ *escrow.Receipt) error {
	return nil
}

// UpdateStatus does nothing
func (dj *disabledJournal) UpdateStatus(_ string, _ string) error {
	return nil
}

// Get always returns ErrEntryNotFound
func (dj *disabledJournal) Get(hash string) (*Entry, error) {
	return nil, fmt.Errorf("%w, hash %s", ErrEntryNotFound, hash)
}

// List returns an empty list
func (dj *disabledJournal) List(_ int) ([]*Entry, error) {
	return make([]*Entry, 0), nil
}

// Pending returns an empty list
func (dj *disabledJournal) Pending() ([]*Entry, error) {
	return make([]*Entry, 0), nil
}

// Close does nothing
func (dj *disabledJournal) Close() error {
	return nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (dj *disabledJournal) IsInterfaceNil() bool {
	return dj == nil
}
