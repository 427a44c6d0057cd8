package journal

import "errors"

var (
	// ErrNilReceipt signals that a nil receipt was provided
	ErrNilReceipt = errors.New("nil receipt")
	// ErrEmptyHash signals that an empty transaction hash was provided
	ErrEmptyHash = errors.New("empty transaction hash")
	// ErrEntryNotFound signals that the journal holds no entry for the hash
	ErrEntryNotFound = errors.New("journal entry not found")
	// ErrEmptyPath signals that a persistent journal was requested without a path
	ErrEmptyPath = errors.New("empty journal path")
	// ErrNilJournal signals that a nil journal was provided
	ErrNilJournal = errors.New("nil journal")
	// ErrNilStatusProxy signals that a nil status proxy was provided
	ErrNilStatusProxy = errors.New("nil status proxy")
)
