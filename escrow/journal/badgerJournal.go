package journal

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/klever-io/mx-gig-escrow-go/escrow"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-core-go/marshal"
	logger "github.com/multiversx/mx-chain-logger-go"
)

const (
	entryPrefix       = "entry/"
	orderPrefix       = "order/"
	pendingPrefix     = "pending/"
	sequenceKey       = "sequence"
	sequenceBandwidth = 100
)

var log = logger.GetOrCreate("escrow/journal")

// ArgsBadgerJournal is the argument DTO for the NewBadgerJournal function
type ArgsBadgerJournal struct {
	Path     string
	InMemory bool
	Notifier EntriesNotifier
}

type badgerJournal struct {
	db          *badger.DB
	sequence    *badger.Sequence
	marshalizer marshal.Marshalizer
	notifier    EntriesNotifier
	getTime     func() time.Time
}

// NewBadgerJournal opens (or creates) the journal database
func NewBadgerJournal(args ArgsBadgerJournal) (*badgerJournal, error) {
	if !args.InMemory && len(args.Path) == 0 {
		return nil, ErrEmptyPath
	}

	options := badger.DefaultOptions(args.Path).WithLogger(&badgerLogger{})
	if args.InMemory {
		options = badger.DefaultOptions("").WithInMemory(true).WithLogger(&badgerLogger{})
	}

	db, err := badger.Open(options)
	if err != nil {
		return nil, fmt.Errorf("%w while opening the journal at %s", err, args.Path)
	}

	sequence, err := db.GetSequence([]byte(sequenceKey), sequenceBandwidth)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	notifier := args.Notifier
	if check.IfNil(notifier) {
		notifier = &disabledNotifier{}
	}

	log.Debug("journal opened", "path", args.Path, "in memory", args.InMemory)

	return &badgerJournal{
		db:          db,
		sequence:    sequence,
		marshalizer: &marshal.JsonMarshalizer{},
		notifier:    notifier,
		getTime:     time.Now,
	}, nil
}

// Record stores a freshly submitted transaction
func (bj *badgerJournal) Record(receipt *escrow.Receipt) error {
	if receipt == nil {
		return ErrNilReceipt
	}
	if len(receipt.Hash) == 0 {
		return ErrEmptyHash
	}

	sequence, err := bj.sequence.Next()
	if err != nil {
		return err
	}

	now := bj.getTime().Unix()
	entry := &Entry{
		Receipt:     *receipt,
		Sequence:    sequence,
		SubmittedAt: now,
		UpdatedAt:   now,
	}

	buff, err := bj.marshalizer.Marshal(entry)
	if err != nil {
		return err
	}

	err = bj.db.Update(func(txn *badger.Txn) error {
		errSet := txn.Set(entryKey(entry.Hash), buff)
		if errSet != nil {
			return errSet
		}

		errSet = txn.Set(orderKey(sequence), []byte(entry.Hash))
		if errSet != nil {
			return errSet
		}

		return setPendingMarker(txn, entry)
	})
	if err != nil {
		return err
	}

	bj.notifier.NotifyEntry(entry)

	return nil
}

// UpdateStatus stores the new status of a journaled transaction
func (bj *badgerJournal) UpdateStatus(hash string, status string) error {
	var entry *Entry
	err := bj.db.Update(func(txn *badger.Txn) error {
		var errGet error
		entry, errGet = bj.getEntry(txn, hash)
		if errGet != nil {
			return errGet
		}

		entry.Status = status
		entry.UpdatedAt = bj.getTime().Unix()

		buff, errMarshal := bj.marshalizer.Marshal(entry)
		if errMarshal != nil {
			return errMarshal
		}

		errSet := txn.Set(entryKey(hash), buff)
		if errSet != nil {
			return errSet
		}

		return setPendingMarker(txn, entry)
	})
	if err != nil {
		return err
	}

	bj.notifier.NotifyEntry(entry)

	return nil
}

// Get returns the journal entry of the provided hash
func (bj *badgerJournal) Get(hash string) (*Entry, error) {
	var entry *Entry
	err := bj.db.View(func(txn *badger.Txn) error {
		var errGet error
		entry, errGet = bj.getEntry(txn, hash)

		return errGet
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// List returns the most recent entries, newest first. A non-positive limit returns all entries
func (bj *badgerJournal) List(limit int) ([]*Entry, error) {
	entries := make([]*Entry, 0)
	err := bj.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		options.Prefix = []byte(orderPrefix)

		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(lastOrderKey()); it.ValidForPrefix([]byte(orderPrefix)); it.Next() {
			if limit > 0 && len(entries) >= limit {
				return nil
			}

			hash, errValue := it.Item().ValueCopy(nil)
			if errValue != nil {
				return errValue
			}

			entry, errGet := bj.getEntry(txn, string(hash))
			if errGet != nil {
				return errGet
			}

			entries = append(entries, entry)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// Pending returns the entries which did not reach a final status, oldest first
func (bj *badgerJournal) Pending() ([]*Entry, error) {
	entries := make([]*Entry, 0)
	err := bj.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		options.Prefix = []byte(pendingPrefix)

		it := txn.NewIterator(options)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			hash := it.Item().KeyCopy(nil)[len(pendingPrefix):]

			entry, errGet := bj.getEntry(txn, string(hash))
			if errGet != nil {
				return errGet
			}

			entries = append(entries, entry)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Sequence < entries[j].Sequence
	})

	return entries, nil
}

func (bj *badgerJournal) getEntry(txn *badger.Txn, hash string) (*Entry, error) {
	if len(hash) == 0 {
		return nil, ErrEmptyHash
	}

	item, err := txn.Get(entryKey(hash))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w, hash %s", ErrEntryNotFound, hash)
	}
	if err != nil {
		return nil, err
	}

	buff, err := item.ValueCopy(nil)
	if err != nil {
		return nil, err
	}

	entry := &Entry{}
	err = bj.marshalizer.Unmarshal(entry, buff)
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// Close releases the sequence and closes the database
func (bj *badgerJournal) Close() error {
	errRelease := bj.sequence.Release()
	errClose := bj.db.Close()
	if errRelease != nil {
		return errRelease
	}

	return errClose
}

// IsInterfaceNil returns true if there is no value under the interface
func (bj *badgerJournal) IsInterfaceNil() bool {
	return bj == nil
}

func setPendingMarker(txn *badger.Txn, entry *Entry) error {
	if entry.IsFinal() {
		return txn.Delete(pendingKey(entry.Hash))
	}

	return txn.Set(pendingKey(entry.Hash), nil)
}

func entryKey(hash string) []byte {
	return []byte(entryPrefix + hash)
}

func pendingKey(hash string) []byte {
	return []byte(pendingPrefix + hash)
}

func orderKey(sequence uint64) []byte {
	return binary.BigEndian.AppendUint64([]byte(orderPrefix), sequence)
}

func lastOrderKey() []byte {
	return append([]byte(orderPrefix), 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff)
}

type disabledNotifier struct{}

// NotifyEntry does nothing
func (dn *disabledNotifier) NotifyEntry(_ *Entry) {}

// IsInterfaceNil returns true if there is no value under the interface
func (dn *disabledNotifier) IsInterfaceNil() bool {
	return dn == nil
}
