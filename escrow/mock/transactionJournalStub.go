package mock

import "github.com/klever-io/mx-gig-escrow-go/escrow"

// TransactionJournalStub -
type TransactionJournalStub struct {
	RecordCalled       func(receipt *escrow.Receipt) error
	UpdateStatusCalled func(hash string, status string) error
}

// Record -
func (stub *TransactionJournalStub) Record(receipt *escrow.Receipt) error {
	if stub.RecordCalled != nil {
		return stub.RecordCalled(receipt)
	}

	return nil
}

// UpdateStatus -
func (stub *TransactionJournalStub) UpdateStatus(hash string, status string) error {
	if stub.UpdateStatusCalled != nil {
		return stub.UpdateStatusCalled(hash, status)
	}

	return nil
}

// IsInterfaceNil -
func (stub *TransactionJournalStub) IsInterfaceNil() bool {
	return stub == nil
}
