package journal

import "github.com/klever-io/mx-gig-escrow-go/escrow"

// Entry is a journaled receipt together with its bookkeeping timestamps (unix seconds)
type Entry struct {
	escrow.Receipt
	Sequence    uint64 `json:"sequence"`
	SubmittedAt int64  `json:"submittedAt"`
	UpdatedAt   int64  `json:"updatedAt"`
}
