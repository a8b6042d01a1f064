package storage

import "webroulette/pkg/serrors"

// Transaction state errors. Both are serrors kinds so callers can match them
// with errors.Is through any wrapping.
var (
	// ErrAlreadyInTx is returned by Begin on a handle that is already a transaction.
	ErrAlreadyInTx = serrors.NewKind("ALREADY_IN_TX")
	// ErrNotInTx is returned by Commit and Rollback on a non-transactional handle.
	ErrNotInTx = serrors.NewKind("NOT_IN_TX")
)
