// Package storage defines the storage interfaces used to archive scan results.
// It abstracts persistence operations and transaction management so that
// different backends (e.g. PostgreSQL) can provide concrete implementations.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"
	"time"

	"webroulette/pkg/domain"
)

// FindingFilter narrows down archived findings.
type FindingFilter struct {
	// ScanID limits results to a single scan when set.
	ScanID *domain.ScanID
	// Limit caps the number of rows returned. Zero means no limit.
	Limit uint
}

// ScanStorage stores scan summaries and the findings they produced.
type ScanStorage interface {
	// StoreScan inserts the summary of a finished scan. Findings are not stored.
	StoreScan(ctx context.Context, report *domain.Report) error
	// StoreFindings inserts findings belonging to the given scan and returns the
	// stored records.
	StoreFindings(ctx context.Context, scanID domain.ScanID, foundAt time.Time,
		findings ...domain.Finding) ([]domain.FindingRecord, error)
	// RecentFindings returns archived findings, newest first.
	RecentFindings(ctx context.Context, filter FindingFilter) ([]domain.FindingRecord, error)
}

// AllStorage is a composite interface that includes all domain-specific storage
// capabilities required by the application.
type AllStorage interface {
	ScanStorage
}

// TxStorage describes a storage handle that operates within a database
// transaction. It exposes the same domain-specific capabilities as AllStorage,
// and additionally allows committing or rolling back the ongoing transaction.
// Implementations should become unusable after Commit or Rollback is called.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction, persisting all changes.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage describes a non-transactional storage handle with the ability to
// start transactions.
type Storage interface {
	AllStorage

	// Close releases any resources held by the storage implementation (e.g. the
	// underlying connection pool). After Close, the instance should not be used.
	Close() error

	// Begin starts a new transaction and returns a TxStorage that can be used to
	// perform further operations within that transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx begins a transaction, invokes cb with it, and then commits on
	// success or rolls back if cb returns an error.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
