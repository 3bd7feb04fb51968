// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the durable per-user encrypted mirror of the
// remote vault. Rows hold ciphertext only; the mirror is authoritative only
// until the next full sync replaces it.
package store

import (
	"context"

	"github.com/MKhiriev/go-vault-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_cache_mock.go -package=mock

// VaultCache is the local cache store contract. Every write notifies the
// live streams for the affected user and entity collection, so observers can
// re-derive decrypted state without polling.
type VaultCache interface {
	// ReplaceAllForUser atomically swaps the user's entire mirror for the
	// freshly synced payload. Stale rows are removed.
	ReplaceAllForUser(ctx context.Context, userID string, payload models.CachePayload) error

	// UpsertItem writes one server-confirmed ciphertext row.
	UpsertItem(ctx context.Context, userID string, item models.Item) error

	// DeleteItem removes one row.
	DeleteItem(ctx context.Context, userID, itemID string) error

	// GetItem returns the cached ciphertext row for itemID.
	// Returns ErrNotFound when the row does not exist.
	GetItem(ctx context.Context, userID, itemID string) (models.Item, error)

	// ItemsStream emits the user's full item mirror immediately and again
	// after every change, until ctx is cancelled.
	ItemsStream(ctx context.Context, userID string) <-chan []models.Item

	// FoldersStream emits the user's folder mirror on subscribe and change.
	FoldersStream(ctx context.Context, userID string) <-chan []models.Folder

	// CollectionsStream emits the user's collection mirror on subscribe and
	// change.
	CollectionsStream(ctx context.Context, userID string) <-chan []models.Collection

	// DeleteAllForUser wipes the user's mirror entirely.
	DeleteAllForUser(ctx context.Context, userID string) error

	// Close releases the underlying database handle.
	Close() error
}
