// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service contains the orchestration core of the vault engine: the
// sync coordinator with its embedded unlock state machine, and the item
// lifecycle manager. Both sit between the remote vault adapter, the local
// cache store and the crypto gateway, and never touch plaintext key material
// themselves.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-vault-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// UnlockResult is the tri-state outcome of a vault unlock.
type UnlockResult int

const (
	// UnlockSuccess means the user's crypto session is live and a full sync
	// has been triggered.
	UnlockSuccess UnlockResult = iota
	// UnlockInvalidState means required key material was missing locally;
	// the crypto gateway was never contacted.
	UnlockInvalidState
	// UnlockError means cryptographic initialization failed. Deliberately
	// generic: wrong password and corrupt key material are indistinguishable
	// to the caller.
	UnlockError
)

// UnlockRequest carries the stored key material needed to unlock one user's
// vault. UserKey and PrivateKey are wrapped blobs from the account key store;
// OrganizationKeys maps organization id to the key wrapped for this user.
type UnlockRequest struct {
	UserID           string
	Email            string
	MasterPassword   string
	DeviceKey        []byte
	Kdf              models.KdfParams
	UserKey          string
	PrivateKey       string
	OrganizationKeys map[string]string
}

// SyncService keeps the local cache and the published decrypted state
// consistent with the remote source of truth, and gates all decryption
// behind vault unlock.
type SyncService interface {
	// SetActiveUser selects the account all sync activity applies to.
	SetActiveUser(userID string)

	// TriggerSync runs one full fetch-decrypt-cache-publish cycle. It is a
	// silent no-op when a sync is already in flight, when an unlock-triggered
	// sync is pending, or when no active user is set; callers needing a
	// guaranteed fresh sync must re-trigger after observing state change.
	TriggerSync(ctx context.Context) error

	// UnlockVault initializes the user's crypto session from stored key
	// material and, on success, marks the user unlocked and triggers a full
	// sync.
	UnlockVault(ctx context.Context, req UnlockRequest) UnlockResult

	// LockVault revokes the unlocked marker for userID. It does not clear
	// cached ciphertext and does not drop session key material; lock state
	// is a flag, not derived from key presence.
	LockVault(userID string)

	// IsUnlocked reports whether userID is currently marked unlocked.
	IsUnlocked(userID string) bool

	// ClearUnlockedData resets every observable collection to the loading
	// state without deleting persisted ciphertext. Used on logout and
	// account switch.
	ClearUnlockedData()

	// ObserveItems returns a continuously updated decrypted item collection.
	// While at least one subscriber is active and a user is set, the
	// collection mirrors the local cache through a decrypt-on-change
	// pipeline; the pipeline is torn down when the last subscriber leaves.
	ObserveItems(ctx context.Context) <-chan models.DataState[[]models.ItemView]

	// ObserveFolders mirrors the folder collection the same way.
	ObserveFolders(ctx context.Context) <-chan models.DataState[[]models.FolderView]

	// ObserveCollections mirrors the collection list the same way.
	ObserveCollections(ctx context.Context) <-chan models.DataState[[]models.CollectionView]

	// ObserveSends publishes the send collection; sends are not cached, so
	// this updates on every full sync only.
	ObserveSends(ctx context.Context) <-chan models.DataState[[]models.SendView]

	// ObserveVaultData joins items, folders and collections into one view.
	ObserveVaultData(ctx context.Context) <-chan models.DataState[models.VaultData]
}

// ItemService implements all single-item mutations with the engine's
// invariant ordering: encrypt, then remote call, then cache write on remote
// confirmation. Every operation folds its chain into a single outcome; a
// failure after the remote call leaves the server-side effect in place to be
// reconciled by the next sync.
type ItemService interface {
	// CreateItem encrypts the view (always under a fresh per-item key),
	// registers it remotely and caches the confirmed row.
	CreateItem(ctx context.Context, view models.ItemView) (models.ItemView, error)

	// UpdateItem re-encrypts the view and replaces the remote row. Legacy
	// unkeyed items are migrated first. A server-side rejection is returned
	// as a wrapped *adapter.InvalidError carrying the server's message.
	UpdateItem(ctx context.Context, view models.ItemView) (models.ItemView, error)

	// SoftDeleteItem migrates if needed, re-encrypts the view with a
	// deletion mark and persists the server-acknowledged soft-deleted row;
	// the server is authoritative for the deletion timestamp.
	SoftDeleteItem(ctx context.Context, view models.ItemView) (models.ItemView, error)

	// HardDeleteItem removes the item remotely and from the cache.
	HardDeleteItem(ctx context.Context, userID, itemID string) error

	// RestoreItem clears the deletion mark remotely and caches the restored
	// row.
	RestoreItem(ctx context.Context, userID, itemID string) (models.ItemView, error)

	// UpdateItemCollections reassigns the item's collections.
	UpdateItemCollections(ctx context.Context, userID, itemID string, collectionIDs []string) (models.ItemView, error)

	// ShareItem re-encrypts the item under the destination organization,
	// migrates every unkeyed attachment (concurrently, all-or-nothing) and
	// issues the remote share only after all migrations succeed.
	ShareItem(ctx context.Context, view models.ItemView, organizationID string, collectionIDs []string) (models.ItemView, error)

	// CreateAttachment stages data in the file cache, encrypts it with the
	// item's key (migrating the item first if needed), registers and uploads
	// it, and removes both temp files whether or not the upload succeeds.
	CreateAttachment(ctx context.Context, view models.ItemView, fileName string, data []byte) (models.ItemView, error)

	// DownloadAttachment fetches the ciphertext, decrypts it into a sibling
	// plaintext file and returns that path. The ciphertext temp file is
	// removed regardless of the decrypt outcome.
	DownloadAttachment(ctx context.Context, view models.ItemView, attachmentID string) (string, error)

	// DeleteAttachment removes the attachment remotely and strips it from
	// the cached row.
	DeleteAttachment(ctx context.Context, view models.ItemView, attachmentID string) (models.ItemView, error)
}

// SyncJob is a background worker that periodically triggers a full sync for
// the active user.
type SyncJob interface {
	// Start launches the background goroutine, stopping any previous run.
	// A non-positive interval defaults to 5 minutes.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the goroutine to exit and blocks until it has terminated.
	Stop()
}
