// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the cryptographic gateway that gates all vault
// decryption. A per-user session is established by InitializeUserCrypto and
// holds the unwrapped user key, private key and organization keys in memory
// only; nothing unwrapped is ever persisted.
package crypto

import (
	"context"

	"github.com/MKhiriev/go-vault-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_gateway_mock.go -package=mock

// InitResult is the tri-state outcome of a crypto initialization call.
type InitResult int

const (
	// InitSuccess means session key material is live.
	InitSuccess InitResult = iota
	// InitInvalidState means required inputs were missing or no session
	// exists; the caller's local state is wrong, not the cryptography.
	InitInvalidState
	// InitFailed means the cryptographic operation itself failed (wrong
	// password, corrupt wrap). Deliberately generic: no cipher internals.
	InitFailed
)

// InitUserCryptoRequest carries everything needed to establish a user's
// crypto session. Exactly one of MasterPassword or DeviceKey selects the
// unlock method; EncryptedUserKey is the user key wrapped for that method.
type InitUserCryptoRequest struct {
	UserID              string
	Email               string
	Kdf                 models.KdfParams
	MasterPassword      string
	DeviceKey           []byte
	EncryptedUserKey    string
	EncryptedPrivateKey string
}

// Gateway is the cryptographic engine contract consumed by the sync and item
// services. Every operation is fallible; decrypt operations fail for any user
// without a live session.
type Gateway interface {
	// InitializeUserCrypto derives the master key from the request's unlock
	// method, unwraps the user key and private key, and establishes the
	// user's in-memory session.
	InitializeUserCrypto(ctx context.Context, req InitUserCryptoRequest) InitResult

	// InitializeOrgCrypto unwraps each organization key with the user's
	// session key and merges it into the session. Keys already present are
	// replaced.
	InitializeOrgCrypto(ctx context.Context, userID string, orgKeys map[string]string) InitResult

	// HasSession reports whether a live session exists for userID.
	HasSession(userID string) bool

	// DropSession discards the in-memory key material for userID.
	DropSession(userID string)

	// EncryptItem produces the ciphertext form of view. When view carries no
	// per-item key a fresh one is generated, so the returned Item always has
	// a non-nil Key. The item key is wrapped with the user key, or with the
	// organization key when view.OrganizationID is set.
	EncryptItem(ctx context.Context, userID string, view models.ItemView) (models.Item, error)

	// DecryptItem derives the plaintext view of item. Legacy items without a
	// per-item key decrypt directly under the scope key and yield a view
	// with a nil Key.
	DecryptItem(ctx context.Context, userID string, item models.Item) (models.ItemView, error)

	// DecryptItemList decrypts a full item collection in one pass.
	DecryptItemList(ctx context.Context, userID string, items []models.Item) ([]models.ItemView, error)

	// DecryptFolderList decrypts a full folder collection.
	DecryptFolderList(ctx context.Context, userID string, folders []models.Folder) ([]models.FolderView, error)

	// DecryptCollectionList decrypts a full collection list.
	DecryptCollectionList(ctx context.Context, userID string, collections []models.Collection) ([]models.CollectionView, error)

	// DecryptSendList decrypts a full send collection.
	DecryptSendList(ctx context.Context, userID string, sends []models.Send) ([]models.SendView, error)

	// EncryptFile encrypts the file at srcPath into a sibling ciphertext
	// file using a freshly generated attachment key wrapped with item's
	// per-item key. Returns the ciphertext path and the wrapped key.
	EncryptFile(ctx context.Context, userID, srcPath string, item models.Item) (dstPath string, attachmentKey *string, err error)

	// DecryptFile decrypts the ciphertext file at srcPath into a sibling
	// plaintext file using the item and attachment key material. Legacy
	// attachments without a key decrypt directly under the item key.
	DecryptFile(ctx context.Context, userID, srcPath string, item models.Item, att models.Attachment) (dstPath string, err error)
}
