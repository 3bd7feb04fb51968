// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the remote vault service.
//
// The primary abstraction is [VaultAPI], which decouples the sync and item
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPVaultAPI]) built on resty.
//
// Error values defined in errors.go are mapped from transport causes and HTTP
// status codes so that callers can use [errors.Is] / [errors.As] for
// transport-agnostic error handling: [ErrNoNetwork] for connectivity
// failures, [ErrUnauthorized] for 401, [*InvalidError] for server-side
// rejections that carry a message.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-vault-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_api_mock.go -package=mock

// VaultAPI defines transport-agnostic communication with the remote vault
// service. Implementations are responsible for serialisation, bearer-token
// management, and mapping transport-level failures to the sentinel values
// defined in this package. No call is retried at this layer.
type VaultAPI interface {
	// SetToken stores the bearer token attached to all subsequent requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// AccountID returns the user identifier carried in the current bearer
	// token's subject claim, or an empty string when no token is set or the
	// token cannot be parsed.
	AccountID() string

	// FetchFullSync retrieves the complete vault for the authenticated user:
	// profile, folders, collections, items and sends, all in ciphertext form.
	FetchFullSync(ctx context.Context) (models.SyncResponse, error)

	// CreateItem registers a new ciphertext item and returns the
	// server-confirmed row (id and revision assigned by the server).
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)

	// UpdateItem replaces the ciphertext of an existing item. A server-side
	// validation rejection is returned as a wrapped [*InvalidError] carrying
	// the server's message.
	UpdateItem(ctx context.Context, item models.Item) (models.Item, error)

	// SoftDeleteItem submits the re-encrypted item and marks it soft-deleted.
	// The server stamps the deletion timestamp; the returned row is the
	// authoritative soft-deleted ciphertext.
	SoftDeleteItem(ctx context.Context, item models.Item) (models.Item, error)

	// HardDeleteItem removes the item permanently.
	HardDeleteItem(ctx context.Context, itemID string) error

	// RestoreItem clears the deletion timestamp and returns the restored row.
	RestoreItem(ctx context.Context, itemID string) (models.Item, error)

	// ShareItem moves the re-encrypted item into an organization together
	// with its final attachment list and collection assignment.
	ShareItem(ctx context.Context, item models.Item) (models.Item, error)

	// UpdateItemCollections reassigns the item's collections and returns the
	// confirmed row.
	UpdateItemCollections(ctx context.Context, itemID string, collectionIDs []string) (models.Item, error)

	// CreateAttachment registers attachment metadata for an item and returns
	// the descriptor, the updated item revision, and the upload URL.
	CreateAttachment(ctx context.Context, itemID string, req models.AttachmentRequest) (models.AttachmentUpload, error)

	// UploadAttachment streams the ciphertext file at srcPath to the server.
	// organizationID tags the upload when the bytes belong to a shared item;
	// it is empty for personal attachments.
	UploadAttachment(ctx context.Context, itemID, attachmentID, srcPath, organizationID string) error

	// DeleteAttachment removes the attachment from the item.
	DeleteAttachment(ctx context.Context, itemID, attachmentID string) error

	// GetAttachmentMetadata fetches the attachment descriptor with its
	// short-lived download URL populated.
	GetAttachmentMetadata(ctx context.Context, itemID, attachmentID string) (models.Attachment, error)

	// DownloadFile streams the ciphertext at url into dstPath.
	DownloadFile(ctx context.Context, url, dstPath string) error
}
