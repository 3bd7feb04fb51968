// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-vault-client/internal/adapter"
	"github.com/MKhiriev/go-vault-client/internal/crypto"
	"github.com/MKhiriev/go-vault-client/internal/logger"
	"github.com/MKhiriev/go-vault-client/internal/store"
	"github.com/MKhiriev/go-vault-client/models"
)

type itemService struct {
	api          adapter.VaultAPI
	cache        store.VaultCache
	gateway      crypto.Gateway
	log          *logger.Logger
	fileCacheDir string
}

// NewItemService wires the item lifecycle manager. fileCacheDir is the
// staging directory for attachment temp files.
func NewItemService(api adapter.VaultAPI, cache store.VaultCache, gateway crypto.Gateway, fileCacheDir string, log *logger.Logger) ItemService {
	return &itemService{
		api:          api,
		cache:        cache,
		gateway:      gateway,
		log:          log,
		fileCacheDir: fileCacheDir,
	}
}

// encryptStep produces the ciphertext for view as the head of a lifecycle
// chain.
func (s *itemService) encryptStep(ctx context.Context, view models.ItemView) Result[models.Item] {
	item, err := s.gateway.EncryptItem(ctx, view.UserID, view)
	if err != nil {
		return Fail[models.Item](fmt.Errorf("encrypt item %s: %w", view.ID, err))
	}
	return Ok(item)
}

// remoteStep wraps one remote call as a chain step. Errors keep their mapped
// sentinel causes so callers can still match with errors.Is / errors.As.
func remoteStep(op string, call func(models.Item) (models.Item, error)) func(models.Item) Result[models.Item] {
	return func(item models.Item) Result[models.Item] {
		confirmed, err := call(item)
		if err != nil {
			return Fail[models.Item](fmt.Errorf("%s: %w", op, err))
		}
		return Ok(confirmed)
	}
}

// cacheStep persists a server-confirmed row. It only ever runs after the
// remote call succeeded; the cache never sees unconfirmed state.
func (s *itemService) cacheStep(ctx context.Context, userID string) func(models.Item) Result[models.Item] {
	return func(item models.Item) Result[models.Item] {
		if err := s.cache.UpsertItem(ctx, userID, item); err != nil {
			return Fail[models.Item](fmt.Errorf("cache item %s: %w", item.ID, err))
		}
		return Ok(item)
	}
}

// finishView folds a chain into the decrypted view of the confirmed row.
func (s *itemService) finishView(ctx context.Context, userID string, res Result[models.Item]) (models.ItemView, error) {
	item, err := res.Unwrap()
	if err != nil {
		return models.ItemView{}, err
	}
	view, err := s.gateway.DecryptItem(ctx, userID, item)
	if err != nil {
		return models.ItemView{}, fmt.Errorf("decrypt confirmed item %s: %w", item.ID, err)
	}
	return view, nil
}

// encryptAndMigrateIfNeeded encrypts view and, when view carries no per-item
// key, performs the one-time key migration first: the gateway mints a fresh
// key during encryption, the re-keyed ciphertext is pushed as a single remote
// update, and the confirmed row is cached. The returned view is always keyed.
func (s *itemService) encryptAndMigrateIfNeeded(ctx context.Context, view models.ItemView) (models.Item, models.ItemView, error) {
	item, err := s.gateway.EncryptItem(ctx, view.UserID, view)
	if err != nil {
		return models.Item{}, models.ItemView{}, fmt.Errorf("encrypt item %s: %w", view.ID, err)
	}
	if view.Key != nil {
		return item, view, nil
	}

	confirmed, err := s.api.UpdateItem(ctx, item)
	if err != nil {
		return models.Item{}, models.ItemView{}, fmt.Errorf("migrate item %s to per-item key: %w", view.ID, err)
	}
	if err = s.cache.UpsertItem(ctx, view.UserID, confirmed); err != nil {
		return models.Item{}, models.ItemView{}, fmt.Errorf("cache migrated item %s: %w", view.ID, err)
	}
	keyed, err := s.gateway.DecryptItem(ctx, view.UserID, confirmed)
	if err != nil {
		return models.Item{}, models.ItemView{}, fmt.Errorf("decrypt migrated item %s: %w", view.ID, err)
	}
	return confirmed, keyed, nil
}

func (s *itemService) CreateItem(ctx context.Context, view models.ItemView) (models.ItemView, error) {
	if view.UserID == "" {
		return models.ItemView{}, ErrNoActiveUser
	}
	if view.ID == "" {
		view.ID = uuid.NewString()
	}

	res := AndThen(s.encryptStep(ctx, view), remoteStep("create item", func(item models.Item) (models.Item, error) {
		return s.api.CreateItem(ctx, item)
	}))
	res = AndThen(res, s.cacheStep(ctx, view.UserID))
	return s.finishView(ctx, view.UserID, res)
}

func (s *itemService) UpdateItem(ctx context.Context, view models.ItemView) (models.ItemView, error) {
	if view.Key == nil {
		// The migration update already carries the caller's edits; one
		// remote write covers both.
		_, keyed, err := s.encryptAndMigrateIfNeeded(ctx, view)
		return keyed, err
	}

	res := AndThen(s.encryptStep(ctx, view), remoteStep("update item", func(item models.Item) (models.Item, error) {
		return s.api.UpdateItem(ctx, item)
	}))
	res = AndThen(res, s.cacheStep(ctx, view.UserID))
	return s.finishView(ctx, view.UserID, res)
}

func (s *itemService) SoftDeleteItem(ctx context.Context, view models.ItemView) (models.ItemView, error) {
	item, _, err := s.encryptAndMigrateIfNeeded(ctx, view)
	if err != nil {
		return models.ItemView{}, err
	}

	// The server stamps the deletion timestamp; the submitted ciphertext is
	// the item's current (possibly freshly migrated) state.
	res := AndThen(Ok(item), remoteStep("soft delete item", func(it models.Item) (models.Item, error) {
		return s.api.SoftDeleteItem(ctx, it)
	}))
	res = AndThen(res, s.cacheStep(ctx, view.UserID))
	return s.finishView(ctx, view.UserID, res)
}

func (s *itemService) HardDeleteItem(ctx context.Context, userID, itemID string) error {
	if err := s.api.HardDeleteItem(ctx, itemID); err != nil {
		return fmt.Errorf("hard delete item %s: %w", itemID, err)
	}
	if err := s.cache.DeleteItem(ctx, userID, itemID); err != nil {
		return fmt.Errorf("remove deleted item %s from cache: %w", itemID, err)
	}
	return nil
}

func (s *itemService) RestoreItem(ctx context.Context, userID, itemID string) (models.ItemView, error) {
	confirmed, err := s.api.RestoreItem(ctx, itemID)
	if err != nil {
		return models.ItemView{}, fmt.Errorf("restore item %s: %w", itemID, err)
	}
	return s.finishView(ctx, userID, AndThen(Ok(confirmed), s.cacheStep(ctx, userID)))
}

func (s *itemService) UpdateItemCollections(ctx context.Context, userID, itemID string, collectionIDs []string) (models.ItemView, error) {
	confirmed, err := s.api.UpdateItemCollections(ctx, itemID, collectionIDs)
	if err != nil {
		return models.ItemView{}, fmt.Errorf("update collections of item %s: %w", itemID, err)
	}
	return s.finishView(ctx, userID, AndThen(Ok(confirmed), s.cacheStep(ctx, userID)))
}

func (s *itemService) ShareItem(ctx context.Context, view models.ItemView, organizationID string, collectionIDs []string) (models.ItemView, error) {
	srcItem, keyed, err := s.encryptAndMigrateIfNeeded(ctx, view)
	if err != nil {
		return models.ItemView{}, err
	}

	keyed.OrganizationID = organizationID
	keyed.CollectionIDs = collectionIDs
	dstItem, err := s.gateway.EncryptItem(ctx, view.UserID, keyed)
	if err != nil {
		return models.ItemView{}, fmt.Errorf("encrypt item %s for organization: %w", view.ID, err)
	}

	// All unkeyed attachments must be re-uploaded under the organization
	// before the share lands; a single failure aborts the whole share.
	dstItem.Attachments, err = s.migrateAttachments(ctx, view.UserID, srcItem, dstItem, organizationID)
	if err != nil {
		return models.ItemView{}, err
	}

	res := AndThen(Ok(dstItem), remoteStep("share item", func(item models.Item) (models.Item, error) {
		return s.api.ShareItem(ctx, item)
	}))
	res = AndThen(res, s.cacheStep(ctx, view.UserID))
	return s.finishView(ctx, view.UserID, res)
}
