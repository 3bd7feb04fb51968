// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-vault-client/internal/adapter"
	"github.com/MKhiriev/go-vault-client/internal/crypto"
	"github.com/MKhiriev/go-vault-client/internal/keystore"
	"github.com/MKhiriev/go-vault-client/internal/logger"
	"github.com/MKhiriev/go-vault-client/internal/store"
	"github.com/MKhiriev/go-vault-client/models"
)

type mirrorKind int

const (
	mirrorItems mirrorKind = iota
	mirrorFolders
	mirrorCollections
)

// mirror tracks one decrypt-on-change pipeline: a goroutine that consumes a
// cache stream and republishes the decrypted collection. refs counts live
// observers; cancel is nil while the pipeline is not running (no active user).
type mirror struct {
	refs   int
	cancel context.CancelFunc
}

type syncService struct {
	api     adapter.VaultAPI
	cache   store.VaultCache
	gateway crypto.Gateway
	keys    keystore.AccountKeyStore
	log     *logger.Logger

	// inFlight serializes full syncs globally: a trigger that loses the swap
	// is dropped, not queued.
	inFlight atomic.Bool

	mu              sync.Mutex
	activeUser      string
	syncAfterUnlock bool
	unlockedUsers   map[string]struct{}
	mirrors         map[mirrorKind]*mirror

	items       *stateCell[models.DataState[[]models.ItemView]]
	folders     *stateCell[models.DataState[[]models.FolderView]]
	collections *stateCell[models.DataState[[]models.CollectionView]]
	sends       *stateCell[models.DataState[[]models.SendView]]
}

// NewSyncService wires the sync coordinator over the remote adapter, the
// local cache, the crypto gateway and the account key store.
func NewSyncService(api adapter.VaultAPI, cache store.VaultCache, gateway crypto.Gateway, keys keystore.AccountKeyStore, log *logger.Logger) SyncService {
	return &syncService{
		api:           api,
		cache:         cache,
		gateway:       gateway,
		keys:          keys,
		log:           log,
		unlockedUsers: make(map[string]struct{}),
		mirrors:       make(map[mirrorKind]*mirror),
		items:         newStateCell(models.DataState[[]models.ItemView]{Status: models.StatusLoading}),
		folders:       newStateCell(models.DataState[[]models.FolderView]{Status: models.StatusLoading}),
		collections:   newStateCell(models.DataState[[]models.CollectionView]{Status: models.StatusLoading}),
		sends:         newStateCell(models.DataState[[]models.SendView]{Status: models.StatusLoading}),
	}
}

func (s *syncService) SetActiveUser(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.activeUser == userID {
		return
	}
	s.activeUser = userID

	// Restart every live pipeline against the new user's cache streams.
	for kind, m := range s.mirrors {
		if m.cancel != nil {
			m.cancel()
			m.cancel = nil
		}
		if userID != "" {
			s.startMirrorLocked(kind, m)
		}
	}
}

func (s *syncService) TriggerSync(ctx context.Context) error {
	s.mu.Lock()
	userID := s.activeUser
	suppressed := s.syncAfterUnlock
	s.mu.Unlock()

	if userID == "" || suppressed {
		return nil
	}
	if !s.inFlight.CompareAndSwap(false, true) {
		return nil
	}
	defer s.inFlight.Store(false)

	return s.fullSync(ctx, userID)
}

func (s *syncService) fullSync(ctx context.Context, userID string) error {
	s.publishLoading()

	resp, err := s.api.FetchFullSync(ctx)
	if err != nil {
		if errors.Is(err, adapter.ErrNoNetwork) {
			s.publishOffline()
		} else {
			s.publishFailed(err)
		}
		return fmt.Errorf("fetch full sync: %w", err)
	}

	orgKeys := s.persistDisclosedKeys(ctx, userID, resp.Profile)
	if len(orgKeys) > 0 {
		if res := s.gateway.InitializeOrgCrypto(ctx, userID, orgKeys); res != crypto.InitSuccess {
			s.publishFailed(ErrOrgCryptoInit)
			return ErrOrgCryptoInit
		}
	}

	var (
		itemViews       []models.ItemView
		folderViews     []models.FolderView
		collectionViews []models.CollectionView
		sendViews       []models.SendView
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		itemViews, err = s.gateway.DecryptItemList(gctx, userID, resp.Items)
		return err
	})
	g.Go(func() (err error) {
		folderViews, err = s.gateway.DecryptFolderList(gctx, userID, resp.Folders)
		return err
	})
	g.Go(func() (err error) {
		collectionViews, err = s.gateway.DecryptCollectionList(gctx, userID, resp.Collections)
		return err
	})
	g.Go(func() (err error) {
		sendViews, err = s.gateway.DecryptSendList(gctx, userID, resp.Sends)
		return err
	})
	if err = g.Wait(); err != nil {
		s.publishFailed(err)
		return fmt.Errorf("decrypt sync payload: %w", err)
	}

	s.items.Set(models.Loaded(itemViews))
	s.folders.Set(models.Loaded(folderViews))
	s.collections.Set(models.Loaded(collectionViews))
	s.sends.Set(models.Loaded(sendViews))

	payload := models.CachePayload{
		Items:       resp.Items,
		Folders:     resp.Folders,
		Collections: resp.Collections,
	}
	if err = s.cache.ReplaceAllForUser(ctx, userID, payload); err != nil {
		// The decrypted state is already published; a stale mirror heals on
		// the next sync.
		s.log.Warn().Err(err).Str("user_id", userID).Msg("persist sync payload to cache")
	}

	return nil
}

// persistDisclosedKeys merges the profile's key material into the stored
// crypto state and returns the full organization key set for session init.
func (s *syncService) persistDisclosedKeys(ctx context.Context, userID string, profile models.Profile) map[string]string {
	state, err := s.keys.Get(ctx, userID)
	if err != nil && !errors.Is(err, keystore.ErrNotFound) {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("read stored crypto state")
	}

	if profile.Email != "" {
		state.Email = profile.Email
	}
	if profile.Kdf.Type != "" {
		state.Kdf = profile.Kdf
	}
	if profile.UserKey != "" {
		state.UserKey = profile.UserKey
	}
	if profile.PrivateKey != "" {
		state.PrivateKey = profile.PrivateKey
	}
	if state.OrganizationKeys == nil {
		state.OrganizationKeys = make(map[string]string)
	}
	for _, org := range profile.Organizations {
		if org.Key != "" {
			state.OrganizationKeys[org.ID] = org.Key
		}
	}

	if err = s.keys.Save(ctx, userID, state); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("persist disclosed keys")
	}

	return state.OrganizationKeys
}

func (s *syncService) UnlockVault(ctx context.Context, req UnlockRequest) UnlockResult {
	s.SetActiveUser(req.UserID)

	// Suppress concurrent triggers until the unlock-driven sync below runs;
	// a sync that raced the unlock would decrypt with a half-built session.
	s.mu.Lock()
	s.syncAfterUnlock = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.syncAfterUnlock = false
		s.mu.Unlock()
	}()

	if req.UserID == "" || req.UserKey == "" {
		return UnlockInvalidState
	}

	res := s.gateway.InitializeUserCrypto(ctx, crypto.InitUserCryptoRequest{
		UserID:              req.UserID,
		Email:               req.Email,
		Kdf:                 req.Kdf,
		MasterPassword:      req.MasterPassword,
		DeviceKey:           req.DeviceKey,
		EncryptedUserKey:    req.UserKey,
		EncryptedPrivateKey: req.PrivateKey,
	})
	switch res {
	case crypto.InitInvalidState:
		return UnlockInvalidState
	case crypto.InitFailed:
		return UnlockError
	}

	if len(req.OrganizationKeys) > 0 {
		if orgRes := s.gateway.InitializeOrgCrypto(ctx, req.UserID, req.OrganizationKeys); orgRes != crypto.InitSuccess {
			// Personal vault stays usable; shared data fails on decrypt and
			// the next sync retries the org session.
			s.log.Warn().Str("user_id", req.UserID).Msg("organization crypto init failed at unlock")
		}
	}

	state := models.UserCryptoState{
		Email:            req.Email,
		Kdf:              req.Kdf,
		UserKey:          req.UserKey,
		PrivateKey:       req.PrivateKey,
		OrganizationKeys: req.OrganizationKeys,
	}
	if err := s.keys.Save(ctx, req.UserID, state); err != nil {
		s.log.Warn().Err(err).Str("user_id", req.UserID).Msg("persist crypto state at unlock")
	}

	s.mu.Lock()
	s.unlockedUsers[req.UserID] = struct{}{}
	s.syncAfterUnlock = false
	s.mu.Unlock()

	if err := s.TriggerSync(ctx); err != nil {
		s.log.Warn().Err(err).Str("user_id", req.UserID).Msg("post-unlock sync failed")
	}

	return UnlockSuccess
}

func (s *syncService) LockVault(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Lock is a visibility flag only: session key material stays in the
	// gateway so background pipelines keep working until logout.
	delete(s.unlockedUsers, userID)
}

func (s *syncService) IsUnlocked(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.unlockedUsers[userID]
	return ok
}

func (s *syncService) ClearUnlockedData() {
	s.items.Set(models.DataState[[]models.ItemView]{Status: models.StatusLoading})
	s.folders.Set(models.DataState[[]models.FolderView]{Status: models.StatusLoading})
	s.collections.Set(models.DataState[[]models.CollectionView]{Status: models.StatusLoading})
	s.sends.Set(models.DataState[[]models.SendView]{Status: models.StatusLoading})
}

func (s *syncService) ObserveItems(ctx context.Context) <-chan models.DataState[[]models.ItemView] {
	s.holdMirror(ctx, mirrorItems)
	return s.items.Subscribe(ctx)
}

func (s *syncService) ObserveFolders(ctx context.Context) <-chan models.DataState[[]models.FolderView] {
	s.holdMirror(ctx, mirrorFolders)
	return s.folders.Subscribe(ctx)
}

func (s *syncService) ObserveCollections(ctx context.Context) <-chan models.DataState[[]models.CollectionView] {
	s.holdMirror(ctx, mirrorCollections)
	return s.collections.Subscribe(ctx)
}

func (s *syncService) ObserveSends(ctx context.Context) <-chan models.DataState[[]models.SendView] {
	// Sends are not cached, so there is no pipeline to hold; the cell
	// refreshes on every full sync.
	return s.sends.Subscribe(ctx)
}

func (s *syncService) ObserveVaultData(ctx context.Context) <-chan models.DataState[models.VaultData] {
	items := s.ObserveItems(ctx)
	folders := s.ObserveFolders(ctx)
	collections := s.ObserveCollections(ctx)

	out := make(chan models.DataState[models.VaultData], 1)
	go func() {
		defer close(out)

		var (
			li models.DataState[[]models.ItemView]
			lf models.DataState[[]models.FolderView]
			lc models.DataState[[]models.CollectionView]
			ok bool
		)
		for {
			select {
			case li, ok = <-items:
			case lf, ok = <-folders:
			case lc, ok = <-collections:
			}
			if !ok {
				return
			}
			select {
			case <-out: // keep only the latest combined value
			default:
			}
			out <- combineVaultData(li, lf, lc)
		}
	}()
	return out
}

// combineVaultData joins the three collection states under the most severe
// status: Error wins over NoNetwork, which wins over Loading.
func combineVaultData(
	items models.DataState[[]models.ItemView],
	folders models.DataState[[]models.FolderView],
	collections models.DataState[[]models.CollectionView],
) models.DataState[models.VaultData] {
	combined := models.DataState[models.VaultData]{
		Status: models.StatusLoaded,
		Data: models.VaultData{
			Items:       items.Data,
			Folders:     folders.Data,
			Collections: collections.Data,
		},
	}
	for _, part := range []struct {
		status models.DataStatus
		err    error
	}{
		{items.Status, items.Err},
		{folders.Status, folders.Err},
		{collections.Status, collections.Err},
	} {
		switch part.status {
		case models.StatusError:
			combined.Status = models.StatusError
			if combined.Err == nil {
				combined.Err = part.err
			}
		case models.StatusNoNetwork:
			if combined.Status != models.StatusError {
				combined.Status = models.StatusNoNetwork
			}
		case models.StatusLoading:
			if combined.Status == models.StatusLoaded {
				combined.Status = models.StatusLoading
			}
		}
	}
	return combined
}

// holdMirror keeps the pipeline for kind alive until ctx is cancelled.
func (s *syncService) holdMirror(ctx context.Context, kind mirrorKind) {
	s.acquireMirror(kind)
	go func() {
		<-ctx.Done()
		s.releaseMirror(kind)
	}()
}

func (s *syncService) acquireMirror(kind mirrorKind) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.mirrors[kind]
	if !ok {
		m = &mirror{}
		s.mirrors[kind] = m
	}
	m.refs++
	if m.cancel == nil && s.activeUser != "" {
		s.startMirrorLocked(kind, m)
	}
}

func (s *syncService) releaseMirror(kind mirrorKind) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.mirrors[kind]
	if !ok {
		return
	}
	m.refs--
	if m.refs > 0 {
		return
	}
	if m.cancel != nil {
		m.cancel()
	}
	delete(s.mirrors, kind)
}

func (s *syncService) startMirrorLocked(kind mirrorKind, m *mirror) {
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	userID := s.activeUser

	switch kind {
	case mirrorItems:
		go s.runItemsMirror(ctx, userID)
	case mirrorFolders:
		go s.runFoldersMirror(ctx, userID)
	case mirrorCollections:
		go s.runCollectionsMirror(ctx, userID)
	}
}

func (s *syncService) runItemsMirror(ctx context.Context, userID string) {
	for rows := range s.cache.ItemsStream(ctx, userID) {
		views, err := s.gateway.DecryptItemList(ctx, userID, rows)
		if err != nil {
			s.log.Error().Err(err).Str("user_id", userID).Msg("decrypt cached items")
			s.items.Update(func(cur models.DataState[[]models.ItemView]) models.DataState[[]models.ItemView] {
				return models.Failed(err, cur.Data)
			})
			continue
		}
		s.items.Set(models.Loaded(views))
	}
}

func (s *syncService) runFoldersMirror(ctx context.Context, userID string) {
	for rows := range s.cache.FoldersStream(ctx, userID) {
		views, err := s.gateway.DecryptFolderList(ctx, userID, rows)
		if err != nil {
			s.log.Error().Err(err).Str("user_id", userID).Msg("decrypt cached folders")
			s.folders.Update(func(cur models.DataState[[]models.FolderView]) models.DataState[[]models.FolderView] {
				return models.Failed(err, cur.Data)
			})
			continue
		}
		s.folders.Set(models.Loaded(views))
	}
}

func (s *syncService) runCollectionsMirror(ctx context.Context, userID string) {
	for rows := range s.cache.CollectionsStream(ctx, userID) {
		views, err := s.gateway.DecryptCollectionList(ctx, userID, rows)
		if err != nil {
			s.log.Error().Err(err).Str("user_id", userID).Msg("decrypt cached collections")
			s.collections.Update(func(cur models.DataState[[]models.CollectionView]) models.DataState[[]models.CollectionView] {
				return models.Failed(err, cur.Data)
			})
			continue
		}
		s.collections.Set(models.Loaded(views))
	}
}

func (s *syncService) publishLoading() {
	s.items.Update(func(cur models.DataState[[]models.ItemView]) models.DataState[[]models.ItemView] {
		return models.Loading(cur.Data)
	})
	s.folders.Update(func(cur models.DataState[[]models.FolderView]) models.DataState[[]models.FolderView] {
		return models.Loading(cur.Data)
	})
	s.collections.Update(func(cur models.DataState[[]models.CollectionView]) models.DataState[[]models.CollectionView] {
		return models.Loading(cur.Data)
	})
	s.sends.Update(func(cur models.DataState[[]models.SendView]) models.DataState[[]models.SendView] {
		return models.Loading(cur.Data)
	})
}

func (s *syncService) publishOffline() {
	s.items.Update(func(cur models.DataState[[]models.ItemView]) models.DataState[[]models.ItemView] {
		return models.Offline(cur.Data)
	})
	s.folders.Update(func(cur models.DataState[[]models.FolderView]) models.DataState[[]models.FolderView] {
		return models.Offline(cur.Data)
	})
	s.collections.Update(func(cur models.DataState[[]models.CollectionView]) models.DataState[[]models.CollectionView] {
		return models.Offline(cur.Data)
	})
	s.sends.Update(func(cur models.DataState[[]models.SendView]) models.DataState[[]models.SendView] {
		return models.Offline(cur.Data)
	})
}

func (s *syncService) publishFailed(err error) {
	s.items.Update(func(cur models.DataState[[]models.ItemView]) models.DataState[[]models.ItemView] {
		return models.Failed(err, cur.Data)
	})
	s.folders.Update(func(cur models.DataState[[]models.FolderView]) models.DataState[[]models.FolderView] {
		return models.Failed(err, cur.Data)
	})
	s.collections.Update(func(cur models.DataState[[]models.CollectionView]) models.DataState[[]models.CollectionView] {
		return models.Failed(err, cur.Data)
	})
	s.sends.Update(func(cur models.DataState[[]models.SendView]) models.DataState[[]models.SendView] {
		return models.Failed(err, cur.Data)
	})
}
