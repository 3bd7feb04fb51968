// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-vault-client/internal/adapter"
	"github.com/MKhiriev/go-vault-client/internal/crypto"
	"github.com/MKhiriev/go-vault-client/internal/keystore"
	"github.com/MKhiriev/go-vault-client/internal/logger"
	"github.com/MKhiriev/go-vault-client/internal/store"
)

// Services bundles the engine's service layer for application wiring.
type Services struct {
	Sync  SyncService
	Items ItemService
	Job   SyncJob
}

// NewServices constructs the full service layer over shared infrastructure.
func NewServices(api adapter.VaultAPI, cache store.VaultCache, gateway crypto.Gateway, keys keystore.AccountKeyStore, fileCacheDir string, log *logger.Logger) *Services {
	syncSvc := NewSyncService(api, cache, gateway, keys, log)
	return &Services{
		Sync:  syncSvc,
		Items: NewItemService(api, cache, gateway, fileCacheDir, log),
		Job:   NewSyncJob(syncSvc, log),
	}
}
