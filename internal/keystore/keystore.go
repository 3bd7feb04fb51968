// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package keystore persists per-account wrapped key material
// (models.UserCryptoState) outside the sync core. Everything stored here is
// already wrapped; the keystore never sees plaintext keys.
package keystore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/zalando/go-keyring"

	"github.com/MKhiriev/go-vault-client/models"
)

//go:generate mockgen -source=keystore.go -destination=../mock/keystore_mock.go -package=mock

// ErrNotFound marks an account with no stored crypto state.
var ErrNotFound = errors.New("no crypto state stored for account")

const keyringService = "go-vault-client"

// AccountKeyStore stores and retrieves wrapped account key material.
type AccountKeyStore interface {
	Get(ctx context.Context, userID string) (models.UserCryptoState, error)
	Save(ctx context.Context, userID string, state models.UserCryptoState) error
	Delete(ctx context.Context, userID string) error
}

type keyringStore struct{}

// NewKeyringStore persists crypto state in the OS keyring (Keychain,
// Secret Service, Credential Manager) under the go-vault-client service.
func NewKeyringStore() AccountKeyStore {
	return &keyringStore{}
}

func (s *keyringStore) Get(_ context.Context, userID string) (models.UserCryptoState, error) {
	raw, err := keyring.Get(keyringService, userID)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return models.UserCryptoState{}, ErrNotFound
		}
		return models.UserCryptoState{}, fmt.Errorf("read keyring entry: %w", err)
	}

	var state models.UserCryptoState
	if err = json.Unmarshal([]byte(raw), &state); err != nil {
		return models.UserCryptoState{}, fmt.Errorf("decode keyring entry: %w", err)
	}
	return state, nil
}

func (s *keyringStore) Save(_ context.Context, userID string, state models.UserCryptoState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode keyring entry: %w", err)
	}
	if err = keyring.Set(keyringService, userID, string(raw)); err != nil {
		return fmt.Errorf("write keyring entry: %w", err)
	}
	return nil
}

func (s *keyringStore) Delete(_ context.Context, userID string) error {
	if err := keyring.Delete(keyringService, userID); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("delete keyring entry: %w", err)
	}
	return nil
}

type memoryStore struct {
	mu     sync.RWMutex
	states map[string]models.UserCryptoState
}

// NewMemoryStore keeps crypto state in process memory. Used in tests and on
// platforms without a keyring daemon.
func NewMemoryStore() AccountKeyStore {
	return &memoryStore{states: make(map[string]models.UserCryptoState)}
}

func (s *memoryStore) Get(_ context.Context, userID string) (models.UserCryptoState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.states[userID]
	if !ok {
		return models.UserCryptoState{}, ErrNotFound
	}
	return state, nil
}

func (s *memoryStore) Save(_ context.Context, userID string, state models.UserCryptoState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[userID] = state
	return nil
}

func (s *memoryStore) Delete(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, userID)
	return nil
}
