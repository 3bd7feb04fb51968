// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/pbkdf2"

	"github.com/MKhiriev/go-vault-client/models"
)

var (
	ErrNoSession   = errors.New("no crypto session for user")
	ErrNoItemKey   = errors.New("item has no per-item key")
	ErrNoOrgKey    = errors.New("organization key not initialized")
	ErrInvalidBlob = errors.New("ciphertext too short")
	ErrInvalidKey  = errors.New("invalid key length")
)

const (
	defaultKeySize  = 32
	defaultKdfIters = 600_000
)

type session struct {
	userKey    []byte
	privateKey []byte
	orgKeys    map[string][]byte
}

type engine struct {
	mu       sync.RWMutex
	sessions map[string]*session
}

// NewEngine constructs the default AES-256-GCM Gateway implementation.
// Master keys are derived with PBKDF2-SHA256 using the account's KDF
// parameters and stretched through HKDF; all wrapped blobs have the form
// base64(nonce ‖ ciphertext).
func NewEngine() Gateway {
	return &engine{sessions: make(map[string]*session)}
}

func (e *engine) InitializeUserCrypto(_ context.Context, req InitUserCryptoRequest) InitResult {
	if req.UserID == "" || req.EncryptedUserKey == "" {
		return InitInvalidState
	}
	if req.MasterPassword == "" && len(req.DeviceKey) == 0 {
		return InitInvalidState
	}

	var unlockKey []byte
	if len(req.DeviceKey) > 0 {
		unlockKey = req.DeviceKey
	} else {
		unlockKey = deriveMasterKey(req.MasterPassword, req.Email, req.Kdf)
	}

	userKey, err := unwrapKey(req.EncryptedUserKey, unlockKey)
	if err != nil {
		return InitFailed
	}

	sess := &session{userKey: userKey, orgKeys: make(map[string][]byte)}
	if req.EncryptedPrivateKey != "" {
		privateKey, err := unwrapKey(req.EncryptedPrivateKey, userKey)
		if err != nil {
			return InitFailed
		}
		sess.privateKey = privateKey
	}

	e.mu.Lock()
	e.sessions[req.UserID] = sess
	e.mu.Unlock()
	return InitSuccess
}

func (e *engine) InitializeOrgCrypto(_ context.Context, userID string, orgKeys map[string]string) InitResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	sess, ok := e.sessions[userID]
	if !ok {
		return InitInvalidState
	}

	for orgID, wrapped := range orgKeys {
		key, err := unwrapKey(wrapped, sess.userKey)
		if err != nil {
			return InitFailed
		}
		sess.orgKeys[orgID] = key
	}
	return InitSuccess
}

func (e *engine) HasSession(userID string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, ok := e.sessions[userID]
	return ok
}

func (e *engine) DropSession(userID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.sessions, userID)
}

func (e *engine) EncryptItem(_ context.Context, userID string, view models.ItemView) (models.Item, error) {
	scopeKey, err := e.scopeKey(userID, view.OrganizationID)
	if err != nil {
		return models.Item{}, err
	}

	var itemKey []byte
	if view.Key != nil {
		itemKey, err = base64.StdEncoding.DecodeString(*view.Key)
		if err != nil {
			return models.Item{}, fmt.Errorf("decode item key: %w", err)
		}
	} else {
		itemKey, err = generateKey()
		if err != nil {
			return models.Item{}, fmt.Errorf("generate item key: %w", err)
		}
	}

	wrappedKey, err := wrapKey(itemKey, scopeKey)
	if err != nil {
		return models.Item{}, fmt.Errorf("wrap item key: %w", err)
	}

	item := models.Item{
		ID:             view.ID,
		UserID:         view.UserID,
		OrganizationID: view.OrganizationID,
		FolderID:       view.FolderID,
		Type:           view.Type,
		Key:            &wrappedKey,
		CollectionIDs:  view.CollectionIDs,
		DeletedAt:      view.DeletedAt,
	}

	if item.Name, err = encryptString(view.Name, itemKey); err != nil {
		return models.Item{}, fmt.Errorf("encrypt name: %w", err)
	}
	if view.Notes != "" {
		if item.Notes, err = encryptString(view.Notes, itemKey); err != nil {
			return models.Item{}, fmt.Errorf("encrypt notes: %w", err)
		}
	}
	if view.Data != "" {
		if item.Data, err = encryptString(view.Data, itemKey); err != nil {
			return models.Item{}, fmt.Errorf("encrypt data: %w", err)
		}
	}

	// attachment descriptors are non-secret metadata; the wrapped attachment
	// key stays opaque to the view and passes through unchanged
	for _, att := range view.Attachments {
		item.Attachments = append(item.Attachments, models.Attachment{
			ID:       att.ID,
			Key:      att.Key,
			URL:      att.URL,
			FileName: att.FileName,
			Size:     att.Size,
		})
	}

	return item, nil
}

func (e *engine) DecryptItem(_ context.Context, userID string, item models.Item) (models.ItemView, error) {
	scopeKey, err := e.scopeKey(userID, item.OrganizationID)
	if err != nil {
		return models.ItemView{}, err
	}

	// Legacy items carry no per-item key: their fields are encrypted
	// directly under the scope key and the view keeps Key nil so callers
	// know migration is still due.
	fieldKey := scopeKey
	var viewKey *string
	if item.Key != nil {
		itemKey, err := unwrapKey(*item.Key, scopeKey)
		if err != nil {
			return models.ItemView{}, fmt.Errorf("unwrap item key: %w", err)
		}
		fieldKey = itemKey
		encoded := base64.StdEncoding.EncodeToString(itemKey)
		viewKey = &encoded
	}

	view := models.ItemView{
		ID:             item.ID,
		UserID:         item.UserID,
		OrganizationID: item.OrganizationID,
		FolderID:       item.FolderID,
		Type:           item.Type,
		Key:            viewKey,
		CollectionIDs:  item.CollectionIDs,
		DeletedAt:      item.DeletedAt,
	}

	if view.Name, err = decryptString(item.Name, fieldKey); err != nil {
		return models.ItemView{}, fmt.Errorf("decrypt name: %w", err)
	}
	if item.Notes != "" {
		if view.Notes, err = decryptString(item.Notes, fieldKey); err != nil {
			return models.ItemView{}, fmt.Errorf("decrypt notes: %w", err)
		}
	}
	if item.Data != "" {
		if view.Data, err = decryptString(item.Data, fieldKey); err != nil {
			return models.ItemView{}, fmt.Errorf("decrypt data: %w", err)
		}
	}

	for _, att := range item.Attachments {
		view.Attachments = append(view.Attachments, models.AttachmentView{
			ID:       att.ID,
			Key:      att.Key,
			URL:      att.URL,
			FileName: att.FileName,
			Size:     att.Size,
		})
	}

	return view, nil
}

func (e *engine) DecryptItemList(ctx context.Context, userID string, items []models.Item) ([]models.ItemView, error) {
	views := make([]models.ItemView, 0, len(items))
	for _, item := range items {
		view, err := e.DecryptItem(ctx, userID, item)
		if err != nil {
			return nil, fmt.Errorf("decrypt item %s: %w", item.ID, err)
		}
		views = append(views, view)
	}
	return views, nil
}

func (e *engine) DecryptFolderList(_ context.Context, userID string, folders []models.Folder) ([]models.FolderView, error) {
	sess, err := e.session(userID)
	if err != nil {
		return nil, err
	}

	views := make([]models.FolderView, 0, len(folders))
	for _, f := range folders {
		name, err := decryptString(f.Name, sess.userKey)
		if err != nil {
			return nil, fmt.Errorf("decrypt folder %s: %w", f.ID, err)
		}
		views = append(views, models.FolderView{ID: f.ID, Name: name})
	}
	return views, nil
}

func (e *engine) DecryptCollectionList(_ context.Context, userID string, collections []models.Collection) ([]models.CollectionView, error) {
	views := make([]models.CollectionView, 0, len(collections))
	for _, c := range collections {
		key, err := e.scopeKey(userID, c.OrganizationID)
		if err != nil {
			return nil, fmt.Errorf("collection %s: %w", c.ID, err)
		}
		name, err := decryptString(c.Name, key)
		if err != nil {
			return nil, fmt.Errorf("decrypt collection %s: %w", c.ID, err)
		}
		views = append(views, models.CollectionView{
			ID:             c.ID,
			OrganizationID: c.OrganizationID,
			Name:           name,
			ReadOnly:       c.ReadOnly,
		})
	}
	return views, nil
}

func (e *engine) DecryptSendList(_ context.Context, userID string, sends []models.Send) ([]models.SendView, error) {
	sess, err := e.session(userID)
	if err != nil {
		return nil, err
	}

	views := make([]models.SendView, 0, len(sends))
	for _, s := range sends {
		sendKey, err := unwrapKey(s.Key, sess.userKey)
		if err != nil {
			return nil, fmt.Errorf("unwrap send key %s: %w", s.ID, err)
		}
		name, err := decryptString(s.Name, sendKey)
		if err != nil {
			return nil, fmt.Errorf("decrypt send %s: %w", s.ID, err)
		}
		view := models.SendView{ID: s.ID, Name: name, DeletionDate: s.DeletionDate}
		if s.Data != "" {
			if view.Data, err = decryptString(s.Data, sendKey); err != nil {
				return nil, fmt.Errorf("decrypt send data %s: %w", s.ID, err)
			}
		}
		views = append(views, view)
	}
	return views, nil
}

func (e *engine) EncryptFile(_ context.Context, userID, srcPath string, item models.Item) (string, *string, error) {
	itemKey, err := e.unwrapItemKey(userID, item)
	if err != nil {
		return "", nil, err
	}

	attKey, err := generateKey()
	if err != nil {
		return "", nil, fmt.Errorf("generate attachment key: %w", err)
	}

	plain, err := os.ReadFile(srcPath)
	if err != nil {
		return "", nil, fmt.Errorf("read plaintext file: %w", err)
	}

	blob, err := encryptBytes(plain, attKey)
	if err != nil {
		return "", nil, fmt.Errorf("encrypt file: %w", err)
	}

	dstPath := srcPath + ".enc"
	if err = os.WriteFile(dstPath, blob, 0o600); err != nil {
		return "", nil, fmt.Errorf("write ciphertext file: %w", err)
	}

	wrapped, err := wrapKey(attKey, itemKey)
	if err != nil {
		_ = os.Remove(dstPath)
		return "", nil, fmt.Errorf("wrap attachment key: %w", err)
	}

	return dstPath, &wrapped, nil
}

func (e *engine) DecryptFile(_ context.Context, userID, srcPath string, item models.Item, att models.Attachment) (string, error) {
	itemKey, err := e.unwrapItemKey(userID, item)
	if err != nil {
		return "", err
	}

	fileKey := itemKey
	if att.Key != nil {
		if fileKey, err = unwrapKey(*att.Key, itemKey); err != nil {
			return "", fmt.Errorf("unwrap attachment key: %w", err)
		}
	}

	blob, err := os.ReadFile(srcPath)
	if err != nil {
		return "", fmt.Errorf("read ciphertext file: %w", err)
	}

	plain, err := decryptBytes(blob, fileKey)
	if err != nil {
		return "", fmt.Errorf("decrypt file: %w", err)
	}

	dstPath := strings.TrimSuffix(srcPath, ".enc") + ".plain"
	if err = os.WriteFile(dstPath, plain, 0o600); err != nil {
		return "", fmt.Errorf("write plaintext file: %w", err)
	}

	return dstPath, nil
}

func (e *engine) session(userID string) (*session, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	sess, ok := e.sessions[userID]
	if !ok {
		return nil, ErrNoSession
	}
	return sess, nil
}

// scopeKey resolves the key an item's own key is wrapped with: the user key
// for personal items, the organization key for shared ones.
func (e *engine) scopeKey(userID, organizationID string) ([]byte, error) {
	sess, err := e.session(userID)
	if err != nil {
		return nil, err
	}
	if organizationID == "" {
		return sess.userKey, nil
	}

	e.mu.RLock()
	defer e.mu.RUnlock()
	key, ok := sess.orgKeys[organizationID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoOrgKey, organizationID)
	}
	return key, nil
}

func (e *engine) unwrapItemKey(userID string, item models.Item) ([]byte, error) {
	if item.Key == nil {
		return nil, ErrNoItemKey
	}
	scopeKey, err := e.scopeKey(userID, item.OrganizationID)
	if err != nil {
		return nil, err
	}
	key, err := unwrapKey(*item.Key, scopeKey)
	if err != nil {
		return nil, fmt.Errorf("unwrap item key: %w", err)
	}
	return key, nil
}

// deriveMasterKey derives the unlock key from the master password. PBKDF2
// with the account's iteration count produces the master key, HKDF expands
// it into the 256-bit key-wrapping key.
func deriveMasterKey(password, email string, kdf models.KdfParams) []byte {
	iterations := kdf.Iterations
	if iterations <= 0 {
		iterations = defaultKdfIters
	}

	master := pbkdf2.Key([]byte(password), []byte(strings.ToLower(email)), iterations, defaultKeySize, sha256.New)

	out := make([]byte, defaultKeySize)
	r := hkdf.Expand(sha256.New, master, []byte("unlock"))
	_, _ = io.ReadFull(r, out)
	return out
}

func generateKey() ([]byte, error) {
	key := make([]byte, defaultKeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, err
	}
	return key, nil
}

func wrapKey(key, wrappingKey []byte) (string, error) {
	blob, err := encryptBytes(key, wrappingKey)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(blob), nil
}

func unwrapKey(wrapped string, wrappingKey []byte) ([]byte, error) {
	blob, err := base64.StdEncoding.DecodeString(wrapped)
	if err != nil {
		return nil, err
	}
	return decryptBytes(blob, wrappingKey)
}

func encryptString(value string, key []byte) (string, error) {
	blob, err := encryptBytes([]byte(value), key)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(blob), nil
}

func decryptString(value string, key []byte) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return "", err
	}
	plain, err := decryptBytes(blob, key)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}

// encryptBytes seals plaintext with AES-256-GCM. The random nonce is
// prepended so the decryption side can locate it: blob = nonce ‖ ciphertext.
func encryptBytes(plain, key []byte) ([]byte, error) {
	if len(key) != defaultKeySize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKey, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	return append(nonce, gcm.Seal(nil, nonce, plain, nil)...), nil
}

func decryptBytes(blob, key []byte) ([]byte, error) {
	if len(key) != defaultKeySize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKey, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	if len(blob) < gcm.NonceSize() {
		return nil, ErrInvalidBlob
	}

	nonce, ct := blob[:gcm.NonceSize()], blob[gcm.NonceSize():]
	return gcm.Open(nil, nonce, ct, nil)
}
