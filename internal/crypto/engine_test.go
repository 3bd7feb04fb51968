package crypto

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vault-client/models"
)

const (
	testUserID   = "user-1"
	testEmail    = "user@example.com"
	testPassword = "correct horse battery staple"
)

var testKdf = models.KdfParams{Type: models.KdfPBKDF2, Iterations: 1_000}

// newUnlockedEngine builds an engine with a live session for testUserID and
// returns the raw user key so tests can wrap further material.
func newUnlockedEngine(t *testing.T) (Gateway, []byte) {
	t.Helper()

	userKey, err := generateKey()
	require.NoError(t, err)

	master := deriveMasterKey(testPassword, testEmail, testKdf)
	wrapped, err := wrapKey(userKey, master)
	require.NoError(t, err)

	e := NewEngine()
	res := e.InitializeUserCrypto(context.Background(), InitUserCryptoRequest{
		UserID:           testUserID,
		Email:            testEmail,
		Kdf:              testKdf,
		MasterPassword:   testPassword,
		EncryptedUserKey: wrapped,
	})
	require.Equal(t, InitSuccess, res)
	return e, userKey
}

func TestEngine_InitializeUserCrypto_MissingUserKey(t *testing.T) {
	e := NewEngine()
	res := e.InitializeUserCrypto(context.Background(), InitUserCryptoRequest{
		UserID:         testUserID,
		MasterPassword: testPassword,
	})
	assert.Equal(t, InitInvalidState, res)
	assert.False(t, e.HasSession(testUserID))
}

func TestEngine_InitializeUserCrypto_WrongPassword(t *testing.T) {
	userKey, err := generateKey()
	require.NoError(t, err)
	master := deriveMasterKey(testPassword, testEmail, testKdf)
	wrapped, err := wrapKey(userKey, master)
	require.NoError(t, err)

	e := NewEngine()
	res := e.InitializeUserCrypto(context.Background(), InitUserCryptoRequest{
		UserID:           testUserID,
		Email:            testEmail,
		Kdf:              testKdf,
		MasterPassword:   "wrong password",
		EncryptedUserKey: wrapped,
	})
	assert.Equal(t, InitFailed, res)
}

func TestEngine_InitializeUserCrypto_DeviceKey(t *testing.T) {
	userKey, err := generateKey()
	require.NoError(t, err)
	deviceKey, err := generateKey()
	require.NoError(t, err)
	wrapped, err := wrapKey(userKey, deviceKey)
	require.NoError(t, err)

	e := NewEngine()
	res := e.InitializeUserCrypto(context.Background(), InitUserCryptoRequest{
		UserID:           testUserID,
		DeviceKey:        deviceKey,
		EncryptedUserKey: wrapped,
	})
	assert.Equal(t, InitSuccess, res)
	assert.True(t, e.HasSession(testUserID))
}

func TestEngine_InitializeOrgCrypto_NoSession(t *testing.T) {
	e := NewEngine()
	res := e.InitializeOrgCrypto(context.Background(), "ghost", map[string]string{"org-1": "blob"})
	assert.Equal(t, InitInvalidState, res)
}

func TestEngine_EncryptDecryptItem_RoundTrip(t *testing.T) {
	e, _ := newUnlockedEngine(t)
	ctx := context.Background()

	view := models.ItemView{
		ID:     "item-1",
		UserID: testUserID,
		Type:   models.ItemTypeLogin,
		Name:   "example.com",
		Notes:  "some notes",
		Data:   `{"login":"bob","password":"hunter2"}`,
	}

	item, err := e.EncryptItem(ctx, testUserID, view)
	require.NoError(t, err)
	require.NotNil(t, item.Key, "encrypt must always yield a keyed item")
	assert.NotEqual(t, view.Name, item.Name)

	got, err := e.DecryptItem(ctx, testUserID, item)
	require.NoError(t, err)
	assert.Equal(t, view.Name, got.Name)
	assert.Equal(t, view.Notes, got.Notes)
	assert.Equal(t, view.Data, got.Data)
	require.NotNil(t, got.Key)

	// re-encrypting with the carried key reproduces a decryptable cipher
	again, err := e.EncryptItem(ctx, testUserID, got)
	require.NoError(t, err)
	back, err := e.DecryptItem(ctx, testUserID, again)
	require.NoError(t, err)
	assert.Equal(t, view.Data, back.Data)
}

func TestEngine_DecryptItem_LegacyWithoutKey(t *testing.T) {
	e, userKey := newUnlockedEngine(t)
	ctx := context.Background()

	// legacy items are encrypted directly under the scope key
	name, err := encryptString("legacy item", userKey)
	require.NoError(t, err)

	view, err := e.DecryptItem(ctx, testUserID, models.Item{ID: "old", Name: name})
	require.NoError(t, err)
	assert.Equal(t, "legacy item", view.Name)
	assert.Nil(t, view.Key, "legacy item view must keep a nil key")
}

func TestEngine_EncryptItem_OrgScope(t *testing.T) {
	e, userKey := newUnlockedEngine(t)
	ctx := context.Background()

	orgKey, err := generateKey()
	require.NoError(t, err)
	wrappedOrg, err := wrapKey(orgKey, userKey)
	require.NoError(t, err)
	res := e.InitializeOrgCrypto(ctx, testUserID, map[string]string{"org-1": wrappedOrg})
	require.Equal(t, InitSuccess, res)

	view := models.ItemView{ID: "item-1", OrganizationID: "org-1", Name: "shared"}
	item, err := e.EncryptItem(ctx, testUserID, view)
	require.NoError(t, err)

	got, err := e.DecryptItem(ctx, testUserID, item)
	require.NoError(t, err)
	assert.Equal(t, "shared", got.Name)
}

func TestEngine_EncryptItem_UnknownOrgKey(t *testing.T) {
	e, _ := newUnlockedEngine(t)

	_, err := e.EncryptItem(context.Background(), testUserID, models.ItemView{OrganizationID: "org-x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoOrgKey)
}

func TestEngine_DecryptFolderList_NoSession(t *testing.T) {
	e := NewEngine()
	_, err := e.DecryptFolderList(context.Background(), "ghost", nil)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestEngine_DecryptSendList_RoundTrip(t *testing.T) {
	e, userKey := newUnlockedEngine(t)
	ctx := context.Background()

	sendKey, err := generateKey()
	require.NoError(t, err)
	wrapped, err := wrapKey(sendKey, userKey)
	require.NoError(t, err)
	name, err := encryptString("shared note", sendKey)
	require.NoError(t, err)

	views, err := e.DecryptSendList(ctx, testUserID, []models.Send{{ID: "send-1", Name: name, Key: wrapped}})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "shared note", views[0].Name)
}

func TestEngine_EncryptDecryptFile_RoundTrip(t *testing.T) {
	e, _ := newUnlockedEngine(t)
	ctx := context.Background()

	item, err := e.EncryptItem(ctx, testUserID, models.ItemView{ID: "item-1", Name: "n"})
	require.NoError(t, err)

	src := filepath.Join(t.TempDir(), "secret.txt")
	require.NoError(t, os.WriteFile(src, []byte("attachment payload"), 0o600))

	encPath, attKey, err := e.EncryptFile(ctx, testUserID, src, item)
	require.NoError(t, err)
	require.NotNil(t, attKey)
	assert.Equal(t, src+".enc", encPath)

	plainPath, err := e.DecryptFile(ctx, testUserID, encPath, item, models.Attachment{ID: "att-1", Key: attKey})
	require.NoError(t, err)

	raw, err := os.ReadFile(plainPath)
	require.NoError(t, err)
	assert.Equal(t, "attachment payload", string(raw))
}

func TestEngine_EncryptFile_RequiresItemKey(t *testing.T) {
	e, _ := newUnlockedEngine(t)

	src := filepath.Join(t.TempDir(), "f.txt")
	require.NoError(t, os.WriteFile(src, []byte("x"), 0o600))

	_, _, err := e.EncryptFile(context.Background(), testUserID, src, models.Item{ID: "legacy"})
	assert.ErrorIs(t, err, ErrNoItemKey)
}

func TestEngine_DropSession(t *testing.T) {
	e, _ := newUnlockedEngine(t)
	require.True(t, e.HasSession(testUserID))

	e.DropSession(testUserID)
	assert.False(t, e.HasSession(testUserID))

	_, err := e.DecryptItemList(context.Background(), testUserID, []models.Item{{ID: "i"}})
	assert.ErrorIs(t, err, ErrNoSession)
}
